// Package responder generates template replies for the lead chat. Replies
// are chosen by a prioritized keyword scan over the lowercased message and
// personalized from the session's form context. This is the deterministic
// fallback path; the Gemini passthrough sits in front of it when enabled.
package responder

import (
	"fmt"
	"strings"

	intakedomain "insurance_leads_backend/internal/intake/domain"
)

// Profile is the slice of the session context the templates interpolate.
// InsuranceType holds a canonical type, or "" when the context carried no
// recognizable type token.
type Profile struct {
	InsuranceType string
	Name          string
	VehicleModel  string
	Age           string
}

// ProfileFromContext extracts a Profile from the raw session context. Type
// resolution is lenient here: an unknown token degrades to generic replies
// instead of failing the chat.
func ProfileFromContext(ctx map[string]interface{}) Profile {
	rec := intakedomain.Normalize(ctx)

	profile := Profile{
		Name:         rec.Name,
		VehicleModel: rec.VehicleModel,
	}
	if rec.Age != nil {
		profile.Age = fmt.Sprintf("%d", *rec.Age)
	}
	if canonical, err := intakedomain.ResolveType(rec.InsuranceType); err == nil {
		profile.InsuranceType = string(canonical)
	}
	return profile
}

type rule struct {
	keywords []string
	reply    func(p Profile) string
}

// Rules are scanned in order; the first keyword hit wins. Quote intent
// outranks coverage intent, which outranks claims, and so on.
var rules = []rule{
	{keywords: []string{"quote", "price", "cost", "premium", "rate"}, reply: quoteReply},
	{keywords: []string{"coverage", "cover", "protection", "benefit"}, reply: coverageReply},
	{keywords: []string{"claim", "accident", "damage", "incident"}, reply: claimsReply},
	{keywords: []string{"compare", "better", "difference", "vs", "versus"}, reply: compareReply},
	{keywords: []string{"help", "information", "tell me", "explain"}, reply: helpReply},
}

// Respond picks a reply for the message given the lead's profile.
func Respond(message string, p Profile) string {
	lower := strings.ToLower(message)
	for _, r := range rules {
		for _, keyword := range r.keywords {
			if strings.Contains(lower, keyword) {
				return r.reply(p)
			}
		}
	}
	return defaultReply(p)
}

// Welcome returns the opening message for a freshly initialized chat.
func Welcome(p Profile) string {
	name := p.name()
	switch p.InsuranceType {
	case string(intakedomain.TypeAuto):
		return fmt.Sprintf("Hello %s! I'm here to help you find the perfect auto insurance. I see you're interested in coverage for your vehicle. Let me help you explore your options!", name)
	case string(intakedomain.TypeTermLife):
		return fmt.Sprintf("Hi %s! I'm your term life insurance advisor. I'll help you find the right coverage to protect your family's financial future.", name)
	case string(intakedomain.TypeHome):
		return fmt.Sprintf("Welcome %s! I'm here to assist you with home insurance options to protect your property and belongings.", name)
	case string(intakedomain.TypeHealth):
		return fmt.Sprintf("Hello %s! I'm your health insurance guide. Let's find the right coverage for your healthcare needs.", name)
	case string(intakedomain.TypeSavings):
		return fmt.Sprintf("Hi %s! I'm here to help you explore savings plans that can grow your wealth while providing protection.", name)
	default:
		return fmt.Sprintf("Hello %s! I'm here to help you with your insurance needs.", name)
	}
}

func quoteReply(p Profile) string {
	switch p.InsuranceType {
	case string(intakedomain.TypeAuto):
		return fmt.Sprintf("I'd be happy to help you get a quote for %s! Based on your information, I can connect you with our auto insurance specialists who will provide personalized rates. Would you like me to schedule a call with one of our agents?", p.vehicle())
	case string(intakedomain.TypeTermLife):
		return fmt.Sprintf("For term life insurance at age %s, our rates are very competitive. I can help you calculate coverage based on your income and family needs. Would you like to explore different coverage amounts?", p.age())
	default:
		return fmt.Sprintf("I can help you get a personalized quote for %s insurance. Let me connect you with our specialists who will provide the best rates for your specific needs.", p.display())
	}
}

func coverageReply(p Profile) string {
	switch p.InsuranceType {
	case string(intakedomain.TypeAuto):
		return "Our auto insurance covers collision, comprehensive, liability, and uninsured motorist protection. We also offer roadside assistance and rental car coverage. What specific coverage are you most interested in?"
	case string(intakedomain.TypeTermLife):
		return "Term life insurance provides pure death benefit protection for a specific period. Coverage amounts typically range from $100,000 to $5 million. How much coverage do you think your family would need?"
	default:
		return fmt.Sprintf("Our %s insurance provides comprehensive protection tailored to your needs. I can explain the specific benefits and coverage options available to you.", p.display())
	}
}

func claimsReply(Profile) string {
	return "Our claims process is designed to be simple and fast. We have 24/7 claim reporting and most claims are processed within 48 hours. We also have a mobile app for easy claim submission with photos. Have you had any recent incidents you need to report?"
}

func compareReply(Profile) string {
	return "I can help you compare different insurance options and providers. Our policies often offer better rates and more comprehensive coverage than competitors. What specific aspects would you like to compare - price, coverage, or service?"
}

func helpReply(p Profile) string {
	return fmt.Sprintf("I'm here to help you understand %s insurance options! I can explain coverage types, help you get quotes, compare policies, or answer any specific questions you have. What would you like to know more about?", p.display())
}

func defaultReply(p Profile) string {
	switch p.InsuranceType {
	case string(intakedomain.TypeAuto):
		return "I understand you're looking for auto insurance information. I can help you with coverage options, quotes, claims process, or any other questions about protecting your vehicle."
	case string(intakedomain.TypeTermLife):
		return "I'm here to help with term life insurance. Whether you need information about coverage amounts, premium costs, or application process, I'm ready to assist you."
	case string(intakedomain.TypeHome):
		return "I can help you with home insurance questions - from property coverage to personal belongings protection. What specific aspect of home insurance interests you most?"
	case string(intakedomain.TypeHealth):
		return "I'm here to assist with health insurance options. I can explain different plans, coverage benefits, and help you find the right healthcare protection for your needs."
	case string(intakedomain.TypeSavings):
		return "I can help you understand savings products that combine protection with wealth building. These products can help secure your financial future while providing insurance coverage."
	default:
		return fmt.Sprintf("Thank you for your message, %s! I'm here to help you with your insurance needs. Could you please tell me more about what specific information you're looking for?", p.name())
	}
}

func (p Profile) name() string {
	if p.Name == "" {
		return "there"
	}
	return p.Name
}

func (p Profile) vehicle() string {
	if p.VehicleModel == "" {
		return "your vehicle"
	}
	return p.VehicleModel
}

func (p Profile) age() string {
	if p.Age == "" {
		return "your age group"
	}
	return p.Age
}

// display renders the type for interpolation into generic templates.
func (p Profile) display() string {
	switch p.InsuranceType {
	case string(intakedomain.TypeTermLife):
		return "term life"
	case "":
		return "general"
	default:
		return p.InsuranceType
	}
}
