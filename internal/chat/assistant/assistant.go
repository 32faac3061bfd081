// Package assistant is the optional Gemini passthrough for the lead chat.
// When configured it answers instead of the template responder; any failure
// is returned to the caller, which falls back to templates so the chat
// never goes dark because of the model.
package assistant

import (
	"context"
	"fmt"
	"strings"
	"time"

	"google.golang.org/genai"

	"insurance_leads_backend/internal/chat/responder"
	"insurance_leads_backend/internal/chat/session"
	"insurance_leads_backend/platform/config"
	"insurance_leads_backend/platform/logger"
)

// Recent turns sent as model context. Older history is dropped to keep
// request sizes bounded.
const maxHistoryTurns = 10

// Assistant generates chat replies with Gemini.
type Assistant struct {
	client  *genai.Client
	model   string
	timeout time.Duration
	log     *logger.Logger
}

// New creates a Gemini-backed assistant. Call only when the API key is
// configured.
func New(ctx context.Context, cfg config.AssistantConfig, log *logger.Logger) (*Assistant, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.GetGeminiAPIKey(),
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	return &Assistant{
		client:  client,
		model:   cfg.GetGeminiModel(),
		timeout: cfg.GetAssistantTimeout(),
		log:     log,
	}, nil
}

// Reply answers the message using the session's form context and recent
// history. A non-nil error means the caller should use the template path.
func (a *Assistant) Reply(ctx context.Context, sess session.Session, message string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	profile := responder.ProfileFromContext(sess.Context)

	history := sess.History
	if len(history) > maxHistoryTurns {
		history = history[len(history)-maxHistoryTurns:]
	}

	contents := make([]*genai.Content, 0, 2*len(history)+1)
	for _, turn := range history {
		contents = append(contents,
			genai.NewContentFromText(turn.UserMessage, genai.RoleUser),
			genai.NewContentFromText(turn.BotResponse, genai.RoleModel),
		)
	}
	contents = append(contents, genai.NewContentFromText(message, genai.RoleUser))

	genConfig := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(systemPrompt(profile), ""),
		Temperature:       genai.Ptr(float32(0.7)),
	}

	resp, err := a.client.Models.GenerateContent(ctx, a.model, contents, genConfig)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}

	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("empty model response")
	}
	text := strings.TrimSpace(resp.Candidates[0].Content.Parts[0].Text)
	if text == "" {
		return "", fmt.Errorf("empty model response")
	}
	return text, nil
}

func systemPrompt(p responder.Profile) string {
	var b strings.Builder
	b.WriteString("You are a friendly insurance advisor chatting with a lead who just filled out a web form. ")
	b.WriteString("Answer briefly and concretely, and never invent policy terms or prices.")
	if p.InsuranceType != "" {
		fmt.Fprintf(&b, " The lead is interested in %s insurance.", p.InsuranceType)
	}
	if p.Name != "" {
		fmt.Fprintf(&b, " Their name is %s.", p.Name)
	}
	if p.Age != "" {
		fmt.Fprintf(&b, " They are %s years old.", p.Age)
	}
	if p.VehicleModel != "" {
		fmt.Fprintf(&b, " Their vehicle is a %s.", p.VehicleModel)
	}
	return b.String()
}
