package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// The three historical form versions disagree on key naming (zip_code vs
// zipCode, insurance_type vs insuranceType). Keys are matched after folding
// to lowercase with underscores removed, so both conventions land on the
// same canonical field. Unknown keys are dropped silently.
const (
	keyName              = "name"
	keyEmail             = "email"
	keyPhone             = "phone"
	keyAge               = "age"
	keyGender            = "gender"
	keyZipCode           = "zipcode"
	keyInsuranceType     = "insurancetype"
	keyVehicleNumber     = "vehiclenumber"
	keyVehicleModel      = "vehiclemodel"
	keyVehicleYear       = "vehicleyear"
	keyMedicalHistory    = "medicalhistory"
	keyCoverageAmount    = "coverageamount"
	keyRelationship      = "relationship"
	keyMonthlyInvestment = "monthlyinvestment"
	keyInvestmentGoal    = "investmentgoal"
	keyCurrentProvider   = "currentprovider"
)

// Normalize maps a raw, loosely-typed payload onto a canonical Record.
// It never fails: malformed values simply yield a record that fails
// validation later. Whitespace-only string values are treated as absent.
func Normalize(raw map[string]interface{}) Record {
	var rec Record

	for key, value := range raw {
		switch foldKey(key) {
		case keyName:
			rec.Name = stringValue(value)
		case keyEmail:
			rec.Email = stringValue(value)
		case keyPhone:
			rec.Phone = stringValue(value)
		case keyAge:
			rec.Age = intValue(value)
		case keyGender:
			rec.Gender = strings.ToLower(stringValue(value))
		case keyZipCode:
			rec.ZipCode = stringValue(value)
		case keyInsuranceType:
			rec.InsuranceType = stringValue(value)
		case keyVehicleNumber:
			rec.VehicleNumber = stringValue(value)
		case keyVehicleModel:
			rec.VehicleModel = stringValue(value)
		case keyVehicleYear:
			rec.VehicleYear = stringValue(value)
		case keyMedicalHistory:
			rec.MedicalHistory = stringValue(value)
		case keyCoverageAmount:
			rec.CoverageAmount = floatValue(value)
		case keyRelationship:
			rec.Relationship = stringValue(value)
		case keyMonthlyInvestment:
			rec.MonthlyInvestment = floatValue(value)
		case keyInvestmentGoal:
			rec.InvestmentGoal = stringValue(value)
		case keyCurrentProvider:
			rec.CurrentProvider = stringValue(value)
		}
	}

	return rec
}

// NormalizeGender maps free-form gender tokens into the closed gender set.
// Unrecognized values return an empty string (treated as absent downstream).
func NormalizeGender(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "male", "m", "man":
		return GenderMale
	case "female", "f", "woman":
		return GenderFemale
	case "non_binary", "non-binary", "nonbinary", "nb":
		return GenderNonBinary
	default:
		return ""
	}
}

func foldKey(key string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(key)), "_", "")
}

func stringValue(value interface{}) string {
	switch typed := value.(type) {
	case string:
		return strings.TrimSpace(typed)
	case float64:
		if typed == float64(int64(typed)) {
			return strconv.FormatInt(int64(typed), 10)
		}
		return strconv.FormatFloat(typed, 'f', -1, 64)
	case int:
		return strconv.Itoa(typed)
	case bool:
		return strconv.FormatBool(typed)
	case nil:
		return ""
	default:
		return strings.TrimSpace(fmt.Sprintf("%v", typed))
	}
}

func intValue(value interface{}) *int {
	switch typed := value.(type) {
	case float64:
		// Fractional values must not round-trip into a valid integer;
		// treating them as absent makes validation reject the record.
		if typed != float64(int(typed)) {
			return nil
		}
		result := int(typed)
		return &result
	case int:
		result := typed
		return &result
	case string:
		parsed, err := strconv.Atoi(strings.TrimSpace(typed))
		if err != nil {
			return nil
		}
		return &parsed
	default:
		return nil
	}
}

func floatValue(value interface{}) *float64 {
	switch typed := value.(type) {
	case float64:
		result := typed
		return &result
	case int:
		result := float64(typed)
		return &result
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(typed), 64)
		if err != nil {
			return nil
		}
		return &parsed
	default:
		return nil
	}
}
