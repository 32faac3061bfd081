package domain

import "testing"

func TestNormalize_AcceptsSnakeAndCamelKeys(t *testing.T) {
	snake := Normalize(map[string]interface{}{
		"name":           "Jane Doe",
		"zip_code":       "12345",
		"insurance_type": "car",
		"vehicle_number": "AB12",
	})
	camel := Normalize(map[string]interface{}{
		"name":          "Jane Doe",
		"zipCode":       "12345",
		"insuranceType": "car",
		"vehicleNumber": "AB12",
	})

	if snake.ZipCode != "12345" || camel.ZipCode != "12345" {
		t.Fatalf("expected both conventions to set zip code, got %q and %q", snake.ZipCode, camel.ZipCode)
	}
	if snake.InsuranceType != camel.InsuranceType {
		t.Fatalf("expected identical insurance type, got %q and %q", snake.InsuranceType, camel.InsuranceType)
	}
	if snake.VehicleNumber != "AB12" || camel.VehicleNumber != "AB12" {
		t.Fatalf("expected both conventions to set vehicle number")
	}
}

func TestNormalize_DropsUnknownKeys(t *testing.T) {
	rec := Normalize(map[string]interface{}{
		"name":         "Jane",
		"favoriteFood": "pizza",
		"utm_source":   "ad-campaign",
	})

	if rec.Name != "Jane" {
		t.Fatalf("expected name to survive, got %q", rec.Name)
	}
}

func TestNormalize_BlankValuesTreatedAsAbsent(t *testing.T) {
	rec := Normalize(map[string]interface{}{
		"name":            "   ",
		"currentProvider": "\t",
	})

	if rec.Name != "" {
		t.Fatalf("expected whitespace-only name to be absent, got %q", rec.Name)
	}
	if rec.CurrentProvider != "" {
		t.Fatalf("expected whitespace-only provider to be absent, got %q", rec.CurrentProvider)
	}
}

func TestNormalize_CoercesNumericValues(t *testing.T) {
	rec := Normalize(map[string]interface{}{
		"age":             float64(30),
		"vehicleYear":     float64(2020),
		"coverage_amount": "500000",
	})

	if rec.Age == nil || *rec.Age != 30 {
		t.Fatalf("expected age 30, got %v", rec.Age)
	}
	if rec.VehicleYear != "2020" {
		t.Fatalf("expected vehicle year 2020, got %q", rec.VehicleYear)
	}
	if rec.CoverageAmount == nil || *rec.CoverageAmount != 500000 {
		t.Fatalf("expected coverage amount 500000, got %v", rec.CoverageAmount)
	}
}

func TestNormalize_AgeFromUnparseableStringIsAbsent(t *testing.T) {
	rec := Normalize(map[string]interface{}{"age": "thirty"})
	if rec.Age != nil {
		t.Fatalf("expected unparseable age to be absent, got %d", *rec.Age)
	}
}

func TestNormalize_FractionalAgeIsAbsent(t *testing.T) {
	rec := Normalize(map[string]interface{}{"age": 18.9})
	if rec.Age != nil {
		t.Fatalf("expected fractional age to be absent, got %d", *rec.Age)
	}

	whole := Normalize(map[string]interface{}{"age": 18.0})
	if whole.Age == nil || *whole.Age != 18 {
		t.Fatalf("expected whole-number age 18, got %v", whole.Age)
	}
}

func TestNormalizeGender(t *testing.T) {
	cases := map[string]string{
		"Male":       GenderMale,
		"m":          GenderMale,
		"FEMALE":     GenderFemale,
		"woman":      GenderFemale,
		"non-binary": GenderNonBinary,
		"nb":         GenderNonBinary,
		"prefer not to say": "",
		"":                  "",
	}

	for input, want := range cases {
		if got := NormalizeGender(input); got != want {
			t.Fatalf("NormalizeGender(%q) = %q, want %q", input, got, want)
		}
	}
}
