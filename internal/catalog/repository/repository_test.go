package repository

import (
	"fmt"
	"testing"
)

// fakeRow assigns positional values into scan destinations the way the
// driver does: a nil value into a pointer destination clears it, a nil
// value into a plain string destination fails the scan.
type fakeRow struct {
	values []interface{}
}

func (f fakeRow) Scan(dest ...any) error {
	if len(dest) != len(f.values) {
		return fmt.Errorf("expected %d destinations, got %d", len(f.values), len(dest))
	}
	for i, value := range f.values {
		switch d := dest[i].(type) {
		case *int64:
			*d = value.(int64)
		case *int:
			*d = value.(int)
		case *float64:
			*d = value.(float64)
		case *string:
			if value == nil {
				return fmt.Errorf("cannot scan NULL into *string (position %d)", i)
			}
			*d = value.(string)
		case **string:
			if value == nil {
				*d = nil
			} else {
				s := value.(string)
				*d = &s
			}
		case *[]byte:
			if value == nil {
				*d = nil
			} else {
				*d = []byte(value.(string))
			}
		default:
			return fmt.Errorf("unsupported destination %T (position %d)", dest[i], i)
		}
	}
	return nil
}

func productRow(description interface{}, features interface{}) fakeRow {
	return fakeRow{values: []interface{}{
		int64(1), "Basic Health", "health", description,
		float64(150), float64(100000), 18, 65,
		"all", features,
	}}
}

func TestScanProduct_FullRow(t *testing.T) {
	p, err := scanProduct(productRow("Everyday coverage", `["dental","vision"]`))
	if err != nil {
		t.Fatalf("scan failed: %v", err)
	}
	if p.ProductName != "Basic Health" || p.Description != "Everyday coverage" {
		t.Fatalf("row not mapped: %+v", p)
	}
	if len(p.Features) != 2 || p.Features[0] != "dental" {
		t.Fatalf("features not decoded: %+v", p.Features)
	}
}

func TestScanProduct_NullDescription(t *testing.T) {
	p, err := scanProduct(productRow(nil, nil))
	if err != nil {
		t.Fatalf("null description must not fail the scan: %v", err)
	}
	if p.Description != "" {
		t.Fatalf("expected empty description, got %q", p.Description)
	}
	if p.Features != nil {
		t.Fatalf("expected no features, got %+v", p.Features)
	}
}

func TestScanProduct_MalformedFeatures(t *testing.T) {
	if _, err := scanProduct(productRow("ok", `{not json`)); err == nil {
		t.Fatal("expected decode error for malformed features")
	}
}
