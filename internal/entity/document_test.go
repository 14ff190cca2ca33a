package entity

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestDocumentValidityTracksErrors(t *testing.T) {
	d := NewDocument("a.jpg")
	if !d.IsValid() {
		t.Fatal("fresh document should be valid")
	}

	d.AddError("PRE0004", SeverityWarning, "value is zero")
	if !d.IsValid() {
		t.Error("warnings must not invalidate the document")
	}
	if got := d.WarningErrorCount(); got != 1 {
		t.Errorf("WarningErrorCount = %d, want 1", got)
	}

	d.AddError("PRE0002", SeverityTerminal, "Net01 missing")
	if d.IsValid() {
		t.Error("terminal error must invalidate the document")
	}
	if got := d.TerminalErrorCount(); got != 1 {
		t.Errorf("TerminalErrorCount = %d, want 1", got)
	}

	// invariant holds after every mutation
	d.AddError("PRE0001", SeverityObservation, "note")
	if d.IsValid() != (d.TerminalErrorCount() == 0) {
		t.Error("IsValid out of sync with TerminalErrorCount")
	}
}

func TestAddErrorSanitizesAndPreservesOrder(t *testing.T) {
	d := NewDocument("a.jpg")
	d.AddError("PRE0007", SeverityWarning, "bad date 'Jan 1'")
	d.AddError("PRE0007", SeverityWarning, "bad date 'Jan 1'") // no dedup
	if len(d.Errors) != 2 {
		t.Fatalf("len(Errors) = %d, want 2", len(d.Errors))
	}
	want := "bad date @Illegal@Jan 1@Illegal@"
	if d.Errors[0].ErrorMessage != want {
		t.Errorf("message = %q, want %q", d.Errors[0].ErrorMessage, want)
	}
}

func TestDeriveTaxPeriodUnpaddedMonth(t *testing.T) {
	d := NewDocument("a.jpg")
	d.DeriveTaxPeriod()
	if d.TaxPeriod != "" {
		t.Errorf("tax period without tax date = %q, want empty", d.TaxPeriod)
	}

	mar := time.Date(2020, time.March, 31, 0, 0, 0, 0, time.UTC)
	d.TaxDate = &mar
	d.DeriveTaxPeriod()
	if d.TaxPeriod != "20203" {
		t.Errorf("TaxPeriod = %q, want 20203", d.TaxPeriod)
	}

	nov := time.Date(2021, time.November, 1, 0, 0, 0, 0, time.UTC)
	d.TaxDate = &nov
	d.DeriveTaxPeriod()
	if d.TaxPeriod != "202111" {
		t.Errorf("TaxPeriod = %q, want 202111", d.TaxPeriod)
	}
}

func TestCalculatedLineQuantity(t *testing.T) {
	cases := []struct {
		name string
		net  string
		unit string
		want string
	}{
		{"both non-zero", "100", "4", "25"},
		{"zero unit price", "100", "0", "0"},
		{"zero net", "0", "5", "0"},
		{"fractional", "50.00", "10.00", "5"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			li := LineItem{
				NetAmount: decimal.RequireFromString(tc.net),
				UnitPrice: decimal.RequireFromString(tc.unit),
			}
			if got := li.CalculatedLineQuantity(); !got.Equal(decimal.RequireFromString(tc.want)) {
				t.Errorf("CalculatedLineQuantity = %s, want %s", got, tc.want)
			}
		})
	}
}

func TestSeverityJSONRoundTrip(t *testing.T) {
	for _, s := range []Severity{SeverityObservation, SeverityWarning, SeverityTerminal} {
		b, err := s.MarshalJSON()
		if err != nil {
			t.Fatalf("marshal %v: %v", s, err)
		}
		var got Severity
		if err := got.UnmarshalJSON(b); err != nil {
			t.Fatalf("unmarshal %s: %v", b, err)
		}
		if got != s {
			t.Errorf("round trip %v -> %v", s, got)
		}
	}
}
