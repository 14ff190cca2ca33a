package fieldbag

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/formshred/formshred/internal/entity"
)

func bagFromJSON(t *testing.T, s string) Bag {
	t.Helper()
	b, err := Parse(json.RawMessage(s))
	if err != nil {
		t.Fatalf("parse bag: %v", err)
	}
	return b
}

func TestGetStringMissingAndNull(t *testing.T) {
	d := entity.NewDocument("x.png")
	a := NewAccessor(bagFromJSON(t, `{"Known": {"text": "it's here"}, "Nulled": null}`), d)

	t.Run("missing key", func(t *testing.T) {
		v, ok := a.GetString("Absent", entity.SeverityTerminal)
		if ok || v != "" {
			t.Errorf("GetString(Absent) = %q, %v; want empty, false", v, ok)
		}
	})
	t.Run("null leaf", func(t *testing.T) {
		v, ok := a.GetString("Nulled", entity.SeverityWarning)
		if ok || v != "" {
			t.Errorf("GetString(Nulled) = %q, %v; want empty, false", v, ok)
		}
	})
	t.Run("present value is sanitized", func(t *testing.T) {
		v, ok := a.GetString("Known", entity.SeverityWarning)
		if !ok || v != "it@Illegal@s here" {
			t.Errorf("GetString(Known) = %q, %v", v, ok)
		}
	})

	if len(d.Errors) != 2 {
		t.Fatalf("len(Errors) = %d, want 2 (one per failed lookup)", len(d.Errors))
	}
	if d.Errors[0].ErrorCode != "PRE0001" || d.Errors[0].ErrorSeverity != entity.SeverityTerminal {
		t.Errorf("first error = %+v, want PRE0001 at caller severity", d.Errors[0])
	}
	if d.Errors[1].ErrorSeverity != entity.SeverityWarning {
		t.Errorf("second error severity = %v, want Warning", d.Errors[1].ErrorSeverity)
	}
}

func TestGetNumber(t *testing.T) {
	cases := []struct {
		name      string
		bag       string
		id        string
		severity  entity.Severity
		want      string
		wantOK    bool
		wantCode  string
		wantSev   entity.Severity
		wantCount int
	}{
		{"plain", `{"Net01": {"text": "50.00"}}`, "Net01", entity.SeverityTerminal, "50.00", true, "", 0, 0},
		{"whitespace stripped", `{"Net01": {"text": " 1 234.50 "}}`, "Net01", entity.SeverityTerminal, "1234.50", true, "", 0, 0},
		{"missing", `{}`, "Net01", entity.SeverityTerminal, "0", false, "PRE0002", entity.SeverityTerminal, 1},
		{"null leaf", `{"Net01": null}`, "Net01", entity.SeverityTerminal, "0", false, "PRE0002", entity.SeverityTerminal, 1},
		{"empty value", `{"Net01": {"text": ""}}`, "Net01", entity.SeverityWarning, "0", false, "PRE0003", entity.SeverityWarning, 1},
		{"unparsable", `{"Net01": {"text": "ten"}}`, "Net01", entity.SeverityTerminal, "0", false, "PRE0005", entity.SeverityTerminal, 1},
		{"zero still returned", `{"Net01": {"text": "0.00"}}`, "Net01", entity.SeverityTerminal, "0.00", true, "PRE0004", entity.SeverityWarning, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d := entity.NewDocument("x.png")
			a := NewAccessor(bagFromJSON(t, tc.bag), d)
			got, ok := a.GetNumber(tc.id, tc.severity)
			if ok != tc.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tc.wantOK)
			}
			if !got.Equal(decimal.RequireFromString(tc.want)) {
				t.Errorf("value = %s, want %s", got, tc.want)
			}
			if len(d.Errors) != tc.wantCount {
				t.Fatalf("len(Errors) = %d, want %d", len(d.Errors), tc.wantCount)
			}
			if tc.wantCount > 0 {
				if d.Errors[0].ErrorCode != tc.wantCode {
					t.Errorf("code = %s, want %s", d.Errors[0].ErrorCode, tc.wantCode)
				}
				if d.Errors[0].ErrorSeverity != tc.wantSev {
					t.Errorf("severity = %v, want %v", d.Errors[0].ErrorSeverity, tc.wantSev)
				}
			}
		})
	}
}

func TestGetNumberZeroWarningDoesNotInvalidate(t *testing.T) {
	d := entity.NewDocument("x.png")
	a := NewAccessor(bagFromJSON(t, `{"VAT": {"text": "0"}}`), d)
	if _, ok := a.GetNumber("VAT", entity.SeverityTerminal); !ok {
		t.Fatal("zero value should still be returned")
	}
	// zero is recorded as Warning even when the caller asked for Terminal
	if !d.IsValid() {
		t.Error("zero-value warning must not invalidate the document")
	}
}

func TestGetDate(t *testing.T) {
	d := entity.NewDocument("x.png")
	a := NewAccessor(bagFromJSON(t, `{
		"TaxDate":   {"text": "2020-03-31"},
		"OrderDate": {"text": "31/03/2020"},
		"BadDate":   {"text": "the 'end' of March"}
	}`), d)

	got, ok := a.GetDate("TaxDate", entity.SeverityWarning)
	if !ok || !got.Equal(time.Date(2020, time.March, 31, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("GetDate(TaxDate) = %v, %v", got, ok)
	}
	if _, ok := a.GetDate("OrderDate", entity.SeverityWarning); !ok {
		t.Error("day-first date should parse")
	}

	if _, ok := a.GetDate("BadDate", entity.SeverityTerminal); ok {
		t.Error("unparsable date should fail")
	}
	last := d.Errors[len(d.Errors)-1]
	if last.ErrorCode != "PRE0007" {
		t.Errorf("code = %s, want PRE0007", last.ErrorCode)
	}
	if want := "GetDate() Specified Element BadDate does not contain a valid date: value=the @Illegal@end@Illegal@ of March"; last.ErrorMessage != want {
		t.Errorf("message = %q, want %q", last.ErrorMessage, want)
	}

	if _, ok := a.GetDate("Missing", entity.SeverityWarning); ok {
		t.Error("missing date should fail")
	}
	if code := d.Errors[len(d.Errors)-1].ErrorCode; code != "PRE0006" {
		t.Errorf("code = %s, want PRE0006", code)
	}
}
