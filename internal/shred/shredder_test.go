package shred

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/formshred/formshred/internal/entity"
)

// payload builds a recognition envelope around a fields object.
func payload(t *testing.T, fields map[string]any) []byte {
	t.Helper()
	b, err := json.Marshal(map[string]any{
		"status": "succeeded",
		"analyzeResult": map[string]any{
			"documentResults": []any{
				map[string]any{"fields": fields},
			},
		},
	})
	if err != nil {
		t.Fatal(err)
	}
	return b
}

func text(v string) map[string]any { return map[string]any{"text": v} }

func TestShredSingleLineDocument(t *testing.T) {
	raw := payload(t, map[string]any{
		"OrderNO": text("PO1"),
		"Inv":     text("INV1"),
		"Unit01":  text("10.00"),
		"Net01":   text("50.00"),
		"Qty01":   text("5"),
		"Drug01":  text("Widget"),
	})

	doc := entity.NewDocument("acme-0001.png")
	s := NewShredder(DefaultFieldMap(), nil)
	if err := s.Shred(raw, doc, Metadata{}); err != nil {
		t.Fatalf("Shred: %v", err)
	}

	if doc.OrderNumber != "PO1" || doc.DocumentNumber != "INV1" {
		t.Errorf("header = %q/%q, want PO1/INV1", doc.OrderNumber, doc.DocumentNumber)
	}
	if len(doc.LineItems) != 1 {
		t.Fatalf("len(LineItems) = %d, want 1", len(doc.LineItems))
	}
	li := doc.LineItems[0]
	if li.ItemDescription != "Widget" || li.DocumentLineNumber != "01" || li.LineQuantity != "5" {
		t.Errorf("line = %+v", li)
	}
	if got := li.CalculatedLineQuantity(); !got.Equal(decimal.NewFromInt(5)) {
		t.Errorf("CalculatedLineQuantity = %s, want 5", got)
	}
	if doc.TerminalErrorCount() != 0 {
		t.Errorf("TerminalErrorCount = %d, want 0; errors: %+v", doc.TerminalErrorCount(), doc.Errors)
	}
	if !doc.IsValid() {
		t.Error("document should be valid")
	}
	if doc.RecognizerStatus != "succeeded" {
		t.Errorf("RecognizerStatus = %q", doc.RecognizerStatus)
	}
}

func TestShredMissingNetIsTerminalButLineKept(t *testing.T) {
	raw := payload(t, map[string]any{
		"Unit01": text("10.00"),
		"Qty01":  text("5"),
		"Drug01": text("Widget"),
	})

	doc := entity.NewDocument("acme-0002.png")
	if err := NewShredder(DefaultFieldMap(), nil).Shred(raw, doc, Metadata{}); err != nil {
		t.Fatalf("Shred: %v", err)
	}

	if len(doc.LineItems) != 1 {
		t.Fatalf("len(LineItems) = %d, want 1 (line still appended)", len(doc.LineItems))
	}
	if !doc.LineItems[0].NetAmount.IsZero() {
		t.Errorf("NetAmount = %s, want 0", doc.LineItems[0].NetAmount)
	}
	if doc.IsValid() {
		t.Error("missing Net01 must invalidate the document")
	}

	terminal := 0
	for _, e := range doc.Errors {
		if e.ErrorSeverity == entity.SeverityTerminal {
			terminal++
			if e.ErrorCode != "PRE0002" {
				t.Errorf("terminal code = %s, want PRE0002", e.ErrorCode)
			}
		}
	}
	if terminal != 1 {
		t.Errorf("terminal error count = %d, want 1", terminal)
	}
}

func TestShredLineDiscoveryStopsAtFirstGap(t *testing.T) {
	raw := payload(t, map[string]any{
		"Drug01": text("A"), "Unit01": text("1"), "Net01": text("1"), "Qty01": text("1"),
		// no 02 at all
		"Drug03": text("C"), "Unit03": text("3"), "Net03": text("3"), "Qty03": text("1"),
	})

	doc := entity.NewDocument("gap.png")
	if err := NewShredder(DefaultFieldMap(), nil).Shred(raw, doc, Metadata{}); err != nil {
		t.Fatalf("Shred: %v", err)
	}
	if len(doc.LineItems) != 1 {
		t.Fatalf("len(LineItems) = %d, want 1; indexes beyond the gap must be ignored", len(doc.LineItems))
	}
	if doc.LineItems[0].DocumentLineNumber != "01" {
		t.Errorf("line number = %s, want 01", doc.LineItems[0].DocumentLineNumber)
	}
}

func TestShredLinesStayInAscendingOrder(t *testing.T) {
	fields := map[string]any{}
	for i := 1; i <= 7; i++ {
		n := fmt.Sprintf("%02d", i)
		fields["Drug"+n] = text(fmt.Sprintf("Item %d", i))
		fields["Unit"+n] = text("2.00")
		fields["Net"+n] = text("4.00")
		fields["Qty"+n] = text("2")
		fields["Vat"+n] = text("S")
	}
	doc := entity.NewDocument("multi.png")
	if err := NewShredder(DefaultFieldMap(), nil).Shred(payload(t, fields), doc, Metadata{}); err != nil {
		t.Fatalf("Shred: %v", err)
	}
	if len(doc.LineItems) != 7 {
		t.Fatalf("len(LineItems) = %d, want 7", len(doc.LineItems))
	}
	for i, li := range doc.LineItems {
		if want := fmt.Sprintf("%02d", i+1); li.DocumentLineNumber != want {
			t.Errorf("line %d number = %s, want %s", i, li.DocumentLineNumber, want)
		}
	}
}

func TestShredHeaderOnlyPayloadStaysValid(t *testing.T) {
	raw := payload(t, map[string]any{
		"Inv":         text("INV9"),
		"TaxDate":     text("2021-11-05"),
		"Total":       text("100.00"),
		"VAT":         text("20.00"),
		"TotalIncVAT": text("120.00"),
	})
	doc := entity.NewDocument("header.png")
	if err := NewShredder(DefaultFieldMap(), nil).Shred(raw, doc, Metadata{}); err != nil {
		t.Fatalf("Shred: %v", err)
	}
	if len(doc.LineItems) != 0 {
		t.Errorf("len(LineItems) = %d, want 0", len(doc.LineItems))
	}
	if doc.TaxPeriod != "202111" {
		t.Errorf("TaxPeriod = %q, want 202111", doc.TaxPeriod)
	}
	// missing header strings are warnings only
	if !doc.IsValid() {
		t.Errorf("header-only document should be valid; errors: %+v", doc.Errors)
	}
	if !doc.GrandTotal.Equal(decimal.RequireFromString("120.00")) {
		t.Errorf("GrandTotal = %s", doc.GrandTotal)
	}
}

func TestShredMetadataOverridesRunIdentifier(t *testing.T) {
	doc := entity.NewDocument("meta.png")
	fresh := doc.UniqueRunIdentifier
	meta := Metadata{
		UniqueRunIdentifier: "run-123",
		Thumbprint:          "ab cd",
		ModelID:             "model-1",
		ModelVersion:        "4",
	}
	if err := NewShredder(DefaultFieldMap(), nil).Shred(payload(t, map[string]any{}), doc, meta); err != nil {
		t.Fatalf("Shred: %v", err)
	}
	if doc.UniqueRunIdentifier != "run-123" || doc.UniqueRunIdentifier == fresh {
		t.Errorf("run id = %q, want metadata override", doc.UniqueRunIdentifier)
	}
	if doc.ModelID != "model-1" || doc.ModelVersion != "4" || doc.Thumbprint != "ab cd" {
		t.Errorf("metadata not applied: %+v", doc)
	}
}

func TestShredRejectsPayloadWithoutBag(t *testing.T) {
	doc := entity.NewDocument("bad.png")
	s := NewShredder(DefaultFieldMap(), nil)
	if err := s.Shred([]byte(`{"status":"succeeded"}`), doc, Metadata{}); err == nil {
		t.Error("payload without analyzeResult should be rejected")
	}
	if err := s.Shred([]byte(`not json`), doc, Metadata{}); err == nil {
		t.Error("non-JSON payload should be rejected")
	}
}

func TestValidateEnvelope(t *testing.T) {
	good := payload(t, map[string]any{"Inv": text("1")})
	if err := ValidateEnvelope(good); err != nil {
		t.Errorf("ValidateEnvelope(good) = %v", err)
	}
	if err := ValidateEnvelope([]byte(`{"status":"succeeded"}`)); err == nil {
		t.Error("envelope without analyzeResult should fail validation")
	}
	if err := ValidateEnvelope([]byte(`{`)); err == nil {
		t.Error("malformed JSON should fail validation")
	}
}
