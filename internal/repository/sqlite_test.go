package repository

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/formshred/formshred/internal/entity"
)

func TestSQLitePath(t *testing.T) {
	tests := []struct {
		dsn  string
		path string
		ok   bool
	}{
		{"sqlite://shred.db", "shred.db", true},
		{"sqlite:///var/lib/formshred/shred.db", "/var/lib/formshred/shred.db", true},
		{"sqlite://:memory:", ":memory:", true},
		{"sqlite://", "", false},
		{"postgres://user@host/db", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		path, ok := SQLitePath(tt.dsn)
		if ok != tt.ok || path != tt.path {
			t.Errorf("SQLitePath(%q) = %q, %v; want %q, %v", tt.dsn, path, ok, tt.path, tt.ok)
		}
	}
}

func TestSQLiteSaveAndList(t *testing.T) {
	client, err := OpenSQLite(filepath.Join(t.TempDir(), "shred.db"), nil)
	if err != nil {
		t.Fatalf("OpenSQLite: %v", err)
	}
	defer client.Close()

	ctx := context.Background()
	if err := client.Schema.Create(ctx); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	doc := entity.NewDocument("acme-scan")
	doc.DocumentNumber = "INV-17"
	doc.NetTotal = decimal.NewFromFloat(100.50)
	doc.LineItems = append(doc.LineItems, entity.LineItem{
		DocumentLineNumber: "01",
		ItemDescription:    "Paracetamol 500mg",
		UnitPrice:          decimal.NewFromFloat(2.5),
		NetAmount:          decimal.NewFromFloat(12.5),
	})
	doc.AddError("PRE0004", entity.SeverityWarning, "VAT value is zero")

	docs := NewDocumentRepository(client, nil)
	id, err := docs.SaveDocument(ctx, doc, "acme")
	if err != nil {
		t.Fatalf("SaveDocument: %v", err)
	}

	rows, err := docs.ListDocuments(ctx, "acme", nil, nil)
	if err != nil {
		t.Fatalf("ListDocuments: %v", err)
	}
	if len(rows) != 1 || rows[0].ID != id {
		t.Fatalf("rows = %d", len(rows))
	}
	row := rows[0]
	if row.InvoiceNumber == nil || *row.InvoiceNumber != "INV-17" {
		t.Errorf("invoice number = %v", row.InvoiceNumber)
	}
	if !row.IsValid || row.WarningErrorCount != 1 {
		t.Errorf("valid = %v, warnings = %d", row.IsValid, row.WarningErrorCount)
	}
	if len(row.Edges.LineItems) != 1 {
		t.Fatalf("line items = %d", len(row.Edges.LineItems))
	}
}

func TestSQLiteModelVersionBump(t *testing.T) {
	client, err := OpenSQLite(filepath.Join(t.TempDir(), "models.db"), nil)
	if err != nil {
		t.Fatalf("OpenSQLite: %v", err)
	}
	defer client.Close()

	ctx := context.Background()
	if err := client.Schema.Create(ctx); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	models := NewModelRepository(client, nil)
	result := &entity.TrainingResult{
		ModelID:              "m-1",
		UpdatedDateTime:      time.Now().UTC(),
		AverageModelAccuracy: decimal.NewFromFloat(0.91),
	}
	if _, err := models.RecordTraining(ctx, "acme", result); err != nil {
		t.Fatalf("RecordTraining: %v", err)
	}
	result.ModelID = "m-2"
	if _, err := models.RecordTraining(ctx, "acme", result); err != nil {
		t.Fatalf("RecordTraining: %v", err)
	}

	latest, err := models.LatestModel(ctx, "acme")
	if err != nil {
		t.Fatalf("LatestModel: %v", err)
	}
	if latest.ModelID != "m-2" || latest.ModelVersion != 2 {
		t.Errorf("latest = %s v%d", latest.ModelID, latest.ModelVersion)
	}
}
