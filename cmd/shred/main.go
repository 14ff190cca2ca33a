// Command shred runs the shredder over a recognition payload on disk and
// writes the document JSON next to it. No database, no storage: just the
// transform, for inspecting what a payload turns into.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/formshred/formshred/constants"
	"github.com/formshred/formshred/internal/entity"
	"github.com/formshred/formshred/internal/shred"
)

func main() {
	var (
		in  = flag.String("in", "", "recognized JSON payload (required)")
		out = flag.String("out", "", "output document JSON path (defaults next to input)")
	)
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if *in == "" {
		fmt.Fprintln(os.Stderr, "usage: shred -in <recognized.json> [-out <document.json>]")
		os.Exit(2)
	}

	raw, err := os.ReadFile(*in)
	if err != nil {
		logger.Error("read payload", "in", *in, "error", err)
		os.Exit(1)
	}

	base := strings.TrimSuffix(filepath.Base(*in), constants.RecognizedExtension)
	base = strings.TrimSuffix(base, filepath.Ext(base))

	if err := shred.ValidateEnvelope(raw); err != nil {
		logger.Error("payload rejected", "in", *in, "error", err)
		os.Exit(1)
	}

	doc := entity.NewDocument(base)
	shredder := shred.NewShredder(shred.DefaultFieldMap(), logger)
	if err := shredder.Shred(raw, doc, shred.Metadata{}); err != nil {
		logger.Error("shredding failed", "in", *in, "error", err)
		os.Exit(1)
	}

	docJSON, err := doc.ToJSON()
	if err != nil {
		logger.Error("encode document", "error", err)
		os.Exit(1)
	}

	dest := *out
	if dest == "" {
		dest = filepath.Join(filepath.Dir(*in), base+constants.DocumentExtension)
	}
	if err := os.WriteFile(dest, docJSON, 0o644); err != nil {
		logger.Error("write document", "out", dest, "error", err)
		os.Exit(1)
	}

	logger.Info("shred complete",
		"in", *in, "out", dest,
		"lines", len(doc.LineItems),
		"terminal_errors", doc.TerminalErrorCount(),
		"warnings", doc.WarningErrorCount(),
		"valid", doc.IsValid())
}
