package entity

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/formshred/formshred/constants"
)

// Severity classifies a document error. Only Terminal errors make a document
// invalid; Warnings and Observations are data-quality signals.
type Severity int

const (
	SeverityObservation Severity = iota
	SeverityWarning
	SeverityTerminal
)

func (s Severity) String() string {
	switch s {
	case SeverityObservation:
		return "Observation"
	case SeverityWarning:
		return "Warning"
	case SeverityTerminal:
		return "Terminal"
	}
	return fmt.Sprintf("Severity(%d)", int(s))
}

func (s Severity) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *Severity) UnmarshalJSON(b []byte) error {
	var v string
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	switch v {
	case "Observation":
		*s = SeverityObservation
	case "Warning":
		*s = SeverityWarning
	case "Terminal":
		*s = SeverityTerminal
	default:
		return fmt.Errorf("unknown severity %q", v)
	}
	return nil
}

// DocumentError is one recorded extraction failure. Errors are append-only
// and kept in discovery order; there is no dedup.
type DocumentError struct {
	ErrorCode     string   `json:"ErrorCode"`
	ErrorSeverity Severity `json:"ErrorSeverity"`
	ErrorMessage  string   `json:"ErrorMessage"`
}

// SafeString replaces single quotes with the legacy illegal-character marker.
// Persistence is parameterized, but consumers of the error list still expect
// marked-up messages.
func SafeString(s string) string {
	return strings.ReplaceAll(s, "'", constants.IllegalCharacterMarker)
}
