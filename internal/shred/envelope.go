package shred

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/formshred/formshred/internal/common"
)

// envelope is the recognition-service response shape the shredder reads. The
// service returns much more; everything else is ignored.
type envelope struct {
	Status        string          `json:"status"`
	Errors        json.RawMessage `json:"errors"`
	AnalyzeResult *struct {
		DocumentResults []struct {
			Fields json.RawMessage `json:"fields"`
		} `json:"documentResults"`
	} `json:"analyzeResult"`
}

const envelopeSchemaJSON = `{
	"type": "object",
	"required": ["analyzeResult"],
	"properties": {
		"status": {"type": "string"},
		"analyzeResult": {
			"type": "object",
			"required": ["documentResults"],
			"properties": {
				"documentResults": {
					"type": "array",
					"minItems": 1,
					"items": {
						"type": "object",
						"required": ["fields"],
						"properties": {
							"fields": {"type": "object"}
						}
					}
				}
			}
		}
	}
}`

var envelopeSchema = jsonschema.MustCompileString("envelope.json", envelopeSchemaJSON)

// ValidateEnvelope checks that a terminal recognition payload carries a field
// bag where the shredder expects one. A failure here is a contract violation
// by the remote service, not a field-extraction error.
func ValidateEnvelope(raw []byte) error {
	var v any
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(&v); err != nil {
		return common.NewAppError(common.CodeContractViolation, "recognition payload is not valid JSON", err)
	}
	if err := envelopeSchema.Validate(v); err != nil {
		return common.NewAppError(common.CodeContractViolation, fmt.Sprintf("recognition payload shape: %v", err), nil)
	}
	return nil
}
