package fieldbag

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/formshred/formshred/constants"
	"github.com/formshred/formshred/internal/entity"
)

// ErrorSink receives one error per extraction failure. *entity.Document
// satisfies it.
type ErrorSink interface {
	AddError(code string, severity entity.Severity, message string)
}

// Accessor binds a bag to an error sink. All lookups record failures on the
// sink at the caller-specified severity and never panic.
type Accessor struct {
	bag  Bag
	sink ErrorSink
}

func NewAccessor(bag Bag, sink ErrorSink) *Accessor {
	return &Accessor{bag: bag, sink: sink}
}

// dateLayouts are tried in order. All are locale-independent; day-first
// before month-first mirrors the documents this service reads.
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"02/01/2006",
	"01/02/2006",
	"2 January 2006",
	"2 Jan 2006",
	"Jan 2, 2006",
}

// GetString returns the sanitized text of a field. Missing or null fields
// record one error at the given severity and return ok=false.
func (a *Accessor) GetString(id string, severity entity.Severity) (string, bool) {
	f, present := a.bag[id]
	if !present {
		a.sink.AddError(constants.ErrStringMissing, severity,
			fmt.Sprintf("GetString() Specified Element %s does not exist in recognized output", id))
		return "", false
	}
	if f == nil {
		a.sink.AddError(constants.ErrStringMissing, severity,
			fmt.Sprintf("GetString() Specified Element %s is null", id))
		return "", false
	}
	return entity.SafeString(f.Text), true
}

// GetNumber parses a field as a decimal after stripping whitespace. A parsed
// value of exactly zero is returned with ok=true but still records a Warning:
// zero amounts are legitimate yet suspicious.
func (a *Accessor) GetNumber(id string, severity entity.Severity) (decimal.Decimal, bool) {
	f, present := a.bag[id]
	if !present {
		a.sink.AddError(constants.ErrNumberMissing, severity,
			fmt.Sprintf("GetNumber() Specified Element %s does not exist in recognized output", id))
		return decimal.Zero, false
	}
	if f == nil {
		a.sink.AddError(constants.ErrNumberMissing, severity,
			fmt.Sprintf("GetNumber() Specified Element %s is null", id))
		return decimal.Zero, false
	}
	if f.Text == "" {
		a.sink.AddError(constants.ErrNumberNull, severity,
			fmt.Sprintf("GetNumber() %s exists but its value is null", id))
		return decimal.Zero, false
	}

	cleaned := strings.ReplaceAll(strings.TrimSpace(f.Text), " ", "")
	value, err := decimal.NewFromString(cleaned)
	if err != nil {
		a.sink.AddError(constants.ErrNumberFormat, severity,
			fmt.Sprintf("GetNumber() %s exists but cannot be parsed as a number=%s", id, f.Text))
		return decimal.Zero, false
	}
	if value.IsZero() {
		a.sink.AddError(constants.ErrNumberZero, entity.SeverityWarning,
			fmt.Sprintf("GetNumber() %s exists but its value is zero", id))
	}
	return value, true
}

// GetDate parses a field against the known layouts. Unparsable values record
// an error carrying the sanitized raw string.
func (a *Accessor) GetDate(id string, severity entity.Severity) (time.Time, bool) {
	f, present := a.bag[id]
	if !present {
		a.sink.AddError(constants.ErrDateMissing, severity,
			fmt.Sprintf("GetDate() Specified Element %s does not exist in recognized output", id))
		return time.Time{}, false
	}
	if f == nil {
		a.sink.AddError(constants.ErrDateMissing, severity,
			fmt.Sprintf("GetDate() Specified Element %s is null", id))
		return time.Time{}, false
	}

	raw := strings.TrimSpace(f.Text)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	a.sink.AddError(constants.ErrDateFormat, severity,
		fmt.Sprintf("GetDate() Specified Element %s does not contain a valid date: value=%s", id, raw))
	return time.Time{}, false
}
