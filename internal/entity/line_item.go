package entity

import "github.com/shopspring/decimal"

// LineItem is one positional line of a shredded document. LineQuantity stays
// a string because source documents can carry non-numeric quantity
// expressions ("2 x 6", "N/A").
type LineItem struct {
	ItemDescription    string          `json:"ItemDescription,omitempty"`
	DocumentLineNumber string          `json:"DocumentLineNumber"` // two-digit, zero-padded
	LineQuantity       string          `json:"LineQuantity,omitempty"`
	UnitPrice          decimal.Decimal `json:"UnitPrice"`
	NetAmount          decimal.Decimal `json:"NetAmount"`
	VATCode            string          `json:"VATCode,omitempty"`
}

// CalculatedLineQuantity derives NetAmount / UnitPrice when both are
// non-zero, else zero. Always recomputed, never stored.
func (li LineItem) CalculatedLineQuantity() decimal.Decimal {
	if li.NetAmount.IsZero() || li.UnitPrice.IsZero() {
		return decimal.Zero
	}
	return li.NetAmount.Div(li.UnitPrice)
}
