package shred

import "github.com/formshred/formshred/constants"

// FieldMap parameterizes the shredder: which bag keys feed which header
// fields, and which prefixes drive positional line discovery. One shredder
// covers every document layout the recognition models emit; layouts differ
// only by their map.
type FieldMap struct {
	OrderNumber    string
	OrderDate      string
	TaxDate        string
	DocumentNumber string
	Account        string
	NetTotal       string
	VatAmount      string
	GrandTotal     string
	PostCode       string

	LineItemPrefix  string
	UnitPricePrefix string
	QuantityPrefix  string
	NetPricePrefix  string
	VatCodePrefix   string

	// MaxLines bounds positional discovery (exclusive upper index).
	MaxLines int
}

// DefaultFieldMap returns the legacy invoice layout.
func DefaultFieldMap() FieldMap {
	return FieldMap{
		OrderNumber:    constants.OrderNumber,
		OrderDate:      constants.OrderDate,
		TaxDate:        constants.TaxDate,
		DocumentNumber: constants.InvoiceNumber,
		Account:        constants.Account,
		NetTotal:       constants.NetTotal,
		VatAmount:      constants.VatAmount,
		GrandTotal:     constants.GrandTotal,
		PostCode:       constants.PostCode,

		LineItemPrefix:  constants.LineItemPrefix,
		UnitPricePrefix: constants.UnitPricePrefix,
		QuantityPrefix:  constants.QuantityPrefix,
		NetPricePrefix:  constants.NetPricePrefix,
		VatCodePrefix:   constants.VatCodePrefix,

		MaxLines: constants.MaxDocumentLines,
	}
}
