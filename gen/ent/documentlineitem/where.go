// Code generated by ent, DO NOT EDIT.

package documentlineitem

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/formshred/formshred/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.DocumentLineItem {
	return predicate.DocumentLineItem(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.DocumentLineItem {
	return predicate.DocumentLineItem(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.DocumentLineItem {
	return predicate.DocumentLineItem(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.DocumentLineItem {
	return predicate.DocumentLineItem(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.DocumentLineItem {
	return predicate.DocumentLineItem(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.DocumentLineItem {
	return predicate.DocumentLineItem(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.DocumentLineItem {
	return predicate.DocumentLineItem(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.DocumentLineItem {
	return predicate.DocumentLineItem(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.DocumentLineItem {
	return predicate.DocumentLineItem(sql.FieldLTE(FieldID, id))
}

// DocumentID applies equality check predicate on the "document_id" field. It's identical to DocumentIDEQ.
func DocumentID(v uuid.UUID) predicate.DocumentLineItem {
	return predicate.DocumentLineItem(sql.FieldEQ(FieldDocumentID, v))
}

// LineNumber applies equality check predicate on the "line_number" field. It's identical to LineNumberEQ.
func LineNumber(v string) predicate.DocumentLineItem {
	return predicate.DocumentLineItem(sql.FieldEQ(FieldLineNumber, v))
}

// ItemDescription applies equality check predicate on the "item_description" field. It's identical to ItemDescriptionEQ.
func ItemDescription(v string) predicate.DocumentLineItem {
	return predicate.DocumentLineItem(sql.FieldEQ(FieldItemDescription, v))
}

// LineQuantity applies equality check predicate on the "line_quantity" field. It's identical to LineQuantityEQ.
func LineQuantity(v string) predicate.DocumentLineItem {
	return predicate.DocumentLineItem(sql.FieldEQ(FieldLineQuantity, v))
}

// UnitPrice applies equality check predicate on the "unit_price" field. It's identical to UnitPriceEQ.
func UnitPrice(v float64) predicate.DocumentLineItem {
	return predicate.DocumentLineItem(sql.FieldEQ(FieldUnitPrice, v))
}

// NetAmount applies equality check predicate on the "net_amount" field. It's identical to NetAmountEQ.
func NetAmount(v float64) predicate.DocumentLineItem {
	return predicate.DocumentLineItem(sql.FieldEQ(FieldNetAmount, v))
}

// CalculatedQuantity applies equality check predicate on the "calculated_quantity" field. It's identical to CalculatedQuantityEQ.
func CalculatedQuantity(v float64) predicate.DocumentLineItem {
	return predicate.DocumentLineItem(sql.FieldEQ(FieldCalculatedQuantity, v))
}

// VatCode applies equality check predicate on the "vat_code" field. It's identical to VatCodeEQ.
func VatCode(v string) predicate.DocumentLineItem {
	return predicate.DocumentLineItem(sql.FieldEQ(FieldVatCode, v))
}

// DocumentIDEQ applies the EQ predicate on the "document_id" field.
func DocumentIDEQ(v uuid.UUID) predicate.DocumentLineItem {
	return predicate.DocumentLineItem(sql.FieldEQ(FieldDocumentID, v))
}

// DocumentIDNEQ applies the NEQ predicate on the "document_id" field.
func DocumentIDNEQ(v uuid.UUID) predicate.DocumentLineItem {
	return predicate.DocumentLineItem(sql.FieldNEQ(FieldDocumentID, v))
}

// DocumentIDIn applies the In predicate on the "document_id" field.
func DocumentIDIn(vs ...uuid.UUID) predicate.DocumentLineItem {
	return predicate.DocumentLineItem(sql.FieldIn(FieldDocumentID, vs...))
}

// DocumentIDNotIn applies the NotIn predicate on the "document_id" field.
func DocumentIDNotIn(vs ...uuid.UUID) predicate.DocumentLineItem {
	return predicate.DocumentLineItem(sql.FieldNotIn(FieldDocumentID, vs...))
}

// LineNumberEQ applies the EQ predicate on the "line_number" field.
func LineNumberEQ(v string) predicate.DocumentLineItem {
	return predicate.DocumentLineItem(sql.FieldEQ(FieldLineNumber, v))
}

// LineNumberNEQ applies the NEQ predicate on the "line_number" field.
func LineNumberNEQ(v string) predicate.DocumentLineItem {
	return predicate.DocumentLineItem(sql.FieldNEQ(FieldLineNumber, v))
}

// LineNumberIn applies the In predicate on the "line_number" field.
func LineNumberIn(vs ...string) predicate.DocumentLineItem {
	return predicate.DocumentLineItem(sql.FieldIn(FieldLineNumber, vs...))
}

// LineNumberNotIn applies the NotIn predicate on the "line_number" field.
func LineNumberNotIn(vs ...string) predicate.DocumentLineItem {
	return predicate.DocumentLineItem(sql.FieldNotIn(FieldLineNumber, vs...))
}

// LineNumberGT applies the GT predicate on the "line_number" field.
func LineNumberGT(v string) predicate.DocumentLineItem {
	return predicate.DocumentLineItem(sql.FieldGT(FieldLineNumber, v))
}

// LineNumberGTE applies the GTE predicate on the "line_number" field.
func LineNumberGTE(v string) predicate.DocumentLineItem {
	return predicate.DocumentLineItem(sql.FieldGTE(FieldLineNumber, v))
}

// LineNumberLT applies the LT predicate on the "line_number" field.
func LineNumberLT(v string) predicate.DocumentLineItem {
	return predicate.DocumentLineItem(sql.FieldLT(FieldLineNumber, v))
}

// LineNumberLTE applies the LTE predicate on the "line_number" field.
func LineNumberLTE(v string) predicate.DocumentLineItem {
	return predicate.DocumentLineItem(sql.FieldLTE(FieldLineNumber, v))
}

// LineNumberContains applies the Contains predicate on the "line_number" field.
func LineNumberContains(v string) predicate.DocumentLineItem {
	return predicate.DocumentLineItem(sql.FieldContains(FieldLineNumber, v))
}

// LineNumberHasPrefix applies the HasPrefix predicate on the "line_number" field.
func LineNumberHasPrefix(v string) predicate.DocumentLineItem {
	return predicate.DocumentLineItem(sql.FieldHasPrefix(FieldLineNumber, v))
}

// LineNumberHasSuffix applies the HasSuffix predicate on the "line_number" field.
func LineNumberHasSuffix(v string) predicate.DocumentLineItem {
	return predicate.DocumentLineItem(sql.FieldHasSuffix(FieldLineNumber, v))
}

// LineNumberEqualFold applies the EqualFold predicate on the "line_number" field.
func LineNumberEqualFold(v string) predicate.DocumentLineItem {
	return predicate.DocumentLineItem(sql.FieldEqualFold(FieldLineNumber, v))
}

// LineNumberContainsFold applies the ContainsFold predicate on the "line_number" field.
func LineNumberContainsFold(v string) predicate.DocumentLineItem {
	return predicate.DocumentLineItem(sql.FieldContainsFold(FieldLineNumber, v))
}

// ItemDescriptionEQ applies the EQ predicate on the "item_description" field.
func ItemDescriptionEQ(v string) predicate.DocumentLineItem {
	return predicate.DocumentLineItem(sql.FieldEQ(FieldItemDescription, v))
}

// ItemDescriptionNEQ applies the NEQ predicate on the "item_description" field.
func ItemDescriptionNEQ(v string) predicate.DocumentLineItem {
	return predicate.DocumentLineItem(sql.FieldNEQ(FieldItemDescription, v))
}

// ItemDescriptionIn applies the In predicate on the "item_description" field.
func ItemDescriptionIn(vs ...string) predicate.DocumentLineItem {
	return predicate.DocumentLineItem(sql.FieldIn(FieldItemDescription, vs...))
}

// ItemDescriptionNotIn applies the NotIn predicate on the "item_description" field.
func ItemDescriptionNotIn(vs ...string) predicate.DocumentLineItem {
	return predicate.DocumentLineItem(sql.FieldNotIn(FieldItemDescription, vs...))
}

// ItemDescriptionGT applies the GT predicate on the "item_description" field.
func ItemDescriptionGT(v string) predicate.DocumentLineItem {
	return predicate.DocumentLineItem(sql.FieldGT(FieldItemDescription, v))
}

// ItemDescriptionGTE applies the GTE predicate on the "item_description" field.
func ItemDescriptionGTE(v string) predicate.DocumentLineItem {
	return predicate.DocumentLineItem(sql.FieldGTE(FieldItemDescription, v))
}

// ItemDescriptionLT applies the LT predicate on the "item_description" field.
func ItemDescriptionLT(v string) predicate.DocumentLineItem {
	return predicate.DocumentLineItem(sql.FieldLT(FieldItemDescription, v))
}

// ItemDescriptionLTE applies the LTE predicate on the "item_description" field.
func ItemDescriptionLTE(v string) predicate.DocumentLineItem {
	return predicate.DocumentLineItem(sql.FieldLTE(FieldItemDescription, v))
}

// ItemDescriptionContains applies the Contains predicate on the "item_description" field.
func ItemDescriptionContains(v string) predicate.DocumentLineItem {
	return predicate.DocumentLineItem(sql.FieldContains(FieldItemDescription, v))
}

// ItemDescriptionHasPrefix applies the HasPrefix predicate on the "item_description" field.
func ItemDescriptionHasPrefix(v string) predicate.DocumentLineItem {
	return predicate.DocumentLineItem(sql.FieldHasPrefix(FieldItemDescription, v))
}

// ItemDescriptionHasSuffix applies the HasSuffix predicate on the "item_description" field.
func ItemDescriptionHasSuffix(v string) predicate.DocumentLineItem {
	return predicate.DocumentLineItem(sql.FieldHasSuffix(FieldItemDescription, v))
}

// ItemDescriptionIsNil applies the IsNil predicate on the "item_description" field.
func ItemDescriptionIsNil() predicate.DocumentLineItem {
	return predicate.DocumentLineItem(sql.FieldIsNull(FieldItemDescription))
}

// ItemDescriptionNotNil applies the NotNil predicate on the "item_description" field.
func ItemDescriptionNotNil() predicate.DocumentLineItem {
	return predicate.DocumentLineItem(sql.FieldNotNull(FieldItemDescription))
}

// ItemDescriptionEqualFold applies the EqualFold predicate on the "item_description" field.
func ItemDescriptionEqualFold(v string) predicate.DocumentLineItem {
	return predicate.DocumentLineItem(sql.FieldEqualFold(FieldItemDescription, v))
}

// ItemDescriptionContainsFold applies the ContainsFold predicate on the "item_description" field.
func ItemDescriptionContainsFold(v string) predicate.DocumentLineItem {
	return predicate.DocumentLineItem(sql.FieldContainsFold(FieldItemDescription, v))
}

// LineQuantityEQ applies the EQ predicate on the "line_quantity" field.
func LineQuantityEQ(v string) predicate.DocumentLineItem {
	return predicate.DocumentLineItem(sql.FieldEQ(FieldLineQuantity, v))
}

// LineQuantityNEQ applies the NEQ predicate on the "line_quantity" field.
func LineQuantityNEQ(v string) predicate.DocumentLineItem {
	return predicate.DocumentLineItem(sql.FieldNEQ(FieldLineQuantity, v))
}

// LineQuantityIn applies the In predicate on the "line_quantity" field.
func LineQuantityIn(vs ...string) predicate.DocumentLineItem {
	return predicate.DocumentLineItem(sql.FieldIn(FieldLineQuantity, vs...))
}

// LineQuantityNotIn applies the NotIn predicate on the "line_quantity" field.
func LineQuantityNotIn(vs ...string) predicate.DocumentLineItem {
	return predicate.DocumentLineItem(sql.FieldNotIn(FieldLineQuantity, vs...))
}

// LineQuantityGT applies the GT predicate on the "line_quantity" field.
func LineQuantityGT(v string) predicate.DocumentLineItem {
	return predicate.DocumentLineItem(sql.FieldGT(FieldLineQuantity, v))
}

// LineQuantityGTE applies the GTE predicate on the "line_quantity" field.
func LineQuantityGTE(v string) predicate.DocumentLineItem {
	return predicate.DocumentLineItem(sql.FieldGTE(FieldLineQuantity, v))
}

// LineQuantityLT applies the LT predicate on the "line_quantity" field.
func LineQuantityLT(v string) predicate.DocumentLineItem {
	return predicate.DocumentLineItem(sql.FieldLT(FieldLineQuantity, v))
}

// LineQuantityLTE applies the LTE predicate on the "line_quantity" field.
func LineQuantityLTE(v string) predicate.DocumentLineItem {
	return predicate.DocumentLineItem(sql.FieldLTE(FieldLineQuantity, v))
}

// LineQuantityContains applies the Contains predicate on the "line_quantity" field.
func LineQuantityContains(v string) predicate.DocumentLineItem {
	return predicate.DocumentLineItem(sql.FieldContains(FieldLineQuantity, v))
}

// LineQuantityHasPrefix applies the HasPrefix predicate on the "line_quantity" field.
func LineQuantityHasPrefix(v string) predicate.DocumentLineItem {
	return predicate.DocumentLineItem(sql.FieldHasPrefix(FieldLineQuantity, v))
}

// LineQuantityHasSuffix applies the HasSuffix predicate on the "line_quantity" field.
func LineQuantityHasSuffix(v string) predicate.DocumentLineItem {
	return predicate.DocumentLineItem(sql.FieldHasSuffix(FieldLineQuantity, v))
}

// LineQuantityIsNil applies the IsNil predicate on the "line_quantity" field.
func LineQuantityIsNil() predicate.DocumentLineItem {
	return predicate.DocumentLineItem(sql.FieldIsNull(FieldLineQuantity))
}

// LineQuantityNotNil applies the NotNil predicate on the "line_quantity" field.
func LineQuantityNotNil() predicate.DocumentLineItem {
	return predicate.DocumentLineItem(sql.FieldNotNull(FieldLineQuantity))
}

// LineQuantityEqualFold applies the EqualFold predicate on the "line_quantity" field.
func LineQuantityEqualFold(v string) predicate.DocumentLineItem {
	return predicate.DocumentLineItem(sql.FieldEqualFold(FieldLineQuantity, v))
}

// LineQuantityContainsFold applies the ContainsFold predicate on the "line_quantity" field.
func LineQuantityContainsFold(v string) predicate.DocumentLineItem {
	return predicate.DocumentLineItem(sql.FieldContainsFold(FieldLineQuantity, v))
}

// UnitPriceEQ applies the EQ predicate on the "unit_price" field.
func UnitPriceEQ(v float64) predicate.DocumentLineItem {
	return predicate.DocumentLineItem(sql.FieldEQ(FieldUnitPrice, v))
}

// UnitPriceNEQ applies the NEQ predicate on the "unit_price" field.
func UnitPriceNEQ(v float64) predicate.DocumentLineItem {
	return predicate.DocumentLineItem(sql.FieldNEQ(FieldUnitPrice, v))
}

// UnitPriceIn applies the In predicate on the "unit_price" field.
func UnitPriceIn(vs ...float64) predicate.DocumentLineItem {
	return predicate.DocumentLineItem(sql.FieldIn(FieldUnitPrice, vs...))
}

// UnitPriceNotIn applies the NotIn predicate on the "unit_price" field.
func UnitPriceNotIn(vs ...float64) predicate.DocumentLineItem {
	return predicate.DocumentLineItem(sql.FieldNotIn(FieldUnitPrice, vs...))
}

// UnitPriceGT applies the GT predicate on the "unit_price" field.
func UnitPriceGT(v float64) predicate.DocumentLineItem {
	return predicate.DocumentLineItem(sql.FieldGT(FieldUnitPrice, v))
}

// UnitPriceGTE applies the GTE predicate on the "unit_price" field.
func UnitPriceGTE(v float64) predicate.DocumentLineItem {
	return predicate.DocumentLineItem(sql.FieldGTE(FieldUnitPrice, v))
}

// UnitPriceLT applies the LT predicate on the "unit_price" field.
func UnitPriceLT(v float64) predicate.DocumentLineItem {
	return predicate.DocumentLineItem(sql.FieldLT(FieldUnitPrice, v))
}

// UnitPriceLTE applies the LTE predicate on the "unit_price" field.
func UnitPriceLTE(v float64) predicate.DocumentLineItem {
	return predicate.DocumentLineItem(sql.FieldLTE(FieldUnitPrice, v))
}

// UnitPriceIsNil applies the IsNil predicate on the "unit_price" field.
func UnitPriceIsNil() predicate.DocumentLineItem {
	return predicate.DocumentLineItem(sql.FieldIsNull(FieldUnitPrice))
}

// UnitPriceNotNil applies the NotNil predicate on the "unit_price" field.
func UnitPriceNotNil() predicate.DocumentLineItem {
	return predicate.DocumentLineItem(sql.FieldNotNull(FieldUnitPrice))
}

// NetAmountEQ applies the EQ predicate on the "net_amount" field.
func NetAmountEQ(v float64) predicate.DocumentLineItem {
	return predicate.DocumentLineItem(sql.FieldEQ(FieldNetAmount, v))
}

// NetAmountNEQ applies the NEQ predicate on the "net_amount" field.
func NetAmountNEQ(v float64) predicate.DocumentLineItem {
	return predicate.DocumentLineItem(sql.FieldNEQ(FieldNetAmount, v))
}

// NetAmountIn applies the In predicate on the "net_amount" field.
func NetAmountIn(vs ...float64) predicate.DocumentLineItem {
	return predicate.DocumentLineItem(sql.FieldIn(FieldNetAmount, vs...))
}

// NetAmountNotIn applies the NotIn predicate on the "net_amount" field.
func NetAmountNotIn(vs ...float64) predicate.DocumentLineItem {
	return predicate.DocumentLineItem(sql.FieldNotIn(FieldNetAmount, vs...))
}

// NetAmountGT applies the GT predicate on the "net_amount" field.
func NetAmountGT(v float64) predicate.DocumentLineItem {
	return predicate.DocumentLineItem(sql.FieldGT(FieldNetAmount, v))
}

// NetAmountGTE applies the GTE predicate on the "net_amount" field.
func NetAmountGTE(v float64) predicate.DocumentLineItem {
	return predicate.DocumentLineItem(sql.FieldGTE(FieldNetAmount, v))
}

// NetAmountLT applies the LT predicate on the "net_amount" field.
func NetAmountLT(v float64) predicate.DocumentLineItem {
	return predicate.DocumentLineItem(sql.FieldLT(FieldNetAmount, v))
}

// NetAmountLTE applies the LTE predicate on the "net_amount" field.
func NetAmountLTE(v float64) predicate.DocumentLineItem {
	return predicate.DocumentLineItem(sql.FieldLTE(FieldNetAmount, v))
}

// NetAmountIsNil applies the IsNil predicate on the "net_amount" field.
func NetAmountIsNil() predicate.DocumentLineItem {
	return predicate.DocumentLineItem(sql.FieldIsNull(FieldNetAmount))
}

// NetAmountNotNil applies the NotNil predicate on the "net_amount" field.
func NetAmountNotNil() predicate.DocumentLineItem {
	return predicate.DocumentLineItem(sql.FieldNotNull(FieldNetAmount))
}

// CalculatedQuantityEQ applies the EQ predicate on the "calculated_quantity" field.
func CalculatedQuantityEQ(v float64) predicate.DocumentLineItem {
	return predicate.DocumentLineItem(sql.FieldEQ(FieldCalculatedQuantity, v))
}

// CalculatedQuantityNEQ applies the NEQ predicate on the "calculated_quantity" field.
func CalculatedQuantityNEQ(v float64) predicate.DocumentLineItem {
	return predicate.DocumentLineItem(sql.FieldNEQ(FieldCalculatedQuantity, v))
}

// CalculatedQuantityIn applies the In predicate on the "calculated_quantity" field.
func CalculatedQuantityIn(vs ...float64) predicate.DocumentLineItem {
	return predicate.DocumentLineItem(sql.FieldIn(FieldCalculatedQuantity, vs...))
}

// CalculatedQuantityNotIn applies the NotIn predicate on the "calculated_quantity" field.
func CalculatedQuantityNotIn(vs ...float64) predicate.DocumentLineItem {
	return predicate.DocumentLineItem(sql.FieldNotIn(FieldCalculatedQuantity, vs...))
}

// CalculatedQuantityGT applies the GT predicate on the "calculated_quantity" field.
func CalculatedQuantityGT(v float64) predicate.DocumentLineItem {
	return predicate.DocumentLineItem(sql.FieldGT(FieldCalculatedQuantity, v))
}

// CalculatedQuantityGTE applies the GTE predicate on the "calculated_quantity" field.
func CalculatedQuantityGTE(v float64) predicate.DocumentLineItem {
	return predicate.DocumentLineItem(sql.FieldGTE(FieldCalculatedQuantity, v))
}

// CalculatedQuantityLT applies the LT predicate on the "calculated_quantity" field.
func CalculatedQuantityLT(v float64) predicate.DocumentLineItem {
	return predicate.DocumentLineItem(sql.FieldLT(FieldCalculatedQuantity, v))
}

// CalculatedQuantityLTE applies the LTE predicate on the "calculated_quantity" field.
func CalculatedQuantityLTE(v float64) predicate.DocumentLineItem {
	return predicate.DocumentLineItem(sql.FieldLTE(FieldCalculatedQuantity, v))
}

// CalculatedQuantityIsNil applies the IsNil predicate on the "calculated_quantity" field.
func CalculatedQuantityIsNil() predicate.DocumentLineItem {
	return predicate.DocumentLineItem(sql.FieldIsNull(FieldCalculatedQuantity))
}

// CalculatedQuantityNotNil applies the NotNil predicate on the "calculated_quantity" field.
func CalculatedQuantityNotNil() predicate.DocumentLineItem {
	return predicate.DocumentLineItem(sql.FieldNotNull(FieldCalculatedQuantity))
}

// VatCodeEQ applies the EQ predicate on the "vat_code" field.
func VatCodeEQ(v string) predicate.DocumentLineItem {
	return predicate.DocumentLineItem(sql.FieldEQ(FieldVatCode, v))
}

// VatCodeNEQ applies the NEQ predicate on the "vat_code" field.
func VatCodeNEQ(v string) predicate.DocumentLineItem {
	return predicate.DocumentLineItem(sql.FieldNEQ(FieldVatCode, v))
}

// VatCodeIn applies the In predicate on the "vat_code" field.
func VatCodeIn(vs ...string) predicate.DocumentLineItem {
	return predicate.DocumentLineItem(sql.FieldIn(FieldVatCode, vs...))
}

// VatCodeNotIn applies the NotIn predicate on the "vat_code" field.
func VatCodeNotIn(vs ...string) predicate.DocumentLineItem {
	return predicate.DocumentLineItem(sql.FieldNotIn(FieldVatCode, vs...))
}

// VatCodeGT applies the GT predicate on the "vat_code" field.
func VatCodeGT(v string) predicate.DocumentLineItem {
	return predicate.DocumentLineItem(sql.FieldGT(FieldVatCode, v))
}

// VatCodeGTE applies the GTE predicate on the "vat_code" field.
func VatCodeGTE(v string) predicate.DocumentLineItem {
	return predicate.DocumentLineItem(sql.FieldGTE(FieldVatCode, v))
}

// VatCodeLT applies the LT predicate on the "vat_code" field.
func VatCodeLT(v string) predicate.DocumentLineItem {
	return predicate.DocumentLineItem(sql.FieldLT(FieldVatCode, v))
}

// VatCodeLTE applies the LTE predicate on the "vat_code" field.
func VatCodeLTE(v string) predicate.DocumentLineItem {
	return predicate.DocumentLineItem(sql.FieldLTE(FieldVatCode, v))
}

// VatCodeContains applies the Contains predicate on the "vat_code" field.
func VatCodeContains(v string) predicate.DocumentLineItem {
	return predicate.DocumentLineItem(sql.FieldContains(FieldVatCode, v))
}

// VatCodeHasPrefix applies the HasPrefix predicate on the "vat_code" field.
func VatCodeHasPrefix(v string) predicate.DocumentLineItem {
	return predicate.DocumentLineItem(sql.FieldHasPrefix(FieldVatCode, v))
}

// VatCodeHasSuffix applies the HasSuffix predicate on the "vat_code" field.
func VatCodeHasSuffix(v string) predicate.DocumentLineItem {
	return predicate.DocumentLineItem(sql.FieldHasSuffix(FieldVatCode, v))
}

// VatCodeIsNil applies the IsNil predicate on the "vat_code" field.
func VatCodeIsNil() predicate.DocumentLineItem {
	return predicate.DocumentLineItem(sql.FieldIsNull(FieldVatCode))
}

// VatCodeNotNil applies the NotNil predicate on the "vat_code" field.
func VatCodeNotNil() predicate.DocumentLineItem {
	return predicate.DocumentLineItem(sql.FieldNotNull(FieldVatCode))
}

// VatCodeEqualFold applies the EqualFold predicate on the "vat_code" field.
func VatCodeEqualFold(v string) predicate.DocumentLineItem {
	return predicate.DocumentLineItem(sql.FieldEqualFold(FieldVatCode, v))
}

// VatCodeContainsFold applies the ContainsFold predicate on the "vat_code" field.
func VatCodeContainsFold(v string) predicate.DocumentLineItem {
	return predicate.DocumentLineItem(sql.FieldContainsFold(FieldVatCode, v))
}

// HasDocument applies the HasEdge predicate on the "document" edge.
func HasDocument() predicate.DocumentLineItem {
	return predicate.DocumentLineItem(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, DocumentTable, DocumentColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasDocumentWith applies the HasEdge predicate on the "document" edge with a given conditions (other predicates).
func HasDocumentWith(preds ...predicate.Document) predicate.DocumentLineItem {
	return predicate.DocumentLineItem(func(s *sql.Selector) {
		step := newDocumentStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.DocumentLineItem) predicate.DocumentLineItem {
	return predicate.DocumentLineItem(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.DocumentLineItem) predicate.DocumentLineItem {
	return predicate.DocumentLineItem(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.DocumentLineItem) predicate.DocumentLineItem {
	return predicate.DocumentLineItem(sql.NotPredicates(p))
}
