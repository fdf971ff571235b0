package models

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// RawProductRow is one extracted pricelist line before reconciliation.
// Special-price eligibility (customer groups, date windows) is policy owned
// by the extracting caller; rows arrive with it already resolved.
type RawProductRow struct {
	Brand            string              `json:"brand"`
	Code             string              `json:"code"`
	Name             string              `json:"name"`
	RawPriceText     string              `json:"raw_price_text"`
	CategoryLabel    string              `json:"category_label"`
	StockQty         int                 `json:"stock_qty"`
	HasActiveSpecial bool                `json:"has_active_special"`
	SpecialPrice     decimal.NullDecimal `json:"special_price"`

	// Filled by workflow.NormalizeRows. Priced=false keeps the row visible
	// in the catalog with no usable price, distinct from a price of zero.
	Price  PriceTriple `json:"price"`
	Priced bool        `json:"priced"`
}

// ProductRecord is the reconciled view of every raw row sharing one
// fingerprint. Created on the first row of a fingerprint, folded into by
// later ones, never destroyed within a batch.
type ProductRecord struct {
	Fingerprint      string              `json:"fingerprint"`
	Brand            string              `json:"brand"`
	Code             string              `json:"code"`
	Name             string              `json:"name"`
	Price            PriceTriple         `json:"price"`
	Priced           bool                `json:"priced"`
	Categories       []string            `json:"categories"`
	StockQty         int                 `json:"stock_qty"`
	HasActiveSpecial bool                `json:"has_active_special"`
	SpecialPrice     decimal.NullDecimal `json:"special_price"`
}

// EffectivePrice is the price a customer pays: the special price when one is
// active, otherwise the regular retail price. ok=false when the record is
// unpriced.
func (r *ProductRecord) EffectivePrice() (decimal.Decimal, bool) {
	if r.HasActiveSpecial && r.SpecialPrice.Valid {
		return r.SpecialPrice.Decimal, true
	}
	if !r.Priced {
		return decimal.Zero, false
	}
	return r.Price.RetailInclVAT, true
}

func (r *ProductRecord) InStock() bool {
	return r.StockQty > 0
}

// CategoriesDisplay is a presentation helper: first three categories joined
// by ", " with a "+N more" suffix past three.
func (r *ProductRecord) CategoriesDisplay() string {
	shown := r.Categories
	if len(shown) > 3 {
		shown = shown[:3]
	}
	display := ""
	for i, c := range shown {
		if i > 0 {
			display += ", "
		}
		display += c
	}
	if extra := len(r.Categories) - 3; extra > 0 {
		display += fmt.Sprintf(" +%d more", extra)
	}
	return display
}

// AddCategory unions a category label in first-seen order.
func (r *ProductRecord) AddCategory(label string) {
	for _, c := range r.Categories {
		if c == label {
			return
		}
	}
	r.Categories = append(r.Categories, label)
}

// Catalog is the output of one reconciliation run. It is a plain value owned
// by the caller; the engine keeps no state between runs.
type Catalog struct {
	RunID   string           `json:"run_id"`
	Records []*ProductRecord `json:"records"`

	byFingerprint map[string]*ProductRecord
}

func NewCatalog(runID string) *Catalog {
	return &Catalog{
		RunID:         runID,
		byFingerprint: make(map[string]*ProductRecord),
	}
}

func (c *Catalog) Lookup(fingerprint string) (*ProductRecord, bool) {
	rec, ok := c.byFingerprint[fingerprint]
	return rec, ok
}

// Upsert returns the record for a fingerprint, creating and appending it when
// unseen. created reports which case happened.
func (c *Catalog) Upsert(fingerprint string, create func() *ProductRecord) (rec *ProductRecord, created bool) {
	if c.byFingerprint == nil {
		c.byFingerprint = make(map[string]*ProductRecord)
	}
	if rec, ok := c.byFingerprint[fingerprint]; ok {
		return rec, false
	}
	rec = create()
	c.byFingerprint[fingerprint] = rec
	c.Records = append(c.Records, rec)
	return rec, true
}

func (c *Catalog) Len() int {
	return len(c.Records)
}
