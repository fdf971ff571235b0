package workflow

import (
	"strings"

	"github.com/shopspring/decimal"

	"bitbucket.org/audicodev/pricelist_engine/config"
	"bitbucket.org/audicodev/pricelist_engine/models"
	"bitbucket.org/audicodev/pricelist_engine/utils"
)

var (
	one     = decimal.NewFromInt(1)
	hundred = decimal.NewFromInt(100)
)

// NormalizePrice converts one raw price cell into the consistent price
// triple. ok=false means the row is unpriced: a price-on-request marker, an
// unparseable cell or a non-positive value. Unpriced is an expected outcome,
// not an error; such rows stay visible in the catalog with no price.
//
// Exactly one derivation path exists per price type so the source figure can
// always be recovered from the triple by inverting its formula.
func NormalizePrice(rawText string, pricing models.PricingConfig, det config.DetectionConfig) (models.PriceTriple, bool) {
	if det.IsUnpricedSentinel(strings.ToUpper(strings.TrimSpace(rawText))) {
		return models.PriceTriple{}, false
	}

	amount, err := utils.ParseAmount(rawText)
	if err != nil || !amount.IsPositive() {
		return models.PriceTriple{}, false
	}

	vatFactor := one.Add(pricing.VAT())
	markupFactor := one.Add(pricing.Markup())

	var triple models.PriceTriple
	switch pricing.PriceType {
	case models.PriceTypeCostExclVAT:
		triple.CostExclVAT = amount
		triple.CostInclVAT = amount.Mul(vatFactor)
		triple.RetailInclVAT = triple.CostInclVAT.Mul(markupFactor)
	case models.PriceTypeCostInclVAT:
		triple.CostInclVAT = amount
		triple.CostExclVAT = amount.Div(vatFactor)
		triple.RetailInclVAT = amount.Mul(markupFactor)
	case models.PriceTypeRetailInclVAT:
		triple.RetailInclVAT = amount
		triple.CostInclVAT = amount.Div(markupFactor)
		triple.CostExclVAT = triple.CostInclVAT.Div(vatFactor)
	default:
		return models.PriceTriple{}, false
	}

	if triple.RetailInclVAT.IsPositive() {
		margin := triple.RetailInclVAT.Sub(triple.CostInclVAT).
			Div(triple.RetailInclVAT).Mul(hundred)
		triple.MarginPct = decimal.NullDecimal{Decimal: margin, Valid: true}
	}
	return triple, true
}

// NormalizeRows runs the price normalizer across a batch of extracted rows.
func NormalizeRows(rows []models.RawProductRow, pricing models.PricingConfig, det config.DetectionConfig) []models.RawProductRow {
	out := make([]models.RawProductRow, len(rows))
	for i, row := range rows {
		row.Price, row.Priced = NormalizePrice(row.RawPriceText, pricing, det)
		out[i] = row
	}
	return out
}
