package models

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"bitbucket.org/audicodev/pricelist_engine/utils"
)

var validate = validator.New()

// PricingConfig describes how a supplier quotes prices for one ingestion
// batch. It is validated once at construction and never mutated by the
// engine.
type PricingConfig struct {
	PriceType  PriceType `json:"price_type"`
	VATRate    float64   `json:"vat_rate" validate:"gte=0,lte=1"`
	MarkupRate float64   `json:"markup_rate" validate:"gte=0"`
	Currency   string    `json:"currency"`
}

// NewPricingConfig rejects invalid settings before any row is processed:
// a batch either runs with a sound config or not at all.
func NewPricingConfig(priceType PriceType, vatRate, markupRate float64, currency string) (PricingConfig, error) {
	cfg := PricingConfig{
		PriceType:  priceType,
		VATRate:    vatRate,
		MarkupRate: markupRate,
		Currency:   currency,
	}
	if !priceType.Valid() {
		return PricingConfig{}, fmt.Errorf("%w: price type %q", utils.ErrorInvalidConfig, priceType)
	}
	if err := validate.Struct(cfg); err != nil {
		return PricingConfig{}, fmt.Errorf("%w: %v", utils.ErrorInvalidConfig, err)
	}
	return cfg, nil
}

func (c PricingConfig) VAT() decimal.Decimal {
	return decimal.NewFromFloat(c.VATRate)
}

func (c PricingConfig) Markup() decimal.Decimal {
	return decimal.NewFromFloat(c.MarkupRate)
}

// PriceTriple carries the three consistent views of one supplier price plus
// the implied margin. Either all fields are populated together or the row is
// unpriced, which is represented by the (PriceTriple, ok) pair of
// workflow.NormalizePrice, never by a zero triple.
type PriceTriple struct {
	CostExclVAT   decimal.Decimal     `json:"cost_excl_vat"`
	CostInclVAT   decimal.Decimal     `json:"cost_incl_vat"`
	RetailInclVAT decimal.Decimal     `json:"retail_incl_vat"`
	MarginPct     decimal.NullDecimal `json:"margin_pct"`
}
