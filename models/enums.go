package models

import "fmt"

type LayoutType string

const (
	LayoutHorizontal LayoutType = "Horizontal"
	LayoutVertical   LayoutType = "Vertical"
)

type ColumnRole string

const (
	RoleProductCode ColumnRole = "ProductCode"
	RolePrice       ColumnRole = "Price"
	RoleRetailPrice ColumnRole = "RetailPrice"
	RoleUnknown     ColumnRole = "Unknown"
)

// PriceType identifies which field of the price triple a supplier's raw
// price column carries.
type PriceType string

const (
	PriceTypeCostExclVAT   PriceType = "CostExclVAT"
	PriceTypeCostInclVAT   PriceType = "CostInclVAT"
	PriceTypeRetailInclVAT PriceType = "RetailInclVAT"
)

func ParsePriceType(s string) (PriceType, error) {
	switch s {
	case "CostExclVAT", "cost_excl_vat":
		return PriceTypeCostExclVAT, nil
	case "CostInclVAT", "cost_incl_vat":
		return PriceTypeCostInclVAT, nil
	case "RetailInclVAT", "retail_incl_vat":
		return PriceTypeRetailInclVAT, nil
	default:
		return "", fmt.Errorf("invalid price type %q", s)
	}
}

func (t PriceType) Valid() bool {
	switch t {
	case PriceTypeCostExclVAT, PriceTypeCostInclVAT, PriceTypeRetailInclVAT:
		return true
	}
	return false
}
