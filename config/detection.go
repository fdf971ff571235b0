package config

import "strings"

// DetectionConfig holds the data tables the structure detector, the
// deduplicator and the price normalizer match against. Suppliers are
// onboarded by editing these tables, not the detection code.
type DetectionConfig struct {
	// BrandStopWords are single words that disqualify a header cell from
	// being read as a brand name, even when it otherwise looks like one.
	// Stop words take precedence over brand detection.
	BrandStopWords []string

	// Role keyword sets, matched case-insensitively as substrings of a
	// header cell. RetailPriceKeywords are checked before PriceKeywords so
	// "Retail Price" does not resolve to the cost column.
	ProductCodeKeywords []string
	PriceKeywords       []string
	RetailPriceKeywords []string

	// KnownBrands is used to infer a brand from a product name or code when
	// the extracted row carries none. Lowercase.
	KnownBrands []string

	// UnpricedSentinels are cell values (upper-cased, trimmed) that mean
	// "no usable price", e.g. price-on-request markers.
	UnpricedSentinels []string

	// UncategorizedLabel is the category recorded for rows that carry no
	// category label, so they stay visible in category displays. Empty
	// means such rows contribute no category.
	UncategorizedLabel string
}

func DefaultDetectionConfig() DetectionConfig {
	return DetectionConfig{
		BrandStopWords: []string{
			"PRICE", "CODE", "STOCK", "ITEM", "UPDATED", "MODEL", "SKU",
			"COST", "RETAIL", "RRP", "VAT", "EXCL", "INCL", "DESCRIPTION",
			"QTY", "QUANTITY", "TOTAL", "NOTES", "PART", "NUMBER", "LIST",
		},
		ProductCodeKeywords: []string{
			"stock code", "product code", "item code", "sku", "model", "part number",
		},
		PriceKeywords: []string{
			"price", "cost",
		},
		RetailPriceKeywords: []string{
			"rrp", "retail",
		},
		KnownBrands: []string{
			"denon", "yamaha", "marantz", "onkyo", "pioneer", "sony",
			"bose", "jbl", "polk", "yealink", "jabra", "dnake", "mikrotik",
			"zyxel", "logitech", "samsung", "huawei", "motorola",
		},
		UnpricedSentinels: []string{
			"P.O.R", "POA", "CALL", "N/A", "TBC", "",
		},
		UncategorizedLabel: "Uncategorized",
	}
}

// IsBrandStopWord reports whether any word of the candidate token is in the
// stop list. The token is expected upper-cased.
func (c DetectionConfig) IsBrandStopWord(token string) bool {
	for _, word := range strings.Fields(token) {
		word = strings.Trim(word, "-&")
		for _, stop := range c.BrandStopWords {
			if word == stop {
				return true
			}
		}
	}
	return false
}

// IsUnpricedSentinel reports whether a trimmed, upper-cased cell value is a
// price-on-request style marker.
func (c DetectionConfig) IsUnpricedSentinel(value string) bool {
	for _, s := range c.UnpricedSentinels {
		if value == s {
			return true
		}
	}
	return false
}
