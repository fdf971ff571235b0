package workflow

import (
	"regexp"
	"sort"
	"strings"

	"bitbucket.org/audicodev/pricelist_engine/models"
	"bitbucket.org/audicodev/pricelist_engine/utils"
)

var (
	// An alphabetic model-line prefix directly followed by digits, e.g.
	// "avrx1800" in "denon avrx1800h".
	modelPrefixPattern = regexp.MustCompile(`([a-z]{2,})(\d)`)
	// The same boundary split by a single space, e.g. "avr 1800".
	splitPrefixPattern = regexp.MustCompile(`([a-z]) (\d)`)
)

// ExpandQuery generates the bounded set of rewrites of a free-text query
// used to tolerate punctuation and spacing drift between supplier feeds and
// the catalog. The result always starts with the raw query followed by its
// normalized form; duplicates are removed preserving first occurrence, so
// expanding an already-normalized query is idempotent.
func ExpandQuery(query string) []string {
	normalized := utils.NormalizeText(query)

	variants := []string{
		query,
		normalized,
		strings.ReplaceAll(normalized, " ", "-"),
		strings.ReplaceAll(normalized, " ", ""),
		strings.NewReplacer("-", " ", "_", " ").Replace(normalized),
	}

	// Toggle a single separator at the model prefix/digit boundary, so
	// "avrx1800h" also tries "avrx-1800h" and "avr x1800" also tries
	// "avrx1800".
	if loc := modelPrefixPattern.FindStringSubmatchIndex(normalized); loc != nil {
		boundary := loc[3]
		variants = append(variants, normalized[:boundary]+"-"+normalized[boundary:])
		variants = append(variants, splitPrefixPattern.ReplaceAllString(normalized, "$1$2"))
	}

	var unique []string
	seen := make(map[string]bool, len(variants))
	for i, v := range variants {
		if seen[v] {
			continue
		}
		// The raw query is always kept, even when empty; derived variants
		// that normalize away to nothing are dropped.
		if v == "" && i > 0 {
			continue
		}
		seen[v] = true
		unique = append(unique, v)
	}
	return unique
}

// MatchProducts returns the catalog records matching a free-text query,
// ranked: in-stock first, then active specials, then ascending effective
// price, ties kept in catalog order. Matching is deliberately permissive:
// any query variant appearing as a substring of a record's name, code or
// brand (raw, normalized or with separators squashed) counts.
func MatchProducts(query string, catalog *models.Catalog) []*models.ProductRecord {
	variants := ExpandQuery(query)
	for i, v := range variants {
		variants[i] = strings.ToLower(v)
	}

	var matches []*models.ProductRecord
	for _, rec := range catalog.Records {
		if recordMatches(rec, variants) {
			matches = append(matches, rec)
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return rankLess(matches[i], matches[j])
	})
	return matches
}

func recordMatches(rec *models.ProductRecord, variants []string) bool {
	texts := searchableTexts(rec)
	for _, v := range variants {
		if v == "" {
			continue
		}
		for _, t := range texts {
			if t != "" && strings.Contains(t, v) {
				return true
			}
		}
	}
	return false
}

func searchableTexts(rec *models.ProductRecord) []string {
	texts := make([]string, 0, 9)
	for _, field := range []string{rec.Name, rec.Code, rec.Brand} {
		if field == "" {
			continue
		}
		texts = append(texts,
			strings.ToLower(field),
			utils.NormalizeText(field),
			utils.SquashText(field),
		)
	}
	return texts
}

func rankLess(a, b *models.ProductRecord) bool {
	if a.InStock() != b.InStock() {
		return a.InStock()
	}
	aSpecial := a.HasActiveSpecial && a.SpecialPrice.Valid
	bSpecial := b.HasActiveSpecial && b.SpecialPrice.Valid
	if aSpecial != bSpecial {
		return aSpecial
	}
	aPrice, aOK := a.EffectivePrice()
	bPrice, bOK := b.EffectivePrice()
	if aOK != bOK {
		return aOK // priced records rank above unpriced ones
	}
	if aOK && bOK {
		return aPrice.LessThan(bPrice)
	}
	return false
}
