package workflow

import (
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"bitbucket.org/audicodev/pricelist_engine/config"
	"bitbucket.org/audicodev/pricelist_engine/models"
	"bitbucket.org/audicodev/pricelist_engine/utils"
)

// Fingerprint identifies the physical product a row describes, so the same
// unit listed under several categories or spellings folds into one record.
// An empty brand is inferred from the known-brand list by substring match;
// when nothing matches the row still lands in a valid empty-brand bucket.
// Fingerprinting never fails.
func Fingerprint(row models.RawProductRow, cfg config.DetectionConfig) string {
	identity := row.Code
	if identity == "" {
		identity = row.Name
	}
	identityNorm := normalizeKey(identity + " " + row.Name)

	brand := strings.ToLower(row.Brand)
	if brand == "" {
		brand = inferBrand(identityNorm, cfg)
	}

	key := compactKey(normalizeKey(brand)) + "_" + compactKey(normalizeKey(identity))
	return strconv.FormatUint(xxhash.Sum64String(key), 16)
}

func normalizeKey(s string) string {
	return utils.NormalizeText(s)
}

func compactKey(s string) string {
	return strings.ReplaceAll(s, " ", "")
}

func inferBrand(normalizedIdentity string, cfg config.DetectionConfig) string {
	for _, b := range cfg.KnownBrands {
		if strings.Contains(normalizedIdentity, b) {
			return b
		}
	}
	return ""
}

// pricingSignal is the slice of a row or record that the merge tie-break
// compares. Keeping it separate lets rows fold into records and records fold
// into records through the same rules.
type pricingSignal struct {
	hasSpecial   bool
	specialPrice decimal.Decimal
	stockQty     int
	priced       bool
	regular      decimal.Decimal
}

func rowSignal(row *models.RawProductRow) pricingSignal {
	return pricingSignal{
		hasSpecial:   row.HasActiveSpecial && row.SpecialPrice.Valid,
		specialPrice: row.SpecialPrice.Decimal,
		stockQty:     row.StockQty,
		priced:       row.Priced,
		regular:      row.Price.RetailInclVAT,
	}
}

func recordSignal(rec *models.ProductRecord) pricingSignal {
	return pricingSignal{
		hasSpecial:   rec.HasActiveSpecial && rec.SpecialPrice.Valid,
		specialPrice: rec.SpecialPrice.Decimal,
		stockQty:     rec.StockQty,
		priced:       rec.Priced,
		regular:      rec.Price.RetailInclVAT,
	}
}

// shouldReplace decides whether the incoming pricing signal beats the one
// already on the record. The rules form a total preference independent of
// arrival order:
//  1. an active special beats no special,
//  2. between two specials the lower special price wins,
//  3. in stock beats out of stock,
//  4. a priced row beats an unpriced one, then the lower regular price wins,
//  5. remaining ties go to the higher stock quantity.
//
// Rules 3-5 also settle ties inside rule 2, so two rows are never merged in
// an order-dependent way unless every compared field is equal, in which case
// the outcome is identical either way.
func shouldReplace(in, cur pricingSignal) bool {
	if in.hasSpecial != cur.hasSpecial {
		return in.hasSpecial
	}
	if in.hasSpecial && cur.hasSpecial {
		if cmp := in.specialPrice.Cmp(cur.specialPrice); cmp != 0 {
			return cmp < 0
		}
	}

	inStock, curStock := in.stockQty > 0, cur.stockQty > 0
	if inStock != curStock {
		return inStock
	}

	switch {
	case in.priced && !cur.priced:
		return true
	case !in.priced && cur.priced:
		return false
	case in.priced && cur.priced:
		if cmp := in.regular.Cmp(cur.regular); cmp != 0 {
			return cmp < 0
		}
	}

	return in.stockQty > cur.stockQty
}

// Reconcile folds raw rows into one record per product fingerprint. Category
// labels are always unioned in first-seen order; price, stock and special
// fields follow the tie-break of shouldReplace. The fold is associative and
// commutative over the fields the catalog guarantees (price, stock,
// category set), so callers may partition rows and merge partial catalogs
// with MergeCatalogs instead.
func Reconcile(rows []models.RawProductRow, cfg config.DetectionConfig) *models.Catalog {
	catalog := models.NewCatalog(uuid.NewString())
	for i := range rows {
		foldRow(catalog, &rows[i], cfg)
	}

	config.GetLogger().WithFields(logrus.Fields{
		"runId":   catalog.RunID,
		"rows":    len(rows),
		"records": catalog.Len(),
	}).Info("catalog reconciled")
	return catalog
}

func foldRow(catalog *models.Catalog, row *models.RawProductRow, cfg config.DetectionConfig) {
	fp := Fingerprint(*row, cfg)
	rec, created := catalog.Upsert(fp, func() *models.ProductRecord {
		return newRecord(fp, row, cfg)
	})
	if created {
		return
	}

	if label := categoryLabel(row.CategoryLabel, cfg); label != "" {
		rec.AddCategory(label)
	}
	if shouldReplace(rowSignal(row), recordSignal(rec)) {
		rec.Price = row.Price
		rec.Priced = row.Priced
		rec.StockQty = row.StockQty
		rec.HasActiveSpecial = row.HasActiveSpecial
		rec.SpecialPrice = row.SpecialPrice
	}
}

// categoryLabel substitutes the configured default for rows without a
// category, keeping them visible in category displays.
func categoryLabel(label string, cfg config.DetectionConfig) string {
	if label == "" {
		return cfg.UncategorizedLabel
	}
	return label
}

func newRecord(fingerprint string, row *models.RawProductRow, cfg config.DetectionConfig) *models.ProductRecord {
	rec := &models.ProductRecord{
		Fingerprint:      fingerprint,
		Brand:            row.Brand,
		Code:             row.Code,
		Name:             row.Name,
		Price:            row.Price,
		Priced:           row.Priced,
		StockQty:         row.StockQty,
		HasActiveSpecial: row.HasActiveSpecial,
		SpecialPrice:     row.SpecialPrice,
	}
	if label := categoryLabel(row.CategoryLabel, cfg); label != "" {
		rec.AddCategory(label)
	}
	return rec
}

// MergeCatalogs folds src into dst record by record under the same tie-break
// as Reconcile, enabling chunked or pairwise-parallel reconciliation. src is
// not modified; dst is returned for chaining.
func MergeCatalogs(dst, src *models.Catalog) *models.Catalog {
	for _, srcRec := range src.Records {
		rec, created := dst.Upsert(srcRec.Fingerprint, func() *models.ProductRecord {
			clone := *srcRec
			clone.Categories = append([]string(nil), srcRec.Categories...)
			return &clone
		})
		if created {
			continue
		}
		for _, c := range srcRec.Categories {
			rec.AddCategory(c)
		}
		if shouldReplace(recordSignal(srcRec), recordSignal(rec)) {
			rec.Price = srcRec.Price
			rec.Priced = srcRec.Priced
			rec.StockQty = srcRec.StockQty
			rec.HasActiveSpecial = srcRec.HasActiveSpecial
			rec.SpecialPrice = srcRec.SpecialPrice
		}
	}
	return dst
}
