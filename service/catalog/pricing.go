package catalog

import (
	"strconv"
	"strings"

	catalogEntity "mbs.GO/model/entity/catalog"
)

// RegularTier is what a quantity prices at when no bulk tier applies.
var RegularTier = catalogEntity.BulkTier{MinQty: 1, Discount: 0, Label: "Regular Price"}

// BulkTierFor picks the applicable tier for a quantity: the last tier in
// ascending MinQty order whose threshold the quantity meets. Quantities
// below every threshold, or an empty tier list, price at RegularTier.
func BulkTierFor(tiers []catalogEntity.BulkTier, qty int) catalogEntity.BulkTier {
	selected := RegularTier
	for _, t := range tiers {
		if qty >= t.MinQty {
			selected = t
		}
	}
	return selected
}

// UnitPrice applies a tier's discount to a base price. No rounding; totals
// carry full float precision until display.
func UnitPrice(base float64, tier catalogEntity.BulkTier) float64 {
	return base * (1 - tier.Discount)
}

// LineTotal prices qty units at the tier matching that quantity.
func LineTotal(base float64, tiers []catalogEntity.BulkTier, qty int) float64 {
	return UnitPrice(base, BulkTierFor(tiers, qty)) * float64(qty)
}

// NormalizeQuantity parses free-form quantity input. Anything that does not
// parse to a positive integer becomes 1.
func NormalizeQuantity(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 1 {
		return 1
	}
	return n
}

// ClampQuantity floors a numeric quantity at 1.
func ClampQuantity(n int) int {
	if n < 1 {
		return 1
	}
	return n
}
