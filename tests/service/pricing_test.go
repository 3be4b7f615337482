package servicetest

import (
	"testing"

	catalogEntity "mbs.GO/model/entity/catalog"
	catalogService "mbs.GO/service/catalog"
)

func shinglesTiers() []catalogEntity.BulkTier {
	return []catalogEntity.BulkTier{
		{MinQty: 1, Discount: 0, Label: "Regular Price"},
		{MinQty: 10, Discount: 0.05, Label: "5% off 10+ bundles"},
		{MinQty: 25, Discount: 0.10, Label: "10% off 25+ bundles"},
		{MinQty: 50, Discount: 0.15, Label: "15% off 50+ bundles"},
	}
}

func TestBulkTierFor_Boundaries(t *testing.T) {
	tiers := shinglesTiers()
	cases := []struct {
		qty  int
		want float64
	}{
		{1, 0},
		{9, 0},
		{10, 0.05},
		{24, 0.05},
		{25, 0.10},
		{49, 0.10},
		{50, 0.15},
		{500, 0.15},
	}
	for _, tc := range cases {
		got := catalogService.BulkTierFor(tiers, tc.qty)
		if got.Discount != tc.want {
			t.Errorf("BulkTierFor(qty=%d).Discount = %v, want %v", tc.qty, got.Discount, tc.want)
		}
	}
}

func TestBulkTierFor_NoTiers(t *testing.T) {
	got := catalogService.BulkTierFor(nil, 100)
	if got.Discount != 0 || got.MinQty != 1 || got.Label != "Regular Price" {
		t.Errorf("BulkTierFor(nil, 100) = %+v", got)
	}
}

func TestUnitPrice(t *testing.T) {
	tiers := shinglesTiers()
	if got := catalogService.UnitPrice(100, catalogService.BulkTierFor(tiers, 10)); got != 95.00 {
		t.Errorf("UnitPrice(100, qty=10) = %v, want 95", got)
	}
	if got := catalogService.UnitPrice(100, catalogService.BulkTierFor(tiers, 1)); got != 100.00 {
		t.Errorf("UnitPrice(100, qty=1) = %v, want 100", got)
	}
}

func TestLineTotal(t *testing.T) {
	tiers := shinglesTiers()
	// 25 units at 10% off: 100 * 0.9 * 25
	if got := catalogService.LineTotal(100, tiers, 25); got != 2250 {
		t.Errorf("LineTotal = %v, want 2250", got)
	}
}

func TestNormalizeQuantity(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"7", 7},
		{" 12 ", 12},
		{"0", 1},
		{"-3", 1},
		{"abc", 1},
		{"", 1},
		{"2.5", 1},
	}
	for _, tc := range cases {
		if got := catalogService.NormalizeQuantity(tc.in); got != tc.want {
			t.Errorf("NormalizeQuantity(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestClampQuantity(t *testing.T) {
	if got := catalogService.ClampQuantity(0); got != 1 {
		t.Errorf("ClampQuantity(0) = %d", got)
	}
	if got := catalogService.ClampQuantity(42); got != 42 {
		t.Errorf("ClampQuantity(42) = %d", got)
	}
}
