package models

import "testing"

func fptr(v float64) *float64 { return &v }

func samplePackages() []Package {
	return []Package{
		{Name: "Paquete 600", Amount: 600, Price: 100},
		{Name: "Paquete 300", Amount: 300, Price: 60, IsFeatured: true},
		{Name: "Oferta 500", Amount: 500, Price: 80, OriginalPrice: fptr(120)},
		{Name: "Paquete 1000", Amount: 1000, Price: 150, IsFeatured: true, OriginalPrice: fptr(160)},
	}
}

func TestPackageQueryPopularFilter(t *testing.T) {
	for _, sortKey := range []string{SortAmountDesc, SortAmountAsc, SortPriceAsc, SortDiscount} {
		result := PackageQuery{Filter: FilterPopular, Sort: sortKey}.Apply(samplePackages())
		if len(result) != 2 {
			t.Fatalf("sort %s: expected 2 featured packages, got %d", sortKey, len(result))
		}
		for _, pkg := range result {
			if !pkg.IsFeatured {
				t.Fatalf("sort %s: non-featured package %q in popular filter", sortKey, pkg.Name)
			}
		}
	}
}

func TestPackageQuerySorting(t *testing.T) {
	packages := []Package{
		{Amount: 600, Price: 100},
		{Amount: 300, Price: 60},
	}

	byAmountDesc := PackageQuery{Sort: SortAmountDesc}.Apply(packages)
	if byAmountDesc[0].Amount != 600 || byAmountDesc[1].Amount != 300 {
		t.Fatalf("amount_desc: got [%v %v], want [600 300]", byAmountDesc[0].Amount, byAmountDesc[1].Amount)
	}

	byPriceAsc := PackageQuery{Sort: SortPriceAsc}.Apply(packages)
	if byPriceAsc[0].Price != 60 || byPriceAsc[1].Price != 100 {
		t.Fatalf("price_asc: got [%v %v], want [60 100]", byPriceAsc[0].Price, byPriceAsc[1].Price)
	}
}

func TestPackageQueryDiscountFilterAndSort(t *testing.T) {
	result := PackageQuery{Filter: FilterDiscount, Sort: SortDiscount}.Apply(samplePackages())
	if len(result) != 2 {
		t.Fatalf("expected 2 discounted packages, got %d", len(result))
	}
	// Oferta 500 has the larger markdown (40 vs 10).
	if result[0].Name != "Oferta 500" {
		t.Fatalf("expected largest discount first, got %q", result[0].Name)
	}
}

func TestPackageQueryRanges(t *testing.T) {
	result := PackageQuery{MinPrice: fptr(70), MaxPrice: fptr(120)}.Apply(samplePackages())
	for _, pkg := range result {
		if pkg.Price < 70 || pkg.Price > 120 {
			t.Fatalf("package %q price %v outside [70, 120]", pkg.Name, pkg.Price)
		}
	}
	if len(result) != 2 {
		t.Fatalf("expected 2 packages in price range, got %d", len(result))
	}

	result = PackageQuery{MinAmount: fptr(500)}.Apply(samplePackages())
	if len(result) != 3 {
		t.Fatalf("expected 3 packages with amount >= 500, got %d", len(result))
	}
}

func TestPackageQuerySearch(t *testing.T) {
	result := PackageQuery{Search: "oferta"}.Apply(samplePackages())
	if len(result) != 1 || result[0].Name != "Oferta 500" {
		t.Fatalf("search by name: got %v", result)
	}

	result = PackageQuery{Search: "1000"}.Apply(samplePackages())
	if len(result) != 1 || result[0].Amount != 1000 {
		t.Fatalf("search by amount: got %v", result)
	}
}

func TestPackageQueryDefaultSort(t *testing.T) {
	result := PackageQuery{}.Apply(samplePackages())
	for i := 1; i < len(result); i++ {
		if result[i].Amount > result[i-1].Amount {
			t.Fatal("default sort should be amount descending")
		}
	}
}
