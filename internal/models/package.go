package models

import (
	"sort"
	"strconv"
	"strings"
)

// Package is a purchasable recharge offer: an amount of mobile credit
// sold for a price. Packages are soft-deleted via IsActive.
type Package struct {
	BaseModel
	Name          string   `json:"name"`
	Amount        float64  `json:"amount"`
	Price         float64  `json:"price"`
	OriginalPrice *float64 `json:"original_price,omitempty"`
	Description   string   `json:"description"`
	IsFeatured    bool     `json:"is_featured"`
	IsActive      bool     `gorm:"default:true" json:"is_active"`
}

// Discount returns the discount magnitude, zero when no original price is set.
func (p *Package) Discount() float64 {
	if p.OriginalPrice == nil || *p.OriginalPrice <= p.Price {
		return 0
	}
	return *p.OriginalPrice - p.Price
}

// Catalog quick filters.
const (
	FilterAll      = "all"
	FilterPopular  = "popular"
	FilterDiscount = "discount"
)

// Catalog sort keys.
const (
	SortAmountDesc = "amount_desc"
	SortAmountAsc  = "amount_asc"
	SortPriceDesc  = "price_desc"
	SortPriceAsc   = "price_asc"
	SortDiscount   = "discount"
)

// PackageQuery is the catalog projection applied in memory over the full
// active-package set. Zero-valued fields are ignored.
type PackageQuery struct {
	Search    string
	Filter    string
	MinPrice  *float64
	MaxPrice  *float64
	MinAmount *float64
	MaxAmount *float64
	Sort      string
}

// Apply filters and sorts the given packages, returning a new slice.
func (q PackageQuery) Apply(packages []Package) []Package {
	filtered := make([]Package, 0, len(packages))
	search := strings.ToLower(strings.TrimSpace(q.Search))

	for _, pkg := range packages {
		if search != "" && !matchesSearch(pkg, search) {
			continue
		}
		switch q.Filter {
		case FilterPopular:
			if !pkg.IsFeatured {
				continue
			}
		case FilterDiscount:
			if pkg.Discount() <= 0 {
				continue
			}
		}
		if q.MinPrice != nil && pkg.Price < *q.MinPrice {
			continue
		}
		if q.MaxPrice != nil && pkg.Price > *q.MaxPrice {
			continue
		}
		if q.MinAmount != nil && pkg.Amount < *q.MinAmount {
			continue
		}
		if q.MaxAmount != nil && pkg.Amount > *q.MaxAmount {
			continue
		}
		filtered = append(filtered, pkg)
	}

	sortKey := q.Sort
	if sortKey == "" {
		sortKey = SortAmountDesc
	}
	sort.SliceStable(filtered, func(i, j int) bool {
		a, b := filtered[i], filtered[j]
		switch sortKey {
		case SortAmountAsc:
			return a.Amount < b.Amount
		case SortPriceDesc:
			return a.Price > b.Price
		case SortPriceAsc:
			return a.Price < b.Price
		case SortDiscount:
			return a.Discount() > b.Discount()
		default:
			return a.Amount > b.Amount
		}
	})

	return filtered
}

func matchesSearch(pkg Package, query string) bool {
	if strings.Contains(strings.ToLower(pkg.Name), query) {
		return true
	}
	if strings.Contains(strings.ToLower(pkg.Description), query) {
		return true
	}
	return strings.Contains(strconv.FormatFloat(pkg.Amount, 'f', -1, 64), query)
}
