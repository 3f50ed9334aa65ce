// Package listing is the pure derivation behind the shop page: given the
// catalog and a query it filters, sorts and paginates, with no hidden state.
// Identical inputs always produce identical output.
package listing

import (
	"sort"
	"strings"

	"storefront/internal/domain"
)

// Sort keys accepted by Query.Sort. Anything else falls back to catalog
// order.
const (
	SortDefault   = "default"
	SortPriceLow  = "price-low"
	SortPriceHigh = "price-high"
	SortName      = "name"
)

// CategoryAll matches every category.
const CategoryAll = "All"

// Query is one filter/sort/search/pagination configuration.
type Query struct {
	Category string
	MinPrice float64
	// MaxPrice bounds the price filter inclusively. Zero or negative means
	// unbounded, which is how the "$500+" and "All Prices" ranges are
	// expressed.
	MaxPrice float64
	Search   string
	Sort     string
	Page     int
	PageSize int
}

// Result is one page of products plus the pagination facts the shell renders.
type Result struct {
	Items        []domain.Product `json:"items"`
	TotalMatched int              `json:"totalMatched"`
	TotalPages   int              `json:"totalPages"`
	Page         int              `json:"page"`
	PageSize     int              `json:"pageSize"`
}

// DefaultPageSize matches the original shop grid.
const DefaultPageSize = 9

// Apply runs the filter, sort and paginate stages over products in order.
// Requesting a page past the end yields an empty page, never an error.
func Apply(products []domain.Product, q Query) Result {
	if q.PageSize <= 0 {
		q.PageSize = DefaultPageSize
	}
	if q.Page <= 0 {
		q.Page = 1
	}

	filtered := filter(products, q)
	sorted := sortStage(filtered, q.Sort)

	totalPages := (len(sorted) + q.PageSize - 1) / q.PageSize
	start := (q.Page - 1) * q.PageSize
	end := start + q.PageSize
	if start > len(sorted) {
		start = len(sorted)
	}
	if end > len(sorted) {
		end = len(sorted)
	}

	items := sorted[start:end]
	if items == nil {
		items = []domain.Product{}
	}
	return Result{
		Items:        items,
		TotalMatched: len(sorted),
		TotalPages:   totalPages,
		Page:         q.Page,
		PageSize:     q.PageSize,
	}
}

func filter(products []domain.Product, q Query) []domain.Product {
	search := strings.ToLower(strings.TrimSpace(q.Search))
	out := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if q.Category != "" && q.Category != CategoryAll && p.Category != q.Category {
			continue
		}
		if p.Price < q.MinPrice {
			continue
		}
		if q.MaxPrice > 0 && p.Price > q.MaxPrice {
			continue
		}
		if search != "" && !matchesSearch(p, search) {
			continue
		}
		out = append(out, p)
	}
	return out
}

func matchesSearch(p domain.Product, search string) bool {
	return strings.Contains(strings.ToLower(p.Name), search) ||
		strings.Contains(strings.ToLower(p.Category), search) ||
		strings.Contains(strings.ToLower(p.Description), search)
}

// sortStage orders a copy of items. The sort is stable so price and name
// ties keep their filter-stage relative order.
func sortStage(items []domain.Product, key string) []domain.Product {
	out := make([]domain.Product, len(items))
	copy(out, items)

	switch key {
	case SortPriceLow:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price < out[j].Price })
	case SortPriceHigh:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price > out[j].Price })
	case SortName:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	}
	return out
}
