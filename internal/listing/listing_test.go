package listing

import (
	"testing"

	"storefront/internal/domain"
	"storefront/internal/seed"
)

func TestFilterByCategoryIsSubset(t *testing.T) {
	products := seed.Products()
	res := Apply(products, Query{Category: "Phones", PageSize: 100})

	if len(res.Items) == 0 {
		t.Fatalf("expected some phones")
	}
	for _, p := range res.Items {
		if p.Category != "Phones" {
			t.Fatalf("filter leaked category %q", p.Category)
		}
		if _, ok := find(products, p.ID); !ok {
			t.Fatalf("result contains product %q not in catalog", p.ID)
		}
	}
}

func TestScenarioPhonesByPriceRange(t *testing.T) {
	// Catalog has 12 products, 4 Phones priced 199/299/399/599.
	products := seed.Products()
	if len(products) != 12 {
		t.Fatalf("expected 12 catalog products, got %d", len(products))
	}

	res := Apply(products, Query{Category: "Phones", MinPrice: 0, MaxPrice: 300, Sort: SortDefault, PageSize: 100})
	if res.TotalMatched != 2 {
		t.Fatalf("expected exactly 2 phones within [0,300], got %d", res.TotalMatched)
	}
	if res.Items[0].Price != 199 || res.Items[1].Price != 299 {
		t.Fatalf("expected catalog order 199 then 299, got %v then %v", res.Items[0].Price, res.Items[1].Price)
	}

	res = Apply(products, Query{Category: "Phones", MinPrice: 0, MaxPrice: 400, Sort: SortDefault, PageSize: 100})
	if res.TotalMatched != 3 {
		t.Fatalf("inclusive [0,400] keeps the 399 phone too, got %d", res.TotalMatched)
	}
}

func TestPriceRangeIsInclusive(t *testing.T) {
	products := []domain.Product{
		{ID: "a", Price: 100},
		{ID: "b", Price: 200},
		{ID: "c", Price: 300},
	}
	res := Apply(products, Query{MinPrice: 100, MaxPrice: 200, PageSize: 10})
	if res.TotalMatched != 2 {
		t.Fatalf("bounds must be inclusive, got %d matches", res.TotalMatched)
	}
}

func TestMaxPriceZeroMeansUnbounded(t *testing.T) {
	products := []domain.Product{{ID: "a", Price: 599}, {ID: "b", Price: 5}}
	res := Apply(products, Query{MinPrice: 500, PageSize: 10})
	if res.TotalMatched != 1 || res.Items[0].ID != "a" {
		t.Fatalf("expected open-ended $500+ range to match only a, got %+v", res.Items)
	}
}

func TestSearchMatchesNameCategoryDescription(t *testing.T) {
	products := []domain.Product{
		{ID: "a", Name: "Atlas SE", Category: "Phones", Description: "compact"},
		{ID: "b", Name: "Drift Buds", Category: "Accessories", Description: "noise isolating earbuds"},
		{ID: "c", Name: "Pulse 2", Category: "Watches", Description: "fitness tracker"},
	}

	for _, tc := range []struct {
		search string
		want   string
	}{
		{"atlas", "a"},      // name, case-insensitive
		{"ACCESSOR", "b"},   // category
		{"earbuds", "b"},    // description
		{"FITNESS", "c"},    // description, case-insensitive
	} {
		res := Apply(products, Query{Search: tc.search, PageSize: 10})
		if res.TotalMatched != 1 || res.Items[0].ID != tc.want {
			t.Fatalf("search %q: expected only %q, got %+v", tc.search, tc.want, res.Items)
		}
	}

	if res := Apply(products, Query{Search: "", PageSize: 10}); res.TotalMatched != 3 {
		t.Fatalf("empty search must match everything, got %d", res.TotalMatched)
	}
}

func TestSortOrders(t *testing.T) {
	products := seed.Products()

	low := Apply(products, Query{Sort: SortPriceLow, PageSize: 100}).Items
	for i := 1; i < len(low); i++ {
		if low[i].Price < low[i-1].Price {
			t.Fatalf("price-low not non-decreasing at %d", i)
		}
	}

	high := Apply(products, Query{Sort: SortPriceHigh, PageSize: 100}).Items
	for i := 1; i < len(high); i++ {
		if high[i].Price > high[i-1].Price {
			t.Fatalf("price-high not non-increasing at %d", i)
		}
	}

	byName := Apply(products, Query{Sort: SortName, PageSize: 100}).Items
	for i := 1; i < len(byName); i++ {
		if byName[i].Name < byName[i-1].Name {
			t.Fatalf("name sort not non-decreasing at %d", i)
		}
	}
}

func TestSortIsStableOnTies(t *testing.T) {
	products := []domain.Product{
		{ID: "first", Name: "Same", Price: 100},
		{ID: "second", Name: "Same", Price: 100},
		{ID: "third", Name: "Same", Price: 100},
	}
	res := Apply(products, Query{Sort: SortPriceLow, PageSize: 10})
	if res.Items[0].ID != "first" || res.Items[1].ID != "second" || res.Items[2].ID != "third" {
		t.Fatalf("ties must preserve filter-stage order, got %+v", res.Items)
	}
}

func TestDefaultSortKeepsCatalogOrder(t *testing.T) {
	products := seed.Products()
	res := Apply(products, Query{Sort: SortDefault, PageSize: 100})
	for i, p := range res.Items {
		if p.ID != products[i].ID {
			t.Fatalf("default sort reordered catalog at %d", i)
		}
	}
	// Unknown sort keys behave the same way.
	res = Apply(products, Query{Sort: "rating-desc", PageSize: 100})
	if res.Items[0].ID != products[0].ID {
		t.Fatalf("unknown sort key must fall back to catalog order")
	}
}

func TestPaginationReconstructsSequence(t *testing.T) {
	products := seed.Products()
	full := Apply(products, Query{Sort: SortName, PageSize: 100}).Items

	const pageSize = 5
	first := Apply(products, Query{Sort: SortName, Page: 1, PageSize: pageSize})
	var combined []domain.Product
	for page := 1; page <= first.TotalPages; page++ {
		res := Apply(products, Query{Sort: SortName, Page: page, PageSize: pageSize})
		combined = append(combined, res.Items...)
	}

	if len(combined) != len(full) {
		t.Fatalf("concatenated pages have %d items, want %d", len(combined), len(full))
	}
	seen := make(map[string]bool)
	for i, p := range combined {
		if p.ID != full[i].ID {
			t.Fatalf("page concatenation diverges at %d: %s vs %s", i, p.ID, full[i].ID)
		}
		if seen[p.ID] {
			t.Fatalf("duplicate %s across pages", p.ID)
		}
		seen[p.ID] = true
	}

	beyond := Apply(products, Query{Sort: SortName, Page: first.TotalPages + 1, PageSize: pageSize})
	if len(beyond.Items) != 0 {
		t.Fatalf("page beyond the last must be empty, got %d items", len(beyond.Items))
	}
}

func TestPageDefaultsAndDeterminism(t *testing.T) {
	products := seed.Products()
	q := Query{Category: "Accessories", Sort: SortPriceLow, Page: 0, PageSize: 2}

	a := Apply(products, q)
	b := Apply(products, q)
	if a.Page != 1 {
		t.Fatalf("page <= 0 must be treated as 1, got %d", a.Page)
	}
	if len(a.Items) != len(b.Items) {
		t.Fatalf("identical inputs gave different sizes")
	}
	for i := range a.Items {
		if a.Items[i].ID != b.Items[i].ID {
			t.Fatalf("identical inputs gave different order at %d", i)
		}
	}
}

func find(products []domain.Product, id string) (*domain.Product, bool) {
	for i := range products {
		if products[i].ID == id {
			return &products[i], true
		}
	}
	return nil, false
}
