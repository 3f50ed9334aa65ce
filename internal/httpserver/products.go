package httpserver

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"storefront/internal/catalog"
	"storefront/internal/listing"
)

// listProductsHandler serves the shop page data: the catalog run through the
// filter/sort/paginate pipeline.
func listProductsHandler(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		q := listing.Query{
			Category: c.DefaultQuery("category", listing.CategoryAll),
			Search:   c.Query("search"),
			Sort:     c.DefaultQuery("sort", listing.SortDefault),
			MinPrice: floatQuery(c, "minPrice"),
			MaxPrice: floatQuery(c, "maxPrice"),
			Page:     intQuery(c, "page"),
			PageSize: intQuery(c, "pageSize"),
		}
		if q.PageSize <= 0 {
			q.PageSize = deps.PageSize
		}
		c.JSON(http.StatusOK, listing.Apply(deps.Catalog.All(), q))
	}
}

func getProductHandler(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, err := deps.Catalog.Get(c.Param("id"))
		if err != nil {
			respondError(c, http.StatusNotFound, "ProductNotFound", "no product with that id")
			return
		}
		c.JSON(http.StatusOK, p)
	}
}

// listCategoriesHandler reports category names with counts, with the "All"
// pseudo-category first the way the shop sidebar renders them.
func listCategoriesHandler(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		out := []catalog.CategoryCount{{Name: listing.CategoryAll, Count: deps.Catalog.Len()}}
		out = append(out, deps.Catalog.Categories()...)
		c.JSON(http.StatusOK, gin.H{"categories": out})
	}
}

func floatQuery(c *gin.Context, key string) float64 {
	v, err := strconv.ParseFloat(c.Query(key), 64)
	if err != nil {
		return 0
	}
	return v
}

func intQuery(c *gin.Context, key string) int {
	v, err := strconv.Atoi(c.Query(key))
	if err != nil {
		return 0
	}
	return v
}
