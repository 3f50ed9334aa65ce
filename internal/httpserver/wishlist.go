package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type addToWishlistRequest struct {
	ProductID string `json:"productId" binding:"required"`
}

func wishlistBody(deps Deps) gin.H {
	return gin.H{
		"items":      deps.Wishlist.Items(),
		"totalCount": deps.Wishlist.TotalCount(),
	}
}

func getWishlistHandler(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, wishlistBody(deps))
	}
}

func addToWishlistHandler(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req addToWishlistRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, http.StatusBadRequest, "InvalidInput", err.Error())
			return
		}
		product, err := deps.Catalog.Get(req.ProductID)
		if err != nil {
			respondError(c, http.StatusNotFound, "ProductNotFound", "no product with that id")
			return
		}
		if err := deps.Wishlist.Add(*product); err != nil {
			respondError(c, http.StatusInternalServerError, "General", err.Error())
			return
		}
		c.JSON(http.StatusOK, wishlistBody(deps))
	}
}

func removeFromWishlistHandler(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := deps.Wishlist.Remove(c.Param("productId")); err != nil {
			respondError(c, http.StatusInternalServerError, "General", err.Error())
			return
		}
		c.JSON(http.StatusOK, wishlistBody(deps))
	}
}

func clearWishlistHandler(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := deps.Wishlist.Clear(); err != nil {
			respondError(c, http.StatusInternalServerError, "General", err.Error())
			return
		}
		c.JSON(http.StatusOK, wishlistBody(deps))
	}
}
