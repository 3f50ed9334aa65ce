package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	cartsvc "storefront/internal/cart"
)

// Cart requests name products by id; the handler resolves them against the
// catalog so the container only ever sees the canonical Product shape.
type addToCartRequest struct {
	ProductID string `json:"productId" binding:"required"`
	Quantity  int    `json:"quantity"`
	Color     string `json:"color"`
	Size      string `json:"size"`
}

type updateQuantityRequest struct {
	ProductID string `json:"productId" binding:"required"`
	Color     string `json:"color"`
	Size      string `json:"size"`
	Quantity  int    `json:"quantity"`
}

type removeLineRequest struct {
	ProductID string `json:"productId" binding:"required"`
	Color     string `json:"color"`
	Size      string `json:"size"`
}

type cartResponse struct {
	Items      []cartsvc.Line `json:"items"`
	TotalItems int            `json:"totalItems"`
	TotalPrice float64        `json:"totalPrice"`
}

func cartBody(deps Deps) cartResponse {
	return cartResponse{
		Items:      deps.Cart.Items(),
		TotalItems: deps.Cart.TotalItems(),
		TotalPrice: deps.Cart.TotalPrice(),
	}
}

func getCartHandler(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, cartBody(deps))
	}
}

func addToCartHandler(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req addToCartRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, http.StatusBadRequest, "InvalidInput", err.Error())
			return
		}
		product, err := deps.Catalog.Get(req.ProductID)
		if err != nil {
			respondError(c, http.StatusNotFound, "ProductNotFound", "no product with that id")
			return
		}
		if err := deps.Cart.Add(*product, req.Quantity, req.Color, req.Size); err != nil {
			respondError(c, http.StatusInternalServerError, "General", err.Error())
			return
		}
		c.JSON(http.StatusOK, cartBody(deps))
	}
}

func updateQuantityHandler(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req updateQuantityRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, http.StatusBadRequest, "InvalidInput", err.Error())
			return
		}
		if err := deps.Cart.UpdateQuantity(req.ProductID, req.Color, req.Size, req.Quantity); err != nil {
			respondError(c, http.StatusInternalServerError, "General", err.Error())
			return
		}
		c.JSON(http.StatusOK, cartBody(deps))
	}
}

func removeLineHandler(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req removeLineRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, http.StatusBadRequest, "InvalidInput", err.Error())
			return
		}
		if err := deps.Cart.Remove(req.ProductID, req.Color, req.Size); err != nil {
			respondError(c, http.StatusInternalServerError, "General", err.Error())
			return
		}
		c.JSON(http.StatusOK, cartBody(deps))
	}
}

func removeProductHandler(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := deps.Cart.RemoveProduct(c.Param("productId")); err != nil {
			respondError(c, http.StatusInternalServerError, "General", err.Error())
			return
		}
		c.JSON(http.StatusOK, cartBody(deps))
	}
}

func clearCartHandler(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := deps.Cart.Clear(); err != nil {
			respondError(c, http.StatusInternalServerError, "General", err.Error())
			return
		}
		c.JSON(http.StatusOK, cartBody(deps))
	}
}
