package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	checkoutsvc "storefront/internal/checkout"
)

type applyCouponRequest struct {
	Code string `json:"code" binding:"required"`
}

func totalsHandler(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, deps.Checkout.ComputeTotals())
	}
}

func applyCouponHandler(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req applyCouponRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, http.StatusBadRequest, "InvalidInput", err.Error())
			return
		}
		if err := deps.Checkout.ApplyCoupon(req.Code); err != nil {
			if errors.Is(err, checkoutsvc.ErrInvalidCoupon) {
				respondError(c, http.StatusUnprocessableEntity, "InvalidCoupon", "that coupon code is not valid")
				return
			}
			respondError(c, http.StatusInternalServerError, "General", err.Error())
			return
		}
		c.JSON(http.StatusOK, deps.Checkout.ComputeTotals())
	}
}

func removeCouponHandler(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		deps.Checkout.RemoveCoupon()
		c.JSON(http.StatusOK, deps.Checkout.ComputeTotals())
	}
}

func placeOrderHandler(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		order, err := deps.Checkout.PlaceOrder()
		if err != nil {
			if errors.Is(err, checkoutsvc.ErrEmptyCart) {
				respondError(c, http.StatusUnprocessableEntity, "EmptyCart", "your cart is empty")
				return
			}
			respondError(c, http.StatusInternalServerError, "General", err.Error())
			return
		}
		c.JSON(http.StatusCreated, gin.H{"order": order})
	}
}
