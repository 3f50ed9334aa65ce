package httpserver

import (
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	authsvc "storefront/internal/auth"
	cartsvc "storefront/internal/cart"
	"storefront/internal/catalog"
	checkoutsvc "storefront/internal/checkout"
	"storefront/internal/store"
	wishlistsvc "storefront/internal/wishlist"
)

// Deps carries the wired containers and derivations the handlers read from.
type Deps struct {
	Catalog        *catalog.Catalog
	Auth           *authsvc.Service
	Cart           *cartsvc.Service
	Wishlist       *wishlistsvc.Service
	Checkout       *checkoutsvc.Service
	PageSize       int
	AllowedOrigins []string
}

// buildRouter wires routes for the API.
func buildRouter(logger *log.Logger, kv store.KV, deps Deps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery())

	corsCfg := cors.DefaultConfig()
	if len(deps.AllowedOrigins) == 1 && deps.AllowedOrigins[0] == "*" {
		corsCfg.AllowAllOrigins = true
	} else if len(deps.AllowedOrigins) > 0 {
		corsCfg.AllowOrigins = deps.AllowedOrigins
	} else {
		corsCfg.AllowAllOrigins = true
	}
	corsCfg.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsCfg.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsCfg))

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(kv))

	api := router.Group("/api")
	{
		api.GET("/products", listProductsHandler(deps))
		api.GET("/products/:id", getProductHandler(deps))
		api.GET("/categories", listCategoriesHandler(deps))

		api.POST("/auth/signup", signupHandler(deps))
		api.POST("/auth/login", loginHandler(deps))
		api.POST("/auth/logout", logoutHandler(deps))
		api.GET("/auth/me", currentUserHandler(deps))

		api.GET("/cart", getCartHandler(deps))
		api.POST("/cart", addToCartHandler(deps))
		api.PUT("/cart/quantity", updateQuantityHandler(deps))
		api.DELETE("/cart/line", removeLineHandler(deps))
		api.DELETE("/cart/product/:productId", removeProductHandler(deps))
		api.DELETE("/cart", clearCartHandler(deps))

		api.GET("/wishlist", getWishlistHandler(deps))
		api.POST("/wishlist", addToWishlistHandler(deps))
		api.DELETE("/wishlist/:productId", removeFromWishlistHandler(deps))
		api.DELETE("/wishlist", clearWishlistHandler(deps))

		api.GET("/checkout/totals", totalsHandler(deps))
		api.POST("/checkout/coupon", applyCouponHandler(deps))
		api.DELETE("/checkout/coupon", removeCouponHandler(deps))
		api.POST("/checkout/order", placeOrderHandler(deps))
	}

	return router
}
