package httpserver

import (
	"errors"
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"storefront-gateway/internal/catalog"
	"storefront-gateway/internal/store"
	"storefront-gateway/internal/upstream"
)

// Deps carries everything the storefront routes need. Session and cart
// managers are built per request from the store; the catalog and the
// upstream client are shared.
type Deps struct {
	Upstream *upstream.Client
	Store    store.Store
	Catalog  *catalog.Catalog
	Origins  []string
	Pinger   Pinger
}

// buildRouter wires the storefront surface.
func buildRouter(logger *log.Logger, deps Deps) (*gin.Engine, error) {
	if deps.Upstream == nil || deps.Store == nil || deps.Catalog == nil {
		return nil, errors.New("httpserver: missing dependencies")
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery())

	corsCfg := cors.DefaultConfig()
	if len(deps.Origins) > 0 {
		corsCfg.AllowOrigins = deps.Origins
	} else {
		corsCfg.AllowAllOrigins = true
	}
	corsCfg.AllowCredentials = true
	router.Use(cors.New(corsCfg))

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(deps.Pinger))

	h := &handlers{
		upstream: deps.Upstream,
		store:    deps.Store,
		catalog:  deps.Catalog,
		logger:   logger,
	}

	storeGroup := router.Group("/store")
	storeGroup.Use(clientCookie())

	auth := storeGroup.Group("/auth")
	auth.POST("/register", h.register)
	auth.POST("/login", h.login)
	auth.POST("/logout", h.logout)
	auth.GET("/me", h.me)

	storeGroup.GET("/products", h.listProducts)
	storeGroup.GET("/products/:id", h.getProduct)

	storeGroup.GET("/cart", h.getCart)
	storeGroup.POST("/cart/items", h.addCartItem)
	storeGroup.PUT("/cart/items/:id", h.setCartItemQuantity)
	storeGroup.DELETE("/cart/items/:id", h.removeCartItem)
	storeGroup.DELETE("/cart", h.clearCart)

	storeGroup.POST("/checkout", h.checkout)
	storeGroup.GET("/orders", h.listOrders)

	adm := storeGroup.Group("/admin")
	adm.GET("/stats", h.adminStats)
	adm.POST("/products", h.adminCreateProduct)
	adm.PUT("/products/:id", h.adminUpdateProduct)
	adm.DELETE("/products/:id", h.adminDeleteProduct)

	return router, nil
}
