package httpserver

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront-gateway/internal/admin"
	"storefront-gateway/internal/cart"
	"storefront-gateway/internal/catalog"
	"storefront-gateway/internal/checkout"
	"storefront-gateway/internal/domain"
	"storefront-gateway/internal/orders"
	"storefront-gateway/internal/session"
	"storefront-gateway/internal/store"
	"storefront-gateway/internal/upstream"
)

type handlers struct {
	upstream *upstream.Client
	store    store.Store
	catalog  *catalog.Catalog
	logger   *log.Logger
}

// scope is one request's view of a single client: session and cart
// rehydrated from the store, with the orchestrators wired over them.
// Building it per request keeps all state explicit and owned (no globals).
type scope struct {
	session  *session.Manager
	cart     *cart.Manager
	orders   *orders.Client
	checkout *checkout.Orchestrator
	admin    *admin.Panel
}

func (h *handlers) scope(c *gin.Context) *scope {
	ctx := c.Request.Context()
	id := clientID(c)
	sess := session.New(ctx, h.upstream, h.store, id, h.logger)
	ct := cart.New(ctx, h.store, id, h.logger)
	ord := orders.New(h.upstream, sess)
	return &scope{
		session:  sess,
		cart:     ct,
		orders:   ord,
		checkout: checkout.New(sess, ct, ord, h.upstream),
		admin:    admin.New(h.upstream, sess),
	}
}

// fail maps an error to a response. Upstream errors keep their status and
// message; a rejected token additionally expires the session (reactive
// expiry, the only expiry the gateway has). Local precondition failures
// carry their own messages.
func (h *handlers) fail(c *gin.Context, sc *scope, err error) {
	var apiErr *upstream.APIError
	if errors.As(err, &apiErr) {
		if apiErr.Unauthorized() && sc != nil && sc.session.LoggedIn() {
			sc.session.Expire(c.Request.Context())
		}
		c.JSON(apiErr.Status, gin.H{"message": apiErr.Error()})
		return
	}

	switch {
	case errors.Is(err, domain.ErrNotAuthenticated):
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Please login to continue"})
	case errors.Is(err, domain.ErrEmptyCart):
		c.JSON(http.StatusBadRequest, gin.H{"message": "Your cart is empty"})
	case errors.Is(err, domain.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"message": "Admin access only"})
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "Not found"})
	case errors.Is(err, session.ErrMissingCredentials),
		errors.Is(err, checkout.ErrMissingCardDetails),
		errors.Is(err, checkout.ErrInvalidCardNumber):
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
	default:
		h.logger.Printf("request failed: %v", err)
		c.JSON(http.StatusBadGateway, gin.H{"message": err.Error()})
	}
}
