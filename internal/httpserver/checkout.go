package httpserver

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront-gateway/internal/checkout"
	"storefront-gateway/internal/domain"
	"storefront-gateway/internal/upstream"
)

func (h *handlers) checkout(c *gin.Context) {
	var card checkout.CardDetails
	if err := c.ShouldBindJSON(&card); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
		return
	}
	sc := h.scope(c)
	res, err := sc.checkout.Checkout(c.Request.Context(), card)
	if err != nil {
		if errors.Is(err, domain.ErrNotAuthenticated) {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Please login to checkout"})
			return
		}
		var payErr *checkout.PaymentError
		if errors.As(err, &payErr) {
			// A rejected token surfaces here wrapped, not through fail();
			// the session still has to go.
			var apiErr *upstream.APIError
			if errors.As(payErr.Err, &apiErr) && apiErr.Unauthorized() && sc.session.LoggedIn() {
				sc.session.Expire(c.Request.Context())
			}
			// The order exists but is unpaid; tell the client which one.
			h.logger.Printf("order %d created but payment failed: %v", payErr.OrderID, payErr.Err)
			c.JSON(http.StatusPaymentRequired, gin.H{
				"message":  fmt.Sprintf("Payment failed: %v", payErr.Err),
				"order_id": payErr.OrderID,
			})
			return
		}
		h.fail(c, sc, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":  "Payment successful!",
		"order_id": res.Order.ID,
		"amount":   res.Amount,
	})
}

func (h *handlers) listOrders(c *gin.Context) {
	sc := h.scope(c)
	history, err := sc.orders.History(c.Request.Context())
	if err != nil {
		if errors.Is(err, domain.ErrNotAuthenticated) {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Please login to view orders"})
			return
		}
		h.fail(c, sc, err)
		return
	}
	if history == nil {
		history = []domain.Order{}
	}
	c.JSON(http.StatusOK, history)
}
