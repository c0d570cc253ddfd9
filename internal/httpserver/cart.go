package httpserver

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"storefront-gateway/internal/domain"
)

type addItemRequest struct {
	ProductID int `json:"product_id"`
}

type setQuantityRequest struct {
	Quantity int `json:"quantity"`
}

func (h *handlers) getCart(c *gin.Context) {
	sc := h.scope(c)
	c.JSON(http.StatusOK, toCartView(sc.cart.Snapshot()))
}

// addCartItem resolves the product through the catalog so the stored line
// carries the listed name and price; repeated adds bump the quantity of
// the existing line.
func (h *handlers) addCartItem(c *gin.Context) {
	var req addItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
		return
	}
	p, err := h.lookupProduct(c, req.ProductID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Product not found"})
			return
		}
		h.fail(c, nil, err)
		return
	}
	sc := h.scope(c)
	sc.cart.Add(c.Request.Context(), p.ID, p.Name, p.Price)
	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("%s added to cart!", p.Name),
		"cart":    toCartView(sc.cart.Snapshot()),
	})
}

func (h *handlers) setCartItemQuantity(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid product id"})
		return
	}
	var req setQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
		return
	}
	sc := h.scope(c)
	sc.cart.SetQuantity(c.Request.Context(), id, req.Quantity)
	c.JSON(http.StatusOK, toCartView(sc.cart.Snapshot()))
}

func (h *handlers) removeCartItem(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid product id"})
		return
	}
	sc := h.scope(c)
	sc.cart.Remove(c.Request.Context(), id)
	c.JSON(http.StatusOK, toCartView(sc.cart.Snapshot()))
}

func (h *handlers) clearCart(c *gin.Context) {
	sc := h.scope(c)
	sc.cart.Clear(c.Request.Context())
	c.JSON(http.StatusOK, toCartView(sc.cart.Snapshot()))
}
