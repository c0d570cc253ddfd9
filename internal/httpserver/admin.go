package httpserver

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"storefront-gateway/internal/upstream"
)

func (h *handlers) adminStats(c *gin.Context) {
	sc := h.scope(c)
	stats, err := sc.admin.Stats(c.Request.Context())
	if err != nil {
		h.fail(c, sc, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *handlers) adminCreateProduct(c *gin.Context) {
	var in upstream.ProductInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
		return
	}
	sc := h.scope(c)
	p, err := sc.admin.CreateProduct(c.Request.Context(), in)
	if err != nil {
		h.fail(c, sc, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Product added successfully", "product": p})
}

func (h *handlers) adminUpdateProduct(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid product id"})
		return
	}
	var in upstream.ProductInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
		return
	}
	sc := h.scope(c)
	p, err := sc.admin.UpdateProduct(c.Request.Context(), id, in)
	if err != nil {
		h.fail(c, sc, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Product updated", "product": p})
}

func (h *handlers) adminDeleteProduct(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid product id"})
		return
	}
	sc := h.scope(c)
	if err := sc.admin.DeleteProduct(c.Request.Context(), id); err != nil {
		h.fail(c, sc, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Product deleted"})
}
