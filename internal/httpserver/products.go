package httpserver

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"storefront-gateway/internal/domain"
)

func (h *handlers) listProducts(c *gin.Context) {
	products, err := h.catalog.Load(c.Request.Context(), c.Query("category"))
	if err != nil {
		h.fail(c, nil, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

func (h *handlers) getProduct(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid product id"})
		return
	}
	p, err := h.lookupProduct(c, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Product not found"})
			return
		}
		h.fail(c, nil, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// lookupProduct consults the catalog cache, loading it once on a miss.
// The reload mirrors the page-load flow: the product list is always
// fetched before anything references a product.
func (h *handlers) lookupProduct(c *gin.Context, id int) (*domain.Product, error) {
	p, err := h.catalog.GetByID(id)
	if err == nil {
		return p, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}
	if _, err := h.catalog.Load(c.Request.Context(), ""); err != nil {
		return nil, err
	}
	return h.catalog.GetByID(id)
}
