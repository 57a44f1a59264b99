package product

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/jsaurabh334/PanditJii/internal/auth"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// Create godoc
// @Summary      List a product
// @Tags         products
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Router       /products [post]
func (h *Handler) Create(c *gin.Context) {
	vendorID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}

	p, err := h.service.Create(c.Request.Context(), vendorID, req)
	if err != nil {
		if errors.Is(err, ErrUnknownCategory) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown category"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error creating product"})
		return
	}

	c.JSON(http.StatusCreated, p)
}

// List godoc
// @Summary      Browse products
// @Tags         products
// @Produce      json
// @Param        category  query  string  false  "Category filter"
// @Router       /products [get]
func (h *Handler) List(c *gin.Context) {
	products, err := h.service.List(c.Request.Context(), c.Query("category"))
	if err != nil {
		if errors.Is(err, ErrUnknownCategory) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown category"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching products"})
		return
	}

	c.JSON(http.StatusOK, products)
}

// Get godoc
// @Summary      Product details
// @Tags         products
// @Produce      json
// @Param        id  path  int  true  "Product ID"
// @Router       /products/{id} [get]
func (h *Handler) Get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
		return
	}

	p, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrProductNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching product"})
		return
	}

	c.JSON(http.StatusOK, p)
}

// Mine godoc
// @Summary      Calling vendor's products
// @Tags         products
// @Security     BearerAuth
// @Produce      json
// @Router       /products/mine [get]
func (h *Handler) Mine(c *gin.Context) {
	vendorID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	products, err := h.service.ListMine(c.Request.Context(), vendorID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching products"})
		return
	}

	c.JSON(http.StatusOK, products)
}

// Update godoc
// @Summary      Update a product
// @Tags         products
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id  path  int  true  "Product ID"
// @Router       /products/{id} [put]
func (h *Handler) Update(c *gin.Context) {
	vendorID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
		return
	}

	var req UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product data"})
		return
	}

	p, err := h.service.Update(c.Request.Context(), vendorID, id, req)
	if err != nil {
		respondProductError(c, err)
		return
	}

	c.JSON(http.StatusOK, p)
}

// Delete godoc
// @Summary      Remove a product
// @Tags         products
// @Security     BearerAuth
// @Param        id  path  int  true  "Product ID"
// @Router       /products/{id} [delete]
func (h *Handler) Delete(c *gin.Context) {
	vendorID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
		return
	}

	if err := h.service.Delete(c.Request.Context(), vendorID, id); err != nil {
		respondProductError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Product deleted"})
}

// AdminDelete godoc
// @Summary      Remove any product
// @Description  Deletes a listing without an ownership check. Admin only.
// @Tags         admin
// @Security     BearerAuth
// @Param        id  path  int  true  "Product ID"
// @Router       /admin/products/{id} [delete]
func (h *Handler) AdminDelete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
		return
	}

	if err := h.service.DeleteAny(c.Request.Context(), id); err != nil {
		respondProductError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Product deleted"})
}

func respondProductError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrProductNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
	case errors.Is(err, ErrNotOwner):
		c.JSON(http.StatusForbidden, gin.H{"error": "Not your product"})
	case errors.Is(err, ErrUnknownCategory):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown category"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error updating product"})
	}
}
