package review

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
// @Summary      Leave a review
// @Description  Reviews target exactly one of a pandit or a product.
// @Tags         reviews
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Router       /reviews [post]
func (h *Handler) Create(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Rating (1-5) and review are required"})
		return
	}

	r, err := h.service.Create(c.Request.Context(), userID, req)
	if err != nil {
		if errors.Is(err, ErrBadTarget) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Review exactly one of pandit_id or product_id"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error creating review"})
		return
	}

	c.JSON(http.StatusCreated, r)
}

// ForPandit godoc
// @Summary      Reviews for a pandit
// @Tags         reviews
// @Produce      json
// @Param        panditID  path  int  true  "Pandit ID"
// @Router       /reviews/pandit/{panditID} [get]
func (h *Handler) ForPandit(c *gin.Context) {
	panditID, err := strconv.Atoi(c.Param("panditID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid pandit ID"})
		return
	}

	reviews, err := h.service.ForPandit(c.Request.Context(), panditID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching reviews"})
		return
	}

	c.JSON(http.StatusOK, reviews)
}

// ForProduct godoc
// @Summary      Reviews for a product
// @Tags         reviews
// @Produce      json
// @Param        productID  path  int  true  "Product ID"
// @Router       /reviews/product/{productID} [get]
func (h *Handler) ForProduct(c *gin.Context) {
	productID, err := strconv.Atoi(c.Param("productID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
		return
	}

	reviews, err := h.service.ForProduct(c.Request.Context(), productID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching reviews"})
		return
	}

	c.JSON(http.StatusOK, reviews)
}
