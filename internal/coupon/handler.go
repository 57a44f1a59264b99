package coupon

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jsaurabh334/PanditJii/internal/api"
)

type Handler struct {
	repo    Repository
	service Service
}

func NewHandler(repo Repository, service Service) *Handler {
	return &Handler{
		repo:    repo,
		service: service,
	}
}

type CreateCouponRequest struct {
	Code          string    `json:"code" validate:"required"`
	DiscountType  string    `json:"discount_type" validate:"required,oneof=fixed percentage"`
	DiscountValue int64     `json:"discount_value" validate:"required,gt=0"`
	ExpiresAt     time.Time `json:"expires_at" validate:"required"`
	UsageLimit    *int      `json:"usage_limit"`
}

type ApplyCouponRequest struct {
	TotalAmountPaise int64 `json:"total_amount_paise" binding:"required,gt=0"`
}

// Create godoc
// @Summary      Create coupon
// @Description  Creates a new coupon code. Admin only.
// @Tags         coupons
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Router       /coupons [post]
func (h *Handler) Create(c *gin.Context) {
	var req CreateCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}
	if errs := api.ValidateStruct(req); len(errs) > 0 {
		api.RespondWithValidationErrors(c, errs)
		return
	}

	// Mirror the legacy default of single-use coupons when no limit is given.
	usageLimit := 1
	if req.UsageLimit != nil {
		if *req.UsageLimit < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "usage_limit must not be negative"})
			return
		}
		usageLimit = *req.UsageLimit
	}

	created, err := h.repo.Create(c.Request.Context(), NormalizeCode(req.Code), req.DiscountType, req.DiscountValue, req.ExpiresAt, usageLimit)
	if err != nil {
		if errors.Is(err, ErrCodeTaken) {
			c.JSON(http.StatusConflict, gin.H{"error": "Coupon code already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error creating coupon"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Coupon created successfully", "coupon": created})
}

// List godoc
// @Summary      List coupons
// @Tags         coupons
// @Produce      json
// @Router       /coupons [get]
func (h *Handler) List(c *gin.Context) {
	coupons, err := h.repo.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching coupons"})
		return
	}

	c.JSON(http.StatusOK, coupons)
}

// Validate godoc
// @Summary      Validate coupon
// @Description  Checks a coupon without consuming usage.
// @Tags         coupons
// @Security     BearerAuth
// @Produce      json
// @Param        code  path  string  true  "Coupon code"
// @Router       /coupons/validate/{code} [get]
func (h *Handler) Validate(c *gin.Context) {
	cp, err := h.service.Validate(c.Request.Context(), c.Param("code"))
	if err != nil {
		respondCouponError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":        "Coupon is valid",
		"discount_type":  cp.DiscountType,
		"discount_value": cp.DiscountValue,
	})
}

// Apply godoc
// @Summary      Apply coupon
// @Description  Applies a coupon to a cart total, consuming one usage.
// @Tags         coupons
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        code  path  string  true  "Coupon code"
// @Router       /coupons/apply/{code} [post]
func (h *Handler) Apply(c *gin.Context) {
	var req ApplyCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "total_amount_paise must be positive"})
		return
	}

	result, err := h.service.Apply(c.Request.Context(), c.Param("code"), req.TotalAmountPaise)
	if err != nil {
		respondCouponError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":        "Coupon applied successfully",
		"discount_paise": result.DiscountPaise,
		"final_paise":    result.FinalPaise,
	})
}

// Delete godoc
// @Summary      Delete coupon
// @Description  Deletes a coupon by id. Admin only.
// @Tags         coupons
// @Security     BearerAuth
// @Produce      json
// @Param        id  path  int  true  "Coupon ID"
// @Router       /coupons/{id} [delete]
func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid coupon ID"})
		return
	}

	if err := h.repo.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, ErrCouponNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Coupon not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error deleting coupon"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Coupon deleted successfully"})
}

func respondCouponError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrCouponNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Coupon not found"})
	case errors.Is(err, ErrCouponExpired):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Coupon expired"})
	case errors.Is(err, ErrCouponExhausted):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Coupon usage limit reached"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error applying coupon"})
	}
}
