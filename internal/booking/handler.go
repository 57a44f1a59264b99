package booking

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jsaurabh334/PanditJii/internal/auth"
	"github.com/jsaurabh334/PanditJii/internal/coupon"
	"github.com/jsaurabh334/PanditJii/internal/wallet"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// Create godoc
// @Summary      Book a pandit
// @Description  Prices the booking (surge + coupon) and settles it from the caller's wallet.
// @Tags         bookings
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Router       /bookings [post]
func (h *Handler) Create(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Date must be YYYY-MM-DD"})
		return
	}

	settlement, err := h.service.Create(c.Request.Context(), userID, req.PanditID, date, req.BaseAmountPaise, req.CouponCode)
	if err != nil {
		respondCreateError(c, err)
		return
	}

	c.JSON(http.StatusCreated, settlement)
}

func respondCreateError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, coupon.ErrCouponNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Invalid coupon code"})
	case errors.Is(err, coupon.ErrCouponExpired):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Coupon has expired"})
	case errors.Is(err, coupon.ErrCouponExhausted):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Coupon usage limit reached"})
	case errors.Is(err, wallet.ErrWalletNotFound), errors.Is(err, wallet.ErrInsufficientBalance):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Insufficient Balance"})
	case errors.Is(err, ErrInvalidAmount):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Base amount must be positive"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error creating booking"})
	}
}

// Complete godoc
// @Summary      Complete a booking
// @Description  Pandit marks the booking done; the settled amount is credited as earnings.
// @Tags         bookings
// @Security     BearerAuth
// @Produce      json
// @Param        id  path  int  true  "Booking ID"
// @Router       /bookings/{id}/complete [post]
func (h *Handler) Complete(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	bookingID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid booking ID"})
		return
	}

	w, err := h.service.Complete(c.Request.Context(), bookingID, userID)
	if err != nil {
		respondTransitionError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Booking completed", "wallet": w})
}

// Cancel godoc
// @Summary      Cancel a booking
// @Description  Owner (or admin) cancels a pending booking; the settled amount is refunded.
// @Tags         bookings
// @Security     BearerAuth
// @Produce      json
// @Param        id  path  int  true  "Booking ID"
// @Router       /bookings/{id}/cancel [post]
func (h *Handler) Cancel(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}
	role, _ := auth.GetUserRole(c)

	bookingID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid booking ID"})
		return
	}

	w, err := h.service.Cancel(c.Request.Context(), bookingID, userID, role)
	if err != nil {
		respondTransitionError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Booking canceled", "wallet": w})
}

func respondTransitionError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrBookingNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
	case errors.Is(err, ErrUnauthorized):
		c.JSON(http.StatusForbidden, gin.H{"error": "Not allowed to act on this booking"})
	case errors.Is(err, ErrInvalidState):
		c.JSON(http.StatusConflict, gin.H{"error": "Booking is not pending"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error updating booking"})
	}
}

// OverrideStatus godoc
// @Summary      Set booking status
// @Description  Unconditional status change. Admin only; does not move money.
// @Tags         bookings
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id  path  int  true  "Booking ID"
// @Router       /bookings/{id}/status [put]
func (h *Handler) OverrideStatus(c *gin.Context) {
	bookingID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid booking ID"})
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Status is required"})
		return
	}

	b, err := h.service.OverrideStatus(c.Request.Context(), bookingID, req.Status)
	if err != nil {
		if errors.Is(err, ErrInvalidState) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown status"})
			return
		}
		if errors.Is(err, ErrBookingNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error updating booking"})
		return
	}

	c.JSON(http.StatusOK, b)
}

// MyBookings godoc
// @Summary      Caller's bookings
// @Tags         bookings
// @Security     BearerAuth
// @Produce      json
// @Router       /bookings/my [get]
func (h *Handler) MyBookings(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	bookings, err := h.service.GetUserBookings(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching bookings"})
		return
	}

	c.JSON(http.StatusOK, bookings)
}

// PanditBookings godoc
// @Summary      Bookings assigned to the calling pandit
// @Tags         bookings
// @Security     BearerAuth
// @Produce      json
// @Router       /pandits/bookings [get]
func (h *Handler) PanditBookings(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	bookings, err := h.service.GetPanditBookings(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching bookings"})
		return
	}

	c.JSON(http.StatusOK, bookings)
}

// AllBookings godoc
// @Summary      All bookings
// @Tags         bookings
// @Security     BearerAuth
// @Produce      json
// @Router       /admin/bookings [get]
func (h *Handler) AllBookings(c *gin.Context) {
	bookings, err := h.service.GetAllBookings(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching bookings"})
		return
	}

	c.JSON(http.StatusOK, bookings)
}

// AdminDashboard godoc
// @Summary      Admin dashboard
// @Description  Marketplace-wide user, vendor, pandit and booking counts.
// @Tags         admin
// @Security     BearerAuth
// @Produce      json
// @Router       /admin/dashboard [get]
func (h *Handler) AdminDashboard(c *gin.Context) {
	stats, err := h.service.AdminDashboard(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching dashboard"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Welcome to Admin Dashboard", "stats": stats})
}

// Delete godoc
// @Summary      Delete a booking
// @Description  Removes the booking record. Admin only; no refund is issued.
// @Tags         admin
// @Security     BearerAuth
// @Produce      json
// @Param        id  path  int  true  "Booking ID"
// @Router       /admin/bookings/{id} [delete]
func (h *Handler) Delete(c *gin.Context) {
	bookingID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid booking ID"})
		return
	}

	if err := h.service.DeleteBooking(c.Request.Context(), bookingID); err != nil {
		if errors.Is(err, ErrBookingNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error deleting booking"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Booking deleted successfully"})
}

// Dashboard godoc
// @Summary      Pandit dashboard
// @Description  Booking count plus current wallet balance for the calling pandit.
// @Tags         pandits
// @Security     BearerAuth
// @Produce      json
// @Router       /pandits/dashboard [get]
func (h *Handler) Dashboard(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	d, err := h.service.PanditDashboard(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching dashboard"})
		return
	}

	c.JSON(http.StatusOK, d)
}
