package wallet

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/jsaurabh334/PanditJii/internal/auth"
)

type Handler struct {
	repo Repository
}

func NewHandler(repo Repository) *Handler {
	return &Handler{repo: repo}
}

type DepositRequest struct {
	AmountPaise int64  `json:"amount_paise" binding:"required,gt=0"`
	Reference   string `json:"reference"`
}

type WithdrawRequest struct {
	AmountPaise int64 `json:"amount_paise" binding:"required,gt=0"`
}

type PayRequest struct {
	AmountPaise int64  `json:"amount_paise" binding:"required,gt=0"`
	BookingID   string `json:"booking_id"`
}

// Get godoc
// @Summary      Get wallet
// @Description  Returns the caller's wallet, creating an empty one on first touch.
// @Tags         wallet
// @Security     BearerAuth
// @Produce      json
// @Router       /wallet [get]
func (h *Handler) Get(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	w, err := h.repo.GetOrCreate(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching wallet balance"})
		return
	}

	c.JSON(http.StatusOK, w)
}

// Deposit godoc
// @Summary      Deposit funds
// @Tags         wallet
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Router       /wallet/deposit [post]
func (h *Handler) Deposit(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req DepositRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid deposit amount"})
		return
	}

	w, err := h.repo.Credit(c.Request.Context(), userID, req.AmountPaise, TypeDeposit, req.Reference)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error adding funds"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Funds added successfully", "balance_paise": w.BalancePaise})
}

// Withdraw godoc
// @Summary      Withdraw funds
// @Description  Withdraws earnings. Pandit and vendor roles only.
// @Tags         wallet
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Router       /wallet/withdraw [post]
func (h *Handler) Withdraw(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req WithdrawRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid withdrawal amount"})
		return
	}

	w, err := h.repo.Debit(c.Request.Context(), userID, req.AmountPaise, TypeWithdrawal, "")
	if err != nil {
		if errors.Is(err, ErrWalletNotFound) || errors.Is(err, ErrInsufficientBalance) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Insufficient Balance"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error processing withdrawal"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Withdrawal Successful", "balance_paise": w.BalancePaise})
}

// Pay godoc
// @Summary      Pay from wallet
// @Description  Debits the wallet for an out-of-band booking payment.
// @Tags         wallet
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Router       /wallet/pay [post]
func (h *Handler) Pay(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req PayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payment amount"})
		return
	}

	w, err := h.repo.Debit(c.Request.Context(), userID, req.AmountPaise, TypeBookingPayment, req.BookingID)
	if err != nil {
		if errors.Is(err, ErrWalletNotFound) || errors.Is(err, ErrInsufficientBalance) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Insufficient Balance"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error processing payment"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Payment Successful", "balance_paise": w.BalancePaise})
}

// Summary godoc
// @Summary      Wallet summary
// @Description  Total balance held across all wallets. Admin only.
// @Tags         admin
// @Security     BearerAuth
// @Produce      json
// @Router       /admin/wallet-summary [get]
func (h *Handler) Summary(c *gin.Context) {
	total, err := h.repo.TotalBalance(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching wallet summary"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"total_balance_paise": total})
}

// Transactions godoc
// @Summary      List wallet transactions
// @Tags         wallet
// @Security     BearerAuth
// @Produce      json
// @Router       /wallet/transactions [get]
func (h *Handler) Transactions(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	txs, err := h.repo.Transactions(c.Request.Context(), userID, limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching transactions"})
		return
	}

	c.JSON(http.StatusOK, txs)
}
