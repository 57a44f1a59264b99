package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jsaurabh334/PanditJii/internal/auth"
	"github.com/jsaurabh334/PanditJii/internal/coupon"
	"github.com/jsaurabh334/PanditJii/internal/logger"
	"github.com/jsaurabh334/PanditJii/internal/metrics"
	"github.com/jsaurabh334/PanditJii/internal/notify"
	"github.com/jsaurabh334/PanditJii/internal/pricing"
	"github.com/jsaurabh334/PanditJii/internal/user"
	"github.com/jsaurabh334/PanditJii/internal/wallet"
)

var (
	ErrUnauthorized  = errors.New("not allowed to act on this booking")
	ErrInvalidAmount = errors.New("base amount must be positive")
)

type Service interface {
	// Create runs the full settlement: coupon redemption, surge pricing,
	// wallet debit, booking persistence and a best-effort notification.
	Create(ctx context.Context, userID, panditID int, date time.Time, baseAmountPaise int64, couponCode string) (*Settlement, error)
	// Complete marks a pending booking completed and credits the pandit.
	Complete(ctx context.Context, bookingID, actingPanditID int) (*wallet.Wallet, error)
	// Cancel refunds a pending booking back to the owner's wallet.
	Cancel(ctx context.Context, bookingID, actingUserID int, actingRole string) (*wallet.Wallet, error)
	OverrideStatus(ctx context.Context, bookingID int, status string) (*Booking, error)
	GetUserBookings(ctx context.Context, userID int) ([]Booking, error)
	GetPanditBookings(ctx context.Context, panditID int) ([]BookingWithDetails, error)
	GetAllBookings(ctx context.Context) ([]BookingWithDetails, error)
	PanditDashboard(ctx context.Context, panditID int) (*Dashboard, error)
	AdminDashboard(ctx context.Context) (*AdminStats, error)
	DeleteBooking(ctx context.Context, bookingID int) error
}

type service struct {
	bookingRepo Repository
	couponSvc   coupon.Service
	walletRepo  wallet.Repository
	userRepo    user.Repository
	surge       *pricing.Table
	notifier    notify.Notifier
}

func NewService(
	bookingRepo Repository,
	couponSvc coupon.Service,
	walletRepo wallet.Repository,
	userRepo user.Repository,
	surge *pricing.Table,
	notifier notify.Notifier,
) Service {
	return &service{
		bookingRepo: bookingRepo,
		couponSvc:   couponSvc,
		walletRepo:  walletRepo,
		userRepo:    userRepo,
		surge:       surge,
		notifier:    notifier,
	}
}

func (s *service) Create(ctx context.Context, userID, panditID int, date time.Time, baseAmountPaise int64, couponCode string) (*Settlement, error) {
	if baseAmountPaise <= 0 {
		return nil, ErrInvalidAmount
	}

	// Coupon usage is consumed here, before the debit. A later failure
	// (insufficient balance, insert error) leaves the coupon burned with no
	// booking to show for it — legacy behavior, kept intact.
	var discountPaise int64
	var appliedCode *string
	if couponCode != "" {
		discount, err := s.couponSvc.Redeem(ctx, couponCode, baseAmountPaise)
		if err != nil {
			return nil, err
		}
		discountPaise = discount
		normalized := coupon.NormalizeCode(couponCode)
		appliedCode = &normalized
	}

	totalPaise, multiplier, err := s.surge.Quote(baseAmountPaise, date)
	if err != nil {
		return nil, err
	}

	finalPaise := totalPaise - discountPaise
	if finalPaise < 0 {
		finalPaise = 0
	}

	w, err := s.walletRepo.Debit(ctx, userID, finalPaise, wallet.TypeBookingPayment, "")
	if err != nil {
		metrics.RecordBooking("payment_failed")
		return nil, err
	}

	b, err := s.bookingRepo.Insert(ctx, &Booking{
		UserID:          userID,
		PanditID:        panditID,
		Date:            date,
		BaseAmountPaise: baseAmountPaise,
		AmountPaise:     finalPaise,
		SurgeMultiplier: multiplier,
		DiscountPaise:   discountPaise,
		CouponCode:      appliedCode,
	})
	if err != nil {
		metrics.RecordBooking("persist_failed")
		return nil, err
	}

	metrics.RecordBooking("created")
	metrics.RecordBookingRevenue(finalPaise)

	s.notifyConfirmed(ctx, userID, b)

	return &Settlement{
		Booking:            b,
		DiscountPaise:      discountPaise,
		FinalPaise:         finalPaise,
		WalletBalancePaise: w.BalancePaise,
	}, nil
}

func (s *service) Complete(ctx context.Context, bookingID, actingPanditID int) (*wallet.Wallet, error) {
	b, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if b.PanditID != actingPanditID {
		return nil, ErrUnauthorized
	}

	if err := s.bookingRepo.UpdateStatusFrom(ctx, b.ID, StatusPending, StatusCompleted); err != nil {
		return nil, err
	}

	w, err := s.walletRepo.Credit(ctx, b.PanditID, b.AmountPaise, wallet.TypeEarning, bookingRef(b.ID))
	if err != nil {
		// The status flip is not compensated; the credit must be replayed by
		// an operator. Logged loudly for that reason.
		logger.Errorf("Earning credit failed for booking %d pandit %d: %v", b.ID, b.PanditID, err)
		return nil, err
	}

	metrics.RecordBooking("completed")

	if pandit, lookupErr := s.userRepo.FindByID(ctx, b.PanditID); lookupErr == nil {
		if notifyErr := s.notifier.EarningCredited(ctx, pandit.Email, pandit.Name, b.AmountPaise); notifyErr != nil {
			logger.Warnf("Earning notification failed for booking %d: %v", b.ID, notifyErr)
		}
	}

	return w, nil
}

func (s *service) Cancel(ctx context.Context, bookingID, actingUserID int, actingRole string) (*wallet.Wallet, error) {
	b, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if b.UserID != actingUserID && actingRole != auth.RoleAdmin {
		return nil, ErrUnauthorized
	}

	if b.Status != StatusPending {
		return nil, ErrInvalidState
	}

	// The conditional flip happens before the refund so two racing cancels
	// cannot both credit the wallet.
	if err := s.bookingRepo.UpdateStatusFrom(ctx, b.ID, StatusPending, StatusCanceled); err != nil {
		return nil, err
	}

	w, err := s.walletRepo.Credit(ctx, b.UserID, b.AmountPaise, wallet.TypeRefund, bookingRef(b.ID))
	if err != nil {
		logger.Errorf("Refund failed for booking %d user %d: %v", b.ID, b.UserID, err)
		return nil, err
	}

	metrics.RecordBooking("canceled")

	if owner, lookupErr := s.userRepo.FindByID(ctx, b.UserID); lookupErr == nil {
		if notifyErr := s.notifier.BookingCanceled(ctx, owner.Email, owner.Name, b.Date, b.AmountPaise); notifyErr != nil {
			logger.Warnf("Cancellation notification failed for booking %d: %v", b.ID, notifyErr)
		}
	}

	return w, nil
}

func (s *service) OverrideStatus(ctx context.Context, bookingID int, status string) (*Booking, error) {
	if !ValidStatus(status) {
		return nil, ErrInvalidState
	}
	return s.bookingRepo.SetStatus(ctx, bookingID, status)
}

func (s *service) GetUserBookings(ctx context.Context, userID int) ([]Booking, error) {
	return s.bookingRepo.ListByUser(ctx, userID)
}

func (s *service) GetPanditBookings(ctx context.Context, panditID int) ([]BookingWithDetails, error) {
	return s.bookingRepo.ListByPandit(ctx, panditID)
}

func (s *service) GetAllBookings(ctx context.Context) ([]BookingWithDetails, error) {
	return s.bookingRepo.ListAll(ctx)
}

func (s *service) PanditDashboard(ctx context.Context, panditID int) (*Dashboard, error) {
	total, err := s.bookingRepo.CountByPandit(ctx, panditID)
	if err != nil {
		return nil, err
	}

	w, err := s.walletRepo.GetOrCreate(ctx, panditID)
	if err != nil {
		return nil, err
	}

	return &Dashboard{
		TotalBookings:      total,
		TotalEarningsPaise: w.BalancePaise,
	}, nil
}

func (s *service) AdminDashboard(ctx context.Context) (*AdminStats, error) {
	counts, err := s.userRepo.Counts(ctx)
	if err != nil {
		return nil, err
	}

	total, err := s.bookingRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	return &AdminStats{
		TotalUsers:    counts.TotalUsers,
		TotalVendors:  counts.TotalVendors,
		TotalPandits:  counts.TotalPandits,
		TotalBookings: total,
	}, nil
}

// DeleteBooking removes the record without reversing its settlement; the
// refund path is Cancel.
func (s *service) DeleteBooking(ctx context.Context, bookingID int) error {
	return s.bookingRepo.Delete(ctx, bookingID)
}

func (s *service) notifyConfirmed(ctx context.Context, userID int, b *Booking) {
	u, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		logger.Warnf("Confirmation notification skipped, user %d lookup failed: %v", userID, err)
		return
	}

	if err := s.notifier.BookingConfirmed(ctx, u.Email, u.Name, b.Date, b.AmountPaise); err != nil {
		logger.Warnf("Confirmation notification failed for booking %d: %v", b.ID, err)
	}
}

func bookingRef(id int) string {
	return fmt.Sprintf("booking:%d", id)
}
