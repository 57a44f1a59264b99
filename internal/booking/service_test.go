package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/jsaurabh334/PanditJii/internal/auth"
	"github.com/jsaurabh334/PanditJii/internal/coupon"
	"github.com/jsaurabh334/PanditJii/internal/pricing"
	"github.com/jsaurabh334/PanditJii/internal/user"
	"github.com/jsaurabh334/PanditJii/internal/wallet"
)

type MockBookingRepo struct{ mock.Mock }

func (m *MockBookingRepo) Insert(ctx context.Context, b *Booking) (*Booking, error) {
	args := m.Called(ctx, b)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Booking), args.Error(1)
}

func (m *MockBookingRepo) GetByID(ctx context.Context, id int) (*Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Booking), args.Error(1)
}

func (m *MockBookingRepo) UpdateStatusFrom(ctx context.Context, id int, from, to string) error {
	return m.Called(ctx, id, from, to).Error(0)
}

func (m *MockBookingRepo) SetStatus(ctx context.Context, id int, status string) (*Booking, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Booking), args.Error(1)
}

func (m *MockBookingRepo) ListAll(ctx context.Context) ([]BookingWithDetails, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]BookingWithDetails), args.Error(1)
}

func (m *MockBookingRepo) ListByUser(ctx context.Context, userID int) ([]Booking, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Booking), args.Error(1)
}

func (m *MockBookingRepo) ListByPandit(ctx context.Context, panditID int) ([]BookingWithDetails, error) {
	args := m.Called(ctx, panditID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]BookingWithDetails), args.Error(1)
}

func (m *MockBookingRepo) CountByPandit(ctx context.Context, panditID int) (int, error) {
	args := m.Called(ctx, panditID)
	return args.Int(0), args.Error(1)
}

func (m *MockBookingRepo) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockBookingRepo) Delete(ctx context.Context, id int) error {
	return m.Called(ctx, id).Error(0)
}

type MockCouponService struct{ mock.Mock }

func (m *MockCouponService) Validate(ctx context.Context, code string) (*coupon.Coupon, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*coupon.Coupon), args.Error(1)
}

func (m *MockCouponService) Redeem(ctx context.Context, code string, amountPaise int64) (int64, error) {
	args := m.Called(ctx, code, amountPaise)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCouponService) Apply(ctx context.Context, code string, totalPaise int64) (*coupon.ApplyResult, error) {
	args := m.Called(ctx, code, totalPaise)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*coupon.ApplyResult), args.Error(1)
}

type MockWalletRepo struct{ mock.Mock }

func (m *MockWalletRepo) GetOrCreate(ctx context.Context, userID int) (*wallet.Wallet, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*wallet.Wallet), args.Error(1)
}

func (m *MockWalletRepo) GetByUser(ctx context.Context, userID int) (*wallet.Wallet, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*wallet.Wallet), args.Error(1)
}

func (m *MockWalletRepo) Debit(ctx context.Context, userID int, amountPaise int64, txType, reference string) (*wallet.Wallet, error) {
	args := m.Called(ctx, userID, amountPaise, txType, reference)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*wallet.Wallet), args.Error(1)
}

func (m *MockWalletRepo) Credit(ctx context.Context, userID int, amountPaise int64, txType, reference string) (*wallet.Wallet, error) {
	args := m.Called(ctx, userID, amountPaise, txType, reference)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*wallet.Wallet), args.Error(1)
}

func (m *MockWalletRepo) Transactions(ctx context.Context, userID, limit, offset int) ([]wallet.Transaction, error) {
	args := m.Called(ctx, userID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]wallet.Transaction), args.Error(1)
}

func (m *MockWalletRepo) TotalBalance(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type MockUserRepo struct{ mock.Mock }

func (m *MockUserRepo) Create(ctx context.Context, name, email, phone, passwordHash, role string) (*user.User, error) {
	args := m.Called(ctx, name, email, phone, passwordHash, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *MockUserRepo) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *MockUserRepo) FindByID(ctx context.Context, id int) (*user.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *MockUserRepo) EmailExists(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepo) ListByRole(ctx context.Context, role string) ([]user.User, error) {
	args := m.Called(ctx, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]user.User), args.Error(1)
}

func (m *MockUserRepo) ListAll(ctx context.Context) ([]user.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]user.User), args.Error(1)
}

func (m *MockUserRepo) UpdateProfile(ctx context.Context, id int, name, phone *string) (*user.User, error) {
	args := m.Called(ctx, id, name, phone)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *MockUserRepo) UpdatePassword(ctx context.Context, id int, passwordHash string) error {
	return m.Called(ctx, id, passwordHash).Error(0)
}

func (m *MockUserRepo) ToggleSuspended(ctx context.Context, id int) (*user.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *MockUserRepo) SetRole(ctx context.Context, id int, role string) (*user.User, error) {
	args := m.Called(ctx, id, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *MockUserRepo) SetApproved(ctx context.Context, id int, approved bool) (*user.User, error) {
	args := m.Called(ctx, id, approved)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *MockUserRepo) Delete(ctx context.Context, id int) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockUserRepo) Counts(ctx context.Context) (*user.RoleCounts, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.RoleCounts), args.Error(1)
}

func (m *MockUserRepo) SetAvailability(ctx context.Context, userID int, dates []time.Time) error {
	return m.Called(ctx, userID, dates).Error(0)
}

func (m *MockUserRepo) GetAvailability(ctx context.Context, userID int) ([]time.Time, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]time.Time), args.Error(1)
}

type MockNotifier struct{ mock.Mock }

func (m *MockNotifier) Send(ctx context.Context, to, name, subject, body string) error {
	return m.Called(ctx, to, name, subject, body).Error(0)
}

func (m *MockNotifier) BookingConfirmed(ctx context.Context, to, name string, date time.Time, amountPaise int64) error {
	return m.Called(ctx, to, name, date, amountPaise).Error(0)
}

func (m *MockNotifier) BookingCanceled(ctx context.Context, to, name string, date time.Time, amountPaise int64) error {
	return m.Called(ctx, to, name, date, amountPaise).Error(0)
}

func (m *MockNotifier) EarningCredited(ctx context.Context, to, name string, amountPaise int64) error {
	return m.Called(ctx, to, name, amountPaise).Error(0)
}

type serviceMocks struct {
	bookings *MockBookingRepo
	coupons  *MockCouponService
	wallets  *MockWalletRepo
	users    *MockUserRepo
	notifier *MockNotifier
}

func newTestService() (Service, *serviceMocks) {
	m := &serviceMocks{
		bookings: new(MockBookingRepo),
		coupons:  new(MockCouponService),
		wallets:  new(MockWalletRepo),
		users:    new(MockUserRepo),
		notifier: new(MockNotifier),
	}
	svc := NewService(m.bookings, m.coupons, m.wallets, m.users, pricing.NewTable(nil), m.notifier)
	return svc, m
}

var (
	monday   = time.Date(2025, 3, 24, 0, 0, 0, 0, time.UTC)
	saturday = time.Date(2025, 3, 22, 0, 0, 0, 0, time.UTC)
	navratri = time.Date(2024, 10, 12, 0, 0, 0, 0, time.UTC)
)

func TestCreateBookingWeekdayNoCoupon(t *testing.T) {
	svc, m := newTestService()

	m.wallets.On("Debit", mock.Anything, 1, int64(100_000), wallet.TypeBookingPayment, "").
		Return(&wallet.Wallet{UserID: 1, BalancePaise: 50_000}, nil)
	m.bookings.On("Insert", mock.Anything, mock.MatchedBy(func(b *Booking) bool {
		return b.AmountPaise == 100_000 && b.SurgeMultiplier == 1.0 && b.DiscountPaise == 0 && b.CouponCode == nil
	})).Return(&Booking{ID: 10, UserID: 1, PanditID: 2, AmountPaise: 100_000, Status: StatusPending}, nil)
	m.users.On("FindByID", mock.Anything, 1).Return(&user.User{ID: 1, Name: "A", Email: "a@example.com"}, nil)
	m.notifier.On("BookingConfirmed", mock.Anything, "a@example.com", "A", mock.Anything, int64(100_000)).Return(nil)

	settlement, err := svc.Create(context.Background(), 1, 2, monday, 100_000, "")
	assert.NoError(t, err)
	assert.Equal(t, int64(100_000), settlement.FinalPaise)
	assert.Equal(t, int64(0), settlement.DiscountPaise)
	assert.Equal(t, int64(50_000), settlement.WalletBalancePaise)

	m.wallets.AssertExpectations(t)
	m.bookings.AssertExpectations(t)
}

func TestCreateBookingFestivalWithPercentageCoupon(t *testing.T) {
	svc, m := newTestService()

	// 10% of the base, not of the surged total.
	m.coupons.On("Redeem", mock.Anything, "FESTIVE10", int64(100_000)).Return(int64(10_000), nil)
	m.wallets.On("Debit", mock.Anything, 1, int64(190_000), wallet.TypeBookingPayment, "").
		Return(&wallet.Wallet{UserID: 1, BalancePaise: 10_000}, nil)
	m.bookings.On("Insert", mock.Anything, mock.MatchedBy(func(b *Booking) bool {
		return b.AmountPaise == 190_000 &&
			b.SurgeMultiplier == 2.0 &&
			b.DiscountPaise == 10_000 &&
			b.CouponCode != nil && *b.CouponCode == "FESTIVE10"
	})).Return(&Booking{ID: 11, UserID: 1, PanditID: 2, AmountPaise: 190_000, Status: StatusPending}, nil)
	m.users.On("FindByID", mock.Anything, 1).Return(&user.User{ID: 1, Name: "A", Email: "a@example.com"}, nil)
	m.notifier.On("BookingConfirmed", mock.Anything, "a@example.com", "A", mock.Anything, int64(190_000)).Return(nil)

	settlement, err := svc.Create(context.Background(), 1, 2, navratri, 100_000, "festive10")
	assert.NoError(t, err)
	assert.Equal(t, int64(190_000), settlement.FinalPaise)
	assert.Equal(t, int64(10_000), settlement.DiscountPaise)

	m.coupons.AssertExpectations(t)
	m.wallets.AssertExpectations(t)
}

func TestCreateBookingWeekendSurge(t *testing.T) {
	svc, m := newTestService()

	m.wallets.On("Debit", mock.Anything, 1, int64(120_000), wallet.TypeBookingPayment, "").
		Return(&wallet.Wallet{UserID: 1, BalancePaise: 0}, nil)
	m.bookings.On("Insert", mock.Anything, mock.MatchedBy(func(b *Booking) bool {
		return b.AmountPaise == 120_000 && b.SurgeMultiplier == 1.2
	})).Return(&Booking{ID: 12, AmountPaise: 120_000, Status: StatusPending}, nil)
	m.users.On("FindByID", mock.Anything, 1).Return(&user.User{ID: 1, Email: "a@example.com"}, nil)
	m.notifier.On("BookingConfirmed", mock.Anything, mock.Anything, mock.Anything, mock.Anything, int64(120_000)).Return(nil)

	settlement, err := svc.Create(context.Background(), 1, 2, saturday, 100_000, "")
	assert.NoError(t, err)
	assert.Equal(t, int64(120_000), settlement.FinalPaise)
}

func TestCreateBookingDiscountClampsToZero(t *testing.T) {
	svc, m := newTestService()

	// Fixed discount bigger than the surged total: final price floors at zero
	// and the wallet is debited nothing.
	m.coupons.On("Redeem", mock.Anything, "MEGA", int64(10_000)).Return(int64(50_000), nil)
	m.wallets.On("Debit", mock.Anything, 1, int64(0), wallet.TypeBookingPayment, "").
		Return(&wallet.Wallet{UserID: 1, BalancePaise: 500}, nil)
	m.bookings.On("Insert", mock.Anything, mock.MatchedBy(func(b *Booking) bool {
		return b.AmountPaise == 0 && b.DiscountPaise == 50_000
	})).Return(&Booking{ID: 13, AmountPaise: 0, Status: StatusPending}, nil)
	m.users.On("FindByID", mock.Anything, 1).Return(&user.User{ID: 1, Email: "a@example.com"}, nil)
	m.notifier.On("BookingConfirmed", mock.Anything, mock.Anything, mock.Anything, mock.Anything, int64(0)).Return(nil)

	settlement, err := svc.Create(context.Background(), 1, 2, monday, 10_000, "MEGA")
	assert.NoError(t, err)
	assert.Equal(t, int64(0), settlement.FinalPaise)
}

func TestCreateBookingCouponConsumedBeforeFailedDebit(t *testing.T) {
	svc, m := newTestService()

	m.coupons.On("Redeem", mock.Anything, "BURNT", int64(100_000)).Return(int64(10_000), nil)
	m.wallets.On("Debit", mock.Anything, 1, int64(90_000), wallet.TypeBookingPayment, "").
		Return(nil, wallet.ErrInsufficientBalance)

	_, err := svc.Create(context.Background(), 1, 2, monday, 100_000, "BURNT")
	assert.ErrorIs(t, err, wallet.ErrInsufficientBalance)

	// The coupon usage was consumed even though settlement failed, and no
	// booking was written.
	m.coupons.AssertCalled(t, "Redeem", mock.Anything, "BURNT", int64(100_000))
	m.bookings.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
}

func TestCreateBookingInvalidCouponStopsSettlement(t *testing.T) {
	svc, m := newTestService()

	m.coupons.On("Redeem", mock.Anything, "NOPE", int64(100_000)).Return(int64(0), coupon.ErrCouponNotFound)

	_, err := svc.Create(context.Background(), 1, 2, monday, 100_000, "NOPE")
	assert.ErrorIs(t, err, coupon.ErrCouponNotFound)

	m.wallets.AssertNotCalled(t, "Debit", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCreateBookingRejectsNonPositiveAmount(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Create(context.Background(), 1, 2, monday, 0, "")
	assert.ErrorIs(t, err, ErrInvalidAmount)
}

func TestCreateBookingNotificationFailureDoesNotFailSettlement(t *testing.T) {
	svc, m := newTestService()

	m.wallets.On("Debit", mock.Anything, 1, int64(100_000), wallet.TypeBookingPayment, "").
		Return(&wallet.Wallet{UserID: 1, BalancePaise: 0}, nil)
	m.bookings.On("Insert", mock.Anything, mock.Anything).
		Return(&Booking{ID: 14, AmountPaise: 100_000, Status: StatusPending}, nil)
	m.users.On("FindByID", mock.Anything, 1).Return(&user.User{ID: 1, Email: "a@example.com"}, nil)
	m.notifier.On("BookingConfirmed", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(errors.New("smtp down"))

	settlement, err := svc.Create(context.Background(), 1, 2, monday, 100_000, "")
	assert.NoError(t, err)
	assert.Equal(t, int64(100_000), settlement.FinalPaise)
}

func TestCompleteBookingCreditsEarning(t *testing.T) {
	svc, m := newTestService()

	m.bookings.On("GetByID", mock.Anything, 10).
		Return(&Booking{ID: 10, UserID: 1, PanditID: 2, AmountPaise: 190_000, Status: StatusPending}, nil)
	m.bookings.On("UpdateStatusFrom", mock.Anything, 10, StatusPending, StatusCompleted).Return(nil)
	m.wallets.On("Credit", mock.Anything, 2, int64(190_000), wallet.TypeEarning, "booking:10").
		Return(&wallet.Wallet{UserID: 2, BalancePaise: 190_000}, nil)
	m.users.On("FindByID", mock.Anything, 2).Return(&user.User{ID: 2, Name: "P", Email: "p@example.com"}, nil)
	m.notifier.On("EarningCredited", mock.Anything, "p@example.com", "P", int64(190_000)).Return(nil)

	w, err := svc.Complete(context.Background(), 10, 2)
	assert.NoError(t, err)
	assert.Equal(t, int64(190_000), w.BalancePaise)

	m.wallets.AssertExpectations(t)
}

func TestCompleteBookingWrongPandit(t *testing.T) {
	svc, m := newTestService()

	m.bookings.On("GetByID", mock.Anything, 10).
		Return(&Booking{ID: 10, UserID: 1, PanditID: 2, Status: StatusPending}, nil)

	_, err := svc.Complete(context.Background(), 10, 99)
	assert.ErrorIs(t, err, ErrUnauthorized)

	m.wallets.AssertNotCalled(t, "Credit", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCompleteBookingLosingRaceSkipsCredit(t *testing.T) {
	svc, m := newTestService()

	m.bookings.On("GetByID", mock.Anything, 10).
		Return(&Booking{ID: 10, UserID: 1, PanditID: 2, AmountPaise: 100_000, Status: StatusPending}, nil)
	m.bookings.On("UpdateStatusFrom", mock.Anything, 10, StatusPending, StatusCompleted).
		Return(ErrInvalidState)

	_, err := svc.Complete(context.Background(), 10, 2)
	assert.ErrorIs(t, err, ErrInvalidState)

	m.wallets.AssertNotCalled(t, "Credit", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCancelBookingRefundsOwner(t *testing.T) {
	svc, m := newTestService()

	m.bookings.On("GetByID", mock.Anything, 10).
		Return(&Booking{ID: 10, UserID: 1, PanditID: 2, AmountPaise: 190_000, Status: StatusPending}, nil)
	m.bookings.On("UpdateStatusFrom", mock.Anything, 10, StatusPending, StatusCanceled).Return(nil)
	m.wallets.On("Credit", mock.Anything, 1, int64(190_000), wallet.TypeRefund, "booking:10").
		Return(&wallet.Wallet{UserID: 1, BalancePaise: 190_000}, nil)
	m.users.On("FindByID", mock.Anything, 1).Return(&user.User{ID: 1, Name: "A", Email: "a@example.com"}, nil)
	m.notifier.On("BookingCanceled", mock.Anything, "a@example.com", "A", mock.Anything, int64(190_000)).Return(nil)

	w, err := svc.Cancel(context.Background(), 10, 1, auth.RoleUser)
	assert.NoError(t, err)
	assert.Equal(t, int64(190_000), w.BalancePaise)

	m.wallets.AssertExpectations(t)
}

func TestCancelBookingAdminOverride(t *testing.T) {
	svc, m := newTestService()

	m.bookings.On("GetByID", mock.Anything, 10).
		Return(&Booking{ID: 10, UserID: 1, PanditID: 2, AmountPaise: 50_000, Status: StatusPending}, nil)
	m.bookings.On("UpdateStatusFrom", mock.Anything, 10, StatusPending, StatusCanceled).Return(nil)
	m.wallets.On("Credit", mock.Anything, 1, int64(50_000), wallet.TypeRefund, "booking:10").
		Return(&wallet.Wallet{UserID: 1, BalancePaise: 50_000}, nil)
	m.users.On("FindByID", mock.Anything, 1).Return(&user.User{ID: 1, Email: "a@example.com"}, nil)
	m.notifier.On("BookingCanceled", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)

	_, err := svc.Cancel(context.Background(), 10, 42, auth.RoleAdmin)
	assert.NoError(t, err)
}

func TestCancelBookingStrangerForbidden(t *testing.T) {
	svc, m := newTestService()

	m.bookings.On("GetByID", mock.Anything, 10).
		Return(&Booking{ID: 10, UserID: 1, PanditID: 2, Status: StatusPending}, nil)

	_, err := svc.Cancel(context.Background(), 10, 99, auth.RoleUser)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestCancelBookingNotPending(t *testing.T) {
	svc, m := newTestService()

	m.bookings.On("GetByID", mock.Anything, 10).
		Return(&Booking{ID: 10, UserID: 1, PanditID: 2, Status: StatusCompleted}, nil)

	_, err := svc.Cancel(context.Background(), 10, 1, auth.RoleUser)
	assert.ErrorIs(t, err, ErrInvalidState)

	m.wallets.AssertNotCalled(t, "Credit", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestOverrideStatusRejectsUnknownStatus(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.OverrideStatus(context.Background(), 10, "paused")
	assert.ErrorIs(t, err, ErrInvalidState)
}

func TestPanditDashboard(t *testing.T) {
	svc, m := newTestService()

	m.bookings.On("CountByPandit", mock.Anything, 2).Return(7, nil)
	m.wallets.On("GetOrCreate", mock.Anything, 2).Return(&wallet.Wallet{UserID: 2, BalancePaise: 420_000}, nil)

	d, err := svc.PanditDashboard(context.Background(), 2)
	assert.NoError(t, err)
	assert.Equal(t, 7, d.TotalBookings)
	assert.Equal(t, int64(420_000), d.TotalEarningsPaise)
}

func TestAdminDashboard(t *testing.T) {
	svc, m := newTestService()

	m.users.On("Counts", mock.Anything).Return(&user.RoleCounts{TotalUsers: 12, TotalVendors: 3, TotalPandits: 4}, nil)
	m.bookings.On("Count", mock.Anything).Return(20, nil)

	stats, err := svc.AdminDashboard(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 12, stats.TotalUsers)
	assert.Equal(t, 3, stats.TotalVendors)
	assert.Equal(t, 4, stats.TotalPandits)
	assert.Equal(t, 20, stats.TotalBookings)
}

func TestDeleteBookingNotFound(t *testing.T) {
	svc, m := newTestService()

	m.bookings.On("Delete", mock.Anything, 99).Return(ErrBookingNotFound)

	err := svc.DeleteBooking(context.Background(), 99)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}
