package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordBooking(t *testing.T) {
	before := testutil.ToFloat64(BookingsTotal.WithLabelValues("settled"))
	RecordBooking("settled")
	after := testutil.ToFloat64(BookingsTotal.WithLabelValues("settled"))

	assert.Equal(t, before+1, after)
}

func TestRecordCouponApplication(t *testing.T) {
	before := testutil.ToFloat64(CouponApplicationsTotal.WithLabelValues("applied"))
	RecordCouponApplication("applied")
	after := testutil.ToFloat64(CouponApplicationsTotal.WithLabelValues("applied"))

	assert.Equal(t, before+1, after)
}

func TestRecordWalletTransaction(t *testing.T) {
	before := testutil.ToFloat64(WalletTransactionsTotal.WithLabelValues("refund"))
	RecordWalletTransaction("refund")
	after := testutil.ToFloat64(WalletTransactionsTotal.WithLabelValues("refund"))

	assert.Equal(t, before+1, after)
}

func TestRecordBookingRevenue(t *testing.T) {
	before := testutil.ToFloat64(BookingRevenuePaise)
	RecordBookingRevenue(1500)
	RecordBookingRevenue(-10) // negative amounts are ignored
	after := testutil.ToFloat64(BookingRevenuePaise)

	assert.Equal(t, before+1500, after)
}

func TestRecordHTTPRequest(t *testing.T) {
	before := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("GET", "/health", "200"))
	RecordHTTPRequest("GET", "/health", "200", 0.01)
	after := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("GET", "/health", "200"))

	assert.Equal(t, before+1, after)
}
