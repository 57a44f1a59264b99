package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "panditjii_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "panditjii_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	BookingsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "panditjii_bookings_total",
			Help: "Total number of booking settlements by outcome",
		},
		[]string{"status"},
	)

	BookingRevenuePaise = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "panditjii_booking_revenue_paise_total",
			Help: "Total settled booking revenue in paise",
		},
	)

	CouponApplicationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "panditjii_coupon_applications_total",
			Help: "Total number of coupon applications by result",
		},
		[]string{"result"},
	)

	WalletTransactionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "panditjii_wallet_transactions_total",
			Help: "Total number of wallet ledger entries by type",
		},
		[]string{"type"},
	)

	NotificationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "panditjii_notifications_total",
			Help: "Total number of notifications by kind and status",
		},
		[]string{"kind", "status"},
	)

	NotificationQueueLength = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "panditjii_notification_queue_length",
			Help: "Current length of the notification queue",
		},
	)
)

func RecordHTTPRequest(method, path, status string, duration float64) {
	HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, path).Observe(duration)
}

func RecordBooking(status string) {
	BookingsTotal.WithLabelValues(status).Inc()
}

func RecordBookingRevenue(amountPaise int64) {
	if amountPaise > 0 {
		BookingRevenuePaise.Add(float64(amountPaise))
	}
}

func RecordCouponApplication(result string) {
	CouponApplicationsTotal.WithLabelValues(result).Inc()
}

func RecordWalletTransaction(txType string) {
	WalletTransactionsTotal.WithLabelValues(txType).Inc()
}

func RecordNotification(kind, status string) {
	NotificationsTotal.WithLabelValues(kind, status).Inc()
}
