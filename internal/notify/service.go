package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"net/smtp"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jsaurabh334/PanditJii/internal/logger"
	"github.com/jsaurabh334/PanditJii/internal/metrics"
)

const (
	queueKey  = "notifications"
	failedKey = "notifications:failed"

	maxTries = 3
)

// Notifier is the best-effort side channel used by settlement flows. Callers
// never treat a notification failure as a settlement failure.
type Notifier interface {
	Send(ctx context.Context, to, name, subject, body string) error
	BookingConfirmed(ctx context.Context, to, name string, date time.Time, amountPaise int64) error
	BookingCanceled(ctx context.Context, to, name string, date time.Time, amountPaise int64) error
	EarningCredited(ctx context.Context, to, name string, amountPaise int64) error
}

type Job struct {
	Kind    string    `json:"kind"`
	To      string    `json:"to"`
	Name    string    `json:"name"`
	Subject string    `json:"subject"`
	Body    string    `json:"body"`
	Tries   int       `json:"tries"`
	Created time.Time `json:"created"`
}

type Service struct {
	redis    *redis.Client
	from     string
	fromName string
	smtpHost string
	smtpPort string
	smtpUser string
	smtpPass string
}

func New(fromEmail, fromName, smtpHost, smtpPort, smtpUser, smtpPass, redisAddr string) *Service {
	return &Service{
		redis: redis.NewClient(&redis.Options{
			Addr: redisAddr,
		}),
		from:     fromEmail,
		fromName: fromName,
		smtpHost: smtpHost,
		smtpPort: smtpPort,
		smtpUser: smtpUser,
		smtpPass: smtpPass,
	}
}

func (s *Service) Send(ctx context.Context, to, name, subject, body string) error {
	return s.enqueue(ctx, Job{
		Kind:    "generic",
		To:      to,
		Name:    name,
		Subject: subject,
		Body:    body,
		Created: time.Now(),
	})
}

func (s *Service) enqueue(ctx context.Context, job Job) error {
	data, err := json.Marshal(job)
	if err != nil {
		logger.Errorf("Failed to marshal notification job: %v", err)
		return err
	}

	if err := s.redis.LPush(ctx, queueKey, string(data)).Err(); err != nil {
		logger.Errorf("Failed to queue notification to %s: %v", job.To, err)
		metrics.RecordNotification(job.Kind, "queue_error")
		return err
	}

	metrics.RecordNotification(job.Kind, "queued")
	logger.Infof("Notification queued: %s to %s", job.Subject, job.To)
	return nil
}

// Start drains the queue until the context is canceled. Run it on its own
// goroutine; delivery failures are retried and then parked, never surfaced.
func (s *Service) Start(ctx context.Context) {
	logger.Info("Notification worker started")

	for {
		select {
		case <-ctx.Done():
			logger.Info("Notification worker stopped")
			return
		default:
			s.processNext(ctx)
		}
	}
}

func (s *Service) processNext(ctx context.Context) {
	result, err := s.redis.BRPop(ctx, 2*time.Second, queueKey).Result()
	if err != nil {
		return
	}

	var job Job
	if err := json.Unmarshal([]byte(result[1]), &job); err != nil {
		logger.Errorf("Bad notification data: %v", err)
		return
	}

	job.Tries++
	if err := s.deliver(job); err != nil {
		logger.Warnf("Failed to send notification to %s (attempt %d): %v", job.To, job.Tries, err)

		if job.Tries < maxTries {
			time.Sleep(5 * time.Second)
			data, _ := json.Marshal(job)
			s.redis.LPush(context.Background(), queueKey, string(data))
			return
		}

		metrics.RecordNotification(job.Kind, "failed")
		s.parkFailed(job, err)
		return
	}

	metrics.RecordNotification(job.Kind, "sent")
	logger.Infof("Notification sent to %s", job.To)
}

func (s *Service) deliver(job Job) error {
	message := fmt.Sprintf("From: %s <%s>\r\n", s.fromName, s.from)
	message += fmt.Sprintf("To: %s\r\n", job.To)
	message += fmt.Sprintf("Subject: %s\r\n", job.Subject)
	message += "\r\n" + job.Body

	var auth smtp.Auth
	if s.smtpUser != "" && s.smtpPass != "" {
		auth = smtp.PlainAuth("", s.smtpUser, s.smtpPass, s.smtpHost)
	}

	addr := s.smtpHost + ":" + s.smtpPort
	return smtp.SendMail(addr, auth, s.from, []string{job.To}, []byte(message))
}

func (s *Service) parkFailed(job Job, err error) {
	failed := map[string]interface{}{
		"job":   job,
		"error": err.Error(),
		"time":  time.Now(),
	}
	data, _ := json.Marshal(failed)
	s.redis.LPush(context.Background(), failedKey, string(data))
	logger.Errorf("Notification moved to failed queue: %s", job.To)
}

func (s *Service) QueueLength(ctx context.Context) int64 {
	length, _ := s.redis.LLen(ctx, queueKey).Result()
	metrics.NotificationQueueLength.Set(float64(length))
	return length
}

func (s *Service) Close() error {
	return s.redis.Close()
}

// FormatPaise renders a minor-unit amount as rupees for display only; ledger
// values stay in paise.
func FormatPaise(paise int64) string {
	return fmt.Sprintf("₹%.2f", float64(paise)/100)
}

func (s *Service) BookingConfirmed(ctx context.Context, to, name string, date time.Time, amountPaise int64) error {
	body := fmt.Sprintf(`Namaste %s,

Your puja booking on %s is confirmed.

Amount paid: %s

- PanditJii Team`, name, date.Format("Jan 2, 2006"), FormatPaise(amountPaise))

	return s.enqueue(ctx, Job{
		Kind:    "booking_confirmed",
		To:      to,
		Name:    name,
		Subject: "Puja Booking Confirmed",
		Body:    body,
		Created: time.Now(),
	})
}

func (s *Service) BookingCanceled(ctx context.Context, to, name string, date time.Time, amountPaise int64) error {
	body := fmt.Sprintf(`Namaste %s,

Your booking on %s has been canceled.

Refund credited to wallet: %s

- PanditJii Team`, name, date.Format("Jan 2, 2006"), FormatPaise(amountPaise))

	return s.enqueue(ctx, Job{
		Kind:    "booking_canceled",
		To:      to,
		Name:    name,
		Subject: "Booking Cancelled",
		Body:    body,
		Created: time.Now(),
	})
}

func (s *Service) EarningCredited(ctx context.Context, to, name string, amountPaise int64) error {
	body := fmt.Sprintf(`Namaste %s,

A completed booking credited %s to your wallet.

- PanditJii Team`, name, FormatPaise(amountPaise))

	return s.enqueue(ctx, Job{
		Kind:    "earning_credited",
		To:      to,
		Name:    name,
		Subject: "Booking Completed - Earning Credited",
		Body:    body,
		Created: time.Now(),
	})
}
