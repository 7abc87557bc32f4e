package notify

import (
	"context"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/mrops-br/storefront-api/internal/domain"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// DefaultTTL is how long a notification stays visible
const DefaultTTL = 3 * time.Second

// Sink keeps transient notifications until their timer fires. Each
// notification is independent: there is no dedup, ordering or cancellation.
type Sink struct {
	mu      sync.Mutex
	active  []domain.Notification
	ttl     time.Duration
	now     func() time.Time
	logger  *slog.Logger
	emitted metric.Int64Counter
}

var _ domain.Notifier = (*Sink)(nil)

// NewSink creates a notification sink. A non-positive ttl falls back to DefaultTTL.
func NewSink(ttl time.Duration, meter metric.Meter, logger *slog.Logger) *Sink {
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	emitted, _ := meter.Int64Counter(
		"notifications.emitted.total",
		metric.WithDescription("Total number of notifications emitted"),
	)

	return &Sink{
		ttl:     ttl,
		now:     time.Now,
		logger:  logger,
		emitted: emitted,
	}
}

// Notify shows message and schedules its removal after the sink's TTL
func (s *Sink) Notify(ctx context.Context, message string, severity domain.Severity) domain.Notification {
	created := s.now()
	n := domain.Notification{
		ID:        uuid.NewString(),
		Message:   message,
		Severity:  severity,
		CreatedAt: created,
		ExpiresAt: created.Add(s.ttl),
	}

	s.mu.Lock()
	s.active = append(s.active, n)
	s.mu.Unlock()

	time.AfterFunc(s.ttl, func() { s.dismiss(n.ID) })

	s.emitted.Add(ctx, 1, metric.WithAttributes(
		attribute.String("severity", string(severity)),
	))
	s.logger.InfoContext(ctx, "Notification emitted",
		slog.String("notification_id", n.ID),
		slog.String("severity", string(severity)),
		slog.String("message", message),
	)

	return n
}

// Active returns the notifications that have not been dismissed, oldest first
func (s *Sink) Active() []domain.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()

	return slices.Clone(s.active)
}

func (s *Sink) dismiss(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.active = slices.DeleteFunc(s.active, func(n domain.Notification) bool {
		return n.ID == id
	})
}
