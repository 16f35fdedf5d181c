package jobcontext

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type contextKey string

var (
	keyDeliveryID contextKey = "delivery_id"
	keyKind       contextKey = "delivery_kind"
	keyStartTime  contextKey = "delivery_start_time"
)

// deliveryTimeout bounds a single notification delivery, including the mail
// relay retries. A delivery that cannot finish in this window is abandoned.
const deliveryTimeout = 1 * time.Minute

// Begin derives a bounded context for one delivery job and stamps it with
// tracing metadata. The caller must invoke the returned cancel func.
func Begin(parent context.Context, kind string) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithTimeout(parent, deliveryTimeout)
	ctx = context.WithValue(ctx, keyDeliveryID, uuid.New())
	ctx = context.WithValue(ctx, keyKind, kind)
	ctx = context.WithValue(ctx, keyStartTime, time.Now())
	return ctx, cancel
}

// DeliveryID extracts the delivery id from a job context.
func DeliveryID(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(keyDeliveryID).(uuid.UUID)
	return id, ok
}

// Kind extracts the delivery kind from a job context.
func Kind(ctx context.Context) (string, bool) {
	kind, ok := ctx.Value(keyKind).(string)
	return kind, ok
}

// StartTime extracts the delivery start time from a job context.
func StartTime(ctx context.Context) (time.Time, bool) {
	start, ok := ctx.Value(keyStartTime).(time.Time)
	return start, ok
}

// Elapsed reports how long the delivery has been running. Returns zero when
// the context carries no start time.
func Elapsed(ctx context.Context) time.Duration {
	start, ok := StartTime(ctx)
	if !ok {
		return 0
	}
	return time.Since(start)
}
