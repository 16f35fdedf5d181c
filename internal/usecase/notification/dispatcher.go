package notification

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"

	"github.com/careerlink-team/career-portal/internal/domain/entities"
	"github.com/careerlink-team/career-portal/internal/domain/repositories"
	"github.com/careerlink-team/career-portal/internal/usecase/meeting"
	"github.com/careerlink-team/career-portal/pkg/jobcontext"
)

// Mailer delivers one rendered message to a set of addresses.
type Mailer interface {
	Send(ctx context.Context, emails []string, subject, html string) error
}

// Dispatcher subscribes to meeting lifecycle events and turns each one into
// a best-effort email plus in-app notification rows. It implements
// meeting.Publisher: Publish never blocks the scheduling path, and delivery
// failures are logged rather than surfaced to callers.
type Dispatcher struct {
	mailer        Mailer
	notifications repositories.NotificationRepository
	logger        *zap.Logger

	queue chan meeting.Event
	wg    sync.WaitGroup
	once  sync.Once
}

// NewDispatcher creates a dispatcher with a bounded event queue. The
// notifications repository may be nil, in which case only emails are sent.
func NewDispatcher(mailer Mailer, notifications repositories.NotificationRepository, logger *zap.Logger) *Dispatcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Dispatcher{
		mailer:        mailer,
		notifications: notifications,
		logger:        logger,
		queue:         make(chan meeting.Event, 256),
	}
}

// Publish implements meeting.Publisher. When the queue is full the event is
// dropped; the calendar must never wait on the mail relay.
func (d *Dispatcher) Publish(event meeting.Event) {
	select {
	case d.queue <- event:
	default:
		d.logger.Warn("notification queue full, dropping event",
			zap.String("kind", string(event.Kind)),
			zap.String("meeting_id", event.Meeting.ID.String()),
		)
	}
}

// Start launches the delivery worker. It drains the queue until ctx is
// cancelled, then finishes in-flight work and returns via Wait.
func (d *Dispatcher) Start(ctx context.Context) {
	d.once.Do(func() {
		d.wg.Add(1)
		go func() {
			defer d.wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case event := <-d.queue:
					d.deliver(event)
				}
			}
		}()
	})
}

// Wait blocks until the delivery worker has stopped.
func (d *Dispatcher) Wait() {
	d.wg.Wait()
}

func (d *Dispatcher) deliver(event meeting.Event) {
	ctx, cancel := jobcontext.Begin(context.Background(), string(event.Kind))
	defer cancel()

	deliveryID, _ := jobcontext.DeliveryID(ctx)
	kind, _ := jobcontext.Kind(ctx)
	log := d.logger.With(
		zap.String("delivery_id", deliveryID.String()),
		zap.String("kind", kind),
		zap.String("meeting_id", event.Meeting.ID.String()),
	)

	if err := d.sendMail(ctx, event); err != nil {
		log.Error("mail delivery failed", zap.Error(err), zap.Duration("elapsed", jobcontext.Elapsed(ctx)))
	}
	d.recordNotifications(ctx, event, log)
}

func (d *Dispatcher) sendMail(ctx context.Context, event meeting.Event) error {
	if d.mailer == nil {
		return nil
	}
	emails := make([]string, 0, 2)
	if event.Graduate != nil {
		emails = append(emails, event.Graduate.Email)
	}
	if event.Company != nil {
		emails = append(emails, event.Company.Email)
	}
	return d.mailer.Send(ctx, emails, Subject(event.Kind), RenderHTML(event))
}

// meetingPayload is the JSON payload stored with each notification row.
type meetingPayload struct {
	MeetingID string `json:"meeting_id"`
	Type      string `json:"type"`
	Status    string `json:"status"`
	StartsAt  string `json:"starts_at"`
	EndsAt    string `json:"ends_at"`
}

func (d *Dispatcher) recordNotifications(ctx context.Context, event meeting.Event, log *zap.Logger) {
	if d.notifications == nil {
		return
	}

	m := event.Meeting
	payload, err := json.Marshal(meetingPayload{
		MeetingID: m.ID.String(),
		Type:      string(m.Type),
		Status:    string(m.Status),
		StartsAt:  payloadTimestamp(m.StartsAt),
		EndsAt:    payloadTimestamp(m.EndsAt),
	})
	if err != nil {
		log.Error("failed to encode notification payload", zap.Error(err))
		return
	}

	referenceID := m.ID
	for _, recipient := range recipients(event) {
		n := &entities.Notification{
			RecipientID:   recipient.id,
			RecipientRole: recipient.role,
			Title:         Subject(event.Kind),
			Message:       Message(event),
			Event:         eventForEntity(event.Kind),
			ReferenceID:   &referenceID,
			Payload:       datatypes.JSON(payload),
			CreatedAt:     time.Now(),
		}
		if err := d.notifications.Create(ctx, n); err != nil {
			log.Error("failed to record notification",
				zap.Error(err),
				zap.String("recipient_id", recipient.id.String()),
			)
		}
	}
}

type recipient struct {
	id   uuid.UUID
	role entities.CreatorRole
}

func recipients(event meeting.Event) []recipient {
	var out []recipient
	if event.Graduate != nil {
		out = append(out, recipient{id: event.Graduate.ID, role: entities.CreatorRoleGraduate})
	}
	if event.Company != nil {
		out = append(out, recipient{id: event.Company.ID, role: entities.CreatorRoleCompany})
	}
	return out
}
