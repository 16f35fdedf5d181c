package meeting

import (
	"time"

	"github.com/careerlink-team/career-portal/internal/domain/entities"
)

// EventKind names a meeting lifecycle event.
type EventKind string

const (
	EventScheduled EventKind = "scheduled"
	EventUpdated   EventKind = "updated"
	EventConfirmed EventKind = "confirmed"
	EventCompleted EventKind = "completed"
	EventCancelled EventKind = "cancelled"
	EventDeleted   EventKind = "deleted"
	EventReminder  EventKind = "reminder"
)

// Event is published after a lifecycle operation commits. It carries a copy
// of the meeting plus the resolved participants so subscribers never have to
// touch the store.
type Event struct {
	Kind       EventKind
	Meeting    entities.Meeting
	Graduate   *entities.Graduate
	Company    *entities.Company
	OccurredAt time.Time
}

// Publisher receives lifecycle events. Publish must not block and must not
// fail the calling operation; delivery is best-effort by contract.
type Publisher interface {
	Publish(event Event)
}

// NopPublisher discards events. Used when notification dispatch is disabled.
type NopPublisher struct{}

// Publish implements Publisher.
func (NopPublisher) Publish(Event) {}
