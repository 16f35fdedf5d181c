package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// NotificationEvent names the meeting lifecycle event a notification refers to.
type NotificationEvent string

const (
	NotificationEventScheduled NotificationEvent = "meeting_scheduled"
	NotificationEventUpdated   NotificationEvent = "meeting_updated"
	NotificationEventConfirmed NotificationEvent = "meeting_confirmed"
	NotificationEventCompleted NotificationEvent = "meeting_completed"
	NotificationEventCancelled NotificationEvent = "meeting_cancelled"
	NotificationEventDeleted   NotificationEvent = "meeting_deleted"
	NotificationEventReminder  NotificationEvent = "meeting_reminder"
)

// Notification is the in-app notification feed entry recorded alongside the
// best-effort email dispatch.
type Notification struct {
	ID            uuid.UUID         `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	RecipientID   uuid.UUID         `gorm:"type:uuid;not null;index" json:"recipient_id"`
	RecipientRole CreatorRole       `gorm:"type:varchar(20);not null" json:"recipient_role"`
	Title         string            `gorm:"type:varchar(255);not null" json:"title"`
	Message       string            `gorm:"type:text;not null" json:"message"`
	Event         NotificationEvent `gorm:"type:varchar(40);not null;index" json:"event"`
	ReferenceID   *uuid.UUID        `gorm:"type:uuid;index" json:"reference_id,omitempty"`
	Payload       datatypes.JSON    `gorm:"type:jsonb;default:'{}'" json:"payload,omitempty"`
	Read          bool              `gorm:"default:false;not null" json:"read"`
	CreatedAt     time.Time         `gorm:"default:now()" json:"created_at"`
}

// TableName specifies the table name for Notification
func (Notification) TableName() string {
	return "notifications"
}

// MarkRead flags the notification as read.
func (n *Notification) MarkRead() {
	n.Read = true
}
