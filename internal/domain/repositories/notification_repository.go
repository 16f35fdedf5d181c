package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/careerlink-team/career-portal/internal/domain/entities"
)

// NotificationRepository defines the interface for the in-app notification feed
type NotificationRepository interface {
	// Create records a notification
	Create(ctx context.Context, notification *entities.Notification) error

	// FindByRecipient returns notifications for a recipient, newest first
	FindByRecipient(ctx context.Context, recipientID uuid.UUID, limit, offset int) ([]*entities.Notification, error)

	// MarkRead flags a notification as read
	MarkRead(ctx context.Context, id uuid.UUID) error
}
