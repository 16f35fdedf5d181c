package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/careerlink-team/career-portal/internal/domain/entities"
)

// GraduateRepository defines the interface for graduate directory access
type GraduateRepository interface {
	// Create creates a new graduate
	Create(ctx context.Context, graduate *entities.Graduate) error

	// FindByID finds a graduate by ID
	FindByID(ctx context.Context, id uuid.UUID) (*entities.Graduate, error)

	// FindByEmail finds a graduate by email
	FindByEmail(ctx context.Context, email string) (*entities.Graduate, error)

	// List returns a paginated list of graduates
	List(ctx context.Context, limit, offset int) ([]*entities.Graduate, error)
}
