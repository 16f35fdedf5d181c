package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/careerlink-team/career-portal/internal/domain/entities"
)

// CompanyRepository defines the interface for company directory access
type CompanyRepository interface {
	// Create creates a new company
	Create(ctx context.Context, company *entities.Company) error

	// FindByID finds a company by ID
	FindByID(ctx context.Context, id uuid.UUID) (*entities.Company, error)

	// FindByEmail finds a company by email
	FindByEmail(ctx context.Context, email string) (*entities.Company, error)

	// List returns a paginated list of companies
	List(ctx context.Context, limit, offset int) ([]*entities.Company, error)
}
