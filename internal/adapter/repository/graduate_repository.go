package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/careerlink-team/career-portal/internal/domain/entities"
	"github.com/careerlink-team/career-portal/internal/domain/repositories"
)

// graduateRepository implements the GraduateRepository interface
type graduateRepository struct {
	db *gorm.DB
}

// NewGraduateRepository creates a new graduate repository
func NewGraduateRepository(db *gorm.DB) repositories.GraduateRepository {
	return &graduateRepository{db: db}
}

// Create creates a new graduate
func (r *graduateRepository) Create(ctx context.Context, graduate *entities.Graduate) error {
	return r.db.WithContext(ctx).Create(graduate).Error
}

// FindByID finds a graduate by ID
func (r *graduateRepository) FindByID(ctx context.Context, id uuid.UUID) (*entities.Graduate, error) {
	var graduate entities.Graduate
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&graduate).Error; err != nil {
		return nil, err
	}
	return &graduate, nil
}

// FindByEmail finds a graduate by email
func (r *graduateRepository) FindByEmail(ctx context.Context, email string) (*entities.Graduate, error) {
	var graduate entities.Graduate
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&graduate).Error; err != nil {
		return nil, err
	}
	return &graduate, nil
}

// List returns a paginated list of graduates
func (r *graduateRepository) List(ctx context.Context, limit, offset int) ([]*entities.Graduate, error) {
	var graduates []*entities.Graduate
	query := r.db.WithContext(ctx).Order("name ASC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}
	err := query.Find(&graduates).Error
	return graduates, err
}
