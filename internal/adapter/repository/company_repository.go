package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/careerlink-team/career-portal/internal/domain/entities"
	"github.com/careerlink-team/career-portal/internal/domain/repositories"
)

// companyRepository implements the CompanyRepository interface
type companyRepository struct {
	db *gorm.DB
}

// NewCompanyRepository creates a new company repository
func NewCompanyRepository(db *gorm.DB) repositories.CompanyRepository {
	return &companyRepository{db: db}
}

// Create creates a new company
func (r *companyRepository) Create(ctx context.Context, company *entities.Company) error {
	return r.db.WithContext(ctx).Create(company).Error
}

// FindByID finds a company by ID
func (r *companyRepository) FindByID(ctx context.Context, id uuid.UUID) (*entities.Company, error) {
	var company entities.Company
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&company).Error; err != nil {
		return nil, err
	}
	return &company, nil
}

// FindByEmail finds a company by email
func (r *companyRepository) FindByEmail(ctx context.Context, email string) (*entities.Company, error) {
	var company entities.Company
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&company).Error; err != nil {
		return nil, err
	}
	return &company, nil
}

// List returns a paginated list of companies
func (r *companyRepository) List(ctx context.Context, limit, offset int) ([]*entities.Company, error) {
	var companies []*entities.Company
	query := r.db.WithContext(ctx).Order("name ASC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}
	err := query.Find(&companies).Error
	return companies, err
}
