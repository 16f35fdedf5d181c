package repository

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/careerlink-team/career-portal/internal/domain/entities"
)

// MemoryGraduateRepository is the in-memory graduate directory used by tests
// and local development.
type MemoryGraduateRepository struct {
	mu        sync.RWMutex
	graduates map[uuid.UUID]entities.Graduate
}

// NewMemoryGraduateRepository creates an empty in-memory graduate directory
func NewMemoryGraduateRepository() *MemoryGraduateRepository {
	return &MemoryGraduateRepository{graduates: make(map[uuid.UUID]entities.Graduate)}
}

// Create creates a new graduate
func (r *MemoryGraduateRepository) Create(_ context.Context, graduate *entities.Graduate) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.graduates[graduate.ID] = *graduate
	return nil
}

// FindByID finds a graduate by ID
func (r *MemoryGraduateRepository) FindByID(_ context.Context, id uuid.UUID) (*entities.Graduate, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	g, ok := r.graduates[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copy := g
	return &copy, nil
}

// FindByEmail finds a graduate by email
func (r *MemoryGraduateRepository) FindByEmail(_ context.Context, email string) (*entities.Graduate, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, g := range r.graduates {
		if g.Email == email {
			copy := g
			return &copy, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

// List returns all graduates; pagination is ignored in the memory store
func (r *MemoryGraduateRepository) List(_ context.Context, _, _ int) ([]*entities.Graduate, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	result := make([]*entities.Graduate, 0, len(r.graduates))
	for _, g := range r.graduates {
		copy := g
		result = append(result, &copy)
	}
	return result, nil
}

// MemoryCompanyRepository is the in-memory company directory used by tests
// and local development.
type MemoryCompanyRepository struct {
	mu        sync.RWMutex
	companies map[uuid.UUID]entities.Company
}

// NewMemoryCompanyRepository creates an empty in-memory company directory
func NewMemoryCompanyRepository() *MemoryCompanyRepository {
	return &MemoryCompanyRepository{companies: make(map[uuid.UUID]entities.Company)}
}

// Create creates a new company
func (r *MemoryCompanyRepository) Create(_ context.Context, company *entities.Company) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.companies[company.ID] = *company
	return nil
}

// FindByID finds a company by ID
func (r *MemoryCompanyRepository) FindByID(_ context.Context, id uuid.UUID) (*entities.Company, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.companies[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copy := c
	return &copy, nil
}

// FindByEmail finds a company by email
func (r *MemoryCompanyRepository) FindByEmail(_ context.Context, email string) (*entities.Company, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, c := range r.companies {
		if c.Email == email {
			copy := c
			return &copy, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

// List returns all companies; pagination is ignored in the memory store
func (r *MemoryCompanyRepository) List(_ context.Context, _, _ int) ([]*entities.Company, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	result := make([]*entities.Company, 0, len(r.companies))
	for _, c := range r.companies {
		copy := c
		result = append(result, &copy)
	}
	return result, nil
}
