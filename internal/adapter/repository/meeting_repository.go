package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/careerlink-team/career-portal/internal/domain/entities"
	"github.com/careerlink-team/career-portal/internal/domain/repositories"
)

// meetingRepository implements the MeetingRepository interface
type meetingRepository struct {
	db *gorm.DB
}

// NewMeetingRepository creates a new meeting repository
func NewMeetingRepository(db *gorm.DB) repositories.MeetingRepository {
	return &meetingRepository{db: db}
}

// Insert persists a new meeting
func (r *meetingRepository) Insert(ctx context.Context, meeting *entities.Meeting) error {
	return r.db.WithContext(ctx).Create(meeting).Error
}

// FindByID retrieves a meeting by its ID
func (r *meetingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entities.Meeting, error) {
	var meeting entities.Meeting
	err := r.db.WithContext(ctx).
		Preload("Graduate").
		Preload("Company").
		Where("id = ?", id).
		First(&meeting).Error

	if err != nil {
		return nil, err
	}
	return &meeting, nil
}

// Update updates an existing meeting
func (r *meetingRepository) Update(ctx context.Context, meeting *entities.Meeting) error {
	return r.db.WithContext(ctx).Save(meeting).Error
}

// Delete removes the record entirely
func (r *meetingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entities.Meeting{}, "id = ?", id).Error
}

// List retrieves meetings with filters and pagination, newest first
func (r *meetingRepository) List(ctx context.Context, filters repositories.MeetingFilters) ([]*entities.Meeting, int64, error) {
	var meetings []*entities.Meeting
	var total int64

	query := r.db.WithContext(ctx).Model(&entities.Meeting{}).
		Preload("Graduate").
		Preload("Company")

	if filters.GraduateID != nil {
		query = query.Where("graduate_id = ?", *filters.GraduateID)
	}
	if filters.CompanyID != nil {
		query = query.Where("company_id = ?", *filters.CompanyID)
	}
	if filters.Type != nil {
		query = query.Where("type = ?", *filters.Type)
	}
	if filters.Status != nil {
		query = query.Where("status = ?", *filters.Status)
	}
	if filters.From != nil {
		query = query.Where("starts_at >= ?", *filters.From)
	}
	if filters.To != nil {
		query = query.Where("starts_at < ?", *filters.To)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = query.Order("created_at DESC")
	if filters.Limit > 0 {
		query = query.Limit(filters.Limit)
	}
	if filters.Offset > 0 {
		query = query.Offset(filters.Offset)
	}

	err := query.Find(&meetings).Error
	return meetings, total, err
}

// FindBlocking retrieves scheduled and in-progress meetings involving the
// given graduate and/or company. Meetings with an unspecified side are
// included on that axis, matching the conflict detector's skip rule.
func (r *meetingRepository) FindBlocking(ctx context.Context, graduateID, companyID *uuid.UUID) ([]*entities.Meeting, error) {
	blocking := []entities.MeetingStatus{
		entities.MeetingStatusScheduled,
		entities.MeetingStatusInProgress,
	}

	query := r.db.WithContext(ctx).Model(&entities.Meeting{}).
		Where("status IN ?", blocking)

	switch {
	case graduateID != nil && companyID != nil:
		query = query.Where(
			"graduate_id = ? OR graduate_id IS NULL OR company_id = ? OR company_id IS NULL",
			*graduateID, *companyID,
		)
	case graduateID != nil:
		query = query.Where("graduate_id = ? OR graduate_id IS NULL", *graduateID)
	case companyID != nil:
		query = query.Where("company_id = ? OR company_id IS NULL", *companyID)
	}

	var meetings []*entities.Meeting
	err := query.Find(&meetings).Error
	return meetings, err
}
