package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/careerlink-team/career-portal/internal/domain/entities"
	"github.com/careerlink-team/career-portal/internal/domain/repositories"
)

// MemoryMeetingRepository is the in-memory reference implementation of the
// meeting store. It backs tests and local development without Postgres and
// mirrors the GORM implementation's semantics, including the
// gorm.ErrRecordNotFound sentinel for missing records.
type MemoryMeetingRepository struct {
	mu       sync.RWMutex
	meetings map[uuid.UUID]entities.Meeting
	order    []uuid.UUID // insertion order, newest last
}

// NewMemoryMeetingRepository creates an empty in-memory meeting store
func NewMemoryMeetingRepository() *MemoryMeetingRepository {
	return &MemoryMeetingRepository{meetings: make(map[uuid.UUID]entities.Meeting)}
}

// Insert persists a new meeting
func (r *MemoryMeetingRepository) Insert(_ context.Context, meeting *entities.Meeting) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.meetings[meeting.ID] = *meeting
	r.order = append(r.order, meeting.ID)
	return nil
}

// FindByID retrieves a meeting by its ID
func (r *MemoryMeetingRepository) FindByID(_ context.Context, id uuid.UUID) (*entities.Meeting, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	m, ok := r.meetings[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copy := m
	return &copy, nil
}

// Update updates an existing meeting
func (r *MemoryMeetingRepository) Update(_ context.Context, meeting *entities.Meeting) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.meetings[meeting.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	r.meetings[meeting.ID] = *meeting
	return nil
}

// Delete removes the record entirely
func (r *MemoryMeetingRepository) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.meetings[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.meetings, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

// List retrieves meetings with filters, newest first
func (r *MemoryMeetingRepository) List(_ context.Context, filters repositories.MeetingFilters) ([]*entities.Meeting, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := make([]*entities.Meeting, 0, len(r.order))
	for _, id := range r.order {
		m := r.meetings[id]
		if filters.GraduateID != nil && (m.GraduateID == nil || *m.GraduateID != *filters.GraduateID) {
			continue
		}
		if filters.CompanyID != nil && (m.CompanyID == nil || *m.CompanyID != *filters.CompanyID) {
			continue
		}
		if filters.Type != nil && m.Type != *filters.Type {
			continue
		}
		if filters.Status != nil && m.Status != *filters.Status {
			continue
		}
		if filters.From != nil && m.StartsAt.Before(*filters.From) {
			continue
		}
		if filters.To != nil && !m.StartsAt.Before(*filters.To) {
			continue
		}
		copy := m
		matched = append(matched, &copy)
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	total := int64(len(matched))
	if filters.Offset > 0 {
		if filters.Offset >= len(matched) {
			return []*entities.Meeting{}, total, nil
		}
		matched = matched[filters.Offset:]
	}
	if filters.Limit > 0 && filters.Limit < len(matched) {
		matched = matched[:filters.Limit]
	}
	return matched, total, nil
}

// FindBlocking retrieves scheduled and in-progress meetings for the given
// participants, including records with an unspecified side on that axis.
func (r *MemoryMeetingRepository) FindBlocking(_ context.Context, graduateID, companyID *uuid.UUID) ([]*entities.Meeting, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []*entities.Meeting
	for _, id := range r.order {
		m := r.meetings[id]
		if !m.Status.IsBlocking() {
			continue
		}
		if !touchesParticipant(&m, graduateID, companyID) {
			continue
		}
		copy := m
		result = append(result, &copy)
	}
	return result, nil
}

func touchesParticipant(m *entities.Meeting, graduateID, companyID *uuid.UUID) bool {
	if graduateID == nil && companyID == nil {
		return true
	}
	if graduateID != nil && (m.GraduateID == nil || *m.GraduateID == *graduateID) {
		return true
	}
	if companyID != nil && (m.CompanyID == nil || *m.CompanyID == *companyID) {
		return true
	}
	return false
}
