package meeting

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/careerlink-team/career-portal/internal/domain/entities"
	"github.com/careerlink-team/career-portal/internal/domain/repositories"
	"github.com/careerlink-team/career-portal/internal/scheduling"
	usecaseErrors "github.com/careerlink-team/career-portal/internal/usecase/errors"
)

// Service is the meeting lifecycle manager. It is the only writer path to the
// meeting store: every state change goes through one of its operations, which
// run the conflict check and the store mutation as one logical unit.
type Service struct {
	meetingRepo  repositories.MeetingRepository
	graduateRepo repositories.GraduateRepository
	companyRepo  repositories.CompanyRepository
	events       Publisher
	locks        *participantLocks
	logger       *zap.Logger
}

// NewService creates a new meeting lifecycle service
func NewService(
	meetingRepo repositories.MeetingRepository,
	graduateRepo repositories.GraduateRepository,
	companyRepo repositories.CompanyRepository,
	events Publisher,
	logger *zap.Logger,
) *Service {
	if events == nil {
		events = NopPublisher{}
	}
	return &Service{
		meetingRepo:  meetingRepo,
		graduateRepo: graduateRepo,
		companyRepo:  companyRepo,
		events:       events,
		locks:        newParticipantLocks(),
		logger:       logger,
	}
}

// ScheduleInput represents input for booking a meeting
type ScheduleInput struct {
	GraduateID   *uuid.UUID
	CompanyID    *uuid.UUID
	StartsAt     time.Time
	EndsAt       time.Time
	Type         entities.MeetingType
	Observations *string
	CreatedBy    entities.CreatorRole
}

// Schedule validates the request, runs the conflict check against all
// blocking meetings for the affected participants and commits the booking.
// Meetings requested by graduates or companies start in in_progress until
// staff confirms them; admin-created meetings start scheduled.
func (s *Service) Schedule(ctx context.Context, input ScheduleInput) (*entities.Meeting, error) {
	if err := s.validateRequest(input.GraduateID, input.CompanyID, input.StartsAt, input.EndsAt, input.Type); err != nil {
		return nil, err
	}

	graduate, company, err := s.resolveParticipants(ctx, input.GraduateID, input.CompanyID)
	if err != nil {
		return nil, err
	}

	// Critical section: the conflict check and the insert must be atomic per
	// participant, or two overlapping requests could both pass the check.
	release := s.locks.acquire(input.GraduateID, input.CompanyID)
	defer release()

	if err := s.checkConflict(ctx, input.GraduateID, input.CompanyID, input.StartsAt, input.EndsAt, nil); err != nil {
		return nil, err
	}

	status := entities.MeetingStatusScheduled
	if input.CreatedBy != entities.CreatorRoleAdmin {
		status = entities.MeetingStatusInProgress
	}

	m := &entities.Meeting{
		ID:           uuid.New(),
		GraduateID:   input.GraduateID,
		CompanyID:    input.CompanyID,
		StartsAt:     input.StartsAt,
		EndsAt:       input.EndsAt,
		Type:         input.Type,
		Status:       status,
		Observations: input.Observations,
		CreatedBy:    input.CreatedBy,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	if err := s.meetingRepo.Insert(ctx, m); err != nil {
		return nil, fmt.Errorf("failed to insert meeting: %w", err)
	}

	s.publish(EventScheduled, m, graduate, company)
	return m, nil
}

// RescheduleInput represents input for moving a meeting to a new interval
type RescheduleInput struct {
	ID       uuid.UUID
	StartsAt time.Time
	EndsAt   time.Time
}

// Reschedule moves a meeting to a new interval. The meeting's own prior
// interval is excluded from the comparison set, so moving within or adjacent
// to the old slot succeeds.
func (s *Service) Reschedule(ctx context.Context, input RescheduleInput) (*entities.Meeting, error) {
	if !input.StartsAt.Before(input.EndsAt) {
		return nil, usecaseErrors.ErrInvalidInterval
	}

	m, err := s.getMeeting(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if m.Status.IsTerminal() {
		return nil, &TransitionError{MeetingID: m.ID, From: m.Status, To: m.Status}
	}

	release := s.locks.acquire(m.GraduateID, m.CompanyID)
	defer release()

	self := m.ID
	if err := s.checkConflict(ctx, m.GraduateID, m.CompanyID, input.StartsAt, input.EndsAt, &self); err != nil {
		return nil, err
	}

	m.StartsAt = input.StartsAt
	m.EndsAt = input.EndsAt
	m.UpdatedAt = time.Now()

	if err := s.meetingRepo.Update(ctx, m); err != nil {
		return nil, fmt.Errorf("failed to update meeting: %w", err)
	}

	graduate, company, _ := s.resolveParticipants(ctx, m.GraduateID, m.CompanyID)
	s.publish(EventUpdated, m, graduate, company)
	return m, nil
}

// ChangeStatus enforces the state machine and persists the transition. The
// record is left untouched when the transition is illegal.
func (s *Service) ChangeStatus(ctx context.Context, id uuid.UUID, next entities.MeetingStatus) (*entities.Meeting, error) {
	if !next.IsValid() {
		return nil, usecaseErrors.ErrInvalidInput
	}

	m, err := s.getMeeting(ctx, id)
	if err != nil {
		return nil, err
	}

	if !m.Status.CanTransitionTo(next) {
		return nil, &TransitionError{MeetingID: m.ID, From: m.Status, To: next}
	}

	m.Status = next
	m.UpdatedAt = time.Now()

	if err := s.meetingRepo.Update(ctx, m); err != nil {
		return nil, fmt.Errorf("failed to update meeting status: %w", err)
	}

	graduate, company, _ := s.resolveParticipants(ctx, m.GraduateID, m.CompanyID)
	s.publish(statusEvent(next), m, graduate, company)
	return m, nil
}

// Confirm accepts a self-requested meeting (in_progress -> scheduled).
func (s *Service) Confirm(ctx context.Context, id uuid.UUID) (*entities.Meeting, error) {
	return s.ChangeStatus(ctx, id, entities.MeetingStatusScheduled)
}

// Complete marks a meeting as done after occurrence.
func (s *Service) Complete(ctx context.Context, id uuid.UUID) (*entities.Meeting, error) {
	return s.ChangeStatus(ctx, id, entities.MeetingStatusCompleted)
}

// Cancel cancels a meeting, keeping the record for history.
func (s *Service) Cancel(ctx context.Context, id uuid.UUID) (*entities.Meeting, error) {
	return s.ChangeStatus(ctx, id, entities.MeetingStatusCancelled)
}

// Delete is the administrative hard delete. It bypasses the state machine
// and removes the record entirely; the emitted event is tagged distinctly
// from cancellation.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	m, err := s.getMeeting(ctx, id)
	if err != nil {
		return err
	}

	if err := s.meetingRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete meeting: %w", err)
	}

	graduate, company, _ := s.resolveParticipants(ctx, m.GraduateID, m.CompanyID)
	s.publish(EventDeleted, m, graduate, company)
	return nil
}

// SendReminder emits a reminder notification for an upcoming meeting.
func (s *Service) SendReminder(ctx context.Context, id uuid.UUID) error {
	m, err := s.getMeeting(ctx, id)
	if err != nil {
		return err
	}
	if !m.Status.IsBlocking() {
		return &TransitionError{MeetingID: m.ID, From: m.Status, To: m.Status}
	}

	graduate, company, err := s.resolveParticipants(ctx, m.GraduateID, m.CompanyID)
	if err != nil {
		return err
	}
	s.publish(EventReminder, m, graduate, company)
	return nil
}

// Get retrieves a meeting by ID
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*entities.Meeting, error) {
	return s.getMeeting(ctx, id)
}

// List retrieves meetings with filters
func (s *Service) List(ctx context.Context, filters repositories.MeetingFilters) ([]*entities.Meeting, int64, error) {
	meetings, total, err := s.meetingRepo.List(ctx, filters)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list meetings: %w", err)
	}
	return meetings, total, nil
}

func (s *Service) getMeeting(ctx context.Context, id uuid.UUID) (*entities.Meeting, error) {
	m, err := s.meetingRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecaseErrors.ErrMeetingNotFound
		}
		return nil, fmt.Errorf("failed to get meeting: %w", err)
	}
	return m, nil
}

func (s *Service) validateRequest(graduateID, companyID *uuid.UUID, startsAt, endsAt time.Time, meetingType entities.MeetingType) error {
	if graduateID == nil && companyID == nil {
		return usecaseErrors.ErrMissingParticipant
	}
	if !startsAt.Before(endsAt) {
		return usecaseErrors.ErrInvalidInterval
	}
	if !meetingType.IsValid() {
		return usecaseErrors.ErrInvalidMeetingType
	}
	return nil
}

// resolveParticipants loads the referenced directory records. Used both to
// verify that a participant id resolves to a real record and to hand names
// and emails to notification subscribers.
func (s *Service) resolveParticipants(ctx context.Context, graduateID, companyID *uuid.UUID) (*entities.Graduate, *entities.Company, error) {
	var graduate *entities.Graduate
	var company *entities.Company

	if graduateID != nil {
		g, err := s.graduateRepo.FindByID(ctx, *graduateID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, nil, usecaseErrors.ErrGraduateNotFound
			}
			return nil, nil, fmt.Errorf("failed to resolve graduate: %w", err)
		}
		graduate = g
	}
	if companyID != nil {
		c, err := s.companyRepo.FindByID(ctx, *companyID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, nil, usecaseErrors.ErrCompanyNotFound
			}
			return nil, nil, fmt.Errorf("failed to resolve company: %w", err)
		}
		company = c
	}
	return graduate, company, nil
}

// checkConflict loads the blocking meetings for the affected participants and
// runs the pure conflict detector. excludeID removes the meeting's own prior
// interval from the comparison set during reschedule.
func (s *Service) checkConflict(ctx context.Context, graduateID, companyID *uuid.UUID, startsAt, endsAt time.Time, excludeID *uuid.UUID) error {
	blocking, err := s.meetingRepo.FindBlocking(ctx, graduateID, companyID)
	if err != nil {
		return fmt.Errorf("failed to load blocking meetings: %w", err)
	}

	existing := make([]scheduling.Booking, 0, len(blocking))
	for _, m := range blocking {
		if excludeID != nil && m.ID == *excludeID {
			continue
		}
		existing = append(existing, scheduling.Booking{
			ID:         m.ID,
			GraduateID: m.GraduateID,
			CompanyID:  m.CompanyID,
			StartsAt:   m.StartsAt,
			EndsAt:     m.EndsAt,
		})
	}

	candidate := scheduling.Booking{
		GraduateID: graduateID,
		CompanyID:  companyID,
		StartsAt:   startsAt,
		EndsAt:     endsAt,
	}

	if found, ok := scheduling.FindConflict(candidate, existing); ok {
		return &ConflictError{ConflictingID: found.ID, StartsAt: found.StartsAt, EndsAt: found.EndsAt}
	}
	return nil
}

func (s *Service) publish(kind EventKind, m *entities.Meeting, graduate *entities.Graduate, company *entities.Company) {
	s.events.Publish(Event{
		Kind:       kind,
		Meeting:    *m,
		Graduate:   graduate,
		Company:    company,
		OccurredAt: time.Now(),
	})
	if s.logger != nil {
		s.logger.Info("meeting.event",
			zap.String("kind", string(kind)),
			zap.String("meeting_id", m.ID.String()),
			zap.String("status", string(m.Status)),
		)
	}
}

func statusEvent(status entities.MeetingStatus) EventKind {
	switch status {
	case entities.MeetingStatusScheduled:
		return EventConfirmed
	case entities.MeetingStatusCompleted:
		return EventCompleted
	case entities.MeetingStatusCancelled:
		return EventCancelled
	}
	return EventUpdated
}
