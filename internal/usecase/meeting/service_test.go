package meeting_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/careerlink-team/career-portal/internal/adapter/repository"
	"github.com/careerlink-team/career-portal/internal/domain/entities"
	"github.com/careerlink-team/career-portal/internal/domain/repositories"
	usecaseErrors "github.com/careerlink-team/career-portal/internal/usecase/errors"
	"github.com/careerlink-team/career-portal/internal/usecase/meeting"
)

type capturePublisher struct {
	events []meeting.Event
}

func (p *capturePublisher) Publish(event meeting.Event) {
	p.events = append(p.events, event)
}

func (p *capturePublisher) last() *meeting.Event {
	if len(p.events) == 0 {
		return nil
	}
	return &p.events[len(p.events)-1]
}

// indifferentPublisher drops every event, standing in for a subscriber whose
// deliveries fail. The Publisher contract has no error path, so store
// operations must succeed regardless.
type indifferentPublisher struct{}

func (indifferentPublisher) Publish(meeting.Event) {}

type fixture struct {
	service  *meeting.Service
	meetings *repository.MemoryMeetingRepository
	events   *capturePublisher
	graduate entities.Graduate
	company  entities.Company
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	meetings := repository.NewMemoryMeetingRepository()
	graduates := repository.NewMemoryGraduateRepository()
	companies := repository.NewMemoryCompanyRepository()
	events := &capturePublisher{}

	graduate := entities.Graduate{
		ID:    uuid.New(),
		Name:  "Maria Fernandez",
		Email: "maria.fernandez@example.edu",
	}
	company := entities.Company{
		ID:    uuid.New(),
		Name:  "Northbyte Labs",
		Email: "talent@northbyte.example",
	}
	if err := graduates.Create(context.Background(), &graduate); err != nil {
		t.Fatalf("seed graduate: %v", err)
	}
	if err := companies.Create(context.Background(), &company); err != nil {
		t.Fatalf("seed company: %v", err)
	}

	return &fixture{
		service:  meeting.NewService(meetings, graduates, companies, events, nil),
		meetings: meetings,
		events:   events,
		graduate: graduate,
		company:  company,
	}
}

func (f *fixture) schedule(t *testing.T, input meeting.ScheduleInput) *entities.Meeting {
	t.Helper()
	m, err := f.service.Schedule(context.Background(), input)
	if err != nil {
		t.Fatalf("schedule: %v", err)
	}
	return m
}

func at(hour, min int) time.Time {
	return time.Date(2026, time.March, 12, hour, min, 0, 0, time.UTC)
}

func TestConcurrentSchedulingAdmitsOneBooking(t *testing.T) {
	f := newFixture(t)

	const attempts = 32
	var (
		wg     sync.WaitGroup
		booked atomic.Int32
	)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.service.Schedule(context.Background(), meeting.ScheduleInput{
				GraduateID: &f.graduate.ID,
				StartsAt:   at(10, 0),
				EndsAt:     at(11, 0),
				Type:       entities.MeetingTypeInterview,
				CreatedBy:  entities.CreatorRoleAdmin,
			})
			switch {
			case err == nil:
				booked.Add(1)
			case !errors.Is(err, usecaseErrors.ErrMeetingConflict):
				t.Errorf("Schedule() error = %v, want nil or %v", err, usecaseErrors.ErrMeetingConflict)
			}
		}()
	}
	wg.Wait()

	if got := booked.Load(); got != 1 {
		t.Errorf("concurrent Schedule() admitted %d bookings, want 1", got)
	}
	_, total, err := f.service.List(context.Background(), repositories.MeetingFilters{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if total != 1 {
		t.Errorf("store holds %d meetings, want 1", total)
	}
}

func TestScheduleByAdminIsImmediatelyScheduled(t *testing.T) {
	f := newFixture(t)

	m := f.schedule(t, meeting.ScheduleInput{
		GraduateID: &f.graduate.ID,
		CompanyID:  &f.company.ID,
		StartsAt:   at(10, 0),
		EndsAt:     at(11, 0),
		Type:       entities.MeetingTypeInterview,
		CreatedBy:  entities.CreatorRoleAdmin,
	})

	if m.Status != entities.MeetingStatusScheduled {
		t.Errorf("status = %q, want %q", m.Status, entities.MeetingStatusScheduled)
	}
	if ev := f.events.last(); ev == nil || ev.Kind != meeting.EventScheduled {
		t.Errorf("expected %q event, got %+v", meeting.EventScheduled, ev)
	}
}

func TestScheduleBySelfServiceStartsInProgress(t *testing.T) {
	f := newFixture(t)

	for _, role := range []entities.CreatorRole{entities.CreatorRoleGraduate, entities.CreatorRoleCompany} {
		m := f.schedule(t, meeting.ScheduleInput{
			GraduateID: &f.graduate.ID,
			StartsAt:   at(9, 0).Add(time.Duration(len(f.events.events)) * 2 * time.Hour),
			EndsAt:     at(10, 0).Add(time.Duration(len(f.events.events)) * 2 * time.Hour),
			Type:       entities.MeetingTypeOrientation,
			CreatedBy:  role,
		})
		if m.Status != entities.MeetingStatusInProgress {
			t.Errorf("creator %q: status = %q, want %q", role, m.Status, entities.MeetingStatusInProgress)
		}
	}
}

func TestScheduleValidation(t *testing.T) {
	f := newFixture(t)

	tests := []struct {
		name    string
		input   meeting.ScheduleInput
		wantErr error
	}{
		{
			name: "no participants",
			input: meeting.ScheduleInput{
				StartsAt:  at(10, 0),
				EndsAt:    at(11, 0),
				Type:      entities.MeetingTypeInterview,
				CreatedBy: entities.CreatorRoleAdmin,
			},
			wantErr: usecaseErrors.ErrMissingParticipant,
		},
		{
			name: "end before start",
			input: meeting.ScheduleInput{
				GraduateID: &f.graduate.ID,
				StartsAt:   at(11, 0),
				EndsAt:     at(10, 0),
				Type:       entities.MeetingTypeInterview,
				CreatedBy:  entities.CreatorRoleAdmin,
			},
			wantErr: usecaseErrors.ErrInvalidInterval,
		},
		{
			name: "zero duration interval",
			input: meeting.ScheduleInput{
				GraduateID: &f.graduate.ID,
				StartsAt:   at(10, 0),
				EndsAt:     at(10, 0),
				Type:       entities.MeetingTypeInterview,
				CreatedBy:  entities.CreatorRoleAdmin,
			},
			wantErr: usecaseErrors.ErrInvalidInterval,
		},
		{
			name: "unknown meeting type",
			input: meeting.ScheduleInput{
				GraduateID: &f.graduate.ID,
				StartsAt:   at(10, 0),
				EndsAt:     at(11, 0),
				Type:       entities.MeetingType("standup"),
				CreatedBy:  entities.CreatorRoleAdmin,
			},
			wantErr: usecaseErrors.ErrInvalidMeetingType,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.service.Schedule(context.Background(), tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Schedule() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestScheduleUnknownParticipants(t *testing.T) {
	f := newFixture(t)
	missing := uuid.New()

	_, err := f.service.Schedule(context.Background(), meeting.ScheduleInput{
		GraduateID: &missing,
		StartsAt:   at(10, 0),
		EndsAt:     at(11, 0),
		Type:       entities.MeetingTypeInterview,
		CreatedBy:  entities.CreatorRoleAdmin,
	})
	if !errors.Is(err, usecaseErrors.ErrGraduateNotFound) {
		t.Errorf("Schedule() error = %v, want %v", err, usecaseErrors.ErrGraduateNotFound)
	}

	_, err = f.service.Schedule(context.Background(), meeting.ScheduleInput{
		CompanyID: &missing,
		StartsAt:  at(10, 0),
		EndsAt:    at(11, 0),
		Type:      entities.MeetingTypeInterview,
		CreatedBy: entities.CreatorRoleAdmin,
	})
	if !errors.Is(err, usecaseErrors.ErrCompanyNotFound) {
		t.Errorf("Schedule() error = %v, want %v", err, usecaseErrors.ErrCompanyNotFound)
	}
}

func TestScheduleConflictLeavesStoreUnchanged(t *testing.T) {
	f := newFixture(t)

	f.schedule(t, meeting.ScheduleInput{
		GraduateID: &f.graduate.ID,
		StartsAt:   at(10, 0),
		EndsAt:     at(11, 0),
		Type:       entities.MeetingTypeInterview,
		CreatedBy:  entities.CreatorRoleAdmin,
	})

	_, err := f.service.Schedule(context.Background(), meeting.ScheduleInput{
		GraduateID: &f.graduate.ID,
		StartsAt:   at(10, 30),
		EndsAt:     at(11, 30),
		Type:       entities.MeetingTypeFollowUp,
		CreatedBy:  entities.CreatorRoleAdmin,
	})
	if !errors.Is(err, usecaseErrors.ErrMeetingConflict) {
		t.Fatalf("Schedule() error = %v, want %v", err, usecaseErrors.ErrMeetingConflict)
	}

	var conflict *meeting.ConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("error %v does not carry conflict details", err)
	}
	if conflict.StartsAt != at(10, 0) || conflict.EndsAt != at(11, 0) {
		t.Errorf("conflict interval = [%v, %v), want [%v, %v)",
			conflict.StartsAt, conflict.EndsAt, at(10, 0), at(11, 0))
	}

	all, total, err := f.meetings.List(context.Background(), repositories.MeetingFilters{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if total != 1 || len(all) != 1 {
		t.Errorf("store has %d meetings after rejected booking, want 1", total)
	}
}

func TestScheduleTouchingIntervalsDoNotConflict(t *testing.T) {
	f := newFixture(t)

	f.schedule(t, meeting.ScheduleInput{
		GraduateID: &f.graduate.ID,
		StartsAt:   at(10, 0),
		EndsAt:     at(11, 0),
		Type:       entities.MeetingTypeInterview,
		CreatedBy:  entities.CreatorRoleAdmin,
	})

	// Back-to-back with the existing booking; half-open intervals touch
	// without overlapping.
	f.schedule(t, meeting.ScheduleInput{
		GraduateID: &f.graduate.ID,
		StartsAt:   at(11, 0),
		EndsAt:     at(12, 0),
		Type:       entities.MeetingTypeFollowUp,
		CreatedBy:  entities.CreatorRoleAdmin,
	})
}

func TestScheduleIgnoresNonBlockingMeetings(t *testing.T) {
	f := newFixture(t)

	m := f.schedule(t, meeting.ScheduleInput{
		GraduateID: &f.graduate.ID,
		StartsAt:   at(10, 0),
		EndsAt:     at(11, 0),
		Type:       entities.MeetingTypeInterview,
		CreatedBy:  entities.CreatorRoleAdmin,
	})
	if _, err := f.service.Cancel(context.Background(), m.ID); err != nil {
		t.Fatalf("cancel: %v", err)
	}

	// The cancelled meeting no longer occupies its slot.
	f.schedule(t, meeting.ScheduleInput{
		GraduateID: &f.graduate.ID,
		StartsAt:   at(10, 0),
		EndsAt:     at(11, 0),
		Type:       entities.MeetingTypeInterview,
		CreatedBy:  entities.CreatorRoleAdmin,
	})
}

func TestScheduleDistinctGraduatesSameSlot(t *testing.T) {
	f := newFixture(t)

	other := entities.Graduate{
		ID:    uuid.New(),
		Name:  "Jorge Paredes",
		Email: "jorge.paredes@example.edu",
	}
	graduates := repository.NewMemoryGraduateRepository()
	companies := repository.NewMemoryCompanyRepository()
	if err := graduates.Create(context.Background(), &f.graduate); err != nil {
		t.Fatal(err)
	}
	if err := graduates.Create(context.Background(), &other); err != nil {
		t.Fatal(err)
	}
	if err := companies.Create(context.Background(), &f.company); err != nil {
		t.Fatal(err)
	}
	svc := meeting.NewService(f.meetings, graduates, companies, nil, nil)

	if _, err := svc.Schedule(context.Background(), meeting.ScheduleInput{
		GraduateID: &f.graduate.ID,
		CompanyID:  &f.company.ID,
		StartsAt:   at(10, 0),
		EndsAt:     at(11, 0),
		Type:       entities.MeetingTypeInterview,
		CreatedBy:  entities.CreatorRoleAdmin,
	}); err != nil {
		t.Fatalf("first booking: %v", err)
	}

	// Different graduates never conflict with each other, even while the
	// company appears in both bookings.
	if _, err := svc.Schedule(context.Background(), meeting.ScheduleInput{
		GraduateID: &other.ID,
		CompanyID:  &f.company.ID,
		StartsAt:   at(10, 0),
		EndsAt:     at(11, 0),
		Type:       entities.MeetingTypeInterview,
		CreatedBy:  entities.CreatorRoleAdmin,
	}); err != nil {
		t.Fatalf("overlapping booking for different graduate: %v", err)
	}
}

func TestRescheduleExcludesOwnInterval(t *testing.T) {
	f := newFixture(t)

	m := f.schedule(t, meeting.ScheduleInput{
		GraduateID: &f.graduate.ID,
		StartsAt:   at(10, 0),
		EndsAt:     at(11, 0),
		Type:       entities.MeetingTypeInterview,
		CreatedBy:  entities.CreatorRoleAdmin,
	})

	// Shifting within the original slot overlaps only the meeting itself.
	moved, err := f.service.Reschedule(context.Background(), meeting.RescheduleInput{
		ID:       m.ID,
		StartsAt: at(10, 30),
		EndsAt:   at(11, 30),
	})
	if err != nil {
		t.Fatalf("reschedule: %v", err)
	}
	if moved.StartsAt != at(10, 30) || moved.EndsAt != at(11, 30) {
		t.Errorf("moved to [%v, %v), want [%v, %v)", moved.StartsAt, moved.EndsAt, at(10, 30), at(11, 30))
	}
	if ev := f.events.last(); ev == nil || ev.Kind != meeting.EventUpdated {
		t.Errorf("expected %q event, got %+v", meeting.EventUpdated, ev)
	}
}

func TestRescheduleRejectsConflictAndTerminal(t *testing.T) {
	f := newFixture(t)

	first := f.schedule(t, meeting.ScheduleInput{
		GraduateID: &f.graduate.ID,
		StartsAt:   at(10, 0),
		EndsAt:     at(11, 0),
		Type:       entities.MeetingTypeInterview,
		CreatedBy:  entities.CreatorRoleAdmin,
	})
	second := f.schedule(t, meeting.ScheduleInput{
		GraduateID: &f.graduate.ID,
		StartsAt:   at(12, 0),
		EndsAt:     at(13, 0),
		Type:       entities.MeetingTypeFollowUp,
		CreatedBy:  entities.CreatorRoleAdmin,
	})

	_, err := f.service.Reschedule(context.Background(), meeting.RescheduleInput{
		ID:       second.ID,
		StartsAt: at(10, 30),
		EndsAt:   at(11, 30),
	})
	if !errors.Is(err, usecaseErrors.ErrMeetingConflict) {
		t.Errorf("Reschedule() error = %v, want %v", err, usecaseErrors.ErrMeetingConflict)
	}

	kept, err := f.service.Get(context.Background(), second.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if kept.StartsAt != at(12, 0) {
		t.Errorf("rejected reschedule moved the meeting to %v", kept.StartsAt)
	}

	if _, err := f.service.Cancel(context.Background(), first.ID); err != nil {
		t.Fatalf("cancel: %v", err)
	}
	_, err = f.service.Reschedule(context.Background(), meeting.RescheduleInput{
		ID:       first.ID,
		StartsAt: at(14, 0),
		EndsAt:   at(15, 0),
	})
	if !errors.Is(err, usecaseErrors.ErrInvalidTransition) {
		t.Errorf("rescheduling cancelled meeting: error = %v, want %v", err, usecaseErrors.ErrInvalidTransition)
	}
}

func TestStatusTransitions(t *testing.T) {
	tests := []struct {
		name    string
		from    entities.MeetingStatus
		to      entities.MeetingStatus
		wantErr bool
	}{
		{"confirm self-requested", entities.MeetingStatusInProgress, entities.MeetingStatusScheduled, false},
		{"cancel self-requested", entities.MeetingStatusInProgress, entities.MeetingStatusCancelled, false},
		{"complete scheduled", entities.MeetingStatusScheduled, entities.MeetingStatusCompleted, false},
		{"cancel scheduled", entities.MeetingStatusScheduled, entities.MeetingStatusCancelled, false},
		{"complete self-requested", entities.MeetingStatusInProgress, entities.MeetingStatusCompleted, true},
		{"reopen completed", entities.MeetingStatusCompleted, entities.MeetingStatusScheduled, true},
		{"cancel cancelled", entities.MeetingStatusCancelled, entities.MeetingStatusCancelled, true},
		{"complete cancelled", entities.MeetingStatusCancelled, entities.MeetingStatusCompleted, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			role := entities.CreatorRoleAdmin
			if tt.from == entities.MeetingStatusInProgress {
				role = entities.CreatorRoleGraduate
			}
			m := f.schedule(t, meeting.ScheduleInput{
				GraduateID: &f.graduate.ID,
				StartsAt:   at(10, 0),
				EndsAt:     at(11, 0),
				Type:       entities.MeetingTypeInterview,
				CreatedBy:  role,
			})
			if tt.from.IsTerminal() {
				if _, err := f.service.ChangeStatus(context.Background(), m.ID, tt.from); err != nil {
					t.Fatalf("drive to %q: %v", tt.from, err)
				}
			}

			before, _ := f.service.Get(context.Background(), m.ID)
			_, err := f.service.ChangeStatus(context.Background(), m.ID, tt.to)

			if tt.wantErr {
				if !errors.Is(err, usecaseErrors.ErrInvalidTransition) {
					t.Fatalf("ChangeStatus() error = %v, want %v", err, usecaseErrors.ErrInvalidTransition)
				}
				after, _ := f.service.Get(context.Background(), m.ID)
				if after.Status != before.Status {
					t.Errorf("illegal transition changed status from %q to %q", before.Status, after.Status)
				}
				return
			}
			if err != nil {
				t.Fatalf("ChangeStatus() error = %v", err)
			}
			after, _ := f.service.Get(context.Background(), m.ID)
			if after.Status != tt.to {
				t.Errorf("status = %q, want %q", after.Status, tt.to)
			}
		})
	}
}

func TestChangeStatusEmitsMatchingEvent(t *testing.T) {
	f := newFixture(t)

	m := f.schedule(t, meeting.ScheduleInput{
		GraduateID: &f.graduate.ID,
		StartsAt:   at(10, 0),
		EndsAt:     at(11, 0),
		Type:       entities.MeetingTypeInterview,
		CreatedBy:  entities.CreatorRoleGraduate,
	})

	if _, err := f.service.Confirm(context.Background(), m.ID); err != nil {
		t.Fatalf("confirm: %v", err)
	}
	if ev := f.events.last(); ev == nil || ev.Kind != meeting.EventConfirmed {
		t.Errorf("expected %q event, got %+v", meeting.EventConfirmed, ev)
	}

	if _, err := f.service.Complete(context.Background(), m.ID); err != nil {
		t.Fatalf("complete: %v", err)
	}
	if ev := f.events.last(); ev == nil || ev.Kind != meeting.EventCompleted {
		t.Errorf("expected %q event, got %+v", meeting.EventCompleted, ev)
	}
}

func TestDeleteRemovesRecordAndEmitsDeleted(t *testing.T) {
	f := newFixture(t)

	m := f.schedule(t, meeting.ScheduleInput{
		GraduateID: &f.graduate.ID,
		StartsAt:   at(10, 0),
		EndsAt:     at(11, 0),
		Type:       entities.MeetingTypeInterview,
		CreatedBy:  entities.CreatorRoleAdmin,
	})

	if err := f.service.Delete(context.Background(), m.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if ev := f.events.last(); ev == nil || ev.Kind != meeting.EventDeleted {
		t.Errorf("expected %q event, got %+v", meeting.EventDeleted, ev)
	}
	if _, err := f.service.Get(context.Background(), m.ID); !errors.Is(err, usecaseErrors.ErrMeetingNotFound) {
		t.Errorf("Get() after delete error = %v, want %v", err, usecaseErrors.ErrMeetingNotFound)
	}
	if err := f.service.Delete(context.Background(), m.ID); !errors.Is(err, usecaseErrors.ErrMeetingNotFound) {
		t.Errorf("second Delete() error = %v, want %v", err, usecaseErrors.ErrMeetingNotFound)
	}
}

func TestSendReminder(t *testing.T) {
	f := newFixture(t)

	m := f.schedule(t, meeting.ScheduleInput{
		GraduateID: &f.graduate.ID,
		CompanyID:  &f.company.ID,
		StartsAt:   at(10, 0),
		EndsAt:     at(11, 0),
		Type:       entities.MeetingTypeInterview,
		CreatedBy:  entities.CreatorRoleAdmin,
	})

	if err := f.service.SendReminder(context.Background(), m.ID); err != nil {
		t.Fatalf("reminder: %v", err)
	}
	ev := f.events.last()
	if ev == nil || ev.Kind != meeting.EventReminder {
		t.Fatalf("expected %q event, got %+v", meeting.EventReminder, ev)
	}
	if ev.Graduate == nil || ev.Graduate.Email != f.graduate.Email {
		t.Errorf("reminder event missing graduate contact")
	}
	if ev.Company == nil || ev.Company.Email != f.company.Email {
		t.Errorf("reminder event missing company contact")
	}

	if _, err := f.service.Cancel(context.Background(), m.ID); err != nil {
		t.Fatalf("cancel: %v", err)
	}
	if err := f.service.SendReminder(context.Background(), m.ID); !errors.Is(err, usecaseErrors.ErrInvalidTransition) {
		t.Errorf("reminder for cancelled meeting: error = %v, want %v", err, usecaseErrors.ErrInvalidTransition)
	}
}

func TestOperationsSucceedWithIndifferentSubscriber(t *testing.T) {
	meetings := repository.NewMemoryMeetingRepository()
	graduates := repository.NewMemoryGraduateRepository()
	companies := repository.NewMemoryCompanyRepository()
	graduate := entities.Graduate{ID: uuid.New(), Name: "Lucia Ramos", Email: "lucia.ramos@example.edu"}
	if err := graduates.Create(context.Background(), &graduate); err != nil {
		t.Fatal(err)
	}
	svc := meeting.NewService(meetings, graduates, companies, indifferentPublisher{}, nil)

	m, err := svc.Schedule(context.Background(), meeting.ScheduleInput{
		GraduateID: &graduate.ID,
		StartsAt:   at(10, 0),
		EndsAt:     at(11, 0),
		Type:       entities.MeetingTypeOrientation,
		CreatedBy:  entities.CreatorRoleAdmin,
	})
	if err != nil {
		t.Fatalf("schedule with indifferent subscriber: %v", err)
	}
	if _, err := svc.Complete(context.Background(), m.ID); err != nil {
		t.Fatalf("complete with indifferent subscriber: %v", err)
	}
}

func TestListFilters(t *testing.T) {
	f := newFixture(t)

	f.schedule(t, meeting.ScheduleInput{
		GraduateID: &f.graduate.ID,
		StartsAt:   at(9, 0),
		EndsAt:     at(10, 0),
		Type:       entities.MeetingTypeInterview,
		CreatedBy:  entities.CreatorRoleAdmin,
	})
	f.schedule(t, meeting.ScheduleInput{
		CompanyID: &f.company.ID,
		StartsAt:  at(11, 0),
		EndsAt:    at(12, 0),
		Type:      entities.MeetingTypeOrientation,
		CreatedBy: entities.CreatorRoleAdmin,
	})

	byGraduate, total, err := f.service.List(context.Background(), repositories.MeetingFilters{GraduateID: &f.graduate.ID})
	if err != nil {
		t.Fatalf("list by graduate: %v", err)
	}
	if total != 1 || len(byGraduate) != 1 {
		t.Fatalf("list by graduate returned %d meetings, want 1", total)
	}
	if byGraduate[0].GraduateID == nil || *byGraduate[0].GraduateID != f.graduate.ID {
		t.Errorf("filtered list returned wrong meeting")
	}

	interviewType := entities.MeetingTypeInterview
	byType, total, err := f.service.List(context.Background(), repositories.MeetingFilters{Type: &interviewType})
	if err != nil {
		t.Fatalf("list by type: %v", err)
	}
	if total != 1 || len(byType) != 1 {
		t.Fatalf("list by type returned %d meetings, want 1", total)
	}
}
