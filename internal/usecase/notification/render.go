package notification

import (
	"fmt"
	"strings"
	"time"

	"github.com/careerlink-team/career-portal/internal/domain/entities"
	"github.com/careerlink-team/career-portal/internal/usecase/meeting"
)

var subjects = map[meeting.EventKind]string{
	meeting.EventScheduled: "Meeting scheduled",
	meeting.EventUpdated:   "Meeting rescheduled",
	meeting.EventConfirmed: "Meeting confirmed",
	meeting.EventCompleted: "Meeting completed",
	meeting.EventCancelled: "Meeting cancelled",
	meeting.EventDeleted:   "Meeting removed",
	meeting.EventReminder:  "Meeting reminder",
}

var typeLabels = map[entities.MeetingType]string{
	entities.MeetingTypeInterview:   "Interview",
	entities.MeetingTypeOrientation: "Orientation",
	entities.MeetingTypeFollowUp:    "Follow-up",
	entities.MeetingTypeOther:       "Meeting",
}

// Subject returns the mail subject line for a lifecycle event.
func Subject(kind meeting.EventKind) string {
	if s, ok := subjects[kind]; ok {
		return s
	}
	return "Meeting update"
}

// RenderHTML builds the mail body for a lifecycle event: a short headline
// followed by a summary table of the meeting details. Participants that are
// not set on the meeting are omitted from the table.
func RenderHTML(event meeting.Event) string {
	m := event.Meeting

	var b strings.Builder
	b.WriteString("<div style=\"font-family: Arial, sans-serif; max-width: 560px;\">")
	fmt.Fprintf(&b, "<h2>%s</h2>", Subject(event.Kind))
	fmt.Fprintf(&b, "<p>%s</p>", headline(event))
	b.WriteString("<table cellpadding=\"6\" style=\"border-collapse: collapse;\">")

	row(&b, "Type", typeLabel(m.Type))
	row(&b, "Date", m.StartsAt.Format("Monday, 02 January 2006"))
	row(&b, "Time", fmt.Sprintf("%s - %s", m.StartsAt.Format("15:04"), m.EndsAt.Format("15:04")))
	if event.Graduate != nil {
		row(&b, "Graduate", event.Graduate.Name)
	}
	if event.Company != nil {
		row(&b, "Company", event.Company.Name)
	}
	if m.Observations != nil && *m.Observations != "" {
		row(&b, "Observations", *m.Observations)
	}
	row(&b, "Status", string(m.Status))

	b.WriteString("</table>")
	b.WriteString("<p style=\"color: #888; font-size: 12px;\">Sent by the career portal. Please do not reply to this message.</p>")
	b.WriteString("</div>")
	return b.String()
}

// Message returns the short plain-text summary stored with in-app
// notifications.
func Message(event meeting.Event) string {
	m := event.Meeting
	return fmt.Sprintf("%s: %s on %s from %s to %s",
		Subject(event.Kind),
		typeLabel(m.Type),
		m.StartsAt.Format("2006-01-02"),
		m.StartsAt.Format("15:04"),
		m.EndsAt.Format("15:04"),
	)
}

func headline(event meeting.Event) string {
	when := event.Meeting.StartsAt.Format("Monday, 02 January 2006 at 15:04")
	switch event.Kind {
	case meeting.EventScheduled:
		return fmt.Sprintf("A meeting has been booked for %s.", when)
	case meeting.EventUpdated:
		return fmt.Sprintf("Your meeting has been moved to %s.", when)
	case meeting.EventConfirmed:
		return fmt.Sprintf("Your meeting request for %s has been confirmed.", when)
	case meeting.EventCompleted:
		return "Your meeting has been marked as completed."
	case meeting.EventCancelled:
		return fmt.Sprintf("The meeting planned for %s has been cancelled.", when)
	case meeting.EventDeleted:
		return fmt.Sprintf("The meeting planned for %s has been removed from the calendar.", when)
	case meeting.EventReminder:
		return fmt.Sprintf("This is a reminder of your upcoming meeting on %s.", when)
	}
	return fmt.Sprintf("Your meeting on %s has been updated.", when)
}

func row(b *strings.Builder, label, value string) {
	fmt.Fprintf(b, "<tr><td style=\"border: 1px solid #ddd; font-weight: bold;\">%s</td><td style=\"border: 1px solid #ddd;\">%s</td></tr>", label, value)
}

func typeLabel(t entities.MeetingType) string {
	if label, ok := typeLabels[t]; ok {
		return label
	}
	return "Meeting"
}

// eventForEntity maps a lifecycle event kind to the stored notification event
// name.
func eventForEntity(kind meeting.EventKind) entities.NotificationEvent {
	switch kind {
	case meeting.EventScheduled:
		return entities.NotificationEventScheduled
	case meeting.EventUpdated:
		return entities.NotificationEventUpdated
	case meeting.EventConfirmed:
		return entities.NotificationEventConfirmed
	case meeting.EventCompleted:
		return entities.NotificationEventCompleted
	case meeting.EventCancelled:
		return entities.NotificationEventCancelled
	case meeting.EventDeleted:
		return entities.NotificationEventDeleted
	case meeting.EventReminder:
		return entities.NotificationEventReminder
	}
	return entities.NotificationEventUpdated
}

// payloadTimestamp keeps stored payload timestamps uniform.
func payloadTimestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
