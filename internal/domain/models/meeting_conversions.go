// Copyright The Teams Assist Authors.
// SPDX-License-Identifier: MIT

package models

import (
	"regexp"
	"strings"
	"time"

	"github.com/teamsassist/meeting-assist-service/pkg/utils"
)

const untitledMeetingTitle = "(no subject)"

// zoneSuffixPattern matches an explicit UTC marker or numeric offset at the
// end of a Graph date-time string.
var zoneSuffixPattern = regexp.MustCompile(`Z$|[+-]\d{2}:\d{2}$`)

// ParseGraphTime parses a Graph date-time string into UTC. Graph returns
// timezone-qualified date-times without an offset suffix when the
// outlook.timezone="UTC" preference is set, so values lacking a zone marker
// are treated as UTC. Returns nil when the value is empty or unparseable.
func ParseGraphTime(value string) *time.Time {
	if value == "" {
		return nil
	}

	if !zoneSuffixPattern.MatchString(value) {
		value += "Z"
	}

	// Graph emits fractional seconds of varying width; RFC3339 parsing
	// accepts them all.
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return nil
	}

	return utils.TimePtr(t.UTC())
}

// ComputeStatus classifies an event relative to now. Precedence, first
// match wins: cancelled events are skipped; events already ended are
// completed; everything else, including in-progress events and events with
// missing times, is upcoming.
func ComputeStatus(isCancelled bool, start, end *time.Time, now time.Time) MeetingStatus {
	if isCancelled {
		return MeetingStatusSkipped
	}
	if end != nil && end.Before(now) {
		return MeetingStatusCompleted
	}
	if start != nil && start.After(now) {
		return MeetingStatusUpcoming
	}
	return MeetingStatusUpcoming
}

// extractJoinURL prefers the nested online-meeting join URL and falls back
// to the flat onlineMeetingUrl field.
func extractJoinURL(ev *CalendarEvent) string {
	if ev.OnlineMeeting != nil && ev.OnlineMeeting.JoinURL != "" {
		return ev.OnlineMeeting.JoinURL
	}
	return ev.OnlineMeetingURL
}

// NormalizeAttendees converts Graph attendees into the normalized shape.
// Emails are lowercased, the role defaults to "attendee" and the response
// to empty string.
func NormalizeAttendees(attendees []EventAttendee) []Attendee {
	normalized := make([]Attendee, 0, len(attendees))
	for _, a := range attendees {
		var name, email string
		if a.EmailAddress != nil {
			name = a.EmailAddress.Name
			email = strings.ToLower(a.EmailAddress.Address)
		}

		role := utils.CoalesceString(a.Type, "attendee")

		response := ""
		if a.Status != nil {
			response = a.Status.Response
		}

		normalized = append(normalized, Attendee{
			Name:     name,
			Email:    email,
			Role:     role,
			Response: response,
		})
	}
	return normalized
}

// NormalizeOrganizer converts a Graph organizer recipient into the
// normalized shape with a lowercased email.
func NormalizeOrganizer(organizer *Recipient) Organizer {
	if organizer == nil || organizer.EmailAddress == nil {
		return Organizer{}
	}
	return Organizer{
		Name:  organizer.EmailAddress.Name,
		Email: strings.ToLower(organizer.EmailAddress.Address),
	}
}

// locationDisplay picks the event's display location: the primary location,
// else the first of the locations list.
func locationDisplay(ev *CalendarEvent) string {
	if ev.Location != nil && ev.Location.DisplayName != "" {
		return ev.Location.DisplayName
	}
	if len(ev.Locations) > 0 {
		return ev.Locations[0].DisplayName
	}
	return ""
}

// MeetingFromEvent converts a raw Graph calendar event into a normalized
// meeting, classifying its status relative to now.
func MeetingFromEvent(ev *CalendarEvent, now time.Time) Meeting {
	var start, end *time.Time
	if ev.Start != nil {
		start = ParseGraphTime(ev.Start.DateTime)
	}
	if ev.End != nil {
		end = ParseGraphTime(ev.End.DateTime)
	}

	title := utils.CoalesceString(ev.Subject, untitledMeetingTitle)

	return Meeting{
		ID:     ev.ID,
		Title:  title,
		Status: ComputeStatus(ev.IsCancelled, start, end, now),

		StartUTC: start,
		EndUTC:   end,

		IsCancelled:     ev.IsCancelled,
		IsOnlineMeeting: ev.IsOnlineMeeting,
		OnlineProvider:  ev.OnlineMeetingProvider,

		JoinWebURL: extractJoinURL(ev),

		Organizer:   NormalizeOrganizer(ev.Organizer),
		Attendees:   NormalizeAttendees(ev.Attendees),
		Location:    locationDisplay(ev),
		BodyPreview: ev.BodyPreview,

		EventType:      ev.Type,
		SeriesMasterID: ev.SeriesMasterID,
		ICalUID:        ev.ICalUID,
		Recurrence:     ev.Recurrence,

		Raw: ev,
	}
}
