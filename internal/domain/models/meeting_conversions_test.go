// Copyright The Teams Assist Authors.
// SPDX-License-Identifier: MIT

package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseGraphTime(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected *time.Time
	}{
		{
			name:     "zone-less value is treated as UTC",
			input:    "2026-03-01T10:00:00.0000000",
			expected: timeRef(2026, 3, 1, 10, 0, 0),
		},
		{
			name:     "explicit Z suffix",
			input:    "2026-03-01T10:00:00Z",
			expected: timeRef(2026, 3, 1, 10, 0, 0),
		},
		{
			name:     "numeric offset is converted to UTC",
			input:    "2026-03-01T12:00:00+02:00",
			expected: timeRef(2026, 3, 1, 10, 0, 0),
		},
		{
			name:     "empty value",
			input:    "",
			expected: nil,
		},
		{
			name:     "garbage value",
			input:    "not-a-time",
			expected: nil,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := ParseGraphTime(tc.input)
			if tc.expected == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.True(t, tc.expected.Equal(*got), "expected %s, got %s", tc.expected, got)
		})
	}
}

func TestComputeStatus(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		isCancelled bool
		start       *time.Time
		end         *time.Time
		expected    MeetingStatus
	}{
		{
			name:        "cancelled wins over past end",
			isCancelled: true,
			start:       timeRef(2026, 3, 1, 9, 0, 0),
			end:         timeRef(2026, 3, 1, 10, 0, 0),
			expected:    MeetingStatusSkipped,
		},
		{
			name:     "ended before now is completed",
			start:    timeRef(2026, 3, 1, 9, 0, 0),
			end:      timeRef(2026, 3, 1, 10, 0, 0),
			expected: MeetingStatusCompleted,
		},
		{
			name:     "starts after now is upcoming",
			start:    timeRef(2026, 3, 1, 14, 0, 0),
			end:      timeRef(2026, 3, 1, 15, 0, 0),
			expected: MeetingStatusUpcoming,
		},
		{
			name:     "in progress is upcoming",
			start:    timeRef(2026, 3, 1, 11, 0, 0),
			end:      timeRef(2026, 3, 1, 13, 0, 0),
			expected: MeetingStatusUpcoming,
		},
		{
			name:     "missing times default to upcoming",
			expected: MeetingStatusUpcoming,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := ComputeStatus(tc.isCancelled, tc.start, tc.end, now)
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestMeetingFromEvent(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("full event", func(t *testing.T) {
		ev := &CalendarEvent{
			ID:      "event-1",
			Subject: "Sprint Review",
			Start:   &EventDateTime{DateTime: "2026-03-01T13:00:00.0000000", TimeZone: "UTC"},
			End:     &EventDateTime{DateTime: "2026-03-01T14:00:00.0000000", TimeZone: "UTC"},

			IsOnlineMeeting:       true,
			OnlineMeetingProvider: "teamsForBusiness",
			OnlineMeeting:         &OnlineMeetingInfo{JoinURL: "https://teams.microsoft.com/l/meetup-join/abc"},
			OnlineMeetingURL:      "https://legacy.example.com/join",

			Organizer: &Recipient{EmailAddress: &EmailAddress{Name: "Olive Organizer", Address: "Olive@Example.COM"}},
			Attendees: []EventAttendee{
				{
					Type:         "required",
					Status:       &ResponseStatus{Response: "accepted"},
					EmailAddress: &EmailAddress{Name: "Alice", Address: "Alice@Example.com"},
				},
				{
					EmailAddress: &EmailAddress{Name: "Bob", Address: "bob@example.com"},
				},
			},
			Location:    &EventLocation{DisplayName: "Room 4"},
			BodyPreview: "agenda attached",
			Type:        EventTypeOccurrence,

			SeriesMasterID: "master-1",
			ICalUID:        "uid-1",
		}

		m := MeetingFromEvent(ev, now)

		assert.Equal(t, "event-1", m.ID)
		assert.Equal(t, "Sprint Review", m.Title)
		assert.Equal(t, MeetingStatusUpcoming, m.Status)
		require.NotNil(t, m.StartUTC)
		assert.Equal(t, time.Date(2026, 3, 1, 13, 0, 0, 0, time.UTC), *m.StartUTC)
		assert.Equal(t, "https://teams.microsoft.com/l/meetup-join/abc", m.JoinWebURL)
		assert.Equal(t, Organizer{Name: "Olive Organizer", Email: "olive@example.com"}, m.Organizer)
		require.Len(t, m.Attendees, 2)
		assert.Equal(t, Attendee{Name: "Alice", Email: "alice@example.com", Role: "required", Response: "accepted"}, m.Attendees[0])
		assert.Equal(t, Attendee{Name: "Bob", Email: "bob@example.com", Role: "attendee", Response: ""}, m.Attendees[1])
		assert.Equal(t, "Room 4", m.Location)
		assert.Equal(t, "master-1", m.SeriesMasterID)
		assert.Same(t, ev, m.Raw)
	})

	t.Run("join url falls back to flat field", func(t *testing.T) {
		ev := &CalendarEvent{
			ID:               "event-2",
			OnlineMeetingURL: "https://legacy.example.com/join",
		}

		m := MeetingFromEvent(ev, now)
		assert.Equal(t, "https://legacy.example.com/join", m.JoinWebURL)
	})

	t.Run("missing join urls yield empty string", func(t *testing.T) {
		m := MeetingFromEvent(&CalendarEvent{ID: "event-3"}, now)
		assert.Equal(t, "", m.JoinWebURL)
	})

	t.Run("untitled event gets placeholder title", func(t *testing.T) {
		m := MeetingFromEvent(&CalendarEvent{ID: "event-4"}, now)
		assert.Equal(t, "(no subject)", m.Title)
	})

	t.Run("location falls back to locations list", func(t *testing.T) {
		ev := &CalendarEvent{
			ID:        "event-5",
			Locations: []EventLocation{{DisplayName: "Auditorium"}, {DisplayName: "Overflow"}},
		}

		m := MeetingFromEvent(ev, now)
		assert.Equal(t, "Auditorium", m.Location)
	})
}

func timeRef(year int, month time.Month, day, hour, minute, sec int) *time.Time {
	t := time.Date(year, month, day, hour, minute, sec, 0, time.UTC)
	return &t
}
