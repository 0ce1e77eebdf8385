// Copyright The Teams Assist Authors.
// SPDX-License-Identifier: MIT

package models

import "time"

// MeetingStatus classifies a meeting relative to the current time.
type MeetingStatus string

const (
	// MeetingStatusUpcoming is a meeting that has not ended yet. Meetings
	// currently in progress are also reported as upcoming.
	MeetingStatusUpcoming MeetingStatus = "upcoming"
	// MeetingStatusCompleted is a meeting whose end time has passed.
	MeetingStatusCompleted MeetingStatus = "completed"
	// MeetingStatusSkipped is a cancelled meeting.
	MeetingStatusSkipped MeetingStatus = "skipped"
)

// Organizer is the normalized meeting organizer.
type Organizer struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Attendee is a normalized meeting attendee. Email is lowercased for
// stable comparison and deduplication.
type Attendee struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	Response string `json:"response"`
}

// Invitee is an entry of a meeting's invitee list: the organizer followed
// by the attendees, deduplicated by email.
type Invitee struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	Response string `json:"response"`
}

// Meeting is a calendar event normalized for the Teams tab. Status is a
// pure function of the event's cancellation flag and start/end times; it is
// computed once during conversion and never mutated afterwards.
type Meeting struct {
	ID     string        `json:"id"`
	Title  string        `json:"title"`
	Status MeetingStatus `json:"status"`

	StartUTC *time.Time `json:"startUTC"`
	EndUTC   *time.Time `json:"endUTC"`

	IsCancelled     bool   `json:"isCancelled"`
	IsOnlineMeeting bool   `json:"isOnlineMeeting"`
	OnlineProvider  string `json:"onlineProvider,omitempty"`

	JoinWebURL string `json:"joinWebUrl"`

	Organizer   Organizer  `json:"organizer"`
	Attendees   []Attendee `json:"attendees"`
	Location    string     `json:"location"`
	BodyPreview string     `json:"bodyPreview"`

	EventType      string      `json:"eventType,omitempty"`
	SeriesMasterID string      `json:"seriesMasterId,omitempty"`
	ICalUID        string      `json:"iCalUId,omitempty"`
	Recurrence     *Recurrence `json:"recurrence"`

	// NextOccurrence is the next start time computed from the recurrence
	// pattern, set for recurring meetings that are not completed.
	NextOccurrence *time.Time `json:"nextOccurrence,omitempty"`

	// Raw is the selected Graph event fields passed through for UI display.
	Raw *CalendarEvent `json:"raw,omitempty"`
}

// MeetingPage is one logical page of normalized, filtered meetings. The
// cursor is the upstream continuation link; empty means the collection is
// exhausted.
type MeetingPage struct {
	Meetings   []Meeting `json:"value"`
	NextCursor string    `json:"nextCursor,omitempty"`
}
