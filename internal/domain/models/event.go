// Copyright The Teams Assist Authors.
// SPDX-License-Identifier: MIT

// Package models contains the domain models of the meeting assist service:
// the raw Microsoft Graph payloads the service consumes and the normalized
// shapes it serves to the Teams tab.
package models

// EventDateTime is a Graph date-time with its IANA/Windows timezone name.
// Graph omits the offset from DateTime when the Prefer outlook.timezone
// header is used; values without a zone suffix are UTC.
type EventDateTime struct {
	DateTime string `json:"dateTime"`
	TimeZone string `json:"timeZone,omitempty"`
}

// EmailAddress is a Graph name/address pair.
type EmailAddress struct {
	Name    string `json:"name,omitempty"`
	Address string `json:"address,omitempty"`
}

// ResponseStatus is an attendee's reply to a meeting invitation.
type ResponseStatus struct {
	Response string `json:"response,omitempty"`
	Time     string `json:"time,omitempty"`
}

// EventAttendee is a Graph attendee entry.
type EventAttendee struct {
	Type         string          `json:"type,omitempty"`
	Status       *ResponseStatus `json:"status,omitempty"`
	EmailAddress *EmailAddress   `json:"emailAddress,omitempty"`
}

// Recipient wraps an email address, used for the organizer field.
type Recipient struct {
	EmailAddress *EmailAddress `json:"emailAddress,omitempty"`
}

// OnlineMeetingInfo carries the joining details of an online meeting.
type OnlineMeetingInfo struct {
	JoinURL      string `json:"joinUrl,omitempty"`
	ConferenceID string `json:"conferenceId,omitempty"`
	TollNumber   string `json:"tollNumber,omitempty"`
	QuickDial    string `json:"quickDial,omitempty"`
}

// EventLocation is a Graph location entry.
type EventLocation struct {
	DisplayName string `json:"displayName,omitempty"`
}

// RecurrencePattern describes how often a recurring event repeats.
type RecurrencePattern struct {
	Type           string   `json:"type,omitempty"`
	Interval       int      `json:"interval,omitempty"`
	DaysOfWeek     []string `json:"daysOfWeek,omitempty"`
	DayOfMonth     int      `json:"dayOfMonth,omitempty"`
	Index          string   `json:"index,omitempty"`
	Month          int      `json:"month,omitempty"`
	FirstDayOfWeek string   `json:"firstDayOfWeek,omitempty"`
}

// RecurrenceRange describes when a recurrence begins and ends.
type RecurrenceRange struct {
	Type                string `json:"type,omitempty"`
	StartDate           string `json:"startDate,omitempty"`
	EndDate             string `json:"endDate,omitempty"`
	NumberOfOccurrences int    `json:"numberOfOccurrences,omitempty"`
	RecurrenceTimeZone  string `json:"recurrenceTimeZone,omitempty"`
}

// Recurrence is a Graph patterned recurrence.
type Recurrence struct {
	Pattern *RecurrencePattern `json:"pattern,omitempty"`
	Range   *RecurrenceRange   `json:"range,omitempty"`
}

// Event type values returned by Graph.
const (
	EventTypeSingleInstance = "singleInstance"
	EventTypeOccurrence     = "occurrence"
	EventTypeException      = "exception"
	EventTypeSeriesMaster   = "seriesMaster"
)

// CalendarEvent is a calendar event as received from Graph, limited to the
// fields the service selects.
type CalendarEvent struct {
	ID                    string             `json:"id,omitempty"`
	Subject               string             `json:"subject,omitempty"`
	Start                 *EventDateTime     `json:"start,omitempty"`
	End                   *EventDateTime     `json:"end,omitempty"`
	IsCancelled           bool               `json:"isCancelled,omitempty"`
	IsOnlineMeeting       bool               `json:"isOnlineMeeting,omitempty"`
	OnlineMeetingProvider string             `json:"onlineMeetingProvider,omitempty"`
	OnlineMeeting         *OnlineMeetingInfo `json:"onlineMeeting,omitempty"`
	OnlineMeetingURL      string             `json:"onlineMeetingUrl,omitempty"`
	Organizer             *Recipient         `json:"organizer,omitempty"`
	Attendees             []EventAttendee    `json:"attendees,omitempty"`
	Location              *EventLocation     `json:"location,omitempty"`
	Locations             []EventLocation    `json:"locations,omitempty"`
	BodyPreview           string             `json:"bodyPreview,omitempty"`
	Importance            string             `json:"importance,omitempty"`
	Sensitivity           string             `json:"sensitivity,omitempty"`
	ShowAs                string             `json:"showAs,omitempty"`
	Type                  string             `json:"type,omitempty"`
	SeriesMasterID        string             `json:"seriesMasterId,omitempty"`
	ICalUID               string             `json:"iCalUId,omitempty"`
	Recurrence            *Recurrence        `json:"recurrence,omitempty"`
	CreatedDateTime       string             `json:"createdDateTime,omitempty"`
	LastModifiedDateTime  string             `json:"lastModifiedDateTime,omitempty"`
	WebLink               string             `json:"webLink,omitempty"`
}

// EventPage is one page of a Graph event collection, with the continuation
// link to the next page when more results exist.
type EventPage struct {
	Value    []CalendarEvent `json:"value"`
	NextLink string          `json:"@odata.nextLink,omitempty"`
}

// EventInvitees is the organizer/attendees projection of a single event.
type EventInvitees struct {
	Organizer *Recipient      `json:"organizer,omitempty"`
	Attendees []EventAttendee `json:"attendees,omitempty"`
}
