// Copyright The Teams Assist Authors.
// SPDX-License-Identifier: MIT

// Package domain defines the collaborator interfaces and error taxonomy of
// the meeting assist service.
package domain

import (
	"context"

	"github.com/teamsassist/meeting-assist-service/internal/domain/models"
)

// CalendarAPI is the surface of the Microsoft Graph API consumed by the
// service layer. Every method takes the caller's Graph bearer token; the
// implementation attaches it to the outgoing request.
type CalendarAPI interface {
	// CalendarView fetches one page of calendar events. urlOrPath is either
	// a relative calendarView query or an absolute @odata.nextLink returned
	// by a previous page.
	CalendarView(ctx context.Context, token, urlOrPath string) (*models.EventPage, error)

	// GetEventRecurrence fetches the recurrence pattern of a single event,
	// typically a series master. Returns nil when the event has none.
	GetEventRecurrence(ctx context.Context, token, eventID string) (*models.Recurrence, error)

	// FindSeriesMasterRecurrence searches for a series-master event with the
	// given iCalUId and returns its recurrence pattern, or nil when no such
	// master exists.
	FindSeriesMasterRecurrence(ctx context.Context, token, icalUID string) (*models.Recurrence, error)

	// GetEventInvitees fetches the organizer and attendee list of an event.
	GetEventInvitees(ctx context.Context, token, eventID string) (*models.EventInvitees, error)

	// GetMe fetches the signed-in user's profile.
	GetMe(ctx context.Context, token string) (map[string]any, error)

	// FindOnlineMeetingID resolves an online meeting's identifier from its
	// join URL. Returns empty string when no meeting matches.
	FindOnlineMeetingID(ctx context.Context, token, joinURL string) (string, error)

	// ListTranscripts lists the transcripts recorded for an online meeting,
	// in the order the upstream API returns them.
	ListTranscripts(ctx context.Context, token, meetingID string) ([]models.TranscriptInfo, error)

	// GetTranscriptContent downloads a transcript's content as WebVTT text.
	GetTranscriptContent(ctx context.Context, token, meetingID, transcriptID string) (string, error)

	// GetUserPhoto fetches a user's profile photo.
	GetUserPhoto(ctx context.Context, token, userIDOrEmail string) (*models.UserPhoto, error)
}
