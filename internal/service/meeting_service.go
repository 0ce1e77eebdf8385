// Copyright The Teams Assist Authors.
// SPDX-License-Identifier: MIT

package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/teamsassist/meeting-assist-service/internal/domain"
	"github.com/teamsassist/meeting-assist-service/internal/domain/models"
	"github.com/teamsassist/meeting-assist-service/internal/infrastructure/graph"
)

const (
	// DefaultPageSize is the page size used when the caller does not ask
	// for one.
	DefaultPageSize = 20
	// MaxPageSize caps the page size a caller may request.
	MaxPageSize = 200
	// maxRawPagesPerCall bounds how many upstream pages one call may read
	// while filling a filtered page. Hitting the cap yields a short page
	// with a non-empty cursor.
	maxRawPagesPerCall = 6
)

// ListMeetingsRequest is a request for one page of normalized meetings.
type ListMeetingsRequest struct {
	StartISO string
	EndISO   string
	// Status filters by meeting status after normalization. Empty means no
	// filter.
	Status string
	// Cursor is the NextCursor of a previous page.
	Cursor   string
	PageSize int
}

// MeetingService lists and classifies the user's calendar meetings.
type MeetingService struct {
	Auth        *AuthService
	Calendar    domain.CalendarAPI
	Occurrences *OccurrenceService
}

// NewMeetingService creates a new MeetingService.
func NewMeetingService(auth *AuthService, calendar domain.CalendarAPI, occurrences *OccurrenceService) *MeetingService {
	return &MeetingService{
		Auth:        auth,
		Calendar:    calendar,
		Occurrences: occurrences,
	}
}

// ServiceReady checks if the service is ready for use.
func (s *MeetingService) ServiceReady() bool {
	return s.Auth != nil && s.Calendar != nil && s.Occurrences != nil
}

func validStatus(status string) bool {
	switch models.MeetingStatus(status) {
	case models.MeetingStatusUpcoming, models.MeetingStatusCompleted, models.MeetingStatusSkipped:
		return true
	}
	return false
}

func clampPageSize(pageSize int) int {
	if pageSize <= 0 {
		return DefaultPageSize
	}
	if pageSize > MaxPageSize {
		return MaxPageSize
	}
	return pageSize
}

// ListMeetings returns one page of normalized meetings in the requested
// window, optionally filtered by status. The status filter runs after
// normalization, so filling a page may consume several upstream pages; the
// raw-page cap keeps latency bounded and a short page with a non-empty
// cursor tells the caller to continue.
func (s *MeetingService) ListMeetings(ctx context.Context, teamsToken string, req ListMeetingsRequest) (*models.MeetingPage, error) {
	if !s.ServiceReady() {
		return nil, domain.NewUnavailableError("meeting service not ready")
	}
	if req.StartISO == "" || req.EndISO == "" {
		return nil, domain.NewValidationError("missing startISO/endISO")
	}
	if req.Status != "" && !validStatus(req.Status) {
		return nil, domain.NewValidationError("invalid status filter")
	}

	graphToken, err := s.Auth.GraphToken(ctx, teamsToken)
	if err != nil {
		return nil, err
	}

	top := clampPageSize(req.PageSize)
	now := time.Now().UTC()
	resolver := newRecurrenceResolver(s.Calendar, graphToken)

	nextURL := req.Cursor
	if nextURL == "" {
		nextURL = graph.BuildCalendarViewPath(req.StartISO, req.EndISO, top)
	}

	collected := make([]models.Meeting, 0, top)
	nextCursor := ""
	pagesFetched := 0

	for nextURL != "" && len(collected) < top && pagesFetched < maxRawPagesPerCall {
		pagesFetched++

		page, err := s.Calendar.CalendarView(ctx, graphToken, nextURL)
		if err != nil {
			return nil, mapGraphError("calendar view fetch failed", err)
		}

		normalized := make([]models.Meeting, 0, len(page.Value))
		for i := range page.Value {
			normalized = append(normalized, models.MeetingFromEvent(&page.Value[i], now))
		}

		resolver.resolve(ctx, normalized)
		s.attachNextOccurrences(normalized, now)

		for i := range normalized {
			if req.Status != "" && string(normalized[i].Status) != req.Status {
				continue
			}
			collected = append(collected, normalized[i])
			if len(collected) >= top {
				break
			}
		}

		nextURL = page.NextLink
		nextCursor = page.NextLink
	}

	slog.DebugContext(ctx, "meeting page assembled",
		"count", len(collected),
		"pages_fetched", pagesFetched,
		"has_more", nextCursor != "")

	return &models.MeetingPage{
		Meetings:   collected,
		NextCursor: nextCursor,
	}, nil
}

// attachNextOccurrences fills NextOccurrence for recurring meetings that
// are not completed.
func (s *MeetingService) attachNextOccurrences(meetings []models.Meeting, now time.Time) {
	for i := range meetings {
		m := &meetings[i]
		if m.Recurrence == nil || m.Status == models.MeetingStatusCompleted || m.StartUTC == nil {
			continue
		}
		m.NextOccurrence = s.Occurrences.NextOccurrence(m.Recurrence, *m.StartUTC, now)
	}
}

// GetInvitees returns an event's invitees: the organizer first, then the
// attendees, deduplicated by lowercased email.
func (s *MeetingService) GetInvitees(ctx context.Context, teamsToken, eventID string) ([]models.Invitee, error) {
	if !s.ServiceReady() {
		return nil, domain.NewUnavailableError("meeting service not ready")
	}
	if eventID == "" {
		return nil, domain.NewValidationError("missing eventId")
	}

	graphToken, err := s.Auth.GraphToken(ctx, teamsToken)
	if err != nil {
		return nil, err
	}

	event, err := s.Calendar.GetEventInvitees(ctx, graphToken, eventID)
	if err != nil {
		return nil, mapGraphError("invitee fetch failed", err)
	}

	invitees := make([]models.Invitee, 0, len(event.Attendees)+1)
	seen := make(map[string]bool)

	if event.Organizer != nil && event.Organizer.EmailAddress != nil {
		organizer := models.NormalizeOrganizer(event.Organizer)
		if organizer.Name == "" {
			organizer.Name = "Organizer"
		}
		invitees = append(invitees, models.Invitee{
			Name:  organizer.Name,
			Email: organizer.Email,
			Role:  "organizer",
		})
		if organizer.Email != "" {
			seen[organizer.Email] = true
		}
	}

	for _, attendee := range models.NormalizeAttendees(event.Attendees) {
		if attendee.Email == "" || seen[attendee.Email] {
			continue
		}
		seen[attendee.Email] = true

		name := attendee.Name
		if name == "" {
			name = attendee.Email
		}
		invitees = append(invitees, models.Invitee{
			Name:     name,
			Email:    attendee.Email,
			Role:     attendee.Role,
			Response: attendee.Response,
		})
	}

	return invitees, nil
}

// mapGraphError converts a Graph client error into a domain error,
// preserving the upstream status code. Errors already classified pass
// through untouched.
func mapGraphError(message string, err error) error {
	var domainErr *domain.DomainError
	if errors.As(err, &domainErr) {
		return err
	}
	var apiErr *graph.APIError
	if errors.As(err, &apiErr) {
		return domain.NewUpstreamError(message, apiErr.StatusCode, err)
	}
	return domain.NewUnavailableError(message, err)
}
