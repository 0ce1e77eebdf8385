// Copyright The Teams Assist Authors.
// SPDX-License-Identifier: MIT

package graph

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/teamsassist/meeting-assist-service/internal/domain/models"
)

// calendarViewSelect is the field projection requested for calendar events.
var calendarViewSelect = strings.Join([]string{
	"id",
	"subject",
	"start",
	"end",
	"isCancelled",
	"isOnlineMeeting",
	"onlineMeetingProvider",
	"onlineMeeting",
	"onlineMeetingUrl",
	"organizer",
	"attendees",
	"location",
	"locations",
	"bodyPreview",
	"importance",
	"sensitivity",
	"showAs",
	"type",
	"seriesMasterId",
	"iCalUId",
	"recurrence",
	"createdDateTime",
	"lastModifiedDateTime",
	"webLink",
}, ",")

// escapeODataString escapes a value for embedding in an OData string
// literal: single quotes are doubled.
func escapeODataString(value string) string {
	return strings.ReplaceAll(value, "'", "''")
}

// BuildCalendarViewPath builds the calendarView request path for a window,
// ordered by start time, with the given upstream page size.
func BuildCalendarViewPath(startISO, endISO string, top int) string {
	query := url.Values{}
	query.Set("startDateTime", startISO)
	query.Set("endDateTime", endISO)
	query.Set("$select", calendarViewSelect)
	query.Set("$orderby", "start/dateTime")
	query.Set("$top", fmt.Sprintf("%d", top))
	return "/me/calendarView?" + query.Encode()
}

// CalendarView fetches one page of the user's calendar view. The urlOrPath
// is either a BuildCalendarViewPath result or a continuation link from a
// previous page.
func (c *Client) CalendarView(ctx context.Context, token, urlOrPath string) (*models.EventPage, error) {
	var page models.EventPage
	if err := c.GetJSON(ctx, token, urlOrPath, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// GetEventRecurrence fetches the recurrence pattern of a single event,
// typically a series master. Returns nil when the event has none.
func (c *Client) GetEventRecurrence(ctx context.Context, token, eventID string) (*models.Recurrence, error) {
	path := fmt.Sprintf("/me/events/%s?$select=id,recurrence", url.PathEscape(eventID))

	var event models.CalendarEvent
	if err := c.GetJSON(ctx, token, path, &event); err != nil {
		return nil, err
	}
	return event.Recurrence, nil
}

// FindSeriesMasterRecurrence finds the series master sharing the given
// iCalUId and returns its recurrence. Returns nil when no master matches.
func (c *Client) FindSeriesMasterRecurrence(ctx context.Context, token, icalUID string) (*models.Recurrence, error) {
	filter := fmt.Sprintf("iCalUId eq '%s' and type eq 'seriesMaster'", escapeODataString(icalUID))

	query := url.Values{}
	query.Set("$filter", filter)
	query.Set("$select", "id,recurrence")
	query.Set("$top", "1")

	var page models.EventPage
	if err := c.GetJSON(ctx, token, "/me/events?"+query.Encode(), &page); err != nil {
		return nil, err
	}
	if len(page.Value) == 0 {
		return nil, nil
	}
	return page.Value[0].Recurrence, nil
}

// GetEventInvitees fetches the organizer and attendee list of an event.
func (c *Client) GetEventInvitees(ctx context.Context, token, eventID string) (*models.EventInvitees, error) {
	path := fmt.Sprintf("/me/events/%s?$select=organizer,attendees", url.PathEscape(eventID))

	var invitees models.EventInvitees
	if err := c.GetJSON(ctx, token, path, &invitees); err != nil {
		return nil, err
	}
	return &invitees, nil
}
