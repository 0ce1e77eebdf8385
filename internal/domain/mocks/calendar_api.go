// Copyright The Teams Assist Authors.
// SPDX-License-Identifier: MIT

// Package mocks provides testify mocks for the domain interfaces.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/teamsassist/meeting-assist-service/internal/domain/models"
)

// MockCalendarAPI implements CalendarAPI for testing
type MockCalendarAPI struct {
	mock.Mock
}

func (m *MockCalendarAPI) CalendarView(ctx context.Context, token, urlOrPath string) (*models.EventPage, error) {
	args := m.Called(ctx, token, urlOrPath)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.EventPage), args.Error(1)
}

func (m *MockCalendarAPI) GetEventRecurrence(ctx context.Context, token, eventID string) (*models.Recurrence, error) {
	args := m.Called(ctx, token, eventID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Recurrence), args.Error(1)
}

func (m *MockCalendarAPI) FindSeriesMasterRecurrence(ctx context.Context, token, icalUID string) (*models.Recurrence, error) {
	args := m.Called(ctx, token, icalUID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Recurrence), args.Error(1)
}

func (m *MockCalendarAPI) GetEventInvitees(ctx context.Context, token, eventID string) (*models.EventInvitees, error) {
	args := m.Called(ctx, token, eventID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.EventInvitees), args.Error(1)
}

func (m *MockCalendarAPI) GetMe(ctx context.Context, token string) (map[string]any, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]any), args.Error(1)
}

func (m *MockCalendarAPI) FindOnlineMeetingID(ctx context.Context, token, joinURL string) (string, error) {
	args := m.Called(ctx, token, joinURL)
	return args.String(0), args.Error(1)
}

func (m *MockCalendarAPI) ListTranscripts(ctx context.Context, token, meetingID string) ([]models.TranscriptInfo, error) {
	args := m.Called(ctx, token, meetingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.TranscriptInfo), args.Error(1)
}

func (m *MockCalendarAPI) GetTranscriptContent(ctx context.Context, token, meetingID, transcriptID string) (string, error) {
	args := m.Called(ctx, token, meetingID, transcriptID)
	return args.String(0), args.Error(1)
}

func (m *MockCalendarAPI) GetUserPhoto(ctx context.Context, token, userIDOrEmail string) (*models.UserPhoto, error) {
	args := m.Called(ctx, token, userIDOrEmail)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.UserPhoto), args.Error(1)
}
