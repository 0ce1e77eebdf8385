// Copyright The Teams Assist Authors.
// SPDX-License-Identifier: MIT

package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/teamsassist/meeting-assist-service/internal/domain"
	"github.com/teamsassist/meeting-assist-service/internal/domain/mocks"
	"github.com/teamsassist/meeting-assist-service/internal/domain/models"
	"github.com/teamsassist/meeting-assist-service/internal/infrastructure/graph"
)

func newTestUserService(calendar *mocks.MockCalendarAPI) *UserService {
	validator := &mocks.MockTokenValidator{}
	validator.On("ValidateTeamsToken", mock.Anything, mock.Anything).
		Return(&models.TeamsClaims{TID: "tenant-1"}, nil)

	provider := &mocks.MockTokenProvider{}
	provider.On("GraphToken", mock.Anything, mock.Anything).Return("graph-token", nil)

	return NewUserService(NewAuthService(validator, provider), calendar)
}

func TestGetMe(t *testing.T) {
	calendar := &mocks.MockCalendarAPI{}
	calendar.On("GetMe", mock.Anything, "graph-token").
		Return(map[string]any{"displayName": "Alice"}, nil).Once()

	svc := newTestUserService(calendar)

	profile, err := svc.GetMe(context.Background(), "teams-token")
	require.NoError(t, err)
	assert.Equal(t, "Alice", profile["displayName"])
	calendar.AssertExpectations(t)
}

func TestGetPhoto(t *testing.T) {
	ctx := context.Background()

	t.Run("returns photo bytes", func(t *testing.T) {
		calendar := &mocks.MockCalendarAPI{}
		calendar.On("GetUserPhoto", mock.Anything, "graph-token", "alice@example.com").
			Return(&models.UserPhoto{ContentType: "image/png", Data: []byte{1, 2, 3}}, nil).Once()

		svc := newTestUserService(calendar)

		photo, err := svc.GetPhoto(ctx, "teams-token", "alice@example.com")
		require.NoError(t, err)
		assert.Equal(t, "image/png", photo.ContentType)
		assert.Equal(t, []byte{1, 2, 3}, photo.Data)
	})

	t.Run("404 from upstream maps to not found", func(t *testing.T) {
		calendar := &mocks.MockCalendarAPI{}
		calendar.On("GetUserPhoto", mock.Anything, "graph-token", "alice@example.com").
			Return(nil, &graph.APIError{StatusCode: 404, Body: "no photo"}).Once()

		svc := newTestUserService(calendar)

		_, err := svc.GetPhoto(ctx, "teams-token", "alice@example.com")
		require.Error(t, err)
		assert.Equal(t, domain.ErrorTypeNotFound, domain.GetErrorType(err))
	})

	t.Run("missing identifier", func(t *testing.T) {
		svc := newTestUserService(&mocks.MockCalendarAPI{})

		_, err := svc.GetPhoto(ctx, "teams-token", "")
		require.Error(t, err)
		assert.Equal(t, domain.ErrorTypeValidation, domain.GetErrorType(err))
	})
}
