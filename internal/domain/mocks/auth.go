// Copyright The Teams Assist Authors.
// SPDX-License-Identifier: MIT

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/teamsassist/meeting-assist-service/internal/domain/models"
)

// MockTokenValidator implements TokenValidator for testing
type MockTokenValidator struct {
	mock.Mock
}

func (m *MockTokenValidator) ValidateTeamsToken(ctx context.Context, token string) (*models.TeamsClaims, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.TeamsClaims), args.Error(1)
}

// MockTokenProvider implements TokenProvider for testing
type MockTokenProvider struct {
	mock.Mock
}

func (m *MockTokenProvider) GraphToken(ctx context.Context, teamsToken string) (string, error) {
	args := m.Called(ctx, teamsToken)
	return args.String(0), args.Error(1)
}
