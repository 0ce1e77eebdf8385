// Copyright The Teams Assist Authors.
// SPDX-License-Identifier: MIT

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/teamsassist/meeting-assist-service/internal/domain/models"
)

// MockSummarizer implements Summarizer for testing
type MockSummarizer struct {
	mock.Mock
}

func (m *MockSummarizer) Summarize(ctx context.Context, title, transcript string) (*models.MeetingSummary, error) {
	args := m.Called(ctx, title, transcript)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.MeetingSummary), args.Error(1)
}
