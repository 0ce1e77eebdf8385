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
)

func TestSummarize(t *testing.T) {
	ctx := context.Background()

	t.Run("strips the header before summarizing", func(t *testing.T) {
		summarizer := &mocks.MockSummarizer{}
		summarizer.On("Summarize", mock.Anything, "Planning", "Alice: hello").
			Return(&models.MeetingSummary{Purpose: "sync"}, nil).Once()

		svc := NewSummaryService(summarizer)

		summary, err := svc.Summarize(ctx, "Planning", "WEBVTT\n\nAlice: hello")
		require.NoError(t, err)
		assert.Equal(t, "sync", summary.Purpose)
		summarizer.AssertExpectations(t)
	})

	t.Run("missing transcript is rejected before the summarizer runs", func(t *testing.T) {
		summarizer := &mocks.MockSummarizer{}
		svc := NewSummaryService(summarizer)

		_, err := svc.Summarize(ctx, "Planning", "")
		require.Error(t, err)
		assert.Equal(t, domain.ErrorTypeValidation, domain.GetErrorType(err))
		summarizer.AssertNotCalled(t, "Summarize", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("summarizer failure surfaces unchanged", func(t *testing.T) {
		summarizer := &mocks.MockSummarizer{}
		summarizer.On("Summarize", mock.Anything, mock.Anything, mock.Anything).
			Return(nil, domain.NewValidationError("model did not return JSON")).Once()

		svc := NewSummaryService(summarizer)

		summary, err := svc.Summarize(ctx, "t", "transcript text")
		require.Error(t, err)
		assert.Nil(t, summary)
	})
}
