// Copyright The Teams Assist Authors.
// SPDX-License-Identifier: MIT

package service

import (
	"context"

	"github.com/teamsassist/meeting-assist-service/internal/domain"
	"github.com/teamsassist/meeting-assist-service/internal/domain/models"
	"github.com/teamsassist/meeting-assist-service/internal/vtt"
)

// SummaryService produces structured summaries of meeting transcripts.
type SummaryService struct {
	Summarizer domain.Summarizer
}

// NewSummaryService creates a new SummaryService.
func NewSummaryService(summarizer domain.Summarizer) *SummaryService {
	return &SummaryService{
		Summarizer: summarizer,
	}
}

// ServiceReady checks if the service is ready for use.
func (s *SummaryService) ServiceReady() bool {
	return s.Summarizer != nil
}

// Summarize strips the WebVTT header from the transcript and asks the
// summarizer for a structured summary.
func (s *SummaryService) Summarize(ctx context.Context, title, transcriptVTT string) (*models.MeetingSummary, error) {
	if !s.ServiceReady() {
		return nil, domain.NewUnavailableError("summary service not ready")
	}
	if transcriptVTT == "" {
		return nil, domain.NewValidationError("missing transcriptVtt")
	}

	transcript := vtt.StripHeader(transcriptVTT)
	return s.Summarizer.Summarize(ctx, title, transcript)
}
