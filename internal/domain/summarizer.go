// Copyright The Teams Assist Authors.
// SPDX-License-Identifier: MIT

package domain

import (
	"context"

	"github.com/teamsassist/meeting-assist-service/internal/domain/models"
)

// Summarizer produces a structured summary of a meeting transcript. The
// transcript is plain text with the WebVTT header already stripped.
// Implementations must return an error when the model's reply cannot be
// parsed into the expected structure; no partial summary is fabricated.
type Summarizer interface {
	Summarize(ctx context.Context, title, transcript string) (*models.MeetingSummary, error)
}
