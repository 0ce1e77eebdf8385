// Copyright The Teams Assist Authors.
// SPDX-License-Identifier: MIT

package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/teamsassist/meeting-assist-service/internal/domain"
	"github.com/teamsassist/meeting-assist-service/internal/domain/models"
	"github.com/teamsassist/meeting-assist-service/internal/vtt"
	"github.com/teamsassist/meeting-assist-service/pkg/cache"
)

const (
	// meetingIDCacheTTL bounds how long a join-URL-to-meeting-ID mapping
	// is reused. The mapping is stable, so a stale entry only costs one
	// extra 404 after a meeting is deleted.
	meetingIDCacheTTL = 15 * time.Minute

	meetingIDCachePrefix = "meeting_id."
)

// TranscriptService fetches and parses meeting transcripts.
type TranscriptService struct {
	Auth     *AuthService
	Calendar domain.CalendarAPI

	meetingIDs *cache.Cache
}

// NewTranscriptService creates a new TranscriptService.
func NewTranscriptService(auth *AuthService, calendar domain.CalendarAPI) *TranscriptService {
	return &TranscriptService{
		Auth:       auth,
		Calendar:   calendar,
		meetingIDs: cache.New(meetingIDCacheTTL),
	}
}

// ServiceReady checks if the service is ready for use.
func (s *TranscriptService) ServiceReady() bool {
	return s.Auth != nil && s.Calendar != nil
}

// GetTranscript resolves a meeting by join URL, picks its most recent
// transcript, downloads the WebVTT content, and parses it into chat
// messages. Missing meeting or transcripts are not-found conditions, not
// transport failures: the caller can retry later.
func (s *TranscriptService) GetTranscript(ctx context.Context, teamsToken, joinWebURL string) (*models.Transcript, error) {
	if !s.ServiceReady() {
		return nil, domain.NewUnavailableError("transcript service not ready")
	}
	if joinWebURL == "" {
		return nil, domain.NewValidationError("missing joinWebUrl")
	}

	graphToken, err := s.Auth.GraphToken(ctx, teamsToken)
	if err != nil {
		return nil, err
	}

	meetingID, err := s.resolveMeetingID(ctx, graphToken, joinWebURL)
	if err != nil {
		return nil, err
	}

	transcripts, err := s.Calendar.ListTranscripts(ctx, graphToken, meetingID)
	if err != nil {
		return nil, mapGraphError("transcript list fetch failed", err)
	}
	if len(transcripts) == 0 {
		return nil, domain.NewNotFoundError("no transcripts found for this meeting")
	}

	latest := transcripts[len(transcripts)-1]

	content, err := s.Calendar.GetTranscriptContent(ctx, graphToken, meetingID, latest.ID)
	if err != nil {
		return nil, mapGraphError("transcript content fetch failed", err)
	}

	messages := vtt.Parse(content)
	slog.DebugContext(ctx, "transcript parsed",
		"meeting_id", meetingID,
		"transcript_id", latest.ID,
		"message_count", len(messages))

	return &models.Transcript{
		MeetingID:    meetingID,
		TranscriptID: latest.ID,
		ContentType:  "text/vtt",
		VTT:          content,
		Messages:     messages,
	}, nil
}

// resolveMeetingID maps a join URL to an online meeting ID, caching hits.
func (s *TranscriptService) resolveMeetingID(ctx context.Context, graphToken, joinWebURL string) (string, error) {
	key := meetingIDCachePrefix + joinWebURL
	if cached, ok := s.meetingIDs.Get(key); ok {
		return cached.(string), nil
	}

	meetingID, err := s.Calendar.FindOnlineMeetingID(ctx, graphToken, joinWebURL)
	if err != nil {
		return "", mapGraphError("online meeting lookup failed", err)
	}
	if meetingID == "" {
		return "", domain.NewNotFoundError("online meeting not found for join URL")
	}

	s.meetingIDs.Put(key, meetingID, meetingIDCacheTTL)
	return meetingID, nil
}
