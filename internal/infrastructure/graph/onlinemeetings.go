// Copyright The Teams Assist Authors.
// SPDX-License-Identifier: MIT

package graph

import (
	"context"
	"fmt"
	"net/url"

	"github.com/teamsassist/meeting-assist-service/internal/domain/models"
)

// FindOnlineMeetingID resolves an online meeting ID from its join URL.
// Returns empty string when no meeting matches.
func (c *Client) FindOnlineMeetingID(ctx context.Context, token, joinURL string) (string, error) {
	filter := fmt.Sprintf("JoinWebUrl eq '%s'", escapeODataString(joinURL))

	query := url.Values{}
	query.Set("$filter", filter)

	var page struct {
		Value []struct {
			ID string `json:"id"`
		} `json:"value"`
	}
	if err := c.GetJSON(ctx, token, "/me/onlineMeetings?"+query.Encode(), &page); err != nil {
		return "", err
	}
	if len(page.Value) == 0 {
		return "", nil
	}
	return page.Value[0].ID, nil
}

// ListTranscripts lists the transcripts of an online meeting in the order
// Graph returns them (oldest first).
func (c *Client) ListTranscripts(ctx context.Context, token, meetingID string) ([]models.TranscriptInfo, error) {
	path := fmt.Sprintf("/me/onlineMeetings/%s/transcripts", url.PathEscape(meetingID))

	var page struct {
		Value []models.TranscriptInfo `json:"value"`
	}
	if err := c.GetJSON(ctx, token, path, &page); err != nil {
		return nil, err
	}
	return page.Value, nil
}

// GetTranscriptContent fetches a transcript's content as WebVTT text.
func (c *Client) GetTranscriptContent(ctx context.Context, token, meetingID, transcriptID string) (string, error) {
	path := fmt.Sprintf("/me/onlineMeetings/%s/transcripts/%s/content?$format=text/vtt",
		url.PathEscape(meetingID), url.PathEscape(transcriptID))
	return c.GetText(ctx, token, path, "text/vtt")
}
