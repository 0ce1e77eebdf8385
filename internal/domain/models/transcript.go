// Copyright The Teams Assist Authors.
// SPDX-License-Identifier: MIT

package models

// TranscriptMessage is a single speaker-attributed chat message parsed from
// a WebVTT transcript. Time is the cue start formatted as mm:ss with hours
// folded into the minutes.
type TranscriptMessage struct {
	Speaker string `json:"speaker"`
	Text    string `json:"text"`
	Time    string `json:"time"`
}

// TranscriptInfo identifies one transcript of an online meeting.
type TranscriptInfo struct {
	ID              string `json:"id"`
	CreatedDateTime string `json:"createdDateTime,omitempty"`
}

// Transcript is a fetched meeting transcript: the raw WebVTT content plus
// the parsed chat messages.
type Transcript struct {
	MeetingID    string              `json:"meetingId"`
	TranscriptID string              `json:"transcriptId"`
	ContentType  string              `json:"contentType"`
	VTT          string              `json:"vtt"`
	Messages     []TranscriptMessage `json:"messages"`
}

// UserPhoto is a user's profile photo as returned by Graph.
type UserPhoto struct {
	ContentType string `json:"contentType"`
	Data        []byte `json:"data"`
}
