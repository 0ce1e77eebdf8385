// Copyright The Teams Assist Authors.
// SPDX-License-Identifier: MIT

// Package vtt parses WebVTT meeting transcripts into speaker-attributed
// chat messages. Parsing is pure: the same input always yields the same
// output.
package vtt

import (
	"fmt"
	"html"
	"regexp"
	"strconv"
	"strings"

	"github.com/teamsassist/meeting-assist-service/internal/domain/models"
)

const unknownSpeaker = "Unknown"

var (
	headerPattern = regexp.MustCompile(`^WEBVTT[^\n]*\n+`)

	// cueTimingPattern matches "HH:MM:SS.mmm --> HH:MM:SS.mmm" and the
	// MM:SS.mmm short form.
	cueTimingPattern = regexp.MustCompile(`^(?:(\d{1,2}):)?(\d{1,2}):(\d{2})(?:\.\d+)?\s+-->\s+`)

	// voiceTagPattern matches "<v Speaker>text</v>" cue payload lines.
	voiceTagPattern = regexp.MustCompile(`^<v\s*([^>]*)>(.*?)(?:</v>)?\s*$`)

	// speakerLinePattern is the "Speaker: text" fallback for transcripts
	// without voice tags.
	speakerLinePattern = regexp.MustCompile(`^([^:<][^:]*):\s+(.*)$`)

	inlineTagPattern = regexp.MustCompile(`<[^>]*>`)
)

// StripHeader removes the WEBVTT header line, normalizing line endings
// first.
func StripHeader(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return headerPattern.ReplaceAllString(text, "")
}

// Parse converts WebVTT transcript text into ordered chat messages. Cue
// timing lines set the current time; voice-tagged and "Speaker: text"
// payload lines start messages; anything else continues the previous
// message. Consecutive messages from the same speaker are merged, keeping
// the earliest cue time.
func Parse(text string) []models.TranscriptMessage {
	body := StripHeader(text)

	var raw []models.TranscriptMessage
	currentTime := "00:00"
	lastSpeaker := ""

	for _, line := range strings.Split(body, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if m := cueTimingPattern.FindStringSubmatch(line); m != nil {
			currentTime = formatCueTime(m[1], m[2], m[3])
			continue
		}

		if m := voiceTagPattern.FindStringSubmatch(line); m != nil {
			speaker := strings.TrimSpace(m[1])
			if speaker == "" {
				speaker = lastSpeaker
			}
			if speaker == "" {
				speaker = unknownSpeaker
			}
			lastSpeaker = speaker
			raw = append(raw, models.TranscriptMessage{
				Speaker: speaker,
				Text:    cleanCueText(m[2]),
				Time:    currentTime,
			})
			continue
		}

		if m := speakerLinePattern.FindStringSubmatch(line); m != nil {
			speaker := strings.TrimSpace(m[1])
			lastSpeaker = speaker
			raw = append(raw, models.TranscriptMessage{
				Speaker: speaker,
				Text:    cleanCueText(m[2]),
				Time:    currentTime,
			})
			continue
		}

		// Continuation of the previous caption.
		if len(raw) > 0 {
			raw[len(raw)-1].Text += "\n" + cleanCueText(line)
			continue
		}
		raw = append(raw, models.TranscriptMessage{
			Speaker: unknownSpeaker,
			Text:    cleanCueText(line),
			Time:    currentTime,
		})
	}

	return mergeConsecutive(raw)
}

// formatCueTime folds hours into minutes and drops sub-second precision,
// producing "mm:ss".
func formatCueTime(hours, minutes, seconds string) string {
	h := 0
	if hours != "" {
		h, _ = strconv.Atoi(hours)
	}
	m, _ := strconv.Atoi(minutes)
	s, _ := strconv.Atoi(seconds)
	return fmt.Sprintf("%02d:%02d", h*60+m, s)
}

// cleanCueText strips inline markup and decodes HTML entities.
func cleanCueText(text string) string {
	text = inlineTagPattern.ReplaceAllString(text, "")
	return strings.TrimSpace(html.UnescapeString(text))
}

// mergeConsecutive joins adjacent messages from the same speaker, keeping
// the earliest time. Order is preserved.
func mergeConsecutive(messages []models.TranscriptMessage) []models.TranscriptMessage {
	if len(messages) == 0 {
		return []models.TranscriptMessage{}
	}

	merged := make([]models.TranscriptMessage, 0, len(messages))
	for _, msg := range messages {
		if len(merged) > 0 && merged[len(merged)-1].Speaker == msg.Speaker {
			merged[len(merged)-1].Text += "\n" + msg.Text
			continue
		}
		merged = append(merged, msg)
	}
	return merged
}
