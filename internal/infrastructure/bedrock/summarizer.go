// Copyright The Teams Assist Authors.
// SPDX-License-Identifier: MIT

// Package bedrock implements the meeting summarizer on top of Amazon
// Bedrock's Anthropic messages API.
package bedrock

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"

	"github.com/teamsassist/meeting-assist-service/internal/domain"
	"github.com/teamsassist/meeting-assist-service/internal/domain/models"
	"github.com/teamsassist/meeting-assist-service/internal/logging"
)

const (
	anthropicVersion = "bedrock-2023-05-31"
	maxTokens        = 900
	temperature      = 0.2

	defaultTitle = "Meeting"
)

// invokeAPI is the slice of the Bedrock runtime client the summarizer uses.
type invokeAPI interface {
	InvokeModel(ctx context.Context, params *bedrockruntime.InvokeModelInput, optFns ...func(*bedrockruntime.Options)) (*bedrockruntime.InvokeModelOutput, error)
}

// Config holds the configuration for the Bedrock summarizer
type Config struct {
	Region  string
	ModelID string
}

// Summarizer produces structured meeting summaries via Bedrock.
type Summarizer struct {
	client  invokeAPI
	modelID string
}

// Ensure that Summarizer implements domain.Summarizer
var _ domain.Summarizer = (*Summarizer)(nil)

// NewSummarizer creates a Bedrock-backed summarizer using the default AWS
// credential chain.
func NewSummarizer(ctx context.Context, config Config) (*Summarizer, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(config.Region))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}

	return &Summarizer{
		client:  bedrockruntime.NewFromConfig(awsCfg),
		modelID: config.ModelID,
	}, nil
}

// anthropicRequest is the Bedrock Anthropic messages API request body.
type anthropicRequest struct {
	AnthropicVersion string             `json:"anthropic_version"`
	MaxTokens        int                `json:"max_tokens"`
	Temperature      float64            `json:"temperature"`
	Messages         []anthropicMessage `json:"messages"`
}

type anthropicMessage struct {
	Role    string             `json:"role"`
	Content []anthropicContent `json:"content"`
}

type anthropicContent struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type anthropicResponse struct {
	Content []anthropicContent `json:"content"`
}

// Summarize sends the transcript to the model and parses the strict-JSON
// reply. An unparseable reply is a hard failure; no partial summary is
// fabricated.
func (s *Summarizer) Summarize(ctx context.Context, title, transcript string) (*models.MeetingSummary, error) {
	body, err := json.Marshal(anthropicRequest{
		AnthropicVersion: anthropicVersion,
		MaxTokens:        maxTokens,
		Temperature:      temperature,
		Messages: []anthropicMessage{
			{
				Role:    "user",
				Content: []anthropicContent{{Type: "text", Text: buildPrompt(title, transcript)}},
			},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal model request: %w", err)
	}

	output, err := s.client.InvokeModel(ctx, &bedrockruntime.InvokeModelInput{
		ModelId:     aws.String(s.modelID),
		ContentType: aws.String("application/json"),
		Accept:      aws.String("application/json"),
		Body:        body,
	})
	if err != nil {
		slog.ErrorContext(ctx, "model invocation failed",
			"model_id", s.modelID,
			logging.ErrKey, err)
		return nil, domain.NewUpstreamError("model invocation failed", 0, err)
	}

	var resp anthropicResponse
	if err := json.Unmarshal(output.Body, &resp); err != nil {
		return nil, fmt.Errorf("failed to decode model response: %w", err)
	}
	if len(resp.Content) == 0 {
		return nil, domain.NewValidationError("model returned no content")
	}

	return parseSummary(resp.Content[0].Text)
}

// buildPrompt assembles the strict-JSON summary instruction.
func buildPrompt(title, transcript string) string {
	if title == "" {
		title = defaultTitle
	}

	return fmt.Sprintf(`You are an assistant that writes clear meeting summaries.

Meeting Title: %s

Transcript:
"""%s"""

Return STRICT JSON ONLY in this exact shape:
{
  "purpose": "string",
  "takeaways": ["string", "string"],
  "detailedSummary": "string",
  "actionItems": [
    { "task": "string", "owner": "string|null", "dueDate": "string|null" }
  ]
}

Rules:
- Keep purpose to 1-2 sentences.
- Takeaways: 3-7 bullets.
- Detailed summary: 1-3 short paragraphs.
- Action items: only if present; otherwise empty array.
- If owner/dueDate not known, use null.`, title, transcript)
}

var (
	fenceOpenPattern  = regexp.MustCompile(`(?i)^` + "```" + `(?:json)?\s*`)
	fenceClosePattern = regexp.MustCompile(`\s*` + "```" + `$`)
	jsonBlockPattern  = regexp.MustCompile(`(?s)\{.*\}`)
)

// parseSummary parses the model's reply, tolerating a fenced code block
// wrapper and leading prose around the JSON object.
func parseSummary(text string) (*models.MeetingSummary, error) {
	cleaned := strings.TrimSpace(text)
	cleaned = fenceOpenPattern.ReplaceAllString(cleaned, "")
	cleaned = fenceClosePattern.ReplaceAllString(cleaned, "")
	cleaned = strings.TrimSpace(cleaned)

	var summary models.MeetingSummary
	if err := json.Unmarshal([]byte(cleaned), &summary); err == nil {
		return &summary, nil
	}

	block := jsonBlockPattern.FindString(cleaned)
	if block == "" {
		return nil, domain.NewValidationError("model did not return JSON")
	}
	if err := json.Unmarshal([]byte(block), &summary); err != nil {
		return nil, domain.NewValidationError("model did not return JSON", err)
	}
	return &summary, nil
}
