// Copyright The Teams Assist Authors.
// SPDX-License-Identifier: MIT

package models

// ActionItem is a task extracted from a meeting transcript. Owner and
// DueDate are null when the transcript does not name them.
type ActionItem struct {
	Task    string  `json:"task"`
	Owner   *string `json:"owner"`
	DueDate *string `json:"dueDate"`
}

// MeetingSummary is the structured summary produced by the model.
type MeetingSummary struct {
	Purpose         string       `json:"purpose"`
	Takeaways       []string     `json:"takeaways"`
	DetailedSummary string       `json:"detailedSummary"`
	ActionItems     []ActionItem `json:"actionItems"`
}
