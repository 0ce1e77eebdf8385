// Copyright The Teams Assist Authors.
// SPDX-License-Identifier: MIT

// Package utils provides small helpers shared across the service.
package utils

import "time"

// TimePtr converts a time.Time to a pointer to a time.Time.
func TimePtr(t time.Time) *time.Time {
	return &t
}
