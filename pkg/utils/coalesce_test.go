// Copyright The Teams Assist Authors.
// SPDX-License-Identifier: MIT

package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCoalesceString(t *testing.T) {
	tests := []struct {
		name     string
		values   []string
		expected string
	}{
		{
			name:     "first non-empty wins",
			values:   []string{"", "second", "third"},
			expected: "second",
		},
		{
			name:     "all empty",
			values:   []string{"", "", ""},
			expected: "",
		},
		{
			name:     "no arguments",
			values:   nil,
			expected: "",
		},
		{
			name:     "first already set",
			values:   []string{"first", "second"},
			expected: "first",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CoalesceString(tt.values...))
		})
	}
}
