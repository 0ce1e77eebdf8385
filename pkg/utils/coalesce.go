// Copyright The Teams Assist Authors.
// SPDX-License-Identifier: MIT

package utils

// CoalesceString returns the first non-empty string from the given arguments.
func CoalesceString(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
