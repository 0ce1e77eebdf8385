// Copyright The Teams Assist Authors.
// SPDX-License-Identifier: MIT

// Package service implements the application services of the meeting assist
// backend: token validation and exchange, meeting collection, transcript
// retrieval, and summarization.
package service

type Service interface {
	ServiceReady() bool
}
