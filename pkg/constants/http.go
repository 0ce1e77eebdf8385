// Copyright The Teams Assist Authors.
// SPDX-License-Identifier: MIT

// Package constants holds shared HTTP header and context-key constants.
package constants

// RequestIDHeader is the header name for the request ID
const RequestIDHeader string = "X-REQUEST-ID"

// contextRequestID is the type for the request ID context key
type contextRequestID string

// RequestIDContextID is the context ID for the request ID
const RequestIDContextID contextRequestID = "X-REQUEST-ID"
