// Copyright The Teams Assist Authors.
// SPDX-License-Identifier: MIT

package middleware

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/teamsassist/meeting-assist-service/internal/logging"
	"github.com/teamsassist/meeting-assist-service/pkg/constants"
)

// RequestIDMiddleware creates a middleware that ensures every request has a
// request ID. An ID provided by the caller via the X-REQUEST-ID header is
// kept; otherwise a new one is generated. The ID is stored in the request
// context, added to the log context, and echoed on the response.
func RequestIDMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestID := r.Header.Get(constants.RequestIDHeader)
			if requestID == "" {
				requestID = uuid.New().String()
			}

			ctx := context.WithValue(r.Context(), constants.RequestIDContextID, requestID)
			ctx = logging.AppendCtx(ctx, slog.String("request_id", requestID))

			w.Header().Set(constants.RequestIDHeader, requestID)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
