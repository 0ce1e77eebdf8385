// Copyright The Teams Assist Authors.
// SPDX-License-Identifier: MIT

package domain

import (
	"context"

	"github.com/teamsassist/meeting-assist-service/internal/domain/models"
)

// TokenValidator validates the Teams SSO token presented by the tab
// application and returns its claims.
type TokenValidator interface {
	ValidateTeamsToken(ctx context.Context, token string) (*models.TeamsClaims, error)
}

// TokenProvider exchanges a validated Teams SSO token for a Microsoft Graph
// bearer token (on-behalf-of flow). Implementations may cache tokens; a
// cached token is always returned before its expiry.
type TokenProvider interface {
	GraphToken(ctx context.Context, teamsToken string) (string, error)
}
