// Copyright The Teams Assist Authors.
// SPDX-License-Identifier: MIT

package service

import (
	"context"

	"github.com/teamsassist/meeting-assist-service/internal/domain"
	"github.com/teamsassist/meeting-assist-service/internal/domain/models"
)

// AuthService validates Teams SSO tokens and exchanges them for Graph
// tokens.
type AuthService struct {
	Validator domain.TokenValidator
	Tokens    domain.TokenProvider
}

// NewAuthService creates a new AuthService.
func NewAuthService(validator domain.TokenValidator, tokens domain.TokenProvider) *AuthService {
	return &AuthService{
		Validator: validator,
		Tokens:    tokens,
	}
}

// ServiceReady checks if the service is ready for use.
func (s *AuthService) ServiceReady() bool {
	return s.Validator != nil && s.Tokens != nil
}

// ValidateToken validates the Teams SSO token and returns its claims.
func (s *AuthService) ValidateToken(ctx context.Context, teamsToken string) (*models.TeamsClaims, error) {
	if s.Validator == nil {
		return nil, domain.NewUnavailableError("auth service not ready")
	}
	if teamsToken == "" {
		return nil, domain.NewValidationError("missing token")
	}
	return s.Validator.ValidateTeamsToken(ctx, teamsToken)
}

// GraphToken validates the Teams SSO token and exchanges it for a Graph
// bearer token.
func (s *AuthService) GraphToken(ctx context.Context, teamsToken string) (string, error) {
	if !s.ServiceReady() {
		return "", domain.NewUnavailableError("auth service not ready")
	}
	if _, err := s.ValidateToken(ctx, teamsToken); err != nil {
		return "", err
	}
	return s.Tokens.GraphToken(ctx, teamsToken)
}
