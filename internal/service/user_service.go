// Copyright The Teams Assist Authors.
// SPDX-License-Identifier: MIT

package service

import (
	"context"

	"github.com/teamsassist/meeting-assist-service/internal/domain"
	"github.com/teamsassist/meeting-assist-service/internal/domain/models"
	"github.com/teamsassist/meeting-assist-service/internal/infrastructure/graph"
)

// UserService serves user profile lookups.
type UserService struct {
	Auth     *AuthService
	Calendar domain.CalendarAPI
}

// NewUserService creates a new UserService.
func NewUserService(auth *AuthService, calendar domain.CalendarAPI) *UserService {
	return &UserService{
		Auth:     auth,
		Calendar: calendar,
	}
}

// ServiceReady checks if the service is ready for use.
func (s *UserService) ServiceReady() bool {
	return s.Auth != nil && s.Calendar != nil
}

// GetMe returns the signed-in user's profile as Graph reports it.
func (s *UserService) GetMe(ctx context.Context, teamsToken string) (map[string]any, error) {
	if !s.ServiceReady() {
		return nil, domain.NewUnavailableError("user service not ready")
	}

	graphToken, err := s.Auth.GraphToken(ctx, teamsToken)
	if err != nil {
		return nil, err
	}

	profile, err := s.Calendar.GetMe(ctx, graphToken)
	if err != nil {
		return nil, mapGraphError("profile fetch failed", err)
	}
	return profile, nil
}

// GetPhoto returns a user's profile photo. A user without a photo is a
// not-found condition.
func (s *UserService) GetPhoto(ctx context.Context, teamsToken, userIDOrEmail string) (*models.UserPhoto, error) {
	if !s.ServiceReady() {
		return nil, domain.NewUnavailableError("user service not ready")
	}
	if userIDOrEmail == "" {
		return nil, domain.NewValidationError("missing userIdOrEmail")
	}

	graphToken, err := s.Auth.GraphToken(ctx, teamsToken)
	if err != nil {
		return nil, err
	}

	photo, err := s.Calendar.GetUserPhoto(ctx, graphToken, userIDOrEmail)
	if err != nil {
		if graph.IsNotFound(err) {
			return nil, domain.NewNotFoundError("no photo")
		}
		return nil, mapGraphError("photo fetch failed", err)
	}
	return photo, nil
}
