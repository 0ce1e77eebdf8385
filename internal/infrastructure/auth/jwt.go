// Copyright The Teams Assist Authors.
// SPDX-License-Identifier: MIT

// Package auth validates Teams SSO tokens against Azure AD and exchanges
// them for Microsoft Graph tokens via the on-behalf-of flow.
package auth

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/auth0/go-jwt-middleware/v2/jwks"
	"github.com/auth0/go-jwt-middleware/v2/validator"

	"github.com/teamsassist/meeting-assist-service/internal/domain"
	"github.com/teamsassist/meeting-assist-service/internal/domain/models"
)

// JWTAuthConfig is the JWT authentication configuration for validating
// Teams SSO tokens.
type JWTAuthConfig struct {
	// JWKSURL is the Azure AD JWKS endpoint for the tenant.
	JWKSURL string
	// Issuer is the expected token issuer.
	Issuer string
	// Audience is the expected token audience, normally the tab app's
	// client ID.
	Audience string
	// MockLocalPrincipal short-circuits validation for local development;
	// any token yields claims for this principal.
	MockLocalPrincipal string
}

// teamsCustomClaims are the AAD claims carried beyond the registered set.
type teamsCustomClaims struct {
	UPN  string `json:"preferred_username"`
	Name string `json:"name"`
	TID  string `json:"tid"`
	OID  string `json:"oid"`
	Scp  string `json:"scp"`
}

// Validate implements validator.CustomClaims.
func (c *teamsCustomClaims) Validate(_ context.Context) error {
	if c.TID == "" {
		return errors.New("tid claim must be provided")
	}
	return nil
}

// JWTAuth validates Teams SSO tokens against the tenant's JWKS.
type JWTAuth struct {
	config    JWTAuthConfig
	validator *validator.Validator
}

// Ensure that JWTAuth implements TokenValidator
var _ domain.TokenValidator = (*JWTAuth)(nil)

// NewJWTAuth creates a JWT validator backed by a caching JWKS provider.
func NewJWTAuth(config JWTAuthConfig) (*JWTAuth, error) {
	issuerURL, err := url.Parse(config.Issuer)
	if err != nil {
		return nil, fmt.Errorf("invalid issuer URL: %w", err)
	}
	jwksURL, err := url.Parse(config.JWKSURL)
	if err != nil {
		return nil, fmt.Errorf("invalid JWKS URL: %w", err)
	}

	provider := jwks.NewCachingProvider(issuerURL, 5*time.Minute, jwks.WithCustomJWKSURI(jwksURL))

	jwtValidator, err := validator.New(
		provider.KeyFunc,
		validator.RS256,
		issuerURL.String(),
		[]string{config.Audience},
		validator.WithCustomClaims(func() validator.CustomClaims {
			return &teamsCustomClaims{}
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to set up JWT validator: %w", err)
	}

	return &JWTAuth{
		config:    config,
		validator: jwtValidator,
	}, nil
}

// ValidateTeamsToken validates the Teams SSO token and returns its claims.
func (a *JWTAuth) ValidateTeamsToken(ctx context.Context, token string) (*models.TeamsClaims, error) {
	if a.config.MockLocalPrincipal != "" {
		return &models.TeamsClaims{
			UPN:  a.config.MockLocalPrincipal,
			Name: a.config.MockLocalPrincipal,
			Aud:  a.config.Audience,
		}, nil
	}

	if a.validator == nil {
		return nil, domain.NewInternalError("JWT validator is not set up")
	}
	if token == "" {
		return nil, domain.NewUnauthorizedError("missing token")
	}

	parsed, err := a.validator.ValidateToken(ctx, token)
	if err != nil {
		return nil, domain.NewUnauthorizedError("invalid token", err)
	}

	validated, ok := parsed.(*validator.ValidatedClaims)
	if !ok {
		return nil, domain.NewUnauthorizedError("invalid token claims")
	}

	claims := &models.TeamsClaims{}
	if len(validated.RegisteredClaims.Audience) > 0 {
		claims.Aud = validated.RegisteredClaims.Audience[0]
	}
	if custom, ok := validated.CustomClaims.(*teamsCustomClaims); ok {
		claims.UPN = custom.UPN
		claims.Name = custom.Name
		claims.TID = custom.TID
		claims.OID = custom.OID
		claims.Scp = custom.Scp
	}

	return claims, nil
}
