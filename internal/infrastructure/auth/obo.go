// Copyright The Teams Assist Authors.
// SPDX-License-Identifier: MIT

package auth

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/oauth2"

	"github.com/teamsassist/meeting-assist-service/internal/domain"
	"github.com/teamsassist/meeting-assist-service/internal/logging"
	"github.com/teamsassist/meeting-assist-service/pkg/cache"
)

const (
	// DefaultAuthorityBase is the Azure AD token authority.
	DefaultAuthorityBase = "https://login.microsoftonline.com"
	// graphScope requests the Graph permissions already consented for the
	// application.
	graphScope = "https://graph.microsoft.com/.default"
	// tokenExpiryLeeway is subtracted from expires_in so a cached token is
	// never handed out moments before it expires.
	tokenExpiryLeeway = 60 * time.Second

	defaultClientTimeout = 30 * time.Second
)

// OBOConfig configures the on-behalf-of token exchange.
type OBOConfig struct {
	TenantID     string
	ClientID     string
	ClientSecret string
	// Optional: override authority base URL for testing
	AuthorityBase string
	// Optional: override timeout for HTTP requests
	Timeout time.Duration
}

// OBOTokenProvider exchanges Teams SSO tokens for Graph tokens using the
// AAD on-behalf-of flow. Tokens are cached by assertion hash until shortly
// before expiry.
type OBOTokenProvider struct {
	config     OBOConfig
	httpClient *http.Client
	tokens     *cache.Cache
}

// Ensure that OBOTokenProvider implements TokenProvider
var _ domain.TokenProvider = (*OBOTokenProvider)(nil)

// NewOBOTokenProvider creates an on-behalf-of token provider.
func NewOBOTokenProvider(config OBOConfig) *OBOTokenProvider {
	if config.AuthorityBase == "" {
		config.AuthorityBase = DefaultAuthorityBase
	}
	if config.Timeout == 0 {
		config.Timeout = defaultClientTimeout
	}

	return &OBOTokenProvider{
		config: config,
		httpClient: &http.Client{
			Timeout: config.Timeout,
		},
		tokens: cache.New(5 * time.Minute),
	}
}

// GraphToken returns a Graph bearer token for the user behind the Teams
// SSO token, exchanging via the on-behalf-of grant on cache miss.
func (p *OBOTokenProvider) GraphToken(ctx context.Context, teamsToken string) (string, error) {
	if teamsToken == "" {
		return "", domain.NewUnauthorizedError("missing token")
	}

	key := assertionKey(teamsToken)
	if cached, ok := p.tokens.Get(key); ok {
		token := cached.(*oauth2.Token)
		if token.Valid() {
			return token.AccessToken, nil
		}
	}

	token, err := p.exchange(ctx, teamsToken)
	if err != nil {
		return "", err
	}

	p.tokens.Put(key, token, time.Until(token.Expiry))
	return token.AccessToken, nil
}

// exchange performs the on-behalf-of grant against the tenant's token
// endpoint.
func (p *OBOTokenProvider) exchange(ctx context.Context, teamsToken string) (*oauth2.Token, error) {
	endpoint := fmt.Sprintf("%s/%s/oauth2/v2.0/token", p.config.AuthorityBase, p.config.TenantID)

	form := url.Values{}
	form.Set("grant_type", "urn:ietf:params:oauth:grant-type:jwt-bearer")
	form.Set("client_id", p.config.ClientID)
	form.Set("client_secret", p.config.ClientSecret)
	form.Set("assertion", teamsToken)
	form.Set("requested_token_use", "on_behalf_of")
	form.Set("scope", graphScope)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("failed to create token request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		slog.ErrorContext(ctx, "token exchange request failed", logging.ErrKey, err)
		return nil, domain.NewUnavailableError("token exchange failed", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read token response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		slog.ErrorContext(ctx, "token exchange rejected",
			"status", resp.StatusCode,
			"body", string(body))
		if resp.StatusCode == http.StatusBadRequest || resp.StatusCode == http.StatusUnauthorized {
			return nil, domain.NewUnauthorizedError("on-behalf-of exchange rejected")
		}
		return nil, domain.NewUpstreamError("token endpoint error", resp.StatusCode)
	}

	var payload struct {
		AccessToken string `json:"access_token"`
		ExpiresIn   int64  `json:"expires_in"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("failed to decode token response: %w", err)
	}
	if payload.AccessToken == "" {
		return nil, domain.NewUnauthorizedError("token endpoint returned no access token")
	}

	expiry := time.Now().Add(time.Duration(payload.ExpiresIn)*time.Second - tokenExpiryLeeway)
	return &oauth2.Token{
		AccessToken: payload.AccessToken,
		TokenType:   "Bearer",
		Expiry:      expiry,
	}, nil
}

// assertionKey derives the cache key from the assertion. The raw token is
// never used as a map key or logged.
func assertionKey(teamsToken string) string {
	sum := sha256.Sum256([]byte(teamsToken))
	return "graph_token." + hex.EncodeToString(sum[:])
}
