// Copyright The Teams Assist Authors.
// SPDX-License-Identifier: MIT

package graph

import (
	"context"
	"fmt"
	"net/url"

	"github.com/teamsassist/meeting-assist-service/internal/domain/models"
)

// GetMe fetches the signed-in user's profile.
func (c *Client) GetMe(ctx context.Context, token string) (map[string]any, error) {
	var profile map[string]any
	if err := c.GetJSON(ctx, token, "/me", &profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// GetUserPhoto fetches a user's profile photo by object ID or email.
func (c *Client) GetUserPhoto(ctx context.Context, token, userIDOrEmail string) (*models.UserPhoto, error) {
	path := fmt.Sprintf("/users/%s/photo/$value", url.PathEscape(userIDOrEmail))

	data, contentType, err := c.GetBinary(ctx, token, path)
	if err != nil {
		return nil, err
	}
	if contentType == "" {
		contentType = "image/jpeg"
	}
	return &models.UserPhoto{ContentType: contentType, Data: data}, nil
}
