// Copyright The Teams Assist Authors.
// SPDX-License-Identifier: MIT

package models

// TeamsClaims are the claims of a validated Teams SSO token that the
// service cares about.
type TeamsClaims struct {
	// UPN is the user principal name.
	UPN string `json:"upn,omitempty"`
	// Name is the user's display name.
	Name string `json:"name,omitempty"`
	// TID is the Azure AD tenant ID.
	TID string `json:"tid,omitempty"`
	// OID is the user's object ID within the tenant.
	OID string `json:"oid,omitempty"`
	// Aud is the audience the token was issued for.
	Aud string `json:"aud,omitempty"`
	// Scp is the space-separated scope list.
	Scp string `json:"scp,omitempty"`
}
