// Copyright The Teams Assist Authors.
// SPDX-License-Identifier: MIT

package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/teamsassist/meeting-assist-service/internal/logging"
)

const (
	defaultRegion  = "us-west-2"
	defaultModelID = "anthropic.claude-3-5-sonnet-20240620-v1:0"
)

// flags are the command line flags for the meeting assist service.
type flags struct {
	Debug bool
	Port  string
	Bind  string
}

// environment are the environment variables for the meeting assist service.
type environment struct {
	Port string

	TenantID     string
	ClientID     string
	ClientSecret string
	Audience     string
	Issuer       string
	JWKSURL      string

	Region  string
	ModelID string

	DevBypassAuth bool
}

// parseFlags parses command line flags for the meeting assist service
func parseFlags(defaultPort string) flags {
	var debug = flag.Bool("d", false, "enable debug logging")
	var port = flag.String("p", defaultPort, "listen port")
	var bind = flag.String("bind", "*", "interface to bind on")

	flag.Usage = func() {
		flag.PrintDefaults()
		os.Exit(2)
	}
	flag.Parse()

	// Based on the debug flag, set the log level environment variable used by [logging.InitStructureLogConfig]
	if *debug {
		err := os.Setenv("LOG_LEVEL", "debug")
		if err != nil {
			slog.With(logging.ErrKey, err).Error("error setting log level")
			os.Exit(1)
		}
	}

	return flags{
		Debug: *debug,
		Port:  *port,
		Bind:  *bind,
	}
}

// parseEnv parses environment variables for the meeting assist service
func parseEnv() environment {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	tenantID := os.Getenv("AAD_TENANT_ID")
	clientID := os.Getenv("AAD_CLIENT_ID")
	if tenantID == "" || clientID == "" {
		slog.Error("missing env vars: AAD_TENANT_ID and/or AAD_CLIENT_ID")
		os.Exit(1)
	}
	clientSecret := os.Getenv("AAD_CLIENT_SECRET")

	// The audience defaults to the tab app's client ID.
	audience := os.Getenv("AAD_AUDIENCE")
	if audience == "" {
		audience = clientID
	}

	issuer := os.Getenv("AAD_ISSUER")
	if issuer == "" {
		issuer = fmt.Sprintf("https://login.microsoftonline.com/%s/v2.0", tenantID)
	}
	jwksURL := os.Getenv("AAD_JWKS_URL")
	if jwksURL == "" {
		jwksURL = fmt.Sprintf("https://login.microsoftonline.com/%s/discovery/v2.0/keys", tenantID)
	}

	region := os.Getenv("AWS_REGION")
	if region == "" {
		region = defaultRegion
	}
	modelID := os.Getenv("BEDROCK_MODEL_ID")
	if modelID == "" {
		modelID = defaultModelID
	}

	devBypassAuth := os.Getenv("DEV_BYPASS_AUTH") == "true"
	if devBypassAuth {
		slog.Warn("DEV_BYPASS_AUTH enabled: /summarize can be called without a token, do not use in production")
	}

	return environment{
		Port:          port,
		TenantID:      tenantID,
		ClientID:      clientID,
		ClientSecret:  clientSecret,
		Audience:      audience,
		Issuer:        issuer,
		JWKSURL:       jwksURL,
		Region:        region,
		ModelID:       modelID,
		DevBypassAuth: devBypassAuth,
	}
}
