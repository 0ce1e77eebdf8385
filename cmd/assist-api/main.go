// Copyright The Teams Assist Authors.
// SPDX-License-Identifier: MIT

// Package main is the meeting assist API that backs the Teams tab: it lists
// and classifies the signed-in user's meetings via Microsoft Graph, fetches
// transcripts, and produces AI summaries via Amazon Bedrock.
package main

import (
	"context"
	_ "expvar"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/teamsassist/meeting-assist-service/internal/handlers"
	"github.com/teamsassist/meeting-assist-service/internal/infrastructure/auth"
	"github.com/teamsassist/meeting-assist-service/internal/infrastructure/bedrock"
	"github.com/teamsassist/meeting-assist-service/internal/infrastructure/graph"
	"github.com/teamsassist/meeting-assist-service/internal/logging"
	"github.com/teamsassist/meeting-assist-service/internal/service"
)

const serviceName = "meeting-assist-service"

func main() {
	env := parseEnv()
	flags := parseFlags(env.Port)

	logging.InitStructureLogConfig()

	// Set up the Teams SSO token validator.
	jwtAuth, err := auth.NewJWTAuth(auth.JWTAuthConfig{
		JWKSURL:  env.JWKSURL,
		Issuer:   env.Issuer,
		Audience: env.Audience,
	})
	if err != nil {
		slog.With(logging.ErrKey, err).Error("error setting up JWT authentication")
		os.Exit(1)
	}

	tokenProvider := auth.NewOBOTokenProvider(auth.OBOConfig{
		TenantID:     env.TenantID,
		ClientID:     env.ClientID,
		ClientSecret: env.ClientSecret,
	})

	graphClient := graph.NewClient(graph.Config{})

	// Setup graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	gracefulCloseWG := sync.WaitGroup{}

	summarizer, err := bedrock.NewSummarizer(ctx, bedrock.Config{
		Region:  env.Region,
		ModelID: env.ModelID,
	})
	if err != nil {
		slog.With(logging.ErrKey, err).Error("error setting up Bedrock summarizer")
		os.Exit(1)
	}

	// Initialize services
	authService := service.NewAuthService(jwtAuth, tokenProvider)
	occurrenceService := service.NewOccurrenceService()
	meetingService := service.NewMeetingService(authService, graphClient, occurrenceService)
	transcriptService := service.NewTranscriptService(authService, graphClient)
	summaryService := service.NewSummaryService(summarizer)
	userService := service.NewUserService(authService, graphClient)

	// Initialize handlers
	httpHandler := handlers.NewHTTPHandler(
		authService,
		meetingService,
		transcriptService,
		summaryService,
		userService,
		handlers.Config{
			ServiceName:   serviceName,
			Region:        env.Region,
			ModelID:       env.ModelID,
			DevBypassAuth: env.DevBypassAuth,
		},
	)

	httpServer := setupHTTPServer(flags, httpHandler, &gracefulCloseWG)

	// This next line blocks until SIGINT or SIGTERM is received.
	<-done

	gracefulShutdown(httpServer, &gracefulCloseWG, cancel)
}
