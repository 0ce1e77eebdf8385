// Copyright The Teams Assist Authors.
// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"sync"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/teamsassist/meeting-assist-service/internal/handlers"
	"github.com/teamsassist/meeting-assist-service/internal/logging"
	"github.com/teamsassist/meeting-assist-service/internal/middleware"
)

// setupHTTPServer configures and starts the HTTP server
func setupHTTPServer(flags flags, handler *handlers.HTTPHandler, gracefulCloseWG *sync.WaitGroup) *http.Server {
	mux := http.NewServeMux()
	handler.RegisterRoutes(mux)

	var h http.Handler = mux

	// Add HTTP middleware
	// Note: Order matters - RequestIDMiddleware should come first in the chain,
	// so it should be the last middleware added to the handler since it is executed in reverse order.
	h = otelhttp.NewHandler(h, "assist-api")
	h = middleware.RequestLoggerMiddleware()(h)
	h = middleware.RequestIDMiddleware()(h)

	// Set up http listener in a goroutine using provided command line parameters.
	var addr string
	if flags.Bind == "*" {
		addr = ":" + flags.Port
	} else {
		addr = flags.Bind + ":" + flags.Port
	}
	httpServer := &http.Server{
		Addr:              addr,
		Handler:           h,
		ReadHeaderTimeout: 3 * time.Second,
	}
	gracefulCloseWG.Add(1)
	go func() {
		slog.With("addr", addr).Debug("starting http server, listening on port " + flags.Port)
		err := httpServer.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			slog.With(logging.ErrKey, err).Error("http listener error", logging.PriorityCritical())
			os.Exit(1)
		}
		// Because ErrServerClosed is *immediately* returned when Shutdown is
		// called, not when when Shutdown completes, this must not yet decrement
		// the wait group.
	}()

	return httpServer
}

// gracefulShutdown drains in-flight requests, then releases the listener
// goroutine and waits for it.
func gracefulShutdown(httpServer *http.Server, gracefulCloseWG *sync.WaitGroup, cancel context.CancelFunc) {
	slog.Info("shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.With(logging.ErrKey, err).Error("http server shutdown error")
	}
	gracefulCloseWG.Done()

	// Cancel the context shared by background work.
	cancel()

	gracefulCloseWG.Wait()
	slog.Info("shutdown complete")
}
