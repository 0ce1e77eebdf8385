// Copyright The Teams Assist Authors.
// SPDX-License-Identifier: MIT

// Package handlers exposes the service over HTTP as the JSON API the Teams
// tab consumes.
package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/teamsassist/meeting-assist-service/internal/domain"
	"github.com/teamsassist/meeting-assist-service/internal/logging"
	"github.com/teamsassist/meeting-assist-service/internal/service"
)

// Config carries the settings the HTTP layer echoes and enforces.
type Config struct {
	ServiceName string
	Region      string
	ModelID     string
	// DevBypassAuth lets /summarize run without a token. Local development
	// only.
	DevBypassAuth bool
}

// HTTPHandler serves the Teams tab API.
type HTTPHandler struct {
	Auth        *service.AuthService
	Meetings    *service.MeetingService
	Transcripts *service.TranscriptService
	Summaries   *service.SummaryService
	Users       *service.UserService
	Config      Config
}

// NewHTTPHandler creates a new HTTPHandler.
func NewHTTPHandler(
	auth *service.AuthService,
	meetings *service.MeetingService,
	transcripts *service.TranscriptService,
	summaries *service.SummaryService,
	users *service.UserService,
	config Config,
) *HTTPHandler {
	return &HTTPHandler{
		Auth:        auth,
		Meetings:    meetings,
		Transcripts: transcripts,
		Summaries:   summaries,
		Users:       users,
		Config:      config,
	}
}

// RegisterRoutes mounts all API routes on the mux.
func (h *HTTPHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /health", h.handleHealth)
	mux.HandleFunc("GET /livez", h.handleLivez)
	mux.HandleFunc("GET /readyz", h.handleReadyz)

	mux.HandleFunc("POST /whoami", h.handleWhoami)
	mux.HandleFunc("POST /graph/me", h.handleMe)
	mux.HandleFunc("POST /graph/events", h.handleEvents)
	mux.HandleFunc("POST /graph/invitees", h.handleInvitees)
	mux.HandleFunc("GET /graph/photo", h.handlePhoto)
	mux.HandleFunc("POST /graph/transcript", h.handleTranscript)
	mux.HandleFunc("POST /summarize", h.handleSummarize)
}

// writeJSON writes a success envelope.
func writeJSON(w http.ResponseWriter, statusCode int, body map[string]any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Error("failed to encode response", logging.ErrKey, err)
	}
}

// writeError maps a domain error onto the failure envelope.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	statusCode := http.StatusInternalServerError
	switch domain.GetErrorType(err) {
	case domain.ErrorTypeValidation:
		statusCode = http.StatusBadRequest
	case domain.ErrorTypeUnauthorized:
		statusCode = http.StatusUnauthorized
	case domain.ErrorTypeNotFound:
		statusCode = http.StatusNotFound
	case domain.ErrorTypeUpstream:
		statusCode = http.StatusBadGateway
	case domain.ErrorTypeUnavailable:
		statusCode = http.StatusServiceUnavailable
	}

	if statusCode >= http.StatusInternalServerError {
		slog.ErrorContext(r.Context(), "request failed", logging.ErrKey, err)
	} else {
		slog.DebugContext(r.Context(), "request rejected", "status", statusCode, logging.ErrKey, err)
	}

	writeJSON(w, statusCode, map[string]any{
		"ok":    false,
		"error": err.Error(),
	})
}

// decodeJSON decodes the request body, distinguishing a malformed body
// from missing fields.
func decodeJSON(r *http.Request, out any) error {
	if err := json.NewDecoder(r.Body).Decode(out); err != nil {
		return domain.NewValidationError("invalid JSON body", err)
	}
	return nil
}

func (h *HTTPHandler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"ok":            true,
		"service":       h.Config.ServiceName,
		"region":        h.Config.Region,
		"model":         h.Config.ModelID,
		"devBypassAuth": h.Config.DevBypassAuth,
	})
}

func (h *HTTPHandler) handleLivez(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}

func (h *HTTPHandler) handleReadyz(w http.ResponseWriter, r *http.Request) {
	ready := h.Auth.ServiceReady() &&
		h.Meetings.ServiceReady() &&
		h.Transcripts.ServiceReady() &&
		h.Summaries.ServiceReady() &&
		h.Users.ServiceReady()
	if !ready {
		writeError(w, r, domain.NewUnavailableError("service not ready"))
		return
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}

type tokenRequest struct {
	Token string `json:"token"`
}

func (h *HTTPHandler) handleWhoami(w http.ResponseWriter, r *http.Request) {
	var req tokenRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	if req.Token == "" {
		writeError(w, r, domain.NewValidationError("missing token in body"))
		return
	}

	claims, err := h.Auth.ValidateToken(r.Context(), req.Token)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"ok":   true,
		"upn":  claims.UPN,
		"name": claims.Name,
		"tid":  claims.TID,
		"oid":  claims.OID,
		"aud":  claims.Aud,
		"scp":  claims.Scp,
	})
}

func (h *HTTPHandler) handleMe(w http.ResponseWriter, r *http.Request) {
	var req tokenRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	me, err := h.Users.GetMe(r.Context(), req.Token)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"ok": true,
		"me": me,
	})
}

type eventsRequest struct {
	Token    string `json:"token"`
	StartISO string `json:"startISO"`
	EndISO   string `json:"endISO"`
	Status   string `json:"status,omitempty"`
	Cursor   string `json:"cursor,omitempty"`
	PageSize int    `json:"pageSize,omitempty"`
}

func (h *HTTPHandler) handleEvents(w http.ResponseWriter, r *http.Request) {
	var req eventsRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	page, err := h.Meetings.ListMeetings(r.Context(), req.Token, service.ListMeetingsRequest{
		StartISO: req.StartISO,
		EndISO:   req.EndISO,
		Status:   req.Status,
		Cursor:   req.Cursor,
		PageSize: req.PageSize,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	// The cursor is null once the collection is exhausted so callers can
	// stop polling.
	var nextCursor *string
	if page.NextCursor != "" {
		nextCursor = &page.NextCursor
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"ok":         true,
		"value":      page.Meetings,
		"nextCursor": nextCursor,
	})
}

type inviteesRequest struct {
	Token   string `json:"token"`
	EventID string `json:"eventId"`
}

func (h *HTTPHandler) handleInvitees(w http.ResponseWriter, r *http.Request) {
	var req inviteesRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	invitees, err := h.Meetings.GetInvitees(r.Context(), req.Token, req.EventID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"ok":       true,
		"invitees": invitees,
	})
}

func (h *HTTPHandler) handlePhoto(w http.ResponseWriter, r *http.Request) {
	userIDOrEmail := r.URL.Query().Get("userIdOrEmail")
	if userIDOrEmail == "" {
		writeError(w, r, domain.NewValidationError("missing userIdOrEmail"))
		return
	}

	teamsToken := bearerToken(r)
	if teamsToken == "" {
		writeError(w, r, domain.NewUnauthorizedError("missing bearer token"))
		return
	}

	photo, err := h.Users.GetPhoto(r.Context(), teamsToken, userIDOrEmail)
	if err != nil {
		writeError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", photo.ContentType)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(photo.Data)
}

type transcriptRequest struct {
	Token      string `json:"token"`
	JoinWebURL string `json:"joinWebUrl"`
}

func (h *HTTPHandler) handleTranscript(w http.ResponseWriter, r *http.Request) {
	var req transcriptRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	transcript, err := h.Transcripts.GetTranscript(r.Context(), req.Token, req.JoinWebURL)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"ok":           true,
		"meetingId":    transcript.MeetingID,
		"transcriptId": transcript.TranscriptID,
		"contentType":  transcript.ContentType,
		"vtt":          transcript.VTT,
		"messages":     transcript.Messages,
	})
}

type summarizeRequest struct {
	Token         string `json:"token,omitempty"`
	Title         string `json:"title,omitempty"`
	TranscriptVTT string `json:"transcriptVtt"`
}

func (h *HTTPHandler) handleSummarize(w http.ResponseWriter, r *http.Request) {
	var req summarizeRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	if req.TranscriptVTT == "" {
		writeError(w, r, domain.NewValidationError("missing transcriptVtt"))
		return
	}

	if !h.Config.DevBypassAuth {
		if req.Token == "" {
			writeError(w, r, domain.NewValidationError("missing token"))
			return
		}
		if _, err := h.Auth.ValidateToken(r.Context(), req.Token); err != nil {
			writeError(w, r, err)
			return
		}
	}

	summary, err := h.Summaries.Summarize(r.Context(), req.Title, req.TranscriptVTT)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"ok":      true,
		"summary": summary,
	})
}

// bearerToken extracts the token from the Authorization header.
func bearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	if strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimPrefix(auth, "Bearer ")
	}
	return ""
}
