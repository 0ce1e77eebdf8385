// Copyright The Teams Assist Authors.
// SPDX-License-Identifier: MIT

package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/teamsassist/meeting-assist-service/internal/domain"
	"github.com/teamsassist/meeting-assist-service/internal/domain/mocks"
	"github.com/teamsassist/meeting-assist-service/internal/domain/models"
	"github.com/teamsassist/meeting-assist-service/internal/service"
)

type handlerMocks struct {
	validator  *mocks.MockTokenValidator
	provider   *mocks.MockTokenProvider
	calendar   *mocks.MockCalendarAPI
	summarizer *mocks.MockSummarizer
}

func newTestHandler(config Config) (*HTTPHandler, *handlerMocks) {
	m := &handlerMocks{
		validator:  &mocks.MockTokenValidator{},
		provider:   &mocks.MockTokenProvider{},
		calendar:   &mocks.MockCalendarAPI{},
		summarizer: &mocks.MockSummarizer{},
	}

	auth := service.NewAuthService(m.validator, m.provider)
	handler := NewHTTPHandler(
		auth,
		service.NewMeetingService(auth, m.calendar, service.NewOccurrenceService()),
		service.NewTranscriptService(auth, m.calendar),
		service.NewSummaryService(m.summarizer),
		service.NewUserService(auth, m.calendar),
		config,
	)
	return handler, m
}

func serve(handler *HTTPHandler, method, target string, body any) *httptest.ResponseRecorder {
	var reqBody *bytes.Buffer
	if body != nil {
		encoded, _ := json.Marshal(body)
		reqBody = bytes.NewBuffer(encoded)
	} else {
		reqBody = &bytes.Buffer{}
	}

	mux := http.NewServeMux()
	handler.RegisterRoutes(mux)

	req := httptest.NewRequest(method, target, reqBody)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func (m *handlerMocks) allowAuth() {
	m.validator.On("ValidateTeamsToken", mock.Anything, mock.Anything).
		Return(&models.TeamsClaims{UPN: "alice@example.com", Name: "Alice", TID: "tenant-1", OID: "oid-1", Aud: "client-1", Scp: "access_as_user"}, nil)
	m.provider.On("GraphToken", mock.Anything, mock.Anything).Return("graph-token", nil)
}

func TestHandleHealth(t *testing.T) {
	handler, _ := newTestHandler(Config{
		ServiceName:   "meeting-assist-service",
		Region:        "us-west-2",
		ModelID:       "anthropic.claude-3-5-sonnet-20240620-v1:0",
		DevBypassAuth: true,
	})

	rec := serve(handler, http.MethodGet, "/health", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, true, body["ok"])
	assert.Equal(t, "meeting-assist-service", body["service"])
	assert.Equal(t, "us-west-2", body["region"])
	assert.Equal(t, "anthropic.claude-3-5-sonnet-20240620-v1:0", body["model"])
	assert.Equal(t, true, body["devBypassAuth"])
}

func TestHandleWhoami(t *testing.T) {
	t.Run("valid token echoes claims", func(t *testing.T) {
		handler, m := newTestHandler(Config{})
		m.allowAuth()

		rec := serve(handler, http.MethodPost, "/whoami", map[string]any{"token": "teams-token"})

		assert.Equal(t, http.StatusOK, rec.Code)
		body := decodeBody(t, rec)
		assert.Equal(t, true, body["ok"])
		assert.Equal(t, "alice@example.com", body["upn"])
		assert.Equal(t, "tenant-1", body["tid"])
	})

	t.Run("missing token", func(t *testing.T) {
		handler, _ := newTestHandler(Config{})

		rec := serve(handler, http.MethodPost, "/whoami", map[string]any{})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		body := decodeBody(t, rec)
		assert.Equal(t, false, body["ok"])
	})

	t.Run("invalid token", func(t *testing.T) {
		handler, m := newTestHandler(Config{})
		m.validator.On("ValidateTeamsToken", mock.Anything, "bad").
			Return(nil, domain.NewUnauthorizedError("invalid token"))

		rec := serve(handler, http.MethodPost, "/whoami", map[string]any{"token": "bad"})

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("malformed body", func(t *testing.T) {
		handler, _ := newTestHandler(Config{})

		mux := http.NewServeMux()
		handler.RegisterRoutes(mux)
		req := httptest.NewRequest(http.MethodPost, "/whoami", bytes.NewBufferString("{not json"))
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestHandleEvents(t *testing.T) {
	t.Run("returns meetings with null cursor when exhausted", func(t *testing.T) {
		handler, m := newTestHandler(Config{})
		m.allowAuth()

		start := time.Now().UTC().Add(time.Hour)
		m.calendar.On("CalendarView", mock.Anything, "graph-token", mock.Anything).
			Return(&models.EventPage{Value: []models.CalendarEvent{{
				ID:      "ev-1",
				Subject: "Standup",
				Start:   &models.EventDateTime{DateTime: start.Format(time.RFC3339)},
				End:     &models.EventDateTime{DateTime: start.Add(time.Hour).Format(time.RFC3339)},
			}}}, nil).Once()

		rec := serve(handler, http.MethodPost, "/graph/events", map[string]any{
			"token":    "teams-token",
			"startISO": "2026-03-01T00:00:00Z",
			"endISO":   "2026-03-31T00:00:00Z",
		})

		assert.Equal(t, http.StatusOK, rec.Code)
		body := decodeBody(t, rec)
		assert.Equal(t, true, body["ok"])
		assert.Nil(t, body["nextCursor"])

		value := body["value"].([]any)
		require.Len(t, value, 1)
		meeting := value[0].(map[string]any)
		assert.Equal(t, "ev-1", meeting["id"])
		assert.Equal(t, "upcoming", meeting["status"])
	})

	t.Run("keeps cursor when more pages exist", func(t *testing.T) {
		handler, m := newTestHandler(Config{})
		m.allowAuth()

		m.calendar.On("CalendarView", mock.Anything, "graph-token", mock.Anything).
			Return(&models.EventPage{
				Value:    []models.CalendarEvent{{ID: "ev-1"}},
				NextLink: "next-link",
			}, nil).Once()

		rec := serve(handler, http.MethodPost, "/graph/events", map[string]any{
			"token":    "teams-token",
			"startISO": "2026-03-01T00:00:00Z",
			"endISO":   "2026-03-31T00:00:00Z",
			"pageSize": 1,
		})

		body := decodeBody(t, rec)
		assert.Equal(t, "next-link", body["nextCursor"])
	})

	t.Run("missing window", func(t *testing.T) {
		handler, m := newTestHandler(Config{})
		m.allowAuth()

		rec := serve(handler, http.MethodPost, "/graph/events", map[string]any{"token": "teams-token"})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("upstream error maps to bad gateway", func(t *testing.T) {
		handler, m := newTestHandler(Config{})
		m.allowAuth()

		m.calendar.On("CalendarView", mock.Anything, "graph-token", mock.Anything).
			Return(nil, domain.NewUpstreamError("calendar view fetch failed", 403)).Once()

		rec := serve(handler, http.MethodPost, "/graph/events", map[string]any{
			"token":    "teams-token",
			"startISO": "2026-03-01T00:00:00Z",
			"endISO":   "2026-03-31T00:00:00Z",
		})

		assert.Equal(t, http.StatusBadGateway, rec.Code)
	})
}

func TestHandleInvitees(t *testing.T) {
	handler, m := newTestHandler(Config{})
	m.allowAuth()

	m.calendar.On("GetEventInvitees", mock.Anything, "graph-token", "ev-1").
		Return(&models.EventInvitees{
			Organizer: &models.Recipient{EmailAddress: &models.EmailAddress{Name: "Olive", Address: "olive@example.com"}},
		}, nil).Once()

	rec := serve(handler, http.MethodPost, "/graph/invitees", map[string]any{
		"token":   "teams-token",
		"eventId": "ev-1",
	})

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	invitees := body["invitees"].([]any)
	require.Len(t, invitees, 1)
	assert.Equal(t, "organizer", invitees[0].(map[string]any)["role"])
}

func TestHandlePhoto(t *testing.T) {
	t.Run("returns image bytes", func(t *testing.T) {
		handler, m := newTestHandler(Config{})
		m.allowAuth()

		m.calendar.On("GetUserPhoto", mock.Anything, "graph-token", "alice@example.com").
			Return(&models.UserPhoto{ContentType: "image/png", Data: []byte{1, 2, 3}}, nil).Once()

		mux := http.NewServeMux()
		handler.RegisterRoutes(mux)
		req := httptest.NewRequest(http.MethodGet, "/graph/photo?userIdOrEmail=alice@example.com", nil)
		req.Header.Set("Authorization", "Bearer teams-token")
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
		assert.Equal(t, []byte{1, 2, 3}, rec.Body.Bytes())
	})

	t.Run("missing bearer token", func(t *testing.T) {
		handler, _ := newTestHandler(Config{})

		rec := serve(handler, http.MethodGet, "/graph/photo?userIdOrEmail=alice@example.com", nil)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("no photo is a JSON 404", func(t *testing.T) {
		handler, m := newTestHandler(Config{})
		m.allowAuth()

		m.calendar.On("GetUserPhoto", mock.Anything, "graph-token", "alice@example.com").
			Return(nil, domain.NewNotFoundError("no photo")).Once()

		mux := http.NewServeMux()
		handler.RegisterRoutes(mux)
		req := httptest.NewRequest(http.MethodGet, "/graph/photo?userIdOrEmail=alice@example.com", nil)
		req.Header.Set("Authorization", "Bearer teams-token")
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		body := decodeBody(t, rec)
		assert.Equal(t, false, body["ok"])
	})
}

func TestHandleTranscript(t *testing.T) {
	handler, m := newTestHandler(Config{})
	m.allowAuth()

	vttContent := "WEBVTT\n\n00:00:01.000 --> 00:00:02.000\n<v Alice>hello</v>\n"
	m.calendar.On("FindOnlineMeetingID", mock.Anything, "graph-token", "https://join.example.com").
		Return("meet-1", nil).Once()
	m.calendar.On("ListTranscripts", mock.Anything, "graph-token", "meet-1").
		Return([]models.TranscriptInfo{{ID: "tr-1"}}, nil).Once()
	m.calendar.On("GetTranscriptContent", mock.Anything, "graph-token", "meet-1", "tr-1").
		Return(vttContent, nil).Once()

	rec := serve(handler, http.MethodPost, "/graph/transcript", map[string]any{
		"token":      "teams-token",
		"joinWebUrl": "https://join.example.com",
	})

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, true, body["ok"])
	assert.Equal(t, "meet-1", body["meetingId"])
	assert.Equal(t, "tr-1", body["transcriptId"])
	assert.Equal(t, "text/vtt", body["contentType"])
	assert.Equal(t, vttContent, body["vtt"])

	messages := body["messages"].([]any)
	require.Len(t, messages, 1)
	assert.Equal(t, "Alice", messages[0].(map[string]any)["speaker"])
}

func TestHandleSummarize(t *testing.T) {
	summary := &models.MeetingSummary{
		Purpose:     "sync",
		Takeaways:   []string{"a"},
		ActionItems: []models.ActionItem{},
	}

	t.Run("validates token when bypass is off", func(t *testing.T) {
		handler, m := newTestHandler(Config{})
		m.allowAuth()
		m.summarizer.On("Summarize", mock.Anything, "Planning", "Alice: hi").
			Return(summary, nil).Once()

		rec := serve(handler, http.MethodPost, "/summarize", map[string]any{
			"token":         "teams-token",
			"title":         "Planning",
			"transcriptVtt": "WEBVTT\n\nAlice: hi",
		})

		assert.Equal(t, http.StatusOK, rec.Code)
		body := decodeBody(t, rec)
		assert.Equal(t, "sync", body["summary"].(map[string]any)["purpose"])
	})

	t.Run("missing token rejected when bypass is off", func(t *testing.T) {
		handler, _ := newTestHandler(Config{})

		rec := serve(handler, http.MethodPost, "/summarize", map[string]any{
			"transcriptVtt": "WEBVTT\n\nAlice: hi",
		})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("bypass skips token validation", func(t *testing.T) {
		handler, m := newTestHandler(Config{DevBypassAuth: true})
		m.summarizer.On("Summarize", mock.Anything, "", "Alice: hi").
			Return(summary, nil).Once()

		rec := serve(handler, http.MethodPost, "/summarize", map[string]any{
			"transcriptVtt": "WEBVTT\n\nAlice: hi",
		})

		assert.Equal(t, http.StatusOK, rec.Code)
		m.validator.AssertNotCalled(t, "ValidateTeamsToken", mock.Anything, mock.Anything)
	})

	t.Run("missing transcript", func(t *testing.T) {
		handler, m := newTestHandler(Config{})
		m.allowAuth()

		rec := serve(handler, http.MethodPost, "/summarize", map[string]any{"token": "teams-token"})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
