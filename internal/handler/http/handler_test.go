// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-social-api/internal/logger"
	"github.com/MKhiriev/go-social-api/internal/mock"
	"github.com/MKhiriev/go-social-api/internal/service"
	"github.com/MKhiriev/go-social-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// newTestHandler builds a Handler backed by gomock services.
func newTestHandler(t *testing.T, ctrl *gomock.Controller) (*Handler, *mock.MockUserService, *mock.MockPostService) {
	t.Helper()

	userSvc := mock.NewMockUserService(ctrl)
	postSvc := mock.NewMockPostService(ctrl)
	h := NewHandler(&service.Services{
		UserService: userSvc,
		PostService: postSvc,
	}, logger.Nop())

	return h, userSvc, postSvc
}

// doRequest routes a request through the full chi router so that path
// parameters and middleware behave exactly as in production.
func doRequest(t *testing.T, h *Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("{}")
	} else {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)
	return rec
}

// decodeBody unmarshals a successful JSON response body into v.
func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, v any) error {
	t.Helper()
	return json.Unmarshal(rec.Body.Bytes(), v)
}

// decodeErrors unwraps the `{"errors": {...}}` envelope of an error response.
func decodeErrors(t *testing.T, rec *httptest.ResponseRecorder) map[string]string {
	t.Helper()

	var envelope models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	return envelope.Errors
}

// ─────────────────────────────────────────────
// health check
// ─────────────────────────────────────────────

func TestHealthCheck(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, _ := newTestHandler(t, ctrl)

	rec := doRequest(t, h, http.MethodGet, "/", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status": "OK"}`, rec.Body.String())
}

// ─────────────────────────────────────────────
// unsupported method hiding
// ─────────────────────────────────────────────

// TestUnsupportedMethod verifies that a route hit with an unregistered HTTP
// method responds 404, not chi's default 405.
func TestUnsupportedMethod(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, _ := newTestHandler(t, ctrl)

	rec := doRequest(t, h, http.MethodDelete, "/", "")

	require.Equal(t, http.StatusNotFound, rec.Code)
}

// ─────────────────────────────────────────────
// trace id propagation
// ─────────────────────────────────────────────

func TestTraceIDHeader(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, _ := newTestHandler(t, ctrl)

	t.Run("generated when absent", func(t *testing.T) {
		rec := doRequest(t, h, http.MethodGet, "/", "")
		assert.NotEmpty(t, rec.Header().Get(traceIDHeader))
	})

	t.Run("echoed when provided", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(traceIDHeader, "trace-42")
		rec := httptest.NewRecorder()
		h.Init().ServeHTTP(rec, req)

		assert.Equal(t, "trace-42", rec.Header().Get(traceIDHeader))
	})
}
