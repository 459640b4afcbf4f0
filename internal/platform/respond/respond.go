// Copyright (c) 2026 Meeple. All rights reserved.

// Package respond provides HTTP response helpers used by all API handlers.
//
// # Architecture
//
// This package centralizes the presentation logic for HTTP responses.
// Successful responses carry their payload under a named top-level key
// ("categories", "reviews", "users", "comments"), and every error response
// is the single-field envelope {"msg": "..."} regardless of which layer
// produced the failure.
package respond

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/boardhaus/meeple/internal/platform/apperr"
	"github.com/boardhaus/meeple/internal/platform/ctxutil"
)

// Envelope is the top-level JSON object of a successful response.
//
// Handlers build it with the resource key the endpoint owns, e.g.
// Envelope{"reviews": reviews}.
type Envelope map[string]any

// ErrorEnvelope is the JSON envelope for error responses.
type ErrorEnvelope struct {
	Msg string `json:"msg"`
}

// JSON writes a JSON response with the given status code.
func JSON(writer http.ResponseWriter, statusCode int, payload any) {
	writer.Header().Set("Content-Type", "application/json; charset=utf-8")
	writer.WriteHeader(statusCode)
	_ = json.NewEncoder(writer).Encode(payload)
}

// OK writes a 200 OK response with the given envelope.
func OK(writer http.ResponseWriter, payload Envelope) {
	JSON(writer, http.StatusOK, payload)
}

// Created writes a 201 Created response with the given envelope.
func Created(writer http.ResponseWriter, payload Envelope) {
	JSON(writer, http.StatusCreated, payload)
}

// NoContent writes a 204 No Content response.
func NoContent(writer http.ResponseWriter) {
	writer.WriteHeader(http.StatusNoContent)
}

// Error converts any Go error into the standardized {"msg": ...} response.
//
// Unclassified errors are downgraded to a generic 500 so that internal detail
// (query text, driver messages) never reaches the client; the full cause is
// logged server-side instead.
func Error(writer http.ResponseWriter, request *http.Request, err error) {
	appError := apperr.As(err)
	if appError == nil {
		logger := ctxutil.GetLogger(request.Context())
		logger.ErrorContext(request.Context(), "unclassified_error",
			slog.String("error", err.Error()),
			slog.String("request_id", ctxutil.GetRequestID(request.Context())),
		)
		appError = apperr.Internal(err)
	}

	// Always log 5xx errors as they indicate server-side issues.
	if appError.HTTPStatus >= 500 {
		logger := ctxutil.GetLogger(request.Context())
		logger.ErrorContext(request.Context(), "api_server_error",
			slog.String("code", appError.Code),
			slog.String("request_id", ctxutil.GetRequestID(request.Context())),
			slog.Any("cause", appError.Cause),
		)
	}

	JSON(writer, appError.HTTPStatus, ErrorEnvelope{Msg: appError.Message})
}
