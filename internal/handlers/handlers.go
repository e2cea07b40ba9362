// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package handlers contains the HTTP handlers for the toolindex API.
// Handlers are grouped by concern (categories, tools, auth, sitemap) and
// receive their dependencies through the handler struct. They translate
// HTTP requests into service calls and service errors into status codes;
// all business rules live in the service layer.
package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"toolindex/internal/apierr"
)

// envelope is the mutation response shape the API clients expect.
type envelope struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// errorBody is the JSON shape of every failure response.
type errorBody struct {
	Status  string `json:"status"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// writeJSON serializes v with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("write json failed", "error", err)
	}
}

// writeSuccess writes the {status, message, data} mutation envelope.
func writeSuccess(w http.ResponseWriter, status int, message string, data any) {
	writeJSON(w, status, envelope{Status: "success", Message: message, Data: data})
}

// writeError maps a service error onto its HTTP status. Anything that is
// not a typed *apierr.Error is treated as internal; the cause is logged
// but never sent to the caller.
func writeError(w http.ResponseWriter, err error) {
	var apiErr *apierr.Error
	if !errors.As(err, &apiErr) {
		apiErr = apierr.Internal(err)
	}

	if apiErr.Kind == apierr.KindInternal {
		slog.Error("internal error", "error", errors.Unwrap(apiErr))
	}

	writeJSON(w, apiErr.HTTPStatus(), errorBody{
		Status:  "error",
		Code:    apiErr.Kind.String(),
		Message: apiErr.Message,
	})
}

// decodeJSON reads the request body into dst, reporting malformed JSON as
// a validation failure.
func decodeJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return apierr.Validation("invalid request body")
	}
	return nil
}
