// Copyright 2026 MVGR Soft
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"errors"
	"fmt"
)

// Failure kinds. The dispatch path classifies every failed request into
// exactly one of these (or none, for plain server rejections); hooks
// and callers test with errors.Is.
var (
	// ErrSessionExpired marks a 401 on an authenticated route. The
	// expiry hook reacts to this kind only.
	ErrSessionExpired = errors.New("session expired")

	// ErrCredentialsRejected marks a 401 from the login endpoint:
	// bad username or password, not a dead session.
	ErrCredentialsRejected = errors.New("credentials rejected")

	// ErrUnavailable marks a request that got no response at all —
	// connection refused, timeout, DNS failure.
	ErrUnavailable = errors.New("server unavailable")
)

// APIError is a structured error response from the backend. Callers
// use errors.As to extract it:
//
//	var apiErr *api.APIError
//	if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound { ... }
type APIError struct {
	// StatusCode is the HTTP status of the response.
	StatusCode int
	// Status is the HTTP status text (e.g., "404 Not Found").
	Status string
	// Message is the server-supplied error description, taken from the
	// first non-empty of the payload's "message", "error" or "detail"
	// fields. Empty when the server sent no usable payload.
	Message string

	// kind is the failure classification assigned at dispatch time
	// (ErrSessionExpired, ErrCredentialsRejected), or nil for plain
	// server rejections.
	kind error
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api: %s: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("api: %s", e.Status)
}

// Unwrap exposes the failure kind so errors.Is(err, ErrSessionExpired)
// and friends work through the *APIError.
func (e *APIError) Unwrap() error {
	return e.kind
}

// ErrorMessage extracts a user-facing message from err: the server's
// own message when one exists, the fallback otherwise. Safe to call
// with a nil error (returns the fallback).
func ErrorMessage(err error, fallback string) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}

// errorPayload is the wire shape of backend error bodies. Different
// framework layers of the backend use different field names; all three
// are tried in order.
type errorPayload struct {
	Message string `json:"message"`
	Error   string `json:"error"`
	Detail  string `json:"detail"`
}

// message returns the first non-empty field.
func (p errorPayload) message() string {
	switch {
	case p.Message != "":
		return p.Message
	case p.Error != "":
		return p.Error
	default:
		return p.Detail
	}
}
