// Copyright 2026 MVGR Soft
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/mvgr-soft/taller/session"
)

// fakeNavigator records forced navigations and reports a fixed route.
type fakeNavigator struct {
	route     string
	navigated int
}

func (n *fakeNavigator) CurrentRoute() string { return n.route }
func (n *fakeNavigator) NavigateLogin()       { n.navigated++ }

func newTestStore(t *testing.T) *session.Store {
	t.Helper()
	return session.Open(filepath.Join(t.TempDir(), "session.json"), nil)
}

// newTestClient wires a Client with the bearer and expiry hooks against
// a test server, the way cmd/taller assembles the real thing.
func newTestClient(t *testing.T, handler http.Handler, store *session.Store, navigator Navigator) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := NewClient(Config{BaseURL: server.URL})
	if err != nil {
		t.Fatalf("NewClient failed: %v", err)
	}
	client.OnRequest(BearerHook(store))
	client.OnResponse(ExpiryHook(store, navigator, nil))
	return client
}

func writeJSON(writer http.ResponseWriter, status int, value any) {
	writer.Header().Set("Content-Type", "application/json")
	writer.WriteHeader(status)
	json.NewEncoder(writer).Encode(value)
}

func TestBearerAttachment(t *testing.T) {
	t.Run("token present", func(t *testing.T) {
		store := newTestStore(t)
		store.Login("abc123", "admin")

		client := newTestClient(t, http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			if got := request.Header.Get("Authorization"); got != "Bearer abc123" {
				t.Errorf("unexpected Authorization header: %q", got)
			}
			writeJSON(writer, http.StatusOK, []any{})
		}), store, nil)

		if err := client.Get(context.Background(), "/clientes", nil); err != nil {
			t.Fatalf("Get failed: %v", err)
		}
	})

	t.Run("no token", func(t *testing.T) {
		store := newTestStore(t)

		client := newTestClient(t, http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			if _, present := request.Header["Authorization"]; present {
				t.Error("Authorization header should be omitted entirely without a session")
			}
			writeJSON(writer, http.StatusOK, []any{})
		}), store, nil)

		if err := client.Get(context.Background(), "/clientes", nil); err != nil {
			t.Fatalf("Get failed: %v", err)
		}
	})
}

func TestContentTypeAlwaysJSON(t *testing.T) {
	store := newTestStore(t)
	client := newTestClient(t, http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		if got := request.Header.Get("Content-Type"); got != "application/json" {
			t.Errorf("unexpected Content-Type: %q", got)
		}
		writer.WriteHeader(http.StatusNoContent)
	}), store, nil)

	if err := client.Delete(context.Background(), "/clientes/1"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
}

func TestSuccessDecodesBody(t *testing.T) {
	store := newTestStore(t)
	client := newTestClient(t, http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		writeJSON(writer, http.StatusOK, map[string]any{"id": 7, "nombre": "Ana"})
	}), store, nil)

	var result struct {
		ID     int    `json:"id"`
		Nombre string `json:"nombre"`
	}
	if err := client.Get(context.Background(), "/clientes/7", &result); err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if result.ID != 7 || result.Nombre != "Ana" {
		t.Errorf("unexpected decoded body: %+v", result)
	}
}

func TestExpiryClearsSessionAndRedirects(t *testing.T) {
	store := newTestStore(t)
	store.Login("stale-token", "admin")
	navigator := &fakeNavigator{route: RouteDashboard}

	client := newTestClient(t, http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		writeJSON(writer, http.StatusUnauthorized, map[string]string{"message": "token expirado"})
	}), store, navigator)

	err := client.Get(context.Background(), "/clientes", nil)
	if !errors.Is(err, ErrSessionExpired) {
		t.Fatalf("expected ErrSessionExpired, got %v", err)
	}

	if store.Authenticated() {
		t.Error("session should be cleared after a 401")
	}
	if navigator.navigated != 1 {
		t.Errorf("expected exactly one redirect, got %d", navigator.navigated)
	}

	// The rejection still reaches the caller with structure intact.
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatal("expected *APIError in chain")
	}
	if apiErr.StatusCode != http.StatusUnauthorized || apiErr.Message != "token expirado" {
		t.Errorf("unexpected APIError: %+v", apiErr)
	}
}

func TestExpiryOnLoginRouteSkipsRedirect(t *testing.T) {
	store := newTestStore(t)
	store.Login("stale-token", "admin")
	navigator := &fakeNavigator{route: RouteLogin}

	client := newTestClient(t, http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		writeJSON(writer, http.StatusUnauthorized, map[string]string{"message": "token expirado"})
	}), store, navigator)

	err := client.Get(context.Background(), "/clientes", nil)
	if !errors.Is(err, ErrSessionExpired) {
		t.Fatalf("expected ErrSessionExpired, got %v", err)
	}

	if store.Authenticated() {
		t.Error("session should be cleared even when already on the login screen")
	}
	if navigator.navigated != 0 {
		t.Errorf("no redirect expected on the login route, got %d", navigator.navigated)
	}
}

func TestNonAuthFailurePropagatesUntouched(t *testing.T) {
	store := newTestStore(t)
	store.Login("tok", "admin")
	navigator := &fakeNavigator{route: RouteDashboard}

	client := newTestClient(t, http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		writeJSON(writer, http.StatusConflict, map[string]string{"error": "el cliente tiene equipos asociados"})
	}), store, navigator)

	err := client.Delete(context.Background(), "/clientes/3")
	if err == nil {
		t.Fatal("expected an error")
	}
	if errors.Is(err, ErrSessionExpired) || errors.Is(err, ErrCredentialsRejected) {
		t.Errorf("non-401 must not classify as an auth failure: %v", err)
	}

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatal("expected *APIError in chain")
	}
	if apiErr.StatusCode != http.StatusConflict {
		t.Errorf("unexpected status: %d", apiErr.StatusCode)
	}
	if got := ErrorMessage(err, "fallback"); got != "el cliente tiene equipos asociados" {
		t.Errorf("unexpected message: %q", got)
	}

	if !store.Authenticated() {
		t.Error("non-401 failures must not touch the session")
	}
	if navigator.navigated != 0 {
		t.Error("non-401 failures must not navigate")
	}
}

func TestNetworkFailure(t *testing.T) {
	store := newTestStore(t)
	store.Login("tok", "admin")

	// A server that is immediately closed produces connection refused.
	server := httptest.NewServer(http.NotFoundHandler())
	baseURL := server.URL
	server.Close()

	client, err := NewClient(Config{BaseURL: baseURL})
	if err != nil {
		t.Fatalf("NewClient failed: %v", err)
	}
	client.OnRequest(BearerHook(store))
	client.OnResponse(ExpiryHook(store, nil, nil))

	err = client.Get(context.Background(), "/clientes", nil)
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
	if !store.Authenticated() {
		t.Error("transport failures must not clear the session")
	}
	if got := ErrorMessage(err, "sin conexión"); got != "sin conexión" {
		t.Errorf("network failures should use the fallback message, got %q", got)
	}
}

func TestLoginRejectionKeepsExistingSession(t *testing.T) {
	store := newTestStore(t)
	store.Login("valid-token", "admin")
	navigator := &fakeNavigator{route: RouteLogin}

	client := newTestClient(t, http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		if _, present := request.Header["Authorization"]; request.URL.Path == loginPath && present {
			// The bearer hook attaches whatever the store holds; a
			// login retry with a live session is legal and harmless.
			t.Logf("login carried Authorization (session present)")
		}
		writeJSON(writer, http.StatusUnauthorized, map[string]string{"message": "Credenciales inválidas"})
	}), store, navigator)

	_, err := client.Login(context.Background(), "admin", "wrong")
	if !errors.Is(err, ErrCredentialsRejected) {
		t.Fatalf("expected ErrCredentialsRejected, got %v", err)
	}
	if errors.Is(err, ErrSessionExpired) {
		t.Error("a rejected login must not classify as session expiry")
	}
	if got := ErrorMessage(err, "fallback"); got != "Credenciales inválidas" {
		t.Errorf("unexpected message: %q", got)
	}

	// The redesigned contract: a wrong password does not tear down an
	// unrelated live session, and never navigates.
	if !store.Authenticated() {
		t.Error("rejected login must not clear an existing session")
	}
	if navigator.navigated != 0 {
		t.Error("rejected login must not navigate")
	}
}

func TestLoginSuccess(t *testing.T) {
	store := newTestStore(t)
	client := newTestClient(t, http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		if request.URL.Path != loginPath || request.Method != http.MethodPost {
			t.Errorf("unexpected request: %s %s", request.Method, request.URL.Path)
		}
		if _, present := request.Header["Authorization"]; present {
			t.Error("login with no session should carry no Authorization header")
		}
		var body LoginRequest
		if err := json.NewDecoder(request.Body).Decode(&body); err != nil {
			t.Fatalf("decoding login body: %v", err)
		}
		if body.Username != "a" || body.Password != "b" {
			t.Errorf("unexpected credentials: %+v", body)
		}
		writeJSON(writer, http.StatusOK, LoginResponse{Token: "issued", Username: "a", Role: "ADMIN"})
	}), store, nil)

	response, err := client.Login(context.Background(), "a", "b")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if response.Token != "issued" || response.Username != "a" || response.Role != "ADMIN" {
		t.Errorf("unexpected login response: %+v", response)
	}
}

func TestErrorMessagePrecedence(t *testing.T) {
	cases := []struct {
		name string
		body map[string]string
		want string
	}{
		{"message wins", map[string]string{"message": "m", "error": "e", "detail": "d"}, "m"},
		{"error next", map[string]string{"error": "e", "detail": "d"}, "e"},
		{"detail last", map[string]string{"detail": "d"}, "d"},
		{"empty payload falls back", map[string]string{}, "fallback"},
	}

	for _, testCase := range cases {
		t.Run(testCase.name, func(t *testing.T) {
			store := newTestStore(t)
			client := newTestClient(t, http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
				writeJSON(writer, http.StatusBadRequest, testCase.body)
			}), store, nil)

			err := client.Get(context.Background(), "/repuestos", nil)
			if err == nil {
				t.Fatal("expected an error")
			}
			if got := ErrorMessage(err, "fallback"); got != testCase.want {
				t.Errorf("got %q, want %q", got, testCase.want)
			}
		})
	}
}

func TestHookOrdering(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		writeJSON(writer, http.StatusOK, nil)
	}))
	t.Cleanup(server.Close)

	client, err := NewClient(Config{BaseURL: server.URL})
	if err != nil {
		t.Fatalf("NewClient failed: %v", err)
	}

	var order []string
	client.OnRequest(func(*http.Request) { order = append(order, "req-1") })
	client.OnRequest(func(*http.Request) { order = append(order, "req-2") })
	client.OnResponse(func(*http.Response, error) { order = append(order, "resp-1") })
	client.OnResponse(func(*http.Response, error) { order = append(order, "resp-2") })

	if err := client.Get(context.Background(), "/", nil); err != nil {
		t.Fatalf("Get failed: %v", err)
	}

	want := []string{"req-1", "req-2", "resp-1", "resp-2"}
	if len(order) != len(want) {
		t.Fatalf("unexpected hook calls: %v", order)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("hooks ran out of order: %v", order)
		}
	}
}
