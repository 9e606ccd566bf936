// Copyright 2026 MVGR Soft
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/mvgr-soft/taller/api"
	"github.com/mvgr-soft/taller/lib/config"
	"github.com/mvgr-soft/taller/lib/querycache"
	"github.com/mvgr-soft/taller/session"
	"github.com/mvgr-soft/taller/taller"
)

// App is the shared application context: configuration, the persisted
// session, and the wired API client. Commands build it once in Run.
type App struct {
	Config  *config.Config
	Store   *session.Store
	Client  *api.Client
	Service *taller.Service
	Logger  *slog.Logger
}

// NewApp loads the config and session and wires the API client with
// the bearer and expiry hooks. The plain CLI has no navigable surface,
// so the expiry hook only clears the dead session; the re-login hint
// is added by [DescribeError] when the command's error surfaces.
func NewApp(logger *slog.Logger) (*App, error) {
	return NewAppWith(logger, nil)
}

// NewAppWith is NewApp with an explicit navigator for the expiry hook.
// The dashboard passes its router here so a mid-flight 401 forces the
// login screen.
func NewAppWith(logger *slog.Logger, navigator api.Navigator) (*App, error) {
	if logger == nil {
		logger = NewCommandLogger()
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	store := session.Open(session.FilePath(), logger)

	timeout, err := cfg.RequestTimeout()
	if err != nil {
		return nil, err
	}
	client, err := api.NewClient(api.Config{
		BaseURL:    api.ResolveBaseURL(cfg.API.BaseURL),
		HTTPClient: &http.Client{Timeout: timeout},
		Logger:     logger,
	})
	if err != nil {
		return nil, err
	}
	client.OnRequest(api.BearerHook(store))
	client.OnResponse(api.ExpiryHook(store, navigator, logger))

	staleAfter, err := cfg.CacheStaleAfter()
	if err != nil {
		return nil, err
	}
	cache := querycache.New(querycache.Options{
		StaleAfter: staleAfter,
		Retries:    cfg.Cache.Retries,
		Logger:     logger,
	})

	return &App{
		Config:  cfg,
		Store:   store,
		Client:  client,
		Service: taller.NewService(client, cache),
		Logger:  logger,
	}, nil
}

// RequireSession returns an error when no session is held. Commands
// that talk to the backend call this first so the user gets a clear
// "log in first" message instead of a 401 round trip.
func (app *App) RequireSession() error {
	if !app.Store.Authenticated() {
		return fmt.Errorf("not logged in; run 'taller login <usuario>' first")
	}
	return nil
}

// DescribeError rewrites API errors into actionable CLI messages: an
// expired session gets a re-login hint, an unreachable backend names
// the base URL resolution order.
func DescribeError(err error) error {
	switch {
	case errors.Is(err, api.ErrSessionExpired):
		return fmt.Errorf("%s; run 'taller login <usuario>' to sign in again",
			api.ErrorMessage(err, "session expired"))
	case errors.Is(err, api.ErrUnavailable):
		return fmt.Errorf("backend unreachable: %w (set TALLER_API_URL or api.base_url in the config file)", err)
	default:
		return err
	}
}
