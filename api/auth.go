// Copyright 2026 MVGR Soft
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"context"
	"net/http"
)

// loginPath is the only endpoint dispatched on the login path (its
// 401s mean "wrong credentials", not "dead session").
const loginPath = "/auth/login"

// LoginRequest is the credentials payload for POST /auth/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse is the token issued by a successful login.
type LoginResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
	Role     string `json:"role,omitempty"`
}

// Login exchanges credentials for a bearer token. The call goes
// through the regular hook chains (no credential exists yet, so the
// bearer hook attaches nothing), but a 401 here classifies as
// ErrCredentialsRejected — it never clears an existing session and
// never triggers the expiry navigation.
//
// The caller decides what to do with the token; typically
// session.Store.Login with the returned values.
func (c *Client) Login(ctx context.Context, username, password string) (*LoginResponse, error) {
	var response LoginResponse
	err := c.do(ctx, http.MethodPost, loginPath, LoginRequest{
		Username: username,
		Password: password,
	}, &response, true)
	if err != nil {
		return nil, err
	}
	return &response, nil
}
