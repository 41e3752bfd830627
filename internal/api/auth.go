// Copyright 2026 The OpenConsole Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package api

import (
	"context"
	"log/slog"

	"github.com/openconsole/openconsole/internal/observability/logger"
	"github.com/openconsole/openconsole/internal/session"
	"github.com/openconsole/openconsole/internal/transport"
)

// OnboardInput creates the very first super admin during system
// initialization.
type OnboardInput struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// RegisterInput self-registers a new tenant with its first admin.
type RegisterInput struct {
	TenantName string `json:"tenantName"`
	TenantSlug string `json:"tenantSlug"`
	Email      string `json:"email"`
	Password   string `json:"password"`
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
}

// LoginInput holds user credentials. TenantSlug is optional and scopes
// the login to one tenant when the same email exists in several.
type LoginInput struct {
	Email      string `json:"email"`
	Password   string `json:"password"`
	TenantSlug string `json:"tenantSlug,omitempty"`
}

// AuthRepository wraps the authentication endpoints.
type AuthRepository struct {
	client  *transport.Client
	session *session.Store
}

// NewAuthRepository creates the auth repository
func NewAuthRepository(client *transport.Client, sess *session.Store) *AuthRepository {
	return &AuthRepository{client: client, session: sess}
}

// Onboard performs one-time system initialization.
func (r *AuthRepository) Onboard(ctx context.Context, input OnboardInput) error {
	env, err := r.client.Post(ctx, "/auth/onboard", input)
	if err != nil {
		return err
	}
	return confirm(env)
}

// Register self-registers a tenant.
func (r *AuthRepository) Register(ctx context.Context, input RegisterInput) error {
	env, err := r.client.Post(ctx, "/auth/register", input)
	if err != nil {
		return err
	}
	return confirm(env)
}

// Login exchanges credentials for a token pair and user record, and
// stores the full authentication atomically in the session.
func (r *AuthRepository) Login(ctx context.Context, input LoginInput) (*session.Auth, error) {
	env, err := r.client.Post(ctx, "/auth/login", input)
	if err != nil {
		return nil, err
	}
	auth, err := results[session.Auth](env)
	if err != nil {
		return nil, err
	}
	r.session.SetAuth(auth)
	return &auth, nil
}

// Refresh exchanges a refresh token for a new token pair. The pipeline
// performs its own refreshes internally; this entry point serves explicit
// UI-driven renewal.
func (r *AuthRepository) Refresh(ctx context.Context, refreshToken string) (*session.Auth, error) {
	env, err := r.client.Post(ctx, "/auth/refresh", map[string]string{"refreshToken": refreshToken})
	if err != nil {
		return nil, err
	}
	auth, err := results[session.Auth](env)
	if err != nil {
		return nil, err
	}
	r.session.SetAuth(auth)
	return &auth, nil
}

// Logout invalidates the refresh token server-side and clears the local
// session. The server call is best effort: a failure is logged and never
// blocks local logout.
func (r *AuthRepository) Logout(ctx context.Context) {
	if refreshToken := r.session.RefreshToken(); refreshToken != "" {
		env, err := r.client.Post(ctx, "/auth/logout", map[string]string{"refreshToken": refreshToken})
		if err == nil {
			err = confirm(env)
		}
		if err != nil {
			slog.WarnContext(ctx, "server-side logout failed, clearing local session anyway",
				logger.Component("api"), logger.Error(err))
		}
	}
	r.session.Logout()
}
