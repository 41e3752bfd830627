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

// Package session holds the authenticated session for the console client:
// token pair, user record, and authentication flag, persisted to a durable
// snapshot on every mutation.
package session

import (
	"log/slog"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// User is the authenticated user record returned by login and refresh.
// Roles and Permissions are the flat name lists the server resolved for
// this identity.
type User struct {
	ID           string   `json:"id"`
	Email        string   `json:"email"`
	FirstName    string   `json:"firstName"`
	LastName     string   `json:"lastName"`
	TenantID     *string  `json:"tenantId"`
	Roles        []string `json:"roles"`
	Permissions  []string `json:"permissions"`
	IsSuperAdmin bool     `json:"isSuperAdmin,omitempty"`
}

// Auth is the payload of a successful login or refresh.
type Auth struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	User         User   `json:"user"`
}

// Persister saves and loads the session snapshot.
type Persister interface {
	Load(v any) (bool, error)
	Save(v any) error
}

// Store holds the session state. All mutations persist synchronously; a
// read immediately after a write observes the new value.
//
// Invariant: IsAuthenticated() == (AccessToken() != "").
type Store struct {
	mu            sync.RWMutex
	accessToken   string
	refreshToken  string
	user          *User
	authenticated bool
	persister     Persister
}

const snapshotVersion = 1

type snapshot struct {
	Version         int    `json:"version"`
	AccessToken     string `json:"accessToken"`
	RefreshToken    string `json:"refreshToken"`
	User            *User  `json:"user"`
	IsAuthenticated bool   `json:"isAuthenticated"`
}

// NewStore creates a session store hydrated from the persister. A missing,
// malformed, or version-mismatched snapshot yields an empty session.
// A nil persister gives a purely in-memory store.
func NewStore(p Persister) *Store {
	s := &Store{persister: p}
	if p == nil {
		return s
	}

	var snap snapshot
	ok, err := p.Load(&snap)
	if err != nil {
		slog.Warn("failed to load session snapshot", "error", err.Error())
		return s
	}
	if !ok || snap.Version != snapshotVersion {
		return s
	}

	s.accessToken = snap.AccessToken
	s.refreshToken = snap.RefreshToken
	s.user = snap.User
	// Re-derive rather than trust the stored flag.
	s.authenticated = snap.AccessToken != ""
	return s
}

// SetTokens replaces both tokens and marks the session authenticated.
func (s *Store) SetTokens(accessToken, refreshToken string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accessToken = accessToken
	s.refreshToken = refreshToken
	s.authenticated = true
	s.persist()
}

// SetUser replaces the user record only.
func (s *Store) SetUser(user User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u := cloneUser(&user)
	s.user = u
	s.persist()
}

// SetAuth atomically replaces tokens and user after a login or refresh.
// This is the only mutation that should follow a fresh authentication, to
// avoid a window where tokens and user disagree.
func (s *Store) SetAuth(auth Auth) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accessToken = auth.AccessToken
	s.refreshToken = auth.RefreshToken
	s.user = cloneUser(&auth.User)
	s.authenticated = true
	s.persist()
}

// Logout resets the session to its empty state. Idempotent.
func (s *Store) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accessToken = ""
	s.refreshToken = ""
	s.user = nil
	s.authenticated = false
	s.persist()
}

// AccessToken returns the current access token, empty when logged out.
func (s *Store) AccessToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.accessToken
}

// RefreshToken returns the current refresh token, empty when logged out.
func (s *Store) RefreshToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.refreshToken
}

// User returns a copy of the authenticated user, or nil when logged out.
func (s *Store) User() *User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneUser(s.user)
}

// IsAuthenticated reports whether an access token is present.
func (s *Store) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.authenticated
}

// TokenExpiry reports the exp claim of the access token without verifying
// its signature. It returns the zero time when there is no token or the
// token is opaque.
func (s *Store) TokenExpiry() time.Time {
	token := s.AccessToken()
	if token == "" {
		return time.Time{}
	}
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}
	}
	return exp.Time
}

// persist writes the snapshot; callers must hold the write lock.
// Persistence is best effort: a failed write never blocks the mutation,
// matching browser storage semantics.
func (s *Store) persist() {
	if s.persister == nil {
		return
	}
	snap := snapshot{
		Version:         snapshotVersion,
		AccessToken:     s.accessToken,
		RefreshToken:    s.refreshToken,
		User:            s.user,
		IsAuthenticated: s.authenticated,
	}
	if err := s.persister.Save(snap); err != nil {
		slog.Warn("failed to persist session", "error", err.Error())
	}
}

func cloneUser(u *User) *User {
	if u == nil {
		return nil
	}
	c := *u
	if u.TenantID != nil {
		id := *u.TenantID
		c.TenantID = &id
	}
	c.Roles = append([]string(nil), u.Roles...)
	c.Permissions = append([]string(nil), u.Permissions...)
	return &c
}
