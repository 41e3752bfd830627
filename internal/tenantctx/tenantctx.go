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

// Package tenantctx tracks the tenant a super-admin is currently acting
// on behalf of. Ordinary tenant-scoped users never select a tenant.
package tenantctx

import (
	"log/slog"
	"sync"
)

// Tenant is the selected tenant context.
type Tenant struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// Persister saves and loads the tenant-selection snapshot.
type Persister interface {
	Load(v any) (bool, error)
	Save(v any) error
}

// Store holds the tenant selection, persisted independently from the
// session snapshot. The two files are not updated atomically with respect
// to each other; a crash between writes is an accepted risk.
type Store struct {
	mu        sync.RWMutex
	selected  *Tenant
	persister Persister
}

const snapshotVersion = 1

type snapshot struct {
	Version  int     `json:"version"`
	Selected *Tenant `json:"selectedTenant"`
}

// NewStore creates a tenant store hydrated from the persister. Malformed
// or version-mismatched snapshots are treated as no selection.
func NewStore(p Persister) *Store {
	s := &Store{persister: p}
	if p == nil {
		return s
	}

	var snap snapshot
	ok, err := p.Load(&snap)
	if err != nil {
		slog.Warn("failed to load tenant snapshot", "error", err.Error())
		return s
	}
	if !ok || snap.Version != snapshotVersion {
		return s
	}
	s.selected = snap.Selected
	return s
}

// Select replaces the selected tenant. No validation is performed; the
// caller is responsible for offering only real tenants.
func (s *Store) Select(t Tenant) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sel := t
	s.selected = &sel
	s.persist()
}

// Clear removes the selection.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selected = nil
	s.persist()
}

// Selected returns a copy of the selected tenant, or nil.
func (s *Store) Selected() *Tenant {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.selected == nil {
		return nil
	}
	sel := *s.selected
	return &sel
}

func (s *Store) persist() {
	if s.persister == nil {
		return
	}
	snap := snapshot{Version: snapshotVersion, Selected: s.selected}
	if err := s.persister.Save(snap); err != nil {
		slog.Warn("failed to persist tenant selection", "error", err.Error())
	}
}
