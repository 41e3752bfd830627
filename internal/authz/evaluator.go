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

// Package authz derives authorization verdicts from the session's role and
// permission lists. Every query re-reads the store, so verdicts follow
// login, refresh, and logout without any caching layer.
package authz

import (
	"strings"

	"github.com/openconsole/openconsole/internal/session"
)

// Well-known role names. Role names arrive in mixed case from different
// API versions, so all role comparisons are case-insensitive.
const (
	RoleSuperAdmin  = "super_admin"
	RoleTenantAdmin = "tenant_admin"
)

// Evaluator answers role and permission membership queries for the
// current session. A missing user fails closed: every check is false and
// every list is empty.
type Evaluator struct {
	store *session.Store
}

// NewEvaluator creates an evaluator over the session store
func NewEvaluator(store *session.Store) *Evaluator {
	return &Evaluator{store: store}
}

// HasRole reports whether the user holds the role, compared
// case-insensitively.
func (e *Evaluator) HasRole(name string) bool {
	user := e.store.User()
	if user == nil {
		return false
	}
	for _, role := range user.Roles {
		if strings.EqualFold(role, name) {
			return true
		}
	}
	return false
}

// HasAnyRole reports whether the user holds at least one of the roles.
func (e *Evaluator) HasAnyRole(names ...string) bool {
	for _, name := range names {
		if e.HasRole(name) {
			return true
		}
	}
	return false
}

// HasAllRoles reports whether the user holds every one of the roles.
func (e *Evaluator) HasAllRoles(names ...string) bool {
	for _, name := range names {
		if !e.HasRole(name) {
			return false
		}
	}
	return true
}

// IsSuperAdmin reports whether the user holds the super_admin role.
func (e *Evaluator) IsSuperAdmin() bool {
	return e.HasRole(RoleSuperAdmin)
}

// IsTenantAdmin reports whether the user holds the tenant_admin role.
func (e *Evaluator) IsTenantAdmin() bool {
	return e.HasRole(RoleTenantAdmin)
}

// IsAdmin reports whether the user is a super admin or a tenant admin.
func (e *Evaluator) IsAdmin() bool {
	return e.IsSuperAdmin() || e.IsTenantAdmin()
}

// HasPermission reports whether the permission name is present, compared
// exactly. Permission names are case-sensitive, unlike roles.
func (e *Evaluator) HasPermission(name string) bool {
	user := e.store.User()
	if user == nil {
		return false
	}
	for _, p := range user.Permissions {
		if p == name {
			return true
		}
	}
	return false
}

// HasAnyPermission reports whether at least one permission is present.
func (e *Evaluator) HasAnyPermission(names ...string) bool {
	for _, name := range names {
		if e.HasPermission(name) {
			return true
		}
	}
	return false
}

// HasAllPermissions reports whether every permission is present.
func (e *Evaluator) HasAllPermissions(names ...string) bool {
	for _, name := range names {
		if !e.HasPermission(name) {
			return false
		}
	}
	return true
}

// Roles returns a copy of the user's role names.
func (e *Evaluator) Roles() []string {
	user := e.store.User()
	if user == nil {
		return []string{}
	}
	return append([]string{}, user.Roles...)
}

// Permissions returns a copy of the user's permission names.
func (e *Evaluator) Permissions() []string {
	user := e.store.User()
	if user == nil {
		return []string{}
	}
	return append([]string{}, user.Permissions...)
}
