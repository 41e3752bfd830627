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

// Package nav gates navigation between console views. Guards are pure
// reads over the session store and permission evaluator; they are
// evaluated on every call so a role change or tenant selection is
// reflected immediately.
package nav

import (
	"fmt"

	"github.com/openconsole/openconsole/internal/authz"
	"github.com/openconsole/openconsole/internal/session"
	"github.com/openconsole/openconsole/internal/tenantctx"
)

// Route is a console view path.
type Route string

// Console routes
const (
	RouteLogin     Route = "/login"
	RouteDashboard Route = "/dashboard"
	RouteTenants   Route = "/tenants"
	RouteUsers     Route = "/users"
)

// ProfileRoute returns the profile view for a user.
func ProfileRoute(userID string) Route {
	return Route(fmt.Sprintf("/profile/%s", userID))
}

// Decision is a guard verdict: either the view is allowed, or navigation
// must be redirected.
type Decision struct {
	Allow    bool
	Redirect Route
}

func allow() Decision           { return Decision{Allow: true} }
func redirect(r Route) Decision { return Decision{Redirect: r} }

// Guards evaluates access to protected views.
type Guards struct {
	session *session.Store
	tenants *tenantctx.Store
	eval    *authz.Evaluator
}

// NewGuards creates the guard set
func NewGuards(sess *session.Store, tenants *tenantctx.Store, eval *authz.Evaluator) *Guards {
	return &Guards{session: sess, tenants: tenants, eval: eval}
}

// Authenticated gates any protected view: unauthenticated visitors are
// redirected to the login view.
func (g *Guards) Authenticated() Decision {
	if !g.session.IsAuthenticated() {
		return redirect(RouteLogin)
	}
	return allow()
}

// AdminOnly gates admin views. Non-admin users are redirected to their
// own profile rather than a forbidden page; regular users self-serve.
func (g *Guards) AdminOnly() Decision {
	if d := g.Authenticated(); !d.Allow {
		return d
	}
	if !g.eval.IsAdmin() {
		userID := ""
		if user := g.session.User(); user != nil {
			userID = user.ID
		}
		return redirect(ProfileRoute(userID))
	}
	return allow()
}

// DefaultLanding resolves the landing view for the current identity:
// a super admin without a tenant selection goes to the tenant picker, a
// super admin with a selection or a tenant admin goes to the dashboard,
// and everyone else goes to their own profile.
func (g *Guards) DefaultLanding() Route {
	if d := g.Authenticated(); !d.Allow {
		return d.Redirect
	}

	if g.eval.IsSuperAdmin() {
		if g.tenants.Selected() == nil {
			return RouteTenants
		}
		return RouteDashboard
	}
	if g.eval.IsAdmin() {
		return RouteDashboard
	}

	userID := ""
	if user := g.session.User(); user != nil {
		userID = user.ID
	}
	return ProfileRoute(userID)
}
