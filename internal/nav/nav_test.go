package nav

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/openconsole/openconsole/internal/authz"
	"github.com/openconsole/openconsole/internal/session"
	"github.com/openconsole/openconsole/internal/tenantctx"
)

func guardsFor(roles []string) (*Guards, *session.Store, *tenantctx.Store) {
	sess := session.NewStore(nil)
	if roles != nil {
		sess.SetAuth(session.Auth{
			AccessToken: "token",
			User:        session.User{ID: "user-1", Roles: roles},
		})
	}
	tenants := tenantctx.NewStore(nil)
	g := NewGuards(sess, tenants, authz.NewEvaluator(sess))
	return g, sess, tenants
}

func TestGuards_Authenticated(t *testing.T) {
	g, _, _ := guardsFor(nil)
	d := g.Authenticated()
	assert.False(t, d.Allow)
	assert.Equal(t, RouteLogin, d.Redirect)

	g, _, _ = guardsFor([]string{"member"})
	assert.True(t, g.Authenticated().Allow)
}

func TestGuards_AdminOnly(t *testing.T) {
	g, _, _ := guardsFor(nil)
	d := g.AdminOnly()
	assert.False(t, d.Allow)
	assert.Equal(t, RouteLogin, d.Redirect)

	g, _, _ = guardsFor([]string{"member"})
	d = g.AdminOnly()
	assert.False(t, d.Allow)
	assert.Equal(t, ProfileRoute("user-1"), d.Redirect)

	g, _, _ = guardsFor([]string{"tenant_admin"})
	assert.True(t, g.AdminOnly().Allow)

	g, _, _ = guardsFor([]string{"super_admin"})
	assert.True(t, g.AdminOnly().Allow)
}

func TestGuards_DefaultLanding(t *testing.T) {
	g, _, _ := guardsFor(nil)
	assert.Equal(t, RouteLogin, g.DefaultLanding())

	// Super admin with no tenant selected lands on the tenant picker.
	g, _, tenants := guardsFor([]string{"super_admin"})
	assert.Equal(t, RouteTenants, g.DefaultLanding())

	tenants.Select(tenantctx.Tenant{ID: "t1", Name: "Acme", Slug: "acme"})
	assert.Equal(t, RouteDashboard, g.DefaultLanding())

	g, _, _ = guardsFor([]string{"tenant_admin"})
	assert.Equal(t, RouteDashboard, g.DefaultLanding())

	g, _, _ = guardsFor([]string{"member"})
	assert.Equal(t, ProfileRoute("user-1"), g.DefaultLanding())
}

func TestGuards_FollowLogout(t *testing.T) {
	g, sess, _ := guardsFor([]string{"super_admin"})
	assert.True(t, g.AdminOnly().Allow)

	sess.Logout()
	d := g.AdminOnly()
	assert.False(t, d.Allow)
	assert.Equal(t, RouteLogin, d.Redirect)
}
