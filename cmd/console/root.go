package main

import (
	"github.com/spf13/cobra"

	"github.com/openconsole/openconsole/internal/api"
)

func newRootCmd(c *api.Container) *cobra.Command {
	root := &cobra.Command{
		Use:   "console",
		Short: "Administration console for the multi-tenant user-management API",
		Long: `console manages users, roles, permissions, and tenants through the
user-management REST API. Sessions persist between invocations; a super
admin can select a tenant context to act across tenants.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newOnboardCmd(c),
		newRegisterCmd(c),
		newLoginCmd(c),
		newLogoutCmd(c),
		newWhoamiCmd(c),
		newHomeCmd(c),
		newTenantCmd(c),
		newUsersCmd(c),
		newRolesCmd(c),
		newPermissionsCmd(c),
		newProfileCmd(c),
	)
	return root
}
