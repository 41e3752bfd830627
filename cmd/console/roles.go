package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/openconsole/openconsole/internal/api"
)

func newRolesCmd(c *api.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "roles",
		Short: "Manage roles",
	}

	var listParams api.ListParams
	list := &cobra.Command{
		Use:   "list",
		Short: "List roles",
		RunE: func(cmd *cobra.Command, args []string) error {
			roles, err := c.Roles.List(cmd.Context(), &listParams)
			if err != nil {
				return err
			}
			rows := make([][]string, 0, len(roles))
			for _, role := range roles {
				rows = append(rows, []string{role.ID, role.Name, deref(role.Description), strconv.Itoa(len(role.Permissions))})
			}
			printTable([]string{"ID", "NAME", "DESCRIPTION", "PERMISSIONS"}, rows)
			return nil
		},
	}
	listFlags(list, &listParams)

	get := &cobra.Command{
		Use:   "get <id>",
		Short: "Show one role",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			role, err := c.Roles.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printJSON(role)
		},
	}

	var createInput api.CreateRoleInput
	create := &cobra.Command{
		Use:   "create",
		Short: "Create a role",
		RunE: func(cmd *cobra.Command, args []string) error {
			role, err := c.Roles.Create(cmd.Context(), createInput)
			if err != nil {
				return err
			}
			return printJSON(role)
		},
	}
	create.Flags().StringVar(&createInput.Name, "name", "", "role name")
	create.Flags().StringVar(&createInput.Description, "description", "", "description")
	create.Flags().StringSliceVar(&createInput.PermissionIDs, "permission-ids", nil, "permission IDs to grant")
	create.MarkFlagRequired("name")

	var name, description string
	var permissionIDs []string
	update := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a role",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := api.UpdateRoleInput{PermissionIDs: permissionIDs}
			if cmd.Flags().Changed("name") {
				input.Name = &name
			}
			if cmd.Flags().Changed("description") {
				input.Description = &description
			}
			role, err := c.Roles.Update(cmd.Context(), args[0], input)
			if err != nil {
				return err
			}
			return printJSON(role)
		},
	}
	update.Flags().StringVar(&name, "name", "", "role name")
	update.Flags().StringVar(&description, "description", "", "description")
	update.Flags().StringSliceVar(&permissionIDs, "permission-ids", nil, "permission IDs to grant")

	del := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a role",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.Roles.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Println("Role deleted.")
			return nil
		},
	}

	cmd.AddCommand(list, get, create, update, del)
	return cmd
}

func newPermissionsCmd(c *api.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "permissions",
		Short: "Manage permission definitions",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List permissions",
		RunE: func(cmd *cobra.Command, args []string) error {
			permissions, err := c.Permissions.List(cmd.Context())
			if err != nil {
				return err
			}
			rows := make([][]string, 0, len(permissions))
			for _, p := range permissions {
				rows = append(rows, []string{p.ID, p.Name, p.Resource, p.Action})
			}
			printTable([]string{"ID", "NAME", "RESOURCE", "ACTION"}, rows)
			return nil
		},
	}

	var createInput api.CreatePermissionInput
	create := &cobra.Command{
		Use:   "create",
		Short: "Create a permission",
		RunE: func(cmd *cobra.Command, args []string) error {
			permission, err := c.Permissions.Create(cmd.Context(), createInput)
			if err != nil {
				return err
			}
			return printJSON(permission)
		},
	}
	create.Flags().StringVar(&createInput.Name, "name", "", "permission name")
	create.Flags().StringVar(&createInput.Resource, "resource", "", "resource")
	create.Flags().StringVar(&createInput.Action, "action", "", "action")
	create.Flags().StringVar(&createInput.Description, "description", "", "description")
	create.MarkFlagRequired("name")
	create.MarkFlagRequired("resource")
	create.MarkFlagRequired("action")

	cmd.AddCommand(list, create)
	return cmd
}
