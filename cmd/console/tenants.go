package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/openconsole/openconsole/internal/api"
	"github.com/openconsole/openconsole/internal/tenantctx"
)

func newTenantCmd(c *api.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tenant",
		Short: "Manage tenants and the acting tenant context",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List tenants",
		RunE: func(cmd *cobra.Command, args []string) error {
			tenants, err := c.TenantAPI.List(cmd.Context(), nil)
			if err != nil {
				return err
			}
			rows := make([][]string, 0, len(tenants))
			for _, t := range tenants {
				rows = append(rows, []string{t.ID, t.Name, t.Slug})
			}
			printTable([]string{"ID", "NAME", "SLUG"}, rows)
			return nil
		},
	}

	get := &cobra.Command{
		Use:   "get <id>",
		Short: "Show one tenant",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tenant, err := c.TenantAPI.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printJSON(tenant)
		},
	}

	var createInput api.CreateTenantInput
	create := &cobra.Command{
		Use:   "create",
		Short: "Create a tenant",
		RunE: func(cmd *cobra.Command, args []string) error {
			tenant, err := c.TenantAPI.Create(cmd.Context(), createInput)
			if err != nil {
				return err
			}
			return printJSON(tenant)
		},
	}
	create.Flags().StringVar(&createInput.Name, "name", "", "tenant display name")
	create.Flags().StringVar(&createInput.Slug, "slug", "", "tenant slug")
	create.MarkFlagRequired("name")
	create.MarkFlagRequired("slug")

	del := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a tenant",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.TenantAPI.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Println("Tenant deleted.")
			return nil
		},
	}

	sel := &cobra.Command{
		Use:   "select <id>",
		Short: "Select the tenant to act on (super admin only)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !c.Eval.IsSuperAdmin() {
				return fmt.Errorf("only a super admin can select a tenant context")
			}
			tenant, err := c.TenantAPI.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			c.Tenants.Select(tenantctx.Tenant{ID: tenant.ID, Name: tenant.Name, Slug: tenant.Slug})
			fmt.Printf("Acting on tenant %s (%s).\n", tenant.Name, tenant.ID)
			return nil
		},
	}

	clear := &cobra.Command{
		Use:   "clear",
		Short: "Clear the acting tenant context",
		RunE: func(cmd *cobra.Command, args []string) error {
			c.Tenants.Clear()
			fmt.Println("Tenant context cleared.")
			return nil
		},
	}

	cmd.AddCommand(list, get, create, del, sel, clear)
	return cmd
}
