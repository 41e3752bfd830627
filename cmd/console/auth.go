package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/openconsole/openconsole/internal/api"
)

func newOnboardCmd(c *api.Container) *cobra.Command {
	var input api.OnboardInput
	cmd := &cobra.Command{
		Use:   "onboard",
		Short: "One-time system initialization: create the first super admin",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.Auth.Onboard(cmd.Context(), input); err != nil {
				return err
			}
			fmt.Println("System onboarded. You can now log in.")
			return nil
		},
	}
	cmd.Flags().StringVar(&input.Email, "email", "", "admin email")
	cmd.Flags().StringVar(&input.Password, "password", "", "admin password")
	cmd.Flags().StringVar(&input.FirstName, "first-name", "", "first name")
	cmd.Flags().StringVar(&input.LastName, "last-name", "", "last name")
	cmd.MarkFlagRequired("email")
	cmd.MarkFlagRequired("password")
	return cmd
}

func newRegisterCmd(c *api.Container) *cobra.Command {
	var input api.RegisterInput
	cmd := &cobra.Command{
		Use:   "register",
		Short: "Self-register a new tenant with its first admin",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.Auth.Register(cmd.Context(), input); err != nil {
				return err
			}
			fmt.Printf("Tenant %q registered. You can now log in.\n", input.TenantName)
			return nil
		},
	}
	cmd.Flags().StringVar(&input.TenantName, "tenant-name", "", "tenant display name")
	cmd.Flags().StringVar(&input.TenantSlug, "tenant-slug", "", "tenant slug")
	cmd.Flags().StringVar(&input.Email, "email", "", "admin email")
	cmd.Flags().StringVar(&input.Password, "password", "", "admin password")
	cmd.Flags().StringVar(&input.FirstName, "first-name", "", "first name")
	cmd.Flags().StringVar(&input.LastName, "last-name", "", "last name")
	cmd.MarkFlagRequired("tenant-name")
	cmd.MarkFlagRequired("tenant-slug")
	cmd.MarkFlagRequired("email")
	cmd.MarkFlagRequired("password")
	return cmd
}

func newLoginCmd(c *api.Container) *cobra.Command {
	var input api.LoginInput
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in and persist the session",
		RunE: func(cmd *cobra.Command, args []string) error {
			auth, err := c.Auth.Login(cmd.Context(), input)
			if err != nil {
				return err
			}
			fmt.Printf("Signed in as %s %s <%s>\n", auth.User.FirstName, auth.User.LastName, auth.User.Email)
			if len(auth.User.Roles) > 0 {
				fmt.Printf("Roles: %s\n", strings.Join(auth.User.Roles, ", "))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&input.Email, "email", "", "email")
	cmd.Flags().StringVar(&input.Password, "password", "", "password")
	cmd.Flags().StringVar(&input.TenantSlug, "tenant-slug", "", "tenant slug (optional)")
	cmd.MarkFlagRequired("email")
	cmd.MarkFlagRequired("password")
	return cmd
}

func newLogoutCmd(c *api.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Sign out, invalidating the refresh token server-side",
		RunE: func(cmd *cobra.Command, args []string) error {
			c.Auth.Logout(cmd.Context())
			// Tenant selection is meaningless without an identity.
			c.Tenants.Clear()
			fmt.Println("Signed out.")
			return nil
		},
	}
}

func newWhoamiCmd(c *api.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the current session",
		RunE: func(cmd *cobra.Command, args []string) error {
			user := c.Session.User()
			if user == nil || !c.Session.IsAuthenticated() {
				fmt.Println("Not signed in.")
				return nil
			}
			fmt.Printf("%s %s <%s>\n", user.FirstName, user.LastName, user.Email)
			fmt.Printf("Roles: %s\n", strings.Join(c.Eval.Roles(), ", "))
			fmt.Printf("Permissions: %s\n", strings.Join(c.Eval.Permissions(), ", "))
			if selected := c.Tenants.Selected(); selected != nil {
				fmt.Printf("Acting on tenant: %s (%s)\n", selected.Name, selected.ID)
			}
			if expiry := c.Session.TokenExpiry(); !expiry.IsZero() {
				fmt.Printf("Access token expires: %s\n", expiry.Format("2006-01-02 15:04:05 MST"))
			}
			return nil
		},
	}
}

func newHomeCmd(c *api.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "home",
		Short: "Show the landing view for the current identity",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println(c.Guards.DefaultLanding())
			return nil
		},
	}
}
