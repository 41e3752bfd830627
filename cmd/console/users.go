package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/openconsole/openconsole/internal/api"
)

func listFlags(cmd *cobra.Command, params *api.ListParams) {
	cmd.Flags().IntVar(&params.Page, "page", 0, "page number")
	cmd.Flags().IntVar(&params.Limit, "limit", 0, "page size")
	cmd.Flags().StringVar(&params.SortBy, "sort-by", "", "sort field")
	cmd.Flags().StringVar(&params.SortOrder, "sort-order", "", "asc or desc")
}

func newUsersCmd(c *api.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "Manage user accounts",
	}

	var listParams api.ListParams
	list := &cobra.Command{
		Use:   "list",
		Short: "List users",
		RunE: func(cmd *cobra.Command, args []string) error {
			users, err := c.Users.List(cmd.Context(), &listParams)
			if err != nil {
				return err
			}
			rows := make([][]string, 0, len(users))
			for _, u := range users {
				names := make([]string, 0, len(u.Roles))
				for _, role := range u.Roles {
					names = append(names, role.Name)
				}
				rows = append(rows, []string{u.ID, u.Email, u.FirstName + " " + u.LastName, strings.Join(names, ",")})
			}
			printTable([]string{"ID", "EMAIL", "NAME", "ROLES"}, rows)
			return nil
		},
	}
	listFlags(list, &listParams)

	get := &cobra.Command{
		Use:   "get <id>",
		Short: "Show one user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := c.Users.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printJSON(user)
		},
	}

	var createInput api.CreateUserInput
	create := &cobra.Command{
		Use:   "create",
		Short: "Create a user",
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := c.Users.Create(cmd.Context(), createInput)
			if err != nil {
				return err
			}
			return printJSON(user)
		},
	}
	create.Flags().StringVar(&createInput.Email, "email", "", "email")
	create.Flags().StringVar(&createInput.Password, "password", "", "initial password")
	create.Flags().StringVar(&createInput.FirstName, "first-name", "", "first name")
	create.Flags().StringVar(&createInput.LastName, "last-name", "", "last name")
	create.Flags().StringSliceVar(&createInput.RoleIDs, "role-ids", nil, "role IDs to assign")
	create.MarkFlagRequired("email")
	create.MarkFlagRequired("password")

	var email, firstName, lastName, password string
	var roleIDs []string
	update := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := api.UpdateUserInput{RoleIDs: roleIDs}
			if cmd.Flags().Changed("email") {
				input.Email = &email
			}
			if cmd.Flags().Changed("first-name") {
				input.FirstName = &firstName
			}
			if cmd.Flags().Changed("last-name") {
				input.LastName = &lastName
			}
			if cmd.Flags().Changed("password") {
				input.Password = &password
			}
			user, err := c.Users.Update(cmd.Context(), args[0], input)
			if err != nil {
				return err
			}
			return printJSON(user)
		},
	}
	update.Flags().StringVar(&email, "email", "", "email")
	update.Flags().StringVar(&firstName, "first-name", "", "first name")
	update.Flags().StringVar(&lastName, "last-name", "", "last name")
	update.Flags().StringVar(&password, "password", "", "new password")
	update.Flags().StringSliceVar(&roleIDs, "role-ids", nil, "role IDs to assign")

	del := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.Users.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Println("User deleted.")
			return nil
		},
	}

	cmd.AddCommand(list, get, create, update, del)
	return cmd
}
