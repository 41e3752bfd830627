package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/openconsole/openconsole/internal/api"
)

func newProfileCmd(c *api.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "View and edit user profiles",
	}

	// currentUserID defaults profile operations to the signed-in user.
	currentUserID := func(args []string) (string, error) {
		if len(args) > 0 {
			return args[0], nil
		}
		if user := c.Session.User(); user != nil {
			return user.ID, nil
		}
		return "", fmt.Errorf("not signed in; pass a user ID")
	}

	get := &cobra.Command{
		Use:   "get [user-id]",
		Short: "Show a user's profile (defaults to your own)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, err := currentUserID(args)
			if err != nil {
				return err
			}
			profile, err := c.Profiles.Get(cmd.Context(), userID)
			if err != nil {
				return err
			}
			if profile == nil {
				fmt.Println("No profile yet. Use 'console profile set' to create one.")
				return nil
			}
			return printJSON(profile)
		},
	}

	var input api.UserProfileInput
	var companyName, mobileNo, phoneNo, city, address, bio, website string
	set := &cobra.Command{
		Use:   "set [user-id]",
		Short: "Create or update a user's profile (defaults to your own)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, err := currentUserID(args)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("company") {
				input.CompanyName = &companyName
			}
			if cmd.Flags().Changed("mobile") {
				input.MobileNo = &mobileNo
			}
			if cmd.Flags().Changed("phone") {
				input.PhoneNo = &phoneNo
			}
			if cmd.Flags().Changed("city") {
				input.City = &city
			}
			if cmd.Flags().Changed("address") {
				input.Address = &address
			}
			if cmd.Flags().Changed("bio") {
				input.Bio = &bio
			}
			if cmd.Flags().Changed("website") {
				input.Website = &website
			}

			existing, err := c.Profiles.Get(cmd.Context(), userID)
			if err != nil {
				return err
			}
			var profile *api.UserProfile
			if existing == nil {
				profile, err = c.Profiles.Create(cmd.Context(), userID, input)
			} else {
				profile, err = c.Profiles.Update(cmd.Context(), userID, input)
			}
			if err != nil {
				return err
			}
			return printJSON(profile)
		},
	}
	set.Flags().StringVar(&companyName, "company", "", "company name")
	set.Flags().StringVar(&mobileNo, "mobile", "", "mobile number")
	set.Flags().StringVar(&phoneNo, "phone", "", "phone number")
	set.Flags().StringVar(&city, "city", "", "city")
	set.Flags().StringVar(&address, "address", "", "address")
	set.Flags().StringVar(&bio, "bio", "", "bio")
	set.Flags().StringVar(&website, "website", "", "website URL")

	cmd.AddCommand(get, set)
	return cmd
}
