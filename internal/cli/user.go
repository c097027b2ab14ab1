package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

func newUserCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Manage registered users",
	}
	cmd.AddCommand(newUserAddCommand())
	cmd.AddCommand(newUserGetCommand())
	return cmd
}

func newUserAddCommand() *cobra.Command {
	var name, password string
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Register a user",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close()

			user, err := a.svc.CreateUser(cmd.Context(), name, password)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "created user %d (%s)\n", user.ID, user.Username)
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "username")
	cmd.Flags().StringVar(&password, "password", "", "credential, stored as a bcrypt hash")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func newUserGetCommand() *cobra.Command {
	var name string
	cmd := &cobra.Command{
		Use:   "get",
		Short: "Print a user as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close()

			user, err := a.svc.GetUserByName(cmd.Context(), name)
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(user)
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "username")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}
