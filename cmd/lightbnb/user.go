package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"

	"github.com/emanuelbalogun/LightBnB/model"
)

func (a *app) userCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Look up and create users",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "email <email>",
			Short: "Print the user with the given email",
			Args:  cobra.ExactArgs(1),
			RunE: a.runE(func(cmd *cobra.Command, args []string) error {
				u, err := a.store.Users.UserWithEmail(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				return a.print(u)
			}),
		},
		&cobra.Command{
			Use:   "id <id>",
			Short: "Print the users with the given id",
			Args:  cobra.ExactArgs(1),
			RunE: a.runE(func(cmd *cobra.Command, args []string) error {
				id, err := parseID(args[0])
				if err != nil {
					return err
				}
				us, err := a.store.Users.UsersWithID(cmd.Context(), id)
				if err != nil {
					return err
				}
				return a.print(us)
			}),
		},
		a.userAddCmd(),
	)
	return cmd
}

func (a *app) userAddCmd() *cobra.Command {
	var in model.NewUser

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a user; the password is stored as a bcrypt hash",
		Args:  cobra.NoArgs,
		RunE: a.runE(func(cmd *cobra.Command, _ []string) error {
			hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
			if err != nil {
				return fmt.Errorf("hash password: %w", err)
			}
			u, err := a.store.Users.AddUser(cmd.Context(), model.NewUser{
				Name:     in.Name,
				Email:    in.Email,
				Password: string(hash),
			})
			if err != nil {
				return err
			}
			return a.print(u)
		}),
	}
	cmd.Flags().StringVar(&in.Name, "name", "", "display name")
	cmd.Flags().StringVar(&in.Email, "email", "", "unique email address")
	cmd.Flags().StringVar(&in.Password, "password", "", "plain-text password")
	for _, f := range []string{"name", "email", "password"} {
		_ = cmd.MarkFlagRequired(f)
	}
	return cmd
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q", s)
	}
	return id, nil
}
