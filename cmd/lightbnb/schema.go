package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/emanuelbalogun/LightBnB/internal/database"
)

func (a *app) schemaCmd() *cobra.Command {
	var reset bool

	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Create the LightBnB tables for local development",
		Args:  cobra.NoArgs,
		RunE: a.runE(func(cmd *cobra.Command, _ []string) error {
			if err := database.CreateSchema(cmd.Context(), a.db, reset); err != nil {
				return err
			}
			_, err := fmt.Fprintf(a.out, "created %d tables\n", len(database.Tables))
			return err
		}),
	}
	cmd.Flags().BoolVar(&reset, "reset", false, "drop existing tables first")
	return cmd
}
