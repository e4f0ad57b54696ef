package main

import (
	"github.com/spf13/cobra"

	"github.com/emanuelbalogun/LightBnB/model"
	"github.com/emanuelbalogun/LightBnB/repo"
)

func (a *app) reservationsCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "reservations <guest-id>",
		Short: "List a guest's reservations, most recent first",
		Args:  cobra.ExactArgs(1),
		RunE: a.runE(func(cmd *cobra.Command, args []string) error {
			guestID, err := parseID(args[0])
			if err != nil {
				return err
			}
			rs, err := a.store.Reservations.AllReservations(cmd.Context(), guestID, limit)
			if err != nil {
				return err
			}
			return a.print(rs)
		}),
	}
	cmd.Flags().IntVar(&limit, "limit", repo.DefaultLimit, "maximum number of reservations")
	return cmd
}

func (a *app) propertiesCmd() *cobra.Command {
	var (
		f     model.PropertyFilter
		limit int
	)

	cmd := &cobra.Command{
		Use:   "properties",
		Short: "List properties, cheapest first",
		Args:  cobra.NoArgs,
		PreRunE: func(*cobra.Command, []string) error {
			return f.Validate()
		},
		RunE: a.runE(func(cmd *cobra.Command, _ []string) error {
			ps, err := a.store.Properties.AllProperties(cmd.Context(), f, limit)
			if err != nil {
				return err
			}
			return a.print(ps)
		}),
	}
	fl := cmd.Flags()
	fl.StringVar(&f.City, "city", "", "case-insensitive substring of the city")
	fl.Int64Var(&f.OwnerID, "owner-id", 0, "owner user id")
	fl.Float64Var(&f.MinimumPricePerNight, "min-price", 0, "minimum price per night in dollars, used with --max-price")
	fl.Float64Var(&f.MaximumPricePerNight, "max-price", 0, "maximum price per night in dollars, used with --min-price")
	fl.Float64Var(&f.MinimumRating, "min-rating", 0, "minimum average rating")
	fl.IntVar(&limit, "limit", repo.DefaultLimit, "maximum number of properties")
	return cmd
}
