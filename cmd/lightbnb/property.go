package main

import (
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/emanuelbalogun/LightBnB/model"
)

func (a *app) propertyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "property",
		Short: "Create properties",
	}

	var path string
	add := &cobra.Command{
		Use:   "add",
		Short: "Create a property from a JSON file; cost_per_night is in dollars",
		Args:  cobra.NoArgs,
		RunE: a.runE(func(cmd *cobra.Command, _ []string) error {
			in, err := a.readProperty(path)
			if err != nil {
				return err
			}
			p, err := a.store.Properties.AddProperty(cmd.Context(), in)
			if err != nil {
				return err
			}
			return a.print(p)
		}),
	}
	add.Flags().StringVar(&path, "file", "", `JSON file with the property, or "-" for stdin`)
	_ = add.MarkFlagRequired("file")

	cmd.AddCommand(add)
	return cmd
}

func (a *app) readProperty(path string) (model.NewProperty, error) {
	var r io.Reader = a.in
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return model.NewProperty{}, err
		}
		defer f.Close()
		r = f
	}

	var p model.NewProperty
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&p); err != nil {
		return model.NewProperty{}, fmt.Errorf("decode property: %w", err)
	}
	return p, nil
}
