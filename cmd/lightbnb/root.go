package main

import (
	"fmt"
	"io"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/emanuelbalogun/LightBnB/internal/config"
	"github.com/emanuelbalogun/LightBnB/internal/database"
	"github.com/emanuelbalogun/LightBnB/internal/logging"
	"github.com/emanuelbalogun/LightBnB/repo"
	"github.com/emanuelbalogun/LightBnB/sqlq"
)

// app is the state shared by every command of one invocation.
type app struct {
	configPath string
	debug      bool

	in  io.Reader
	out io.Writer

	db    *sqlq.DB
	store *repo.Store
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "lightbnb",
		Short:         "Query the LightBnB database",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(a.out)
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "path to a YAML config file (default $"+config.PathEnvVar+")")
	root.PersistentFlags().BoolVar(&a.debug, "debug", false, "log every SQL statement")

	root.AddCommand(
		a.userCmd(),
		a.reservationsCmd(),
		a.propertiesCmd(),
		a.propertyCmd(),
		a.schemaCmd(),
	)
	return root
}

// runE adapts fn to a cobra RunE that connects to the database first.
func (a *app) runE(fn func(cmd *cobra.Command, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		if err := a.connect(cmd); err != nil {
			return err
		}
		return fn(cmd, args)
	}
}

// connect loads the configuration, opens the database and attaches a logger
// carrying a per-invocation request id to the command context.
func (a *app) connect(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.debug {
		cfg.Log.Level = "debug"
	}

	logger := logging.New(logging.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cmd.ErrOrStderr(),
	}).With().Str("request_id", uuid.NewString()).Str("command", cmd.Name()).Logger()
	ctx := logger.WithContext(cmd.Context())
	cmd.SetContext(ctx)

	db, err := database.Open(ctx, cfg.Database)
	if err != nil {
		return err
	}
	if a.debug {
		db = db.Debug(logging.NewQueryLogger(logger))
	}
	a.db = db
	a.store = repo.NewStore(db)
	return nil
}

func (a *app) close() error {
	if a.db == nil {
		return nil
	}
	err := a.db.Close()
	a.db = nil
	return err
}

func (a *app) print(v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	_, err = fmt.Fprintln(a.out, string(b))
	return err
}
