package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/iudanet/userstorage/internal/config"
	"github.com/iudanet/userstorage/internal/convert"
	"github.com/iudanet/userstorage/internal/iocli"
	"github.com/iudanet/userstorage/internal/storage"
	"github.com/iudanet/userstorage/internal/storage/boltdb"
	"github.com/iudanet/userstorage/internal/storage/sqlite"
	"github.com/iudanet/userstorage/internal/userstorage"
)

// backend is a record store the CLI can read from and import into
type backend interface {
	storage.RecordStorage
	storage.RecordWriter
	Close() error
}

// app holds state shared by all commands
type app struct {
	logger   *slog.Logger
	prompter iocli.Prompter
	cfg      config.Config
}

// newRootCmd builds the command tree.
// Flag defaults come from the environment and .env, so flags take precedence.
func newRootCmd() (*cobra.Command, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	return newRootCmdWith(&app{cfg: cfg, prompter: iocli.NewStdio()}), nil
}

func newRootCmdWith(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "userstorage",
		Short:         "Read users, app tokens and system secrets from record storage",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := a.cfg.Validate(); err != nil {
				return err
			}
			logger, err := a.cfg.NewLogger(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			a.logger = logger
			return nil
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.cfg.Backend, "backend", a.cfg.Backend, "storage backend (sqlite or boltdb)")
	flags.StringVar(&a.cfg.DBPath, "db", a.cfg.DBPath, "path to the database file")
	flags.StringVar(&a.cfg.PasswordPolicy, "password-policy", a.cfg.PasswordPolicy, "password exposure (link or resolve)")
	flags.StringVar(&a.cfg.LogLevel, "log-level", a.cfg.LogLevel, "log level (debug, info, warn, error)")
	flags.StringVar(&a.cfg.LogFormat, "log-format", a.cfg.LogFormat, "log format (text or json)")

	root.AddCommand(
		newUserCmd(a),
		newAppTokenCmd(a),
		newSecretCmd(a),
		newImportCmd(a),
		newHashCmd(a),
		newVersionCmd(),
	)
	return root
}

// openBackend opens the configured record store
func (a *app) openBackend(ctx context.Context) (backend, error) {
	switch a.cfg.Backend {
	case config.BackendSQLite:
		return sqlite.New(ctx, a.cfg.DBPath)
	case config.BackendBolt:
		return boltdb.New(ctx, a.cfg.DBPath)
	default:
		return nil, fmt.Errorf("unknown backend %q", a.cfg.Backend)
	}
}

// withView opens the backend, builds a View over it and runs fn
func (a *app) withView(ctx context.Context, fn func(*userstorage.View) error) error {
	policy, err := userstorage.ParsePasswordPolicy(a.cfg.PasswordPolicy)
	if err != nil {
		return err
	}

	b, err := a.openBackend(ctx)
	if err != nil {
		return fmt.Errorf("failed to open storage: %w", err)
	}
	defer func() {
		if err := b.Close(); err != nil {
			a.logger.Error("failed to close storage", "error", err)
		}
	}()

	view := userstorage.New(b, convert.New(),
		userstorage.WithLogger(a.logger),
		userstorage.WithPasswordPolicy(policy),
	)
	return fn(view)
}
