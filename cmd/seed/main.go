package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/oksasatya/go-cost-manager/config"
	"github.com/oksasatya/go-cost-manager/internal/application"
	pginfra "github.com/oksasatya/go-cost-manager/internal/infrastructure/postgres"
	"github.com/oksasatya/go-cost-manager/pkg/helpers"
)

type seedOptions struct {
	user           application.AddUserInput
	skipMigrations bool
}

// seedUser inserts the user through the regular service so the same
// validation applies. An existing id is not an error.
func seedUser(ctx context.Context, svc *application.UserService, in application.AddUserInput, out io.Writer) error {
	u, err := svc.AddUser(ctx, in)
	switch {
	case errors.Is(err, application.ErrDuplicateID):
		fmt.Fprintf(out, "user %s already present\n", in.ID)
		return nil
	case err != nil:
		return err
	}
	fmt.Fprintf(out, "seeded user: id=%s name=%s %s\n", u.ID, u.FirstName, u.LastName)
	return nil
}

func newRootCmd() *cobra.Command {
	opts := seedOptions{}
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Insert the demo user into the Postgres store",
		Long: `Applies the embedded migrations (unless --skip-migrations) and inserts
the demo user the API clients and smoke tests expect. Running it twice is safe.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = godotenv.Load()
			cfg := config.Load()
			logger := helpers.NewLogger(cfg.AppName+"-seed", cfg.Env, cfg.LogLevel)
			ctx := cmd.Context()

			if cfg.MigrationsEnabled && !opts.skipMigrations {
				if err := pginfra.RunMigrations(cfg.PostgresDSN(), logger); err != nil {
					return fmt.Errorf("migration failed: %w", err)
				}
			}

			pool, err := pginfra.NewPool(ctx, cfg.PostgresDSN(), pginfra.PoolOptions{MaxConns: 2})
			if err != nil {
				return fmt.Errorf("failed to connect to postgres: %w", err)
			}
			defer pool.Close()

			loc, err := cfg.Location()
			if err != nil {
				return err
			}
			svc := application.NewUserService(pginfra.NewUserRepository(pool), pginfra.NewCostRepository(pool), logger, loc)
			return seedUser(ctx, svc, opts.user, cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringVar(&opts.user.ID, "id", "123123", "user id")
	cmd.Flags().StringVar(&opts.user.FirstName, "first-name", "mosh", "first name")
	cmd.Flags().StringVar(&opts.user.LastName, "last-name", "israeli", "last name")
	cmd.Flags().StringVar(&opts.user.Birthday, "birthday", "1990-01-01", "birthday (YYYY-MM-DD)")
	cmd.Flags().StringVar(&opts.user.MaritalStatus, "marital-status", "single", "single, married, divorced or widowed")
	cmd.Flags().BoolVar(&opts.skipMigrations, "skip-migrations", false, "do not apply migrations first")
	return cmd
}

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
