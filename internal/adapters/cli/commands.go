package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/UA-classroom/db-l2-mo-hemnet/internal/contextkeys"
	"github.com/UA-classroom/db-l2-mo-hemnet/internal/contracts"
	"github.com/UA-classroom/db-l2-mo-hemnet/internal/core/domain"
	"github.com/UA-classroom/db-l2-mo-hemnet/internal/core/port"
	"github.com/UA-classroom/db-l2-mo-hemnet/internal/core/port/usecases_port"
)

// EventStreamer печатает доменные события, пока ctx не отменен.
type EventStreamer interface {
	Stream(ctx context.Context, routingKeys []string, w io.Writer) error
}

// Services - use cases, с которыми работают команды.
type Services struct {
	Migrate      usecases_port.MigrateDatabaseUseCasePort
	Seed         usecases_port.SeedDatabaseUseCasePort
	LoadFixtures usecases_port.LoadFixturesUseCasePort
	Truncate     usecases_port.TruncateDatabaseUseCasePort
	// Events - nil, если RabbitMQ выключен.
	Events EventStreamer
	Logger port.LoggerPort
}

// ServicesFactory вызывается только при запуске команды, поэтому --help не требует базы.
// closeFn освобождает соединения.
type ServicesFactory func(ctx context.Context) (svc *Services, closeFn func(), err error)

func NewRootCmd(factory ServicesFactory) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "moonhem-admin",
		Short:         "MoonHem database maintenance tool",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		MigrateCmd(factory),
		SeedCmd(factory),
		TruncateCmd(factory),
		EventsCmd(factory),
	)
	return rootCmd
}

func MigrateCmd(factory ServicesFactory) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create the database schema",
		Long:  "Creates all tables and indexes. Objects that already exist are left untouched, so the command can be run repeatedly.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withServices(cmd, factory, func(ctx context.Context, svc *Services) error {
				if err := svc.Migrate.Execute(ctx); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Schema is up to date.")
				return nil
			})
		},
	}
}

func SeedCmd(factory ServicesFactory) *cobra.Command {
	defaults := domain.DefaultSeedOptions()

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Replace all data with generated or fixture records",
		Long: `Truncates every table and fills the database in a single transaction.
Without --fixtures the data is generated randomly; pass --rand-seed to make the run reproducible.
With --fixtures the JSON file is validated against the fixtures schema and loaded as is.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fixturesPath, _ := cmd.Flags().GetString("fixtures")

			var fixtures *domain.Fixtures
			if fixturesPath != "" {
				f, err := readFixtures(fixturesPath)
				if err != nil {
					return err
				}
				fixtures = f
			}

			opts := domain.SeedOptions{}
			opts.Companies, _ = cmd.Flags().GetInt("companies")
			opts.Realtors, _ = cmd.Flags().GetInt("realtors")
			opts.Buyers, _ = cmd.Flags().GetInt("buyers")
			opts.Listings, _ = cmd.Flags().GetInt("listings")
			opts.RandSeed, _ = cmd.Flags().GetInt64("rand-seed")

			return withServices(cmd, factory, func(ctx context.Context, svc *Services) error {
				var (
					stats *domain.SeedStats
					err   error
				)
				if fixtures != nil {
					stats, err = svc.LoadFixtures.Execute(ctx, *fixtures)
				} else {
					stats, err = svc.Seed.Execute(ctx, opts)
				}
				if err != nil {
					return err
				}
				printStats(cmd.OutOrStdout(), stats)
				return nil
			})
		},
	}

	flags := cmd.Flags()
	flags.Int("companies", defaults.Companies, "number of realtor companies")
	flags.Int("realtors", defaults.Realtors, "number of realtor users")
	flags.Int("buyers", defaults.Buyers, "number of buyer users")
	flags.Int("listings", defaults.Listings, "number of listings")
	flags.Int64("rand-seed", 0, "seed for the random generator (0 - current time)")
	flags.String("fixtures", "", "path to a JSON fixtures file")
	cmd.MarkFlagsMutuallyExclusive("fixtures", "rand-seed")

	return cmd
}

func TruncateCmd(factory ServicesFactory) *cobra.Command {
	return &cobra.Command{
		Use:   "truncate",
		Short: "Delete all rows and reset id sequences",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withServices(cmd, factory, func(ctx context.Context, svc *Services) error {
				if err := svc.Truncate.Execute(ctx); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "All tables truncated.")
				return nil
			})
		},
	}
}

func EventsCmd(factory ServicesFactory) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "events",
		Short: "Print domain events as they are published",
		Long:  "Binds a temporary queue to the events exchange and prints every event until interrupted. Events that do not match their schema are reported and dropped.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			keys, _ := cmd.Flags().GetStringSlice("key")
			return withServices(cmd, factory, func(ctx context.Context, svc *Services) error {
				if svc.Events == nil {
					return fmt.Errorf("event streaming is disabled, set RABBITMQ_ENABLED=true and RABBITMQ_URL")
				}
				return svc.Events.Stream(ctx, keys, cmd.OutOrStdout())
			})
		},
	}
	cmd.Flags().StringSlice("key", nil, `routing key pattern to follow, e.g. "listing.*" (repeatable, default all events)`)
	return cmd
}

func withServices(cmd *cobra.Command, factory ServicesFactory, fn func(ctx context.Context, svc *Services) error) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	svc, closeFn, err := factory(ctx)
	if err != nil {
		return err
	}
	if closeFn != nil {
		defer closeFn()
	}

	if svc.Logger != nil {
		ctx = contextkeys.ContextWithLogger(ctx, svc.Logger.WithFields(port.Fields{"command": cmd.Name()}))
	}
	return fn(ctx, svc)
}

// readFixtures читает файл фикстур и проверяет его по JSON-схеме до разбора.
func readFixtures(path string) (*domain.Fixtures, error) {
	body, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read fixtures file: %w", err)
	}
	if err := contracts.ValidateFixtures(body); err != nil {
		return nil, fmt.Errorf("invalid fixtures file %s: %w", path, err)
	}

	var fixtures domain.Fixtures
	if err := json.Unmarshal(body, &fixtures); err != nil {
		return nil, fmt.Errorf("failed to parse fixtures file: %w", err)
	}
	return &fixtures, nil
}

func printStats(w io.Writer, s *domain.SeedStats) {
	fmt.Fprintf(w, "Seeded %d companies, %d realtors, %d buyers, %d listings, %d images, %d listing features.\n",
		s.Companies, s.Realtors, s.Buyers, s.Listings, s.Images, s.Features)
	if s.Admins > 0 {
		fmt.Fprintf(w, "Seeded %d admins.\n", s.Admins)
	}
}
