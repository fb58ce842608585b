package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/paul-didati/pokedex/internal/app"
	"github.com/paul-didati/pokedex/internal/config"
	"github.com/paul-didati/pokedex/internal/logging"
	pokegraphql "github.com/paul-didati/pokedex/pkg/graphql"
	"github.com/paul-didati/pokedex/pkg/graphql/resolutions"
	"github.com/paul-didati/pokedex/pkg/graphql/typer"
	"github.com/paul-didati/pokedex/pkg/store"

	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func main() {
	if err := run(os.Stdout, os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(out io.Writer, args []string) error {
	root := newRootCommand()
	root.SetOut(out)
	root.SetErr(out)
	root.SetArgs(args)
	return root.Execute()
}

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "pokedex",
		Short:         "GraphQL API over an in-memory creature catalogue",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.AddCommand(newServeCommand(), newSchemaCommand(), newQueryCommand())
	return cmd
}

func newServeCommand() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		Long: `Start the HTTP server with the configured settings.

The GraphQL endpoint is served on /graphql, metrics on /metrics and a
liveness probe on /healthz. The PORT environment variable overrides the
configured listen port.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			logger, err := logging.New(cfg.Log.Level, cfg.Log.Format)
			if err != nil {
				return err
			}
			defer logger.Sync()

			a, err := app.New(cfg, logger)
			if err != nil {
				logger.Error("startup failed", zap.Error(err))
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return a.Run(ctx)
		},
	}
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "path to a YAML config file")
	return cmd
}

func newSchemaCommand() *cobra.Command {
	var types bool

	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Print the GraphQL schema",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !types {
				fmt.Fprint(cmd.OutOrStdout(), pokegraphql.SDL)
				return nil
			}
			schema := pokegraphql.MustNewSchema(resolutions.New(store.New(store.DefaultSeed())))
			fmt.Fprint(cmd.OutOrStdout(), typer.Render(pokegraphql.Describe(schema)))
			return nil
		},
	}
	cmd.Flags().BoolVar(&types, "types", false, "print the type graph as seen through introspection")
	return cmd
}

func newQueryCommand() *cobra.Command {
	var (
		variables string
		seedPath  string
		operation string
	)

	cmd := &cobra.Command{
		Use:   "query <document>",
		Short: "Execute a GraphQL document against a freshly seeded store",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var vars map[string]interface{}
			if variables != "" {
				if err := json.UnmarshalFromString(variables, &vars); err != nil {
					return fmt.Errorf("variables: %w", err)
				}
			}

			seed, err := app.LoadSeed(seedPath)
			if err != nil {
				return err
			}
			schema, err := pokegraphql.NewSchema(resolutions.New(store.New(seed)))
			if err != nil {
				return err
			}

			response := schema.Exec(context.Background(), args[0], operation, vars)
			data, err := json.MarshalIndent(response, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))

			if len(response.Errors) > 0 {
				return fmt.Errorf("query returned %d error(s)", len(response.Errors))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&variables, "variables", "", "operation variables as a JSON object")
	cmd.Flags().StringVar(&seedPath, "seed", "", "path to a JSON seed file")
	cmd.Flags().StringVar(&operation, "operation", "", "name of the operation to execute")
	return cmd
}
