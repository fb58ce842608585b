// Package app wires the configuration into a running pokedex: the seeded
// store, the GraphQL schema with its resolvers, metrics and the HTTP server.
package app

import (
	"context"
	"fmt"
	"os"

	"github.com/paul-didati/pokedex/internal/config"
	"github.com/paul-didati/pokedex/internal/logging"
	"github.com/paul-didati/pokedex/internal/server"
	pokegraphql "github.com/paul-didati/pokedex/pkg/graphql"
	"github.com/paul-didati/pokedex/pkg/graphql/resolutions"
	"github.com/paul-didati/pokedex/pkg/store"

	"github.com/graph-gophers/graphql-go"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"
)

// App holds the assembled service.
type App struct {
	Config   config.Config
	Logger   *zap.Logger
	Store    *store.Store
	Schema   *graphql.Schema
	Registry *prometheus.Registry
}

// LoadSeed returns the seed named by path, or the embedded one when path is
// empty.
func LoadSeed(path string) (store.Seed, error) {
	if path == "" {
		return store.DefaultSeed(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return store.Seed{}, fmt.Errorf("open seed: %w", err)
	}
	defer f.Close()
	return store.LoadSeed(f)
}

// New seeds a store and builds the schema over it as cfg describes.
func New(cfg config.Config, logger *zap.Logger) (*App, error) {
	seed, err := LoadSeed(cfg.Seed)
	if err != nil {
		return nil, err
	}
	s := store.New(seed)

	deleteMode, err := resolutions.ParseDeleteCreatureResult(cfg.GraphQL.DeleteCreatureReturns)
	if err != nil {
		return nil, err
	}
	root := resolutions.New(s,
		resolutions.WithLogger(logger.Named("resolver")),
		resolutions.WithDeleteCreatureResult(deleteMode),
		resolutions.WithStrictErrors(cfg.GraphQL.StrictErrors),
	)

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	tracer, err := pokegraphql.NewMetricsTracer(reg)
	if err != nil {
		return nil, fmt.Errorf("register graphql metrics: %w", err)
	}

	schema, err := pokegraphql.NewSchema(root,
		graphql.MaxParallelism(cfg.GraphQL.MaxParallelism),
		graphql.Logger(logging.PanicLogger{Logger: logger}),
		graphql.Tracer(tracer),
	)
	if err != nil {
		return nil, err
	}

	logger.Debug("store seeded",
		zap.Int("creatures", s.Len()),
		zap.Int("types", len(s.Types())),
		zap.String("deleteCreatureReturns", deleteMode.String()),
	)

	return &App{
		Config:   cfg,
		Logger:   logger,
		Store:    s,
		Schema:   schema,
		Registry: reg,
	}, nil
}

// Server returns the HTTP server for a.
func (a *App) Server() *server.Server {
	return server.New(a.Config.Listen, a.Schema, a.Registry, a.Logger.Named("http"),
		server.WithGraphiQL(a.Config.GraphQL.GraphiQL),
	)
}

// Run serves HTTP until ctx is done.
func (a *App) Run(ctx context.Context) error {
	return a.Server().Run(ctx)
}
