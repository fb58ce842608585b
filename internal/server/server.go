// Package server exposes a GraphQL schema over HTTP.
package server

import (
	"context"
	_ "embed"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/graph-gophers/graphql-go"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

//go:embed graphiql.html
var graphiqlPage []byte

const shutdownTimeout = 5 * time.Second

// Server serves a schema on /graphql.
type Server struct {
	addr     string
	schema   *graphql.Schema
	gatherer prometheus.Gatherer
	logger   *zap.Logger
	graphiql bool
}

// Option configures a Server.
type Option func(s *Server)

// WithGraphiQL serves the GraphiQL explorer to browsers requesting /graphql.
func WithGraphiQL(enabled bool) Option {
	return func(s *Server) {
		s.graphiql = enabled
	}
}

// New returns a server for schema listening on addr. Metrics are gathered
// from gatherer on /metrics.
func New(addr string, schema *graphql.Schema, gatherer prometheus.Gatherer, logger *zap.Logger, opts ...Option) *Server {
	s := &Server{
		addr:     addr,
		schema:   schema,
		gatherer: gatherer,
		logger:   logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Handler returns the routes of s.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(s.accessLog)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{}))

	r.Get("/graphql", s.serveGraphQL)
	r.Post("/graphql", s.serveGraphQL)

	return r
}

func (s *Server) serveGraphQL(w http.ResponseWriter, r *http.Request) {
	if s.graphiql && r.Method == http.MethodGet && r.URL.Query().Get("query") == "" && acceptsHTML(r) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write(graphiqlPage)
		return
	}

	req, err := parseRequest(r)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}

	response := s.schema.Exec(r.Context(), req.Query, req.OperationName, req.Variables)
	s.writeJSON(w, http.StatusOK, response)
}

func acceptsHTML(r *http.Request) bool {
	return strings.Contains(r.Header.Get("Accept"), "text/html")
}

type errorResponse struct {
	Errors []errorMessage `json:"errors"`
}

type errorMessage struct {
	Message string `json:"message"`
}

func (s *Server) writeError(w http.ResponseWriter, status int, err error) {
	s.writeJSON(w, status, errorResponse{
		Errors: []errorMessage{{Message: err.Error()}},
	})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		s.logger.Error("encode response", zap.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(data)
}

// Run listens on the configured address until ctx is done, then shuts the
// server down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		s.logger.Info("running a GraphQL API server", zap.String("addr", s.addr), zap.String("endpoint", "/graphql"))
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	s.logger.Info("server stopped")
	return nil
}

const requestIDHeader = "X-Request-ID"

type requestIDKey struct{}

// requestID tags each request with the id sent by the client or a new one.
func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(requestIDHeader, id)
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), requestIDKey{}, id)))
	})
}

// RequestID returns the id requestID stored in ctx.
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

func (s *Server) accessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.logger.Info("request",
			zap.String("id", RequestID(r.Context())),
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", ww.Status()),
			zap.Int("bytes", ww.BytesWritten()),
			zap.Duration("duration", time.Since(start)),
		)
	})
}
