package graphql

import (
	"context"
	"time"

	"github.com/graph-gophers/graphql-go/errors"
	"github.com/graph-gophers/graphql-go/introspection"
	"github.com/graph-gophers/graphql-go/trace/tracer"
	"github.com/prometheus/client_golang/prometheus"
)

// MetricsTracer records operations, root fields and non-trivial nested
// field resolutions as prometheus metrics. It is installed with graphql.Tracer.
type MetricsTracer struct {
	operations *prometheus.CounterVec
	duration   *prometheus.HistogramVec
	fields     *prometheus.CounterVec
}

var _ tracer.Tracer = (*MetricsTracer)(nil)

// NewMetricsTracer creates the tracer and registers its collectors with reg.
func NewMetricsTracer(reg prometheus.Registerer) (*MetricsTracer, error) {
	t := &MetricsTracer{
		operations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "pokedex",
				Subsystem: "graphql",
				Name:      "operations_total",
				Help:      "Total number of executed GraphQL operations",
			},
			[]string{"operation", "outcome"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "pokedex",
				Subsystem: "graphql",
				Name:      "operation_duration_seconds",
				Help:      "GraphQL operation duration in seconds",
				Buckets:   []float64{0.0005, 0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
			},
			[]string{"operation"},
		),
		fields: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "pokedex",
				Subsystem: "graphql",
				Name:      "field_resolutions_total",
				Help:      "Total number of resolved non-trivial GraphQL fields",
			},
			[]string{"type", "field", "outcome"},
		),
	}

	for _, c := range []prometheus.Collector{t.operations, t.duration, t.fields} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return t, nil
}

func outcome(failed bool) string {
	if failed {
		return "error"
	}
	return "ok"
}

// TraceQuery times an operation and counts it by name and outcome.
func (t *MetricsTracer) TraceQuery(ctx context.Context, queryString string, operationName string, variables map[string]interface{}, varTypes map[string]*introspection.Type) (context.Context, tracer.QueryFinishFunc) {
	start := time.Now()
	if operationName == "" {
		operationName = "anonymous"
	}
	return ctx, func(errs []*errors.QueryError) {
		t.duration.WithLabelValues(operationName).Observe(time.Since(start).Seconds())
		t.operations.WithLabelValues(operationName, outcome(len(errs) > 0)).Inc()
	}
}

// TraceField counts root fields and non-trivial nested fields.
func (t *MetricsTracer) TraceField(ctx context.Context, label, typeName, fieldName string, trivial bool, args map[string]interface{}) (context.Context, tracer.FieldFinishFunc) {
	if trivial && typeName != "Query" && typeName != "Mutation" {
		return ctx, func(*errors.QueryError) {}
	}
	return ctx, func(err *errors.QueryError) {
		t.fields.WithLabelValues(typeName, fieldName, outcome(err != nil)).Inc()
	}
}

// TraceValidation records nothing.
func (t *MetricsTracer) TraceValidation(ctx context.Context) tracer.ValidationFinishFunc {
	return func([]*errors.QueryError) {}
}
