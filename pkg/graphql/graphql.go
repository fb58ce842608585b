package graphql

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/paul-didati/pokedex/pkg/graphql/resolutions"
	"github.com/paul-didati/pokedex/pkg/graphql/typer"

	"github.com/graph-gophers/graphql-go"
)

// SDL is the type graph of the pokedex: output types, input types, and the
// Query and Mutation fields.
//
//go:embed schema.graphql
var SDL string

// NewSchema parses SDL and binds it to root. String descriptions are always
// enabled; opts are applied after.
func NewSchema(root *resolutions.Resolver, opts ...graphql.SchemaOpt) (*graphql.Schema, error) {
	opts = append([]graphql.SchemaOpt{graphql.UseStringDescriptions()}, opts...)
	schema, err := graphql.ParseSchema(SDL, root, opts...)
	if err != nil {
		return nil, fmt.Errorf("parse schema: %w", err)
	}
	return schema, nil
}

// MustNewSchema is like NewSchema but panics on error.
func MustNewSchema(root *resolutions.Resolver, opts ...graphql.SchemaOpt) *graphql.Schema {
	schema, err := NewSchema(root, opts...)
	if err != nil {
		panic(err)
	}
	return schema
}

// query executes a single operation and returns its data. Any error in the
// response fails the whole call.
func query(ctx context.Context, schema *graphql.Schema, document string, variables map[string]interface{}) (json.RawMessage, error) {
	out := schema.Exec(ctx, document, "", variables)
	if len(out.Errors) > 0 {
		return out.Data, fmt.Errorf("graphql query errors: %v", out.Errors)
	}
	return out.Data, nil
}

// Describe returns the type graph of schema as seen through introspection,
// with built-in scalars and introspection types left out.
func Describe(schema *graphql.Schema) []*typer.Type {
	types, _ := typer.ParseTypes(schema.Inspect().Types())
	return types
}
