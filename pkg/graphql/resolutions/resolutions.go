// Package resolutions implements the root resolver of the pokedex schema:
// one method per Query and Mutation field, all backed by a single injected
// store.Store.
package resolutions

import (
	"fmt"

	"github.com/paul-didati/pokedex/pkg/store"

	"go.uber.org/zap"
)

// DeleteCreatureResult selects what DeleteCreature returns.
type DeleteCreatureResult int

const (
	// ReturnRemoved returns the spliced-out creatures.
	ReturnRemoved DeleteCreatureResult = iota
	// ReturnRemaining returns the collection after the removal, like the
	// other collection mutations do.
	ReturnRemaining
)

// ParseDeleteCreatureResult maps "removed" and "remaining" to their modes.
func ParseDeleteCreatureResult(s string) (DeleteCreatureResult, error) {
	switch s {
	case "", "removed":
		return ReturnRemoved, nil
	case "remaining":
		return ReturnRemaining, nil
	}
	return 0, fmt.Errorf("unknown delete creature result %q", s)
}

func (m DeleteCreatureResult) String() string {
	if m == ReturnRemaining {
		return "remaining"
	}
	return "removed"
}

// Resolver is the root resolver for both Query and Mutation.
type Resolver struct {
	store *store.Store

	logger         *zap.Logger
	deleteCreature DeleteCreatureResult
	strictErrors   bool
}

// Option configures a Resolver.
type Option func(r *Resolver)

// WithLogger sets the logger mutations are reported to.
func WithLogger(logger *zap.Logger) Option {
	return func(r *Resolver) {
		r.logger = logger
	}
}

// WithDeleteCreatureResult selects the DeleteCreature return contract.
func WithDeleteCreatureResult(m DeleteCreatureResult) Option {
	return func(r *Resolver) {
		r.deleteCreature = m
	}
}

// WithStrictErrors makes RenameTypeTag and DeleteTypeTag report a missing
// tag as a GraphQL error instead of an in-band payload.
func WithStrictErrors(strict bool) Option {
	return func(r *Resolver) {
		r.strictErrors = strict
	}
}

// New returns a Resolver over s.
func New(s *store.Store, opts ...Option) *Resolver {
	r := &Resolver{
		store:  s,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}
