package resolutions

import (
	"github.com/paul-didati/pokedex/pkg/store"
)

func int32Ptr(p *int) *int32 {
	if p == nil {
		return nil
	}
	v := int32(*p)
	return &v
}

func intPtr(p *int32) *int {
	if p == nil {
		return nil
	}
	v := int(*p)
	return &v
}

// stringList converts a stored list into a nullable list of nullable
// strings. A nil list resolves to null.
func stringList(list []string) *[]*string {
	if list == nil {
		return nil
	}
	out := make([]*string, len(list))
	for i := range list {
		out[i] = &list[i]
	}
	return &out
}

// tagList resolves a creature's tag list. Nil entries stay null.
func tagList(list []*string) *[]*string {
	if list == nil {
		return nil
	}
	return &list
}

// inputStrings unwraps a nullable input list, keeping null entries.
func inputStrings(list *[]*string) []*string {
	if list == nil {
		return nil
	}
	return *list
}

type attackResolver struct {
	a store.Attack
}

func (r *attackResolver) Name() *string  { return r.a.Name }
func (r *attackResolver) Type() *string  { return r.a.Type }
func (r *attackResolver) Damage() *int32 { return int32Ptr(r.a.Damage) }

func attackList(list []store.Attack) *[]*attackResolver {
	if list == nil {
		return nil
	}
	out := make([]*attackResolver, len(list))
	for i, a := range list {
		out[i] = &attackResolver{a}
	}
	return &out
}

type attackWrapResolver struct {
	set store.AttackSet
}

func (r *attackWrapResolver) Fast() *[]*attackResolver    { return attackList(r.set.Fast) }
func (r *attackWrapResolver) Special() *[]*attackResolver { return attackList(r.set.Special) }

type sizesResolver struct {
	s store.Sizes
}

func (r *sizesResolver) Minimum() *string { return r.s.Minimum }
func (r *sizesResolver) Maximum() *string { return r.s.Maximum }

func sizes(s *store.Sizes) *sizesResolver {
	if s == nil {
		return nil
	}
	return &sizesResolver{*s}
}

type simplePokeResolver struct {
	e store.Evolution
}

func (r *simplePokeResolver) ID() *int32    { return int32Ptr(r.e.ID) }
func (r *simplePokeResolver) Name() *string { return r.e.Name }

type evolutionRequirementResolver struct {
	req store.EvolutionRequirement
}

func (r *evolutionRequirementResolver) Amount() *int32 { return int32Ptr(r.req.Amount) }
func (r *evolutionRequirementResolver) Name() *string  { return r.req.Name }

type creatureResolver struct {
	c store.Creature
}

func (r *creatureResolver) ID() *string             { return r.c.ID }
func (r *creatureResolver) Name() string            { return r.c.Name }
func (r *creatureResolver) Classification() *string { return r.c.Classification }
func (r *creatureResolver) Types() *[]*string       { return tagList(r.c.Types) }
func (r *creatureResolver) Resistant() *[]*string   { return tagList(r.c.Resistant) }
func (r *creatureResolver) Weaknesses() *[]*string  { return tagList(r.c.Weaknesses) }
func (r *creatureResolver) Weight() *sizesResolver  { return sizes(r.c.Weight) }
func (r *creatureResolver) Height() *sizesResolver  { return sizes(r.c.Height) }
func (r *creatureResolver) FleeRate() *float64      { return r.c.FleeRate }
func (r *creatureResolver) MaxCP() *int32           { return int32Ptr(r.c.MaxCP) }
func (r *creatureResolver) MaxHP() *int32           { return int32Ptr(r.c.MaxHP) }

func (r *creatureResolver) EvolutionRequirements() *evolutionRequirementResolver {
	if r.c.EvolutionRequirements == nil {
		return nil
	}
	return &evolutionRequirementResolver{*r.c.EvolutionRequirements}
}

func (r *creatureResolver) Evolutions() *[]*simplePokeResolver {
	if r.c.Evolutions == nil {
		return nil
	}
	out := make([]*simplePokeResolver, len(r.c.Evolutions))
	for i, e := range r.c.Evolutions {
		out[i] = &simplePokeResolver{e}
	}
	return &out
}

func (r *creatureResolver) Attacks() *attackWrapResolver {
	if r.c.Attacks == nil {
		return nil
	}
	return &attackWrapResolver{*r.c.Attacks}
}

func creatureList(list []store.Creature) *[]*creatureResolver {
	if list == nil {
		return nil
	}
	out := make([]*creatureResolver, len(list))
	for i, c := range list {
		out[i] = &creatureResolver{c}
	}
	return &out
}

type sizesInput struct {
	Minimum *string
	Maximum *string
}

func (in *sizesInput) sizes() *store.Sizes {
	if in == nil {
		return nil
	}
	return &store.Sizes{Minimum: in.Minimum, Maximum: in.Maximum}
}

type attackInput struct {
	Name   *string
	Type   *string
	Damage *int32
}

func (in *attackInput) patch() store.AttackPatch {
	if in == nil {
		return store.AttackPatch{}
	}
	return store.AttackPatch{
		Name:   in.Name,
		Type:   in.Type,
		Damage: intPtr(in.Damage),
	}
}

type creatureInput struct {
	ID             *string
	Name           string
	Classification *string
	Types          *[]*string
	Resistant      *[]*string
	Weaknesses     *[]*string
	Weight         *sizesInput
	Height         *sizesInput
	FleeRate       *float64
}

func (in *creatureInput) patch() store.CreaturePatch {
	return store.CreaturePatch{
		ID:             in.ID,
		Name:           &in.Name,
		Classification: in.Classification,
		Types:          inputStrings(in.Types),
		Resistant:      inputStrings(in.Resistant),
		Weaknesses:     inputStrings(in.Weaknesses),
		Weight:         in.Weight.sizes(),
		Height:         in.Height.sizes(),
		FleeRate:       in.FleeRate,
	}
}
