package store

// Category is one of the two attack groupings.
type Category string

const (
	Fast    Category = "fast"
	Special Category = "special"
)

// Categories is the order multi-category searches scan in.
var Categories = []Category{Fast, Special}

// ParseCategory returns the Category named by s. Only the exact keys are
// accepted.
func ParseCategory(s string) (Category, bool) {
	switch Category(s) {
	case Fast, Special:
		return Category(s), true
	}
	return "", false
}

// Attack is a named move. It is not addressable by id, its name is its
// identity.
type Attack struct {
	Name   *string `json:"name,omitempty"`
	Type   *string `json:"type,omitempty"`
	Damage *int    `json:"damage,omitempty"`
}

// HasName reports whether the attack is called name.
func (a Attack) HasName(name string) bool {
	return a.Name != nil && *a.Name == name
}

// AttackSet holds the fast and special attack lists.
type AttackSet struct {
	Fast    []Attack `json:"fast"`
	Special []Attack `json:"special"`
}

// list returns the backing slice for c, or nil for an unknown category.
func (s *AttackSet) list(c Category) *[]Attack {
	switch c {
	case Fast:
		return &s.Fast
	case Special:
		return &s.Special
	}
	return nil
}

// Has reports whether any attack in the set is called name.
func (s *AttackSet) Has(name string) bool {
	for _, c := range Categories {
		for _, a := range *s.list(c) {
			if a.HasName(name) {
				return true
			}
		}
	}
	return false
}

// Sizes is a min/max pair such as a weight or height range.
type Sizes struct {
	Minimum *string `json:"minimum,omitempty"`
	Maximum *string `json:"maximum,omitempty"`
}

// EvolutionRequirement is the candy cost of the next evolution.
type EvolutionRequirement struct {
	Amount *int    `json:"amount,omitempty"`
	Name   *string `json:"name,omitempty"`
}

// Evolution is a simplified reference to another creature.
type Evolution struct {
	ID   *int    `json:"id,omitempty"`
	Name *string `json:"name,omitempty"`
}

// Creature is a single entry of the pokedex. Nil fields were never
// supplied and resolve to null, and so do nil entries of the tag lists.
type Creature struct {
	ID                    *string               `json:"id,omitempty"`
	Name                  string                `json:"name"`
	Classification        *string               `json:"classification,omitempty"`
	Types                 []*string             `json:"types,omitempty"`
	Resistant             []*string             `json:"resistant,omitempty"`
	Weaknesses            []*string             `json:"weaknesses,omitempty"`
	Weight                *Sizes                `json:"weight,omitempty"`
	Height                *Sizes                `json:"height,omitempty"`
	FleeRate              *float64              `json:"fleeRate,omitempty"`
	EvolutionRequirements *EvolutionRequirement `json:"evolutionRequirements,omitempty"`
	Evolutions            []Evolution           `json:"evolutions,omitempty"`
	MaxCP                 *int                  `json:"maxCP,omitempty"`
	MaxHP                 *int                  `json:"maxHP,omitempty"`
	Attacks               *AttackSet            `json:"attacks,omitempty"`
}

// HasID reports whether the creature's id is id.
func (c Creature) HasID(id string) bool {
	return c.ID != nil && *c.ID == id
}

// HasType reports whether the creature is tagged with t.
func (c Creature) HasType(t string) bool {
	for _, v := range c.Types {
		if v != nil && *v == t {
			return true
		}
	}
	return false
}

// KnowsAttack reports whether name is one of the creature's fast or special
// attacks.
func (c Creature) KnowsAttack(name string) bool {
	return c.Attacks != nil && c.Attacks.Has(name)
}

// Ref returns a pointer to v.
func Ref[T any](v T) *T {
	return &v
}
