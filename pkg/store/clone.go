package store

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func cloneStrings(s []string) []string {
	if s == nil {
		return nil
	}
	return append(make([]string, 0, len(s)), s...)
}

func cloneStringPtrs(s []*string) []*string {
	if s == nil {
		return nil
	}
	out := make([]*string, len(s))
	for i, v := range s {
		out[i] = clonePtr(v)
	}
	return out
}

// Clone returns a deep copy of a.
func (a Attack) Clone() Attack {
	return Attack{
		Name:   clonePtr(a.Name),
		Type:   clonePtr(a.Type),
		Damage: clonePtr(a.Damage),
	}
}

func cloneAttacks(list []Attack) []Attack {
	if list == nil {
		return nil
	}
	out := make([]Attack, len(list))
	for i, a := range list {
		out[i] = a.Clone()
	}
	return out
}

// Clone returns a deep copy of s.
func (s AttackSet) Clone() AttackSet {
	return AttackSet{
		Fast:    cloneAttacks(s.Fast),
		Special: cloneAttacks(s.Special),
	}
}

func (s *Sizes) clone() *Sizes {
	if s == nil {
		return nil
	}
	return &Sizes{Minimum: clonePtr(s.Minimum), Maximum: clonePtr(s.Maximum)}
}

// Clone returns a deep copy of c.
func (c Creature) Clone() Creature {
	out := Creature{
		ID:             clonePtr(c.ID),
		Name:           c.Name,
		Classification: clonePtr(c.Classification),
		Types:          cloneStringPtrs(c.Types),
		Resistant:      cloneStringPtrs(c.Resistant),
		Weaknesses:     cloneStringPtrs(c.Weaknesses),
		Weight:         c.Weight.clone(),
		Height:         c.Height.clone(),
		FleeRate:       clonePtr(c.FleeRate),
		MaxCP:          clonePtr(c.MaxCP),
		MaxHP:          clonePtr(c.MaxHP),
	}
	if r := c.EvolutionRequirements; r != nil {
		out.EvolutionRequirements = &EvolutionRequirement{
			Amount: clonePtr(r.Amount),
			Name:   clonePtr(r.Name),
		}
	}
	if c.Evolutions != nil {
		out.Evolutions = make([]Evolution, len(c.Evolutions))
		for i, e := range c.Evolutions {
			out.Evolutions[i] = Evolution{ID: clonePtr(e.ID), Name: clonePtr(e.Name)}
		}
	}
	if c.Attacks != nil {
		attacks := c.Attacks.Clone()
		out.Attacks = &attacks
	}
	return out
}

func cloneCreatures(list []Creature) []Creature {
	if list == nil {
		return nil
	}
	out := make([]Creature, len(list))
	for i, c := range list {
		out[i] = c.Clone()
	}
	return out
}
