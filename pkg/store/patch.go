package store

// AttackPatch carries the fields of an attack edit. Nil fields are left
// untouched when the patch is applied.
type AttackPatch struct {
	Name   *string
	Type   *string
	Damage *int
}

// Apply overwrites the fields of a that are present in p.
func (p AttackPatch) Apply(a *Attack) {
	if p.Name != nil {
		a.Name = clonePtr(p.Name)
	}
	if p.Type != nil {
		a.Type = clonePtr(p.Type)
	}
	if p.Damage != nil {
		a.Damage = clonePtr(p.Damage)
	}
}

// Attack returns the attack made of the present fields of p.
func (p AttackPatch) Attack() Attack {
	var a Attack
	p.Apply(&a)
	return a
}

// CreaturePatch carries the writable fields of a creature. Evolutions,
// combat stats and attacks are read-only and have no counterpart here.
type CreaturePatch struct {
	ID             *string
	Name           *string
	Classification *string
	Types          []*string
	Resistant      []*string
	Weaknesses     []*string
	Weight         *Sizes
	Height         *Sizes
	FleeRate       *float64
}

// Apply overwrites the fields of c that are present in p. The merge is
// shallow: a present Weight replaces the stored one as a whole.
func (p CreaturePatch) Apply(c *Creature) {
	if p.ID != nil {
		c.ID = clonePtr(p.ID)
	}
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.Classification != nil {
		c.Classification = clonePtr(p.Classification)
	}
	if p.Types != nil {
		c.Types = cloneStringPtrs(p.Types)
	}
	if p.Resistant != nil {
		c.Resistant = cloneStringPtrs(p.Resistant)
	}
	if p.Weaknesses != nil {
		c.Weaknesses = cloneStringPtrs(p.Weaknesses)
	}
	if p.Weight != nil {
		c.Weight = p.Weight.clone()
	}
	if p.Height != nil {
		c.Height = p.Height.clone()
	}
	if p.FleeRate != nil {
		c.FleeRate = clonePtr(p.FleeRate)
	}
}

// Creature returns the creature made of the present fields of p.
func (p CreaturePatch) Creature() Creature {
	var c Creature
	p.Apply(&c)
	return c
}
