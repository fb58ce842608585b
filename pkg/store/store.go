// Package store holds the in-memory pokedex: creatures, type-tags and the
// fast/special attack lists.
//
// A Store is the single owner of that state. Every method runs under one
// RWMutex, so mutations are applied one at a time and readers never see a
// half-applied edit. Values handed out are deep copies; edits only happen
// through the mutation methods.
package store

import (
	"errors"
	"fmt"
	"sync"
)

// ErrUnknownCategory is returned when an attack category is neither "fast"
// nor "special".
var ErrUnknownCategory = errors.New("unknown attack category")

// Store is the mutable pokedex.
type Store struct {
	mu        sync.RWMutex
	creatures []Creature
	types     []string
	attacks   AttackSet
}

// New returns a store initialized with a deep copy of seed.
func New(seed Seed) *Store {
	return &Store{
		creatures: cloneCreatures(seed.Pokemon),
		types:     cloneStrings(seed.Types),
		attacks:   seed.Attacks.Clone(),
	}
}

// Creatures returns every creature in store order.
func (s *Store) Creatures() []Creature {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneCreatures(s.creatures)
}

// Len returns the number of creatures.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.creatures)
}

// CreatureByName returns the first creature called name. The match is exact
// and case-sensitive.
func (s *Store) CreatureByName(name string) (Creature, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.creatures {
		if c.Name == name {
			return c.Clone(), true
		}
	}
	return Creature{}, false
}

func (s *Store) filter(match func(Creature) bool) []Creature {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []Creature{}
	for _, c := range s.creatures {
		if match(c) {
			out = append(out, c.Clone())
		}
	}
	return out
}

// CreaturesByAttackName returns the creatures that know the attack name,
// either as a fast or a special attack.
func (s *Store) CreaturesByAttackName(name string) []Creature {
	return s.filter(func(c Creature) bool { return c.KnowsAttack(name) })
}

// CreaturesByType returns the creatures tagged with t.
func (s *Store) CreaturesByType(t string) []Creature {
	return s.filter(func(c Creature) bool { return c.HasType(t) })
}

// Types returns the type-tag list verbatim.
func (s *Store) Types() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneStrings(s.types)
}

// AddType appends t without checking for duplicates and returns the updated
// list.
func (s *Store) AddType(t string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.types = append(s.types, t)
	return cloneStrings(s.types)
}

func indexOf(list []string, v string) int {
	for i, s := range list {
		if s == v {
			return i
		}
	}
	return -1
}

// RenameType overwrites the first occurrence of old with new, keeping its
// position. It reports false and leaves the list alone when old is missing.
func (s *Store) RenameType(old, new string) ([]string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := indexOf(s.types, old)
	if i < 0 {
		return nil, false
	}
	s.types[i] = new
	return cloneStrings(s.types), true
}

// DeleteType removes the first occurrence of old and returns it.
func (s *Store) DeleteType(old string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := indexOf(s.types, old)
	if i < 0 {
		return "", false
	}
	removed := s.types[i]
	s.types = append(s.types[:i], s.types[i+1:]...)
	return removed, true
}

// Attacks returns both attack lists.
func (s *Store) Attacks() AttackSet {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.attacks.Clone()
}

// AttacksByCategory returns the attack list of c. It reports false for an
// unknown category.
func (s *Store) AttacksByCategory(c Category) ([]Attack, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	list := s.attacks.list(c)
	if list == nil {
		return nil, false
	}
	return cloneAttacks(*list), true
}

// AddAttack appends a to the list of c without a uniqueness check and
// returns that list.
func (s *Store) AddAttack(c Category, a Attack) ([]Attack, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	list := s.attacks.list(c)
	if list == nil {
		return nil, fmt.Errorf("%w %q", ErrUnknownCategory, c)
	}
	*list = append(*list, a.Clone())
	return cloneAttacks(*list), nil
}

// findAttack scans the categories in order and returns the list holding the
// first attack called name along with its index.
func (s *Store) findAttack(name string) (*[]Attack, int) {
	for _, c := range Categories {
		list := s.attacks.list(c)
		for i, a := range *list {
			if a.HasName(name) {
				return list, i
			}
		}
	}
	return nil, -1
}

// DeleteAttack removes the first attack called name and returns the removed
// items.
func (s *Store) DeleteAttack(name string) ([]Attack, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	list, i := s.findAttack(name)
	if list == nil {
		return nil, false
	}
	removed := []Attack{(*list)[i]}
	*list = append((*list)[:i], (*list)[i+1:]...)
	return removed, true
}

// ModifyAttack applies p to the first attack called name and returns the
// result.
func (s *Store) ModifyAttack(name string, p AttackPatch) (Attack, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	list, i := s.findAttack(name)
	if list == nil {
		return Attack{}, false
	}
	p.Apply(&(*list)[i])
	return (*list)[i].Clone(), true
}

// AddCreature appends c without checking its id and returns every creature.
func (s *Store) AddCreature(c Creature) []Creature {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.creatures = append(s.creatures, c.Clone())
	return cloneCreatures(s.creatures)
}

func (s *Store) indexOfCreature(id string) int {
	for i, c := range s.creatures {
		if c.HasID(id) {
			return i
		}
	}
	return -1
}

// ModifyCreature applies p to the first creature with the given id and
// returns the result.
func (s *Store) ModifyCreature(id string, p CreaturePatch) (Creature, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexOfCreature(id)
	if i < 0 {
		return Creature{}, false
	}
	p.Apply(&s.creatures[i])
	return s.creatures[i].Clone(), true
}

// Deletion is the outcome of DeleteCreature.
type Deletion struct {
	// Removed holds the spliced-out creatures.
	Removed []Creature
	// Remaining is the collection after the removal.
	Remaining []Creature
}

// DeleteCreature removes the first creature with the given id.
func (s *Store) DeleteCreature(id string) (Deletion, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexOfCreature(id)
	if i < 0 {
		return Deletion{}, false
	}
	removed := []Creature{s.creatures[i]}
	s.creatures = append(s.creatures[:i], s.creatures[i+1:]...)
	return Deletion{
		Removed:   removed,
		Remaining: cloneCreatures(s.creatures),
	}, true
}
