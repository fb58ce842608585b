package resolutions

import (
	"github.com/paul-didati/pokedex/pkg/store"
)

func (r *Resolver) AllCreatures() *[]*creatureResolver {
	return creatureList(r.store.Creatures())
}

func (r *Resolver) CreatureByName(args struct{ Name string }) *creatureResolver {
	c, ok := r.store.CreatureByName(args.Name)
	if !ok {
		return nil
	}
	return &creatureResolver{c}
}

func (r *Resolver) CreaturesByAttackName(args struct{ Name string }) *[]*creatureResolver {
	return creatureList(r.store.CreaturesByAttackName(args.Name))
}

func (r *Resolver) AllTypes() *[]*string {
	return stringList(r.store.Types())
}

func (r *Resolver) CreaturesByType(args struct{ Name string }) *[]*creatureResolver {
	return creatureList(r.store.CreaturesByType(args.Name))
}

func (r *Resolver) AllAttacks() *attackWrapResolver {
	return &attackWrapResolver{r.store.Attacks()}
}

// AttacksByType resolves to null for anything but "fast" and "special".
func (r *Resolver) AttacksByType(args struct{ Category string }) *[]*attackResolver {
	category, ok := store.ParseCategory(args.Category)
	if !ok {
		return nil
	}
	list, ok := r.store.AttacksByCategory(category)
	if !ok {
		return nil
	}
	return attackList(list)
}
