package resolutions

import (
	"fmt"

	"github.com/paul-didati/pokedex/pkg/store"

	"go.uber.org/zap"
)

// renameErrorPayload is what RenameTypeTag returns when the tag is missing.
var renameErrorPayload = []string{"error"}

func (r *Resolver) AddTypeTag(args struct{ NewType string }) *[]*string {
	types := r.store.AddType(args.NewType)
	r.logger.Debug("type-tag added", zap.String("type", args.NewType))
	return stringList(types)
}

func (r *Resolver) renameTypeTag(old, new string) result[[]string] {
	types, found := r.store.RenameType(old, new)
	if !found {
		return missing[[]string](fmt.Sprintf("you dont have %s.", old))
	}
	return success(types)
}

func (r *Resolver) RenameTypeTag(args struct{ Old, New string }) (*[]*string, error) {
	res := r.renameTypeTag(args.Old, args.New)
	if !res.found {
		if r.strictErrors {
			return nil, &NotFoundError{Reason: res.reason}
		}
		return stringList(renameErrorPayload), nil
	}
	r.logger.Debug("type-tag renamed", zap.String("old", args.Old), zap.String("new", args.New))
	return stringList(res.value), nil
}

func (r *Resolver) deleteTypeTag(old string) result[string] {
	removed, found := r.store.DeleteType(old)
	if !found {
		return missing[string](fmt.Sprintf("you dont have %s.", old))
	}
	return success(removed)
}

// DeleteTypeTag returns the removed tag. A missing tag yields a message in
// the same field unless strict errors are enabled.
func (r *Resolver) DeleteTypeTag(args struct{ Old string }) (*string, error) {
	res := r.deleteTypeTag(args.Old)
	if !res.found {
		if r.strictErrors {
			return nil, &NotFoundError{Reason: res.reason}
		}
		return &res.reason, nil
	}
	r.logger.Debug("type-tag deleted", zap.String("type", res.value))
	return &res.value, nil
}

func (r *Resolver) AddAttack(args struct {
	Category string
	Input    *attackInput
}) (*[]*attackResolver, error) {
	category, valid := store.ParseCategory(args.Category)
	if !valid {
		return nil, fmt.Errorf("%w %q", store.ErrUnknownCategory, args.Category)
	}
	if args.Input == nil {
		list, _ := r.store.AttacksByCategory(category)
		return attackList(list), nil
	}
	list, err := r.store.AddAttack(category, args.Input.patch().Attack())
	if err != nil {
		return nil, err
	}
	r.logger.Debug("attack added", zap.String("category", string(category)), zap.Stringp("name", args.Input.Name))
	return attackList(list), nil
}

// DeleteAttack resolves to a one-element list holding the removed attack,
// or to null when no category has an attack with that name.
func (r *Resolver) DeleteAttack(args struct{ Name string }) *[]*attackResolver {
	removed, found := r.store.DeleteAttack(args.Name)
	if !found {
		return nil
	}
	r.logger.Debug("attack deleted", zap.String("name", args.Name))
	return attackList(removed)
}

func (r *Resolver) ModifyAttack(args struct {
	Name  string
	Input *attackInput
}) *attackResolver {
	a, found := r.store.ModifyAttack(args.Name, args.Input.patch())
	if !found {
		return nil
	}
	r.logger.Debug("attack modified", zap.String("name", args.Name))
	return &attackResolver{a}
}

func (r *Resolver) AddCreature(args struct{ Input *creatureInput }) *[]*creatureResolver {
	if args.Input == nil {
		return creatureList(r.store.Creatures())
	}
	all := r.store.AddCreature(args.Input.patch().Creature())
	r.logger.Debug("creature added", zap.Stringp("id", args.Input.ID), zap.String("name", args.Input.Name))
	return creatureList(all)
}

func (r *Resolver) ModifyCreature(args struct {
	ID    *string
	Input *creatureInput
}) *creatureResolver {
	if args.ID == nil {
		return nil
	}
	var patch store.CreaturePatch
	if args.Input != nil {
		patch = args.Input.patch()
	}
	c, found := r.store.ModifyCreature(*args.ID, patch)
	if !found {
		return nil
	}
	r.logger.Debug("creature modified", zap.String("id", *args.ID))
	return &creatureResolver{c}
}

// DeleteCreature resolves to the removed creatures or to the remaining
// collection, depending on the configured DeleteCreatureResult.
func (r *Resolver) DeleteCreature(args struct{ ID *string }) *[]*creatureResolver {
	if args.ID == nil {
		return nil
	}
	deletion, found := r.store.DeleteCreature(*args.ID)
	if !found {
		return nil
	}
	r.logger.Debug("creature deleted", zap.String("id", *args.ID), zap.Stringer("returns", r.deleteCreature))
	if r.deleteCreature == ReturnRemaining {
		return creatureList(deletion.Remaining)
	}
	return creatureList(deletion.Removed)
}
