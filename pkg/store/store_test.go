package store_test

import (
	"errors"
	"strings"
	"sync"

	"github.com/paul-didati/pokedex/pkg/store"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

func creatureNames(list []store.Creature) []string {
	names := make([]string, len(list))
	for i, c := range list {
		names[i] = c.Name
	}
	return names
}

func attackNames(list []store.Attack) []string {
	names := make([]string, len(list))
	for i, a := range list {
		if a.Name != nil {
			names[i] = *a.Name
		}
	}
	return names
}

var _ = Describe("Store", func() {
	var s *store.Store

	BeforeEach(func() {
		s = store.New(store.DefaultSeed())
	})

	Describe("seed", func() {
		It("loads the embedded seed", func() {
			seed := store.DefaultSeed()
			Expect(seed.Pokemon).ShouldNot(BeEmpty())
			Expect(seed.Types).Should(ContainElement("Grass"))
			Expect(seed.Attacks.Fast).ShouldNot(BeEmpty())
			Expect(seed.Attacks.Special).ShouldNot(BeEmpty())
		})

		It("decodes a seed from a reader", func() {
			seed, err := store.LoadSeed(strings.NewReader(`{
				"pokemon": [{"id": "999", "name": "Missingno", "types": ["Bird", "Normal"]}],
				"types": ["Bird"],
				"attacks": {"fast": [{"name": "Water Gun", "type": "Water", "damage": 10}], "special": []}
			}`))
			Expect(err).ShouldNot(HaveOccurred())
			Expect(creatureNames(seed.Pokemon)).Should(Equal([]string{"Missingno"}))
			Expect(seed.Pokemon[0].Classification).Should(BeNil())
			Expect(attackNames(seed.Attacks.Fast)).Should(Equal([]string{"Water Gun"}))
		})

		It("rejects malformed seeds", func() {
			_, err := store.LoadSeed(strings.NewReader(`{"pokemon": 1}`))
			Expect(err).Should(HaveOccurred())
		})

		It("does not share state with the seed it was built from", func() {
			seed := store.DefaultSeed()
			isolated := store.New(seed)
			seed.Types[0] = "Changed"
			seed.Pokemon[0].Name = "Changed"
			Expect(isolated.Types()[0]).Should(Equal("Grass"))
			Expect(isolated.Creatures()[0].Name).Should(Equal("Bulbasaur"))
		})
	})

	Describe("creature lookups", func() {
		It("returns every creature in store order", func() {
			Expect(creatureNames(s.Creatures())).Should(Equal([]string{
				"Bulbasaur", "Ivysaur", "Charmander", "Charmeleon", "Squirtle", "Pikachu", "Eevee",
			}))
			Expect(s.Len()).Should(Equal(7))
		})

		It("finds a creature by exact name", func() {
			for _, want := range s.Creatures() {
				got, ok := s.CreatureByName(want.Name)
				Expect(ok).Should(BeTrue())
				Expect(got).Should(Equal(want))
			}
		})

		It("matches names case-sensitively", func() {
			_, ok := s.CreatureByName("pikachu")
			Expect(ok).Should(BeFalse())
		})

		It("finds creatures by fast or special attack name", func() {
			Expect(creatureNames(s.CreaturesByAttackName("Tackle"))).Should(Equal([]string{"Bulbasaur", "Squirtle", "Eevee"}))
			Expect(creatureNames(s.CreaturesByAttackName("Flamethrower"))).Should(Equal([]string{"Charmander", "Charmeleon"}))
			Expect(s.CreaturesByAttackName("Hyper Beam")).Should(BeEmpty())
		})

		It("finds creatures by type-tag", func() {
			Expect(creatureNames(s.CreaturesByType("Poison"))).Should(Equal([]string{"Bulbasaur", "Ivysaur"}))
			Expect(s.CreaturesByType("Dragon")).Should(BeEmpty())
		})

		It("skips creatures without attacks or types", func() {
			s.AddCreature(store.Creature{Name: "Ditto"})
			Expect(creatureNames(s.CreaturesByAttackName("Tackle"))).ShouldNot(ContainElement("Ditto"))
			Expect(creatureNames(s.CreaturesByType("Normal"))).ShouldNot(ContainElement("Ditto"))
		})

		It("hands out copies", func() {
			c, _ := s.CreatureByName("Pikachu")
			*c.Types[0] = "Fire"
			*c.ID = "000"
			again, _ := s.CreatureByName("Pikachu")
			Expect(again.Types).Should(Equal([]*string{store.Ref("Electric")}))
			Expect(*again.ID).Should(Equal("025"))
		})
	})

	Describe("type-tags", func() {
		It("appends without a duplicate check", func() {
			before := s.Types()
			after := s.AddType("Fire")
			Expect(after).Should(HaveLen(len(before) + 1))
			Expect(after[len(after)-1]).Should(Equal("Fire"))
			Expect(count(s.Types(), "Fire")).Should(Equal(count(before, "Fire") + 1))
		})

		It("renames in place", func() {
			before := s.Types()
			i := indexOf(before, "Fire")
			types, ok := s.RenameType("Fire", "Flame")
			Expect(ok).Should(BeTrue())
			Expect(types).Should(HaveLen(len(before)))
			Expect(types[i]).Should(Equal("Flame"))
			Expect(types).ShouldNot(ContainElement("Fire"))
		})

		It("renames only the first occurrence", func() {
			s.AddType("Fire")
			types, ok := s.RenameType("Fire", "Flame")
			Expect(ok).Should(BeTrue())
			Expect(count(types, "Fire")).Should(Equal(1))
			Expect(types[len(types)-1]).Should(Equal("Fire"))
		})

		It("leaves the list unchanged when renaming a missing tag", func() {
			before := s.Types()
			types, ok := s.RenameType("Shadow", "Light")
			Expect(ok).Should(BeFalse())
			Expect(types).Should(BeNil())
			Expect(s.Types()).Should(Equal(before))
		})

		It("deletes the first occurrence and returns it", func() {
			before := s.Types()
			removed, ok := s.DeleteType("Ghost")
			Expect(ok).Should(BeTrue())
			Expect(removed).Should(Equal("Ghost"))
			Expect(s.Types()).Should(HaveLen(len(before) - 1))
			Expect(s.Types()).ShouldNot(ContainElement("Ghost"))
		})

		It("reports a missing tag on delete", func() {
			before := s.Types()
			_, ok := s.DeleteType("Shadow")
			Expect(ok).Should(BeFalse())
			Expect(s.Types()).Should(Equal(before))
		})
	})

	Describe("attacks", func() {
		It("lists attacks by category", func() {
			fast, ok := s.AttacksByCategory(store.Fast)
			Expect(ok).Should(BeTrue())
			Expect(fast).Should(Equal(s.Attacks().Fast))

			_, ok = s.AttacksByCategory(store.Category("slow"))
			Expect(ok).Should(BeFalse())
		})

		It("parses only the exact category keys", func() {
			c, ok := store.ParseCategory("special")
			Expect(ok).Should(BeTrue())
			Expect(c).Should(Equal(store.Special))

			_, ok = store.ParseCategory("Fast")
			Expect(ok).Should(BeFalse())
		})

		It("adds an attack to a category", func() {
			peck := store.Attack{Name: store.Ref("Peck"), Type: store.Ref("Flying"), Damage: store.Ref(10)}
			list, err := s.AddAttack(store.Fast, peck)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(list[len(list)-1]).Should(Equal(peck))

			fast, _ := s.AttacksByCategory(store.Fast)
			Expect(attackNames(fast)).Should(ContainElement("Peck"))
		})

		It("rejects an unknown category on add", func() {
			_, err := s.AddAttack(store.Category("slow"), store.Attack{Name: store.Ref("Peck")})
			Expect(err).Should(HaveOccurred())
			Expect(errors.Is(err, store.ErrUnknownCategory)).Should(BeTrue())
		})

		It("deletes the first match scanning fast before special", func() {
			s.AddAttack(store.Special, store.Attack{Name: store.Ref("Tackle"), Damage: store.Ref(99)})

			removed, ok := s.DeleteAttack("Tackle")
			Expect(ok).Should(BeTrue())
			Expect(removed).Should(HaveLen(1))
			Expect(*removed[0].Damage).Should(Equal(12))
			Expect(attackNames(s.Attacks().Fast)).ShouldNot(ContainElement("Tackle"))
			Expect(attackNames(s.Attacks().Special)).Should(ContainElement("Tackle"))
		})

		It("reports a missing attack on delete", func() {
			before := s.Attacks()
			_, ok := s.DeleteAttack("Hyper Beam")
			Expect(ok).Should(BeFalse())
			Expect(s.Attacks()).Should(Equal(before))
		})

		It("merges only the present fields on modify", func() {
			s.AddAttack(store.Fast, store.Attack{Name: store.Ref("Peck"), Type: store.Ref("Flying"), Damage: store.Ref(10)})

			got, ok := s.ModifyAttack("Peck", store.AttackPatch{Damage: store.Ref(15)})
			Expect(ok).Should(BeTrue())
			Expect(got).Should(Equal(store.Attack{Name: store.Ref("Peck"), Type: store.Ref("Flying"), Damage: store.Ref(15)}))

			fast, _ := s.AttacksByCategory(store.Fast)
			Expect(fast[len(fast)-1]).Should(Equal(got))
		})

		It("modifies special attacks", func() {
			got, ok := s.ModifyAttack("Thunder", store.AttackPatch{Name: store.Ref("Thunder II")})
			Expect(ok).Should(BeTrue())
			Expect(*got.Name).Should(Equal("Thunder II"))
			Expect(*got.Type).Should(Equal("Electric"))
			Expect(attackNames(s.Attacks().Special)).Should(ContainElement("Thunder II"))
		})

		It("reports a missing attack on modify", func() {
			_, ok := s.ModifyAttack("Hyper Beam", store.AttackPatch{Damage: store.Ref(1)})
			Expect(ok).Should(BeFalse())
		})
	})

	Describe("creature mutations", func() {
		mew := store.CreaturePatch{
			ID:             store.Ref("151"),
			Name:           store.Ref("Mew"),
			Classification: store.Ref("New Species Pokémon"),
			Types:          []*string{store.Ref("Psychic")},
			Weight:         &store.Sizes{Minimum: store.Ref("3.5kg"), Maximum: store.Ref("4.5kg")},
			FleeRate:       store.Ref(0.1),
		}

		It("appends a creature without an id check", func() {
			all := s.AddCreature(mew.Creature())
			Expect(all).Should(HaveLen(8))

			got, ok := s.CreatureByName("Mew")
			Expect(ok).Should(BeTrue())
			Expect(got).Should(Equal(mew.Creature()))
			Expect(got.Attacks).Should(BeNil())

			s.AddCreature(mew.Creature())
			Expect(s.Len()).Should(Equal(9))
		})

		It("merges present fields onto the creature with the id", func() {
			got, ok := s.ModifyCreature("025", store.CreaturePatch{
				Name:   store.Ref("Raichu"),
				Height: &store.Sizes{Maximum: store.Ref("0.9m")},
			})
			Expect(ok).Should(BeTrue())
			Expect(got.Name).Should(Equal("Raichu"))
			Expect(got.Height.Minimum).Should(BeNil())
			Expect(*got.Height.Maximum).Should(Equal("0.9m"))
			Expect(got.Types).Should(Equal([]*string{store.Ref("Electric")}))
			Expect(*got.MaxCP).Should(Equal(777))

			stored, ok := s.CreatureByName("Raichu")
			Expect(ok).Should(BeTrue())
			Expect(stored).Should(Equal(got))
		})

		It("reports a missing id on modify", func() {
			_, ok := s.ModifyCreature("999", mew)
			Expect(ok).Should(BeFalse())
		})

		It("deletes exactly one creature", func() {
			s.AddCreature(mew.Creature())
			s.AddCreature(mew.Creature())

			deletion, ok := s.DeleteCreature("151")
			Expect(ok).Should(BeTrue())
			Expect(creatureNames(deletion.Removed)).Should(Equal([]string{"Mew"}))
			Expect(deletion.Remaining).Should(HaveLen(8))
			Expect(s.Len()).Should(Equal(8))
		})

		It("keeps null entries of the tag lists", func() {
			ditto := store.CreaturePatch{
				ID:        store.Ref("132"),
				Name:      store.Ref("Ditto"),
				Types:     []*string{store.Ref("Normal"), nil},
				Resistant: []*string{nil},
			}
			s.AddCreature(ditto.Creature())

			got, ok := s.CreatureByName("Ditto")
			Expect(ok).Should(BeTrue())
			Expect(got.Types).Should(Equal([]*string{store.Ref("Normal"), nil}))
			Expect(got.Resistant).Should(Equal([]*string{nil}))
			Expect(creatureNames(s.CreaturesByType("Normal"))).Should(ContainElement("Ditto"))

			got, ok = s.ModifyCreature("132", store.CreaturePatch{Weaknesses: []*string{nil, store.Ref("Fighting")}})
			Expect(ok).Should(BeTrue())
			Expect(got.Weaknesses).Should(Equal([]*string{nil, store.Ref("Fighting")}))
			Expect(got.Types).Should(Equal([]*string{store.Ref("Normal"), nil}))
		})

		It("never matches a creature without an id", func() {
			s.AddCreature(store.Creature{Name: "Ditto"})

			_, ok := s.ModifyCreature("", store.CreaturePatch{Name: store.Ref("Metamon")})
			Expect(ok).Should(BeFalse())
			_, ok = s.DeleteCreature("")
			Expect(ok).Should(BeFalse())
			Expect(s.Len()).Should(Equal(8))
		})

		It("is a no-op the second time", func() {
			_, ok := s.DeleteCreature("133")
			Expect(ok).Should(BeTrue())
			_, ok = s.DeleteCreature("133")
			Expect(ok).Should(BeFalse())
			Expect(s.Len()).Should(Equal(6))
		})
	})

	It("serializes concurrent mutations", func() {
		var wg sync.WaitGroup
		for i := 0; i < 50; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				s.AddType("Shadow")
				s.AddCreature(store.Creature{Name: "Ditto"})
				s.Creatures()
			}()
		}
		wg.Wait()
		Expect(count(s.Types(), "Shadow")).Should(Equal(50))
		Expect(s.Len()).Should(Equal(57))
	})
})

func count(list []string, v string) int {
	n := 0
	for _, s := range list {
		if s == v {
			n++
		}
	}
	return n
}

func indexOf(list []string, v string) int {
	for i, s := range list {
		if s == v {
			return i
		}
	}
	return -1
}
