package store

import (
	_ "embed"
	"fmt"
	"io"

	jsoniter "github.com/json-iterator/go"
)

//go:embed seed.json
var defaultSeed []byte

// Seed is the initial content of a Store, in the layout of the pokedex data
// file.
type Seed struct {
	Pokemon []Creature `json:"pokemon"`
	Types   []string   `json:"types"`
	Attacks AttackSet  `json:"attacks"`
}

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// LoadSeed decodes a seed from r.
func LoadSeed(r io.Reader) (Seed, error) {
	var seed Seed
	if err := json.NewDecoder(r).Decode(&seed); err != nil {
		return Seed{}, fmt.Errorf("decode seed: %w", err)
	}
	return seed, nil
}

// DefaultSeed returns the embedded seed. Each call decodes a fresh copy.
func DefaultSeed() Seed {
	var seed Seed
	if err := json.Unmarshal(defaultSeed, &seed); err != nil {
		panic(fmt.Sprintf("store: embedded seed is invalid: %v", err))
	}
	return seed
}
