package config

import (
	"fmt"
	"math/rand/v2"
	"os"
	"strconv"
	"strings"

	"github.com/vancomm/minesweeper/internal/mines"
)

// Seed reads MINES_SEED, two comma-separated uint64 values for the PCG
// generator. ok is false when the variable is not set.
func Seed() (seed [2]uint64, ok bool, err error) {
	seedStr, ok := os.LookupEnv("MINES_SEED")
	if !ok {
		return seed, false, nil
	}
	parts := strings.Split(seedStr, ",")
	if len(parts) != 2 {
		return seed, true, fmt.Errorf("MINES_SEED must look like \"<uint64>,<uint64>\", got %q", seedStr)
	}
	for i, part := range parts {
		seed[i], err = strconv.ParseUint(strings.TrimSpace(part), 10, 64)
		if err != nil {
			return seed, true, fmt.Errorf("unable to parse MINES_SEED: %w", err)
		}
	}
	return seed, true, nil
}

// NewRand returns a generator seeded from MINES_SEED if set, from runtime
// entropy otherwise.
func NewRand() (*rand.Rand, error) {
	seed, ok, err := Seed()
	if err != nil {
		return nil, err
	}
	if !ok {
		return mines.NewSeededRand(), nil
	}
	return rand.New(rand.NewPCG(seed[0], seed[1])), nil
}
