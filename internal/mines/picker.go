package mines

import (
	"hash/maphash"
	"math/rand/v2"
)

// Picker chooses k distinct elements of candidates to hold mines.
type Picker interface {
	Pick(candidates []int, k int) []int
}

// PickerFunc adapts a plain function to [Picker].
type PickerFunc func(candidates []int, k int) []int

func (f PickerFunc) Pick(candidates []int, k int) []int {
	return f(candidates, k)
}

type RandPicker struct {
	rnd *rand.Rand
}

func NewRandPicker(rnd *rand.Rand) *RandPicker {
	return &RandPicker{rnd: rnd}
}

// Pick draws without replacement: each chosen slot is overwritten by the last
// remaining candidate. candidates is left untouched.
func (p *RandPicker) Pick(candidates []int, k int) []int {
	var (
		left   = append([]int(nil), candidates...)
		n      = len(left)
		picked = make([]int, 0, min(k, n))
	)
	for range min(k, len(candidates)) {
		i := p.rnd.IntN(n)
		picked = append(picked, left[i])
		n--
		left[i] = left[n]
	}
	return picked
}

// NewSeededRand returns a generator seeded from runtime entropy.
func NewSeededRand() *rand.Rand {
	return rand.New(rand.NewPCG(
		new(maphash.Hash).Sum64(), new(maphash.Hash).Sum64(),
	))
}
