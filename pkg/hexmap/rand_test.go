package hexmap

import "math/rand"

// scriptedRand returns the queued values first and falls back to a seeded
// source afterwards.
type scriptedRand struct {
	ints   []int
	floats []float64
	*rand.Rand
}

func newScriptedRand(seed int64, ints ...int) *scriptedRand {
	return &scriptedRand{ints: ints, Rand: rand.New(rand.NewSource(seed))}
}

func (s *scriptedRand) Intn(n int) int {
	if len(s.ints) > 0 {
		v := s.ints[0]
		s.ints = s.ints[1:]
		return v % n
	}
	return s.Rand.Intn(n)
}

func (s *scriptedRand) Float64() float64 {
	if len(s.floats) > 0 {
		v := s.floats[0]
		s.floats = s.floats[1:]
		return v
	}
	return s.Rand.Float64()
}
