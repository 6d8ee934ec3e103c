package random

import (
	"fmt"
	rand "math/rand/v2"
	"sync"
	"time"
)

const goldenRatio64 = 0x9e3779b97f4a7c15

// Source 产生均匀分布的整数，区间为 [min, max)
type Source interface {
	Next(min, max int) int
}

// Rand is a seeded PCG stream. Draws are serialized so several callers
// sharing one Rand observe a single sequential stream.
type Rand struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// New returns a deterministic stream for seed.
func New(seed int64) *Rand {
	u := uint64(seed)
	return &Rand{rnd: rand.New(rand.NewPCG(mix(u), mix(u+goldenRatio64)))}
}

// Next panics when min >= max, the same way rand.IntN does for an empty range.
func (r *Rand) Next(min, max int) int {
	if min >= max {
		panic(fmt.Sprintf("random: empty range [%d, %d)", min, max))
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return min + r.rnd.IntN(max-min)
}

var (
	defaultOnce sync.Once
	defaultRand *Rand
)

// Default returns the process-wide source, created on first use.
func Default() *Rand {
	defaultOnce.Do(func() {
		defaultRand = New(time.Now().UnixNano())
	})
	return defaultRand
}

func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
