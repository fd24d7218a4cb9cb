package seed

import (
	"math/rand"
	"time"

	"yieldboard/pkg/utils"
)

// Generator produces randomized price histories and departure schedules from
// a product catalog. The clock and random source are injected so runs can be
// reproduced.
type Generator struct {
	clock utils.Clock
	rnd   *rand.Rand
}

// NewGenerator creates a generator. A nil rnd is replaced by a time-seeded source.
func NewGenerator(clock utils.Clock, rnd *rand.Rand) *Generator {
	if rnd == nil {
		rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Generator{
		clock: clock,
		rnd:   rnd,
	}
}

// NewSeededGenerator is a convenience for a generator over a fixed seed;
// seed 0 selects a time-based seed.
func NewSeededGenerator(clock utils.Clock, seed int64) *Generator {
	if seed == 0 {
		return NewGenerator(clock, nil)
	}
	return NewGenerator(clock, rand.New(rand.NewSource(seed)))
}

// uniform draws from [min, max)
func (g *Generator) uniform(min, max float64) float64 {
	return min + g.rnd.Float64()*(max-min)
}

func (g *Generator) pick(values []string) string {
	return values[g.rnd.Intn(len(values))]
}
