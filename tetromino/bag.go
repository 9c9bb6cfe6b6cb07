package tetromino

import "math/rand/v2"

// Sequencer produces the kind of each newly spawned piece.
type Sequencer interface {
	// Next returns the next kind to spawn.
	Next() Kind
	// Reset discards any pending state so the sequence starts over.
	Reset()
}

// Bag is a 7-bag randomizer. Each refill is a uniform permutation of the seven
// kinds, so any seven draws starting at a refill contain every kind once.
type Bag struct {
	rng     *rand.Rand
	pending []Kind
}

// NewBag creates a Bag drawing from rng. A nil rng uses a randomly seeded
// PCG source.
func NewBag(rng *rand.Rand) *Bag {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Bag{
		rng:     rng,
		pending: make([]Kind, 0, KindCount),
	}
}

// NewSeededBag creates a Bag whose sequence is fully determined by seed.
func NewSeededBag(seed uint64) *Bag {
	return NewBag(rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)))
}

// Next pops the next kind, refilling and reshuffling the bag when it is empty.
func (b *Bag) Next() Kind {
	if len(b.pending) == 0 {
		b.refill()
	}

	if len(b.pending) == 0 {
		return Kinds[b.rng.IntN(KindCount)]
	}

	kind := b.pending[len(b.pending)-1]
	b.pending = b.pending[:len(b.pending)-1]
	return kind
}

// Reset empties the bag; the next draw starts a fresh permutation.
func (b *Bag) Reset() {
	b.pending = b.pending[:0]
}

// Remaining returns how many kinds are left before the next refill.
func (b *Bag) Remaining() int {
	return len(b.pending)
}

func (b *Bag) refill() {
	b.pending = append(b.pending[:0], Kinds[:]...)
	b.rng.Shuffle(len(b.pending), func(i, j int) {
		b.pending[i], b.pending[j] = b.pending[j], b.pending[i]
	})
}

// Cycle replays a fixed list of kinds in order, wrapping around at the end.
// It is useful for replays and deterministic tests.
type Cycle struct {
	kinds []Kind
	pos   int
}

// NewCycle creates a Cycle over kinds. An empty list cycles through the
// catalog order.
func NewCycle(kinds ...Kind) *Cycle {
	if len(kinds) == 0 {
		kinds = Kinds[:]
	}
	return &Cycle{kinds: append([]Kind(nil), kinds...)}
}

func (c *Cycle) Next() Kind {
	kind := c.kinds[c.pos]
	c.pos = (c.pos + 1) % len(c.kinds)
	return kind
}

func (c *Cycle) Reset() {
	c.pos = 0
}
