// Package rng provides the random-stream capability the xs package consumes.
// The generator's actual algorithm is out of scope for the cross-section
// core (spec.md §1, §6(d)); this package exists only so the core has a
// concrete, deterministic collaborator to drive and to test against, the
// way sim/rng.go and sim/cluster/rng.go give the wider simulator a
// deterministic, order-independent per-subsystem RNG rather than one
// global *rand.Rand.
package rng

import (
	"encoding/binary"
	"hash/fnv"
	"math/rand"
)

// Fixed stream identifiers, preserved as integers per spec.md §6(d).
const (
	StreamTracking = iota
	StreamURRPTable
)

// Stream is the capability the xs package consumes: a switchable "current"
// stream for sequential draws, plus a key-addressable draw that is
// deterministic given (stream, key) regardless of call order or of any
// other draw made on any stream. UrrEval relies on the latter: the same
// nuclide sampled at two different temperatures must consume the same
// r (spec.md §4.4).
type Stream interface {
	// SetStream switches the active stream, returning the previously
	// active stream id so the caller can restore it.
	SetStream(id int) (previous int)
	// Uniform draws the next value in [0, 1) from the active stream,
	// advancing it. Used for the stochastic temperature-interpolation
	// draw in spec.md §4.2/§4.3.
	Uniform() float64
	// FuturePRN deterministically derives a value in [0, 1) from the
	// active stream id and key, independent of the stream's sequential
	// position. Used for URR band sampling (spec.md §4.4).
	FuturePRN(key int64) float64
}

// PartitionedStream implements Stream with one lazily-created *rand.Rand
// per stream id, each seeded by XOR-ing the master seed with an FNV-1a hash
// of the stream id, so stream creation order never affects any stream's
// sequence. Adapted from sim/cluster/rng.go's PartitionedRNG.
type PartitionedStream struct {
	masterSeed int64
	current    int
	streams    map[int]*rand.Rand
}

// NewPartitionedStream creates a PartitionedStream from a master seed. The
// active stream starts as StreamTracking.
func NewPartitionedStream(masterSeed int64) *PartitionedStream {
	return &PartitionedStream{
		masterSeed: masterSeed,
		current:    StreamTracking,
		streams:    make(map[int]*rand.Rand),
	}
}

func (p *PartitionedStream) SetStream(id int) int {
	previous := p.current
	p.current = id
	return previous
}

func (p *PartitionedStream) Uniform() float64 {
	return p.streamFor(p.current).Float64()
}

func (p *PartitionedStream) FuturePRN(key int64) float64 {
	h := fnv.New64a()
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(p.masterSeed))
	h.Write(buf[:])
	binary.LittleEndian.PutUint64(buf[:], uint64(int64(p.current)))
	h.Write(buf[:])
	binary.LittleEndian.PutUint64(buf[:], uint64(key))
	h.Write(buf[:])
	seed := int64(h.Sum64())
	return rand.New(rand.NewSource(seed)).Float64()
}

func (p *PartitionedStream) streamFor(id int) *rand.Rand {
	if r, ok := p.streams[id]; ok {
		return r
	}
	h := fnv.New64a()
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(id))
	h.Write(buf[:])
	derivedSeed := p.masterSeed ^ int64(h.Sum64())
	r := rand.New(rand.NewSource(derivedSeed))
	p.streams[id] = r
	return r
}

// WithStream runs fn with id as the active stream, then restores whichever
// stream was active before the call, matching spec.md §4.4's "switch to a
// dedicated URR stream ... restore the tracking stream."
func WithStream(s Stream, id int, fn func()) {
	previous := s.SetStream(id)
	defer s.SetStream(previous)
	fn()
}
