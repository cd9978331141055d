package classifier

import (
	"context"
	"encoding/binary"
	"hash/fnv"
	"math/rand"
	"strconv"
)

// StubName is the backend name of the stub predictor.
const StubName = "stub"

// Stub is a demo predictor. It does NOT classify anything: the real
// probability is drawn from a PRNG seeded by the configured seed and a
// hash of the text, so the same text always gets the same answer.
type Stub struct {
	seed int64
}

var _ Predictor = (*Stub)(nil)

// NewStub creates a stub predictor with a fixed seed.
func NewStub(seed int64) *Stub {
	return &Stub{seed: seed}
}

// Predict returns seeded pseudo-random probabilities for text.
func (s *Stub) Predict(ctx context.Context, text string) (Probabilities, error) {
	if err := ctx.Err(); err != nil {
		return Probabilities{}, err
	}

	rng := rand.New(rand.NewSource(s.sourceSeed(text)))
	realP := rng.Float64()
	return Probabilities{Real: realP, Fake: 1 - realP}, nil
}

// CacheKey identifies the stub and its seed, since different seeds give
// different answers for the same text.
func (s *Stub) CacheKey() string {
	return StubName + ":" + strconv.FormatInt(s.seed, 10)
}

// Ready always reports true: there is nothing to load.
func (s *Stub) Ready(ctx context.Context) (bool, error) {
	return true, nil
}

// Name returns StubName.
func (s *Stub) Name() string {
	return StubName
}

func (s *Stub) sourceSeed(text string) int64 {
	h := fnv.New64a()
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(s.seed))
	_, _ = h.Write(buf[:])
	_, _ = h.Write([]byte(text))
	return int64(h.Sum64())
}
