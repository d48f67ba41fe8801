package universe

import (
	"fmt"

	"github.com/google/uuid"
)

// IDGenerator produces identifiers for new records. The source application
// mixed counter-based and random-suffix ids per collection; the store unifies
// them behind this interface so tests can pin deterministic ids.
type IDGenerator interface {
	NewID() string
}

type uuidGenerator struct{}

func (uuidGenerator) NewID() string {
	return uuid.NewString()
}

// NewUUIDGenerator returns the default generator backed by random UUIDs.
func NewUUIDGenerator() IDGenerator {
	return uuidGenerator{}
}

// Sequence hands out prefix1, prefix2, ... in call order. Not safe for
// concurrent use on its own; the store serializes calls to it.
type Sequence struct {
	prefix string
	next   int
}

func NewSequence(prefix string) *Sequence {
	return &Sequence{prefix: prefix, next: 1}
}

func (s *Sequence) NewID() string {
	id := fmt.Sprintf("%s%d", s.prefix, s.next)
	s.next++
	return id
}
