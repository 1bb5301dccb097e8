package tablemodel

import (
	"fmt"

	"github.com/google/uuid"
)

// IDGenerator hands out column ids. Implementations must never return the same id
// twice for the lifetime of the generator.
type IDGenerator interface {
	NextID() ColumnID
}

// UUIDGenerator produces random v4 UUIDs, independent of column content.
type UUIDGenerator struct{}

func (UUIDGenerator) NextID() ColumnID {
	return ColumnID(uuid.NewString())
}

// CounterGenerator produces "col-1", "col-2", ... from a counter owned by the
// generator itself. Not safe for concurrent use.
type CounterGenerator struct {
	next uint64
}

// NewCounterGenerator returns a generator whose first id is "col-<start+1>".
// Seeding it with the highest counter already in use keeps ids unique across
// reloads.
func NewCounterGenerator(start uint64) *CounterGenerator {
	return &CounterGenerator{next: start}
}

func (g *CounterGenerator) NextID() ColumnID {
	g.next++
	return ColumnID(fmt.Sprintf("col-%d", g.next))
}
