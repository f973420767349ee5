package builder

import (
	"strconv"
	"sync/atomic"

	"github.com/google/uuid"
)

// IDSource hands out node ids. Ids only need to be unique within one editing session.
type IDSource interface {
	NextID() string
}

// CounterIDs is a monotonic per-session id source: "<prefix>1", "<prefix>2", ...
type CounterIDs struct {
	prefix string
	n      atomic.Uint64
}

// NewCounterIDs creates a counter starting at 1.
func NewCounterIDs(prefix string) *CounterIDs {
	return &CounterIDs{prefix: prefix}
}

func (c *CounterIDs) NextID() string {
	return c.prefix + strconv.FormatUint(c.n.Add(1), 10)
}

// UUIDs generates random v4 UUIDs.
type UUIDs struct{}

func (UUIDs) NextID() string {
	return uuid.NewString()
}
