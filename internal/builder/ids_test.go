package builder

import (
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCounterIDs(t *testing.T) {
	ids := NewCounterIDs("n")
	assert.Equal(t, "n1", ids.NextID())
	assert.Equal(t, "n2", ids.NextID())
}

func TestCounterIDsConcurrentUse(t *testing.T) {
	ids := NewCounterIDs("")
	const workers, perWorker = 8, 100

	var mu sync.Mutex
	seen := make(map[string]bool)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				id := ids.NextID()
				mu.Lock()
				seen[id] = true
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	assert.Len(t, seen, workers*perWorker)
}

func TestUUIDs(t *testing.T) {
	var ids UUIDs
	a, b := ids.NextID(), ids.NextID()
	_, err := uuid.Parse(a)
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}
