package idgen_test

import (
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/ducttape-items/internal/pkg/idgen"
)

func TestSequentialUUIDs(t *testing.T) {
	g := &idgen.SequentialUUIDs{}
	assert.Equal(t, uuid.MustParse("00000000-0000-0000-0000-000000000001"), g.NewUUID())
	assert.Equal(t, uuid.MustParse("00000000-0000-0000-0000-000000000002"), g.NewUUID())
}

func TestSequentialUUIDsConcurrent(t *testing.T) {
	g := &idgen.SequentialUUIDs{}
	seen := make(chan uuid.UUID, 64)

	var wg sync.WaitGroup
	for range 64 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			seen <- g.NewUUID()
		}()
	}
	wg.Wait()
	close(seen)

	unique := make(map[uuid.UUID]struct{})
	for id := range seen {
		unique[id] = struct{}{}
	}
	assert.Len(t, unique, 64)
}

func TestRandomUUIDs(t *testing.T) {
	g := idgen.RandomUUIDs{}
	assert.NotEqual(t, g.NewUUID(), g.NewUUID())
}
