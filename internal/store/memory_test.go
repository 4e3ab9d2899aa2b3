package store

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time { return c.t }

func TestMemorySaveGetDelete(t *testing.T) {
	ctx := context.Background()
	m := NewMemory[string]()

	require.NoError(t, m.Save(ctx, "a", "alpha"))
	v, err := m.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "alpha", v)
	assert.Equal(t, 1, m.Len())

	require.NoError(t, m.Delete(ctx, "a"))
	_, err = m.Get(ctx, "a")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, m.Delete(ctx, "a"), ErrNotFound)
}

func TestMemorySweepEvictsIdle(t *testing.T) {
	ctx := context.Background()
	clock := &fakeClock{t: time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)}
	var evicted []string
	m := NewMemory(
		WithClock[int](clock.now),
		WithEvictHook(func(id string, v int) { evicted = append(evicted, id) }),
	)

	require.NoError(t, m.Save(ctx, "old", 1))
	require.NoError(t, m.Save(ctx, "used", 2))

	clock.t = clock.t.Add(20 * time.Minute)
	require.NoError(t, m.Save(ctx, "new", 3))
	_, err := m.Get(ctx, "used")
	require.NoError(t, err)

	clock.t = clock.t.Add(15 * time.Minute)
	ids := m.Sweep(30 * time.Minute)

	assert.Equal(t, []string{"old"}, ids)
	assert.Equal(t, []string{"old"}, evicted)
	assert.Equal(t, 2, m.Len())

	clock.t = clock.t.Add(time.Hour)
	ids = m.Sweep(30 * time.Minute)
	sort.Strings(ids)
	assert.Equal(t, []string{"new", "used"}, ids)
	assert.Equal(t, 0, m.Len())
}

func TestMemoryRunJanitorStops(t *testing.T) {
	m := NewMemory[int]()
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		m.RunJanitor(ctx, time.Millisecond, time.Hour)
		close(done)
	}()
	cancel()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("janitor did not stop")
	}
}
