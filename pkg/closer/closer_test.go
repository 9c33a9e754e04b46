package closer

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCloseRunsInReverseOrder(t *testing.T) {
	c := New(time.Second)

	var order []string
	c.AddFunc("db", func() { order = append(order, "db") })
	c.AddFunc("redis", func() { order = append(order, "redis") })
	c.AddFunc("http", func() { order = append(order, "http") })

	require.NoError(t, c.Close(context.Background()))
	assert.Equal(t, []string{"http", "redis", "db"}, order)
}

func TestCloseCollectsErrors(t *testing.T) {
	c := New(time.Second)
	c.AddErrFunc("kafka", func() error { return errors.New("writer closed") })
	c.AddFunc("db", func() {})

	err := c.Close(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "kafka: writer closed")
}

func TestCloseOnlyOnce(t *testing.T) {
	c := New(time.Second)

	calls := 0
	c.AddFunc("db", func() { calls++ })

	require.NoError(t, c.Close(context.Background()))
	require.NoError(t, c.Close(context.Background()))
	assert.Equal(t, 1, calls)
}

func TestCloseForcesRemainingOnTimeout(t *testing.T) {
	c := New(200 * time.Millisecond)

	var (
		mu     sync.Mutex
		forced bool
	)
	c.AddFunc("first", func() {
		mu.Lock()
		forced = true
		mu.Unlock()
	})
	c.Add("slow", func(ctx context.Context) error {
		<-ctx.Done()
		return ctx.Err()
	})

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := c.Close(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "shutdown interrupted")

	mu.Lock()
	defer mu.Unlock()
	assert.True(t, forced)
}
