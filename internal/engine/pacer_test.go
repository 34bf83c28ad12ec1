package engine

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPacer_NonPositiveDelayIsNop(t *testing.T) {
	t.Parallel()

	for _, d := range []time.Duration{0, -time.Second} {
		p := NewPacer(d)
		start := time.Now()
		for i := 0; i < 100; i++ {
			require.NoError(t, p.Wait(context.Background()))
		}
		assert.Less(t, time.Since(start), 50*time.Millisecond)
	}
}

func TestNewPacer_SpacesCalls(t *testing.T) {
	t.Parallel()

	p := NewPacer(30 * time.Millisecond)

	start := time.Now()
	for i := 0; i < 3; i++ {
		require.NoError(t, p.Wait(context.Background()))
	}
	assert.GreaterOrEqual(t, time.Since(start), 90*time.Millisecond)
}

func TestNewPacer_FirstWaitIsPaced(t *testing.T) {
	t.Parallel()

	// No free initial token: even the first wait spaces by the full delay.
	p := NewPacer(30 * time.Millisecond)

	start := time.Now()
	require.NoError(t, p.Wait(context.Background()))
	assert.GreaterOrEqual(t, time.Since(start), 30*time.Millisecond)
}

func TestPacer_CanceledContext(t *testing.T) {
	t.Parallel()

	p := NewPacer(time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.Error(t, p.Wait(ctx))
}
