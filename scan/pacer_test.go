package scan_test

import (
	"context"
	"testing"
	"time"

	"github.com/fwojciec/metacheck/scan"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDelayPacer_Wait(t *testing.T) {
	t.Parallel()

	t.Run("first wait is immediate", func(t *testing.T) {
		t.Parallel()

		p := scan.NewDelayPacer(time.Hour)

		start := time.Now()
		err := p.Wait(context.Background())

		require.NoError(t, err)
		assert.Less(t, time.Since(start), time.Second)
	})

	t.Run("second wait fails fast when the delay exceeds the deadline", func(t *testing.T) {
		t.Parallel()

		p := scan.NewDelayPacer(time.Hour)
		require.NoError(t, p.Wait(context.Background()))

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
		defer cancel()

		err := p.Wait(ctx)
		assert.Error(t, err)
	})

	t.Run("spaces requests by the delay", func(t *testing.T) {
		t.Parallel()

		delay := 20 * time.Millisecond
		p := scan.NewDelayPacer(delay)

		start := time.Now()
		require.NoError(t, p.Wait(context.Background()))
		require.NoError(t, p.Wait(context.Background()))

		assert.GreaterOrEqual(t, time.Since(start), delay)
	})

	t.Run("zero delay disables pacing", func(t *testing.T) {
		t.Parallel()

		p := scan.NewDelayPacer(0)

		start := time.Now()
		for i := 0; i < 10; i++ {
			require.NoError(t, p.Wait(context.Background()))
		}

		assert.Less(t, time.Since(start), time.Second)
	})

	t.Run("canceled context returns an error", func(t *testing.T) {
		t.Parallel()

		p := scan.NewDelayPacer(time.Minute)
		require.NoError(t, p.Wait(context.Background()))

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		assert.Error(t, p.Wait(ctx))
	})
}
