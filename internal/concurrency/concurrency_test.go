package concurrency

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestNewPool(t *testing.T) {
	t.Run("runs_every_task", func(t *testing.T) {
		var count atomic.Int32
		p := NewPool(context.Background(), 2)
		for range 10 {
			p.Go(func(ctx context.Context) error {
				count.Add(1)
				return nil
			})
		}
		require.NoError(t, p.Wait())
		require.Equal(t, int32(10), count.Load())
	})

	t.Run("first_error_cancels_the_rest", func(t *testing.T) {
		boom := errors.New("boom")
		p := NewPool(context.Background(), 1)
		p.Go(func(ctx context.Context) error {
			return boom
		})
		p.Go(func(ctx context.Context) error {
			<-ctx.Done()
			return ctx.Err()
		})
		require.ErrorIs(t, p.Wait(), boom)
	})
}
