package ctxutil

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCanceled(t *testing.T) {
	t.Run("active context returns nil", func(t *testing.T) {
		assert.NoError(t, Canceled(context.Background()))
	})

	t.Run("canceled context returns Canceled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		assert.ErrorIs(t, Canceled(ctx), context.Canceled)
	})

	t.Run("expired deadline returns DeadlineExceeded", func(t *testing.T) {
		ctx, cancel := context.WithDeadline(context.Background(), time.Now().Add(-time.Second))
		defer cancel()
		assert.ErrorIs(t, Canceled(ctx), context.DeadlineExceeded)
	})
}
