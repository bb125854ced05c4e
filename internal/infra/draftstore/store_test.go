//go:build unit

package draftstore_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"event-booking/internal/domain/booking"
	"event-booking/internal/infra"
	"event-booking/internal/infra/draftstore"
	"event-booking/internal/pkg/clock"
	"event-booking/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreInsertAndWith(t *testing.T) {
	ctx := context.Background()
	store := draftstore.New(time.Hour, clock.NewRealClock())
	d := builder.NewDraftBuilder().BuildDomain()

	require.NoError(t, store.Insert(ctx, d))

	t.Run("duplicate insert is rejected", func(t *testing.T) {
		err := store.Insert(ctx, d)
		assert.True(t, infra.IsKind(err, infra.KindDuplicateKey))
	})

	t.Run("with runs against the stored draft", func(t *testing.T) {
		err := store.With(ctx, d.ID(), func(got *booking.Draft) error {
			assert.Same(t, d, got)
			return got.SetQuantity(2, time.Now())
		})
		require.NoError(t, err)
		assert.Equal(t, 2, d.Quantity())
	})

	t.Run("unknown id is not found", func(t *testing.T) {
		err := store.With(ctx, uuid.New(), func(*booking.Draft) error { return nil })
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}

func TestStoreDelete(t *testing.T) {
	ctx := context.Background()
	store := draftstore.New(time.Hour, clock.NewRealClock())
	d := builder.NewDraftBuilder().BuildDomain()
	require.NoError(t, store.Insert(ctx, d))

	require.NoError(t, store.Delete(ctx, d.ID()))

	err := store.With(ctx, d.ID(), func(*booking.Draft) error { return nil })
	assert.True(t, infra.IsKind(err, infra.KindNotFound))

	assert.True(t, infra.IsKind(store.Delete(ctx, d.ID()), infra.KindNotFound))
}

func TestStoreSweepsExpiredDrafts(t *testing.T) {
	ctx := context.Background()
	start := builder.Date(2026, 7, 1)
	clk := clock.NewMockClock(start)
	store := draftstore.New(2*time.Hour, clk)

	stale := builder.NewDraftBuilder().With(func(b *builder.DraftBuilder) { b.Now = start }).BuildDomain()
	require.NoError(t, store.Insert(ctx, stale))

	// Insert after the TTL has elapsed; the sweep runs on insert.
	clk.Add(3 * time.Hour)
	fresh := builder.NewDraftBuilder().With(func(b *builder.DraftBuilder) { b.Now = clk.Now() }).BuildDomain()
	require.NoError(t, store.Insert(ctx, fresh))

	err := store.With(ctx, stale.ID(), func(*booking.Draft) error { return nil })
	assert.True(t, infra.IsKind(err, infra.KindNotFound))

	require.NoError(t, store.With(ctx, fresh.ID(), func(*booking.Draft) error { return nil }))
}

func TestStoreSerializesAccessPerDraft(t *testing.T) {
	ctx := context.Background()
	store := draftstore.New(time.Hour, clock.NewRealClock())
	d := builder.NewDraftBuilder().BuildDomain()
	require.NoError(t, store.Insert(ctx, d))

	const writers = 20
	var wg sync.WaitGroup
	wg.Add(writers)
	for i := 1; i <= writers; i++ {
		go func(n int) {
			defer wg.Done()
			_ = store.With(ctx, d.ID(), func(got *booking.Draft) error {
				return got.SetQuantity(1+n%5, time.Now())
			})
		}(i)
	}
	wg.Wait()

	// No torn state: quantity and participant list always match.
	require.NoError(t, store.With(ctx, d.ID(), func(got *booking.Draft) error {
		assert.Len(t, got.Participants(), got.Quantity())
		return nil
	}))
}
