//go:build unit

package event_test

import (
	"testing"

	"event-booking/internal/domain/event"
	"event-booking/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuantityPolicy(t *testing.T) {
	policy := event.DefaultQuantityPolicy()

	limited := mustSchedule(t, builder.ScheduleSpec{
		StartDate: builder.Date(2026, 7, 10), EndDate: builder.Date(2026, 7, 12),
		TotalSeats: 100, AvailableSeats: 3, ReservedSeats: 47, SoldSeats: 50,
	})
	unlimited := mustSchedule(t, builder.ScheduleSpec{
		StartDate: builder.Date(2026, 7, 10), EndDate: builder.Date(2026, 7, 12),
		UnlimitedSeats: true,
	})

	t.Run("max selectable follows remaining seats", func(t *testing.T) {
		assert.Equal(t, 3, policy.MaxSelectable(limited))
	})

	t.Run("max selectable for unlimited seats is the stepper cap", func(t *testing.T) {
		assert.Equal(t, 100, policy.MaxSelectable(unlimited))
	})

	t.Run("quantity within remaining seats is valid", func(t *testing.T) {
		require.NoError(t, policy.ValidateQuantity(limited, 3))
		assert.True(t, policy.IsQuantityValid(limited, 1))
	})

	t.Run("quantity below one is rejected", func(t *testing.T) {
		assert.ErrorIs(t, policy.ValidateQuantity(limited, 0), event.ErrQuantityNotPositive)
		assert.ErrorIs(t, policy.ValidateQuantity(limited, -2), event.ErrQuantityNotPositive)
	})

	t.Run("exceeding remaining seats reports the exact count", func(t *testing.T) {
		err := policy.ValidateQuantity(limited, 4)

		var seats *event.SeatsExceededError
		require.ErrorAs(t, err, &seats)
		assert.Equal(t, 3, seats.Remaining)
		assert.Equal(t, "only 3 seats remaining for this date", err.Error())
	})

	t.Run("per-booking cap applies before seat availability", func(t *testing.T) {
		// 11 exceeds both ceilings; the fixed-limit message must win.
		err := policy.ValidateQuantity(limited, 11)

		var limit *event.PerBookingLimitError
		require.ErrorAs(t, err, &limit)
		assert.Equal(t, 10, limit.Limit)
		assert.Equal(t, "maximum of 10 tickets per booking", err.Error())
	})

	t.Run("per-booking cap applies to unlimited schedules too", func(t *testing.T) {
		require.NoError(t, policy.ValidateQuantity(unlimited, 10))

		var limit *event.PerBookingLimitError
		require.ErrorAs(t, policy.ValidateQuantity(unlimited, 11), &limit)
	})

	t.Run("sold out schedule accepts nothing", func(t *testing.T) {
		soldOut := mustSchedule(t, builder.ScheduleSpec{
			StartDate: builder.Date(2026, 7, 10), EndDate: builder.Date(2026, 7, 12),
			TotalSeats: 50, SoldSeats: 50,
		})

		var seats *event.SeatsExceededError
		require.ErrorAs(t, policy.ValidateQuantity(soldOut, 1), &seats)
		assert.Equal(t, 0, seats.Remaining)
	})
}

func TestScheduleSeatCounts(t *testing.T) {
	t.Run("display total is the sum of all buckets", func(t *testing.T) {
		sched := mustSchedule(t, builder.ScheduleSpec{
			StartDate: builder.Date(2026, 7, 10), EndDate: builder.Date(2026, 7, 12),
			TotalSeats: 90, AvailableSeats: 40, ReservedSeats: 30, SoldSeats: 20,
		})

		assert.Equal(t, 90, sched.DisplayTotalSeats())
	})

	t.Run("unit price prefers the schedule override", func(t *testing.T) {
		base := mustSchedule(t, builder.ScheduleSpec{
			StartDate: builder.Date(2026, 7, 10), EndDate: builder.Date(2026, 7, 12),
			AvailableSeats: 10,
		})
		override := mustSchedule(t, builder.ScheduleSpec{
			StartDate: builder.Date(2026, 7, 10), EndDate: builder.Date(2026, 7, 12),
			AvailableSeats: 10, IsOverride: true, PriceCents: builder.Cents(8000),
		})

		assert.Equal(t, int64(5000), base.UnitPriceCents(5000))
		assert.Equal(t, int64(8000), override.UnitPriceCents(5000))
	})
}
