package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookSeatWithinCapacity(t *testing.T) {
	s := Show{ShowTime: "2025-11-03 18:30", TotalSeats: 10}

	require.NoError(t, s.BookSeat(3))
	assert.Equal(t, 3, s.BookedSeats)
	assert.Equal(t, 7, s.AvailableSeats())

	require.NoError(t, s.BookSeat(7))
	assert.Equal(t, 10, s.BookedSeats)
	assert.Equal(t, 0, s.AvailableSeats())
}

func TestBookSeatOverCapacityLeavesShowUnchanged(t *testing.T) {
	s := Show{TotalSeats: 10}
	require.NoError(t, s.BookSeat(3))

	err := s.BookSeat(8)
	assert.ErrorIs(t, err, ErrNotEnoughSeats)
	assert.Equal(t, 3, s.BookedSeats, "failed booking must not change state")

	// The failed attempt must not have eaten into capacity either.
	require.NoError(t, s.BookSeat(7))
	assert.Equal(t, 10, s.BookedSeats)
}

func TestBookSeatNeverExceedsTotal(t *testing.T) {
	s := Show{TotalSeats: 5}
	for i := 0; i < 20; i++ {
		_ = s.BookSeat(1)
		assert.LessOrEqual(t, s.BookedSeats, s.TotalSeats)
	}
	assert.Equal(t, 5, s.BookedSeats)
}

func TestBookSeatOnZeroCapacityShow(t *testing.T) {
	s := Show{TotalSeats: 0}
	assert.ErrorIs(t, s.BookSeat(1), ErrNotEnoughSeats)
	assert.Equal(t, 0, s.BookedSeats)
}
