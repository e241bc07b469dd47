package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewShowtime(t *testing.T) {
	st := NewShowtime("showtime-1", "movie-1", "2025-04-15", "14:30", "Theater 1", 10)

	assert.Equal(t, "showtime-1", st.ID)
	assert.Equal(t, "movie-1", st.MovieID)
	assert.Equal(t, 10, st.TotalSeats)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, st.SeatsAvailable)
	assert.Empty(t, st.SeatsBooked)
	require.NoError(t, st.CheckPartition())
}

func TestNewShowtime_DefaultSeats(t *testing.T) {
	st := NewShowtime("showtime-1", "movie-1", "2025-04-15", "14:30", "Theater 1", 0)

	assert.Equal(t, DefaultTotalSeats, st.TotalSeats)
	assert.Len(t, st.SeatsAvailable, DefaultTotalSeats)
}

func TestShowtime_Reserve(t *testing.T) {
	t.Run("moves seats from available to booked", func(t *testing.T) {
		st := NewShowtime("showtime-1", "movie-1", "2025-04-15", "14:30", "Theater 1", 10)

		err := st.Reserve([]int{3, 4})

		require.NoError(t, err)
		assert.Equal(t, []int{1, 2, 5, 6, 7, 8, 9, 10}, st.SeatsAvailable)
		assert.Equal(t, []int{3, 4}, st.SeatsBooked)
		require.NoError(t, st.CheckPartition())
	})

	t.Run("rejects an overlapping request with the exact contested seats", func(t *testing.T) {
		st := NewShowtime("showtime-1", "movie-1", "2025-04-15", "14:30", "Theater 1", 10)
		require.NoError(t, st.Reserve([]int{3, 4}))

		err := st.Reserve([]int{4, 5})

		var conflict *SeatConflictError
		require.ErrorAs(t, err, &conflict)
		assert.Equal(t, []int{4}, conflict.Contested)
		assert.Equal(t, "showtime-1", conflict.ShowtimeID)

		// loser causes zero state change
		assert.Equal(t, []int{1, 2, 5, 6, 7, 8, 9, 10}, st.SeatsAvailable)
		assert.Equal(t, []int{3, 4}, st.SeatsBooked)
	})

	t.Run("reports every contested seat sorted", func(t *testing.T) {
		st := NewShowtime("showtime-1", "movie-1", "2025-04-15", "14:30", "Theater 1", 10)
		require.NoError(t, st.Reserve([]int{2, 5, 7}))

		err := st.Reserve([]int{7, 1, 2})

		var conflict *SeatConflictError
		require.ErrorAs(t, err, &conflict)
		assert.Equal(t, []int{2, 7}, conflict.Contested)
	})

	t.Run("invalid requests", func(t *testing.T) {
		tests := []struct {
			name  string
			seats []int
		}{
			{"empty request", nil},
			{"seat zero", []int{0, 1}},
			{"seat above range", []int{1, 11}},
			{"negative seat", []int{-3}},
			{"duplicate seats", []int{2, 2}},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				st := NewShowtime("showtime-1", "movie-1", "2025-04-15", "14:30", "Theater 1", 10)

				err := st.Reserve(tt.seats)

				require.Error(t, err)
				assert.ErrorIs(t, err, ErrValidation)
				assert.Len(t, st.SeatsAvailable, 10)
				assert.Empty(t, st.SeatsBooked)
			})
		}
	})
}

func TestShowtime_CheckPartition(t *testing.T) {
	t.Run("detects seat in both sets", func(t *testing.T) {
		st := NewShowtime("showtime-1", "movie-1", "2025-04-15", "14:30", "Theater 1", 5)
		st.SeatsBooked = []int{1}

		assert.Error(t, st.CheckPartition())
	})

	t.Run("detects missing seat", func(t *testing.T) {
		st := NewShowtime("showtime-1", "movie-1", "2025-04-15", "14:30", "Theater 1", 5)
		st.SeatsAvailable = []int{1, 2, 3, 4}

		assert.Error(t, st.CheckPartition())
	})
}

func TestShowtime_Clone(t *testing.T) {
	st := NewShowtime("showtime-1", "movie-1", "2025-04-15", "14:30", "Theater 1", 10)
	c := st.Clone()

	require.NoError(t, c.Reserve([]int{1}))

	assert.Len(t, st.SeatsAvailable, 10)
	assert.Empty(t, st.SeatsBooked)
}
