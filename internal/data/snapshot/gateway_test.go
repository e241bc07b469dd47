package snapshot

import (
	"context"
	"testing"
	"time"

	"cine-reserve/internal/data/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newFileGateway(t *testing.T) *Gateway {
	t.Helper()

	kv, err := NewFileKV(t.TempDir())
	require.NoError(t, err)
	return NewGateway(kv, zap.NewNop())
}

func TestGateway_Load_NoPriorSnapshot(t *testing.T) {
	g := newFileGateway(t)

	snap := g.Load(context.Background())

	assert.Len(t, snap.Movies, 3)
	assert.Len(t, snap.Showtimes, 4)
	assert.Empty(t, snap.Bookings)
	assert.Equal(t, "Inception", snap.Movies[0].Title)
	assert.Len(t, snap.Showtimes[0].SeatsAvailable, entity.DefaultTotalSeats)
}

func TestGateway_RoundTrip(t *testing.T) {
	g := newFileGateway(t)
	ctx := context.Background()

	showtime := entity.NewShowtime("st-1", "m-1", "2025-04-15", "14:30", "Theater 1", 10)
	require.NoError(t, showtime.Reserve([]int{3, 4}))

	saved := &Snapshot{
		Movies: []*entity.Movie{{
			ID:          "m-1",
			Title:       "Inception",
			Genres:      []string{"Sci-Fi"},
			Duration:    148,
			ReleaseDate: "2010-07-16",
			Rating:      8.8,
		}},
		Showtimes: []*entity.Showtime{showtime},
		Bookings: []*entity.Booking{{
			ID:          "b-1",
			UserID:      "user-1",
			MovieID:     "m-1",
			ShowtimeID:  "st-1",
			Seats:       []int{3, 4},
			TotalPrice:  25.98,
			BookingDate: time.Date(2025, 4, 1, 12, 0, 0, 0, time.UTC),
		}},
	}
	require.NoError(t, g.Save(ctx, saved))

	loaded := g.Load(ctx)

	require.Len(t, loaded.Movies, 1)
	assert.Equal(t, saved.Movies[0], loaded.Movies[0])
	require.Len(t, loaded.Showtimes, 1)
	assert.Equal(t, []int{1, 2, 5, 6, 7, 8, 9, 10}, loaded.Showtimes[0].SeatsAvailable)
	assert.Equal(t, []int{3, 4}, loaded.Showtimes[0].SeatsBooked)
	require.Len(t, loaded.Bookings, 1)
	assert.Equal(t, saved.Bookings[0], loaded.Bookings[0])
}

func TestGateway_Load_CorruptCollectionFallsBackAlone(t *testing.T) {
	kv, err := NewFileKV(t.TempDir())
	require.NoError(t, err)
	g := NewGateway(kv, zap.NewNop())
	ctx := context.Background()

	require.NoError(t, g.Save(ctx, &Snapshot{
		Movies:    []*entity.Movie{{ID: "m-1", Title: "Tenet"}},
		Showtimes: []*entity.Showtime{},
		Bookings:  []*entity.Booking{},
	}))

	// corrupt only the showtimes key
	require.NoError(t, kv.Put(ctx, KeyShowtimes, []byte("{not json")))

	snap := g.Load(ctx)

	// the intact collections survive, the corrupt one falls back to seed
	require.Len(t, snap.Movies, 1)
	assert.Equal(t, "Tenet", snap.Movies[0].Title)
	assert.Len(t, snap.Showtimes, 4)
	assert.Empty(t, snap.Bookings)
}

func TestGateway_Save_EmptyCollectionsStayEmpty(t *testing.T) {
	g := newFileGateway(t)
	ctx := context.Background()

	require.NoError(t, g.Save(ctx, &Snapshot{
		Movies:    []*entity.Movie{},
		Showtimes: []*entity.Showtime{},
		Bookings:  []*entity.Booking{},
	}))

	snap := g.Load(ctx)

	// an explicitly saved empty catalog must not be mistaken for seed state
	assert.Empty(t, snap.Movies)
	assert.Empty(t, snap.Showtimes)
	assert.Empty(t, snap.Bookings)
}

func TestFileKV_GetMissingKey(t *testing.T) {
	kv, err := NewFileKV(t.TempDir())
	require.NoError(t, err)

	_, err = kv.Get(context.Background(), "movies")

	assert.ErrorIs(t, err, ErrKeyNotFound)
}
