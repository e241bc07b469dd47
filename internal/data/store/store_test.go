package store

import (
	"context"
	"errors"
	"sync"
	"testing"

	"cine-reserve/internal/data/entity"
	"cine-reserve/internal/data/snapshot"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestStore(t *testing.T, opts Options) *Store {
	t.Helper()

	kv, err := snapshot.NewFileKV(t.TempDir())
	require.NoError(t, err)

	gateway := snapshot.NewGateway(kv, zap.NewNop())
	return New(context.Background(), gateway, opts, zap.NewNop())
}

// addMovieAndShowtime creates one movie with one showtime and returns both.
func addMovieAndShowtime(t *testing.T, s *Store) (*entity.Movie, *entity.Showtime) {
	t.Helper()
	ctx := context.Background()

	movie, err := s.AddMovie(ctx, &entity.Movie{
		Title:       "Inception",
		Genres:      []string{"Sci-Fi"},
		Duration:    148,
		ReleaseDate: "2010-07-16",
		Rating:      8.8,
	})
	require.NoError(t, err)

	showtime, err := s.AddShowtime(ctx, movie.ID, "2025-04-15", "14:30", "Theater 1")
	require.NoError(t, err)

	return movie, showtime
}

func TestStore_LoadsSeedData(t *testing.T) {
	s := newTestStore(t, Options{})

	assert.Len(t, s.Movies(), 3)
	assert.Len(t, s.Showtimes(), 4)
	assert.Empty(t, s.Bookings())
	require.NoError(t, s.CheckInvariants())

	// seed showtimes are indexed under their movies
	assert.Len(t, s.ShowtimesForMovie("movie-1"), 2)
	assert.Len(t, s.ShowtimesForMovie("movie-2"), 1)
	assert.Len(t, s.ShowtimesForMovie("movie-3"), 1)
}

func TestStore_ScenarioBooking(t *testing.T) {
	s := newTestStore(t, Options{SeatsPerShowtime: 10})
	ctx := context.Background()
	_, showtime := addMovieAndShowtime(t, s)

	// Scenario A: first booking succeeds at the flat rate
	booking, err := s.AddBooking(ctx, "user-1", showtime.ID, []int{3, 4})
	require.NoError(t, err)
	assert.InDelta(t, 25.98, booking.TotalPrice, 1e-9)
	assert.Equal(t, []int{3, 4}, booking.Seats)
	assert.Equal(t, showtime.MovieID, booking.MovieID)
	assert.False(t, booking.BookingDate.IsZero())

	after, err := s.ShowtimeByID(showtime.ID)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 5, 6, 7, 8, 9, 10}, after.SeatsAvailable)
	assert.Equal(t, []int{3, 4}, after.SeatsBooked)

	// Scenario B: overlapping booking fails with the exact contested seat
	_, err = s.AddBooking(ctx, "user-2", showtime.ID, []int{4, 5})
	var conflict *entity.SeatConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, []int{4}, conflict.Contested)

	// and state is identical to the post-A state
	unchanged, err := s.ShowtimeByID(showtime.ID)
	require.NoError(t, err)
	assert.Equal(t, after.SeatsAvailable, unchanged.SeatsAvailable)
	assert.Equal(t, after.SeatsBooked, unchanged.SeatsBooked)
	assert.Len(t, s.Bookings(), 1)
	require.NoError(t, s.CheckInvariants())
}

func TestStore_AddBooking_UnknownShowtime(t *testing.T) {
	s := newTestStore(t, Options{})

	_, err := s.AddBooking(context.Background(), "user-1", "no-such-showtime", []int{1})

	assert.ErrorIs(t, err, entity.ErrNotFound)
}

func TestStore_ConcurrentOverlappingBookings(t *testing.T) {
	s := newTestStore(t, Options{SeatsPerShowtime: 10})
	ctx := context.Background()
	_, showtime := addMovieAndShowtime(t, s)

	requests := [][]int{{3, 4}, {4, 5}}
	results := make([]error, len(requests))

	var wg sync.WaitGroup
	for i, seats := range requests {
		wg.Add(1)
		go func(i int, seats []int) {
			defer wg.Done()
			_, results[i] = s.AddBooking(ctx, "user", showtime.ID, seats)
		}(i, seats)
	}
	wg.Wait()

	// exactly one winner, the loser names the overlap
	var failures int
	for _, err := range results {
		if err == nil {
			continue
		}
		failures++
		var conflict *entity.SeatConflictError
		require.ErrorAs(t, err, &conflict)
		assert.Equal(t, []int{4}, conflict.Contested)
	}
	assert.Equal(t, 1, failures)
	assert.Len(t, s.Bookings(), 1)
	require.NoError(t, s.CheckInvariants())
}

func TestStore_DeleteMovie_Cascades(t *testing.T) {
	s := newTestStore(t, Options{})
	ctx := context.Background()

	movie, err := s.AddMovie(ctx, &entity.Movie{Title: "Tenet", Duration: 150, ReleaseDate: "2020-08-26"})
	require.NoError(t, err)
	st1, err := s.AddShowtime(ctx, movie.ID, "2025-05-01", "18:00", "Theater 1")
	require.NoError(t, err)
	st2, err := s.AddShowtime(ctx, movie.ID, "2025-05-01", "21:00", "Theater 2")
	require.NoError(t, err)

	// Scenario C: a booking made before the cascade survives it
	booking, err := s.AddBooking(ctx, "user-1", st1.ID, []int{1, 2})
	require.NoError(t, err)

	require.NoError(t, s.DeleteMovie(ctx, movie.ID))

	_, err = s.MovieByID(movie.ID)
	assert.ErrorIs(t, err, entity.ErrNotFound)
	_, err = s.ShowtimeByID(st1.ID)
	assert.ErrorIs(t, err, entity.ErrNotFound)
	_, err = s.ShowtimeByID(st2.ID)
	assert.ErrorIs(t, err, entity.ErrNotFound)
	assert.Empty(t, s.ShowtimesForMovie(movie.ID))

	// seed showtimes are untouched by the cascade
	assert.Len(t, s.Showtimes(), 4)

	got := s.BookingsForUser("user-1")
	require.Len(t, got, 1)
	assert.Equal(t, booking.ID, got[0].ID)
	require.NoError(t, s.CheckInvariants())
}

func TestStore_DeleteShowtime_UpdatesIndex(t *testing.T) {
	s := newTestStore(t, Options{})
	ctx := context.Background()
	movie, showtime := addMovieAndShowtime(t, s)

	require.NoError(t, s.DeleteShowtime(ctx, showtime.ID))

	assert.Empty(t, s.ShowtimesForMovie(movie.ID))
	_, err := s.ShowtimeByID(showtime.ID)
	assert.ErrorIs(t, err, entity.ErrNotFound)
	require.NoError(t, s.CheckInvariants())
}

func TestStore_UpdateShowtime_MovesBetweenMovies(t *testing.T) {
	s := newTestStore(t, Options{})
	ctx := context.Background()
	first, showtime := addMovieAndShowtime(t, s)

	second, err := s.AddMovie(ctx, &entity.Movie{Title: "Dunkirk", Duration: 106, ReleaseDate: "2017-07-21"})
	require.NoError(t, err)

	updated, err := s.UpdateShowtime(ctx, showtime.ID, ShowtimeUpdate{MovieID: &second.ID})
	require.NoError(t, err)
	assert.Equal(t, second.ID, updated.MovieID)

	assert.Empty(t, s.ShowtimesForMovie(first.ID))
	require.Len(t, s.ShowtimesForMovie(second.ID), 1)
	require.NoError(t, s.CheckInvariants())
}

func TestStore_UpdateShowtime_UnknownTargetMovie(t *testing.T) {
	s := newTestStore(t, Options{})
	_, showtime := addMovieAndShowtime(t, s)

	missing := "no-such-movie"
	_, err := s.UpdateShowtime(context.Background(), showtime.ID, ShowtimeUpdate{MovieID: &missing})

	assert.ErrorIs(t, err, entity.ErrNotFound)
	require.NoError(t, s.CheckInvariants())
}

func TestStore_UpdateMovie(t *testing.T) {
	s := newTestStore(t, Options{})
	ctx := context.Background()
	movie, _ := addMovieAndShowtime(t, s)

	title := "Inception (Remastered)"
	rating := 9.1
	updated, err := s.UpdateMovie(ctx, movie.ID, MovieUpdate{Title: &title, Rating: &rating})

	require.NoError(t, err)
	assert.Equal(t, title, updated.Title)
	assert.Equal(t, rating, updated.Rating)
	assert.Equal(t, movie.Duration, updated.Duration)
}

func TestStore_AddShowtime_UnknownMovie(t *testing.T) {
	s := newTestStore(t, Options{})

	_, err := s.AddShowtime(context.Background(), "no-such-movie", "2025-05-01", "18:00", "Theater 1")

	assert.ErrorIs(t, err, entity.ErrNotFound)
}

func TestStore_BookingsForUser_InsertionOrder(t *testing.T) {
	s := newTestStore(t, Options{})
	ctx := context.Background()
	_, showtime := addMovieAndShowtime(t, s)

	first, err := s.AddBooking(ctx, "user-1", showtime.ID, []int{1})
	require.NoError(t, err)
	_, err = s.AddBooking(ctx, "user-2", showtime.ID, []int{2})
	require.NoError(t, err)
	second, err := s.AddBooking(ctx, "user-1", showtime.ID, []int{3})
	require.NoError(t, err)

	got := s.BookingsForUser("user-1")
	require.Len(t, got, 2)
	assert.Equal(t, first.ID, got[0].ID)
	assert.Equal(t, second.ID, got[1].ID)
}

// failKV accepts reads but refuses writes, standing in for a dead storage
// medium.
type failKV struct{}

func (failKV) Get(context.Context, string) ([]byte, error) {
	return nil, snapshot.ErrKeyNotFound
}

func (failKV) Put(context.Context, string, []byte) error {
	return errors.New("storage medium unavailable")
}

func TestStore_PersistenceFailureRollsBack(t *testing.T) {
	s := newTestStore(t, Options{})
	ctx := context.Background()
	_, showtime := addMovieAndShowtime(t, s)

	moviesBefore := len(s.Movies())
	s.gateway = snapshot.NewGateway(failKV{}, zap.NewNop())

	_, err := s.AddMovie(ctx, &entity.Movie{Title: "Memento", Duration: 113, ReleaseDate: "2000-10-11"})
	require.Error(t, err)
	assert.Len(t, s.Movies(), moviesBefore)

	_, err = s.AddBooking(ctx, "user-1", showtime.ID, []int{1})
	require.Error(t, err)
	assert.Empty(t, s.Bookings())

	unchanged, lookupErr := s.ShowtimeByID(showtime.ID)
	require.NoError(t, lookupErr)
	assert.Empty(t, unchanged.SeatsBooked)
	require.NoError(t, s.CheckInvariants())
}

func TestStore_Subscribe(t *testing.T) {
	s := newTestStore(t, Options{})
	ctx := context.Background()

	events, cancel := s.Subscribe()
	defer cancel()

	movie, err := s.AddMovie(ctx, &entity.Movie{Title: "Oppenheimer", Duration: 180, ReleaseDate: "2023-07-21"})
	require.NoError(t, err)

	ev := <-events
	assert.Equal(t, ActionCreated, ev.Action)
	assert.Equal(t, CollectionMovies, ev.Collection)
	assert.Equal(t, movie.ID, ev.ID)

	require.NoError(t, s.DeleteMovie(ctx, movie.ID))
	ev = <-events
	assert.Equal(t, ActionDeleted, ev.Action)
	assert.Equal(t, movie.ID, ev.ID)
}

func TestStore_ReadsDoNotAliasState(t *testing.T) {
	s := newTestStore(t, Options{})
	_, showtime := addMovieAndShowtime(t, s)

	read, err := s.ShowtimeByID(showtime.ID)
	require.NoError(t, err)
	read.SeatsAvailable[0] = 999

	again, err := s.ShowtimeByID(showtime.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, again.SeatsAvailable[0])
}
