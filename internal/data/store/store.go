package store

import (
	"context"
	"fmt"
	"sync"
	"time"

	"cine-reserve/internal/data/entity"
	"cine-reserve/internal/data/snapshot"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Options tune the booking engine. Zero values fall back to the defaults the
// catalog ships with.
type Options struct {
	TicketPrice      float64 // flat per-seat rate
	SeatsPerShowtime int     // N for newly created showtimes
}

const DefaultTicketPrice = 12.99

// state holds the three canonical collections in insertion order plus the
// movieID -> showtime IDs index that serves derived showtime reads. The index
// replaces the denormalized per-movie showtime copy; keeping it in the same
// struct means it is updated in the same transaction as every mutation.
type state struct {
	movies         []*entity.Movie
	showtimes      []*entity.Showtime
	bookings       []*entity.Booking
	movieShowtimes map[string][]string
}

func (st *state) clone() *state {
	c := &state{
		movies:         make([]*entity.Movie, len(st.movies)),
		showtimes:      make([]*entity.Showtime, len(st.showtimes)),
		bookings:       make([]*entity.Booking, len(st.bookings)),
		movieShowtimes: make(map[string][]string, len(st.movieShowtimes)),
	}
	for i, m := range st.movies {
		c.movies[i] = m.Clone()
	}
	for i, s := range st.showtimes {
		c.showtimes[i] = s.Clone()
	}
	for i, b := range st.bookings {
		c.bookings[i] = b.Clone()
	}
	for id, ids := range st.movieShowtimes {
		c.movieShowtimes[id] = append([]string(nil), ids...)
	}
	return c
}

func (st *state) movie(id string) *entity.Movie {
	for _, m := range st.movies {
		if m.ID == id {
			return m
		}
	}
	return nil
}

func (st *state) showtime(id string) *entity.Showtime {
	for _, s := range st.showtimes {
		if s.ID == id {
			return s
		}
	}
	return nil
}

// Store is the single serialization point of the engine: at most one mutation
// runs at a time, and each one persists its snapshot before it is committed.
// Reads run concurrently under the read lock and only ever observe fully
// committed state.
type Store struct {
	mu      sync.RWMutex
	st      *state
	gateway *snapshot.Gateway
	log     *zap.Logger

	ticketPrice      float64
	seatsPerShowtime int

	subMu       sync.Mutex
	subscribers map[chan ChangeEvent]struct{}
}

// New loads the prior snapshot (or seed data) through the gateway and builds
// the derived index.
func New(ctx context.Context, gateway *snapshot.Gateway, opts Options, log *zap.Logger) *Store {
	if opts.TicketPrice <= 0 {
		opts.TicketPrice = DefaultTicketPrice
	}
	if opts.SeatsPerShowtime <= 0 {
		opts.SeatsPerShowtime = entity.DefaultTotalSeats
	}

	snap := gateway.Load(ctx)
	st := &state{
		movies:         snap.Movies,
		showtimes:      snap.Showtimes,
		bookings:       snap.Bookings,
		movieShowtimes: make(map[string][]string, len(snap.Movies)),
	}
	for _, m := range st.movies {
		st.movieShowtimes[m.ID] = []string{}
	}
	for _, s := range st.showtimes {
		st.movieShowtimes[s.MovieID] = append(st.movieShowtimes[s.MovieID], s.ID)
	}

	log = log.With(zap.String("component", "store"))
	log.Info("Store loaded",
		zap.Int("movies", len(st.movies)),
		zap.Int("showtimes", len(st.showtimes)),
		zap.Int("bookings", len(st.bookings)),
	)

	return &Store{
		st:               st,
		gateway:          gateway,
		log:              log,
		ticketPrice:      opts.TicketPrice,
		seatsPerShowtime: opts.SeatsPerShowtime,
		subscribers:      make(map[chan ChangeEvent]struct{}),
	}
}

// TicketPrice is the flat per-seat rate used for every booking.
func (s *Store) TicketPrice() float64 {
	return s.ticketPrice
}

// commit persists next and swaps it in. On a persistence failure nothing is
// swapped, so memory and disk stay on the previous committed state together.
func (s *Store) commit(ctx context.Context, next *state, events ...ChangeEvent) error {
	snap := &snapshot.Snapshot{
		Movies:    next.movies,
		Showtimes: next.showtimes,
		Bookings:  next.bookings,
	}
	if err := s.gateway.Save(ctx, snap); err != nil {
		s.log.Error("Snapshot save failed, mutation rolled back", zap.Error(err))
		return err
	}
	s.st = next
	s.publish(events...)
	return nil
}

// ==================== MOVIES ====================

// MovieUpdate carries partial movie edits; nil fields are left unchanged.
type MovieUpdate struct {
	Title       *string
	Poster      *string
	Description *string
	Genres      *[]string
	Duration    *int
	ReleaseDate *string
	Rating      *float64
}

func (s *Store) AddMovie(ctx context.Context, movie *entity.Movie) (*entity.Movie, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.st.clone()
	created := movie.Clone()
	created.ID = uuid.New().String()
	if created.Genres == nil {
		created.Genres = []string{}
	}
	next.movies = append(next.movies, created)
	next.movieShowtimes[created.ID] = []string{}

	if err := s.commit(ctx, next, ChangeEvent{ActionCreated, CollectionMovies, created.ID}); err != nil {
		return nil, err
	}
	return created.Clone(), nil
}

func (s *Store) UpdateMovie(ctx context.Context, id string, upd MovieUpdate) (*entity.Movie, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.st.clone()
	movie := next.movie(id)
	if movie == nil {
		return nil, fmt.Errorf("movie %s: %w", id, entity.ErrNotFound)
	}

	if upd.Title != nil {
		movie.Title = *upd.Title
	}
	if upd.Poster != nil {
		movie.Poster = *upd.Poster
	}
	if upd.Description != nil {
		movie.Description = *upd.Description
	}
	if upd.Genres != nil {
		movie.Genres = append([]string(nil), *upd.Genres...)
	}
	if upd.Duration != nil {
		movie.Duration = *upd.Duration
	}
	if upd.ReleaseDate != nil {
		movie.ReleaseDate = *upd.ReleaseDate
	}
	if upd.Rating != nil {
		movie.Rating = *upd.Rating
	}

	if err := s.commit(ctx, next, ChangeEvent{ActionUpdated, CollectionMovies, id}); err != nil {
		return nil, err
	}
	return movie.Clone(), nil
}

// DeleteMovie removes the movie and cascades to every showtime referencing
// it, all in one transaction. Bookings are retained; reads resolve their
// dangling references as "Unknown".
func (s *Store) DeleteMovie(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.st.clone()
	if next.movie(id) == nil {
		return fmt.Errorf("movie %s: %w", id, entity.ErrNotFound)
	}

	movies := next.movies[:0]
	for _, m := range next.movies {
		if m.ID != id {
			movies = append(movies, m)
		}
	}
	next.movies = movies

	var events []ChangeEvent
	showtimes := next.showtimes[:0]
	for _, st := range next.showtimes {
		if st.MovieID == id {
			events = append(events, ChangeEvent{ActionDeleted, CollectionShowtimes, st.ID})
			continue
		}
		showtimes = append(showtimes, st)
	}
	next.showtimes = showtimes
	delete(next.movieShowtimes, id)
	events = append(events, ChangeEvent{ActionDeleted, CollectionMovies, id})

	return s.commit(ctx, next, events...)
}

func (s *Store) Movies() []*entity.Movie {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*entity.Movie, len(s.st.movies))
	for i, m := range s.st.movies {
		out[i] = m.Clone()
	}
	return out
}

func (s *Store) MovieByID(id string) (*entity.Movie, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	movie := s.st.movie(id)
	if movie == nil {
		return nil, fmt.Errorf("movie %s: %w", id, entity.ErrNotFound)
	}
	return movie.Clone(), nil
}

// ==================== SHOWTIMES ====================

// ShowtimeUpdate carries partial showtime edits. Seat state is deliberately
// absent: seats only move through AddBooking.
type ShowtimeUpdate struct {
	MovieID *string
	Date    *string
	Time    *string
	Theater *string
}

func (s *Store) AddShowtime(ctx context.Context, movieID, date, timeOfDay, theater string) (*entity.Showtime, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.st.clone()
	if next.movie(movieID) == nil {
		return nil, fmt.Errorf("movie %s: %w", movieID, entity.ErrNotFound)
	}

	created := entity.NewShowtime(uuid.New().String(), movieID, date, timeOfDay, theater, s.seatsPerShowtime)
	next.showtimes = append(next.showtimes, created)
	next.movieShowtimes[movieID] = append(next.movieShowtimes[movieID], created.ID)

	if err := s.commit(ctx, next, ChangeEvent{ActionCreated, CollectionShowtimes, created.ID}); err != nil {
		return nil, err
	}
	return created.Clone(), nil
}

func (s *Store) UpdateShowtime(ctx context.Context, id string, upd ShowtimeUpdate) (*entity.Showtime, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.st.clone()
	showtime := next.showtime(id)
	if showtime == nil {
		return nil, fmt.Errorf("showtime %s: %w", id, entity.ErrNotFound)
	}

	if upd.MovieID != nil && *upd.MovieID != showtime.MovieID {
		if next.movie(*upd.MovieID) == nil {
			return nil, fmt.Errorf("movie %s: %w", *upd.MovieID, entity.ErrNotFound)
		}
		next.movieShowtimes[showtime.MovieID] = removeID(next.movieShowtimes[showtime.MovieID], id)
		next.movieShowtimes[*upd.MovieID] = append(next.movieShowtimes[*upd.MovieID], id)
		showtime.MovieID = *upd.MovieID
	}
	if upd.Date != nil {
		showtime.Date = *upd.Date
	}
	if upd.Time != nil {
		showtime.Time = *upd.Time
	}
	if upd.Theater != nil {
		showtime.Theater = *upd.Theater
	}

	if err := s.commit(ctx, next, ChangeEvent{ActionUpdated, CollectionShowtimes, id}); err != nil {
		return nil, err
	}
	return showtime.Clone(), nil
}

func (s *Store) DeleteShowtime(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.st.clone()
	showtime := next.showtime(id)
	if showtime == nil {
		return fmt.Errorf("showtime %s: %w", id, entity.ErrNotFound)
	}

	showtimes := next.showtimes[:0]
	for _, st := range next.showtimes {
		if st.ID != id {
			showtimes = append(showtimes, st)
		}
	}
	next.showtimes = showtimes
	next.movieShowtimes[showtime.MovieID] = removeID(next.movieShowtimes[showtime.MovieID], id)

	return s.commit(ctx, next, ChangeEvent{ActionDeleted, CollectionShowtimes, id})
}

func (s *Store) Showtimes() []*entity.Showtime {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*entity.Showtime, len(s.st.showtimes))
	for i, st := range s.st.showtimes {
		out[i] = st.Clone()
	}
	return out
}

func (s *Store) ShowtimeByID(id string) (*entity.Showtime, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	showtime := s.st.showtime(id)
	if showtime == nil {
		return nil, fmt.Errorf("showtime %s: %w", id, entity.ErrNotFound)
	}
	return showtime.Clone(), nil
}

// ShowtimesForMovie answers the derived view from the index; the result is
// always the canonical collection filtered by movie ID.
func (s *Store) ShowtimesForMovie(movieID string) []*entity.Showtime {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := s.st.movieShowtimes[movieID]
	out := make([]*entity.Showtime, 0, len(ids))
	for _, id := range ids {
		if st := s.st.showtime(id); st != nil {
			out = append(out, st.Clone())
		}
	}
	return out
}

// ==================== BOOKINGS ====================

// AddBooking is the reserve operation: the whole check-then-commit sequence
// runs under the write lock, so overlapping requests are strictly ordered and
// the loser sees the winner's post-state when the contested set is computed.
func (s *Store) AddBooking(ctx context.Context, userID, showtimeID string, seats []int) (*entity.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.st.clone()
	showtime := next.showtime(showtimeID)
	if showtime == nil {
		return nil, fmt.Errorf("showtime %s: %w", showtimeID, entity.ErrNotFound)
	}

	if err := showtime.Reserve(seats); err != nil {
		return nil, err
	}

	booking := &entity.Booking{
		ID:          uuid.New().String(),
		UserID:      userID,
		MovieID:     showtime.MovieID,
		ShowtimeID:  showtimeID,
		Seats:       append([]int(nil), seats...),
		TotalPrice:  float64(len(seats)) * s.ticketPrice,
		BookingDate: time.Now().UTC(),
	}
	next.bookings = append(next.bookings, booking)

	events := []ChangeEvent{
		{ActionUpdated, CollectionShowtimes, showtimeID},
		{ActionCreated, CollectionBookings, booking.ID},
	}
	if err := s.commit(ctx, next, events...); err != nil {
		return nil, err
	}

	s.log.Info("Seats reserved",
		zap.String("booking_id", booking.ID),
		zap.String("showtime_id", showtimeID),
		zap.String("user_id", userID),
		zap.Ints("seats", seats),
		zap.Float64("total_price", booking.TotalPrice),
	)
	return booking.Clone(), nil
}

func (s *Store) Bookings() []*entity.Booking {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*entity.Booking, len(s.st.bookings))
	for i, b := range s.st.bookings {
		out[i] = b.Clone()
	}
	return out
}

// BookingsForUser returns the user's bookings in insertion order.
func (s *Store) BookingsForUser(userID string) []*entity.Booking {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*entity.Booking
	for _, b := range s.st.bookings {
		if b.UserID == userID {
			out = append(out, b.Clone())
		}
	}
	return out
}

func removeID(ids []string, id string) []string {
	out := ids[:0]
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}
