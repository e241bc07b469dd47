package usecase

import (
	"cine-reserve/internal/data/store"

	"go.uber.org/zap"
)

type Service struct {
	Movie    MovieService
	Showtime ShowtimeService
	Booking  BookingService
}

func NewService(st *store.Store, log *zap.Logger) *Service {
	return &Service{
		Movie:    NewMovieService(st, log),
		Showtime: NewShowtimeService(st, log),
		Booking:  NewBookingService(st, log),
	}
}
