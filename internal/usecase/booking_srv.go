package usecase

import (
	"context"
	"errors"
	"fmt"

	"cine-reserve/internal/data/entity"
	"cine-reserve/internal/data/store"
	"cine-reserve/internal/dto/request"
	"cine-reserve/internal/dto/response"
	"cine-reserve/pkg/utils"

	"go.uber.org/zap"
)

type BookingService interface {
	// Public endpoints (need identity)
	CreateBooking(ctx context.Context, userID string, req *request.BookingRequest) (*response.BookingResponse, error)
	GetUserBookings(ctx context.Context, userID string) ([]response.BookingResponse, error)

	// Admin endpoints
	GetAllBookings(ctx context.Context) ([]response.BookingResponse, error)
}

type bookingService struct {
	store *store.Store
	log   *zap.Logger
}

func NewBookingService(st *store.Store, log *zap.Logger) BookingService {
	return &bookingService{
		store: st,
		log:   log.With(zap.String("service", "booking")),
	}
}

func (s *bookingService) CreateBooking(ctx context.Context, userID string, req *request.BookingRequest) (*response.BookingResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create booking validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", entity.ErrValidation, utils.FormatValidationErrors(errs))
	}
	if userID == "" {
		return nil, fmt.Errorf("%w: user ID is required", entity.ErrValidation)
	}

	booking, err := s.store.AddBooking(ctx, userID, req.ShowtimeID, req.Seats)
	if err != nil {
		var conflict *entity.SeatConflictError
		switch {
		case errors.As(err, &conflict):
			s.log.Warn("Booking lost seat contention",
				zap.String("user_id", userID),
				zap.String("showtime_id", req.ShowtimeID),
				zap.Ints("contested", conflict.Contested),
			)
		case errors.Is(err, entity.ErrNotFound), errors.Is(err, entity.ErrValidation):
			s.log.Warn("Booking rejected", zap.Error(err), zap.String("user_id", userID))
		default:
			s.log.Error("Failed to create booking",
				zap.Error(err),
				zap.String("user_id", userID),
				zap.String("showtime_id", req.ShowtimeID),
			)
		}
		return nil, err
	}

	resp := s.resolveBooking(booking)
	return &resp, nil
}

func (s *bookingService) GetUserBookings(ctx context.Context, userID string) ([]response.BookingResponse, error) {
	bookings := s.store.BookingsForUser(userID)

	out := make([]response.BookingResponse, len(bookings))
	for i, b := range bookings {
		out[i] = s.resolveBooking(b)
	}

	s.log.Debug("User bookings retrieved",
		zap.String("user_id", userID),
		zap.Int("count", len(out)),
	)
	return out, nil
}

func (s *bookingService) GetAllBookings(ctx context.Context) ([]response.BookingResponse, error) {
	bookings := s.store.Bookings()

	out := make([]response.BookingResponse, len(bookings))
	for i, b := range bookings {
		out[i] = s.resolveBooking(b)
	}

	s.log.Debug("All bookings retrieved", zap.Int("count", len(out)))
	return out, nil
}

// resolveBooking joins a booking to its movie and showtime. Either may have
// been cascade-deleted since the booking was made; the response then carries
// the Unknown placeholders instead of failing the read.
func (s *bookingService) resolveBooking(booking *entity.Booking) response.BookingResponse {
	movie, _ := s.store.MovieByID(booking.MovieID)
	showtime, _ := s.store.ShowtimeByID(booking.ShowtimeID)
	return response.BookingToResponse(booking, movie, showtime)
}
