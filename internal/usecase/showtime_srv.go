package usecase

import (
	"context"
	"fmt"

	"cine-reserve/internal/data/entity"
	"cine-reserve/internal/data/store"
	"cine-reserve/internal/dto/request"
	"cine-reserve/internal/dto/response"
	"cine-reserve/pkg/utils"

	"go.uber.org/zap"
)

type ShowtimeService interface {
	// Public endpoints
	GetShowtimes(ctx context.Context) ([]response.ShowtimeResponse, error)
	GetShowtimeByID(ctx context.Context, showtimeID string) (*response.ShowtimeResponse, error)

	// Admin endpoints
	CreateShowtime(ctx context.Context, req *request.ShowtimeRequest) (*response.ShowtimeResponse, error)
	UpdateShowtime(ctx context.Context, showtimeID string, req *request.ShowtimeUpdateRequest) (*response.ShowtimeResponse, error)
	DeleteShowtime(ctx context.Context, showtimeID string) error
}

type showtimeService struct {
	store *store.Store
	log   *zap.Logger
}

func NewShowtimeService(st *store.Store, log *zap.Logger) ShowtimeService {
	return &showtimeService{
		store: st,
		log:   log.With(zap.String("service", "showtime")),
	}
}

func (s *showtimeService) GetShowtimes(ctx context.Context) ([]response.ShowtimeResponse, error) {
	showtimes := s.store.Showtimes()

	s.log.Debug("Showtimes listed", zap.Int("count", len(showtimes)))
	return response.ShowtimesToResponse(showtimes), nil
}

func (s *showtimeService) GetShowtimeByID(ctx context.Context, showtimeID string) (*response.ShowtimeResponse, error) {
	showtime, err := s.store.ShowtimeByID(showtimeID)
	if err != nil {
		return nil, err
	}

	resp := response.ShowtimeToResponse(showtime)
	return &resp, nil
}

func (s *showtimeService) CreateShowtime(ctx context.Context, req *request.ShowtimeRequest) (*response.ShowtimeResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create showtime validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", entity.ErrValidation, utils.FormatValidationErrors(errs))
	}

	showtime, err := s.store.AddShowtime(ctx, req.MovieID, req.Date, req.Time, req.Theater)
	if err != nil {
		return nil, fmt.Errorf("create showtime: %w", err)
	}

	s.log.Info("Showtime created",
		zap.String("showtime_id", showtime.ID),
		zap.String("movie_id", showtime.MovieID),
		zap.String("date", showtime.Date),
		zap.String("time", showtime.Time),
		zap.String("theater", showtime.Theater),
	)

	resp := response.ShowtimeToResponse(showtime)
	return &resp, nil
}

func (s *showtimeService) UpdateShowtime(ctx context.Context, showtimeID string, req *request.ShowtimeUpdateRequest) (*response.ShowtimeResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update showtime validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", entity.ErrValidation, utils.FormatValidationErrors(errs))
	}

	showtime, err := s.store.UpdateShowtime(ctx, showtimeID, store.ShowtimeUpdate{
		MovieID: req.MovieID,
		Date:    req.Date,
		Time:    req.Time,
		Theater: req.Theater,
	})
	if err != nil {
		return nil, fmt.Errorf("update showtime %s: %w", showtimeID, err)
	}

	s.log.Info("Showtime updated", zap.String("showtime_id", showtimeID))

	resp := response.ShowtimeToResponse(showtime)
	return &resp, nil
}

func (s *showtimeService) DeleteShowtime(ctx context.Context, showtimeID string) error {
	if err := s.store.DeleteShowtime(ctx, showtimeID); err != nil {
		return fmt.Errorf("delete showtime %s: %w", showtimeID, err)
	}

	s.log.Info("Showtime deleted", zap.String("showtime_id", showtimeID))
	return nil
}
