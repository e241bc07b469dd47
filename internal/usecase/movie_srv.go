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

type MovieService interface {
	// Public endpoints
	GetMovies(ctx context.Context) ([]response.MovieResponse, error)
	GetMovieByID(ctx context.Context, movieID string) (*response.MovieResponse, error)

	// Admin endpoints
	CreateMovie(ctx context.Context, req *request.MovieRequest) (*response.MovieResponse, error)
	UpdateMovie(ctx context.Context, movieID string, req *request.MovieUpdateRequest) (*response.MovieResponse, error)
	DeleteMovie(ctx context.Context, movieID string) error
}

type movieService struct {
	store *store.Store
	log   *zap.Logger
}

func NewMovieService(st *store.Store, log *zap.Logger) MovieService {
	return &movieService{
		store: st,
		log:   log.With(zap.String("service", "movie")),
	}
}

func (s *movieService) GetMovies(ctx context.Context) ([]response.MovieResponse, error) {
	movies := s.store.Movies()

	out := make([]response.MovieResponse, len(movies))
	for i, m := range movies {
		out[i] = response.MovieToResponse(m, s.store.ShowtimesForMovie(m.ID))
	}

	s.log.Debug("Movies listed", zap.Int("count", len(out)))
	return out, nil
}

func (s *movieService) GetMovieByID(ctx context.Context, movieID string) (*response.MovieResponse, error) {
	movie, err := s.store.MovieByID(movieID)
	if err != nil {
		return nil, err
	}

	resp := response.MovieToResponse(movie, s.store.ShowtimesForMovie(movieID))
	return &resp, nil
}

func (s *movieService) CreateMovie(ctx context.Context, req *request.MovieRequest) (*response.MovieResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create movie validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", entity.ErrValidation, utils.FormatValidationErrors(errs))
	}

	movie, err := s.store.AddMovie(ctx, &entity.Movie{
		Title:       req.Title,
		Poster:      req.Poster,
		Description: req.Description,
		Genres:      req.Genres,
		Duration:    req.Duration,
		ReleaseDate: req.ReleaseDate,
		Rating:      req.Rating,
	})
	if err != nil {
		s.log.Error("Failed to create movie", zap.Error(err), zap.String("title", req.Title))
		return nil, fmt.Errorf("create movie: %w", err)
	}

	s.log.Info("Movie created",
		zap.String("movie_id", movie.ID),
		zap.String("title", movie.Title),
	)

	resp := response.MovieToResponse(movie, nil)
	return &resp, nil
}

func (s *movieService) UpdateMovie(ctx context.Context, movieID string, req *request.MovieUpdateRequest) (*response.MovieResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update movie validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", entity.ErrValidation, utils.FormatValidationErrors(errs))
	}

	movie, err := s.store.UpdateMovie(ctx, movieID, store.MovieUpdate{
		Title:       req.Title,
		Poster:      req.Poster,
		Description: req.Description,
		Genres:      req.Genres,
		Duration:    req.Duration,
		ReleaseDate: req.ReleaseDate,
		Rating:      req.Rating,
	})
	if err != nil {
		return nil, fmt.Errorf("update movie %s: %w", movieID, err)
	}

	s.log.Info("Movie updated", zap.String("movie_id", movieID))

	resp := response.MovieToResponse(movie, s.store.ShowtimesForMovie(movieID))
	return &resp, nil
}

func (s *movieService) DeleteMovie(ctx context.Context, movieID string) error {
	if err := s.store.DeleteMovie(ctx, movieID); err != nil {
		return fmt.Errorf("delete movie %s: %w", movieID, err)
	}

	s.log.Info("Movie deleted with its showtimes", zap.String("movie_id", movieID))
	return nil
}
