package wire

import (
	"net/http"

	"cine-reserve/internal/adaptor"
	"cine-reserve/internal/data/store"
	"cine-reserve/internal/usecase"
	"cine-reserve/pkg/middleware"
	"cine-reserve/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// App holds the wired dependencies
type App struct {
	Router *chi.Mux
}

// Wiring initializes services, handlers and routes
func Wiring(st *store.Store, config *utils.Config, logger *zap.Logger) *App {
	service := usecase.NewService(st, logger)
	handler := adaptor.NewHandler(service, st, logger)

	return &App{
		Router: setupRouter(handler, logger),
	}
}

func setupRouter(handler *adaptor.Handler, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))

	wireMovie(r, handler.Movie, logger)
	wireShowtime(r, handler.Showtime, logger)
	wireBooking(r, handler.Booking, handler.Events, logger)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
