package wire

import (
	"cine-reserve/internal/adaptor"
	"cine-reserve/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireShowtime(r chi.Router, showtimeHandler *adaptor.ShowtimeHandler, log *zap.Logger) {
	// ==================== PUBLIC ROUTES ====================
	r.Get("/api/showtimes", showtimeHandler.GetShowtimes)
	r.Get("/api/showtimes/{id}", showtimeHandler.GetShowtimeByID)

	// ==================== ADMIN ROUTES ====================
	r.Route("/api/admin/showtimes", func(r chi.Router) {
		r.Use(middleware.Identity(log))
		r.Use(middleware.Admin(log))

		r.Post("/", showtimeHandler.CreateShowtime)
		r.Put("/{id}", showtimeHandler.UpdateShowtime)
		r.Delete("/{id}", showtimeHandler.DeleteShowtime)
	})
}
