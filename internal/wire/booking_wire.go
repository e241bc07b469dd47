package wire

import (
	"cine-reserve/internal/adaptor"
	"cine-reserve/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireBooking(r chi.Router, bookingHandler *adaptor.BookingHandler, eventsHandler *adaptor.EventsHandler, log *zap.Logger) {
	// ==================== PROTECTED ROUTES (require identity) ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.Identity(log))

		r.Post("/api/bookings", bookingHandler.CreateBooking)
		r.Get("/api/user/bookings", bookingHandler.GetUserBookings)
		r.Get("/api/events", eventsHandler.Stream)
	})

	// ==================== ADMIN ROUTES ====================
	r.Route("/api/admin/bookings", func(r chi.Router) {
		r.Use(middleware.Identity(log))
		r.Use(middleware.Admin(log))

		r.Get("/", bookingHandler.GetAllBookings)
	})
}
