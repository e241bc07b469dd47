package adaptor

import (
	"errors"
	"net/http"

	"cine-reserve/internal/data/entity"
	"cine-reserve/internal/data/store"
	"cine-reserve/internal/usecase"
	"cine-reserve/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Movie    *MovieHandler
	Showtime *ShowtimeHandler
	Booking  *BookingHandler
	Events   *EventsHandler
}

func NewHandler(service *usecase.Service, st *store.Store, log *zap.Logger) *Handler {
	return &Handler{
		Movie:    NewMovieHandler(service.Movie, log),
		Showtime: NewShowtimeHandler(service.Showtime, log),
		Booking:  NewBookingHandler(service.Booking, log),
		Events:   NewEventsHandler(st, log),
	}
}

// writeServiceError translates the typed error taxonomy into HTTP responses.
// Seat conflicts carry the exact contested seat list in the errors payload so
// the presentation layer can highlight them.
func writeServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	var conflict *entity.SeatConflictError

	switch {
	case errors.As(err, &conflict):
		utils.ResponseConflict(w, err.Error(), map[string]any{
			"showtimeId": conflict.ShowtimeID,
			"contested":  conflict.Contested,
		})

	case errors.Is(err, entity.ErrNotFound):
		utils.ResponseNotFound(w, err.Error())

	case errors.Is(err, entity.ErrValidation):
		utils.ResponseBadRequest(w, err.Error(), nil)

	default:
		log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
