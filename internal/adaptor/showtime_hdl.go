package adaptor

import (
	"encoding/json"
	"net/http"

	"cine-reserve/internal/dto/request"
	"cine-reserve/internal/usecase"
	"cine-reserve/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type ShowtimeHandler struct {
	service usecase.ShowtimeService
	log     *zap.Logger
}

func NewShowtimeHandler(service usecase.ShowtimeService, log *zap.Logger) *ShowtimeHandler {
	return &ShowtimeHandler{
		service: service,
		log:     log.With(zap.String("handler", "showtime")),
	}
}

// GetShowtimes handles GET /api/showtimes
func (h *ShowtimeHandler) GetShowtimes(w http.ResponseWriter, r *http.Request) {
	showtimes, err := h.service.GetShowtimes(r.Context())
	if err != nil {
		writeServiceError(w, h.log, err, "get showtimes")
		return
	}

	utils.ResponseSuccess(w, "Showtimes retrieved successfully", showtimes)
}

// GetShowtimeByID handles GET /api/showtimes/{id}, the seat availability read
func (h *ShowtimeHandler) GetShowtimeByID(w http.ResponseWriter, r *http.Request) {
	showtimeID := chi.URLParam(r, "id")
	if showtimeID == "" {
		utils.ResponseBadRequest(w, "Showtime ID is required", nil)
		return
	}

	showtime, err := h.service.GetShowtimeByID(r.Context(), showtimeID)
	if err != nil {
		writeServiceError(w, h.log, err, "get showtime by ID")
		return
	}

	utils.ResponseSuccess(w, "Showtime retrieved successfully", showtime)
}

// CreateShowtime handles POST /api/admin/showtimes (admin only)
func (h *ShowtimeHandler) CreateShowtime(w http.ResponseWriter, r *http.Request) {
	var req request.ShowtimeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	showtime, err := h.service.CreateShowtime(r.Context(), &req)
	if err != nil {
		writeServiceError(w, h.log, err, "create showtime")
		return
	}

	utils.ResponseCreated(w, "Showtime created successfully", showtime)
}

// UpdateShowtime handles PUT /api/admin/showtimes/{id} (admin only)
func (h *ShowtimeHandler) UpdateShowtime(w http.ResponseWriter, r *http.Request) {
	showtimeID := chi.URLParam(r, "id")
	if showtimeID == "" {
		utils.ResponseBadRequest(w, "Showtime ID is required", nil)
		return
	}

	var req request.ShowtimeUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	showtime, err := h.service.UpdateShowtime(r.Context(), showtimeID, &req)
	if err != nil {
		writeServiceError(w, h.log, err, "update showtime")
		return
	}

	utils.ResponseSuccess(w, "Showtime updated successfully", showtime)
}

// DeleteShowtime handles DELETE /api/admin/showtimes/{id} (admin only)
func (h *ShowtimeHandler) DeleteShowtime(w http.ResponseWriter, r *http.Request) {
	showtimeID := chi.URLParam(r, "id")
	if showtimeID == "" {
		utils.ResponseBadRequest(w, "Showtime ID is required", nil)
		return
	}

	if err := h.service.DeleteShowtime(r.Context(), showtimeID); err != nil {
		writeServiceError(w, h.log, err, "delete showtime")
		return
	}

	utils.ResponseSuccess(w, "Showtime deleted successfully", nil)
}
