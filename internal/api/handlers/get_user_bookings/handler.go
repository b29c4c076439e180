package get_user_bookings

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/maineblanc/camping-booking/internal/api/handlers"
	"github.com/maineblanc/camping-booking/internal/api/middleware"
	"github.com/maineblanc/camping-booking/internal/service/bookings"
	"github.com/maineblanc/camping-booking/internal/service/bookings/models"
)

const (
	msgInvalidUserID = "identifiant utilisateur invalide"
	msgMissingUserID = "identifiant utilisateur manquant"
	msgInvalidStatus = "statut de réservation invalide"
	msgForbidden     = "accès refusé"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/users/{userId}/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.ParseInt(mux.Vars(r)["userId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /users/{userId}/bookings - Invalid user ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidUserID)
		return
	}

	authUserID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /users/{userId}/bookings - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	// Пользователь видит только свои бронирования
	if authUserID != userID {
		h.logger.Warn("GET /users/{userId}/bookings - Access denied: user_id=%d, requested=%d", authUserID, userID)
		handlers.RespondForbidden(w, msgForbidden)
		return
	}

	// Получаем status из query параметров (опционально)
	var statusPtr *string
	if status := r.URL.Query().Get("status"); status != "" {
		statusPtr = &status
	}

	result, err := h.service.GetUserBookings(r.Context(), &models.GetUserBookingsRequest{
		UserID: userID,
		Status: statusPtr,
	})
	if err != nil {
		if errors.Is(err, bookings.ErrInvalidInput) {
			h.logger.Warn("GET /users/{userId}/bookings - Invalid status: user_id=%d", userID)
			handlers.RespondBadRequest(w, msgInvalidStatus)
			return
		}
		h.logger.Error("GET /users/{userId}/bookings - Failed to get bookings: user_id=%d, error=%v",
			userID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /users/{userId}/bookings - Bookings retrieved successfully: user_id=%d, count=%d",
		userID, len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, result.Bookings)
}
