package update_booking_dates

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/maineblanc/camping-booking/internal/api/handlers"
	"github.com/maineblanc/camping-booking/internal/api/middleware"
	updateDates "github.com/maineblanc/camping-booking/internal/usecase/update_booking_dates"
)

const (
	msgInvalidBookingID   = "identifiant de réservation invalide"
	msgInvalidRequestBody = "corps de requête invalide"
	msgInvalidDate        = "format de date invalide, attendu AAAA-MM-JJ"
	msgMissingUserID      = "identifiant utilisateur manquant"
	msgInvalidDateRange   = "la date de départ doit être postérieure à la date d'arrivée, et l'arrivée ne peut pas être passée"
	msgNotFound           = "réservation introuvable"
	msgForbidden          = "accès refusé"
	msgCannotUpdate       = "les dates ne peuvent plus être modifiées après le paiement de l'acompte"
	msgRateNotFound       = "aucun tarif disponible pour cet hébergement à ces dates"
	msgCapacityExceeded   = "plus d'emplacement disponible pour ce type d'hébergement à ces dates"
)

type Handler struct {
	useCase UpdateBookingDatesUseCase
	logger  Logger
}

func NewHandler(useCase UpdateBookingDatesUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/bookings/{bookingId}/dates
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID, err := strconv.ParseInt(mux.Vars(r)["bookingId"], 10, 64)
	if err != nil || bookingID <= 0 {
		h.logger.Warn("PATCH /bookings/{id}/dates - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PATCH /bookings/{id}/dates - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req UpdateDatesRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /bookings/{id}/dates - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(bookingID, userID)
	if err != nil {
		h.logger.Warn("PATCH /bookings/{id}/dates - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, updateDates.ErrInvalidDateRange):
			handlers.RespondBadRequest(w, msgInvalidDateRange)

		case errors.Is(err, updateDates.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		case errors.Is(err, updateDates.ErrBookingNotFound):
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, updateDates.ErrAccessDenied):
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, updateDates.ErrCannotUpdate):
			handlers.RespondConflict(w, msgCannotUpdate)

		case errors.Is(err, updateDates.ErrRateNotFound):
			handlers.RespondNotFound(w, msgRateNotFound)

		case errors.Is(err, updateDates.ErrCapacityExceeded):
			handlers.RespondConflict(w, msgCapacityExceeded)

		default:
			h.logger.Error("PATCH /bookings/{id}/dates - Failed to update dates: booking_id=%d, error=%v",
				bookingID, err)
			handlers.RespondInternalError(w)
			return
		}
		h.logger.Warn("PATCH /bookings/{id}/dates - Rejected: booking_id=%d, user_id=%d, error=%v",
			bookingID, userID, err)
		return
	}

	h.logger.Info("PATCH /bookings/{id}/dates - Dates updated successfully: booking_id=%d, user_id=%d",
		bookingID, userID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
