package mark_deposit_paid

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/maineblanc/camping-booking/internal/api/handlers"
	"github.com/maineblanc/camping-booking/internal/api/middleware"
	"github.com/maineblanc/camping-booking/internal/service/bookings"
)

const (
	msgInvalidBookingID = "identifiant de réservation invalide"
	msgMissingUserID    = "identifiant utilisateur manquant"
	msgNotFound         = "réservation introuvable"
	msgForbidden        = "accès refusé"
	msgAlreadyPaid      = "l'acompte de cette réservation est déjà réglé"
	msgCancelled        = "cette réservation a été annulée"
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

// Handle POST /api/v1/bookings/{bookingId}/deposit
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID, err := strconv.ParseInt(mux.Vars(r)["bookingId"], 10, 64)
	if err != nil || bookingID <= 0 {
		h.logger.Warn("POST /bookings/{id}/deposit - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings/{id}/deposit - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	booking, err := h.service.MarkDepositPaid(r.Context(), bookingID, userID)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("POST /bookings/{id}/deposit - Booking not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, bookings.ErrAccessDenied):
			h.logger.Warn("POST /bookings/{id}/deposit - Access denied: booking_id=%d, user_id=%d",
				bookingID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, bookings.ErrAlreadyPaid):
			h.logger.Warn("POST /bookings/{id}/deposit - Already paid: booking_id=%d", bookingID)
			handlers.RespondConflict(w, msgAlreadyPaid)

		case errors.Is(err, bookings.ErrBookingCancelled):
			h.logger.Warn("POST /bookings/{id}/deposit - Booking cancelled: booking_id=%d", bookingID)
			handlers.RespondConflict(w, msgCancelled)

		default:
			h.logger.Error("POST /bookings/{id}/deposit - Failed to mark deposit: booking_id=%d, error=%v",
				bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings/{id}/deposit - Deposit marked as paid: booking_id=%d, user_id=%d",
		bookingID, userID)
	handlers.RespondJSON(w, http.StatusOK, booking)
}
