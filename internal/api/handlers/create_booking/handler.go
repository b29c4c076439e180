package create_booking

import (
	"errors"
	"net/http"

	"github.com/maineblanc/camping-booking/internal/api/handlers"
	"github.com/maineblanc/camping-booking/internal/api/middleware"
	createBooking "github.com/maineblanc/camping-booking/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "corps de requête invalide"
	msgInvalidDate        = "format de date invalide, attendu AAAA-MM-JJ"
	msgMissingUserID      = "identifiant utilisateur manquant"
	msgInvalidInput       = "données de réservation invalides"
	msgInvalidDateRange   = "la date de départ doit être postérieure à la date d'arrivée, et l'arrivée ne peut pas être passée"
	msgRateNotFound       = "aucun tarif disponible pour cet hébergement à ces dates"
	msgCapacityExceeded   = "plus d'emplacement disponible pour ce type d'hébergement à ces dates"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом дат)
	useCaseReq, err := req.ToUseCaseRequest(userID)
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrInvalidDateRange):
			h.logger.Warn("POST /bookings - Invalid date range: user_id=%d", userID)
			handlers.RespondBadRequest(w, msgInvalidDateRange)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: user_id=%d, error=%v", userID, err)
			handlers.RespondValidationError(w, msgInvalidInput, err)

		case errors.Is(err, createBooking.ErrRateNotFound):
			h.logger.Warn("POST /bookings - Rate not found: user_id=%d, subtype=%s", userID, req.Subtype)
			handlers.RespondNotFound(w, msgRateNotFound)

		case errors.Is(err, createBooking.ErrCapacityExceeded):
			h.logger.Warn("POST /bookings - No places left: user_id=%d, subtype=%s", userID, req.Subtype)
			handlers.RespondConflict(w, msgCapacityExceeded)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, user_id=%d, reference=%s",
		result.ID, userID, result.Reference)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
