package quote_booking

import (
	"errors"
	"net/http"

	"github.com/maineblanc/camping-booking/internal/api/handlers"
	quoteBooking "github.com/maineblanc/camping-booking/internal/usecase/quote_booking"
)

const (
	msgInvalidRequestBody = "corps de requête invalide"
	msgInvalidDate        = "format de date invalide, attendu AAAA-MM-JJ"
	msgInvalidDateRange   = "la date de départ doit être postérieure à la date d'arrivée, et l'arrivée ne peut pas être passée"
	msgInvalidInput       = "données de réservation invalides"
	msgRateNotFound       = "aucun tarif disponible pour cet hébergement à ces dates"
)

type Handler struct {
	useCase QuoteBookingUseCase
	logger  Logger
}

func NewHandler(useCase QuoteBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings/quote
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req handlers.StayRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings/quote - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	stay, err := req.ToStay()
	if err != nil {
		h.logger.Warn("POST /bookings/quote - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &quoteBooking.Request{Stay: stay})
	if err != nil {
		switch {
		case errors.Is(err, quoteBooking.ErrInvalidDateRange):
			h.logger.Warn("POST /bookings/quote - Invalid date range: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDateRange)

		case errors.Is(err, quoteBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings/quote - Invalid input: %v", err)
			handlers.RespondValidationError(w, msgInvalidInput, err)

		case errors.Is(err, quoteBooking.ErrRateNotFound):
			h.logger.Warn("POST /bookings/quote - Rate not found: subtype=%s", req.Subtype)
			handlers.RespondNotFound(w, msgRateNotFound)

		default:
			h.logger.Error("POST /bookings/quote - Failed to price stay: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings/quote - Quote calculated: subtype=%s, total=%s", req.Subtype, result.Total)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
