package check_availability

import (
	"errors"
	"net/http"

	"github.com/maineblanc/camping-booking/internal/api/handlers"
	"github.com/maineblanc/camping-booking/internal/domain"
	checkAvailability "github.com/maineblanc/camping-booking/internal/usecase/check_availability"
)

const (
	msgInvalidDate      = "format de date invalide, attendu AAAA-MM-JJ"
	msgInvalidSubtype   = "type d'hébergement inconnu"
	msgInvalidDateRange = "la date de départ doit être postérieure à la date d'arrivée, et l'arrivée ne peut pas être passée"
	msgRangeTooLong     = "période demandée trop longue"
)

type Handler struct {
	useCase CheckAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase CheckAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/availability?subtype=tent&startDate=2027-07-10&endDate=2027-07-14
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	startDate, err := handlers.ParseDate(query.Get("startDate"))
	if err != nil {
		h.logger.Warn("GET /availability - Invalid startDate: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	endDate, err := handlers.ParseDate(query.Get("endDate"))
	if err != nil {
		h.logger.Warn("GET /availability - Invalid endDate: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &checkAvailability.Request{
		Subtype:   domain.Subtype(query.Get("subtype")),
		StartDate: startDate,
		EndDate:   endDate,
	})
	if err != nil {
		switch {
		case errors.Is(err, checkAvailability.ErrInvalidInput):
			h.logger.Warn("GET /availability - Invalid subtype: %s", query.Get("subtype"))
			handlers.RespondBadRequest(w, msgInvalidSubtype)

		case errors.Is(err, checkAvailability.ErrInvalidDateRange):
			h.logger.Warn("GET /availability - Invalid date range: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDateRange)

		case errors.Is(err, checkAvailability.ErrRangeTooLong):
			h.logger.Warn("GET /availability - Range too long: %v", err)
			handlers.RespondBadRequest(w, msgRangeTooLong)

		default:
			h.logger.Error("GET /availability - Failed to check availability: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /availability - category=%s, available=%d/%d",
		result.Category, result.AvailablePlaces, result.MaxPlaces)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
