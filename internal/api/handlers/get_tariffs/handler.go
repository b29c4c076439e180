package get_tariffs

import (
	"net/http"

	"github.com/maineblanc/camping-booking/internal/api/handlers"
)

type Handler struct {
	service TariffService
	logger  Logger
}

func NewHandler(service TariffService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/tariffs
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sheet, err := h.service.GetSheet(r.Context())
	if err != nil {
		h.logger.Error("GET /tariffs - Failed to load tariff sheet: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /tariffs - Tariff sheet returned: categories=%d", len(sheet.Categories))
	handlers.RespondJSON(w, http.StatusOK, sheet)
}
