package get_availability

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/m04kA/REBALL-BookingService/internal/api/handlers"
	getAvailability "github.com/m04kA/REBALL-BookingService/internal/usecase/get_availability"
)

const (
	msgMissingYear  = "year query parameter is required"
	msgMissingMonth = "month query parameter is required"
	msgInvalidYear  = "invalid year"
	msgInvalidMonth = "invalid month, expected 1-12"
)

type Handler struct {
	useCase GetAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/availability
// Query params: year (required), month (required, 1-12)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем year из query параметров
	yearStr := r.URL.Query().Get("year")
	if yearStr == "" {
		h.logger.Warn("GET /availability - Missing year")
		handlers.RespondBadRequest(w, msgMissingYear)
		return
	}

	year, err := strconv.Atoi(yearStr)
	if err != nil {
		h.logger.Warn("GET /availability - Invalid year: %v", err)
		handlers.RespondBadRequest(w, msgInvalidYear)
		return
	}

	// Извлекаем month из query параметров
	monthStr := r.URL.Query().Get("month")
	if monthStr == "" {
		h.logger.Warn("GET /availability - Missing month")
		handlers.RespondBadRequest(w, msgMissingMonth)
		return
	}

	month, err := strconv.Atoi(monthStr)
	if err != nil {
		h.logger.Warn("GET /availability - Invalid month: %v", err)
		handlers.RespondBadRequest(w, msgInvalidMonth)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), &getAvailability.Request{
		Year:  year,
		Month: time.Month(month),
	})
	if err != nil {
		switch {
		case errors.Is(err, getAvailability.ErrInvalidInput):
			h.logger.Warn("GET /availability - Invalid input: year=%d, month=%d: %v", year, month, err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("GET /availability - Failed to compute availability: year=%d, month=%d, error=%v",
				year, month, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /availability - Availability computed: year=%d, month=%d, days=%d",
		year, month, len(result.Days))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
