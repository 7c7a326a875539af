package hold_slot

import (
	"errors"
	"net/http"

	"github.com/m04kA/REBALL-BookingService/internal/api/handlers"
	"github.com/m04kA/REBALL-BookingService/internal/api/middleware"
	holdSlot "github.com/m04kA/REBALL-BookingService/internal/usecase/hold_slot"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgMissingUserID      = "missing user ID"
	msgInvalidTime        = "invalid slot time format, expected HH:MM"
	msgSlotNotAvailable   = "slot is no longer available"
	msgHoldExists         = "an active hold for this slot already exists"
	msgInvalidDate        = "invalid slot date"
	msgInvalidSlotTime    = "slot time is outside the training schedule"
)

type Handler struct {
	useCase HoldSlotUseCase
	logger  Logger
}

func NewHandler(useCase HoldSlotUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/holds
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /holds - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req HoldSlotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /holds - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом времени)
	useCaseReq, err := req.ToUseCaseRequest(userID)
	if err != nil {
		h.logger.Warn("POST /holds - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, holdSlot.ErrSlotNotAvailable):
			h.logger.Warn("POST /holds - Slot not available: user_id=%d, date=%s, time=%s",
				userID, req.Date, req.Time)
			handlers.RespondConflict(w, msgSlotNotAvailable)

		case errors.Is(err, holdSlot.ErrHoldAlreadyExists):
			h.logger.Warn("POST /holds - Hold already exists: user_id=%d, date=%s, time=%s",
				userID, req.Date, req.Time)
			handlers.RespondConflict(w, msgHoldExists)

		case errors.Is(err, holdSlot.ErrInvalidDate):
			h.logger.Warn("POST /holds - Invalid date: user_id=%d: %v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, holdSlot.ErrInvalidSlotTime):
			h.logger.Warn("POST /holds - Invalid slot time: user_id=%d: %v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidSlotTime)

		case errors.Is(err, holdSlot.ErrInvalidInput):
			h.logger.Warn("POST /holds - Invalid input: user_id=%d: %v", userID, err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /holds - Failed to hold slot: user_id=%d, date=%s, time=%s, error=%v",
				userID, req.Date, req.Time, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /holds - Slot held successfully: user_id=%d, slot=%s", userID, result.SlotID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
