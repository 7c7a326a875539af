package release_hold

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/REBALL-BookingService/internal/api/handlers"
	"github.com/m04kA/REBALL-BookingService/internal/api/middleware"
	"github.com/m04kA/REBALL-BookingService/internal/service/holds"
)

const (
	msgMissingUserID = "missing user ID"
	msgNotFound      = "hold not found"
)

type Handler struct {
	service HoldService
	logger  Logger
}

func NewHandler(service HoldService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/holds/{holdToken}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	token := vars["holdToken"]

	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("DELETE /holds/{token} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	// Освобождаем hold (сервис проверит владельца по токену)
	err := h.service.Release(r.Context(), token, userID)
	if err != nil {
		switch {
		case errors.Is(err, holds.ErrHoldNotFound):
			h.logger.Warn("DELETE /holds/{token} - Hold not found: user_id=%d", userID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, holds.ErrInvalidInput):
			h.logger.Warn("DELETE /holds/{token} - Invalid input: user_id=%d: %v", userID, err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("DELETE /holds/{token} - Failed to release hold: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /holds/{token} - Hold released successfully: user_id=%d", userID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
