package confirm_booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/REBALL-BookingService/internal/api/handlers"
	"github.com/m04kA/REBALL-BookingService/internal/api/middleware"
	confirmBooking "github.com/m04kA/REBALL-BookingService/internal/usecase/confirm_booking"
)

const (
	msgInvalidBookingID = "invalid booking ID"
	msgMissingUserID    = "missing user ID"
	msgNotFound         = "booking not found"
	msgForbidden        = "access denied"
	msgCannotConfirm    = "booking cannot be confirmed"
)

type Handler struct {
	useCase ConfirmBookingUseCase
	logger  Logger
}

func NewHandler(useCase ConfirmBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/bookings/{bookingId}/confirm
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем bookingId из URL
	vars := mux.Vars(r)
	bookingIDStr := vars["bookingId"]

	bookingID, err := strconv.ParseInt(bookingIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /bookings/{id}/confirm - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PATCH /bookings/{id}/confirm - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), &confirmBooking.Request{
		BookingID: bookingID,
		UserID:    userID,
	})
	if err != nil {
		switch {
		case errors.Is(err, confirmBooking.ErrBookingNotFound):
			h.logger.Warn("PATCH /bookings/{id}/confirm - Booking not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, confirmBooking.ErrAccessDenied):
			h.logger.Warn("PATCH /bookings/{id}/confirm - Access denied: booking_id=%d, user_id=%d",
				bookingID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, confirmBooking.ErrInvalidStatus):
			h.logger.Warn("PATCH /bookings/{id}/confirm - Cannot confirm: booking_id=%d: %v", bookingID, err)
			handlers.RespondBadRequest(w, msgCannotConfirm)

		case errors.Is(err, confirmBooking.ErrInvalidInput):
			h.logger.Warn("PATCH /bookings/{id}/confirm - Invalid input: booking_id=%d: %v", bookingID, err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("PATCH /bookings/{id}/confirm - Failed to confirm booking: booking_id=%d, error=%v",
				bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /bookings/{id}/confirm - Booking confirmed successfully: booking_id=%d, user_id=%d",
		bookingID, userID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
