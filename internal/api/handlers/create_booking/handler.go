package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/REBALL-BookingService/internal/api/handlers"
	"github.com/m04kA/REBALL-BookingService/internal/api/middleware"
	createBooking "github.com/m04kA/REBALL-BookingService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgMissingUserID      = "missing user ID"
	msgInvalidTime        = "invalid slot time format, expected HH:MM"
	msgSlotNotAvailable   = "selected slot is no longer available"
	msgCourseNotFound     = "course not found"
	msgInvalidDate        = "invalid booking date"
	msgInvalidSlotTime    = "slot time is outside the training schedule"
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
	// Получаем userID из контекста (через middleware Auth)
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

	// Конвертируем HTTP запрос в модель use case (с парсингом времени)
	useCaseReq, err := req.ToUseCaseRequest(userID)
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrSlotNotAvailable):
			h.logger.Warn("POST /bookings - Slot not available: user_id=%d, course_id=%d", userID, req.CourseID)
			handlers.RespondConflict(w, msgSlotNotAvailable)

		case errors.Is(err, createBooking.ErrCourseNotFound):
			h.logger.Warn("POST /bookings - Course not found: course_id=%d", req.CourseID)
			handlers.RespondNotFound(w, msgCourseNotFound)

		case errors.Is(err, createBooking.ErrInvalidDate):
			h.logger.Warn("POST /bookings - Invalid date: user_id=%d: %v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, createBooking.ErrInvalidSlotTime):
			h.logger.Warn("POST /bookings - Invalid slot time: user_id=%d: %v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidSlotTime)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: user_id=%d: %v", userID, err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /bookings - Failed to create booking: user_id=%d, course_id=%d, error=%v",
				userID, req.CourseID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, user_id=%d, course_id=%d",
		result.ID, userID, req.CourseID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
