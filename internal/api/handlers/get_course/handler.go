package get_course

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/REBALL-BookingService/internal/api/handlers"
	"github.com/m04kA/REBALL-BookingService/internal/service/courses"
)

const (
	msgInvalidCourseID = "invalid course ID"
	msgNotFound        = "course not found"
)

type Handler struct {
	service CourseService
	logger  Logger
}

func NewHandler(service CourseService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/courses/{courseId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем courseId из URL
	vars := mux.Vars(r)
	courseIDStr := vars["courseId"]

	courseID, err := strconv.ParseInt(courseIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /courses/{id} - Invalid course ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCourseID)
		return
	}

	course, err := h.service.GetByID(r.Context(), courseID)
	if err != nil {
		switch {
		case errors.Is(err, courses.ErrCourseNotFound):
			h.logger.Warn("GET /courses/{id} - Course not found: course_id=%d", courseID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /courses/{id} - Failed to get course: course_id=%d, error=%v", courseID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /courses/{id} - Course retrieved successfully: course_id=%d", courseID)
	handlers.RespondJSON(w, http.StatusOK, course)
}
