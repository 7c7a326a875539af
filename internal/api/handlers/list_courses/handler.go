package list_courses

import (
	"net/http"

	"github.com/m04kA/REBALL-BookingService/internal/api/handlers"
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

// Handle GET /api/v1/courses
// Query params: position (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Опциональный фильтр по позиции
	var position *string
	if p := r.URL.Query().Get("position"); p != "" {
		position = &p
	}

	result, err := h.service.List(r.Context(), position)
	if err != nil {
		h.logger.Error("GET /courses - Failed to list courses: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /courses - Courses retrieved successfully: count=%d", len(result.Courses))
	handlers.RespondJSON(w, http.StatusOK, result)
}
