package handlers

import (
	"encoding/json"
	"net/http"
)

// ErrorResponse стандартная модель ошибки API
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

// ErrorBody тело ошибки с кодом и сообщением
type ErrorBody struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// RespondJSON пишет JSON ответ с указанным статусом.
// nil payload дает пустое тело.
func RespondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if payload == nil {
		return
	}

	// Клиент уже получил статус, ошибку кодирования можно только проглотить
	_ = json.NewEncoder(w).Encode(payload)
}

// RespondError пишет JSON ошибку с указанным статусом и сообщением
func RespondError(w http.ResponseWriter, status int, message string) {
	RespondJSON(w, status, ErrorResponse{
		Error: ErrorBody{
			Code:    status,
			Message: message,
		},
	})
}

// RespondBadRequest пишет 400 Bad Request
func RespondBadRequest(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusBadRequest, message)
}

// RespondUnauthorized пишет 401 Unauthorized
func RespondUnauthorized(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusUnauthorized, message)
}

// RespondForbidden пишет 403 Forbidden
func RespondForbidden(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusForbidden, message)
}

// RespondNotFound пишет 404 Not Found
func RespondNotFound(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusNotFound, message)
}

// RespondConflict пишет 409 Conflict
func RespondConflict(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusConflict, message)
}

// RespondInternalError пишет 500 Internal Server Error без деталей -
// подробности остаются в логах
func RespondInternalError(w http.ResponseWriter) {
	RespondError(w, http.StatusInternalServerError, "internal server error")
}

// DecodeJSON декодирует тело запроса в v, отклоняя неизвестные поля
func DecodeJSON(r *http.Request, v interface{}) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}
