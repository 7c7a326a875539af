package create_booking

import (
	"time"

	"github.com/m04kA/REBALL-BookingService/internal/domain"
)

// Request модель запроса на создание бронирования
type Request struct {
	UserID         int64                  // ID пользователя (из сессии)
	CourseID       int64                  // ID курса
	TrainingType   domain.TrainingType    // Тип тренировки (1to1 / group)
	PackageType    string                 // Выбранный пакет курса
	TotalPrice     float64                // Итоговая цена пакета
	Slots          domain.AvailabilityMap // Выбранные слоты: дата -> времена
	IsConsultation bool                   // Флаг бесплатной консультации
	HoldToken      *string                // Токен hold, конвертируемого в бронирование (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID           int64
	UserID       int64
	CourseID     int64
	TrainingType string
	PackageType  string
	TotalPrice   float64
	Status       string

	Slots          domain.AvailabilityMap
	IsConsultation bool

	// Денормализованные данные курса
	CourseName     string
	CoursePosition *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

func toResponse(b *domain.Booking) *Response {
	return &Response{
		ID:             b.ID,
		UserID:         b.UserID,
		CourseID:       b.CourseID,
		TrainingType:   string(b.TrainingType),
		PackageType:    b.PackageType,
		TotalPrice:     b.TotalPrice,
		Status:         string(b.Status),
		Slots:          b.Availability,
		IsConsultation: b.IsConsultation,
		CourseName:     b.CourseName,
		CoursePosition: b.CoursePosition,
		CreatedAt:      b.CreatedAt,
		UpdatedAt:      b.UpdatedAt,
	}
}
