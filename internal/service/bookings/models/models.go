package models

import (
	"errors"
	"time"

	"github.com/m04kA/REBALL-BookingService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")
)

// Request модели

// CancelBookingRequest запрос на отмену бронирования
type CancelBookingRequest struct {
	UserID             int64  `json:"userId"`
	CancellationReason string `json:"cancellationReason"`
}

// GetUserBookingsRequest запрос на получение бронирований пользователя
type GetUserBookingsRequest struct {
	UserID int64   `json:"userId"`
	Status *string `json:"status,omitempty"`
}

// Response модели

// SlotChoiceResponse выбранное время внутри одного дня
type SlotChoiceResponse struct {
	Time string `json:"time"`
}

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID           int64   `json:"id"`
	UserID       int64   `json:"userId"`
	CourseID     int64   `json:"courseId"`
	TrainingType string  `json:"trainingType"`
	PackageType  string  `json:"packageType"`
	TotalPrice   float64 `json:"totalPrice"`
	Status       string  `json:"status"`

	// Выбранные слоты: дата -> времена
	Slots map[string][]SlotChoiceResponse `json:"slots"`

	IsConsultation bool `json:"isConsultation"`

	// Денормализованные данные курса
	CourseName     string  `json:"courseName"`
	CoursePosition *string `json:"coursePosition,omitempty"`

	CalendarEventID *string `json:"calendarEventId,omitempty"`

	CancellationReason *string `json:"cancellationReason,omitempty"`
	CancelledAt        *string `json:"cancelledAt,omitempty"` // ISO 8601 format

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	resp := &BookingResponse{
		ID:              b.ID,
		UserID:          b.UserID,
		CourseID:        b.CourseID,
		TrainingType:    string(b.TrainingType),
		PackageType:     b.PackageType,
		TotalPrice:      b.TotalPrice,
		Status:          string(b.Status),
		Slots:           fromDomainSlots(b.Availability),
		IsConsultation:  b.IsConsultation,
		CourseName:      b.CourseName,
		CoursePosition:  b.CoursePosition,
		CalendarEventID: b.CalendarEventID,

		CancellationReason: b.CancellationReason,

		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}

	if b.CancelledAt != nil {
		cancelled := b.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelled
	}

	return resp
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	out := make([]BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, *FromDomainBooking(b))
	}
	return &BookingListResponse{Bookings: out}
}

// ToDomainBookingStatus конвертирует строковый статус в domain.BookingStatus
func ToDomainBookingStatus(s string) (domain.BookingStatus, error) {
	switch domain.BookingStatus(s) {
	case domain.StatusPending:
		return domain.StatusPending, nil
	case domain.StatusConfirmed:
		return domain.StatusConfirmed, nil
	case domain.StatusCompleted:
		return domain.StatusCompleted, nil
	case domain.StatusCancelled:
		return domain.StatusCancelled, nil
	default:
		return "", ErrInvalidStatus
	}
}

func fromDomainSlots(m domain.AvailabilityMap) map[string][]SlotChoiceResponse {
	out := make(map[string][]SlotChoiceResponse, len(m))
	for date, choices := range m {
		day := make([]SlotChoiceResponse, 0, len(choices))
		for _, c := range choices {
			day = append(day, SlotChoiceResponse{Time: c.Time.String()})
		}
		out[date] = day
	}
	return out
}
