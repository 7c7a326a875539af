package create_booking

import (
	"time"

	"github.com/m04kA/REBALL-BookingService/internal/domain"
	createBooking "github.com/m04kA/REBALL-BookingService/internal/usecase/create_booking"
	"github.com/m04kA/REBALL-BookingService/pkg/types"
)

// SlotChoiceRequest выбранное время внутри одного дня
type SlotChoiceRequest struct {
	Time string `json:"time"`
}

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	CourseID       int64                          `json:"courseId"`
	TrainingType   string                         `json:"trainingType"`
	PackageType    string                         `json:"packageType"`
	TotalPrice     float64                        `json:"totalPrice"`
	Slots          map[string][]SlotChoiceRequest `json:"slots"`
	IsConsultation bool                           `json:"isConsultation"`
	HoldToken      *string                        `json:"holdToken,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
// с валидацией формата времени
func (r *CreateBookingRequest) ToUseCaseRequest(userID int64) (*createBooking.Request, error) {
	slots := make(domain.AvailabilityMap, len(r.Slots))
	for date, choices := range r.Slots {
		day := make([]domain.SlotChoice, 0, len(choices))
		for _, c := range choices {
			t, err := types.NewTimeStringFromString(c.Time)
			if err != nil {
				return nil, err
			}
			day = append(day, domain.SlotChoice{Time: t})
		}
		slots[date] = day
	}

	return &createBooking.Request{
		UserID:         userID,
		CourseID:       r.CourseID,
		TrainingType:   domain.TrainingType(r.TrainingType),
		PackageType:    r.PackageType,
		TotalPrice:     r.TotalPrice,
		Slots:          slots,
		IsConsultation: r.IsConsultation,
		HoldToken:      r.HoldToken,
	}, nil
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID             int64                          `json:"id"`
	UserID         int64                          `json:"userId"`
	CourseID       int64                          `json:"courseId"`
	TrainingType   string                         `json:"trainingType"`
	PackageType    string                         `json:"packageType"`
	TotalPrice     float64                        `json:"totalPrice"`
	Status         string                         `json:"status"`
	Slots          map[string][]SlotChoiceRequest `json:"slots"`
	IsConsultation bool                           `json:"isConsultation"`
	CourseName     string                         `json:"courseName"`
	CoursePosition *string                        `json:"coursePosition,omitempty"`
	CreatedAt      time.Time                      `json:"createdAt"`
	UpdatedAt      time.Time                      `json:"updatedAt"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	slots := make(map[string][]SlotChoiceRequest, len(resp.Slots))
	for date, choices := range resp.Slots {
		day := make([]SlotChoiceRequest, 0, len(choices))
		for _, c := range choices {
			day = append(day, SlotChoiceRequest{Time: c.Time.String()})
		}
		slots[date] = day
	}

	return &BookingResponse{
		ID:             resp.ID,
		UserID:         resp.UserID,
		CourseID:       resp.CourseID,
		TrainingType:   resp.TrainingType,
		PackageType:    resp.PackageType,
		TotalPrice:     resp.TotalPrice,
		Status:         resp.Status,
		Slots:          slots,
		IsConsultation: resp.IsConsultation,
		CourseName:     resp.CourseName,
		CoursePosition: resp.CoursePosition,
		CreatedAt:      resp.CreatedAt,
		UpdatedAt:      resp.UpdatedAt,
	}
}
