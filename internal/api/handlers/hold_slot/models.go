package hold_slot

import (
	"time"

	holdSlot "github.com/m04kA/REBALL-BookingService/internal/usecase/hold_slot"
	"github.com/m04kA/REBALL-BookingService/pkg/types"
)

// HoldSlotRequest HTTP request model
type HoldSlotRequest struct {
	Date string `json:"date"` // YYYY-MM-DD
	Time string `json:"time"` // HH:MM
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
// с валидацией формата времени
func (r *HoldSlotRequest) ToUseCaseRequest(userID int64) (*holdSlot.Request, error) {
	t, err := types.NewTimeStringFromString(r.Time)
	if err != nil {
		return nil, err
	}

	return &holdSlot.Request{
		UserID: userID,
		Date:   r.Date,
		Time:   t,
	}, nil
}

// HoldSlotResponse HTTP response model
type HoldSlotResponse struct {
	HoldToken string    `json:"holdToken"`
	SlotID    string    `json:"slotId"`
	Date      string    `json:"date"`
	Time      string    `json:"time"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *holdSlot.Response) *HoldSlotResponse {
	return &HoldSlotResponse{
		HoldToken: resp.HoldToken,
		SlotID:    resp.SlotID,
		Date:      resp.Date,
		Time:      resp.Time.String(),
		ExpiresAt: resp.ExpiresAt,
	}
}
