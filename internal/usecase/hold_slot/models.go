package hold_slot

import (
	"time"

	"github.com/m04kA/REBALL-BookingService/pkg/types"
)

// Request модель запроса на временную бронь слота
type Request struct {
	UserID int64            // ID пользователя (из сессии)
	Date   string           // ISO дата YYYY-MM-DD
	Time   types.TimeString // Время слота из фиксированной сетки
}

// Response модель ответа с созданным hold
type Response struct {
	HoldToken string           // Токен для конвертации или освобождения
	SlotID    string           // Детерминированный ID слота "{date}-{time}"
	Date      string           // Дата слота
	Time      types.TimeString // Время слота
	ExpiresAt time.Time        // Момент истечения hold
}
