package get_availability

import (
	"time"

	"github.com/m04kA/REBALL-BookingService/pkg/types"
)

// Request модель запроса таблицы доступности на месяц
type Request struct {
	Year  int        // Календарный год
	Month time.Month // Месяц (1-12)
}

// Response модель ответа: таблица доступности по дням
type Response struct {
	Year  int               // Год, на который запрашивалась таблица
	Month time.Month        // Месяц
	Days  map[string][]Slot // ISO дата -> слоты в фиксированном порядке
}

// Slot вычисленное состояние одного слота
type Slot struct {
	ID                  string           // Детерминированный "{date}-{time}"
	Time                types.TimeString // Время начала слота
	Available           bool             // Остались ли места
	Spots               int              // Свободных мест (с учётом hold'ов)
	MaxSpots            int              // Вместимость слота
	ConflictingBookings int              // Конфликтующих бронирований (без hold'ов)
}
