package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"time"
)

// timeFormat формат времени HH:MM
const timeFormat = "15:04"

var (
	// ErrInvalidTimeString возвращается при некорректном формате времени
	ErrInvalidTimeString = errors.New("invalid time string format")
)

// TimeString строковое представление времени в формате HH:MM.
// Используется для временных меток слотов вместо time.Time, чтобы не
// тащить дату и часовой пояс туда, где нужна только метка "09:00".
type TimeString string

// NewTimeString создает TimeString из time.Time (берёт только часы и минуты)
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(timeFormat))
}

// NewTimeStringFromString создает TimeString из строки с валидацией формата
func NewTimeStringFromString(s string) (TimeString, error) {
	if _, err := time.Parse(timeFormat, s); err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
	}
	return TimeString(s), nil
}

// String возвращает строковое представление
func (t TimeString) String() string {
	return string(t)
}

// parse парсит TimeString в time.Time (дата фиктивная)
func (t TimeString) parse() (time.Time, error) {
	parsed, err := time.Parse(timeFormat, string(t))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}
	return parsed, nil
}

// IsBefore возвращает true, если t строго раньше other
func (t TimeString) IsBefore(other TimeString) bool {
	a, err := t.parse()
	if err != nil {
		return false
	}
	b, err := other.parse()
	if err != nil {
		return false
	}
	return a.Before(b)
}

// IsAfter возвращает true, если t строго позже other
func (t TimeString) IsAfter(other TimeString) bool {
	a, err := t.parse()
	if err != nil {
		return false
	}
	b, err := other.parse()
	if err != nil {
		return false
	}
	return a.After(b)
}

// AddMinutes возвращает новое время, смещённое на minutes минут вперёд.
// Выход за границы суток считается ошибкой - слоты не пересекают полночь.
func (t TimeString) AddMinutes(minutes int) (TimeString, error) {
	parsed, err := t.parse()
	if err != nil {
		return "", err
	}

	shifted := parsed.Add(time.Duration(minutes) * time.Minute)
	if shifted.Day() != parsed.Day() {
		return "", fmt.Errorf("%w: %q + %d minutes crosses midnight", ErrInvalidTimeString, string(t), minutes)
	}

	return TimeString(shifted.Format(timeFormat)), nil
}

// Value реализует driver.Valuer для записи в БД
func (t TimeString) Value() (driver.Value, error) {
	return string(t), nil
}

// Scan реализует sql.Scanner для чтения из БД.
// Поддерживает text, bytea и time колонки.
func (t *TimeString) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*t = ""
		return nil
	case string:
		// PostgreSQL time колонка приходит как "09:00:00"
		*t = TimeString(trimSeconds(v))
		return nil
	case []byte:
		*t = TimeString(trimSeconds(string(v)))
		return nil
	case time.Time:
		*t = NewTimeString(v)
		return nil
	default:
		return fmt.Errorf("%w: unsupported scan type %T", ErrInvalidTimeString, src)
	}
}

// trimSeconds обрезает "09:00:00" до "09:00"
func trimSeconds(s string) string {
	if len(s) > 5 {
		return s[:5]
	}
	return s
}
