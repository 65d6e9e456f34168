package types

import (
	"database/sql/driver"
	"fmt"
	"time"
)

// TimeString время в формате "HH:MM" (24-часовой формат)
// Используется для работы со временем слотов без привязки к дате и таймзоне.
// Внутри сервиса все вычисления идут в минутах от полуночи,
// TimeString живёт только на границах: БД и HTTP ответ.
type TimeString string

// NewTimeString создает TimeString из time.Time (отбрасывает секунды)
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format("15:04"))
}

// NewTimeStringFromString создает TimeString из строки с валидацией формата
func NewTimeStringFromString(s string) (TimeString, error) {
	if _, err := time.Parse("15:04", s); err != nil {
		return "", fmt.Errorf("invalid time format %q, expected HH:MM: %v", s, err)
	}
	return TimeString(s), nil
}

// FromMinutes создает TimeString из минут от полуночи (с нулевым паддингом)
func FromMinutes(minutes int) TimeString {
	return TimeString(fmt.Sprintf("%02d:%02d", minutes/60, minutes%60))
}

// Minutes возвращает количество минут от полуночи
// Для некорректного значения возвращает ошибку - граница загрузки данных
// обязана отдавать только валидные значения
func (t TimeString) Minutes() (int, error) {
	parsed, err := time.Parse("15:04", string(t))
	if err != nil {
		return 0, fmt.Errorf("invalid time format %q, expected HH:MM: %v", string(t), err)
	}
	return parsed.Hour()*60 + parsed.Minute(), nil
}

// String возвращает строковое представление "HH:MM"
func (t TimeString) String() string {
	return string(t)
}

// IsValid проверяет корректность формата
func (t TimeString) IsValid() bool {
	_, err := time.Parse("15:04", string(t))
	return err == nil
}

// Scan реализует sql.Scanner
// Postgres TIME колонки приходят как строка "HH:MM:SS" или time.Time -
// нормализуем к "HH:MM"
func (t *TimeString) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*t = ""
		return nil
	case string:
		return t.scanString(v)
	case []byte:
		return t.scanString(string(v))
	case time.Time:
		*t = NewTimeString(v)
		return nil
	default:
		return fmt.Errorf("types.TimeString: cannot scan %T", value)
	}
}

func (t *TimeString) scanString(s string) error {
	if len(s) >= 5 {
		s = s[:5]
	}
	ts, err := NewTimeStringFromString(s)
	if err != nil {
		return fmt.Errorf("types.TimeString: %v", err)
	}
	*t = ts
	return nil
}

// Value реализует driver.Valuer
func (t TimeString) Value() (driver.Value, error) {
	if t == "" {
		return nil, nil
	}
	return string(t), nil
}
