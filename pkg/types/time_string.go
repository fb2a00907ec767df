package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"time"
)

// timeStringLayout формат времени HH:MM
const timeStringLayout = "15:04"

// minutesPerDay количество минут в сутках
const minutesPerDay = 24 * 60

var (
	// ErrInvalidTimeString возвращается при некорректном формате времени
	ErrInvalidTimeString = errors.New("invalid time string format")

	// ErrTimeOverflow возвращается, когда арифметика выходит за пределы суток.
	// Рабочие часы не пересекают полночь, поэтому переполнение - это всегда ошибка,
	// а не повод для "заворачивания" времени на следующий день.
	ErrTimeOverflow = errors.New("time arithmetic overflows past midnight")
)

// TimeString время в формате "HH:MM" (настенные часы, без таймзоны).
// Вся арифметика выполняется в минутах от начала дня.
type TimeString string

// NewTimeString создает TimeString из time.Time (берёт только часы и минуты)
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(timeStringLayout))
}

// NewTimeStringFromString парсит строку "HH:MM" в TimeString
func NewTimeStringFromString(s string) (TimeString, error) {
	t, err := time.Parse(timeStringLayout, s)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
	}
	return NewTimeString(t), nil
}

// Validate проверяет, что значение соответствует формату "HH:MM"
func (ts TimeString) Validate() error {
	if _, err := time.Parse(timeStringLayout, string(ts)); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidTimeString, string(ts))
	}
	return nil
}

// IsZero возвращает true для пустого значения
func (ts TimeString) IsZero() bool {
	return ts == ""
}

// String возвращает строковое представление "HH:MM"
func (ts TimeString) String() string {
	return string(ts)
}

// MinutesOfDay возвращает количество минут от полуночи.
// Для некорректного значения возвращает ошибку.
func (ts TimeString) MinutesOfDay() (int, error) {
	t, err := time.Parse(timeStringLayout, string(ts))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeString, string(ts))
	}
	return t.Hour()*60 + t.Minute(), nil
}

// AddMinutes возвращает время через minutes минут.
// Выход за пределы суток считается ошибкой (ErrTimeOverflow), а не переносом на завтра.
func (ts TimeString) AddMinutes(minutes int) (TimeString, error) {
	current, err := ts.MinutesOfDay()
	if err != nil {
		return "", err
	}

	total := current + minutes
	if total > minutesPerDay || total < 0 {
		return "", fmt.Errorf("%w: %s + %d min", ErrTimeOverflow, ts, minutes)
	}

	// 24:00 представить в "15:04" нельзя, такой результат тоже считаем переполнением
	if total == minutesPerDay {
		return "", fmt.Errorf("%w: %s + %d min", ErrTimeOverflow, ts, minutes)
	}

	return TimeString(fmt.Sprintf("%02d:%02d", total/60, total%60)), nil
}

// IsBefore возвращает true, если ts строго раньше other
func (ts TimeString) IsBefore(other TimeString) bool {
	a, errA := ts.MinutesOfDay()
	b, errB := other.MinutesOfDay()
	if errA != nil || errB != nil {
		return false
	}
	return a < b
}

// IsAfter возвращает true, если ts строго позже other
func (ts TimeString) IsAfter(other TimeString) bool {
	a, errA := ts.MinutesOfDay()
	b, errB := other.MinutesOfDay()
	if errA != nil || errB != nil {
		return false
	}
	return a > b
}

// Equal возвращает true, если времена совпадают с точностью до минуты
func (ts TimeString) Equal(other TimeString) bool {
	a, errA := ts.MinutesOfDay()
	b, errB := other.MinutesOfDay()
	if errA != nil || errB != nil {
		return ts == other
	}
	return a == b
}

// Value реализует driver.Valuer для записи в БД
func (ts TimeString) Value() (driver.Value, error) {
	if err := ts.Validate(); err != nil {
		return nil, err
	}
	return string(ts), nil
}

// Scan реализует sql.Scanner для чтения из БД.
// Postgres может вернуть TIME как строку "15:04:05" или как []byte.
func (ts *TimeString) Scan(src interface{}) error {
	switch v := src.(type) {
	case string:
		return ts.scanString(v)
	case []byte:
		return ts.scanString(string(v))
	case time.Time:
		*ts = NewTimeString(v)
		return nil
	case nil:
		*ts = ""
		return nil
	default:
		return fmt.Errorf("%w: cannot scan %T", ErrInvalidTimeString, src)
	}
}

func (ts *TimeString) scanString(s string) error {
	// Отрезаем секунды, если БД вернула "15:04:05"
	if len(s) > 5 {
		s = s[:5]
	}
	parsed, err := NewTimeStringFromString(s)
	if err != nil {
		return err
	}
	*ts = parsed
	return nil
}
