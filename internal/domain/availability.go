package domain

import (
	"errors"
	"fmt"

	"github.com/turki-wellness/TURKI-BookingService/pkg/types"
)

// ErrInvalidGrid возвращается при некорректных параметрах сетки слотов
var ErrInvalidGrid = errors.New("domain: invalid slot grid parameters")

// GenerateSlotTimes генерирует все возможные времена начала слотов на день:
// от operatingStart до operatingEnd включительно с шагом intervalMinutes.
//
// Конечная граница сетки (operatingEnd) намеренно входит в результат:
// слот может ЛЕГАЛЬНО начинаться ровно в закрытие, хотя ни одна услуга
// туда уже не влезет - это отсекает проверка выхода за рабочие часы
// в ComputeAvailability, а не генерация сетки.
func GenerateSlotTimes(operatingStart, operatingEnd types.TimeString, intervalMinutes int) ([]types.TimeString, error) {
	if intervalMinutes <= 0 {
		return nil, fmt.Errorf("%w: interval must be positive, got %d", ErrInvalidGrid, intervalMinutes)
	}
	if err := operatingStart.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidGrid, err)
	}
	if err := operatingEnd.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidGrid, err)
	}
	if operatingStart.IsAfter(operatingEnd) {
		return nil, fmt.Errorf("%w: start %s is after end %s", ErrInvalidGrid, operatingStart, operatingEnd)
	}

	slots := make([]types.TimeString, 0)
	current := operatingStart

	for current.IsBefore(operatingEnd) || current.Equal(operatingEnd) {
		slots = append(slots, current)

		next, err := current.AddMinutes(intervalMinutes)
		if err != nil {
			// Следующий шаг ушел за полночь - сетка закончилась
			break
		}
		current = next
	}

	return slots, nil
}

// ComputeEndTime вычисляет время окончания услуги.
// Чистая арифметика в минутах дня; выход за полночь - ошибка, а не перенос.
func ComputeEndTime(start types.TimeString, durationMinutes int) (types.TimeString, error) {
	return start.AddMinutes(durationMinutes)
}

// IntervalsOverlap проверяет пересечение двух полуоткрытых интервалов [start, end).
//
// Пересечение есть, только если startA < endB И endA > startB (строгие неравенства).
// Граничные случаи пересечением НЕ считаются: бронирование, заканчивающееся ровно
// там, где начинается другое, не конфликтует - встык бронировать можно.
//
// Примеры:
//   - [11:30, 12:00) и [11:20, 11:40) → пересекаются
//   - [11:30, 12:00) и [11:00, 11:30) → НЕ пересекаются (граничат)
//   - [11:30, 12:00) и [12:00, 12:30) → НЕ пересекаются (граничат)
func IntervalsOverlap(startA, endA, startB, endB types.TimeString) bool {
	return startA.IsBefore(endB) && endA.IsAfter(startB)
}

// ComputeAvailability строит размеченную сетку слотов для услуги заданной длительности.
//
// Для каждого кандидата t из сетки:
//  1. Вычисляется tEnd = t + durationMinutes.
//  2. Если tEnd строго позже operatingEnd - слот недоступен (услуга выйдет
//     за время закрытия), независимо от конфликтов с бронированиями.
//  3. Иначе слот недоступен, если ВЕСЬ предполагаемый интервал [t, tEnd)
//     пересекается хотя бы с одним бронированием. Проверка всего интервала,
//     а не только момента начала, не дает длинной услуге втиснуться в
//     слишком маленький промежуток со свободным началом.
//
// Функция чистая: не фильтрует бронирования по филиалу, дате или статусу -
// вызывающий обязан передать уже отфильтрованный набор (хранилище исключает
// отмененные). Результат не зависит от порядка existingBookings.
func ComputeAvailability(
	existingBookings []*Booking,
	durationMinutes int,
	operatingStart, operatingEnd types.TimeString,
	intervalMinutes int,
) ([]TimeSlot, error) {
	if durationMinutes <= 0 {
		return nil, fmt.Errorf("%w: duration must be positive, got %d", ErrInvalidGrid, durationMinutes)
	}

	slotTimes, err := GenerateSlotTimes(operatingStart, operatingEnd, intervalMinutes)
	if err != nil {
		return nil, err
	}

	result := make([]TimeSlot, 0, len(slotTimes))

	for _, start := range slotTimes {
		end, err := ComputeEndTime(start, durationMinutes)
		if err != nil {
			// Конец услуги за полночь - заведомо позже закрытия
			result = append(result, TimeSlot{Time: start, Available: false})
			continue
		}

		if end.IsAfter(operatingEnd) {
			result = append(result, TimeSlot{Time: start, Available: false})
			continue
		}

		result = append(result, TimeSlot{
			Time:      start,
			Available: !hasConflict(start, end, existingBookings),
		})
	}

	return result, nil
}

// hasConflict проверяет пересечение интервала [start, end) с бронированиями
func hasConflict(start, end types.TimeString, bookings []*Booking) bool {
	for _, b := range bookings {
		if IntervalsOverlap(start, end, b.StartTime, b.EndTime) {
			return true
		}
	}
	return false
}
