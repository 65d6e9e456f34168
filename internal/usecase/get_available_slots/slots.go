package get_available_slots

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

// interval полуинтервал [start, end) в минутах от полуночи
type interval struct {
	start int
	end   int
}

// overlaps проверяет реальное пересечение двух полуинтервалов
// Используются строгие неравенства: интервалы, граничащие концами,
// НЕ пересекаются
//
// Примеры:
// - Слот 11:30-12:30, перерыв 12:00-13:00 → ЕСТЬ пересечение (12:00-12:30)
// - Слот 13:30-14:00, блокировка 14:00-15:00 → НЕТ пересечения (граничат)
// - Слот 15:00-15:30, блокировка 14:00-15:00 → НЕТ пересечения (граничат)
func overlaps(a, b interval) bool {
	return a.start < b.end && a.end > b.start
}

func overlapsAny(slot interval, busy []interval) bool {
	for _, b := range busy {
		if overlaps(slot, b) {
			return true
		}
	}
	return false
}

// slotParams ограничения генерации слотов одного сотрудника
type slotParams struct {
	employeeID   int64
	employeeName string

	workWindow     interval  // сырое рабочее окно сотрудника
	businessWindow interval  // рабочие часы компании (первый период)
	breakWindow    *interval // перерыв сотрудника, если задан

	companyBlocks  []interval // частичные блокировки уровня компании
	employeeBlocks []interval // частичные блокировки сотрудника
	bookings       []interval // активные бронирования сотрудника

	serviceDuration int // длительность услуги в минутах
	slotStep        int // шаг между кандидатами (slot_duration)
	minStart        int // минимально допустимое начало слота; 0 для будущих дат
}

// generateEmployeeSlots строит список доступных слотов одного сотрудника
//
// Эффективное окно - пересечение рабочего окна сотрудника и рабочих часов
// компании. Кандидаты идут от начала эффективного окна с шагом slotStep;
// последний кандидат - тот, чья услуга заканчивается не позже конца окна.
// Каждая проверка пересечения отбрасывает слот независимо от остальных
func generateEmployeeSlots(p slotParams) []domain.AvailableSlot {
	if p.serviceDuration <= 0 || p.slotStep <= 0 {
		return []domain.AvailableSlot{}
	}

	effStart := p.workWindow.start
	if p.businessWindow.start > effStart {
		effStart = p.businessWindow.start
	}
	effEnd := p.workWindow.end
	if p.businessWindow.end < effEnd {
		effEnd = p.businessWindow.end
	}

	slots := make([]domain.AvailableSlot, 0)

	for t := effStart; t+p.serviceDuration <= effEnd; t += p.slotStep {
		if t < p.minStart {
			continue
		}

		candidate := interval{start: t, end: t + p.serviceDuration}

		if p.breakWindow != nil && overlaps(candidate, *p.breakWindow) {
			continue
		}
		if overlapsAny(candidate, p.companyBlocks) {
			continue
		}
		if overlapsAny(candidate, p.employeeBlocks) {
			continue
		}
		if overlapsAny(candidate, p.bookings) {
			continue
		}

		slots = append(slots, domain.AvailableSlot{
			Time:         types.FromMinutes(t),
			EmployeeID:   p.employeeID,
			EmployeeName: p.employeeName,
		})
	}

	return slots
}

// toInterval конвертирует пару "HH:MM" в полуинтервал минут от полуночи
func toInterval(start, end types.TimeString) (interval, error) {
	s, err := start.Minutes()
	if err != nil {
		return interval{}, err
	}
	e, err := end.Minutes()
	if err != nil {
		return interval{}, err
	}
	return interval{start: s, end: e}, nil
}

// partialBlockIntervals конвертирует частичные блокировки в busy-интервалы
// Блокировки на весь день обрабатываются отдельно и здесь пропускаются
func partialBlockIntervals(blocks []*domain.BlockedSlot) ([]interval, error) {
	busy := make([]interval, 0, len(blocks))
	for _, block := range blocks {
		if block.IsFullDay() {
			continue
		}
		iv, err := toInterval(*block.StartTime, *block.EndTime)
		if err != nil {
			return nil, fmt.Errorf("%w: malformed blocked slot id=%d: %v", ErrInternal, block.ID, err)
		}
		busy = append(busy, iv)
	}
	return busy, nil
}

// isSameDay проверяет, что две даты относятся к одному и тому же дню
func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
