package get_available_slots

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	catalogRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/catalog"
	companyRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/company"
	staffRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/staff"
	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

// UseCase use case для получения доступных слотов записи
//
// Чистое чтение: для каждого запроса все факты загружаются заново,
// результаты не кэшируются. Бронирование, принятое между двумя вызовами,
// может сделать ранее выданный слот неактуальным - путь записи обязан
// перепроверять доступность в момент создания брони
type UseCase struct {
	companyRepo     CompanyRepository
	catalogRepo     CatalogRepository
	staffRepo       StaffRepository
	blockedSlotRepo BlockedSlotRepository
	bookingRepo     BookingRepository
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	companyRepo CompanyRepository,
	catalogRepo CatalogRepository,
	staffRepo StaffRepository,
	blockedSlotRepo BlockedSlotRepository,
	bookingRepo BookingRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		companyRepo:     companyRepo,
		catalogRepo:     catalogRepo,
		staffRepo:       staffRepo,
		blockedSlotRepo: blockedSlotRepo,
		bookingRepo:     bookingRepo,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case получения доступных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: company=%d, service=%d, employee=%v, date=%s",
		req.CompanyID, req.ServiceID, req.EmployeeID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных - до любых обращений к хранилищу
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()
	weekday := int(req.Date.Weekday())

	// 3. Независимые загрузки уровня компании выполняются параллельно
	var (
		hours         *domain.BusinessHours
		settings      *domain.ScheduleSettings
		companyBlocks []*domain.BlockedSlot
		service       *domain.Service
		employees     []*domain.Employee
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		h, err := uc.companyRepo.GetBusinessHours(gctx, req.CompanyID, weekday)
		if err != nil {
			// Отсутствие строки рабочих часов эквивалентно выходному дню
			if errors.Is(err, companyRepo.ErrBusinessHoursNotFound) {
				return nil
			}
			return fmt.Errorf("%w: failed to get business hours: %v", ErrInternal, err)
		}
		hours = h
		return nil
	})

	g.Go(func() error {
		s, err := uc.companyRepo.GetScheduleSettings(gctx, req.CompanyID)
		if err != nil {
			// Компания без собственной конфигурации получает дефолты
			if errors.Is(err, companyRepo.ErrSettingsNotFound) {
				settings = domain.DefaultScheduleSettings(req.CompanyID)
				return nil
			}
			return fmt.Errorf("%w: failed to get schedule settings: %v", ErrInternal, err)
		}
		settings = s
		return nil
	})

	g.Go(func() error {
		blocks, err := uc.blockedSlotRepo.ListForCompany(gctx, req.CompanyID, req.Date)
		if err != nil {
			return fmt.Errorf("%w: failed to get company blocked slots: %v", ErrInternal, err)
		}
		companyBlocks = blocks
		return nil
	})

	g.Go(func() error {
		s, err := uc.catalogRepo.GetService(gctx, req.CompanyID, req.ServiceID)
		if err != nil {
			if errors.Is(err, catalogRepo.ErrServiceNotFound) {
				return ErrServiceNotFound
			}
			return fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
		}
		service = s
		return nil
	})

	g.Go(func() error {
		list, err := uc.catalogRepo.ListEligibleEmployees(gctx, req.CompanyID, req.ServiceID, req.EmployeeID)
		if err != nil {
			return fmt.Errorf("%w: failed to get eligible employees: %v", ErrInternal, err)
		}
		employees = list
		return nil
	})

	if err := g.Wait(); err != nil {
		if errors.Is(err, ErrServiceNotFound) {
			uc.logger.Warn("GetAvailableSlots: service id=%d not found in company=%d", req.ServiceID, req.CompanyID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("GetAvailableSlots: company-level load failed: company=%d: %v", req.CompanyID, err)
		return nil, err
	}

	// 4. Short-circuit: компания не работает в этот день недели
	if hours == nil || !hours.IsOpen {
		uc.logger.Info("GetAvailableSlots: company=%d is closed on %s", req.CompanyID, req.Date.Format(domain.DateFormat))
		return emptyResponse(MsgBusinessClosed), nil
	}

	// 5. Short-circuit: дата закрыта блокировкой уровня компании на весь день
	for _, block := range companyBlocks {
		if block.IsFullDay() {
			uc.logger.Info("GetAvailableSlots: date %s is fully blocked for company=%d", req.Date.Format(domain.DateFormat), req.CompanyID)
			return emptyResponse(MsgDateBlocked), nil
		}
	}

	// 6. Short-circuit: никто не оказывает услугу
	if len(employees) == 0 {
		uc.logger.Info("GetAvailableSlots: no eligible employees for company=%d, service=%d, employee=%v",
			req.CompanyID, req.ServiceID, req.EmployeeID)
		return emptyResponse(MsgNoEligibleStaff), nil
	}

	// 7. Общие для всех сотрудников ограничения
	// Пересекается только первый период рабочих часов; второй период
	// (second_open_time/second_close_time) загружается, но окно не расширяет
	businessWindow, err := toInterval(hours.OpenTime, hours.CloseTime)
	if err != nil {
		return nil, fmt.Errorf("%w: malformed business hours for company=%d: %v", ErrInternal, req.CompanyID, err)
	}

	companyBusy, err := partialBlockIntervals(companyBlocks)
	if err != nil {
		return nil, err
	}

	// Минимальное время до записи действует только на запросы на сегодня
	minStart := 0
	if isSameDay(req.Date, now) {
		minStart = now.Hour()*60 + now.Minute() + settings.MinBookingAdvanceHours*60
	}

	// 8. Fan-out: слоты каждого сотрудника считаются независимо
	// Каждая горутина пишет только в свою ячейку results - общего
	// изменяемого состояния нет; ошибка любой подзагрузки роняет весь запрос
	results := make([][]domain.AvailableSlot, len(employees))

	eg, egctx := errgroup.WithContext(ctx)
	for i, employee := range employees {
		i, employee := i, employee
		eg.Go(func() error {
			slots, err := uc.employeeSlots(egctx, employee, req.Date, weekday,
				businessWindow, companyBusy, service.DurationMinutes, settings.SlotDurationMinutes, minStart)
			if err != nil {
				return err
			}
			results[i] = slots
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		uc.logger.Error("GetAvailableSlots: employee-level load failed: company=%d: %v", req.CompanyID, err)
		return nil, err
	}

	// 9. Fan-in: слияние и сортировка
	// Лексикографический порядок "HH:MM" совпадает с хронологическим;
	// стабильная сортировка сохраняет порядок сотрудников при равном времени,
	// поэтому повторные запросы дают идентично упорядоченный результат
	merged := make([]domain.AvailableSlot, 0)
	for _, slots := range results {
		merged = append(merged, slots...)
	}
	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].Time < merged[j].Time
	})

	uc.logger.Info("GetAvailableSlots: generated %d slots for company=%d, service=%d, date=%s",
		len(merged), req.CompanyID, req.ServiceID, req.Date.Format(domain.DateFormat))

	return &Response{Slots: merged}, nil
}

// employeeSlots загружает ограничения одного сотрудника и строит его слоты
func (uc *UseCase) employeeSlots(
	ctx context.Context,
	employee *domain.Employee,
	date time.Time,
	weekday int,
	businessWindow interval,
	companyBusy []interval,
	serviceDuration int,
	slotStep int,
	minStart int,
) ([]domain.AvailableSlot, error) {
	// Отсутствие полностью выключает сотрудника на дату
	absences, err := uc.staffRepo.ListAbsencesCovering(ctx, employee.ID, date)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to get absences for employee=%d: %v", ErrInternal, employee.ID, err)
	}
	if len(absences) > 0 {
		return nil, nil
	}

	// Сырое рабочее окно и перерыв в зависимости от типа сотрудника
	workWindow, breakWindow, working, err := uc.workWindow(ctx, employee, date, weekday)
	if err != nil {
		return nil, err
	}
	if !working {
		return nil, nil
	}

	blocks, err := uc.blockedSlotRepo.ListForEmployee(ctx, employee.ID, date)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to get blocked slots for employee=%d: %v", ErrInternal, employee.ID, err)
	}

	// Персональная блокировка на весь день выключает сотрудника целиком
	for _, block := range blocks {
		if block.IsFullDay() {
			return nil, nil
		}
	}

	employeeBusy, err := partialBlockIntervals(blocks)
	if err != nil {
		return nil, err
	}

	bookings, err := uc.bookingRepo.ListBlockingForEmployee(ctx, employee.ID, date)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to get bookings for employee=%d: %v", ErrInternal, employee.ID, err)
	}

	bookingBusy := make([]interval, 0, len(bookings))
	for _, booking := range bookings {
		start, err := booking.BookingTime.Minutes()
		if err != nil {
			return nil, fmt.Errorf("%w: malformed booking time for booking id=%d: %v", ErrInternal, booking.ID, err)
		}
		bookingBusy = append(bookingBusy, interval{start: start, end: start + booking.DurationMinutes})
	}

	return generateEmployeeSlots(slotParams{
		employeeID:      employee.ID,
		employeeName:    employee.Name,
		workWindow:      workWindow,
		businessWindow:  businessWindow,
		breakWindow:     breakWindow,
		companyBlocks:   companyBusy,
		employeeBlocks:  employeeBusy,
		bookings:        bookingBusy,
		serviceDuration: serviceDuration,
		slotStep:        slotStep,
		minStart:        minStart,
	}), nil
}

// workWindow возвращает сырое рабочее окно сотрудника на дату
// working=false означает, что сотрудник не работает: нет строки
// расписания/доступности или стоит выходной
func (uc *UseCase) workWindow(ctx context.Context, employee *domain.Employee, date time.Time, weekday int) (interval, *interval, bool, error) {
	switch employee.EmployeeType {
	case domain.EmployeeTypeFixed:
		schedule, err := uc.staffRepo.GetScheduleForWeekday(ctx, employee.ID, weekday)
		if err != nil {
			if errors.Is(err, staffRepo.ErrScheduleNotFound) {
				return interval{}, nil, false, nil
			}
			return interval{}, nil, false, fmt.Errorf("%w: failed to get schedule for employee=%d: %v", ErrInternal, employee.ID, err)
		}
		if !schedule.IsWorking {
			return interval{}, nil, false, nil
		}
		return buildWindow(employee.ID, schedule.StartTime, schedule.EndTime, schedule.BreakStart, schedule.BreakEnd)

	case domain.EmployeeTypeAutonomous:
		availability, err := uc.staffRepo.GetAvailabilityForDate(ctx, employee.ID, date)
		if err != nil {
			if errors.Is(err, staffRepo.ErrAvailabilityNotFound) {
				return interval{}, nil, false, nil
			}
			return interval{}, nil, false, fmt.Errorf("%w: failed to get availability for employee=%d: %v", ErrInternal, employee.ID, err)
		}
		return buildWindow(employee.ID, availability.StartTime, availability.EndTime, availability.BreakStart, availability.BreakEnd)

	default:
		uc.logger.Warn("GetAvailableSlots: unknown employee type %q for employee=%d", employee.EmployeeType, employee.ID)
		return interval{}, nil, false, nil
	}
}

// buildWindow собирает рабочее окно и перерыв из "HH:MM" значений
// Перерыв учитывается только когда заданы обе границы
func buildWindow(employeeID int64, start, end types.TimeString, breakStart, breakEnd *types.TimeString) (interval, *interval, bool, error) {
	window, err := toInterval(start, end)
	if err != nil {
		return interval{}, nil, false, fmt.Errorf("%w: malformed work window for employee=%d: %v", ErrInternal, employeeID, err)
	}

	if breakStart == nil || breakEnd == nil {
		return window, nil, true, nil
	}

	breakWindow, err := toInterval(*breakStart, *breakEnd)
	if err != nil {
		return interval{}, nil, false, fmt.Errorf("%w: malformed break window for employee=%d: %v", ErrInternal, employeeID, err)
	}

	return window, &breakWindow, true, nil
}
