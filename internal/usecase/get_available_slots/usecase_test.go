package get_available_slots

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	blockedSlotRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/blockedslot"
	catalogRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/catalog"
	companyRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/company"
	staffRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/staff"
	"github.com/m04kA/SMC-AvailabilityService/pkg/ptr"
	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

// testDate понедельник
var testDate = time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeTimeProvider struct {
	now time.Time
}

func (p *fakeTimeProvider) Now() time.Time {
	return p.now
}

type fakeCompanyRepo struct {
	getBusinessHours    func(ctx context.Context, companyID int64, dayOfWeek int) (*domain.BusinessHours, error)
	getScheduleSettings func(ctx context.Context, companyID int64) (*domain.ScheduleSettings, error)
}

func (f *fakeCompanyRepo) GetBusinessHours(ctx context.Context, companyID int64, dayOfWeek int) (*domain.BusinessHours, error) {
	return f.getBusinessHours(ctx, companyID, dayOfWeek)
}

func (f *fakeCompanyRepo) GetScheduleSettings(ctx context.Context, companyID int64) (*domain.ScheduleSettings, error) {
	return f.getScheduleSettings(ctx, companyID)
}

type fakeCatalogRepo struct {
	getService            func(ctx context.Context, companyID, serviceID int64) (*domain.Service, error)
	listEligibleEmployees func(ctx context.Context, companyID, serviceID int64, employeeID *int64) ([]*domain.Employee, error)
}

func (f *fakeCatalogRepo) GetService(ctx context.Context, companyID, serviceID int64) (*domain.Service, error) {
	return f.getService(ctx, companyID, serviceID)
}

func (f *fakeCatalogRepo) ListEligibleEmployees(ctx context.Context, companyID, serviceID int64, employeeID *int64) ([]*domain.Employee, error) {
	return f.listEligibleEmployees(ctx, companyID, serviceID, employeeID)
}

type fakeStaffRepo struct {
	getScheduleForWeekday  func(ctx context.Context, employeeID int64, dayOfWeek int) (*domain.EmployeeSchedule, error)
	getAvailabilityForDate func(ctx context.Context, employeeID int64, date time.Time) (*domain.EmployeeAvailability, error)
	listAbsencesCovering   func(ctx context.Context, employeeID int64, date time.Time) ([]*domain.EmployeeAbsence, error)
}

func (f *fakeStaffRepo) GetScheduleForWeekday(ctx context.Context, employeeID int64, dayOfWeek int) (*domain.EmployeeSchedule, error) {
	return f.getScheduleForWeekday(ctx, employeeID, dayOfWeek)
}

func (f *fakeStaffRepo) GetAvailabilityForDate(ctx context.Context, employeeID int64, date time.Time) (*domain.EmployeeAvailability, error) {
	return f.getAvailabilityForDate(ctx, employeeID, date)
}

func (f *fakeStaffRepo) ListAbsencesCovering(ctx context.Context, employeeID int64, date time.Time) ([]*domain.EmployeeAbsence, error) {
	return f.listAbsencesCovering(ctx, employeeID, date)
}

type fakeBlockedSlotRepo struct {
	listForCompany  func(ctx context.Context, companyID int64, date time.Time) ([]*domain.BlockedSlot, error)
	listForEmployee func(ctx context.Context, employeeID int64, date time.Time) ([]*domain.BlockedSlot, error)
}

func (f *fakeBlockedSlotRepo) ListForCompany(ctx context.Context, companyID int64, date time.Time) ([]*domain.BlockedSlot, error) {
	return f.listForCompany(ctx, companyID, date)
}

func (f *fakeBlockedSlotRepo) ListForEmployee(ctx context.Context, employeeID int64, date time.Time) ([]*domain.BlockedSlot, error) {
	return f.listForEmployee(ctx, employeeID, date)
}

type fakeBookingRepo struct {
	listBlockingForEmployee func(ctx context.Context, employeeID int64, date time.Time) ([]*domain.Booking, error)
}

func (f *fakeBookingRepo) ListBlockingForEmployee(ctx context.Context, employeeID int64, date time.Time) ([]*domain.Booking, error) {
	return f.listBlockingForEmployee(ctx, employeeID, date)
}

// testEnv все зависимости use case с "пустыми" дефолтами:
// компания открыта 09:00-18:00, настройки дефолтные, услуга на 30 минут,
// один фиксированный сотрудник со сменой 09:00-12:00 без перерыва
type testEnv struct {
	company     *fakeCompanyRepo
	catalog     *fakeCatalogRepo
	staff       *fakeStaffRepo
	blockedSlot *fakeBlockedSlotRepo
	booking     *fakeBookingRepo
	now         time.Time
}

func newTestEnv() *testEnv {
	return &testEnv{
		company: &fakeCompanyRepo{
			getBusinessHours: func(ctx context.Context, companyID int64, dayOfWeek int) (*domain.BusinessHours, error) {
				return &domain.BusinessHours{
					CompanyID: companyID,
					DayOfWeek: dayOfWeek,
					IsOpen:    true,
					OpenTime:  "09:00",
					CloseTime: "18:00",
				}, nil
			},
			getScheduleSettings: func(ctx context.Context, companyID int64) (*domain.ScheduleSettings, error) {
				return nil, companyRepo.ErrSettingsNotFound
			},
		},
		catalog: &fakeCatalogRepo{
			getService: func(ctx context.Context, companyID, serviceID int64) (*domain.Service, error) {
				return &domain.Service{ID: serviceID, CompanyID: companyID, DurationMinutes: 30, IsActive: true}, nil
			},
			listEligibleEmployees: func(ctx context.Context, companyID, serviceID int64, employeeID *int64) ([]*domain.Employee, error) {
				return []*domain.Employee{
					{ID: 1, CompanyID: companyID, Name: "Анна", EmployeeType: domain.EmployeeTypeFixed, IsActive: true},
				}, nil
			},
		},
		staff: &fakeStaffRepo{
			getScheduleForWeekday: func(ctx context.Context, employeeID int64, dayOfWeek int) (*domain.EmployeeSchedule, error) {
				return &domain.EmployeeSchedule{
					EmployeeID: employeeID,
					DayOfWeek:  dayOfWeek,
					IsWorking:  true,
					StartTime:  "09:00",
					EndTime:    "12:00",
				}, nil
			},
			getAvailabilityForDate: func(ctx context.Context, employeeID int64, date time.Time) (*domain.EmployeeAvailability, error) {
				return nil, staffRepo.ErrAvailabilityNotFound
			},
			listAbsencesCovering: func(ctx context.Context, employeeID int64, date time.Time) ([]*domain.EmployeeAbsence, error) {
				return nil, nil
			},
		},
		blockedSlot: &fakeBlockedSlotRepo{
			listForCompany: func(ctx context.Context, companyID int64, date time.Time) ([]*domain.BlockedSlot, error) {
				return nil, nil
			},
			listForEmployee: func(ctx context.Context, employeeID int64, date time.Time) ([]*domain.BlockedSlot, error) {
				return nil, nil
			},
		},
		booking: &fakeBookingRepo{
			listBlockingForEmployee: func(ctx context.Context, employeeID int64, date time.Time) ([]*domain.Booking, error) {
				return nil, nil
			},
		},
		// За день до запрашиваемой даты - advance-notice фильтр не действует
		now: testDate.AddDate(0, 0, -1).Add(15 * time.Hour),
	}
}

func (e *testEnv) useCase() *UseCase {
	uc := NewUseCase(e.company, e.catalog, e.staff, e.blockedSlot, e.booking, nopLogger{})
	uc.timeProvider = &fakeTimeProvider{now: e.now}
	return uc
}

func validRequest() *Request {
	return &Request{CompanyID: 10, ServiceID: 20, Date: testDate}
}

func TestExecute_HappyPath(t *testing.T) {
	env := newTestEnv()

	resp, err := env.useCase().Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Empty(t, resp.Message)
	assert.Equal(t,
		[]string{"09:00", "09:30", "10:00", "10:30", "11:00", "11:30"},
		slotTimes(resp.Slots))
}

func TestExecute_Validation(t *testing.T) {
	tests := []struct {
		name string
		req  *Request
	}{
		{name: "non-positive company", req: &Request{CompanyID: 0, ServiceID: 20, Date: testDate}},
		{name: "non-positive service", req: &Request{CompanyID: 10, ServiceID: -1, Date: testDate}},
		{name: "non-positive employee", req: &Request{CompanyID: 10, ServiceID: 20, EmployeeID: ptr.Ptr(int64(0)), Date: testDate}},
		{name: "zero date", req: &Request{CompanyID: 10, ServiceID: 20}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv()
			// Валидация обязана сработать до обращений к хранилищу
			env.catalog.getService = func(ctx context.Context, companyID, serviceID int64) (*domain.Service, error) {
				t.Fatal("storage must not be touched on invalid input")
				return nil, nil
			}

			_, err := env.useCase().Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestExecute_CompanyClosed(t *testing.T) {
	t.Run("no business hours row", func(t *testing.T) {
		env := newTestEnv()
		env.company.getBusinessHours = func(ctx context.Context, companyID int64, dayOfWeek int) (*domain.BusinessHours, error) {
			return nil, companyRepo.ErrBusinessHoursNotFound
		}

		resp, err := env.useCase().Execute(context.Background(), validRequest())

		require.NoError(t, err)
		assert.Empty(t, resp.Slots)
		assert.Equal(t, MsgBusinessClosed, resp.Message)
	})

	t.Run("is_open false", func(t *testing.T) {
		env := newTestEnv()
		env.company.getBusinessHours = func(ctx context.Context, companyID int64, dayOfWeek int) (*domain.BusinessHours, error) {
			return &domain.BusinessHours{CompanyID: companyID, DayOfWeek: dayOfWeek, IsOpen: false, OpenTime: "09:00", CloseTime: "18:00"}, nil
		}

		resp, err := env.useCase().Execute(context.Background(), validRequest())

		require.NoError(t, err)
		assert.Empty(t, resp.Slots)
		assert.Equal(t, MsgBusinessClosed, resp.Message)
	})
}

func TestExecute_FullDayCompanyBlock(t *testing.T) {
	env := newTestEnv()
	env.blockedSlot.listForCompany = func(ctx context.Context, companyID int64, date time.Time) ([]*domain.BlockedSlot, error) {
		return []*domain.BlockedSlot{{ID: 1, CompanyID: companyID, BlockedDate: date}}, nil
	}

	resp, err := env.useCase().Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
	assert.Equal(t, MsgDateBlocked, resp.Message)
}

func TestExecute_NoEligibleEmployees(t *testing.T) {
	env := newTestEnv()
	env.catalog.listEligibleEmployees = func(ctx context.Context, companyID, serviceID int64, employeeID *int64) ([]*domain.Employee, error) {
		return []*domain.Employee{}, nil
	}

	resp, err := env.useCase().Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
	assert.Equal(t, MsgNoEligibleStaff, resp.Message)
}

func TestExecute_ServiceNotFound(t *testing.T) {
	env := newTestEnv()
	env.catalog.getService = func(ctx context.Context, companyID, serviceID int64) (*domain.Service, error) {
		return nil, catalogRepo.ErrServiceNotFound
	}

	_, err := env.useCase().Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestExecute_UpstreamFailure(t *testing.T) {
	env := newTestEnv()
	env.booking.listBlockingForEmployee = func(ctx context.Context, employeeID int64, date time.Time) ([]*domain.Booking, error) {
		return nil, blockedSlotRepo.ErrExecQuery
	}

	resp, err := env.useCase().Execute(context.Background(), validRequest())

	// Ошибка любой подзагрузки роняет весь запрос без частичного результата
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInternal)
	assert.Nil(t, resp)
}

func TestExecute_SameDayAdvanceNotice(t *testing.T) {
	env := newTestEnv()
	// Запрос на сегодня в 09:47, минимум 1 час до записи:
	// первый допустимый кандидат 11:00
	env.now = time.Date(2025, 6, 16, 9, 47, 0, 0, time.UTC)

	resp, err := env.useCase().Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, []string{"11:00", "11:30"}, slotTimes(resp.Slots))
}

func TestExecute_FutureDateIgnoresAdvanceNotice(t *testing.T) {
	env := newTestEnv()
	// Поздний вечер накануне: фильтр по текущему времени не действует
	env.now = time.Date(2025, 6, 15, 23, 50, 0, 0, time.UTC)

	resp, err := env.useCase().Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Len(t, resp.Slots, 6)
}

func TestExecute_CustomScheduleSettings(t *testing.T) {
	env := newTestEnv()
	env.company.getScheduleSettings = func(ctx context.Context, companyID int64) (*domain.ScheduleSettings, error) {
		return &domain.ScheduleSettings{CompanyID: companyID, SlotDurationMinutes: 60, MinBookingAdvanceHours: 2}, nil
	}

	resp, err := env.useCase().Execute(context.Background(), validRequest())

	require.NoError(t, err)
	// Шаг сетки 60 минут при длительности услуги 30
	assert.Equal(t, []string{"09:00", "10:00", "11:00"}, slotTimes(resp.Slots))
}

func TestExecute_AbsenceExcludesEmployee(t *testing.T) {
	env := newTestEnv()
	env.staff.listAbsencesCovering = func(ctx context.Context, employeeID int64, date time.Time) ([]*domain.EmployeeAbsence, error) {
		return []*domain.EmployeeAbsence{
			{EmployeeID: employeeID, StartDate: testDate.AddDate(0, 0, -2), EndDate: testDate.AddDate(0, 0, 3)},
		}, nil
	}

	resp, err := env.useCase().Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
	// Полная генерация прошла - сообщения-причины нет
	assert.Empty(t, resp.Message)
}

func TestExecute_FullDayEmployeeBlock(t *testing.T) {
	env := newTestEnv()
	env.blockedSlot.listForEmployee = func(ctx context.Context, employeeID int64, date time.Time) ([]*domain.BlockedSlot, error) {
		return []*domain.BlockedSlot{{ID: 1, EmployeeID: ptr.Ptr(employeeID), BlockedDate: date}}, nil
	}

	resp, err := env.useCase().Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
	assert.Empty(t, resp.Message)
}

func TestExecute_AutonomousEmployee(t *testing.T) {
	env := newTestEnv()
	env.catalog.listEligibleEmployees = func(ctx context.Context, companyID, serviceID int64, employeeID *int64) ([]*domain.Employee, error) {
		return []*domain.Employee{
			{ID: 2, CompanyID: companyID, Name: "Борис", EmployeeType: domain.EmployeeTypeAutonomous, IsActive: true},
		}, nil
	}

	t.Run("with availability", func(t *testing.T) {
		env.staff.getAvailabilityForDate = func(ctx context.Context, employeeID int64, date time.Time) (*domain.EmployeeAvailability, error) {
			return &domain.EmployeeAvailability{
				EmployeeID:    employeeID,
				AvailableDate: date,
				StartTime:     "10:00",
				EndTime:       "11:30",
			}, nil
		}

		resp, err := env.useCase().Execute(context.Background(), validRequest())

		require.NoError(t, err)
		assert.Equal(t, []string{"10:00", "10:30", "11:00"}, slotTimes(resp.Slots))
	})

	t.Run("no availability row", func(t *testing.T) {
		env.staff.getAvailabilityForDate = func(ctx context.Context, employeeID int64, date time.Time) (*domain.EmployeeAvailability, error) {
			return nil, staffRepo.ErrAvailabilityNotFound
		}

		resp, err := env.useCase().Execute(context.Background(), validRequest())

		require.NoError(t, err)
		assert.Empty(t, resp.Slots)
		assert.Empty(t, resp.Message)
	})
}

func TestExecute_MixedStaffTypes(t *testing.T) {
	env := newTestEnv()
	env.catalog.listEligibleEmployees = func(ctx context.Context, companyID, serviceID int64, employeeID *int64) ([]*domain.Employee, error) {
		return []*domain.Employee{
			{ID: 1, CompanyID: companyID, Name: "Анна", EmployeeType: domain.EmployeeTypeFixed, IsActive: true},
			{ID: 2, CompanyID: companyID, Name: "Борис", EmployeeType: domain.EmployeeTypeAutonomous, IsActive: true},
		}, nil
	}
	// Автономный сотрудник не опубликовал доступность на дату -
	// выдача состоит только из слотов фиксированного коллеги
	resp, err := env.useCase().Execute(context.Background(), validRequest())

	require.NoError(t, err)
	require.Len(t, resp.Slots, 6)
	for _, s := range resp.Slots {
		assert.Equal(t, int64(1), s.EmployeeID)
	}
}

func TestExecute_SameDayAdvanceNoticeExhaustsDay(t *testing.T) {
	env := newTestEnv()
	env.staff.getScheduleForWeekday = func(ctx context.Context, employeeID int64, dayOfWeek int) (*domain.EmployeeSchedule, error) {
		return &domain.EmployeeSchedule{
			EmployeeID: employeeID,
			DayOfWeek:  dayOfWeek,
			IsWorking:  true,
			StartTime:  "09:00",
			EndTime:    "18:00",
		}, nil
	}
	// 17:45 + 1 час минимума уходит за закрытие в 18:00
	env.now = time.Date(2025, 6, 16, 17, 45, 0, 0, time.UTC)

	resp, err := env.useCase().Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
	assert.Empty(t, resp.Message)
}

func TestExecute_MergeAndOrdering(t *testing.T) {
	env := newTestEnv()
	env.catalog.listEligibleEmployees = func(ctx context.Context, companyID, serviceID int64, employeeID *int64) ([]*domain.Employee, error) {
		return []*domain.Employee{
			{ID: 1, CompanyID: companyID, Name: "Анна", EmployeeType: domain.EmployeeTypeFixed, IsActive: true},
			{ID: 2, CompanyID: companyID, Name: "Борис", EmployeeType: domain.EmployeeTypeFixed, IsActive: true},
		}, nil
	}
	env.staff.getScheduleForWeekday = func(ctx context.Context, employeeID int64, dayOfWeek int) (*domain.EmployeeSchedule, error) {
		return &domain.EmployeeSchedule{
			EmployeeID: employeeID,
			DayOfWeek:  dayOfWeek,
			IsWorking:  true,
			StartTime:  "09:00",
			EndTime:    "10:00",
		}, nil
	}

	run := func() *Response {
		resp, err := env.useCase().Execute(context.Background(), validRequest())
		require.NoError(t, err)
		return resp
	}

	resp := run()

	// Слоты отсортированы по времени; при равном времени сотрудники
	// идут в порядке их id
	require.Len(t, resp.Slots, 4)
	assert.Equal(t, []string{"09:00", "09:00", "09:30", "09:30"}, slotTimes(resp.Slots))
	assert.Equal(t, int64(1), resp.Slots[0].EmployeeID)
	assert.Equal(t, int64(2), resp.Slots[1].EmployeeID)
	assert.Equal(t, int64(1), resp.Slots[2].EmployeeID)
	assert.Equal(t, int64(2), resp.Slots[3].EmployeeID)

	// Повторный запрос даёт идентично упорядоченный результат
	assert.Equal(t, resp, run())
}

func TestExecute_BookingsAndBlocksCombined(t *testing.T) {
	env := newTestEnv()
	env.blockedSlot.listForCompany = func(ctx context.Context, companyID int64, date time.Time) ([]*domain.BlockedSlot, error) {
		return []*domain.BlockedSlot{
			{ID: 1, CompanyID: companyID, BlockedDate: date,
				StartTime: ptr.Ptr(types.TimeString("09:00")), EndTime: ptr.Ptr(types.TimeString("09:30"))},
		}, nil
	}
	env.blockedSlot.listForEmployee = func(ctx context.Context, employeeID int64, date time.Time) ([]*domain.BlockedSlot, error) {
		return []*domain.BlockedSlot{
			{ID: 2, EmployeeID: ptr.Ptr(employeeID), BlockedDate: date,
				StartTime: ptr.Ptr(types.TimeString("10:00")), EndTime: ptr.Ptr(types.TimeString("10:30"))},
		}, nil
	}
	env.booking.listBlockingForEmployee = func(ctx context.Context, employeeID int64, date time.Time) ([]*domain.Booking, error) {
		return []*domain.Booking{
			{ID: 1, EmployeeID: employeeID, BookingTime: "11:00", DurationMinutes: 30, Status: domain.StatusConfirmed},
		}, nil
	}

	resp, err := env.useCase().Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, []string{"09:30", "10:30", "11:30"}, slotTimes(resp.Slots))
}

func TestExecute_ContextPropagation(t *testing.T) {
	env := newTestEnv()
	env.staff.listAbsencesCovering = func(ctx context.Context, employeeID int64, date time.Time) ([]*domain.EmployeeAbsence, error) {
		return nil, ctx.Err()
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := env.useCase().Execute(ctx, validRequest())
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrServiceNotFound))
}
