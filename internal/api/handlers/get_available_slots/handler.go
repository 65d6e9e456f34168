package get_available_slots

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AvailabilityService/internal/api/handlers"
	getAvailableSlots "github.com/m04kA/SMC-AvailabilityService/internal/usecase/get_available_slots"
)

const (
	msgInvalidCompanyID  = "некорректный ID компании"
	msgInvalidServiceID  = "некорректный ID услуги"
	msgInvalidEmployeeID = "некорректный ID сотрудника"
	msgMissingServiceID  = "ID услуги обязателен"
	msgMissingDate       = "дата обязательна"
	msgInvalidDate       = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgServiceNotFound   = "услуга не найдена"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/companies/{companyId}/available-slots
// Query params: serviceId (обязателен), date (обязателен, YYYY-MM-DD),
// employeeId (опционально - ограничить выдачу одним сотрудником)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	// Извлекаем companyId из URL
	companyID, err := strconv.ParseInt(vars["companyId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /companies/{id}/available-slots - Invalid company ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCompanyID)
		return
	}

	// Извлекаем serviceId из query параметров
	serviceIDStr := r.URL.Query().Get("serviceId")
	if serviceIDStr == "" {
		h.logger.Warn("GET /companies/{id}/available-slots - Missing service ID")
		handlers.RespondBadRequest(w, msgMissingServiceID)
		return
	}

	serviceID, err := strconv.ParseInt(serviceIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /companies/{id}/available-slots - Invalid service ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidServiceID)
		return
	}

	// Извлекаем опциональный employeeId
	var employeeID *int64
	if employeeIDStr := r.URL.Query().Get("employeeId"); employeeIDStr != "" {
		id, err := strconv.ParseInt(employeeIDStr, 10, 64)
		if err != nil {
			h.logger.Warn("GET /companies/{id}/available-slots - Invalid employee ID: %v", err)
			handlers.RespondBadRequest(w, msgInvalidEmployeeID)
			return
		}
		employeeID = &id
	}

	// Извлекаем date из query параметров
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /companies/{id}/available-slots - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	// Формируем запрос к use case (с парсингом даты)
	useCaseReq, err := ToUseCaseRequest(companyID, serviceID, employeeID, dateStr)
	if err != nil {
		h.logger.Warn("GET /companies/{id}/available-slots - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrServiceNotFound):
			h.logger.Warn("GET /companies/{id}/available-slots - Service not found: company_id=%d, service_id=%d",
				companyID, serviceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /companies/{id}/available-slots - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("GET /companies/{id}/available-slots - Failed to get slots: company_id=%d, service_id=%d, error=%v",
				companyID, serviceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("GET /companies/{id}/available-slots - Slots retrieved: company_id=%d, service_id=%d, slots_count=%d",
		companyID, serviceID, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, response)
}
