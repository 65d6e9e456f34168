package get_schedule_settings

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AvailabilityService/internal/api/handlers"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/settings"
)

const msgInvalidCompanyID = "некорректный ID компании"

type Handler struct {
	service SettingsService
	logger  Logger
}

func NewHandler(service SettingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/companies/{companyId}/schedule-settings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	companyID, err := strconv.ParseInt(vars["companyId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /companies/{id}/schedule-settings - Invalid company ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCompanyID)
		return
	}

	result, err := h.service.Get(r.Context(), companyID)
	if err != nil {
		if errors.Is(err, settings.ErrInvalidInput) {
			h.logger.Warn("GET /companies/{id}/schedule-settings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidCompanyID)
			return
		}

		h.logger.Error("GET /companies/{id}/schedule-settings - Failed to get settings: company_id=%d, error=%v",
			companyID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /companies/{id}/schedule-settings - Settings retrieved: company_id=%d, is_default=%t",
		companyID, result.IsDefault)
	handlers.RespondJSON(w, http.StatusOK, result)
}
