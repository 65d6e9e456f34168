package handlers

import (
	"encoding/json"
	"net/http"
)

// ErrorResponse тело ответа об ошибке
type ErrorResponse struct {
	Error string `json:"error"`
}

const msgInternalError = "внутренняя ошибка сервиса"

// RespondJSON пишет JSON ответ с указанным статусом
func RespondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// RespondBadRequest пишет 400 с сообщением об ошибке
func RespondBadRequest(w http.ResponseWriter, message string) {
	RespondJSON(w, http.StatusBadRequest, ErrorResponse{Error: message})
}

// RespondNotFound пишет 404 с сообщением об ошибке
func RespondNotFound(w http.ResponseWriter, message string) {
	RespondJSON(w, http.StatusNotFound, ErrorResponse{Error: message})
}

// RespondInternalError пишет 500 с обезличенным сообщением
// Детали внутренней ошибки наружу не отдаются
func RespondInternalError(w http.ResponseWriter) {
	RespondJSON(w, http.StatusInternalServerError, ErrorResponse{Error: msgInternalError})
}
