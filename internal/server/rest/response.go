package rest

import (
	"encoding/json"
	"net/http"

	"github.com/dmitrijs2005/usersvc/internal/server/services"
)

// Transport-level codes that are not service outcomes.
const (
	codeUnauthorized    = "UNAUTHORIZED"
	codeValidation      = "VALIDATION_ERROR"
	codeInvalidJSON     = "INVALID_JSON"
	codeTooManyRequests = "TOO_MANY_REQUESTS"
	codeInternal        = "INTERNAL_ERROR"
)

var outcomeStatus = map[services.Outcome]int{
	services.OutcomeCreated:            http.StatusCreated,
	services.OutcomeAuthenticated:      http.StatusOK,
	services.OutcomeAccepted:           http.StatusAccepted,
	services.OutcomeDeleted:            http.StatusOK,
	services.OutcomeNoChangeRequested:  http.StatusBadRequest,
	services.OutcomeNotFound:           http.StatusNotFound,
	services.OutcomeEditForbidden:      http.StatusMethodNotAllowed,
	services.OutcomeDeleteForbidden:    http.StatusMethodNotAllowed,
	services.OutcomeConflict:           http.StatusConflict,
	services.OutcomeInvalidCredentials: http.StatusBadRequest,
}

// StatusFor returns the HTTP status an outcome is reported with.
func StatusFor(o services.Outcome) int {
	if s, ok := outcomeStatus[o]; ok {
		return s
	}
	return http.StatusInternalServerError
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeOutcome(w http.ResponseWriter, o services.Outcome) {
	status := StatusFor(o)
	resp := Response{Code: status, Message: o.Message()}
	if !o.Success() {
		resp.Error = o.Code()
	}
	writeJSON(w, status, resp)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, Response{Code: status, Message: message, Error: code})
}

func writeUnauthorized(w http.ResponseWriter) {
	writeError(w, http.StatusUnauthorized, codeUnauthorized, http.StatusText(http.StatusUnauthorized))
}

func writeValidation(w http.ResponseWriter, fields map[string]string) {
	writeJSON(w, http.StatusBadRequest, Response{
		Code:    http.StatusBadRequest,
		Message: "Validation failed",
		Error:   codeValidation,
		Fields:  fields,
	})
}

func writeInternal(w http.ResponseWriter, err error) {
	writeJSON(w, http.StatusInternalServerError, Response{
		Code:    http.StatusInternalServerError,
		Message: http.StatusText(http.StatusInternalServerError),
		Error:   codeInternal,
		Detail:  err.Error(),
	})
}
