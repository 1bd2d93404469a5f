package response

import (
	"encoding/json"
	"net/http"

	"clinic-backend/pkg/apperr"
)

// Envelope is the wire shape for every reply: {"ok":true,"result":...} on
// success, {"ok":false,"error":{"code","message"}} on failure.
type Envelope struct {
	OK     bool        `json:"ok"`
	Result interface{} `json:"result,omitempty"`
	Error  *ErrorBody  `json:"error,omitempty"`
}

type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func JSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

func Success(w http.ResponseWriter, statusCode int, result interface{}) {
	JSON(w, statusCode, Envelope{OK: true, Result: result})
}

func Fail(w http.ResponseWriter, statusCode int, code, message string) {
	JSON(w, statusCode, Envelope{OK: false, Error: &ErrorBody{Code: code, Message: message}})
}

// Err maps a usecase error onto the envelope. Untagged errors become a 500
// with a generic message; the original text is the caller's to log.
func Err(w http.ResponseWriter, err error) {
	appErr, ok := apperr.As(err)
	if !ok {
		Fail(w, http.StatusInternalServerError, "internal/error", "Internal server error")
		return
	}
	Fail(w, StatusOf(appErr.Kind), appErr.Code, appErr.Message)
}

// StatusOf returns the HTTP status for an error kind.
func StatusOf(kind apperr.Kind) int {
	switch kind {
	case apperr.KindNotFound:
		return http.StatusNotFound
	case apperr.KindValidation:
		return http.StatusBadRequest
	case apperr.KindConflict:
		return http.StatusConflict
	case apperr.KindUnauthenticated:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

func ValidationError(w http.ResponseWriter, message string) {
	Fail(w, http.StatusBadRequest, "request/validation-error", message)
}

func Unauthorized(w http.ResponseWriter, message string) {
	if message == "" {
		message = "Unauthorized"
	}
	Fail(w, http.StatusUnauthorized, "auth/unauthorized", message)
}

func InternalServerError(w http.ResponseWriter) {
	Fail(w, http.StatusInternalServerError, "internal/error", "Internal server error")
}
