package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"wedding-planner/internal/apperr"
)

type APIError struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
	Field   string `json:"field,omitempty"`
}

type ErrorEnvelope struct {
	Error APIError `json:"error"`
}

const (
	CodeValidation = "VALIDATION_FAILED"
	CodeNotFound   = "NOT_FOUND"
	CodeInternal   = "INTERNAL"
	CodeMethod     = "METHOD_NOT_ALLOWED"
)

// RespondError writes err in the error envelope with a status derived from
// its apperr kind. Store failures are reported without their cause.
func RespondError(c *gin.Context, err error) {
	status, code := http.StatusInternalServerError, CodeInternal
	switch apperr.KindOf(err) {
	case apperr.KindValidation:
		status, code = http.StatusBadRequest, CodeValidation
	case apperr.KindNotFound:
		status, code = http.StatusNotFound, CodeNotFound
	}

	msg := "unexpected failure"
	if status != http.StatusInternalServerError {
		msg = err.Error()
	} else {
		_ = c.Error(err)
	}

	c.AbortWithStatusJSON(status, ErrorEnvelope{Error: APIError{
		Message: msg,
		Code:    code,
		Field:   apperr.FieldOf(err),
	}})
}

func RespondOK(c *gin.Context, payload any) {
	c.JSON(http.StatusOK, payload)
}
