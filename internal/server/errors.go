package server

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	adjustmentdomain "github.com/revendahq/revenda/internal/adjustment/domain"
	companycostdomain "github.com/revendahq/revenda/internal/companycost/domain"
	contractdomain "github.com/revendahq/revenda/internal/contract/domain"
	overridedomain "github.com/revendahq/revenda/internal/override/domain"
	plandomain "github.com/revendahq/revenda/internal/plan/domain"
	reportdomain "github.com/revendahq/revenda/internal/report/domain"
	"gorm.io/gorm"
)

type ValidationError struct {
	Field   string `json:"field"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

type ValidationErrors struct {
	Errors []ValidationError `json:"errors"`
}

func (v ValidationErrors) Error() string {
	return "validation error"
}

type errorPayload struct {
	Type    string            `json:"type"`
	Message string            `json:"message"`
	Errors  []ValidationError `json:"errors,omitempty"`
}

type errorResponse struct {
	Error errorPayload `json:"error"`
}

var (
	ErrConflict       = errors.New("conflict")
	ErrInternal       = errors.New("internal_error")
	ErrNotFound       = errors.New("not_found")
	ErrInvalidRequest = errors.New("invalid_request")
)

func ErrorHandlingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}

		lastErr := c.Errors.Last()
		if lastErr == nil {
			return
		}

		status, payload := mapError(lastErr.Err)
		c.Header("Content-Type", "application/json")
		c.AbortWithStatusJSON(status, errorResponse{Error: payload})
	}
}

func AbortWithError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	_ = c.Error(err)
	c.Abort()
}

func invalidRequestError() error {
	return newValidationError("request", "invalid_request", "invalid request")
}

func newValidationError(field, code, message string) error {
	return &ValidationErrors{
		Errors: []ValidationError{
			{
				Field:   field,
				Code:    code,
				Message: message,
			},
		},
	}
}

func mapError(err error) (int, errorPayload) {
	if err == nil {
		return http.StatusInternalServerError, errorPayload{
			Type:    "internal_error",
			Message: "internal server error",
		}
	}

	if vErr := asValidationErrors(err); vErr != nil {
		return http.StatusBadRequest, errorPayload{
			Type:    "validation_error",
			Message: "validation error",
			Errors:  vErr.Errors,
		}
	}

	if isValidationError(err) {
		code := validationErrorCode(err)
		return http.StatusBadRequest, errorPayload{
			Type:    "validation_error",
			Message: "validation error",
			Errors: []ValidationError{
				{
					Field:   validationErrorField(code),
					Code:    code,
					Message: validationErrorMessage(code),
				},
			},
		}
	}

	switch {
	case isConflictError(err):
		return http.StatusConflict, errorPayload{
			Type:    "conflict",
			Message: err.Error(),
		}
	case isNotFoundError(err):
		return http.StatusNotFound, errorPayload{
			Type:    "not_found",
			Message: "not found",
		}
	default:
		return http.StatusInternalServerError, errorPayload{
			Type:    "internal_error",
			Message: "internal server error",
		}
	}
}

// classifyErrorForLog feeds the request logger's error_type/error_code
// fields without rendering a response.
func classifyErrorForLog(err error) (string, string) {
	if err == nil {
		return "", ""
	}
	_, payload := mapError(err)
	code := payload.Type
	if len(payload.Errors) > 0 {
		code = payload.Errors[0].Code
	}
	return payload.Type, code
}

func asValidationErrors(err error) *ValidationErrors {
	var vErr *ValidationErrors
	if errors.As(err, &vErr) && vErr != nil {
		return vErr
	}
	return nil
}

func isValidationError(err error) bool {
	switch {
	case errors.Is(err, ErrInvalidRequest),
		errors.Is(err, contractdomain.ErrInvalidID),
		errors.Is(err, contractdomain.ErrInvalidCompanyName),
		errors.Is(err, contractdomain.ErrInvalidCadence),
		errors.Is(err, contractdomain.ErrInvalidStartDate),
		errors.Is(err, contractdomain.ErrInvalidStatusDate),
		errors.Is(err, contractdomain.ErrInvalidTrialDays),
		errors.Is(err, contractdomain.ErrInvalidEmployeeCount),
		errors.Is(err, contractdomain.ErrInvalidCNPJCount),
		errors.Is(err, adjustmentdomain.ErrInvalidID),
		errors.Is(err, adjustmentdomain.ErrInvalidAdjustmentType),
		errors.Is(err, adjustmentdomain.ErrInvalidAdjustmentValue),
		errors.Is(err, adjustmentdomain.ErrInvalidEffectiveDate),
		errors.Is(err, plandomain.ErrInvalidID),
		errors.Is(err, plandomain.ErrInvalidName),
		errors.Is(err, plandomain.ErrInvalidEmployeeRange),
		errors.Is(err, plandomain.ErrInvalidExemptionMonths),
		errors.Is(err, plandomain.ErrInvalidUnitType),
		errors.Is(err, plandomain.ErrInvalidPricingType),
		errors.Is(err, overridedomain.ErrInvalidID),
		errors.Is(err, overridedomain.ErrInvalidPeriod),
		errors.Is(err, companycostdomain.ErrInvalidID),
		errors.Is(err, companycostdomain.ErrInvalidCategory),
		errors.Is(err, companycostdomain.ErrInvalidDescription),
		errors.Is(err, companycostdomain.ErrInvalidName),
		errors.Is(err, reportdomain.ErrInvalidYear),
		errors.Is(err, reportdomain.ErrInvalidID):
		return true
	default:
		return false
	}
}

func isNotFoundError(err error) bool {
	switch {
	case errors.Is(err, ErrNotFound),
		errors.Is(err, contractdomain.ErrNotFound),
		errors.Is(err, adjustmentdomain.ErrContractNotFound),
		errors.Is(err, plandomain.ErrNotFound),
		errors.Is(err, overridedomain.ErrNotFound),
		errors.Is(err, overridedomain.ErrContractNotFound),
		errors.Is(err, companycostdomain.ErrNotFound),
		errors.Is(err, companycostdomain.ErrSectionNotFound),
		errors.Is(err, reportdomain.ErrNotFound),
		errors.Is(err, gorm.ErrRecordNotFound):
		return true
	default:
		return false
	}
}

func isConflictError(err error) bool {
	switch {
	case errors.Is(err, ErrConflict),
		errors.Is(err, contractdomain.ErrDuplicateTransition),
		errors.Is(err, contractdomain.ErrAlreadyActive),
		errors.Is(err, contractdomain.ErrAlreadyInactive),
		errors.Is(err, companycostdomain.ErrDuplicateName):
		return true
	default:
		return false
	}
}

func validationErrorCode(err error) string {
	if errors.Is(err, ErrInvalidRequest) {
		return "invalid_request"
	}
	return err.Error()
}

func validationErrorField(code string) string {
	if code == "invalid_request" {
		return "request"
	}
	if strings.HasPrefix(code, "invalid_") {
		return strings.TrimPrefix(code, "invalid_")
	}
	return ""
}

func validationErrorMessage(code string) string {
	switch code {
	case "invalid_request":
		return "invalid request"
	default:
		return "invalid value"
	}
}
