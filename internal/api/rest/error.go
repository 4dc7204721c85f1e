package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/parametriclabs/policyd/internal/domain"
	"github.com/parametriclabs/policyd/internal/logger"
)

// ErrorCode represents a standardized error code
type ErrorCode string

const (
	// Client errors (4xx)
	errCodeBadRequest        ErrorCode = "bad_request"
	errCodeNotFound          ErrorCode = "not_found"
	errCodeValidationFailed  ErrorCode = "validation_failed"
	errCodeForbidden         ErrorCode = "forbidden"
	errCodeConflict          ErrorCode = "conflict"
	errCodePolicyExpired     ErrorCode = "policy_expired"
	errCodeInsufficientFunds ErrorCode = "insufficient_funds"

	// Server errors (5xx)
	errCodeInternalError ErrorCode = "internal_error"
	errCodeOracleError   ErrorCode = "oracle_error"
)

// errorResponse represents a standardized error response
type errorResponse struct {
	Error errorDetail `json:"error"`
}

// errorDetail contains error information
type errorDetail struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Details string    `json:"details,omitempty"`
}

// respondWithError sends a standardized error response
func respondWithError(c *gin.Context, statusCode int, code ErrorCode, message string, details ...string) {
	response := errorResponse{
		Error: errorDetail{
			Code:    code,
			Message: message,
		},
	}

	if len(details) > 0 {
		response.Error.Details = details[0]
	}

	c.JSON(statusCode, response)
}

// respondBadRequest sends a 400 Bad Request response
func respondBadRequest(c *gin.Context, message string, details ...string) {
	respondWithError(c, http.StatusBadRequest, errCodeBadRequest, message, details...)
}

// respondValidationError sends a 400 Bad Request with validation error
func respondValidationError(c *gin.Context, details string) {
	respondWithError(c, http.StatusBadRequest, errCodeValidationFailed, "Validation failed", details)
}

// respondInternalError sends a 500 Internal Server Error response and logs the error
func respondInternalError(c *gin.Context, err error, message string, fields ...zap.Field) {
	logger.Error(err, fields...)
	respondWithError(c, http.StatusInternalServerError, errCodeInternalError, message)
}

// respondDomainError maps a lifecycle error to its HTTP representation.
// Anything outside the taxonomy is a 500.
func respondDomainError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrUnauthorized):
		respondWithError(c, http.StatusForbidden, errCodeForbidden, "Caller is not authorized for this policy")
	case errors.Is(err, domain.ErrPolicyNotFound):
		respondWithError(c, http.StatusNotFound, errCodeNotFound, "Policy not found")
	case errors.Is(err, domain.ErrPolicyExists):
		respondWithError(c, http.StatusConflict, errCodeConflict, "Policy already exists for this pair")
	case errors.Is(err, domain.ErrPolicyNotActive),
		errors.Is(err, domain.ErrPolicyNotPurchased),
		errors.Is(err, domain.ErrPayoutNotTriggered),
		errors.Is(err, domain.ErrPolicyCannotBeCancelled):
		respondWithError(c, http.StatusConflict, errCodeConflict, "Policy is not in the required state", err.Error())
	case errors.Is(err, domain.ErrPolicyExpired):
		respondWithError(c, http.StatusConflict, errCodePolicyExpired, "Policy has expired")
	case errors.Is(err, domain.ErrInsufficientFunds):
		respondWithError(c, http.StatusUnprocessableEntity, errCodeInsufficientFunds, "Insufficient funds")
	case errors.Is(err, domain.ErrInvalidOracleData):
		respondWithError(c, http.StatusBadGateway, errCodeOracleError, "Invalid oracle data", err.Error())
	default:
		respondInternalError(c, err, "Operation failed")
	}
}
