package http

import (
	"errors"
	"net/http"

	contribDomain "sacco-backend/internal/domain/contribution"
	loanDomain "sacco-backend/internal/domain/loan"
	memberDomain "sacco-backend/internal/domain/member"
	paymentDomain "sacco-backend/internal/domain/payment"
	memberUC "sacco-backend/internal/usecase/member"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// respondError maps domain errors to status codes plus a machine-readable
// kind, so clients can tell "fix your input" from "try again later".
func respondError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, loanDomain.ErrNotFound),
		errors.Is(err, memberDomain.ErrNotFound),
		errors.Is(err, contribDomain.ErrNotFound),
		errors.Is(err, paymentDomain.ErrNotFound),
		errors.Is(err, gorm.ErrRecordNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error(), Kind: "not_found"})

	case errors.Is(err, loanDomain.ErrInvalidTransition),
		errors.Is(err, contribDomain.ErrInvalidTransition):
		return c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error(), Kind: "invalid_state"})

	case errors.Is(err, loanDomain.ErrInvalidAmount),
		errors.Is(err, loanDomain.ErrInvalidTerm),
		errors.Is(err, loanDomain.ErrMissingReason),
		errors.Is(err, loanDomain.ErrInvalidStatus),
		errors.Is(err, contribDomain.ErrInvalidAmount),
		errors.Is(err, memberUC.ErrMissingName):
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error(), Kind: "validation"})

	case errors.Is(err, loanDomain.ErrLimitExceeded):
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: err.Error(), Kind: "limit_exceeded"})

	case errors.Is(err, contribDomain.ErrDataUnavailable):
		return c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: err.Error(), Kind: "data_unavailable"})

	default:
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error", Kind: "internal"})
	}
}
