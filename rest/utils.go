package rest

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"pai/domain"
	appErrors "pai/utils/errors"
	"pai/utils/logger"
)

// handleError converts domain and application errors to HTTP responses.
// Internal error details never leak to clients.
func handleError(c echo.Context, err error, operation string) error {
	if errors.Is(err, domain.ErrItemNotFound) {
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "item not found"})
	}

	var appErr *appErrors.AppError
	if errors.As(err, &appErr) {
		switch appErr.Code {
		case appErrors.ErrCodeValidation:
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: appErr.Message})
		case appErrors.ErrCodeRateLimit:
			return c.JSON(http.StatusTooManyRequests, ErrorResponse{Error: appErr.Message})
		case appErrors.ErrCodeTimeout:
			return c.JSON(http.StatusGatewayTimeout, ErrorResponse{Error: appErr.Message})
		}
	}

	logger.SafeError("request failed", "operation", operation, "error", err)
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
}
