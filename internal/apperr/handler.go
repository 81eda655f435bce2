package apperr

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
)

type errorBody struct {
	Error string `json:"error"`
	Title string `json:"title,omitempty"`
}

// GlobalErrorHandler maps handler errors to JSON responses: validation errors
// are 400, missing artifacts 404, echo errors keep their code, and anything
// else is logged and reported as 500.
func GlobalErrorHandler() echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var ve *ValidationError
		var he *echo.HTTPError
		switch {
		case errors.As(err, &ve):
			_ = c.JSON(http.StatusBadRequest, errorBody{Error: ve.Message, Title: "invalid request"})
		case errors.Is(err, ErrNotFound):
			_ = c.JSON(http.StatusNotFound, errorBody{Error: err.Error(), Title: "not found"})
		case errors.As(err, &he):
			_ = c.JSON(he.Code, errorBody{Error: fmt.Sprintf("%v", he.Message)})
		default:
			slog.Error("Unhandled error", "path", c.Path(), "error", err)
			_ = c.JSON(http.StatusInternalServerError, errorBody{Error: "internal server error"})
		}
	}
}
