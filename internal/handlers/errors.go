package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	apperrors "github.com/umalmyha/clientes/internal/errors"
	"github.com/umalmyha/clientes/internal/validation"
)

const internalErrorMessage = "Error interno del servidor. Intente nuevamente."

// HTTPErrorHandler translates application errors into responses and falls back to echo default handler
func HTTPErrorHandler(e *echo.Echo, logger logrus.FieldLogger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		he := httpError(err)
		if he.Code >= http.StatusInternalServerError {
			logger.WithError(err).WithFields(logrus.Fields{
				"method": c.Request().Method,
				"path":   c.Request().URL.Path,
			}).Error("error occurred on http request processing")
		}
		e.DefaultHTTPErrorHandler(he, c)
	}
}

func httpError(err error) *echo.HTTPError {
	var (
		echoErr     *echo.HTTPError
		notFoundErr *apperrors.EntryNotFoundErr
		conflictErr *apperrors.ConflictErr
		badArgErr   *apperrors.BadArgumentErr
		payloadErr  *validation.PayloadError
	)

	switch {
	case errors.As(err, &echoErr):
		if echoErr.Code >= http.StatusInternalServerError {
			return echo.NewHTTPError(echoErr.Code, internalErrorMessage)
		}
		return echoErr
	case errors.As(err, &notFoundErr):
		return echo.NewHTTPError(http.StatusNotFound, notFoundErr.Error())
	case errors.As(err, &conflictErr):
		return echo.NewHTTPError(http.StatusConflict, conflictErr)
	case errors.As(err, &badArgErr):
		return echo.NewHTTPError(http.StatusBadRequest, badArgErr)
	case errors.As(err, &payloadErr):
		return echo.NewHTTPError(http.StatusBadRequest, payloadErr)
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, internalErrorMessage)
	}
}
