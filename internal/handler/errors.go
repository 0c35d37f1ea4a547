package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/marlonxteban/fyyur/internal/logging"
)

type errorPage struct {
	Code    int
	Message string
}

// ErrorHandler renders errors/404.html for unknown routes and records,
// errors/500.html for server faults and errors/error.html otherwise.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	code := http.StatusInternalServerError
	message := http.StatusText(code)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
		message = fmt.Sprint(he.Message)
	}

	name := "errors/error.html"
	switch {
	case code == http.StatusNotFound:
		name = "errors/404.html"
	case code >= http.StatusInternalServerError:
		name = "errors/500.html"
		logging.Error().Err(err).Str("uri", c.Request().RequestURI).Msg("unhandled error")
	}

	if c.Request().Method == http.MethodHead {
		err = c.NoContent(code)
	} else {
		err = render(c, code, name, http.StatusText(code), errorPage{Code: code, Message: message})
	}
	if err != nil {
		logging.Error().Err(err).Msg("render error page")
		if !c.Response().Committed {
			_ = c.String(code, http.StatusText(code))
		}
	}
}
