package httpserver

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/demo_api/internal/logging"
	"github.com/Skotchmaster/demo_api/internal/transport"
)

const msgUnhandled = "Something went wrong!"

var availableEndpoints = []string{
	"GET /",
	"GET /health",
	"GET /api/users",
	"GET /api/users/:id",
	"POST /api/users",
	"PUT /api/users/:id",
	"DELETE /api/users/:id",
	"GET /api/products",
	"GET /api/products/:id",
	"POST /api/products",
	"PUT /api/products/:id",
	"DELETE /api/products/:id",
}

type routeNotFoundResponse struct {
	Success            bool     `json:"success"`
	Message            string   `json:"message"`
	AvailableEndpoints []string `json:"availableEndpoints"`
}

// NewErrorHandler renders every error as the JSON envelope. Error details are only
// included when exposeDetail is set.
func NewErrorHandler(exposeDetail bool) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status, body := renderError(err, c, exposeDetail)

		var werr error
		if c.Request().Method == http.MethodHead {
			werr = c.NoContent(status)
		} else {
			werr = c.JSON(status, body)
		}
		if werr != nil {
			logging.FromContext(c.Request().Context()).Error("write_error_response_failed", "error", werr)
		}
	}
}

func originalURI(c echo.Context) string {
	if uri, ok := c.Get(ctxOriginalURI).(string); ok && uri != "" {
		return uri
	}
	if uri := c.Request().RequestURI; uri != "" {
		return uri
	}
	return c.Request().URL.RequestURI()
}

func renderError(err error, c echo.Context, exposeDetail bool) (int, any) {
	if errors.Is(err, echo.ErrNotFound) || errors.Is(err, echo.ErrMethodNotAllowed) {
		return http.StatusNotFound, routeNotFoundResponse{
			Success:            false,
			Message:            fmt.Sprintf("Route %s %s not found", c.Request().Method, originalURI(c)),
			AvailableEndpoints: availableEndpoints,
		}
	}

	resp := transport.Response{Success: false}

	var he *echo.HTTPError
	if !errors.As(err, &he) {
		resp.Message = msgUnhandled
		if exposeDetail {
			resp.Error = err.Error()
		}
		return http.StatusInternalServerError, resp
	}

	if msg, ok := he.Message.(string); ok {
		resp.Message = msg
	} else {
		resp.Message = fmt.Sprint(he.Message)
	}
	if he.Code >= http.StatusInternalServerError && exposeDetail && he.Internal != nil {
		resp.Error = he.Internal.Error()
	}
	return he.Code, resp
}
