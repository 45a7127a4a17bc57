package httpserver

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/demo_api/internal/logging"
	"github.com/Skotchmaster/demo_api/internal/mykafka"
	"github.com/Skotchmaster/demo_api/internal/service"
	"github.com/Skotchmaster/demo_api/internal/transport"
)

const msgInternal = "Internal server error"

func parseID(c echo.Context) (int, error) {
	return strconv.Atoi(c.Param("id"))
}

// bindBody decodes a JSON or URL-encoded body. Path and query values are left out.
func bindBody(c echo.Context) (transport.Body, error) {
	body := transport.Body{}
	if err := (&echo.DefaultBinder{}).BindBody(c, &body); err != nil {
		return nil, err
	}
	return body, nil
}

func serviceStatus(err error) int {
	switch {
	case errors.Is(err, service.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrConflict):
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}

// failure logs a failed operation and turns err into the HTTP error the client sees.
func failure(l *slog.Logger, event string, err error) error {
	var se *service.Error
	if errors.As(err, &se) {
		status := serviceStatus(se)
		l.Warn(event, "status", status, "reason", se.Message)
		return echo.NewHTTPError(status, se.Message)
	}

	var he *echo.HTTPError
	if errors.As(err, &he) {
		l.Warn(event, "status", he.Code, "reason", "invalid body", "error", err)
		return he
	}

	l.Error(event, "status", http.StatusInternalServerError, "reason", msgInternal, "error", err)
	return echo.NewHTTPError(http.StatusInternalServerError, msgInternal).SetInternal(err)
}

type publisher struct {
	Producer mykafka.Publisher
}

func (p publisher) publish(c echo.Context, topic string, key int, event mykafka.Event) {
	if p.Producer == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.WithoutCancel(c.Request().Context()), 5*time.Second)
	defer cancel()
	if err := p.Producer.PublishEvent(ctx, topic, strconv.Itoa(key), event); err != nil {
		logging.FromContext(ctx).Error("kafka_publish_failed", "topic", topic, "type", event.Type, "error", err)
	}
}
