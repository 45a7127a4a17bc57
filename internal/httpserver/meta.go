package httpserver

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

const Version = "1.0.0"

type MetaHTTP struct {
	Env string
	Now func() time.Time
}

type rootResponse struct {
	Message       string            `json:"message"`
	Version       string            `json:"version"`
	Documentation string            `json:"documentation"`
	Endpoints     map[string]string `json:"endpoints"`
}

type healthResponse struct {
	Status      string    `json:"status"`
	Timestamp   time.Time `json:"timestamp"`
	Version     string    `json:"version"`
	Environment string    `json:"environment"`
}

func (h *MetaHTTP) now() time.Time {
	if h.Now == nil {
		return time.Now().UTC()
	}
	return h.Now().UTC()
}

func (h *MetaHTTP) Root(c echo.Context) error {
	return c.JSON(http.StatusOK, rootResponse{
		Message:       "Welcome to the AI Backend API",
		Version:       Version,
		Documentation: "/api-docs",
		Endpoints: map[string]string{
			"health":   "/health",
			"users":    "/api/users",
			"products": "/api/products",
		},
	})
}

func (h *MetaHTTP) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, healthResponse{
		Status:      "OK",
		Timestamp:   h.now(),
		Version:     Version,
		Environment: h.Env,
	})
}
