package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/demo_api/internal/logging"
	"github.com/Skotchmaster/demo_api/internal/models"
	"github.com/Skotchmaster/demo_api/internal/mykafka"
	"github.com/Skotchmaster/demo_api/internal/query"
	"github.com/Skotchmaster/demo_api/internal/service"
	"github.com/Skotchmaster/demo_api/internal/transport"
)

const msgInvalidUserID = "Invalid user ID format"

type UserHTTP struct {
	Svc      *service.UserService
	Producer mykafka.Publisher
}

func (h *UserHTTP) events() publisher { return publisher{Producer: h.Producer} }

func (h *UserHTTP) GetUsers(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "user.get_users")

	q := c.QueryParams()
	page, err := query.ParsePage(q)
	if err != nil {
		l.Warn("get_users_failed", "status", 400, "reason", "invalid pagination", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid pagination parameters")
	}

	users, meta, err := h.Svc.ListUsers(ctx, query.ParseUserFilter(q), page)
	if err != nil {
		return failure(l, "get_users_failed", err)
	}

	l.Debug("get_users_success", "total", meta.Total, "count", meta.Count)
	return c.JSON(http.StatusOK, transport.Response{Success: true, Data: users, Pagination: &meta})
}

func (h *UserHTTP) GetUser(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "user.get_user")

	id, err := parseID(c)
	if err != nil {
		l.Warn("get_user_failed", "status", 400, "reason", "id is not integer", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, msgInvalidUserID)
	}

	user, err := h.Svc.GetUser(ctx, id)
	if err != nil {
		return failure(l, "get_user_failed", err)
	}

	return c.JSON(http.StatusOK, transport.Response{Success: true, Data: user})
}

func (h *UserHTTP) CreateUser(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "user.create_user")

	body, err := bindBody(c)
	if err != nil {
		return failure(l, "create_user_failed", err)
	}

	user, err := h.Svc.CreateUser(ctx, body)
	if err != nil {
		return failure(l, "create_user_failed", err)
	}

	h.events().publish(c, mykafka.UserTopic, user.ID, mykafka.Event{
		Type:   "user_created",
		UserID: user.ID,
		Name:   user.Name,
		At:     user.CreatedAt,
	})
	l.Info("create_user_success", "user_id", user.ID)
	return c.JSON(http.StatusCreated, transport.Response{
		Success: true,
		Data:    user,
		Message: "User created successfully",
	})
}

func (h *UserHTTP) UpdateUser(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "user.update_user")

	id, err := parseID(c)
	if err != nil {
		l.Warn("update_user_failed", "status", 400, "reason", "id is not integer", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, msgInvalidUserID)
	}

	body, err := bindBody(c)
	if err != nil {
		return failure(l, "update_user_failed", err)
	}

	user, err := h.Svc.UpdateUser(ctx, id, body)
	if err != nil {
		return failure(l, "update_user_failed", err)
	}

	h.events().publish(c, mykafka.UserTopic, user.ID, mykafka.Event{
		Type:   "user_updated",
		UserID: user.ID,
		Name:   user.Name,
		At:     *user.UpdatedAt,
	})
	l.Info("update_user_success", "user_id", user.ID)
	return c.JSON(http.StatusOK, transport.Response{
		Success: true,
		Data:    user,
		Message: "User updated successfully",
	})
}

func (h *UserHTTP) DeleteUser(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "user.delete_user")

	id, err := parseID(c)
	if err != nil {
		l.Warn("delete_user_failed", "status", 400, "reason", "id is not integer", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, msgInvalidUserID)
	}

	user, err := h.Svc.DeleteUser(ctx, id)
	if err != nil {
		return failure(l, "delete_user_failed", err)
	}

	h.events().publish(c, mykafka.UserTopic, user.ID, mykafka.Event{
		Type:   "user_deleted",
		UserID: user.ID,
		Name:   user.Name,
		At:     h.Svc.Now().UTC(),
	})
	l.Info("delete_user_success", "user_id", user.ID)
	return c.JSON(http.StatusOK, transport.Response{
		Success: true,
		Message: "User deleted successfully",
		Data:    models.DeletedRecord{ID: user.ID, Name: user.Name},
	})
}
