package httpserver

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/demo_api/internal/logging"
	"github.com/Skotchmaster/demo_api/internal/models"
	"github.com/Skotchmaster/demo_api/internal/mykafka"
	"github.com/Skotchmaster/demo_api/internal/query"
	"github.com/Skotchmaster/demo_api/internal/service"
	"github.com/Skotchmaster/demo_api/internal/transport"
)

const msgInvalidProductID = "Invalid product ID format"

type ProductHTTP struct {
	Svc      *service.ProductService
	Producer mykafka.Publisher
}

func (h *ProductHTTP) events() publisher { return publisher{Producer: h.Producer} }

func (h *ProductHTTP) GetProducts(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.get_products")

	q := c.QueryParams()
	page, err := query.ParsePage(q)
	if err != nil {
		l.Warn("get_products_failed", "status", 400, "reason", "invalid pagination", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid pagination parameters")
	}
	filter, err := query.ParseProductFilter(q)
	if err != nil {
		if errors.Is(err, query.ErrInvalidPriceRange) {
			l.Warn("get_products_failed", "status", 400, "reason", "invalid price range", "error", err)
			return echo.NewHTTPError(http.StatusBadRequest, "Invalid price range")
		}
		return failure(l, "get_products_failed", err)
	}

	products, meta, err := h.Svc.ListProducts(ctx, filter, page)
	if err != nil {
		return failure(l, "get_products_failed", err)
	}

	l.Debug("get_products_success", "total", meta.Total, "count", meta.Count)
	return c.JSON(http.StatusOK, transport.Response{Success: true, Data: products, Pagination: &meta})
}

func (h *ProductHTTP) GetProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.get_product")

	id, err := parseID(c)
	if err != nil {
		l.Warn("get_product_failed", "status", 400, "reason", "id is not integer", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, msgInvalidProductID)
	}

	product, err := h.Svc.GetProduct(ctx, id)
	if err != nil {
		return failure(l, "get_product_failed", err)
	}

	return c.JSON(http.StatusOK, transport.Response{Success: true, Data: product})
}

func (h *ProductHTTP) CreateProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.create_product")

	body, err := bindBody(c)
	if err != nil {
		return failure(l, "create_product_failed", err)
	}

	product, err := h.Svc.CreateProduct(ctx, body)
	if err != nil {
		return failure(l, "create_product_failed", err)
	}

	h.events().publish(c, mykafka.ProductTopic, product.ID, mykafka.Event{
		Type:      "product_created",
		ProductID: product.ID,
		Name:      product.Name,
		At:        product.CreatedAt,
	})
	l.Info("create_product_success", "product_id", product.ID)
	return c.JSON(http.StatusCreated, transport.Response{
		Success: true,
		Data:    product,
		Message: "Product created successfully",
	})
}

func (h *ProductHTTP) UpdateProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.update_product")

	id, err := parseID(c)
	if err != nil {
		l.Warn("update_product_failed", "status", 400, "reason", "id is not integer", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, msgInvalidProductID)
	}

	body, err := bindBody(c)
	if err != nil {
		return failure(l, "update_product_failed", err)
	}

	product, err := h.Svc.UpdateProduct(ctx, id, body)
	if err != nil {
		return failure(l, "update_product_failed", err)
	}

	h.events().publish(c, mykafka.ProductTopic, product.ID, mykafka.Event{
		Type:      "product_updated",
		ProductID: product.ID,
		Name:      product.Name,
		At:        *product.UpdatedAt,
	})
	l.Info("update_product_success", "product_id", product.ID)
	return c.JSON(http.StatusOK, transport.Response{
		Success: true,
		Data:    product,
		Message: "Product updated successfully",
	})
}

func (h *ProductHTTP) DeleteProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.delete_product")

	id, err := parseID(c)
	if err != nil {
		l.Warn("delete_product_failed", "status", 400, "reason", "id is not integer", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, msgInvalidProductID)
	}

	product, err := h.Svc.DeleteProduct(ctx, id)
	if err != nil {
		return failure(l, "delete_product_failed", err)
	}

	h.events().publish(c, mykafka.ProductTopic, product.ID, mykafka.Event{
		Type:      "product_deleted",
		ProductID: product.ID,
		Name:      product.Name,
		At:        h.Svc.Now().UTC(),
	})
	l.Info("delete_product_success", "product_id", product.ID)
	return c.JSON(http.StatusOK, transport.Response{
		Success: true,
		Message: "Product deleted successfully",
		Data:    models.DeletedRecord{ID: product.ID, Name: product.Name},
	})
}
