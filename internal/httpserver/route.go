package httpserver

import (
	"log/slog"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/Skotchmaster/demo_api/internal/logging"
	loggingmw "github.com/Skotchmaster/demo_api/internal/middleware/logging"
)

const ctxOriginalURI = "original_uri"

// keepOriginalURI stores the request URI before any pre-router rewrite.
func keepOriginalURI(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		c.Set(ctxOriginalURI, c.Request().RequestURI)
		return next(c)
	}
}

type Deps struct {
	UserHandler    *UserHTTP
	ProductHandler *ProductHTTP
	MetaHandler    *MetaHTTP
}

// New builds the echo instance with the shared middleware chain and error rendering.
func New(logger *slog.Logger, exposeErrors bool) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = NewErrorHandler(exposeErrors)

	e.Pre(keepOriginalURI, echomw.RemoveTrailingSlash())
	e.Use(echomw.RequestIDWithConfig(echomw.RequestIDConfig{Generator: uuid.NewString}))
	e.Use(echomw.SecureWithConfig(echomw.SecureConfig{
		XSSProtection:         "0",
		ContentTypeNosniff:    "nosniff",
		XFrameOptions:         "SAMEORIGIN",
		HSTSMaxAge:            15552000,
		ContentSecurityPolicy: "default-src 'self'",
		ReferrerPolicy:        "no-referrer",
	}))
	e.Use(echomw.CORS())
	e.Use(echomw.BodyLimit("100K"))
	e.Use(loggingmw.RequestLogger(logger))
	e.Use(echomw.RecoverWithConfig(echomw.RecoverConfig{
		DisableErrorHandler: true,
		DisablePrintStack:   true,
		LogErrorFunc: func(c echo.Context, err error, stack []byte) error {
			logging.FromContext(c.Request().Context()).Error("panic_recovered", "error", err, "stack", string(stack))
			return err
		},
	}))

	return e
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/", d.MetaHandler.Root)
	e.GET("/health", d.MetaHandler.Health)

	users := e.Group("/api/users")
	users.GET("", d.UserHandler.GetUsers)
	users.GET("/:id", d.UserHandler.GetUser)
	users.POST("", d.UserHandler.CreateUser)
	users.PUT("/:id", d.UserHandler.UpdateUser)
	users.DELETE("/:id", d.UserHandler.DeleteUser)

	products := e.Group("/api/products")
	products.GET("", d.ProductHandler.GetProducts)
	products.GET("/:id", d.ProductHandler.GetProduct)
	products.POST("", d.ProductHandler.CreateProduct)
	products.PUT("/:id", d.ProductHandler.UpdateProduct)
	products.DELETE("/:id", d.ProductHandler.DeleteProduct)
}
