package http

import (
	"log/slog"

	"kitchen/internal/adapters/in/http/apispec"
	"kitchen/internal/pkg/errs"

	"github.com/getkin/kin-openapi/openapi3filter"
	legacyrouter "github.com/getkin/kin-openapi/routers/legacy"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// RouterConfig controls the optional parts of the router.
type RouterConfig struct {
	// StaticDir is served at "/" when not empty.
	StaticDir string
	// ValidateRequests checks /api requests against the OpenAPI document
	// before they reach the handlers.
	ValidateRequests bool
}

// NewRouter wires the server into an echo instance.
//
// Routes:
//
//	POST   /api/pedido          create an order
//	GET    /api/pedidos         list orders
//	PUT    /api/pedido/:id      change order status
//	GET    /api/productos       list catalog
//	POST   /api/productos       create catalog item
//	PUT    /api/productos/:id   update catalog item
//	DELETE /api/productos/:id   delete catalog item
//	GET    /health, /metrics, /swagger/*
func NewRouter(s *Server, cfg RouterConfig) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = s.handleHTTPError

	e.Use(
		middleware.Recover(),
		middleware.RequestIDWithConfig(middleware.RequestIDConfig{Generator: uuid.NewString}),
		requestLogger(s.logger),
	)

	var apiMiddleware []echo.MiddlewareFunc
	if cfg.ValidateRequests {
		validator, err := s.requestValidator()
		if err != nil {
			return nil, err
		}
		apiMiddleware = append(apiMiddleware, validator)
	}

	api := e.Group("/api", apiMiddleware...)
	api.POST("/pedido", s.CreateOrder)
	api.GET("/pedidos", s.ListOrders)
	api.PUT("/pedido/:id", s.UpdateOrderStatus)
	api.GET("/productos", s.ListItems)
	api.POST("/productos", s.CreateItem)
	api.PUT("/productos/:id", s.UpdateItem)
	api.DELETE("/productos/:id", s.DeleteItem)

	e.GET("/health", s.Health)
	e.GET("/metrics", echo.WrapHandler(s.metrics.Handler()))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	if cfg.StaticDir != "" {
		e.Static("/", cfg.StaticDir)
	}

	return e, nil
}

func requestLogger(logger *slog.Logger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			level := slog.LevelInfo
			if v.Status >= 500 {
				level = slog.LevelError
			}
			logger.LogAttrs(c.Request().Context(), level, "request",
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
				slog.String("request_id", v.RequestID),
			)
			return nil
		},
	})
}

// requestValidator rejects requests that do not match the OpenAPI document
// with a 400. Requests for paths the document does not describe are passed
// through so echo can answer them.
func (s *Server) requestValidator() (echo.MiddlewareFunc, error) {
	doc, err := apispec.Load()
	if err != nil {
		return nil, err
	}
	router, err := legacyrouter.NewRouter(doc)
	if err != nil {
		return nil, err
	}
	options := &openapi3filter.Options{AuthenticationFunc: openapi3filter.NoopAuthenticationFunc}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			route, pathParams, findErr := router.FindRoute(req)
			if findErr != nil {
				return next(c)
			}

			input := &openapi3filter.RequestValidationInput{
				Request:    req,
				PathParams: pathParams,
				Route:      route,
				Options:    options,
			}
			if validationErr := openapi3filter.ValidateRequest(req.Context(), input); validationErr != nil {
				return s.fail(c, errs.NewValueIsInvalidErrorWithCause("request", validationErr))
			}

			return next(c)
		}
	}, nil
}
