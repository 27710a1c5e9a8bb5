package infra

import (
	"math"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"
	"github.com/umalmyha/clientes/internal/auth"
	"github.com/umalmyha/clientes/internal/config"
	"github.com/umalmyha/clientes/internal/handlers"
	"github.com/umalmyha/clientes/internal/metrics"
	"github.com/umalmyha/clientes/internal/middleware"
	"github.com/umalmyha/clientes/internal/service"
	"golang.org/x/time/rate"
)

// RouterOpts holds router dependencies, nil JwtValidator disables auth
type RouterOpts struct {
	HTTP         config.HTTPCfg
	Validator    echo.Validator
	JwtValidator *auth.JwtValidator
	Metrics      *metrics.Metrics
	Logger       logrus.FieldLogger
}

// Router builds echo application serving cliente API
func Router(clienteSvc service.ClienteService, opts RouterOpts) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Validator = opts.Validator
	e.HTTPErrorHandler = handlers.HTTPErrorHandler(e, opts.Logger)

	// Middleware
	e.Pre(echomw.RemoveTrailingSlash())
	e.Use(echomw.Recover())
	e.Use(echomw.RequestIDWithConfig(echomw.RequestIDConfig{Generator: uuid.NewString}))
	e.Use(opts.Metrics.Middleware())
	e.Use(middleware.RequestLogger(opts.Logger))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: opts.HTTP.AllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderContentType, echo.HeaderAuthorization},
	}))

	if r := opts.HTTP.RateLimit; r > 0 {
		// burst below one rejects every request
		e.Use(echomw.RateLimiter(echomw.NewRateLimiterMemoryStoreWithConfig(echomw.RateLimiterMemoryStoreConfig{
			Rate:  rate.Limit(r),
			Burst: int(math.Max(1, math.Ceil(r))),
		})))
	}

	// Ambient routes
	e.GET("/health", handlers.Health)
	e.GET("/metrics", echo.WrapHandler(opts.Metrics.Handler()))

	var apiMws []echo.MiddlewareFunc
	if opts.JwtValidator != nil {
		apiMws = append(apiMws, middleware.Authorize(opts.JwtValidator))
	}

	clienteHandler := handlers.NewClienteHTTPHandler(clienteSvc)

	// cliente
	clienteAPI := e.Group("/api/cliente", apiMws...)
	clienteAPI.GET("", clienteHandler.GetAll)
	clienteAPI.GET("/search", clienteHandler.Search)
	clienteAPI.GET("/:ruc", clienteHandler.Get)
	clienteAPI.POST("", clienteHandler.Post)
	clienteAPI.PUT("/:ruc", clienteHandler.Put)
	clienteAPI.PATCH("/:ruc", clienteHandler.Patch)
	clienteAPI.DELETE("/:ruc", clienteHandler.DeleteByRUC)

	return e
}
