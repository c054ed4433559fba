package api

import (
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/infos-dinos/dinos-api/internal/api/handler"
	"github.com/infos-dinos/dinos-api/internal/api/middleware"
	"github.com/infos-dinos/dinos-api/internal/core/ports"
)

// Dependencies bundles everything the router needs wired in.
type Dependencies struct {
	Dinosaurs ports.DinosaurService
	Auth      ports.AuthService
	Tokens    ports.TokenVerifier
	Store     ports.DinosaurRepository
	Logger    zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
// GET on the collection is public; POST, PUT and DELETE sit behind the
// bearer-token middleware.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)
	e.Validator = handler.NewValidator()

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("infosdinos"))

	// --- Handlers ---
	dinoHandler := handler.NewDinosaurHandler(deps.Dinosaurs)
	authHandler := handler.NewAuthHandler(deps.Auth)
	healthHandler := handler.NewHealthHandler(deps.Store)
	requireToken := middleware.Auth(deps.Tokens)

	e.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, "Hello World - Welcome to the Dinosaurs API!")
	})

	// --- Auth routes ---
	e.POST("/api/auth/login", authHandler.Login)

	// --- Dinosaur routes ---
	e.GET("/api/dinosaures", dinoHandler.List)
	e.POST("/api/dinosaures", dinoHandler.Create, requireToken)
	e.PUT("/api/dinosaures/:id", dinoHandler.Update, requireToken)
	e.DELETE("/api/dinosaures/:id", dinoHandler.Delete, requireToken)

	// --- Health probes and metrics (no auth required) ---
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
