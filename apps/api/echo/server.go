// Package echoapi exposes the REST API over echo.
package echoapi

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"golang.org/x/time/rate"

	"github.com/saraquenta/Sistema-EAME/core"
	"github.com/saraquenta/Sistema-EAME/core/activity"
	"github.com/saraquenta/Sistema-EAME/core/auth"
	"github.com/saraquenta/Sistema-EAME/core/discharge"
	"github.com/saraquenta/Sistema-EAME/core/discipline"
	"github.com/saraquenta/Sistema-EAME/core/evaluation"
	"github.com/saraquenta/Sistema-EAME/core/merit"
	"github.com/saraquenta/Sistema-EAME/core/report"
	"github.com/saraquenta/Sistema-EAME/core/trainee"
	"github.com/saraquenta/Sistema-EAME/core/user"
)

type (
	ServerDeps struct {
		Conf       *core.Config
		Logger     core.Logger
		Validate   *validator.Validate
		Translator ut.Translator

		AuthSvc       *auth.Service
		UserSvc       *user.Service
		TraineeSvc    *trainee.Service
		DisciplineSvc *discipline.Service
		EvaluationSvc *evaluation.Service
		MeritSvc      *merit.Service
		DischargeSvc  *discharge.Service
		ActivitySvc   *activity.Service
		ReportSvc     *report.Service
	}

	Server struct {
		deps     ServerDeps
		app      *echo.Echo
		shutdown chan os.Signal
		errors   chan error
	}
)

func NewServer(deps ServerDeps) *Server {
	s := &Server{
		deps:     deps,
		app:      echo.New(),
		shutdown: make(chan os.Signal, 1),
		errors:   make(chan error, 1),
	}
	signal.Notify(s.shutdown, os.Interrupt, syscall.SIGTERM)
	s.setup()
	return s
}

func (s *Server) setup() {
	conf := s.deps.Conf

	s.app.HideBanner = true
	s.app.Debug = conf.Debug
	s.app.Server.ReadTimeout = conf.Server.ReadTimeout
	s.app.Server.WriteTimeout = conf.Server.WriteTimeout
	s.app.HTTPErrorHandler = newAppHTTPErrorHandler(s.deps.Logger, s.deps.Translator, s.SignalShutdown)

	s.app.Pre(middleware.RemoveTrailingSlash())
	if !conf.TestMode {
		s.app.Use(middleware.Logger())
	}
	// do not recover in DEV|TEST mode
	if !(conf.Debug || conf.TestMode) {
		s.app.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{LogLevel: log.ERROR}))
	}
	s.app.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     conf.Server.CORSOrigins,
		AllowCredentials: true,
	}))
	s.app.Use(middleware.Secure())
	s.app.Use(middleware.BodyLimit(conf.Server.BodyLimit))
	if conf.Server.RateLimit > 0 {
		s.app.Use(middleware.RateLimiterWithConfig(newRateLimiterConfig(conf)))
	}

	api := s.app.Group("/api")
	api.GET("/health", s.health)

	authMw := newAuthMiddleware(s.deps.AuthSvc)
	registerAuthAPI(api, authMw, s.deps.AuthSvc, s.deps.Validate)

	authed := api.Group("", authMw...)
	registerTraineeAPI(authed, s.deps.TraineeSvc)
	registerDisciplineAPI(authed, s.deps.DisciplineSvc)
	registerEvaluationAPI(authed, s.deps.EvaluationSvc)
	registerMeritAPI(authed, s.deps.MeritSvc)
	registerDischargeAPI(authed, s.deps.DischargeSvc)
	registerActivityAPI(authed, s.deps.ActivitySvc)
	registerUserAPI(authed, s.deps.UserSvc)
	registerReportAPI(authed, s.deps.ReportSvc)
}

// newRateLimiterConfig allows conf.Server.RateLimit requests per window and client IP.
func newRateLimiterConfig(conf *core.Config) middleware.RateLimiterConfig {
	window := conf.Server.RateLimitWindow
	limit := rate.Limit(float64(conf.Server.RateLimit) / window.Seconds())
	return middleware.RateLimiterConfig{
		Store: middleware.NewRateLimiterMemoryStoreWithConfig(middleware.RateLimiterMemoryStoreConfig{
			Rate:      limit,
			Burst:     conf.Server.RateLimit,
			ExpiresIn: window,
		}),
		DenyHandler: func(ctx echo.Context, identifier string, err error) error {
			return echo.NewHTTPError(http.StatusTooManyRequests, "too many requests from this IP, try again later")
		},
	}
}

func (s *Server) health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, healthResponse{
		Status:    "ok",
		Message:   "Servidor EAME funcionando correctamente",
		Timestamp: nowFunc().UTC(),
		Build:     s.deps.Conf.Build,
	})
}

// Start blocks until the server stops; listen errors are sent to Errors.
func (s *Server) Start() {
	if err := s.app.Start(s.deps.Conf.Server.Host); err != nil && err != http.ErrServerClosed {
		s.errors <- err
	}
}

func (s *Server) Errors() <-chan error {
	return s.errors
}

func (s *Server) ShutdownSignal() <-chan os.Signal {
	return s.shutdown
}

// SignalShutdown asks main to shut the server down gracefully.
func (s *Server) SignalShutdown() {
	select {
	case s.shutdown <- syscall.SIGTERM:
	default: // already signalled
	}
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.app.Shutdown(ctx)
}

func (s *Server) Close() error {
	return s.app.Close()
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) { // for tests
	s.app.ServeHTTP(w, r)
}
