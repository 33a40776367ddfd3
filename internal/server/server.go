package server

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"

	"example.com/event-planner/backend/internal/ai"
	"example.com/event-planner/backend/internal/catalog"
	"example.com/event-planner/backend/internal/config"
	"example.com/event-planner/backend/internal/handlers"
	"example.com/event-planner/backend/internal/ledger"
	"example.com/event-planner/backend/internal/notifications"
	"example.com/event-planner/backend/internal/payment"
)

// New собирает HTTP-сервер Echo с роутами и зависимостями.
func New(cfg config.Config, logger *slog.Logger, aiClient ai.Client) *echo.Echo {
	if logger == nil {
		logger = slog.Default()
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = NewValidator()

	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(requestLogger(logger))
	if len(cfg.CORS.AllowedOrigins) > 0 {
		e.Use(middleware.CORSWithConfig(middleware.CORSConfig{AllowOrigins: cfg.CORS.AllowedOrigins}))
	}

	notificationHub := notifications.NewHub()
	venueCatalog := catalog.New(time.Now())
	aiService := ai.NewService(aiClient, cfg.AI.AdviceTemperature)
	payments := payment.NewSimulator(cfg.Payment.Delay, cfg.Payment.Decline)

	store := ledger.NewStore(ledger.Dependencies{
		Estimates: aiService,
		Advisor:   aiService,
		Venues:    venueCatalog,
		Notifier:  notificationHub,
		Logger:    logger,
	}, ledger.Options{
		EventType:             cfg.Ledger.DefaultEventType,
		GuestCount:            cfg.Ledger.DefaultGuestCount,
		EstimateTimeout:       cfg.AI.Timeout,
		DiscardStaleEstimates: cfg.Ledger.DiscardStaleEstimates,
	}, cfg.Ledger.MaxSessions)

	sessionHandler := handlers.NewSessionHandler(store, venueCatalog, notificationHub, payments, cfg.Payment.DepositPercent, logger)
	catalogHandler := handlers.NewCatalogHandler(venueCatalog)
	notificationHandler := handlers.NewNotificationHandler(notificationHub)

	registerRoutes(
		e,
		sessionHandler,
		catalogHandler,
		notificationHandler,
		handlers.SessionMiddleware(store),
		[]echo.MiddlewareFunc{aiWriteDeadline(cfg), aiRateLimiter(cfg.AI)},
	)

	return e
}

// NewAIClient выбирает клиента AI-провайдера по конфигурации.
func NewAIClient(cfg config.AIConfig) ai.Client {
	switch strings.ToLower(cfg.Provider) {
	case "gemini":
		return ai.NewGeminiClient(cfg.APIKey, cfg.BaseURL, cfg.Model, cfg.Timeout, cfg.MaxOutputTokens)
	default:
		return ai.NewGroqClient(cfg.APIKey, cfg.BaseURL, cfg.Model, cfg.Timeout, cfg.MaxOutputTokens)
	}
}

// NewHTTPServer создает net/http сервер с заданными таймаутами.
func NewHTTPServer(cfg config.ServerConfig, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:         cfg.Addr(),
		Handler:      handler,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}
}

func requestLogger(logger *slog.Logger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:       true,
		LogStatus:    true,
		LogMethod:    true,
		LogLatency:   true,
		LogRemoteIP:  true,
		LogError:     true,
		LogRequestID: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			attrs := []slog.Attr{
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.String("remote_ip", v.RemoteIP),
				slog.String("request_id", v.RequestID),
				slog.Duration("latency", v.Latency),
			}

			if v.Error != nil {
				attrs = append(attrs, slog.String("error", v.Error.Error()))
			}

			msg := "request completed"
			if v.Status >= http.StatusInternalServerError {
				logger.LogAttrs(c.Request().Context(), slog.LevelError, msg, attrs...)
				return nil
			}

			logger.LogAttrs(c.Request().Context(), slog.LevelInfo, msg, attrs...)
			return nil
		},
	})
}

// aiWriteDeadline продлевает дедлайн записи на время вызова AI.
func aiWriteDeadline(cfg config.Config) echo.MiddlewareFunc {
	window := cfg.Server.WriteTimeout + cfg.AI.Timeout

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if cfg.Server.WriteTimeout > 0 {
				_ = http.NewResponseController(c.Response().Writer).SetWriteDeadline(time.Now().Add(window))
			}
			return next(c)
		}
	}
}

func aiRateLimiter(cfg config.AIConfig) echo.MiddlewareFunc {
	limit := rate.Limit(float64(cfg.RateLimitPerMinute) / 60.0)
	store := middleware.NewRateLimiterMemoryStoreWithConfig(middleware.RateLimiterMemoryStoreConfig{
		Rate:      limit,
		Burst:     cfg.RateLimitBurst,
		ExpiresIn: time.Minute,
	})

	return middleware.RateLimiter(store)
}
