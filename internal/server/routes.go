package server

import (
	"github.com/labstack/echo/v4"

	"example.com/event-planner/backend/internal/handlers"
)

func registerRoutes(
	e *echo.Echo,
	sessionHandler *handlers.SessionHandler,
	catalogHandler *handlers.CatalogHandler,
	notificationHandler *handlers.NotificationHandler,
	sessionMiddleware echo.MiddlewareFunc,
	aiMiddleware []echo.MiddlewareFunc,
) {
	e.GET("/health", sessionHandler.Health)

	api := e.Group("/api/v1")

	catalogGroup := api.Group("/catalog")
	catalogGroup.GET("/venues", catalogHandler.Venues)
	catalogGroup.GET("/venues/:id/availability", catalogHandler.Availability)
	catalogGroup.GET("/vendors", catalogHandler.Vendors)
	catalogGroup.GET("/options", catalogHandler.Options)
	catalogGroup.GET("/experts", catalogHandler.Experts)
	catalogGroup.GET("/travel", catalogHandler.Travel)

	api.POST("/sessions", sessionHandler.Create)

	sessions := api.Group("/sessions/:id", sessionMiddleware)
	sessions.GET("", sessionHandler.Get)
	sessions.DELETE("", sessionHandler.Delete)
	sessions.GET("/stream", notificationHandler.Stream)

	sessions.POST("/estimate", sessionHandler.Estimate, aiMiddleware...)
	sessions.POST("/chat", sessionHandler.Chat, aiMiddleware...)

	sessions.GET("/ledger", sessionHandler.Ledger)
	sessions.GET("/ledger/summary", sessionHandler.LedgerSummary)
	sessions.GET("/ledger/export/json", sessionHandler.ExportJSON)
	sessions.GET("/ledger/export/csv", sessionHandler.ExportCSV)

	sessions.POST("/hires/proposal", sessionHandler.ProposeHire)
	sessions.DELETE("/hires/proposal", sessionHandler.CancelHire)
	sessions.POST("/hires/confirm", sessionHandler.ConfirmHire)
	sessions.DELETE("/hires/contracts/:vendorId", sessionHandler.RemoveContract)

	sessions.POST("/expenses", sessionHandler.AddExpense)
	sessions.DELETE("/expenses/:expenseId", sessionHandler.RemoveExpense)

	sessions.POST("/expert", sessionHandler.StartExpert)
	sessions.DELETE("/expert", sessionHandler.EndExpert)

	sessions.POST("/bookings", sessionHandler.Book)
}
