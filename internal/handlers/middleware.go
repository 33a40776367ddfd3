package handlers

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"example.com/event-planner/backend/internal/ledger"
)

const ContextSessionKey = "planner_session"

// SessionMiddleware находит сессию по :id и сохраняет ее в контексте.
func SessionMiddleware(store *ledger.Store) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sessionID, err := uuid.Parse(c.Param("id"))
			if err != nil {
				return badRequest(c, "invalid session id")
			}

			session, ok := store.Get(sessionID)
			if !ok {
				return notFound(c, "session not found")
			}

			c.Set(ContextSessionKey, session)
			return next(c)
		}
	}
}

// SessionFromContext извлекает сессию, найденную SessionMiddleware.
func SessionFromContext(c echo.Context) (*ledger.Session, bool) {
	session, ok := c.Get(ContextSessionKey).(*ledger.Session)
	return session, ok && session != nil
}
