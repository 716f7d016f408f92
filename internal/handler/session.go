package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/dharmasatrya/flightbooking/internal/session"
)

const HeaderSessionID = "X-Session-ID"

// SessionMiddleware loads the caller's booking session, or starts one, and
// puts it on the request context. The state is saved just before the
// response is written so the next request sees it.
func SessionMiddleware(store session.Store, logger *zap.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			ctx := req.Context()

			var state *session.State
			if id := req.Header.Get(HeaderSessionID); id != "" {
				loaded, err := store.Load(ctx, id)
				switch {
				case err == nil:
					state = loaded
				case errors.Is(err, session.ErrSessionNotFound):
				default:
					logger.Error("session load failed", zap.String("session_id", id), zap.Error(err))
					return errorJSON(c, http.StatusServiceUnavailable, "session_unavailable", "Booking session could not be loaded")
				}
			}
			if state == nil {
				state = session.New()
			}

			c.Response().Header().Set(HeaderSessionID, state.ID())
			c.Response().Before(func() {
				if err := store.Save(ctx, state); err != nil {
					logger.Error("session save failed", zap.String("session_id", state.ID()), zap.Error(err))
				}
			})

			c.SetRequest(req.WithContext(session.WithState(ctx, state)))
			return next(c)
		}
	}
}

func stateOf(c echo.Context) *session.State {
	return session.FromContext(c.Request().Context())
}
