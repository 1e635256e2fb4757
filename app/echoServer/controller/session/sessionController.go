package session

import (
	"log/slog"
	"net/http"

	"github.com/Bennnhere/LendIt-app/app/echoServer/controller"
	"github.com/Bennnhere/LendIt-app/app/echoServer/sessionx"
	sessionsvc "github.com/Bennnhere/LendIt-app/service/session"
	"github.com/labstack/echo/v4"
)

type Controller struct {
	Svc sessionsvc.Service
	Log *slog.Logger
}

// Start
// @Summary      Start session
// @Description  Creates a session seeded with the demo catalog and returns its bearer token
// @Tags         sessions
// @Produce      json
// @Success      201  {object}  sessionsvc.Started
// @Failure      500  {object}  map[string]any
// @Router       /v1/sessions [post]
func (h *Controller) Start(c echo.Context) error {
	out, err := h.Svc.Start(c.Request().Context())
	if err != nil {
		rid := c.Response().Header().Get(echo.HeaderXRequestID)
		h.Log.Error("session start failed", "err", err, "req_id", rid)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusCreated, out)
}

// End
// @Summary      End session
// @Tags         sessions
// @Security     BearerAuth
// @Success      204
// @Failure      401  {object}  map[string]any
// @Router       /v1/sessions [delete]
func (h *Controller) End(c echo.Context) error {
	sid, _ := sessionx.SessionIDFromContext(c)
	if err := h.Svc.End(c.Request().Context(), sid); err != nil {
		status, msg, ok := controller.StatusFor(err)
		if !ok {
			h.Log.Error("session end failed", "err", err, "session_id", sid)
		}
		return c.JSON(status, echo.Map{"message": msg})
	}
	return c.NoContent(http.StatusNoContent)
}
