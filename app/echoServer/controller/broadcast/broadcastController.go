package broadcast

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/Bennnhere/LendIt-app/app/echoServer/controller"
	"github.com/Bennnhere/LendIt-app/app/echoServer/sessionx"
	"github.com/Bennnhere/LendIt-app/app/echoServer/validation"
	"github.com/Bennnhere/LendIt-app/model"
	broadcastsvc "github.com/Bennnhere/LendIt-app/service/broadcast"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type Controller struct {
	Svc broadcastsvc.Service
	V   *validator.Validate
	Log *slog.Logger
}

// POST /v1/broadcast  ("I'M COOKED" button)
func (h *Controller) Send(c echo.Context) error {
	var req model.BroadcastReq
	if c.Request().ContentLength != 0 {
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid json"})
		}
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "validation error", "errors": validation.Fields(err)})
	}

	sid, _ := sessionx.SessionIDFromContext(c)
	out, err := h.Svc.Broadcast(c.Request().Context(), sid, req.Message)
	if err != nil {
		if errors.Is(err, broadcastsvc.ErrNotDelivered) {
			h.Log.Error("broadcast failed", "err", err, "session_id", sid)
			return c.JSON(http.StatusBadGateway, echo.Map{"message": "broadcast not delivered"})
		}
		status, msg, ok := controller.StatusFor(err)
		if !ok {
			h.Log.Error("broadcast session lookup", "err", err, "session_id", sid)
		}
		return c.JSON(status, echo.Map{"message": msg})
	}
	return c.JSON(http.StatusOK, out)
}
