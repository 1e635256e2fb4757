package rental

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/Bennnhere/LendIt-app/app/echoServer/controller"
	"github.com/Bennnhere/LendIt-app/app/echoServer/sessionx"
	rs "github.com/Bennnhere/LendIt-app/service/rental"
	"github.com/labstack/echo/v4"
)

type Controller struct {
	Svc rs.Service
	Log *slog.Logger
}

// POST /v1/items/:id/request
func (h *Controller) Request(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}
	sid, _ := sessionx.SessionIDFromContext(c)

	ar, err := h.Svc.Request(c.Request().Context(), sid, id)
	if err != nil {
		status, msg, ok := controller.StatusFor(err)
		if !ok {
			h.Log.Error("rental request", "err", err, "session_id", sid, "item_id", id)
		}
		return c.JSON(status, echo.Map{"message": msg})
	}
	return c.JSON(http.StatusCreated, RequestResp{
		Message: "Currently Borrowing: " + ar.ItemName,
		Rental:  ar,
	})
}

// GET /v1/rental  (Rental Status view)
func (h *Controller) Status(c echo.Context) error {
	sid, _ := sessionx.SessionIDFromContext(c)
	m, err := h.Svc.Status(c.Request().Context(), sid)
	if err != nil {
		status, msg, ok := controller.StatusFor(err)
		if !ok {
			h.Log.Error("rental status", "err", err, "session_id", sid)
		}
		return c.JSON(status, echo.Map{"message": msg})
	}
	if !m.Active {
		return c.JSON(http.StatusOK, StatusResp{Meter: m, Message: "No active transactions."})
	}
	return c.JSON(http.StatusOK, StatusResp{Meter: m, PaymentMethods: paymentMethods})
}
