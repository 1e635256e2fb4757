package settlement

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/Bennnhere/LendIt-app/app/echoServer/controller"
	"github.com/Bennnhere/LendIt-app/app/echoServer/sessionx"
	"github.com/Bennnhere/LendIt-app/app/echoServer/validation"
	"github.com/Bennnhere/LendIt-app/model"
	ss "github.com/Bennnhere/LendIt-app/service/settlement"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

const xlsxMIME = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type Controller struct {
	Svc ss.Service
	V   *validator.Validate
	Log *slog.Logger
}

func (h *Controller) fail(c echo.Context, op string, err error) error {
	status, msg, ok := controller.StatusFor(err)
	if !ok {
		sid, _ := sessionx.SessionIDFromContext(c)
		h.Log.Error(op, "err", err, "session_id", sid)
	}
	return c.JSON(status, echo.Map{"message": msg})
}

// POST /v1/rental/finish
// @Summary      Finish & return item
// @Description  wallet settles immediately; cash returns the amount to hand over and waits for confirm-cash
// @Tags         rental
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        payload  body  model.FinishReq  false  "payment method (default cash)"
// @Success      200  {object}  settlement.Outcome
// @Failure      409  {object}  map[string]any "no active rental"
// @Router       /v1/rental/finish [post]
func (h *Controller) Finish(c echo.Context) error {
	var req model.FinishReq
	if c.Request().ContentLength != 0 {
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid json"})
		}
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"message": "validation error",
			"errors":  validation.Fields(err),
		})
	}
	if req.Method == "" {
		req.Method = model.PayCash
	}

	sid, _ := sessionx.SessionIDFromContext(c)
	out, err := h.Svc.Finish(c.Request().Context(), sid, req.Method)
	if err != nil {
		return h.fail(c, "rental finish", err)
	}
	return c.JSON(http.StatusOK, out)
}

// POST /v1/rental/confirm-cash
func (h *Controller) ConfirmCash(c echo.Context) error {
	sid, _ := sessionx.SessionIDFromContext(c)
	out, err := h.Svc.ConfirmCash(c.Request().Context(), sid)
	if err != nil {
		return h.fail(c, "confirm cash", err)
	}
	return c.JSON(http.StatusOK, out)
}

// GET /v1/rental/history
func (h *Controller) History(c echo.Context) error {
	sid, _ := sessionx.SessionIDFromContext(c)
	rows, err := h.Svc.History(c.Request().Context(), sid)
	if err != nil {
		return h.fail(c, "history", err)
	}
	return c.JSON(http.StatusOK, echo.Map{"data": rows})
}

// GET /v1/rental/history.xlsx
func (h *Controller) Export(c echo.Context) error {
	sid, _ := sessionx.SessionIDFromContext(c)
	raw, err := h.Svc.Export(c.Request().Context(), sid)
	if err != nil {
		return h.fail(c, "history export", err)
	}
	name := fmt.Sprintf("lendit_rentals_%s.xlsx", time.Now().UTC().Format("2006-01-02"))
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", name))
	return c.Blob(http.StatusOK, xlsxMIME, raw)
}
