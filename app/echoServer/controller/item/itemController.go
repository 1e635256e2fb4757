package item

import (
	"log/slog"
	"net/http"
	"slices"

	"github.com/Bennnhere/LendIt-app/app/echoServer/controller"
	"github.com/Bennnhere/LendIt-app/app/echoServer/sessionx"
	"github.com/Bennnhere/LendIt-app/app/echoServer/validation"
	"github.com/Bennnhere/LendIt-app/model"
	listingsvc "github.com/Bennnhere/LendIt-app/service/listing"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type Controller struct {
	Svc listingsvc.Service
	V   *validator.Validate
	Log *slog.Logger
}

func (h *Controller) fail(c echo.Context, op string, err error) error {
	status, msg, ok := controller.StatusFor(err)
	if !ok {
		h.Log.Error(op, "err", err, "req_id", c.Response().Header().Get(echo.HeaderXRequestID))
	}
	return c.JSON(status, echo.Map{"message": msg})
}

// GET /v1/items  (Borrow view)
func (h *Controller) Available(c echo.Context) error {
	sid, _ := sessionx.SessionIDFromContext(c)
	seq, err := h.Svc.BrowseAvailable(c.Request().Context(), sid)
	if err != nil {
		return h.fail(c, "browse items", err)
	}
	rows := slices.Collect(seq)
	if rows == nil {
		rows = []model.Item{}
	}
	return c.JSON(http.StatusOK, echo.Map{"data": rows})
}

// GET /v1/items/all
func (h *Controller) List(c echo.Context) error {
	sid, _ := sessionx.SessionIDFromContext(c)
	rows, err := h.Svc.List(c.Request().Context(), sid)
	if err != nil {
		return h.fail(c, "list items", err)
	}
	if rows == nil {
		rows = []model.Item{}
	}
	return c.JSON(http.StatusOK, echo.Map{"data": rows})
}

// POST /v1/items  (Lend view)
// @Summary      List an item
// @Tags         items
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        payload  body  model.ListItemReq  true  "Lend form"
// @Success      201  {object}  map[string]any
// @Failure      400  {object}  map[string]any
// @Router       /v1/items [post]
func (h *Controller) Create(c echo.Context) error {
	var req model.ListItemReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid json"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"message": "validation error",
			"errors":  validation.Fields(err),
		})
	}
	sid, _ := sessionx.SessionIDFromContext(c)
	it, err := h.Svc.ListItem(c.Request().Context(), sid, req.Name, req.Owner, req.Price)
	if err != nil {
		return h.fail(c, "list item", err)
	}
	return c.JSON(http.StatusCreated, echo.Map{
		"message": it.Name + " is now visible to others!",
		"item":    it,
	})
}
