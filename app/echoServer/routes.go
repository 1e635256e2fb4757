package echoServer

import (
	"net/http"

	"github.com/Bennnhere/LendIt-app/app/echoServer/controller/broadcast"
	"github.com/Bennnhere/LendIt-app/app/echoServer/controller/item"
	"github.com/Bennnhere/LendIt-app/app/echoServer/controller/rental"
	"github.com/Bennnhere/LendIt-app/app/echoServer/controller/session"
	"github.com/Bennnhere/LendIt-app/app/echoServer/controller/settlement"
	"github.com/Bennnhere/LendIt-app/app/echoServer/sessionx"
	jwtutil "github.com/Bennnhere/LendIt-app/util/jwt"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
)

type C struct {
	Session       *session.Controller
	Item          *item.Controller
	Rental        *rental.Controller
	Settlement    *settlement.Controller
	Broadcast     *broadcast.Controller
	SessionSecret string
}

func Register(e *echo.Echo, c C) {
	// Public
	pub := e.Group("/v1")
	pub.POST("/sessions", c.Session.Start)

	// Session-scoped
	auth := e.Group("/v1")
	auth.Use(echojwt.WithConfig(echojwt.Config{
		TokenLookup: "header:Authorization:Bearer ",
		ContextKey:  sessionx.ContextKey,
		ParseTokenFunc: func(_ echo.Context, token string) (interface{}, error) {
			return jwtutil.ParseAuth(token, c.SessionSecret)
		},
		ErrorHandler: func(ctx echo.Context, err error) error {
			reqID := ctx.Response().Header().Get(echo.HeaderXRequestID)
			ctx.Logger().Warnf("[AUTH] rejected session token req_id=%s ip=%s err=%v", reqID, ctx.RealIP(), err)
			return ctx.JSON(http.StatusUnauthorized, echo.Map{"message": "unauthorized"})
		},
	}))

	auth.DELETE("/sessions", c.Session.End)

	// Borrow
	auth.GET("/items", c.Item.Available)
	auth.POST("/items/:id/request", c.Rental.Request)
	auth.POST("/broadcast", c.Broadcast.Send)

	// Lend
	auth.POST("/items", c.Item.Create)
	auth.GET("/items/all", c.Item.List)

	// Rental Status
	auth.GET("/rental", c.Rental.Status)
	auth.POST("/rental/finish", c.Settlement.Finish)
	auth.POST("/rental/confirm-cash", c.Settlement.ConfirmCash)
	auth.GET("/rental/history", c.Settlement.History)
	auth.GET("/rental/history.xlsx", c.Settlement.Export)
}
