package sessionx

import (
	"errors"

	"github.com/labstack/echo/v4"
)

// ContextKey is where the auth middleware stores the verified session id.
const ContextKey = "session_id"

func SessionIDFromContext(c echo.Context) (string, error) {
	id, ok := c.Get(ContextKey).(string)
	if !ok || id == "" {
		return "", errors.New("no session in context")
	}
	return id, nil
}
