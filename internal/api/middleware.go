package api

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const HeaderRequestID = echo.HeaderXRequestID

// RequestIDMiddleware stamps every request with a UUID so log lines from
// one analysis round trip can be correlated.
func RequestIDMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		id := ctx.Request().Header.Get(HeaderRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		ctx.Response().Header().Set(HeaderRequestID, id)
		return next(ctx)
	}
}
