package api

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pradiptars/energimap/internal/domain"
	"github.com/pradiptars/energimap/internal/pkg/constants"
)

func httpErrorHandler(err error, c echo.Context) {
	msg := err.Error()
	code := http.StatusInternalServerError

	for e := err; e != nil; e = errors.Unwrap(e) {
		if ce, ok := e.(*constants.CodedError); ok {
			code = ce.Code()
			break
		}
		var he *echo.HTTPError
		if errors.As(e, &he) {
			code = he.Code
			break
		}
	}

	_ = c.JSON(code, domain.ErrorResponse{
		Message: msg,
		Code:    code,
	})
}
