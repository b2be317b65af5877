package controller

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

// GetProvinceSummary computes the dashboard payload for one province.
// Province names are canonical upper-case in the dataset.
func (c *Controller) GetProvinceSummary(ctx echo.Context) error {
	name := strings.ToUpper(ctx.Param("name"))

	summary, err := c.energy.ProvinceSummary(ctx.Request().Context(), name)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, summary)
}
