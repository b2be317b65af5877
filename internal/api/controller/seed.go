package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// SeedDataset wipes and reloads the dataset from the configured file.
// Maintenance endpoint; not meant to run while the dashboard is being read.
func (c *Controller) SeedDataset(ctx echo.Context) error {
	report, err := c.loader.Run(ctx.Request().Context(), c.datasetPath)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, report)
}
