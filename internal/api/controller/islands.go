package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pradiptars/energimap/internal/pkg/constants"
	"github.com/pradiptars/energimap/internal/pkg/geo"
)

// GetIsland serves the static map view config for one island.
func (c *Controller) GetIsland(ctx echo.Context) error {
	id := ctx.Param("id")

	cfg, ok := geo.IslandConfigFor(id)
	if !ok {
		return constants.ErrIslandNotFound
	}

	return ctx.JSON(http.StatusOK, struct {
		Island string `json:"island"`
		geo.IslandConfig
	}{Island: id, IslandConfig: cfg})
}

// GetIslandData serves the full enriched record set for an island's
// provinces, ordered province, energy kind, month.
func (c *Controller) GetIslandData(ctx echo.Context) error {
	records, err := c.energy.IslandRecords(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, records)
}

// GetIslandSummary aggregates an island's provinces into one series.
func (c *Controller) GetIslandSummary(ctx echo.Context) error {
	summary, err := c.energy.IslandSummary(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, summary)
}
