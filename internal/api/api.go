package api

import (
	"context"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"github.com/pradiptars/energimap/internal/api/controller"
	"github.com/pradiptars/energimap/internal/pkg/logger"
)

type APIService struct {
	router *echo.Echo
}

func (svc *APIService) Serve(addr string) {
	logger.Fatal(context.Background(), svc.router.Start(addr))
}

func (svc *APIService) Shutdown(ctx context.Context) error {
	return svc.router.Shutdown(ctx)
}

func NewAPIService(cntrl *controller.Controller, corsOrigin string) (*APIService, error) {
	svc := &APIService{router: echo.New()}

	svc.router.HideBanner = true
	svc.router.Logger.SetLevel(log.OFF)
	svc.router.Validator = NewValidator()
	svc.router.JSONSerializer = NewSonicSerializer()
	svc.router.HTTPErrorHandler = httpErrorHandler
	svc.router.Use(RequestIDMiddleware)
	svc.router.Use(middleware.Logger())
	svc.router.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{corsOrigin},
		AllowMethods: []string{echo.GET, echo.PUT, echo.POST, echo.DELETE},
		AllowHeaders: []string{"Content-Type", "Authorization"},
	}))

	api := svc.router.Group("/api/v1")

	api.POST("/chat", cntrl.Chat)

	islands := api.Group("/islands")
	islands.GET("/:id", cntrl.GetIsland)
	islands.GET("/:id/data", cntrl.GetIslandData)
	islands.GET("/:id/summary", cntrl.GetIslandSummary)

	provinces := api.Group("/provinces")
	provinces.GET("/:name/summary", cntrl.GetProvinceSummary)

	admin := api.Group("/admin")
	admin.POST("/seed", cntrl.SeedDataset)

	return svc, nil
}
