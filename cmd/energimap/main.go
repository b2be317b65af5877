package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/pradiptars/energimap/internal/api"
	"github.com/pradiptars/energimap/internal/api/controller"
	"github.com/pradiptars/energimap/internal/pkg/constants"
	"github.com/pradiptars/energimap/internal/pkg/genai"
	"github.com/pradiptars/energimap/internal/pkg/logger"
	"github.com/pradiptars/energimap/internal/pkg/seed"
	"github.com/pradiptars/energimap/internal/pkg/store"
	"github.com/pradiptars/energimap/internal/pkg/store/xpgx"
	"github.com/pradiptars/energimap/internal/service/analysis"
	"github.com/pradiptars/energimap/internal/service/energy"
	"github.com/spf13/viper"
)

func main() {
	ctx := context.Background()
	initConfig(ctx)
	defer logger.Sync()

	pool, err := xpgx.NewPool(ctx, viper.GetString(constants.ViperDatabaseDSN))
	if err != nil {
		logger.Fatal(ctx, err)
	}
	defer pool.Close()

	st := store.NewStore(pool)

	generator, err := genai.NewClient(genai.Config{
		Endpoint: viper.GetString(constants.ViperGenAIEndpoint),
		Model:    viper.GetString(constants.ViperGenAIModel),
		APIKey:   viper.GetString(constants.ViperGenAIAPIKey),
	})
	if err != nil {
		logger.Fatal(ctx, err)
	}

	multipliers := energy.Multipliers{
		Solar:          viper.GetFloat64(constants.ViperSolarMultiplier),
		Wind:           viper.GetFloat64(constants.ViperWindMultiplier),
		Hydro:          viper.GetFloat64(constants.ViperHydroMultiplier),
		BaseEfficiency: viper.GetInt(constants.ViperBaseEfficiency),
	}

	cntrl := controller.NewController(
		energy.NewService(st, multipliers),
		analysis.NewService(generator, analysis.Config{
			APIKey: viper.GetString(constants.ViperGenAIAPIKey),
		}),
		seed.NewLoader(st),
		viper.GetString(constants.ViperDatasetPath),
	)

	svc, err := api.NewAPIService(cntrl, viper.GetString(constants.ViperCORSOrigin))
	if err != nil {
		logger.Fatal(ctx, err)
	}

	go svc.Serve(viper.GetString(constants.ViperListenAddr))
	logger.Infof(ctx, "energimap listening on %s", viper.GetString(constants.ViperListenAddr))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := svc.Shutdown(shutdownCtx); err != nil {
		logger.Errorf(ctx, "shutdown: %s", err.Error())
	}
}

func initConfig(ctx context.Context) {
	viper.SetDefault(constants.ViperListenAddr, ":8080")
	viper.SetDefault(constants.ViperCORSOrigin, "http://localhost:3000")
	viper.SetDefault(constants.ViperGenAIEndpoint, "https://generativelanguage.googleapis.com/v1beta/openai")
	viper.SetDefault(constants.ViperGenAIModel, "gemini-1.5-flash")
	viper.SetDefault(constants.ViperDatasetPath, "data/monthly_avg.json")
	viper.SetDefault(constants.ViperSolarMultiplier, 1.05)
	viper.SetDefault(constants.ViperWindMultiplier, 0.95)
	viper.SetDefault(constants.ViperHydroMultiplier, 1.10)
	viper.SetDefault(constants.ViperBaseEfficiency, 85)

	viper.SetEnvPrefix("energimap")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	if err := viper.ReadInConfig(); err != nil {
		logger.Warnf(ctx, "no config file, using env and defaults: %s", err.Error())
	}
}
