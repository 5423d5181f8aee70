package main

import (
	"fmt"
	"os"

	"lgh_sales/api"
	"lgh_sales/cli"
	"lgh_sales/internal/config"
	"lgh_sales/internal/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	cfg, cfgErr := config.Load()

	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error creating logger: %v\n", err)
		os.Exit(cli.ExitError)
	}
	if cfgErr != nil {
		log.Warn("could not read .env file, using environment and defaults", zap.Error(cfgErr))
	}

	args := os.Args[1:]
	if len(args) > 0 && args[0] == "serve" {
		serve(cfg, log)
		return
	}

	code := cli.Run(args, os.Stdout, os.Stderr, log)
	_ = log.Sync()
	os.Exit(code)
}

func serve(cfg *config.Config, log *zap.Logger) {
	defer log.Sync()

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()
	api.InitRoutes(r, log)

	log.Info("starting server", zap.String("app", cfg.App.Name), zap.String("port", cfg.App.Port))
	if err := r.Run(":" + cfg.App.Port); err != nil {
		panic(fmt.Errorf("error trying to start server: %v", err))
	}
}
