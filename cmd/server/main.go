package main

import (
	"log"

	"go.uber.org/zap"

	"github.com/kbajaj/emissions-backend-go/internal/api"
	"github.com/kbajaj/emissions-backend-go/internal/config"
	"github.com/kbajaj/emissions-backend-go/internal/logger"
	"github.com/kbajaj/emissions-backend-go/internal/store"
)

func main() {
	cfg := config.Load()

	zl, err := logger.New(cfg.LogLevel)
	if err != nil {
		log.Fatal("Failed to build logger:", err)
	}
	defer zl.Sync()

	var loader store.Loader
	if cfg.DataBaseURL != "" {
		loader = store.HTTPLoader{BaseURL: cfg.DataBaseURL}
	} else {
		loader = store.FileLoader{Dir: cfg.DataDir}
	}
	st := store.New(loader, zl)

	router := api.SetupRouter(cfg, st, zl)

	zl.Info("server starting", zap.String("port", cfg.Port))
	if err := router.Run(cfg.Port); err != nil {
		zl.Fatal("server failed", zap.Error(err))
	}
}
