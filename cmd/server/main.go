package main

import (
	"log"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/nikhil10982006/MRI-Soundscape/internal"
	"github.com/nikhil10982006/MRI-Soundscape/internal/api"
	"github.com/nikhil10982006/MRI-Soundscape/internal/config"
	"github.com/nikhil10982006/MRI-Soundscape/internal/storage"
)

func main() {
	cfg := config.Load()

	level, err := zapcore.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Fatalf("invalid LOG_LEVEL %q: %v", cfg.LogLevel, err)
	}
	var zapCfg zap.Config
	if cfg.Env == "production" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)
	zapLogger, err := zapCfg.Build()
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer zapLogger.Sync()
	logger := internal.NewZapLogger(zapLogger.Sugar())

	repos := storage.NewMemoryRepositories(logger)
	app := api.NewApp(logger, repos)
	r := api.NewRouter(app)

	logger.Infof("Server running on %s", cfg.Addr)
	if err := r.Run(cfg.Addr); err != nil {
		logger.Fatalf("failed to start server: %v", err)
	}
}
