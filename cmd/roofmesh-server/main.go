package main

import (
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/rooflens/roofmesh/internal/config"
	"github.com/rooflens/roofmesh/internal/pkg/logger"
	"github.com/rooflens/roofmesh/internal/server"
	"github.com/rooflens/roofmesh/internal/viewer"
)

func main() {
	cfg := config.Load()
	log := logger.New(cfg.App.LogFilePath, cfg.IsProduction())
	defer log.Sync()

	session := viewer.New(log, nil)

	if cfg.App.ModelPath != "" {
		session.Load(cfg.App.ModelPath)

		if cfg.App.WatchModel {
			fw, err := session.WatchFile(cfg.App.ModelPath)
			if err != nil {
				log.Fatal("failed to watch model file", zap.Error(err))
			}
			defer fw.Close()
		}
	}

	srv := server.New(session, log)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		log.Info("shutting down")
		srv.Shutdown()
	}()

	if err := srv.Listen(":" + cfg.App.Port); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}
