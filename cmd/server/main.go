// Package main - Entry point for the wageman HTTP server
package main

import (
	"flag"
	"net/http"
	"os"
	"time"

	"go.uber.org/zap"

	"wageman/api"
	"wageman/cmd/cli/cmd"
	"wageman/internal/config"
	"wageman/internal/logging"
)

func main() {
	addr := flag.String("addr", ":8080", "Server address")
	cfgFile := flag.String("config", config.DefaultPath(), "config file")
	flag.Parse()

	cfg, err := config.Load(*cfgFile)
	if err != nil {
		logging.Error("load config", zap.Error(err))
		os.Exit(1)
	}
	if cfg.Logging.Level == config.Default().Logging.Level {
		cfg.Logging.Level = "info"
	}
	if err := logging.Initialize(cfg.Logging); err != nil {
		logging.Error("initialize logging", zap.Error(err))
		os.Exit(1)
	}
	defer logging.Sync()

	srv := &http.Server{
		Addr:              *addr,
		Handler:           api.NewServer(cmd.Version),
		ReadHeaderTimeout: 5 * time.Second,
	}

	logging.Info("wageman server listening", zap.String("addr", *addr), zap.String("version", cmd.Version))
	if err := srv.ListenAndServe(); err != nil {
		logging.Error("server stopped", zap.Error(err))
		logging.Sync()
		os.Exit(1)
	}
}
