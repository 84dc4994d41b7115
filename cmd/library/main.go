package main

import (
	"os"

	"github.com/project/catalog/config"
	"github.com/project/catalog/internal/app"
	"github.com/project/catalog/pkg/logger"
	log "github.com/sirupsen/logrus"
)

func main() {
	cfg, err := config.NewConfig()

	if err != nil {
		log.Fatalf("can not get application config: %s", err)
	}

	l, err := logger.NewFileLogger(cfg.Log.File)

	if err != nil {
		log.Fatalf("can not initialize logger: %s", err)
	}

	defer func() { _ = l.Sync() }()

	if err = app.Run(l, cfg, os.Stdin, os.Stdout); err != nil {
		_ = l.Sync()
		log.Fatalf("library stopped: %s", err)
	}
}
