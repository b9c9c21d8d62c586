package main

import (
	"io"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/katalvlaran/fuelroute/config"
)

// SetupLogger configures the standard logrus logger from cfg. Logs always go
// to stderr, so the result line on stdout stays clean; with cfg.File set they
// are also written to a rotated file.
func SetupLogger(cfg config.LogConfig) {
	level, err := log.ParseLevel(cfg.Level)
	if err != nil {
		log.Warnf("Invalid log level '%s', using 'info'", cfg.Level)
		level = log.InfoLevel
	}
	log.SetLevel(level)
	log.SetFormatter(&log.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})

	if cfg.File == "" {
		log.SetOutput(os.Stderr)
		return
	}

	if err = os.MkdirAll(filepath.Dir(cfg.File), 0o755); err != nil {
		log.Warnf("cannot create log directory for %s: %v; logging to stderr only", cfg.File, err)
		log.SetOutput(os.Stderr)
		return
	}
	fileLogger := &lumberjack.Logger{
		Filename:   cfg.File,
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAgeDays,
		Compress:   cfg.Compress,
	}
	log.SetOutput(io.MultiWriter(os.Stderr, fileLogger))
}
