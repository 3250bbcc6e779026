package main

import (
	"os"

	log "github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

type logConfig struct {
	debug bool
	file  string
}

func initLogger(c logConfig) {
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	log.SetOutput(os.Stderr)
	log.SetLevel(log.InfoLevel)

	if c.debug {
		log.SetLevel(log.DebugLevel)
	}

	if c.file != "" {
		log.SetOutput(&lumberjack.Logger{
			Filename:   c.file,
			MaxSize:    10,
			MaxBackups: 3,
			MaxAge:     28,
		})
	}
}
