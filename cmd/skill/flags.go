package main

import (
	"flag"
	"os"

	"github.com/joho/godotenv"
)

var flagRunAddr string
var flagLogLevel string

func parseFlags() {
	flag.StringVar(&flagRunAddr, "a", ":8080", "address and port")
	flag.StringVar(&flagLogLevel, "l", "info", "log level")
	flag.Parse()

	// .env is optional, real environment variables win over it
	_ = godotenv.Load()

	if envRunAddr := os.Getenv("RUN_ADDR"); envRunAddr != "" {
		flagRunAddr = envRunAddr
	}

	if envLogLevel := os.Getenv("LOG_LEVEL"); envLogLevel != "" {
		flagLogLevel = envLogLevel
	}
}
