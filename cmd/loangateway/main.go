package main

import (
	"log"

	"github.com/ibeloyar/loangateway/internal/app"
	"github.com/ibeloyar/loangateway/internal/config"
	"github.com/ibeloyar/loangateway/pgk/logger"
)

func main() {
	cfg, err := config.Read()
	if err != nil {
		log.Fatal(err)
	}

	lg, err := logger.New(cfg.LogLevel)
	if err != nil {
		log.Fatal(err)
	}
	defer lg.Sync()

	if err := app.Run(cfg, lg); err != nil {
		lg.Fatal(err)
	}
}
