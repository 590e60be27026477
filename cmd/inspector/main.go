package main

import (
	"context"

	"github.com/skye-prog/ai-workorder-management/internal/client/cli"
	"github.com/skye-prog/ai-workorder-management/internal/client/config"
	"github.com/skye-prog/ai-workorder-management/internal/logging"
)

func main() {
	cfg := config.LoadConfig()
	log := logging.New(cfg.LogLevel)

	app := cli.NewApp(cfg, log)
	app.Run(context.Background())
}
