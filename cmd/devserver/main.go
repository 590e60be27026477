package main

import (
	"context"
	"flag"
	"net/http"
	"os"

	"github.com/skye-prog/ai-workorder-management/internal/devserver"
	"github.com/skye-prog/ai-workorder-management/internal/logging"
)

func main() {
	addr := flag.String("addr", ":8000", "listen address")
	level := flag.String("l", "info", "log level")
	flag.Parse()

	log := logging.New(*level)
	srv := devserver.New(log)

	ctx := context.Background()
	log.Info(ctx, "devserver listening", "addr", *addr)
	if err := http.ListenAndServe(*addr, srv.Handler()); err != nil {
		log.Error(ctx, "server stopped", "error", err)
		os.Exit(1)
	}
}
