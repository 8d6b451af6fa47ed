// pipechat-server is the demo tool gateway: MCP over streamable HTTP at
// /mcp plus REST mirrors of the same catalogs at /items and /pipelines.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"pipechat/server"
)

const version = "1.0.0"

func main() {
	addr := flag.String("addr", ":8000", "listen address")
	level := flag.String("log-level", "info", "log level (debug, info, warn, error)")
	flag.Parse()

	logLevel, err := zerolog.ParseLevel(*level)
	if err != nil {
		logLevel = zerolog.InfoLevel
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		With().Timestamp().Logger().Level(logLevel)

	g := server.NewGateway("pipechat-server", version, log)
	server.RegisterDemoItems(g)
	server.RegisterDemoPipelines(g)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := g.ListenAndServe(ctx, *addr); err != nil {
		log.Fatal().Err(err).Msg("gateway failed")
	}
}
