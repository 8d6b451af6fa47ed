// pipechat-proxy is the gateway variant whose pipeline tools proxy to a
// remote pipeline REST API. It needs PIPECHAT_AUTH_TOKEN in the environment
// and still serves the demo item catalog locally.
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
	apiBase := flag.String("api-base", server.DefaultPipelineAPIBase, "pipeline API base URL")
	level := flag.String("log-level", "info", "log level (debug, info, warn, error)")
	flag.Parse()

	logLevel, err := zerolog.ParseLevel(*level)
	if err != nil {
		logLevel = zerolog.InfoLevel
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		With().Timestamp().Logger().Level(logLevel)

	token := os.Getenv("PIPECHAT_AUTH_TOKEN")
	if token == "" {
		log.Fatal().Msg("PIPECHAT_AUTH_TOKEN environment variable is not set; set it to your pipeline API token")
	}

	g := server.NewGateway("pipechat-proxy", version, log)
	server.RegisterDemoItems(g)
	server.RegisterPipelineProxy(g, server.NewPipelineClient(*apiBase, token))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := g.ListenAndServe(ctx, *addr); err != nil {
		log.Fatal().Err(err).Msg("gateway failed")
	}
}
