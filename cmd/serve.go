package cmd

import (
	"context"
	"os"
	"os/signal"

	"github.com/df07/go-tile-pathtracer/web/server"
	"github.com/urfave/cli"
)

// Serve progressive renders over HTTP until interrupted.
func Serve(ctx *cli.Context) error {
	setupLogging(ctx)

	runCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return server.NewServer(ctx.String("addr")).Start(runCtx)
}
