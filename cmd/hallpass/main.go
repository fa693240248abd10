package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/brunori/hallpass/cmd/hallpass/serve"
	"github.com/brunori/hallpass/cmd/hallpass/todos"
	"github.com/brunori/hallpass/cmd/hallpass/users"
	"github.com/brunori/hallpass/internal/logutil"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"
)

func main() {
	var debug bool
	app := &cli.App{
		Name:  "hallpass",
		Usage: "Cookie-session authentication in front of your stuff",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "debug",
				Usage:       "Log debug information",
				Destination: &debug,
			},
		},
		Before: func(ctx *cli.Context) error {
			// same convenience the reference setup had: a local .env
			// file feeds the environment, absence is not an error
			_ = godotenv.Load()
			logutil.Setup(debug)
			return nil
		},
		Commands: []*cli.Command{
			serve.Cmd(),
			users.Cmd(),
			todos.Cmd(),
		},
	}
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()
	err := app.RunContext(ctx, os.Args)
	if err != nil {
		log.Error().Err(err).Msg("Application failed")
	}
}
