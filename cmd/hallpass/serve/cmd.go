package serve

import (
	"context"

	"github.com/brunori/hallpass/internal/cmdflags"
	"github.com/brunori/hallpass/internal/httpserver"
	"github.com/brunori/hallpass/internal/logutil"
	"github.com/brunori/hallpass/internal/middleware"
	"github.com/brunori/hallpass/session"
	"github.com/brunori/hallpass/shelf"
	"github.com/brunori/hallpass/web"
	"github.com/urfave/cli/v2"
)

func Cmd() *cli.Command {
	bindAddr := "localhost:7010"
	var shelfPath string
	var sealKeyEnvVar string
	var cookieName string
	var insecureCookie bool
	return &cli.Command{
		Name:  "serve",
		Usage: "Start the hallpass server",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "bind",
				Usage:       "Address to bind the server to",
				Value:       bindAddr,
				Destination: &bindAddr,
			},
			&cli.BoolFlag{
				Name:        "insecure-cookie",
				Usage:       "Allow the session cookie over plain HTTP (local development only)",
				Destination: &insecureCookie,
			},
			cmdflags.Shelf(&shelfPath),
			cmdflags.SealKeyEnvVar(&sealKeyEnvVar),
			cmdflags.CookieName(&cookieName),
		},
		Action: func(ctx *cli.Context) error {
			// fail closed: no valid key, no traffic
			keyfn, err := session.KeyFNFromEnv(sealKeyEnvVar, nil, nil)
			if err != nil {
				return err
			}
			store, err := openShelf(ctx.Context, shelfPath)
			if err != nil {
				return err
			}
			defer store.Close()
			realm := web.NewRealm(session.NewValidator(store, keyfn), keyfn, cookieName, insecureCookie)
			handler := middleware.RequestLog(logutil.GetOrDefault(ctx.Context), web.AsHandler(store, realm))
			return httpserver.Serve(ctx.Context, bindAddr, handler)
		},
	}
}

func openShelf(ctx context.Context, path string) (*shelf.Shelf, error) {
	if path != "" {
		return shelf.Open(ctx, path)
	}
	log := logutil.GetOrDefault(ctx)
	log.Warn().Msg("No shelf given, serving the in-memory demo seed")
	store, err := shelf.OpenInMemory(ctx)
	if err != nil {
		return nil, err
	}
	err = store.Seed(ctx)
	if err != nil {
		store.Close()
		return nil, err
	}
	return store, nil
}
