package cmdflags

import (
	"github.com/brunori/hallpass/session"
	"github.com/brunori/hallpass/web"
	"github.com/urfave/cli/v2"
)

func Shelf(out *string) cli.Flag {
	return &cli.StringFlag{
		Name:        "shelf",
		Aliases:     []string{"s", "store"},
		Usage:       "Path to the shelf database (empty means an in-memory shelf with the demo seed)",
		Destination: out,
		Value:       *out,
	}
}

func SealKeyEnvVar(out *string) cli.Flag {
	if len(*out) == 0 {
		*out = session.SealKeyEnvVar
	}
	return &cli.StringFlag{
		Name:        "seal-key-envvar-name",
		Usage:       "Name of the environment variable that holds the sealing key. The key itself should not be passed as an argument",
		Value:       *out,
		Destination: out,
	}
}

func CookieName(out *string) cli.Flag {
	if len(*out) == 0 {
		*out = web.DefaultCookieName
	}
	return &cli.StringFlag{
		Name:        "cookie-name",
		Usage:       "Name of the session cookie",
		Value:       *out,
		Destination: out,
	}
}
