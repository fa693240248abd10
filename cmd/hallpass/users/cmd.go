package users

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/brunori/hallpass/internal/cmdflags"
	"github.com/brunori/hallpass/session"
	"github.com/brunori/hallpass/shelf"
	"github.com/urfave/cli/v2"
)

func Cmd() *cli.Command {
	var shelfPath string
	return &cli.Command{
		Name:  "users",
		Usage: "Manage the user roster of a shelf",
		Flags: []cli.Flag{
			cmdflags.Shelf(&shelfPath),
		},
		Subcommands: []*cli.Command{
			registerCmd(&shelfPath),
			hashCmd(),
		},
	}
}

func registerCmd(shelfPath *string) *cli.Command {
	var login string
	return &cli.Command{
		Name:  "register",
		Usage: "Register a new user (password is read from stdin)",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "login",
				Aliases:     []string{"l", "user"},
				Usage:       "Login of the user to register",
				Destination: &login,
				Required:    true,
			},
		},
		Action: func(ctx *cli.Context) error {
			if *shelfPath == "" {
				return errors.New("users: registering on an in-memory shelf makes no sense, pass --shelf")
			}
			password, err := readPassword()
			if err != nil {
				return err
			}
			hash, err := session.HashPassword(password)
			if err != nil {
				return err
			}
			store, err := shelf.Open(ctx.Context, *shelfPath)
			if err != nil {
				return err
			}
			defer store.Close()
			id, err := store.AddUser(ctx.Context, login, hash)
			if err != nil {
				return err
			}
			fmt.Printf("registered %v as user #%v\n", login, id)
			return nil
		},
	}
}

func hashCmd() *cli.Command {
	return &cli.Command{
		Name:  "hash",
		Usage: "Print the bcrypt hash of a password read from stdin",
		Action: func(ctx *cli.Context) error {
			password, err := readPassword()
			if err != nil {
				return err
			}
			hash, err := session.HashPassword(password)
			if err != nil {
				return err
			}
			fmt.Println(hash)
			return nil
		},
	}
}

func readPassword() (string, error) {
	sc := bufio.NewScanner(os.Stdin)
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return "", err
		}
		return "", errors.New("missing password from stdin")
	}
	password := strings.TrimSpace(sc.Text())
	if len(password) == 0 {
		return "", errors.New("missing password from stdin")
	}
	return password, nil
}
