package todos

import (
	"errors"
	"fmt"

	"github.com/brunori/hallpass/internal/cmdflags"
	"github.com/brunori/hallpass/shelf"
	"github.com/urfave/cli/v2"
)

func Cmd() *cli.Command {
	var shelfPath string
	return &cli.Command{
		Name:  "todos",
		Usage: "Manage the todo list of a shelf",
		Flags: []cli.Flag{
			cmdflags.Shelf(&shelfPath),
		},
		Subcommands: []*cli.Command{
			addCmd(&shelfPath),
		},
	}
}

func addCmd(shelfPath *string) *cli.Command {
	var login string
	var content string
	return &cli.Command{
		Name:  "add",
		Usage: "Add a todo entry for a given user",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "login",
				Aliases:     []string{"l", "user"},
				Usage:       "Login of the user that owns the entry",
				Destination: &login,
				Required:    true,
			},
			&cli.StringFlag{
				Name:        "content",
				Usage:       "The entry itself",
				Destination: &content,
				Required:    true,
			},
		},
		Action: func(ctx *cli.Context) error {
			if *shelfPath == "" {
				return errors.New("todos: pass --shelf, the in-memory shelf is gone once the command exits")
			}
			store, err := shelf.Open(ctx.Context, *shelfPath)
			if err != nil {
				return err
			}
			defer store.Close()
			user, err := store.FindUserByLogin(ctx.Context, login)
			if err != nil {
				return err
			}
			id, err := store.AddTodo(ctx.Context, user.ID, content)
			if err != nil {
				return err
			}
			fmt.Printf("added todo %v for %v\n", id, login)
			return nil
		},
	}
}
