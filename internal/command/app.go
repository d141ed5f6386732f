// Package command builds the taskchat command line client.
package command

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/Rrens/taskchat/internal/client"
	"github.com/Rrens/taskchat/internal/store"
	"github.com/google/uuid"
	"github.com/urfave/cli/v2"
)

// API is everything the stores need from the server
type API interface {
	store.TaskAPI
	store.ChatAPI
}

type Deps struct {
	NewAPI func(baseURL string) API
	Out    io.Writer
	ErrOut io.Writer
}

func BuildApp(deps Deps) *cli.App {
	out := deps.Out
	if out == nil {
		out = os.Stdout
	}
	errOut := deps.ErrOut
	if errOut == nil {
		errOut = os.Stderr
	}

	return &cli.App{
		Name:      "taskchat",
		Usage:     "manage tasks and chat sessions",
		Writer:    out,
		ErrWriter: errOut,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "api",
				Usage:   "base URL of the taskchat API",
				Value:   client.DefaultBaseURL,
				EnvVars: []string{"TASKCHAT_API"},
			},
		},
		Commands: []*cli.Command{
			tasksCommand(deps),
			chatCommand(deps),
		},
	}
}

func newAPI(deps Deps, ctx *cli.Context) API {
	baseURL := ctx.String("api")
	if deps.NewAPI != nil {
		return deps.NewAPI(baseURL)
	}
	return client.New(baseURL)
}

func parseID(ctx *cli.Context, what string) (uuid.UUID, error) {
	raw := strings.TrimSpace(ctx.Args().First())
	if raw == "" {
		return uuid.Nil, fmt.Errorf("%s ID is required", what)
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid %s ID", what)
	}
	return id, nil
}

// restArgs joins every positional argument after the first n
func restArgs(ctx *cli.Context, n int) string {
	args := ctx.Args().Slice()
	if len(args) <= n {
		return ""
	}
	return strings.Join(args[n:], " ")
}
