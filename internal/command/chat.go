package command

import (
	"errors"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/Rrens/taskchat/internal/domain"
	"github.com/Rrens/taskchat/internal/store"
	"github.com/google/uuid"
	"github.com/urfave/cli/v2"
)

func chatCommand(deps Deps) *cli.Command {
	return &cli.Command{
		Name:  "chat",
		Usage: "manage chat sessions",
		Subcommands: []*cli.Command{
			{
				Name:  "list",
				Usage: "show chat sessions",
				Action: func(ctx *cli.Context) error {
					chats := store.NewChatStore(newAPI(deps, ctx))
					if err := chats.FetchSessions(ctx.Context); err != nil {
						return err
					}
					printSessions(ctx.App.Writer, chats.Sessions())
					return nil
				},
			},
			{
				Name:      "new",
				Usage:     "start a chat session",
				ArgsUsage: "NAME",
				Action: func(ctx *cli.Context) error {
					session, err := store.NewChatStore(newAPI(deps, ctx)).
						CreateSession(ctx.Context, domain.ChatSessionCreate{Name: restArgs(ctx, 0)})
					if err != nil {
						return err
					}
					printSessions(ctx.App.Writer, []domain.ChatSession{*session})
					return nil
				},
			},
			{
				Name:      "show",
				Usage:     "print the messages of a session",
				ArgsUsage: "ID",
				Action: func(ctx *cli.Context) error {
					id, err := parseID(ctx, "session")
					if err != nil {
						return err
					}
					chats := store.NewChatStore(newAPI(deps, ctx))
					if err := selectSession(ctx, chats, id); err != nil {
						return err
					}
					messages := chats.Messages()
					if len(messages) == 0 {
						fmt.Fprintln(ctx.App.Writer, "No messages")
						return nil
					}
					printMessages(ctx.App.Writer, messages)
					return nil
				},
			},
			{
				Name:      "send",
				Usage:     "send a message and print the reply",
				ArgsUsage: "ID TEXT",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "provider", Value: domain.ProviderClaude, Usage: "claude or openai"},
				},
				Action: func(ctx *cli.Context) error {
					id, err := parseID(ctx, "session")
					if err != nil {
						return err
					}
					text := restArgs(ctx, 1)
					if text == "" {
						return errors.New("message text is required")
					}

					chats := store.NewChatStore(newAPI(deps, ctx), store.WithProvider(ctx.String("provider")))
					if err := selectSession(ctx, chats, id); err != nil {
						return err
					}
					before := len(chats.Messages())

					sendErr := chats.SendMessage(ctx.Context, text)
					printMessages(ctx.App.Writer, chats.Messages()[before:])
					return sendErr
				},
			},
			{
				Name:      "rm",
				Usage:     "delete a session and its messages",
				ArgsUsage: "ID",
				Action: func(ctx *cli.Context) error {
					id, err := parseID(ctx, "session")
					if err != nil {
						return err
					}
					if err := store.NewChatStore(newAPI(deps, ctx)).DeleteSession(ctx.Context, id); err != nil {
						return err
					}
					fmt.Fprintln(ctx.App.Writer, "Chat session deleted")
					return nil
				},
			},
			{
				Name:      "clear",
				Usage:     "remove every message of a session",
				ArgsUsage: "ID",
				Action: func(ctx *cli.Context) error {
					id, err := parseID(ctx, "session")
					if err != nil {
						return err
					}
					if err := store.NewChatStore(newAPI(deps, ctx)).ClearHistory(ctx.Context, id); err != nil {
						return err
					}
					fmt.Fprintln(ctx.App.Writer, "Chat history cleared")
					return nil
				},
			},
		},
	}
}

func selectSession(ctx *cli.Context, chats *store.ChatStore, id uuid.UUID) error {
	if err := chats.FetchSessions(ctx.Context); err != nil {
		return err
	}
	return chats.SelectSession(ctx.Context, id)
}

func printSessions(w io.Writer, sessions []domain.ChatSession) {
	if len(sessions) == 0 {
		fmt.Fprintln(w, "No chat sessions")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tMESSAGES\tUPDATED\tNAME")
	for _, s := range sessions {
		fmt.Fprintf(tw, "%s\t%d\t%s\t%s\n", s.ID, s.MessageCount, s.UpdatedAt.Local().Format("2006-01-02 15:04"), s.Name)
	}
	tw.Flush()
}

func printMessages(w io.Writer, messages []domain.ChatMessage) {
	for _, m := range messages {
		who := "you"
		if m.Role == domain.RoleAssistant {
			who = "assistant"
		}
		fmt.Fprintf(w, "[%s] %s: %s\n", m.CreatedAt.Local().Format("15:04:05"), who, m.Content)
	}
}
