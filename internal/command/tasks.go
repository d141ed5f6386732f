package command

import (
	"errors"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/Rrens/taskchat/internal/domain"
	"github.com/Rrens/taskchat/internal/store"
	"github.com/urfave/cli/v2"
)

func tasksCommand(deps Deps) *cli.Command {
	return &cli.Command{
		Name:  "tasks",
		Usage: "list and edit tasks",
		Subcommands: []*cli.Command{
			{
				Name:  "list",
				Usage: "show tasks, priority first",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "priority", Usage: "only priority tasks"},
					&cli.StringFlag{Name: "status", Usage: "only tasks with status TODO, IN_PROGRESS or DONE"},
				},
				Action: func(ctx *cli.Context) error {
					filter := store.TaskFilter{
						PriorityOnly: ctx.Bool("priority"),
						Status:       domain.TaskStatus(ctx.String("status")),
					}
					if filter.Status != "" && !filter.Status.Valid() {
						return fmt.Errorf("unknown status %q", filter.Status)
					}

					tasks := store.NewTaskStore(newAPI(deps, ctx))
					if err := tasks.Fetch(ctx.Context); err != nil {
						return err
					}
					printTasks(ctx.App.Writer, tasks.Filtered(filter))
					return nil
				},
			},
			{
				Name:      "add",
				Usage:     "create a task",
				ArgsUsage: "TITLE",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "description"},
					&cli.StringFlag{Name: "notes"},
					&cli.BoolFlag{Name: "priority"},
				},
				Action: func(ctx *cli.Context) error {
					input := domain.TaskCreate{Title: restArgs(ctx, 0)}
					if ctx.IsSet("description") {
						input.Description = stringPtr(ctx.String("description"))
					}
					if ctx.IsSet("notes") {
						input.Notes = stringPtr(ctx.String("notes"))
					}
					if ctx.IsSet("priority") {
						p := ctx.Bool("priority")
						input.Priority = &p
					}

					task, err := store.NewTaskStore(newAPI(deps, ctx)).Create(ctx.Context, input)
					if err != nil {
						return err
					}
					printTasks(ctx.App.Writer, []domain.Task{*task})
					return nil
				},
			},
			{
				Name:      "update",
				Usage:     "change fields of a task",
				ArgsUsage: "ID",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "title"},
					&cli.StringFlag{Name: "description"},
					&cli.StringFlag{Name: "notes"},
					&cli.StringFlag{Name: "status"},
					&cli.BoolFlag{Name: "priority"},
				},
				Action: func(ctx *cli.Context) error {
					id, err := parseID(ctx, "task")
					if err != nil {
						return err
					}

					var input domain.TaskUpdate
					if ctx.IsSet("title") {
						input.Title = stringPtr(ctx.String("title"))
					}
					if ctx.IsSet("description") {
						input.Description = stringPtr(ctx.String("description"))
					}
					if ctx.IsSet("notes") {
						input.Notes = stringPtr(ctx.String("notes"))
					}
					if ctx.IsSet("status") {
						status := domain.TaskStatus(ctx.String("status"))
						input.Status = &status
					}
					if ctx.IsSet("priority") {
						p := ctx.Bool("priority")
						input.Priority = &p
					}
					if input.Empty() {
						return errors.New("nothing to update")
					}

					task, err := store.NewTaskStore(newAPI(deps, ctx)).Update(ctx.Context, id, input)
					if err != nil {
						return err
					}
					printTasks(ctx.App.Writer, []domain.Task{*task})
					return nil
				},
			},
			{
				Name:      "rm",
				Usage:     "delete a task",
				ArgsUsage: "ID",
				Action: func(ctx *cli.Context) error {
					id, err := parseID(ctx, "task")
					if err != nil {
						return err
					}
					if err := store.NewTaskStore(newAPI(deps, ctx)).Delete(ctx.Context, id); err != nil {
						return err
					}
					fmt.Fprintln(ctx.App.Writer, "Task deleted")
					return nil
				},
			},
			{
				Name:      "star",
				Usage:     "toggle the priority flag of a task",
				ArgsUsage: "ID",
				Action: func(ctx *cli.Context) error {
					id, err := parseID(ctx, "task")
					if err != nil {
						return err
					}
					task, err := store.NewTaskStore(newAPI(deps, ctx)).TogglePriority(ctx.Context, id)
					if err != nil {
						return err
					}
					printTasks(ctx.App.Writer, []domain.Task{*task})
					return nil
				},
			},
		},
	}
}

func printTasks(w io.Writer, tasks []domain.Task) {
	if len(tasks) == 0 {
		fmt.Fprintln(w, "No tasks")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tPRIORITY\tSTATUS\tTITLE")
	for _, t := range tasks {
		star := ""
		if t.Priority {
			star = "*"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", t.ID, star, t.Status, t.Title)
	}
	tw.Flush()
}

func stringPtr(s string) *string {
	return &s
}
