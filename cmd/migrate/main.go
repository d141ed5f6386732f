package main

import (
	"fmt"
	"os"

	"github.com/Rrens/taskchat/internal/config"
	"github.com/Rrens/taskchat/internal/repository/orm/migrations"
	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"
)

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	app := &cli.App{
		Name:  "migrate",
		Usage: "manage the taskchat database schema",
		Commands: []*cli.Command{
			{
				Name:  "up",
				Usage: "apply pending migrations",
				Action: func(ctx *cli.Context) error {
					cfg, err := load()
					if err != nil {
						return err
					}
					if err := migrations.Up(cfg.Database); err != nil {
						return err
					}
					fmt.Println("Migrations applied")
					return nil
				},
			},
			{
				Name:  "down",
				Usage: "roll back migrations",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "steps", Value: 1, Usage: "number of migrations to roll back"},
				},
				Action: func(ctx *cli.Context) error {
					cfg, err := load()
					if err != nil {
						return err
					}
					steps := ctx.Int("steps")
					if err := migrations.Down(cfg.Database, steps); err != nil {
						return err
					}
					fmt.Printf("Rolled back %d migration(s)\n", steps)
					return nil
				},
			},
			{
				Name:  "version",
				Usage: "print the current schema version",
				Action: func(ctx *cli.Context) error {
					cfg, err := load()
					if err != nil {
						return err
					}
					version, dirty, err := migrations.Version(cfg.Database)
					if err != nil {
						return err
					}
					fmt.Printf("Version %d (dirty: %t)\n", version, dirty)
					return nil
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func load() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	fmt.Printf("Using %s database\n", cfg.Database.Driver)
	return cfg, nil
}
