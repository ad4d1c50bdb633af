package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/urfave/cli/v3"

	"dreamcatcher/database"
	"dreamcatcher/generator"
	"dreamcatcher/scheduler"
	"dreamcatcher/server"
)

func ServerCli() *cli.Command {
	cmd := &cli.Command{
		Name:  "dreamcatcher",
		Usage: "run the dreamcatcher backend",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Sources: cli.EnvVars("DB_BACKEND"),
				Name:    "db-backend",
				Aliases: []string{"db"},
				Value:   "sqlite",
				Usage:   "database driver to use (sqlite or postgres)",
			},
			&cli.StringFlag{
				Sources: cli.EnvVars("DB_PATH", "DATABASE_URL"),
				Name:    "db-path",
				Aliases: []string{"dp"},
				Value:   "dreamcatcher.db",
				Usage:   "sqlite file path, or the postgres DSN",
			},
			&cli.BoolFlag{
				Sources: cli.EnvVars("DEBUG"),
				Name:    "debug",
				Aliases: []string{"d"},
				Value:   false,
				Usage:   "drop and recreate all tables on start",
			},
			&cli.StringFlag{
				Sources: cli.EnvVars("HOST"),
				Name:    "host",
				Aliases: []string{"b"},
				Value:   "127.0.0.1",
				Usage:   "server bind address",
			},
			&cli.IntFlag{
				Sources: cli.EnvVars("PORT"),
				Name:    "port",
				Aliases: []string{"p"},
				Value:   5000,
				Usage:   "server port",
			},
			&cli.BoolFlag{
				Sources: cli.EnvVars("SSL"),
				Name:    "ssl",
				Aliases: []string{"s"},
				Value:   false,
				Usage:   "server is behind https",
			},
			&cli.StringFlag{
				Sources: cli.EnvVars("COOKIE_DOMAIN"),
				Name:    "cookie-domain",
				Value:   "",
				Usage:   "domain for the session cookie",
			},
			&cli.StringFlag{
				Sources: cli.EnvVars("ADMIN_USER"),
				Name:    "admin-user",
				Value:   "admin",
				Usage:   "bootstrap admin username",
			},
			&cli.StringFlag{
				Sources: cli.EnvVars("ADMIN_EMAIL"),
				Name:    "admin-email",
				Value:   "admin@dreamcatcher.local",
				Usage:   "bootstrap admin email",
			},
			&cli.StringFlag{
				Sources: cli.EnvVars("ADMIN_PASSWORD"),
				Name:    "admin-password",
				Value:   "",
				Usage:   "bootstrap admin password; no admin is created when empty",
			},
			&cli.DurationFlag{
				Sources: cli.EnvVars("GENERATOR_TIMEOUT"),
				Name:    "generator-timeout",
				Value:   30 * time.Second,
				Usage:   "per-call timeout for generator requests",
			},
		},
		Action: func(_ context.Context, c *cli.Command) error {
			DB := database.SetupDatabase(c.String("db-backend"), c.String("db-path"), c.Bool("debug"))

			if password := c.String("admin-password"); password != "" {
				if _, err := server.CreateAdminUser(DB, c.String("admin-user"), c.String("admin-email"), password); err != nil {
					return err
				}
			}

			gateway := generator.NewGateway(generator.NewStubGenerator(), c.Duration("generator-timeout"))

			schedulerService := scheduler.NewSchedulerService(DB)
			schedulerService.Start()
			defer schedulerService.Stop()

			s, fullHost := server.BackendServer(DB, gateway, c.String("host"), c.Int("port"), c.Bool("ssl"), c.String("cookie-domain"))
			fmt.Printf("Starting server on %s\n", fullHost)

			return s.ListenAndServe()
		},
	}

	return cmd
}
