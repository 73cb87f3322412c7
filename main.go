package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/edenhub/eden-web/app"
	"github.com/edenhub/eden-web/config"
	"github.com/go-chi/chi/v5"
	"github.com/urfave/cli/v2"
)

func main() {
	cliApp := &cli.App{
		Name:  "eden-web",
		Usage: "Eden raid roster web front end",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Value:   "config.yaml",
				Usage:   "path to the configuration file",
				EnvVars: []string{"CONFIG_PATH"},
			},
		},
		Action: serve,
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "run the web server",
				Action: serve,
			},
			{
				Name:   "routes",
				Usage:  "print the route table",
				Action: routes,
			},
		},
	}

	if err := cliApp.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func loadConfig(c *cli.Context) (*config.Config, error) {
	cfg, err := config.LoadConfig(c.String("config"))
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

func serve(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	application := &app.App{Config: cfg}
	if err := application.Initialize(ctx); err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}
	return application.Start(ctx)
}

// routes wires the app without Postgres or NATS and walks the router.
func routes(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	cfg.Postgres.DSN = ""
	cfg.NATS.URL = ""
	cfg.Observability.OTLPEndpoint = ""

	ctx, cancel := context.WithCancel(c.Context)
	defer cancel()

	application := &app.App{Config: cfg}
	if err := application.Initialize(ctx); err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}
	defer application.Close(ctx)

	return chi.Walk(application.Router, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		fmt.Printf("%-7s %s\n", method, route)
		return nil
	})
}
