package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v2"

	"github.com/dmitrymomot/tape/pkg/config"
	"github.com/dmitrymomot/tape/pkg/logger"
	"github.com/dmitrymomot/tape/pkg/queue"
)

// AppConfig is read from the environment
type AppConfig struct {
	Env         string `env:"APP_ENV" envDefault:"development"`
	ServiceName string `env:"APP_NAME" envDefault:"tapedemo"`
	Queue       queue.Config
}

func main() {
	app := &cli.App{
		Name:  "tapedemo",
		Usage: "Enqueue jobs from a manifest and drain them through an in-memory task queue",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "manifest",
				Aliases: []string{"m"},
				Usage:   "Path to a YAML job manifest (built-in jobs when empty)",
				EnvVars: []string{"TAPEDEMO_MANIFEST"},
			},
			&cli.StringSliceFlag{
				Name:    "env-file",
				Aliases: []string{"e"},
				Usage:   "Load variables from .env files before reading configuration",
			},
			&cli.IntFlag{
				Name:    "max-rounds",
				Aliases: []string{"r"},
				Usage:   "The maximum number of drain rounds",
				EnvVars: []string{"TAPEDEMO_MAX_ROUNDS"},
				Value:   10,
			},
		},
		Action: func(c *cli.Context) error {
			if err := config.LoadEnv(c.StringSlice("env-file")...); err != nil {
				return err
			}

			var cfg AppConfig
			if err := config.Load(&cfg); err != nil {
				return err
			}

			log := logger.New(logger.WithEnvironment(cfg.Env, cfg.ServiceName))
			logger.SetAsDefault(log)

			manifest, err := loadManifest(c.String("manifest"))
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
			defer stop()

			summary, err := run(ctx, log, cfg.Queue, manifest, c.Int("max-rounds"))
			if err != nil {
				return err
			}

			fmt.Fprintln(c.App.Writer, summary)
			return nil
		},
	}

	if err := app.RunContext(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
