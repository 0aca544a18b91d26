package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/lixenwraith/vinyl-slasher/core"
)

func main() {
	// Terminal is reset even if the game crashes on the main goroutine
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	runner := NewRunner(RunnerOpts{})
	if err := rootCommand(runner).Run(ctx, os.Args); err != nil {
		runner.logger.Error("application error", "err", err)
		stop()
		os.Exit(1)
	}
}

func rootCommand(r *Runner) *cli.Command {
	playFlags := []cli.Flag{
		&cli.BoolFlag{
			Name:  "debug",
			Usage: "Write a debug log to the data directory",
		},
		&cli.BoolFlag{
			Name:  "ephemeral",
			Usage: "Keep unlocks in memory only",
		},
		&cli.StringFlag{
			Name:  "mode",
			Usage: "Preselect a mode: score-target or time-limit",
		},
	}

	return &cli.Command{
		Name:    "vinyl-slasher",
		Usage:   "Slice flying records in your terminal",
		Version: "0.1.0",
		Flags: append([]cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to configuration file",
			},
		}, playFlags...),
		Action: r.Play,
		Commands: []*cli.Command{
			{
				Name:   "play",
				Usage:  "Start the game (default)",
				Action: r.Play,
			},
			{
				Name:  "collection",
				Usage: "Inspect or erase unlocked albums",
				Commands: []*cli.Command{
					{
						Name:  "list",
						Usage: "List every album with its unlock state",
						Flags: []cli.Flag{
							&cli.StringFlag{
								Name:  "sort",
								Usage: "Ordering: rank or alpha",
								Value: "rank",
							},
							&cli.BoolFlag{
								Name:  "json",
								Usage: "Output JSON",
							},
						},
						Action: r.CollectionList,
					},
					{
						Name:   "clear",
						Usage:  "Erase every unlock",
						Action: r.CollectionClear,
					},
				},
			},
			{
				Name:  "catalog",
				Usage: "Print the album manifest",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output JSON",
					},
				},
				Action: r.Catalog,
			},
			{
				Name:   "init",
				Usage:  "Write the default config file",
				Action: r.InitConfig,
			},
		},
	}
}
