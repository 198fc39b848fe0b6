package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/emrekoc/hostelms/internal/pkg/logger"
)

func main() {
	app := &cli.App{
		Name:  "hostelms",
		Usage: "Hostel management system: students, rooms, occupancy and exports",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to the YAML configuration file",
				Value:   "config.yaml",
			},
		},
		Commands: []*cli.Command{
			loginCommand(),
			studentCommand(),
			roomCommand(),
			dashboardCommand(),
			exportCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		logger.Error().Err(err).Msg("Command failed")
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
