package main

import (
	"fmt"
	"os"

	"github.com/dtnitsch/horizons-parser/internal/db"
	"github.com/dtnitsch/horizons-parser/internal/process"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "horizons-parser",
		Usage: "Turn raw JPL HORIZONS reports into a bodies CSV for orbit simulation",
		Commands: []*cli.Command{
			process.Command(),
			db.Command(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
