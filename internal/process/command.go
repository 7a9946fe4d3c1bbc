package process

import "github.com/urfave/cli/v2"

// Command returns the process command.
func Command() *cli.Command {
	return &cli.Command{
		Name:  "process",
		Usage: "Parse raw HORIZONS reports into a bodies CSV",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: "YAML config file"},
			&cli.StringFlag{Name: "raw-data-dir", Aliases: []string{"r"}, Usage: "directory of *.jplrawdata reports"},
			&cli.StringFlag{Name: "overrides", Usage: "CSV of mass/density corrections (id,name,mass,density)"},
			&cli.StringFlag{Name: "output", Aliases: []string{"o"}, Usage: "output CSV file (default solarSystem.csv)"},
			&cli.StringFlag{Name: "orbit-date", Usage: "orbit date, \"yyyy-MM-dd HH:mm\" UTC (default now)"},
			&cli.StringFlag{Name: "comment", Usage: "comment row written to the CSV"},
			&cli.IntFlag{Name: "workers", Aliases: []string{"w"}, Usage: "number of parse workers", Value: 4},
			&cli.StringFlag{Name: "db", Usage: "run history database (default next to the binary)"},
			&cli.BoolFlag{Name: "no-db", Usage: "do not record the run"},
			&cli.StringFlag{Name: "format", Aliases: []string{"f"}, Usage: "summary format: yaml or json", Value: "yaml"},
			&cli.BoolFlag{Name: "quiet", Aliases: []string{"q"}, Usage: "only log errors"},
		},
		Action: ProcessAction,
	}
}
