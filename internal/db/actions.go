package db

import (
	"fmt"
	"sort"
	"strings"

	"github.com/dtnitsch/horizons-parser/pkg/export"
	"github.com/urfave/cli/v2"
)

func RunsAction(c *cli.Context) error {
	database, err := openDB(c)
	if err != nil {
		return err
	}
	defer database.Close()

	out := c.App.Writer
	runs, err := database.ListRuns(c.Int("limit"))
	if err != nil {
		return fmt.Errorf("failed to list runs: %w", err)
	}

	if len(runs) == 0 {
		fmt.Fprintln(out, "No runs found")
		return nil
	}

	fmt.Fprintf(out, "%-6s %-20s %-8s %-8s %-8s %-18s %-30s\n",
		"ID", "Created", "Reports", "Bodies", "Failed", "Orbit Date", "Output")
	fmt.Fprintln(out, strings.Repeat("-", 104))

	for _, r := range runs {
		fmt.Fprintf(out, "%-6d %-20s %-8d %-8d %-8d %-18s %-30s\n",
			r.RunID,
			r.CreatedAt.Format("2006-01-02 15:04:05"),
			r.ReportCount,
			r.BodyCount,
			r.FailedCount,
			r.OrbitDate,
			r.OutputFile,
		)
	}

	fmt.Fprintf(out, "\nTotal: %d runs\n", len(runs))
	fmt.Fprintf(out, "\nTip: Use 'horizons-parser db run <id>' to see details\n")

	return nil
}

// RunAction shows details for a specific run
func RunAction(c *cli.Context) error {
	database, err := openDB(c)
	if err != nil {
		return err
	}
	defer database.Close()

	runID, err := GetRunIDOrLatest(c, database)
	if err != nil {
		return err
	}

	run, err := database.GetRunByID(runID)
	if err != nil {
		return fmt.Errorf("failed to get run: %w", err)
	}

	counts, err := database.CountBodiesByType(runID)
	if err != nil {
		return err
	}

	failures, err := database.GetRunFailures(runID)
	if err != nil {
		return err
	}

	out := c.App.Writer
	fmt.Fprintf(out, "Run %d\n", run.RunID)
	fmt.Fprintln(out, strings.Repeat("=", 60))
	fmt.Fprintf(out, "Created:     %s\n", run.CreatedAt.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(out, "Source:      %s\n", run.SourceDir)
	fmt.Fprintf(out, "Output:      %s\n", run.OutputFile)
	fmt.Fprintf(out, "Orbit Date:  %s\n", run.OrbitDate)
	fmt.Fprintf(out, "Reports:     %d total (%d bodies, %d failed)\n",
		run.ReportCount, run.BodyCount, run.FailedCount)

	if len(counts) > 0 {
		types := make([]string, 0, len(counts))
		for t := range counts {
			types = append(types, t)
		}
		sort.Strings(types)

		fmt.Fprintf(out, "\nBody types:\n")
		fmt.Fprintln(out, strings.Repeat("-", 60))
		for _, t := range types {
			fmt.Fprintf(out, "  %-14s %d\n", t, counts[t])
		}
	}

	if len(failures) > 0 {
		fmt.Fprintf(out, "\nFailures (%d):\n", len(failures))
		fmt.Fprintln(out, strings.Repeat("-", 60))
		for i, f := range failures {
			fmt.Fprintf(out, "%2d. [%s] %s\n", i+1, f.ErrorType, f.ObjectID)
			if f.ErrorMessage != "" {
				fmt.Fprintf(out, "    Error: %s\n", f.ErrorMessage)
			}
		}
	}

	fmt.Fprintf(out, "\nTip: Use 'horizons-parser db bodies %d' to list bodies\n", runID)

	return nil
}

// BodiesAction lists the bodies stored for a run
func BodiesAction(c *cli.Context) error {
	database, err := openDB(c)
	if err != nil {
		return err
	}
	defer database.Close()

	runID, err := GetRunIDOrLatest(c, database)
	if err != nil {
		return err
	}

	bodies, err := database.GetRunBodies(runID)
	if err != nil {
		return err
	}

	out := c.App.Writer
	if len(bodies) == 0 {
		fmt.Fprintf(out, "Run %d has no bodies\n", runID)
		return nil
	}

	fmt.Fprintf(out, "%-12s %-32s %-13s %-28s %-12s\n", "ID", "Name", "Type", "Mass (kg)", "Density")
	fmt.Fprintln(out, strings.Repeat("-", 100))
	for _, b := range bodies {
		fmt.Fprintf(out, "%-12s %-32s %-13s %-28s %-12s\n",
			b.ObjectID,
			b.Name,
			b.Type.String(),
			export.FormatNumber(b.Mass),
			export.FormatNumber(b.Density),
		)
	}
	fmt.Fprintf(out, "\nTotal: %d bodies\n", len(bodies))

	return nil
}

// Command returns the db command and its subcommands.
func Command() *cli.Command {
	dbFlag := &cli.StringFlag{Name: "db", Usage: "run history database (default next to the binary)"}
	return &cli.Command{
		Name:  "db",
		Usage: "Inspect recorded runs",
		Subcommands: []*cli.Command{
			{
				Name:   "runs",
				Usage:  "List recent runs",
				Flags:  []cli.Flag{dbFlag, &cli.IntFlag{Name: "limit", Aliases: []string{"n"}, Value: 20}},
				Action: RunsAction,
			},
			{
				Name:      "run",
				Usage:     "Show one run (latest when no id is given)",
				ArgsUsage: "[run-id]",
				Flags:     []cli.Flag{dbFlag},
				Action:    RunAction,
			},
			{
				Name:      "bodies",
				Usage:     "List the bodies of a run (latest when no id is given)",
				ArgsUsage: "[run-id]",
				Flags:     []cli.Flag{dbFlag},
				Action:    BodiesAction,
			},
		},
	}
}
