package db

import (
	"fmt"

	dbpkg "github.com/dtnitsch/horizons-parser/pkg/db"
	"github.com/urfave/cli/v2"
)

// GetRunIDOrLatest returns the run ID from args, or the latest run if not provided
func GetRunIDOrLatest(c *cli.Context, database *dbpkg.DB) (int64, error) {
	if c.NArg() == 0 {
		runs, err := database.ListRuns(1)
		if err != nil {
			return 0, fmt.Errorf("failed to get latest run: %w", err)
		}
		if len(runs) == 0 {
			return 0, fmt.Errorf("no runs found. Run 'horizons-parser process --raw-data-dir <dir>' first")
		}
		return runs[0].RunID, nil
	}

	var runID int64
	_, err := fmt.Sscanf(c.Args().First(), "%d", &runID)
	if err != nil {
		return 0, fmt.Errorf("invalid run ID: %s", c.Args().First())
	}
	return runID, nil
}

func openDB(c *cli.Context) (*dbpkg.DB, error) {
	database, err := dbpkg.OpenPath(c.String("db"))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return database, nil
}
