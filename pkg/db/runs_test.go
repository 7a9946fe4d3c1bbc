package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateRun(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	runID, err := db.CreateRun("jpl_raw", "2012-01-19 14:12", "solarSystem.csv", 12)
	require.NoError(t, err)
	require.NotZero(t, runID)

	run, err := db.GetRunByID(runID)
	require.NoError(t, err)

	assert.Equal(t, "jpl_raw", run.SourceDir)
	assert.Equal(t, "2012-01-19 14:12", run.OrbitDate)
	assert.Equal(t, "solarSystem.csv", run.OutputFile)
	assert.Equal(t, 12, run.ReportCount)
	assert.False(t, run.CreatedAt.IsZero())
}

func TestUpdateRunStats(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	runID, err := db.CreateRun("jpl_raw", "", "out.csv", 3)
	require.NoError(t, err)
	require.NoError(t, db.UpdateRunStats(runID, 2, 1))

	run, err := db.GetRunByID(runID)
	require.NoError(t, err)
	assert.Equal(t, 2, run.BodyCount)
	assert.Equal(t, 1, run.FailedCount)
}

func TestGetRunByID_NotFound(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	_, err := db.GetRunByID(42)
	assert.ErrorIs(t, err, ErrRunNotFound)
}

func TestListRuns(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	for i := 0; i < 3; i++ {
		_, err := db.CreateRun("jpl_raw", "", "out.csv", i)
		require.NoError(t, err)
	}

	runs, err := db.ListRuns(0)
	require.NoError(t, err)
	require.Len(t, runs, 3)
	assert.Greater(t, runs[0].RunID, runs[1].RunID, "newest run first")

	limited, err := db.ListRuns(2)
	require.NoError(t, err)
	assert.Len(t, limited, 2)
}
