package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStorage_SaveAndLoadReports(t *testing.T) {
	s := New(filepath.Join(t.TempDir(), "raw"))

	require.NoError(t, s.SaveReport("MB:499", "Mars"))
	require.NoError(t, s.SaveReport("MB:399", "Earth"))
	require.NoError(t, s.SaveReport("SB:C/2011 L4*", "comet"))

	// unrelated files are ignored
	require.NoError(t, os.WriteFile(filepath.Join(s.Dir, "notes.txt"), []byte("x"), 0644))

	reports, err := s.LoadReports()
	require.NoError(t, err)
	require.Len(t, reports, 3)

	assert.Equal(t, "MB:399", reports[0].ID)
	assert.Equal(t, "Earth", reports[0].Raw)
	assert.Equal(t, "MB:499", reports[1].ID)
	assert.Equal(t, "SB:C2011 L4", reports[2].ID)
	assert.Equal(t, "comet", reports[2].Raw)
}

func TestStorage_SaveReportOverwrites(t *testing.T) {
	s := New(t.TempDir())

	require.NoError(t, s.SaveReport("MB:10", "old"))
	require.NoError(t, s.SaveReport("MB:10", "new"))

	data, err := s.ReadFile(s.ReportPath("MB:10"))
	require.NoError(t, err)
	assert.Equal(t, "new", string(data))
}

func TestStorage_SaveReportInvalidID(t *testing.T) {
	s := New(t.TempDir())
	assert.Error(t, s.SaveReport("*/", "x"))
}

func TestStorage_LoadReportsMissingDir(t *testing.T) {
	s := New(filepath.Join(t.TempDir(), "missing"))
	_, err := s.LoadReports()
	assert.Error(t, err)
}
