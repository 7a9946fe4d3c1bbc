// Package storage reads and writes raw HORIZONS reports on disk.
package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/dtnitsch/horizons-parser/internal/common"
	"github.com/dtnitsch/horizons-parser/models"
)

// Storage is a directory of raw reports, one file per object, named
// "<identifier>.jplrawdata".
type Storage struct {
	Dir string
}

func New(dir string) *Storage {
	return &Storage{Dir: dir}
}

// ReportPath returns where the report for id is stored.
func (s *Storage) ReportPath(id string) string {
	return filepath.Join(s.Dir, common.SanitizeFileName(id)+"."+models.RawReportExtension)
}

// SaveReport writes the raw report for id, replacing any earlier copy.
func (s *Storage) SaveReport(id, content string) error {
	if common.SanitizeFileName(id) == "" {
		return fmt.Errorf("invalid report id %q", id)
	}
	if err := os.MkdirAll(s.Dir, 0755); err != nil {
		return fmt.Errorf("error creating report dir: %w", err)
	}
	return s.SaveFile(s.ReportPath(id), []byte(content))
}

// LoadReports reads every report in the directory, sorted by identifier. The
// identifier is the file name without its extension.
func (s *Storage) LoadReports() ([]models.Report, error) {
	entries, err := os.ReadDir(s.Dir)
	if err != nil {
		return nil, fmt.Errorf("error reading report dir: %w", err)
	}

	suffix := "." + models.RawReportExtension
	var reports []models.Report
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), suffix) {
			continue
		}
		data, err := s.ReadFile(filepath.Join(s.Dir, e.Name()))
		if err != nil {
			return nil, err
		}
		reports = append(reports, models.Report{
			ID:  strings.TrimSuffix(e.Name(), suffix),
			Raw: string(data),
		})
	}

	sort.Slice(reports, func(i, j int) bool {
		return reports[i].ID < reports[j].ID
	})
	return reports, nil
}

func (s *Storage) SaveFile(filePath string, content []byte) error {
	if err := os.WriteFile(filePath, content, 0644); err != nil {
		return fmt.Errorf("error saving file: %w", err)
	}
	return nil
}

func (s *Storage) ReadFile(filePath string) ([]byte, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("error reading file: %w", err)
	}
	return data, nil
}
