package storage

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/runnerr0/leima/internal/stamp"
)

// Store defines the interface for week data operations.
type Store interface {
	LoadWeek(week int) ([]*stamp.WorkDay, error)
	LoadCorrections(week int) ([]*stamp.Correction, error)
	SaveCorrections(week int, cors []*stamp.Correction) error
	LoadDays(week int) ([]stamp.CorrectedDay, error)
}

var _ Store = (*FileStore)(nil)

// FileStore keeps one stamp file (NN.txt) and one correction file
// (NNc.txt) per ISO week in a directory.
type FileStore struct {
	dir    string
	logger *slog.Logger
}

// NewFileStore creates a FileStore rooted at dir.
func NewFileStore(dir string, logger *slog.Logger) *FileStore {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &FileStore{dir: dir, logger: logger}
}

// Dir returns the data directory.
func (s *FileStore) Dir() string { return s.dir }

// StampPath returns the stamp file path for week.
func (s *FileStore) StampPath(week int) string {
	return filepath.Join(s.dir, fmt.Sprintf("%02d.txt", week))
}

// CorrectionPath returns the correction file path for week.
func (s *FileStore) CorrectionPath(week int) string {
	return filepath.Join(s.dir, fmt.Sprintf("%02dc.txt", week))
}

// LoadWeek parses the stamp file for week. A missing file wraps ErrNoData.
func (s *FileStore) LoadWeek(week int) ([]*stamp.WorkDay, error) {
	path := s.StampPath(week)
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w for week %d", ErrNoData, week)
	}
	if err != nil {
		return nil, fmt.Errorf("open stamps: %w", err)
	}
	defer f.Close()

	days, err := ParseStamps(f)
	if err != nil {
		var pe *ParseError
		if errors.As(err, &pe) {
			pe.File = path
		}
		return nil, err
	}
	s.logger.Debug("loaded stamps", "week", week, "path", path, "days", len(days))
	return days, nil
}

// LoadCorrections parses the correction file for week. A missing file
// means no corrections and is not an error.
func (s *FileStore) LoadCorrections(week int) ([]*stamp.Correction, error) {
	path := s.CorrectionPath(week)
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		s.logger.Debug("no correction file", "week", week, "path", path)
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("open corrections: %w", err)
	}
	defer f.Close()

	cors, err := ParseCorrections(f)
	if err != nil {
		var pe *ParseError
		if errors.As(err, &pe) {
			pe.File = path
		}
		return nil, err
	}
	s.logger.Debug("loaded corrections", "week", week, "path", path, "days", len(cors))
	return cors, nil
}

// SaveCorrections replaces the correction file for week. The new content
// is written to a temporary file first so a failed write leaves the old
// file in place.
func (s *FileStore) SaveCorrections(week int, cors []*stamp.Correction) error {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("create data directory: %w", err)
	}

	tmp, err := os.CreateTemp(s.dir, ".corrections-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name()) //nolint:errcheck

	if err := WriteCorrections(tmp, cors); err != nil {
		tmp.Close()
		return fmt.Errorf("write corrections: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}

	path := s.CorrectionPath(week)
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("replace corrections: %w", err)
	}
	s.logger.Debug("saved corrections", "week", week, "path", path, "days", len(cors))
	return nil
}

// LoadDays loads a week and overlays its corrections by day position.
func (s *FileStore) LoadDays(week int) ([]stamp.CorrectedDay, error) {
	days, err := s.LoadWeek(week)
	if err != nil {
		return nil, err
	}
	cors, err := s.LoadCorrections(week)
	if err != nil {
		return nil, err
	}
	return stamp.Pair(days, cors), nil
}
