// Package entries loads the configured monitor list. The list is read-only
// input: order is preserved and entries are defaulted, never rewritten.
package entries

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	yaml "go.yaml.in/yaml/v3"

	"urlwatch/internal/domain"
)

// Source yields the entry list for one pass.
type Source interface {
	Load() ([]domain.Entry, error)
}

// FileSource reads a YAML document containing a sequence of entries.
// YAML is a superset of JSON, so a JSON list works unchanged.
type FileSource struct {
	Path   string
	Logger *zap.Logger
}

func NewFileSource(path string, logger *zap.Logger) *FileSource {
	return &FileSource{Path: path, Logger: logger}
}

func (s *FileSource) Load() ([]domain.Entry, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("read entries %s: %w", s.Path, err)
	}

	var raw []struct {
		URL      string `yaml:"url"`
		Name     string `yaml:"name"`
		Interval string `yaml:"interval"`
		Mode     string `yaml:"mode"`
	}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse entries %s: %w", s.Path, err)
	}

	out := make([]domain.Entry, 0, len(raw))
	for i, r := range raw {
		if r.URL == "" {
			s.Logger.Warn("entry_missing_url", zap.Int("index", i))
			continue
		}
		e := domain.Entry{URL: r.URL, Name: r.Name, Interval: r.Interval}
		if e.Interval == "" {
			e.Interval = domain.DefaultInterval
		}
		// a typo'd mode falls back to down-only rather than dropping the entry
		mode, err := domain.ParseMode(r.Mode)
		if err != nil {
			s.Logger.Warn("entry_invalid_mode",
				zap.String("url", r.URL),
				zap.String("mode", r.Mode),
			)
		}
		e.Mode = mode
		out = append(out, e)
	}
	return out, nil
}

// Static serves a fixed list; used by tests and the API.
type Static []domain.Entry

func (s Static) Load() ([]domain.Entry, error) { return s, nil }
