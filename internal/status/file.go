package status

import (
	"encoding/json"
	"fmt"
	"os"

	"go.uber.org/zap"

	"urlwatch/internal/domain"
)

// File stores the status map as a pretty-printed JSON document, rewritten
// wholesale on every save. A crash mid-pass loses at most one pass's
// updates; the next pass re-derives everything from fresh checks.
type File struct {
	Path   string
	Logger *zap.Logger
}

func NewFile(path string, logger *zap.Logger) *File {
	return &File{Path: path, Logger: logger}
}

func (f *File) Load() map[string]domain.State {
	out := make(map[string]domain.State)

	data, err := os.ReadFile(f.Path)
	if err != nil {
		if !os.IsNotExist(err) {
			f.Logger.Warn("status_read_error", zap.String("path", f.Path), zap.Error(err))
		}
		return out
	}

	var raw map[string]string
	if err := json.Unmarshal(data, &raw); err != nil {
		// corrupt file is "no prior data", never fatal
		f.Logger.Warn("status_parse_error", zap.String("path", f.Path), zap.Error(err))
		return out
	}

	for url, v := range raw {
		st, err := domain.ParseState(v)
		if err != nil {
			f.Logger.Warn("status_invalid_state",
				zap.String("url", url),
				zap.String("state", v),
			)
			continue
		}
		out[url] = st
	}
	return out
}

func (f *File) Save(m map[string]domain.State) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal statuses: %w", err)
	}
	if err := os.WriteFile(f.Path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", f.Path, err)
	}
	return nil
}
