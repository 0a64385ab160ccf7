package config

import (
	"errors"
	"os"
	"strconv"
	"time"
)

type Config struct {
	WebhookURL   string        // chat webhook destination, required for the monitor
	EntriesFile  string        // entry-list document, e.g. "entries.yaml"
	StatusFile   string        // persisted status map, e.g. "status.json"
	Interval     string        // scheduling tag: only entries with this tag are checked
	CheckTimeout time.Duration // upper bound on one probe
	LogDir       string        // logs directory
	Addr         string        // API bind address (cmd/api only)
}

// ErrNoWebhook is the fatal-configuration case: without a destination there
// is nothing the monitor could do with a transition.
var ErrNoWebhook = errors.New("WEBHOOK_URL is not set")

func FromEnv() Config {
	webhook := os.Getenv("WEBHOOK_URL")

	entriesFile := os.Getenv("ENTRIES_FILE")
	if entriesFile == "" {
		entriesFile = "entries.yaml"
	}

	statusFile := os.Getenv("STATUS_FILE")
	if statusFile == "" {
		statusFile = "status.json"
	}

	interval := os.Getenv("CHECK_INTERVAL")
	if interval == "" {
		interval = "1m"
	}

	timeout := 10 * time.Second
	if v := os.Getenv("CHECK_TIMEOUT_MS"); v != "" {
		if ms, err := strconv.Atoi(v); err == nil && ms > 0 {
			timeout = time.Duration(ms) * time.Millisecond
		}
	}

	logDir := os.Getenv("LOG_DIR")
	if logDir == "" {
		logDir = "logs"
	}

	addr := os.Getenv("API_ADDR")
	if addr == "" {
		addr = "127.0.0.1:8080"
	}

	return Config{
		WebhookURL:   webhook,
		EntriesFile:  entriesFile,
		StatusFile:   statusFile,
		Interval:     interval,
		CheckTimeout: timeout,
		LogDir:       logDir,
		Addr:         addr,
	}
}

// Validate reports the required-configuration errors instead of exiting, so
// callers own the process-exit decision.
func (c Config) Validate() error {
	if c.WebhookURL == "" {
		return ErrNoWebhook
	}
	return nil
}
