// cmd/preflight/main.go
package main

import (
	"fmt"
	"os"
	"strings"
	"time"
)

func main() {
	fail := func(msg string) {
		fmt.Fprintln(os.Stderr, "✖", msg)
		os.Exit(1)
	}
	warn := func(msg string) { fmt.Fprintln(os.Stderr, "⚠", msg) }
	ok := func(msg string) { fmt.Println("✔", msg) }

	webhook := strings.TrimSpace(os.Getenv("WEBHOOK_URL"))
	entriesFile := strings.TrimSpace(os.Getenv("ENTRIES_FILE"))
	statusFile := strings.TrimSpace(os.Getenv("STATUS_FILE"))
	interval := strings.TrimSpace(os.Getenv("CHECK_INTERVAL"))

	if webhook == "" {
		fail("WEBHOOK_URL is empty (the monitor exits before checking anything).")
	}
	if !strings.HasPrefix(webhook, "http://") && !strings.HasPrefix(webhook, "https://") {
		warn("WEBHOOK_URL does not look like an http(s) URL.")
	} else {
		ok("WEBHOOK_URL present")
	}

	if entriesFile == "" {
		entriesFile = "entries.yaml"
	}
	if _, err := os.Stat(entriesFile); err != nil {
		warn(fmt.Sprintf("entries file %s not readable — the pass will be a no-op.", entriesFile))
	} else {
		ok("entries file: " + entriesFile)
	}

	if statusFile == "" {
		warn("STATUS_FILE is empty; default status.json in the working directory will be used.")
	} else {
		ok("STATUS_FILE=" + statusFile)
	}

	if interval == "" {
		warn("CHECK_INTERVAL is empty; only entries tagged 1m will be processed.")
	} else if _, err := time.ParseDuration(interval); err != nil {
		warn("CHECK_INTERVAL is a free-form tag; " + interval + " does not parse as a duration, make sure entries use the same spelling.")
	} else {
		ok("CHECK_INTERVAL=" + interval)
	}

	ok("preflight passed")
}
