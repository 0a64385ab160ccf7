// Package runner executes one monitoring pass. Repetition is the external
// scheduler's job; nothing here loops.
package runner

import (
	"context"
	"time"

	"go.uber.org/zap"

	"urlwatch/internal/domain"
	"urlwatch/internal/entries"
	"urlwatch/internal/notify"
	"urlwatch/internal/policy"
	"urlwatch/internal/probe"
	"urlwatch/internal/status"
)

type Runner struct {
	Logger   *zap.Logger
	Entries  entries.Source
	Status   status.Store
	Checker  probe.Checker
	Notifier notify.Notifier
	Interval string // only entries with this tag are processed

	// Now is swappable for tests; defaults to time.Now.
	Now func() time.Time
}

func New(
	logger *zap.Logger,
	src entries.Source,
	store status.Store,
	checker probe.Checker,
	notifier notify.Notifier,
	interval string,
) *Runner {
	return &Runner{
		Logger:   logger,
		Entries:  src,
		Status:   store,
		Checker:  checker,
		Notifier: notifier,
		Interval: interval,
		Now:      time.Now,
	}
}

// Run performs one pass: load entries, filter by interval tag, check each
// matching entry sequentially, notify on qualifying transitions, and save
// the status map once at the end if anything changed. No single entry's
// failure may affect later entries; check failures are down observations
// and notification failures are logged and swallowed.
func (r *Runner) Run(ctx context.Context) {
	all, err := r.Entries.Load()
	if err != nil {
		// no entries is a no-op pass, not a fatal condition
		r.Logger.Warn("entries_load_error", zap.Error(err))
		return
	}

	matching := make([]domain.Entry, 0, len(all))
	for _, e := range all {
		if e.Interval == r.Interval {
			matching = append(matching, e)
		} else {
			r.Logger.Info("entry_skipped",
				zap.String("url", e.URL),
				zap.String("interval", e.Interval),
				zap.String("want", r.Interval),
			)
		}
	}
	if len(matching) == 0 {
		r.Logger.Info("pass_empty", zap.String("interval", r.Interval))
		return
	}

	statuses := r.Status.Load()
	changed := false

	for _, e := range matching {
		observed := r.Checker.Check(ctx, e.URL)

		prev, ok := statuses[e.URL]
		if !ok {
			prev = domain.StateUnknown
		}

		d := policy.Decide(prev, observed, e.Mode)
		r.Logger.Info("entry_checked",
			zap.String("url", e.URL),
			zap.String("state", string(observed)),
			zap.String("prev", string(prev)),
		)

		if d.Notify {
			msg := policy.Message(e.DisplayName(), e.URL, prev, d.Direction, r.Now())
			if err := r.Notifier.Send(ctx, msg); err != nil {
				// losing one notification beats aborting the pass
				r.Logger.Warn("notify_failed", zap.String("url", e.URL), zap.Error(err))
			} else {
				r.Logger.Info("entry_notified",
					zap.String("url", e.URL),
					zap.String("direction", string(d.Direction)),
				)
			}
		}

		if prev != d.Next {
			statuses[e.URL] = d.Next
			changed = true
		}
	}

	if !changed {
		r.Logger.Info("pass_unchanged")
		return
	}
	if err := r.Status.Save(statuses); err != nil {
		r.Logger.Error("status_save_error", zap.Error(err))
		return
	}
	r.Logger.Info("status_saved", zap.Int("entries", len(statuses)))
}
