package probe

import (
	"context"
	"net/http"
	"time"

	"urlwatch/internal/domain"
)

// DefaultTimeout bounds one probe end to end.
const DefaultTimeout = 10 * time.Second

type HTTPChecker struct {
	Client  *http.Client
	Timeout time.Duration
}

func NewHTTPChecker(timeout time.Duration) *HTTPChecker {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &HTTPChecker{
		Client:  &http.Client{Timeout: timeout},
		Timeout: timeout,
	}
}

// Check issues one GET. A response with status < 400 is up; any non-success
// status, timeout, DNS or connection failure is down. The deadline context
// aborts an in-flight request; cancel is deferred so the timer is released
// on a normal response.
func (h *HTTPChecker) Check(ctx context.Context, target string) domain.State {
	cctx, cancel := context.WithTimeout(ctx, h.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(cctx, http.MethodGet, target, nil)
	if err != nil {
		return domain.StateDown
	}
	resp, err := h.Client.Do(req)
	if err != nil {
		return domain.StateDown
	}
	defer resp.Body.Close()

	if resp.StatusCode < 400 {
		return domain.StateUp
	}
	return domain.StateDown
}
