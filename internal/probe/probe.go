package probe

import (
	"context"

	"urlwatch/internal/domain"
)

// Checker performs a single reachability probe for a target URL. It never
// fails: every transport or HTTP-level problem is a valid down observation.
type Checker interface {
	Check(ctx context.Context, target string) domain.State
}
