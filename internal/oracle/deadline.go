package oracle

import (
	"context"
	"time"
)

// deadlineFrom picks the earlier of ctx's deadline (if any) and
// now+fallback, so a request-scoped context.Context can cut off an
// oracle call sooner than the client's own per-call timeout.
func deadlineFrom(ctx context.Context, fallback time.Duration) time.Time {
	fallbackDeadline := time.Now().Add(fallback)
	if d, ok := ctx.Deadline(); ok && d.Before(fallbackDeadline) {
		return d
	}
	return fallbackDeadline
}
