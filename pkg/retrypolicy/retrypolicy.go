// Package retrypolicy wraps verification commands in a fixed-delay retry
// loop. Verification here is advisory: the external directory is eventually
// consistent, so a resource that was just created can legitimately fail its
// first few info lookups. Exhausting the budget is reported, not fatal.
package retrypolicy

import (
	"context"
	"errors"
	"time"

	"github.com/cenkalti/backoff/v4"
)

var errNotVerified = errors.New("not verified")

// Policy is a fixed-delay retry budget for one class of verification.
type Policy struct {
	Name    string
	Delay   time.Duration
	Retries uint64
}

// Existence covers resource-existence checks after creation; propagation of
// a new group or drive can take a while.
var Existence = Policy{Name: "existence", Delay: 30 * time.Second, Retries: 3}

// Settings covers re-checks of freshly applied settings, which converge much
// faster than resource creation.
var Settings = Policy{Name: "settings", Delay: 2 * time.Second, Retries: 3}

// Verify runs check until it reports success or the budget (Retries attempts
// beyond the first) is exhausted, sleeping Delay between attempts. Returns
// whether verification ever succeeded; the caller decides what an advisory
// failure means.
func (p Policy) Verify(ctx context.Context, check func(ctx context.Context) bool) bool {
	op := func() error {
		if check(ctx) {
			return nil
		}
		return errNotVerified
	}
	b := backoff.WithContext(backoff.WithMaxRetries(backoff.NewConstantBackOff(p.Delay), p.Retries), ctx)
	return backoff.Retry(op, b) == nil
}
