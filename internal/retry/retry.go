package retry

import (
	"fmt"
	"math"
	"time"

	"github.com/provisor/provisor/internal/core"
	"github.com/provisor/provisor/internal/util"
)

var log = util.GetLogger("retry")

// Policy computes bounded exponential backoff delays and drives the retry
// loop around a single install operation
type Policy struct {
	cfg core.RetryConfig
}

// NewPolicy returns a retry policy for the provided configuration
func NewPolicy(cfg core.RetryConfig) *Policy {
	return &Policy{cfg: cfg}
}

// Delay returns the backoff delay for the provided 0-based attempt number.
// The delay never exceeds the configured maximum.
func (p *Policy) Delay(attempt int) time.Duration {
	if attempt < 0 {
		attempt = 0
	}
	delay := time.Duration(float64(p.cfg.InitialDelay) * math.Pow(p.cfg.BackoffFactor, float64(attempt)))
	if delay > p.cfg.MaxDelay || delay < 0 {
		delay = p.cfg.MaxDelay
	}
	return delay
}

// Execute runs the operation, retrying it on retryable failures until the
// configured attempts are exhausted. Before each backoff sleep the provided
// progress is updated with the wait time, and the sleep terminates early if
// the dying channel is closed. The last failure is always returned to the
// caller; a cancelled sleep returns a cancellation error.
func (p *Policy) Execute(op func() error, prog core.Progress, dying <-chan struct{}) error {
	var lastErr error
	for attempt := 0; attempt <= p.cfg.MaxRetries; attempt++ {
		lastErr = op()
		if lastErr == nil {
			return nil
		}
		if core.IsRetryable(lastErr, p.cfg) == false {
			return lastErr
		}
		if attempt == p.cfg.MaxRetries {
			break
		}

		delay := p.Delay(attempt)
		log.Debugf("Retryable failure (%s), retrying in %s", lastErr.Error(), delay)
		if prog != nil {
			prog.SetState(fmt.Sprintf("Retrying in %ds", int(delay.Seconds())))
		}
		select {
		case <-time.After(delay):
		case <-dying:
			return core.NewTypedError("Install cancelled while waiting to retry", core.ErrCancelled)
		}
	}
	return lastErr
}
