package install

import (
	"time"

	"github.com/provisor/provisor/internal/core"
	"github.com/provisor/provisor/internal/progress"
)

// Strategy is one install delivery mechanism. The set of strategies is
// closed: winget, chocolatey and direct download, always attempted in that
// order. An attempt is a single try; retries are driven by the orchestrator.
type Strategy interface {
	Method() string
	IsAvailable() bool
	Attempt(app core.ApplicationDefinition, tracker *progress.Tracker) error
}

// timeouts shared by the strategy implementations
type strategyTimeouts struct {
	probe   time.Duration
	install time.Duration
}

// DefaultStrategies returns the closed strategy set in priority order
func DefaultStrategies(runner core.CommandRunner, downloader core.Downloader, probeTimeout time.Duration, installTimeout time.Duration) []Strategy {
	timeouts := strategyTimeouts{probe: probeTimeout, install: installTimeout}
	return []Strategy{
		&wingetStrategy{runner: runner, timeouts: timeouts},
		&chocoStrategy{runner: runner, timeouts: timeouts},
		&directStrategy{runner: runner, downloader: downloader, timeouts: timeouts},
	}
}
