package install

import (
	"github.com/provisor/provisor/internal/core"
	"github.com/provisor/provisor/internal/progress"
)

// chocoStrategy installs applications through the secondary package manager
type chocoStrategy struct {
	runner   core.CommandRunner
	timeouts strategyTimeouts
}

func (s *chocoStrategy) Method() string {
	return core.MethodChoco
}

// IsAvailable probes the chocolatey binary with a version check
func (s *chocoStrategy) IsAvailable() bool {
	_, err := s.runner.Run(s.timeouts.probe, "choco", "--version")
	return err == nil
}

// Attempt runs a silent chocolatey install and succeeds iff the process
// exits with code zero
func (s *chocoStrategy) Attempt(app core.ApplicationDefinition, tracker *progress.Tracker) error {
	tracker.SetStatus(core.StatusInstalling)
	tracker.SetState("Installing " + app.Name + " via chocolatey")

	_, err := s.runner.Run(s.timeouts.install, "choco", "install", app.ChocoID, "-y", "--no-progress")
	return err
}
