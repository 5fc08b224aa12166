package install

import (
	"github.com/provisor/provisor/internal/core"
	"github.com/provisor/provisor/internal/progress"
)

// wingetStrategy installs applications through the primary package manager
type wingetStrategy struct {
	runner   core.CommandRunner
	timeouts strategyTimeouts
}

func (s *wingetStrategy) Method() string {
	return core.MethodWinget
}

// IsAvailable probes the winget binary with a version check
func (s *wingetStrategy) IsAvailable() bool {
	_, err := s.runner.Run(s.timeouts.probe, "winget", "--version")
	return err == nil
}

// Attempt runs a silent winget install and succeeds iff the process exits
// with code zero
func (s *wingetStrategy) Attempt(app core.ApplicationDefinition, tracker *progress.Tracker) error {
	tracker.SetStatus(core.StatusInstalling)
	tracker.SetState("Installing " + app.Name + " via winget")

	_, err := s.runner.Run(s.timeouts.install, "winget", "install",
		"--id", app.WingetID,
		"--exact",
		"--silent",
		"--accept-package-agreements",
		"--accept-source-agreements",
		"--disable-interactivity")
	return err
}
