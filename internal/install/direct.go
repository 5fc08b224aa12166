package install

import (
	"os"
	"strings"

	"github.com/provisor/provisor/internal/core"
	"github.com/provisor/provisor/internal/progress"
)

// directStrategy downloads the installer artifact and runs it with the
// configured silent arguments. The artifact is deleted after the attempt,
// regardless of the outcome.
type directStrategy struct {
	runner     core.CommandRunner
	downloader core.Downloader
	timeouts   strategyTimeouts
}

func (s *directStrategy) Method() string {
	return core.MethodDirectDownload
}

// IsAvailable always returns true: a direct download only needs the network,
// which is probed by the download itself
func (s *directStrategy) IsAvailable() bool {
	return true
}

// Attempt downloads the artifact, runs it silently and succeeds iff the
// installer process exits with code zero
func (s *directStrategy) Attempt(app core.ApplicationDefinition, tracker *progress.Tracker) error {
	tracker.SetStatus(core.StatusDownloading)
	tracker.SetState("Downloading " + app.Name)

	artifact, err := s.downloader.Download(app.DownloadURL, tracker)
	if err != nil {
		return err
	}
	defer func() {
		rerr := os.Remove(artifact)
		if rerr != nil {
			log.Warnf("Failed to remove downloaded artifact '%s': %s", artifact, rerr.Error())
		}
	}()

	tracker.SetStatus(core.StatusInstalling)
	tracker.SetState("Running installer for " + app.Name)

	args := strings.Fields(app.SilentArgs)
	_, err = s.runner.Run(s.timeouts.install, artifact, args...)
	return err
}
