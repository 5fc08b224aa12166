package core

import (
	"time"

	"github.com/emirpasic/gods/maps/linkedhashmap"
)

//go:generate mockgen -source=install.go -destination=../mock/install.go -package=mock

// Orchestrator installs applications by trying the available install methods
// in priority order
type Orchestrator interface {
	Install(id string) InstallResult
	InstallAll(ids []string, parallel bool, maxWorkers int) *linkedhashmap.Map
	ActiveInstalls() []InstallProgress
	LastResults() *linkedhashmap.Map
	Kill() error
}

// Estimator keeps adaptive install duration estimates per method and
// application category
type Estimator interface {
	Estimate(method string, category string) time.Duration
	Record(method string, category string, observed time.Duration)
}

// CommandRunner runs an external command and returns its combined output.
// A deadline exceeded run returns a timeout typed error, while a non-zero
// exit returns a non-zero-exit typed error.
type CommandRunner interface {
	Run(timeout time.Duration, name string, arg ...string) (string, error)
}

// Downloader streams a remote file to local storage, reporting byte progress
// while the transfer is running. The returned path points to a temporary file
// which the caller has to remove after use.
type Downloader interface {
	Download(url string, prog Progress) (string, error)
}
