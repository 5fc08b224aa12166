package core

import (
	"time"
)

const (
	// MethodWinget - primary package manager (winget)
	MethodWinget = "winget"
	// MethodChoco - secondary package manager (chocolatey)
	MethodChoco = "choco"
	// MethodDirectDownload - direct download of the installer artifact
	MethodDirectDownload = "direct"
	// MethodManual - installation performed outside of provisor
	MethodManual = "manual"
	// MethodNone - no method was used (install failed or skipped)
	MethodNone = ""
)

// MethodPriority is the fixed order in which install methods are attempted
var MethodPriority = []string{MethodWinget, MethodChoco, MethodDirectDownload}

const (
	// StatusPending - install has been created but no method was attempted yet
	StatusPending = "pending"
	// StatusDownloading - the installer artifact is being downloaded
	StatusDownloading = "downloading"
	// StatusInstalling - an install command is running
	StatusInstalling = "installing"
	// StatusConfiguring - post install configuration is running
	StatusConfiguring = "configuring"
	// StatusComplete - install finished successfully
	StatusComplete = "complete"
	// StatusFailed - all applicable methods failed
	StatusFailed = "failed"
	// StatusSkipped - unknown application or no usable method identifier
	StatusSkipped = "skipped"
)

// ApplicationDefinition describes one installable application from the catalog.
// At least one of the method identifiers needs to be set for the respective
// method to be attempted.
type ApplicationDefinition struct {
	ID          string `json:"id" yaml:"id" validate:"required"`
	Name        string `json:"name" yaml:"name" validate:"required"`
	Category    string `json:"category" yaml:"category"`
	WingetID    string `json:"winget-id,omitempty" yaml:"winget-id"`
	ChocoID     string `json:"choco-id,omitempty" yaml:"choco-id"`
	DownloadURL string `json:"download-url,omitempty" yaml:"download-url" validate:"omitempty,url"`
	SilentArgs  string `json:"silent-args,omitempty" yaml:"silent-args"`
}

// Identifier returns the identifier the given install method uses for this
// application, or an empty string if the method is not usable for it
func (a ApplicationDefinition) Identifier(method string) string {
	switch method {
	case MethodWinget:
		return a.WingetID
	case MethodChoco:
		return a.ChocoID
	case MethodDirectDownload:
		return a.DownloadURL
	}
	return ""
}

// RetryConfig controls the backoff behaviour for transient install failures
type RetryConfig struct {
	MaxRetries         int           `json:"max-retries" yaml:"max-retries" validate:"min=0"`
	InitialDelay       time.Duration `json:"initial-delay" yaml:"initial-delay" validate:"min=0"`
	MaxDelay           time.Duration `json:"max-delay" yaml:"max-delay" validate:"min=0"`
	BackoffFactor      float64       `json:"backoff-factor" yaml:"backoff-factor" validate:"min=1"`
	RetryNetworkErrors bool          `json:"retry-network-errors" yaml:"retry-network-errors"`
	RetryTimeouts      bool          `json:"retry-timeouts" yaml:"retry-timeouts"`
}

// InstallProgress is a snapshot of the state of one install attempt. Each
// install gets a unique id when its tracker is created. Sinks always receive
// copies, never the live struct owned by the tracker.
type InstallProgress struct {
	ID                 string        `json:"id"`
	AppID              string        `json:"app-id"`
	AppName            string        `json:"app-name"`
	Status             string        `json:"status"`
	Percentage         int           `json:"percentage"`
	Step               string        `json:"step"`
	StepNr             int           `json:"step-nr"`
	TotalSteps         int           `json:"total-steps"`
	Method             string        `json:"method"`
	BytesDownloaded    int64         `json:"bytes-downloaded,omitempty"`
	BytesTotal         int64         `json:"bytes-total,omitempty"`
	SpeedBPS           float64       `json:"speed-bps,omitempty"`
	Elapsed            time.Duration `json:"elapsed"`
	EstimatedRemaining time.Duration `json:"estimated-remaining"`
	ErrorMessage       string        `json:"error,omitempty"`
	StartedAt          time.Time     `json:"started-at"`
	FinishedAt         time.Time     `json:"finished-at,omitempty"`
}

// InstallResult is the terminal record of one install call. Exactly one
// result is produced per application per orchestrator call.
type InstallResult struct {
	AppID    string        `json:"app-id"`
	Success  bool          `json:"success"`
	Method   string        `json:"method"`
	Error    string        `json:"error,omitempty"`
	Elapsed  time.Duration `json:"elapsed"`
	Attempts int           `json:"attempts"`
}

const (
	// EvidenceWingetList - app found in the winget installed-package listing
	EvidenceWingetList = "winget-list"
	// EvidenceChocoList - app found in the chocolatey local listing
	EvidenceChocoList = "choco-list"
	// EvidenceWingetExport - app found in a winget export manifest
	EvidenceWingetExport = "winget-export"
	// EvidenceRegistry - app found in the OS uninstall registry
	EvidenceRegistry = "registry"
	// EvidenceFilesystem - app directory found in a common install root
	EvidenceFilesystem = "filesystem"
)

// VerificationResult reports whether an application could be confirmed as
// installed, and which evidence source confirmed it
type VerificationResult struct {
	AppID       string `json:"app-id"`
	Installed   bool   `json:"installed"`
	Source      string `json:"source,omitempty"`
	InstallPath string `json:"install-path,omitempty"`
	Version     string `json:"version,omitempty"`
	Message     string `json:"message,omitempty"`
}
