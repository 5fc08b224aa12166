package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/provisor/provisor/internal/core"
	"github.com/provisor/provisor/internal/util"

	"github.com/Masterminds/semver"
	validator "github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	yaml "gopkg.in/yaml.v2"
)

var log = util.GetLogger("config")

// Config is the main configuration struct
type Config struct {
	WorkDir      string   `yaml:"workdir"`
	DownloadDir  string   `yaml:"download-dir"`
	CatalogFile  string   `yaml:"catalog" validate:"required"`
	ImageFile    string   `yaml:"image-file"`
	ImageIndex   int      `yaml:"image-index" validate:"min=1"`
	MountDir     string   `yaml:"mount-dir"`
	HTTPport     int      `yaml:"http-port" validate:"min=1,max=65535"`
	InstallRoots []string `yaml:"install-roots"`

	MaxWorkers int  `yaml:"max-workers" validate:"min=1"`
	Parallel   bool `yaml:"parallel"`

	InstallTimeout int `yaml:"install-timeout" validate:"min=1"`
	ProbeTimeout   int `yaml:"probe-timeout" validate:"min=1"`
	ConnectTimeout int `yaml:"connect-timeout" validate:"min=1"`

	MinFreeDiskMB uint64 `yaml:"min-free-disk-mb"`
	MinFreeMemMB  uint64 `yaml:"min-free-mem-mb"`

	Retry retrySettings `yaml:"retry"`

	Version *semver.Version `yaml:"-"`
}

type retrySettings struct {
	MaxRetries         int     `yaml:"max-retries" validate:"min=0"`
	InitialDelay       int     `yaml:"initial-delay" validate:"min=0"`
	MaxDelay           int     `yaml:"max-delay" validate:"min=0"`
	BackoffFactor      float64 `yaml:"backoff-factor" validate:"min=1"`
	RetryNetworkErrors bool    `yaml:"retry-network-errors"`
	RetryTimeouts      bool    `yaml:"retry-timeouts"`
}

var defaultConfig = Config{
	WorkDir:        "/var/lib/provisor",
	CatalogFile:    "catalog.yaml",
	ImageIndex:     1,
	HTTPport:       8085,
	MaxWorkers:     4,
	Parallel:       false,
	InstallTimeout: 600,
	ProbeTimeout:   5,
	ConnectTimeout: 30,
	MinFreeDiskMB:  2048,
	MinFreeMemMB:   512,
	Retry: retrySettings{
		MaxRetries:         3,
		InitialDelay:       2,
		MaxDelay:           30,
		BackoffFactor:      2,
		RetryNetworkErrors: true,
		RetryTimeouts:      true,
	},
	InstallRoots: []string{
		"C:\\Program Files",
		"C:\\Program Files (x86)",
		"C:\\ProgramData",
	},
}

// Load reads the configuration from a file and maps it to the config struct
func Load(configFile string, version *semver.Version) (*Config, error) {
	log.Info("Reading main config [", configFile, "]")
	cfg := defaultConfig

	filename, _ := filepath.Abs(configFile)
	yamlFile, err := os.ReadFile(filename)
	if err != nil {
		if os.IsNotExist(err) {
			log.Info("No config file found, using default config values")
		} else {
			return nil, errors.Wrap(err, "Failed to load provisor config file")
		}
	} else {
		err = yaml.Unmarshal(yamlFile, &cfg)
		if err != nil {
			return nil, errors.Wrap(err, "Failed to parse provisor config file")
		}
	}

	if cfg.DownloadDir == "" {
		cfg.DownloadDir = filepath.Join(cfg.WorkDir, "downloads")
	}
	if cfg.MountDir == "" {
		cfg.MountDir = filepath.Join(cfg.WorkDir, "mount")
	}
	cfg.Version = version

	err = validator.New().Struct(cfg)
	if err != nil {
		return nil, errors.Wrap(err, "Invalid provisor configuration")
	}

	return &cfg, nil
}

// RetryConfig returns the retry settings as the core retry configuration
func (cfg *Config) RetryConfig() core.RetryConfig {
	return core.RetryConfig{
		MaxRetries:         cfg.Retry.MaxRetries,
		InitialDelay:       time.Duration(cfg.Retry.InitialDelay) * time.Second,
		MaxDelay:           time.Duration(cfg.Retry.MaxDelay) * time.Second,
		BackoffFactor:      cfg.Retry.BackoffFactor,
		RetryNetworkErrors: cfg.Retry.RetryNetworkErrors,
		RetryTimeouts:      cfg.Retry.RetryTimeouts,
	}
}

// DefaultEstimates returns the seed table for the duration estimator. Methods
// earlier in the priority list get lower estimates, while direct downloads get
// the highest one because of network variance.
func (cfg *Config) DefaultEstimates() map[string]time.Duration {
	return map[string]time.Duration{
		core.MethodWinget:         45 * time.Second,
		core.MethodChoco:          75 * time.Second,
		core.MethodDirectDownload: 120 * time.Second,
	}
}
