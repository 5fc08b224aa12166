package provisord

import (
	"time"

	"github.com/provisor/provisor/internal/api"
	"github.com/provisor/provisor/internal/catalog"
	"github.com/provisor/provisor/internal/config"
	"github.com/provisor/provisor/internal/core"
	"github.com/provisor/provisor/internal/download"
	"github.com/provisor/provisor/internal/estimate"
	"github.com/provisor/provisor/internal/image"
	"github.com/provisor/provisor/internal/install"
	"github.com/provisor/provisor/internal/platform"
	"github.com/provisor/provisor/internal/retry"
	"github.com/provisor/provisor/internal/util"
	"github.com/provisor/provisor/internal/verify"

	"github.com/emirpasic/gods/maps/linkedhashmap"
	"github.com/pkg/errors"
)

var log = util.GetLogger("provisord")

// Provisord bundles the wired components of the install daemon
type Provisord struct {
	Config       *config.Config
	Catalog      core.Catalog
	Orchestrator core.Orchestrator
	Verifier     core.Verifier
}

// Setup wires all the components using the provided configuration. The
// progress sink receives snapshots from every install worker, so it has to
// return quickly.
func Setup(cfg *config.Config, sink core.ProgressSink) (*Provisord, error) {
	catalogManager, err := catalog.CreateManager(cfg.CatalogFile)
	if err != nil {
		return nil, errors.Wrap(err, "Failed to set up provisord")
	}

	runner := install.NewCommandRunner()
	downloadManager, err := download.CreateManager(cfg.DownloadDir, time.Duration(cfg.ConnectTimeout)*time.Second)
	if err != nil {
		return nil, errors.Wrap(err, "Failed to set up provisord")
	}

	estimator := estimate.CreateEstimator(cfg.DefaultEstimates())
	policy := retry.NewPolicy(cfg.RetryConfig())
	strategies := install.DefaultStrategies(runner, downloadManager,
		time.Duration(cfg.ProbeTimeout)*time.Second,
		time.Duration(cfg.InstallTimeout)*time.Second)

	var mounter core.ImageMounter
	if cfg.ImageFile != "" {
		mounter = image.CreateMounter(runner, cfg.ImageFile, cfg.ImageIndex, cfg.MountDir)
	}

	orchestrator := install.CreateOrchestrator(catalogManager, estimator, policy, strategies, mounter, sink)
	verifier := verify.CreateEngine(catalogManager, runner, cfg.InstallRoots, time.Duration(cfg.InstallTimeout)*time.Second)

	return &Provisord{
		Config:       cfg,
		Catalog:      catalogManager,
		Orchestrator: orchestrator,
		Verifier:     verifier,
	}, nil
}

// InstallAll runs the preflight checks and installs the provided batch
func (p *Provisord) InstallAll(ids []string) (*linkedhashmap.Map, error) {
	err := platform.Preflight(p.Config.WorkDir, p.Config.MinFreeDiskMB, p.Config.MinFreeMemMB)
	if err != nil {
		return nil, err
	}
	return p.Orchestrator.InstallAll(ids, p.Config.Parallel, p.Config.MaxWorkers), nil
}

// StartUp runs the status API until it stops
func (p *Provisord) StartUp() error {
	log.Infof("Starting provisord %s", p.Config.Version.String())
	return api.Websrv(p.Config, p.Orchestrator, p.Verifier, p.Catalog)
}
