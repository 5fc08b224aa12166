package install

import (
	"sync"
	"time"

	"github.com/provisor/provisor/internal/core"
	"github.com/provisor/provisor/internal/progress"
	"github.com/provisor/provisor/internal/retry"
	"github.com/provisor/provisor/internal/util"

	"github.com/emirpasic/gods/maps/linkedhashmap"
	"github.com/icholy/killable"
	cmap "github.com/orcaman/concurrent-map"
	"github.com/pkg/errors"
)

var log = util.GetLogger("install")

// methodBand is the share of the progress bar each method position consumes.
// A method attempted at position i starts at i*methodBand and ramps towards
// the next boundary, so a deeper fallback shows more progress consumed before
// the install concludes.
const methodBand = 33

// Orchestrator installs applications by trying the available strategies in
// priority order, with retries for transient failures. One orchestrator
// instance serves any number of install calls; its duration estimates persist
// across calls. Implements core.Orchestrator.
type Orchestrator struct {
	catalog    core.Catalog
	estimator  core.Estimator
	policy     *retry.Policy
	strategies []Strategy
	mounter    core.ImageMounter
	sink       core.ProgressSink

	// active install trackers, keyed by app id, read by the status API
	active cmap.ConcurrentMap

	access      sync.Mutex
	kill        killable.Killable
	lastResults *linkedhashmap.Map
}

// CreateOrchestrator returns an installation orchestrator using the provided
// collaborators. The mounter can be nil when no offline image is configured,
// in which case installs target the running system directly.
func CreateOrchestrator(catalog core.Catalog, estimator core.Estimator, policy *retry.Policy, strategies []Strategy, mounter core.ImageMounter, sink core.ProgressSink) *Orchestrator {
	return &Orchestrator{
		catalog:    catalog,
		estimator:  estimator,
		policy:     policy,
		strategies: strategies,
		mounter:    mounter,
		sink:       sink,
		active:     cmap.New(),
	}
}

// Install installs a single application, trying each usable method in
// priority order until one succeeds
func (o *Orchestrator) Install(id string) core.InstallResult {
	k := killable.New()
	o.setKillable(k)
	defer o.clearKillable(k)
	return o.install(id, k.Dying())
}

// Kill cancels the currently running install or batch. The signal is checked
// before each method attempt and during retry waits.
func (o *Orchestrator) Kill() error {
	o.access.Lock()
	defer o.access.Unlock()
	if o.kill == nil {
		return errors.New("No install is currently running")
	}
	o.kill.Kill(core.NewTypedError("Install cancelled", core.ErrCancelled))
	return nil
}

// ActiveInstalls returns progress snapshots for all installs in flight
func (o *Orchestrator) ActiveInstalls() []core.InstallProgress {
	snapshots := []core.InstallProgress{}
	for _, item := range o.active.Items() {
		tracker := item.(*progress.Tracker)
		snapshots = append(snapshots, tracker.Snapshot())
	}
	return snapshots
}

// LastResults returns the results of the most recent batch, in install order
func (o *Orchestrator) LastResults() *linkedhashmap.Map {
	o.access.Lock()
	defer o.access.Unlock()
	results := linkedhashmap.New()
	if o.lastResults != nil {
		it := o.lastResults.Iterator()
		for it.Next() {
			results.Put(it.Key(), it.Value())
		}
	}
	return results
}

func (o *Orchestrator) setKillable(k killable.Killable) {
	o.access.Lock()
	o.kill = k
	o.access.Unlock()
}

func (o *Orchestrator) clearKillable(k killable.Killable) {
	o.access.Lock()
	if o.kill == k {
		o.kill = nil
	}
	o.access.Unlock()
}

// install runs the full fallback chain for one application
func (o *Orchestrator) install(id string, dying <-chan struct{}) core.InstallResult {
	start := time.Now()
	logger := log.WithField("app", id)

	app, err := o.catalog.GetApplication(id)
	if err != nil {
		logger.Warnf("Skipping install: %s", err.Error())
		tracker := progress.NewTracker(core.ApplicationDefinition{ID: id, Name: id}, o.sink)
		tracker.Skip("Unknown application " + id)
		return core.InstallResult{AppID: id, Method: core.MethodNone, Error: "Unknown application " + id, Elapsed: time.Since(start)}
	}

	tracker := progress.NewTracker(app, o.sink)
	o.active.Set(id, tracker)
	defer o.active.Remove(id)

	attempts := 0
	var lastErr error

	for i, strat := range o.strategies {
		method := strat.Method()
		if app.Identifier(method) == "" {
			logger.Debugf("Method %s has no identifier for '%s', skipping", method, app.Name)
			continue
		}

		select {
		case <-dying:
			lastErr = core.NewTypedError("Install cancelled", core.ErrCancelled)
		default:
		}
		if lastErr != nil && core.IsErrorType(lastErr, core.ErrCancelled) {
			break
		}

		attempts++
		if strat.IsAvailable() == false {
			logger.Infof("Method %s is not available, falling back", method)
			lastErr = core.NewTypedError("Install tool for method "+method+" is not available", core.ErrToolUnavailable)
			continue
		}

		tracker.BeginMethod(method, i*methodBand, methodBand, i+1, len(o.strategies))
		tracker.SetEstimatedRemaining(o.estimator.Estimate(method, app.Category))

		methodStart := time.Now()
		err = o.policy.Execute(o.attemptOp(strat, app, tracker), tracker, dying)
		if err == nil {
			observed := time.Since(methodStart)
			o.estimator.Record(method, app.Category, observed)
			tracker.Complete()
			logger.Infof("Installed '%s' via %s in %s", app.Name, method, observed)
			return core.InstallResult{AppID: id, Success: true, Method: method, Elapsed: time.Since(start), Attempts: attempts}
		}

		lastErr = err
		if core.IsErrorType(err, core.ErrCancelled) {
			break
		}
		logger.Warnf("Method %s failed for '%s': %s", method, app.Name, err.Error())
	}

	if attempts == 0 && lastErr == nil {
		reason := "No install method has a usable identifier for " + app.Name
		logger.Warn(reason)
		tracker.Skip(reason)
		return core.InstallResult{AppID: id, Method: core.MethodNone, Error: reason, Elapsed: time.Since(start)}
	}

	errorMessage := "Install failed"
	if lastErr != nil {
		errorMessage = lastErr.Error()
	}
	tracker.Fail(errorMessage)
	logger.Errorf("Failed to install '%s': %s", app.Name, errorMessage)
	return core.InstallResult{AppID: id, Method: core.MethodNone, Error: errorMessage, Elapsed: time.Since(start), Attempts: attempts}
}

// attemptOp wraps one strategy attempt so an unexpected panic aborts only the
// current method attempt and still allows falling back to the next one
func (o *Orchestrator) attemptOp(strat Strategy, app core.ApplicationDefinition, tracker *progress.Tracker) func() error {
	return func() (err error) {
		defer func() {
			if r := recover(); r != nil {
				err = errors.Errorf("Install method %s panicked: %v", strat.Method(), r)
			}
		}()
		return strat.Attempt(app, tracker)
	}
}
