package progress

import (
	"fmt"
	"sync"
	"time"

	"github.com/provisor/provisor/internal/core"

	"github.com/dustin/go-humanize"
	"github.com/jinzhu/copier"
	"github.com/rs/xid"
)

// emitInterval limits how often byte-level updates reach the sink during a
// download, so a fast transfer does not flood the callback
const emitInterval = 500 * time.Millisecond

// ETAString formats an estimated remaining duration for display: seconds
// below one minute, "Xm Ys" below one hour and "Xh Ym" above that
func ETAString(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	secs := int(d.Round(time.Second).Seconds())
	switch {
	case secs < 60:
		return fmt.Sprintf("%ds", secs)
	case secs < 3600:
		return fmt.Sprintf("%dm %ds", secs/60, secs%60)
	default:
		return fmt.Sprintf("%dh %dm", secs/3600, (secs%3600)/60)
	}
}

// SpeedString formats a transfer speed in bytes per second for display
func SpeedString(bps float64) string {
	if bps < 0 {
		bps = 0
	}
	return humanize.Bytes(uint64(bps)) + "/s"
}

// Tracker owns the live progress state of one install attempt and hands out
// snapshot copies to the configured sink. All methods are safe for concurrent
// use, although a tracker is normally driven by a single install worker.
type Tracker struct {
	access   sync.Mutex
	cur      core.InstallProgress
	sink     core.ProgressSink
	lastEmit time.Time

	// percent band of the method currently being attempted
	bandBase int
	bandSize int
}

// NewTracker creates a progress tracker for one application install
func NewTracker(app core.ApplicationDefinition, sink core.ProgressSink) *Tracker {
	t := &Tracker{
		cur: core.InstallProgress{
			ID:        xid.New().String(),
			AppID:     app.ID,
			AppName:   app.Name,
			Status:    core.StatusPending,
			StartedAt: time.Now(),
		},
		bandSize: 100,
	}
	t.sink = sink
	t.emit(true)
	return t
}

// BeginMethod marks the start of a new method attempt. The percent moves to
// the band assigned to the method's position in the priority order; this is
// the only transition that is allowed to lower the percent.
func (t *Tracker) BeginMethod(method string, bandBase int, bandSize int, stepNr int, totalSteps int) {
	t.access.Lock()
	t.cur.Method = method
	t.cur.Percentage = bandBase
	t.cur.StepNr = stepNr
	t.cur.TotalSteps = totalSteps
	t.cur.BytesDownloaded = 0
	t.cur.BytesTotal = 0
	t.cur.SpeedBPS = 0
	t.bandBase = bandBase
	t.bandSize = bandSize
	t.access.Unlock()
	t.emit(true)
}

// SetStatus sets the install status
func (t *Tracker) SetStatus(status string) {
	t.access.Lock()
	t.cur.Status = status
	t.access.Unlock()
	t.emit(true)
}

// SetState sets the human readable step description
func (t *Tracker) SetState(stateText string) {
	t.access.Lock()
	t.cur.Step = stateText
	t.access.Unlock()
	t.emit(true)
}

// SetPercentage raises the percent of the current attempt. Within one method
// attempt the percent never decreases.
func (t *Tracker) SetPercentage(percent int) {
	t.access.Lock()
	if percent > 100 {
		percent = 100
	}
	if percent > t.cur.Percentage {
		t.cur.Percentage = percent
	}
	t.access.Unlock()
	t.emit(false)
}

// SetBytes updates the download byte counters and speed. When the total is
// known the byte ratio is mapped into the current method's percent band and
// the remaining time is derived from the current speed.
func (t *Tracker) SetBytes(downloaded int64, total int64, speedBPS float64) {
	t.access.Lock()
	t.cur.BytesDownloaded = downloaded
	t.cur.BytesTotal = total
	t.cur.SpeedBPS = speedBPS
	if total > 0 {
		percent := t.bandBase + int(float64(t.bandSize)*float64(downloaded)/float64(total))
		if percent > t.cur.Percentage {
			t.cur.Percentage = percent
		}
		if speedBPS > 0 {
			remaining := float64(total-downloaded) / speedBPS
			t.cur.EstimatedRemaining = time.Duration(remaining * float64(time.Second))
		}
	}
	t.access.Unlock()
	t.emit(false)
}

// SetEstimatedRemaining sets the expected remaining time, normally from the
// duration estimator at the start of a method attempt
func (t *Tracker) SetEstimatedRemaining(d time.Duration) {
	t.access.Lock()
	t.cur.EstimatedRemaining = d
	t.access.Unlock()
	t.emit(false)
}

// Complete marks the install as successfully finished
func (t *Tracker) Complete() {
	t.access.Lock()
	t.cur.Status = core.StatusComplete
	t.cur.Percentage = 100
	t.cur.EstimatedRemaining = 0
	t.cur.FinishedAt = time.Now()
	t.access.Unlock()
	t.emit(true)
}

// Fail marks the install as failed with the provided error message
func (t *Tracker) Fail(errorMessage string) {
	t.access.Lock()
	t.cur.Status = core.StatusFailed
	t.cur.ErrorMessage = errorMessage
	t.cur.FinishedAt = time.Now()
	t.access.Unlock()
	t.emit(true)
}

// Skip marks the install as skipped with the provided reason
func (t *Tracker) Skip(reason string) {
	t.access.Lock()
	t.cur.Status = core.StatusSkipped
	t.cur.ErrorMessage = reason
	t.cur.FinishedAt = time.Now()
	t.access.Unlock()
	t.emit(true)
}

// Snapshot returns a copy of the current progress state
func (t *Tracker) Snapshot() core.InstallProgress {
	t.access.Lock()
	defer t.access.Unlock()
	return t.snapshotLocked()
}

func (t *Tracker) snapshotLocked() core.InstallProgress {
	snapshot := core.InstallProgress{}
	err := copier.Copy(&snapshot, &t.cur)
	if err != nil {
		// copier only fails on invalid input types
		snapshot = t.cur
	}
	snapshot.Elapsed = time.Since(t.cur.StartedAt)
	if t.cur.FinishedAt.IsZero() == false {
		snapshot.Elapsed = t.cur.FinishedAt.Sub(t.cur.StartedAt)
	}
	return snapshot
}

// emit sends a snapshot to the sink. Byte and percent level updates are
// rate limited, while status transitions always go through.
func (t *Tracker) emit(force bool) {
	if t.sink == nil {
		return
	}
	t.access.Lock()
	now := time.Now()
	if force == false && now.Sub(t.lastEmit) < emitInterval {
		t.access.Unlock()
		return
	}
	t.lastEmit = now
	snapshot := t.snapshotLocked()
	t.access.Unlock()
	t.sink.Progress(snapshot)
}
