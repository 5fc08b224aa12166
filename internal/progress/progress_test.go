package progress

import (
	"sync"
	"testing"
	"time"

	"github.com/provisor/provisor/internal/core"
)

// countingSink records every snapshot it receives
type countingSink struct {
	access    sync.Mutex
	snapshots []core.InstallProgress
}

func (s *countingSink) Progress(snapshot core.InstallProgress) {
	s.access.Lock()
	s.snapshots = append(s.snapshots, snapshot)
	s.access.Unlock()
}

func (s *countingSink) count() int {
	s.access.Lock()
	defer s.access.Unlock()
	return len(s.snapshots)
}

func (s *countingSink) last() core.InstallProgress {
	s.access.Lock()
	defer s.access.Unlock()
	return s.snapshots[len(s.snapshots)-1]
}

func testApp() core.ApplicationDefinition {
	return core.ApplicationDefinition{ID: "demo", Name: "Demo App", Category: "Development"}
}

func TestETAString(t *testing.T) {
	cases := map[time.Duration]string{
		0:                  "0s",
		45 * time.Second:   "45s",
		125 * time.Second:  "2m 5s",
		3700 * time.Second: "1h 1m",
		-5 * time.Second:   "0s",
	}
	for in, expected := range cases {
		if out := ETAString(in); out != expected {
			t.Errorf("ETAString(%s) should return '%s', instead of '%s'", in, expected, out)
		}
	}
}

func TestSpeedString(t *testing.T) {
	cases := map[float64]string{
		500:     "500 B/s",
		2000:    "2.0 kB/s",
		1500000: "1.5 MB/s",
	}
	for in, expected := range cases {
		if out := SpeedString(in); out != expected {
			t.Errorf("SpeedString(%f) should return '%s', instead of '%s'", in, expected, out)
		}
	}
}

func TestTrackerPercentNeverDecreasesWithinAttempt(t *testing.T) {
	tracker := NewTracker(testApp(), nil)
	tracker.BeginMethod(core.MethodWinget, 0, 33, 1, 3)

	tracker.SetPercentage(20)
	if p := tracker.Snapshot().Percentage; p != 20 {
		t.Errorf("Percentage should be 20, instead of %d", p)
	}
	tracker.SetPercentage(10)
	if p := tracker.Snapshot().Percentage; p != 20 {
		t.Errorf("Percentage should not decrease within one attempt, but it became %d", p)
	}

	// moving to the next method is the only transition that may lower it
	tracker.BeginMethod(core.MethodChoco, 33, 33, 2, 3)
	if p := tracker.Snapshot().Percentage; p != 33 {
		t.Errorf("Percentage should be 33 at the start of the second method, instead of %d", p)
	}
}

func TestTrackerBytesMapIntoMethodBand(t *testing.T) {
	tracker := NewTracker(testApp(), nil)
	tracker.BeginMethod(core.MethodDirectDownload, 66, 33, 3, 3)

	tracker.SetBytes(50, 100, 1000)
	snapshot := tracker.Snapshot()
	if snapshot.Percentage != 82 {
		t.Errorf("Half of the download should map to 82%%, instead of %d%%", snapshot.Percentage)
	}
	if snapshot.BytesDownloaded != 50 || snapshot.BytesTotal != 100 {
		t.Errorf("Byte counters have the wrong values: %d/%d", snapshot.BytesDownloaded, snapshot.BytesTotal)
	}
	if snapshot.EstimatedRemaining != 50*time.Millisecond {
		t.Errorf("Remaining time should be 50ms at 1000 B/s, instead of %s", snapshot.EstimatedRemaining)
	}

	// unknown total size leaves percent untouched but keeps the counters
	tracker2 := NewTracker(testApp(), nil)
	tracker2.BeginMethod(core.MethodDirectDownload, 66, 33, 3, 3)
	tracker2.SetBytes(1024, -1, 512)
	snapshot2 := tracker2.Snapshot()
	if snapshot2.Percentage != 66 {
		t.Errorf("Percentage should stay at the band base for an unknown size, instead of %d", snapshot2.Percentage)
	}
	if snapshot2.BytesDownloaded != 1024 || snapshot2.SpeedBPS != 512 {
		t.Errorf("Byte counters should still be reported for an unknown size: %d at %f B/s", snapshot2.BytesDownloaded, snapshot2.SpeedBPS)
	}
}

func TestTrackerTerminalStates(t *testing.T) {
	tracker := NewTracker(testApp(), nil)
	tracker.BeginMethod(core.MethodWinget, 0, 33, 1, 3)
	tracker.Complete()

	snapshot := tracker.Snapshot()
	if snapshot.Status != core.StatusComplete || snapshot.Percentage != 100 {
		t.Errorf("Complete should set status '%s' at 100%%, instead of '%s' at %d%%", core.StatusComplete, snapshot.Status, snapshot.Percentage)
	}
	if snapshot.FinishedAt.IsZero() {
		t.Error("Complete should set the finish timestamp")
	}

	tracker2 := NewTracker(testApp(), nil)
	tracker2.Fail("boom")
	snapshot2 := tracker2.Snapshot()
	if snapshot2.Status != core.StatusFailed || snapshot2.ErrorMessage != "boom" {
		t.Errorf("Fail should set the failed status and error message, instead of '%s'/'%s'", snapshot2.Status, snapshot2.ErrorMessage)
	}
}

func TestTrackerThrottlesByteUpdates(t *testing.T) {
	sink := &countingSink{}
	tracker := NewTracker(testApp(), sink)
	initial := sink.count()

	// byte level updates inside the emit interval are suppressed
	tracker.SetBytes(10, 100, 1000)
	tracker.SetBytes(20, 100, 1000)
	if sink.count() != initial {
		t.Errorf("Byte updates within the emit interval should be suppressed, but %d update(s) went through", sink.count()-initial)
	}

	// status transitions always go through
	tracker.SetStatus(core.StatusInstalling)
	if sink.count() != initial+1 {
		t.Errorf("A status transition should always reach the sink, count is %d", sink.count())
	}
	if sink.last().Status != core.StatusInstalling {
		t.Errorf("The sink should see the new status, instead of '%s'", sink.last().Status)
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	tracker := NewTracker(testApp(), nil)
	snapshot := tracker.Snapshot()
	snapshot.Status = core.StatusFailed
	snapshot.Percentage = 99

	if tracker.Snapshot().Status != core.StatusPending {
		t.Error("Mutating a snapshot should not affect the tracker state")
	}
}
