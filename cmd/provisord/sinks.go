package main

import (
	"sync"

	"github.com/provisor/provisor/internal/core"
	"github.com/provisor/provisor/internal/progress"

	"github.com/cheggaaa/pb/v3"
)

var barTemplate pb.ProgressBarTemplate = `{{string . "app" | printf "%-25s"}} {{bar . }} {{percent . }} {{string . "step"}}`

// barSink renders install progress as terminal progress bars. Used for
// sequential installs, where bars never interleave.
type barSink struct {
	access sync.Mutex
	bars   map[string]*pb.ProgressBar
}

func newBarSink() *barSink {
	return &barSink{bars: map[string]*pb.ProgressBar{}}
}

// Progress implements core.ProgressSink
func (s *barSink) Progress(snapshot core.InstallProgress) {
	s.access.Lock()
	defer s.access.Unlock()

	bar, found := s.bars[snapshot.AppID]
	if found == false {
		bar = barTemplate.Start(100)
		bar.Set("app", snapshot.AppName)
		s.bars[snapshot.AppID] = bar
	}

	bar.SetCurrent(int64(snapshot.Percentage))
	step := snapshot.Step
	if snapshot.SpeedBPS > 0 {
		step = step + " (" + progress.SpeedString(snapshot.SpeedBPS) + ", " + progress.ETAString(snapshot.EstimatedRemaining) + " left)"
	}
	bar.Set("step", step)

	switch snapshot.Status {
	case core.StatusComplete, core.StatusFailed, core.StatusSkipped:
		bar.SetCurrent(int64(snapshot.Percentage))
		bar.Finish()
		delete(s.bars, snapshot.AppID)
	}
}

// logSink logs install status transitions. Used for parallel installs, where
// progress bars would interleave on the terminal.
type logSink struct {
	access sync.Mutex
	last   map[string]string
}

func newLogSink() *logSink {
	return &logSink{last: map[string]string{}}
}

// Progress implements core.ProgressSink
func (s *logSink) Progress(snapshot core.InstallProgress) {
	s.access.Lock()
	changed := s.last[snapshot.AppID] != snapshot.Status
	s.last[snapshot.AppID] = snapshot.Status
	s.access.Unlock()

	if changed {
		log.Infof("%s: %s (%d%%) %s", snapshot.AppID, snapshot.Status, snapshot.Percentage, snapshot.Step)
	} else {
		log.Debugf("%s: %s (%d%%) %s", snapshot.AppID, snapshot.Status, snapshot.Percentage, snapshot.Step)
	}
}
