package core

//go:generate mockgen -source=progress.go -destination=../mock/progress.go -package=mock

// ProgressSink receives install progress snapshots. Implementations have to
// return quickly because the sink can be invoked from any install worker.
type ProgressSink interface {
	Progress(snapshot InstallProgress)
}

// Progress is the interface used to communicate progress from inside an
// install attempt
type Progress interface {
	SetState(stateText string)
	SetPercentage(percent int)
	SetBytes(downloaded int64, total int64, speedBPS float64)
}
