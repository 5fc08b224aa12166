package core

//go:generate mockgen -source=image.go -destination=../mock/image.go -package=mock

// ImageSession represents a mounted offline image. Close is idempotent and
// has to be called on every exit path, committing changes when requested.
type ImageSession interface {
	Path() string
	Close(commit bool) error
}

// ImageMounter brackets access to the offline target image. The mount is
// acquired once before a batch starts and released once after it concludes.
type ImageMounter interface {
	Mount() (ImageSession, error)
}
