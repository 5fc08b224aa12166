package image

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/provisor/provisor/internal/core"
	"github.com/provisor/provisor/internal/util"

	"github.com/pkg/errors"
)

var log = util.GetLogger("image")

// mountTimeout bounds the external mount and unmount commands, which can be
// slow on large images
const mountTimeout = 600 * time.Second

// Mounter mounts an offline image through the platform's image servicing
// tool. Implements core.ImageMounter.
type Mounter struct {
	runner    core.CommandRunner
	imageFile string
	index     int
	mountDir  string
}

// CreateMounter returns a mounter for the provided image file and index
func CreateMounter(runner core.CommandRunner, imageFile string, index int, mountDir string) *Mounter {
	return &Mounter{runner: runner, imageFile: imageFile, index: index, mountDir: mountDir}
}

// Mount mounts the image and returns a session that releases it. The session
// has to be closed on every exit path, normally via defer.
func (m *Mounter) Mount() (core.ImageSession, error) {
	err := os.MkdirAll(m.mountDir, 0755)
	if err != nil {
		return nil, errors.Wrapf(err, "Failed to create mount directory '%s'", m.mountDir)
	}

	log.Infof("Mounting image '%s' (index %d) at '%s'", m.imageFile, m.index, m.mountDir)
	_, err = m.runner.Run(mountTimeout, "dism",
		"/Mount-Image",
		"/ImageFile:"+m.imageFile,
		fmt.Sprintf("/Index:%d", m.index),
		"/MountDir:"+m.mountDir)
	if err != nil {
		return nil, errors.Wrapf(err, "Failed to mount image '%s'", m.imageFile)
	}

	return &session{runner: m.runner, mountDir: m.mountDir}, nil
}

// session is a mounted image. Close is idempotent so it can be deferred on
// paths that may also close it explicitly.
type session struct {
	runner   core.CommandRunner
	mountDir string
	once     sync.Once
	closeErr error
}

// Path returns the directory the image is mounted at
func (s *session) Path() string {
	return s.mountDir
}

// Close releases the image, committing changes when requested and discarding
// them otherwise
func (s *session) Close(commit bool) error {
	s.once.Do(func() {
		finish := "/Discard"
		if commit {
			finish = "/Commit"
		}
		log.Infof("Unmounting image at '%s' (%s)", s.mountDir, finish)
		_, err := s.runner.Run(mountTimeout, "dism", "/Unmount-Image", "/MountDir:"+s.mountDir, finish)
		if err != nil {
			s.closeErr = errors.Wrapf(err, "Failed to unmount image at '%s'", s.mountDir)
		}
	})
	return s.closeErr
}
