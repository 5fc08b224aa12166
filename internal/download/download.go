package download

import (
	"context"
	"io"
	"net"
	"net/http"
	"net/url"
	"os"
	"path"
	"time"

	"github.com/provisor/provisor/internal/core"
	"github.com/provisor/provisor/internal/util"

	"github.com/pkg/errors"
)

var log = util.GetLogger("download")

const copyBufferSize = 64 * 1024

// Manager streams installer artifacts from download URLs to a local
// directory, reporting byte progress while the transfer runs. Implements
// core.Downloader.
type Manager struct {
	client *http.Client
	dir    string
}

// CreateManager returns a download manager that stores artifacts in the
// provided directory, which is created if missing
func CreateManager(dir string, connectTimeout time.Duration) (*Manager, error) {
	err := os.MkdirAll(dir, 0755)
	if err != nil {
		return nil, errors.Wrapf(err, "Failed to create download directory '%s'", dir)
	}

	dialer := &net.Dialer{Timeout: connectTimeout}
	client := &http.Client{
		Transport: &http.Transport{
			DialContext:         dialer.DialContext,
			TLSHandshakeTimeout: connectTimeout,
		},
	}
	return &Manager{client: client, dir: dir}, nil
}

// Download performs a streaming GET of the provided URL and writes the body
// to a temporary file. When the response declares a total size, percent and
// ETA are reported through the progress; otherwise only byte counters and
// speed are. The caller is responsible for deleting the returned file.
func (m *Manager) Download(rawurl string, prog core.Progress) (string, error) {
	log.Debugf("Downloading '%s'", rawurl)

	resp, err := m.client.Get(rawurl)
	if err != nil {
		if isTimeout(err) {
			return "", core.NewTypedError("Download of "+rawurl+" timed out: "+err.Error(), core.ErrTimeout)
		}
		return "", core.NewTypedError("Failed to download "+rawurl+": "+err.Error(), core.ErrDownload)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", core.NewTypedError("Failed to download "+rawurl+": server returned "+resp.Status, core.ErrDownload)
	}

	fd, err := os.CreateTemp(m.dir, "provisor-*"+artifactExtension(rawurl))
	if err != nil {
		return "", errors.Wrap(err, "Failed to create temporary download file")
	}
	defer fd.Close()

	total := resp.ContentLength
	start := time.Now()
	var downloaded int64

	buf := make([]byte, copyBufferSize)
	for {
		nr, rerr := resp.Body.Read(buf)
		if nr > 0 {
			nw, werr := fd.Write(buf[:nr])
			if werr != nil || nw != nr {
				os.Remove(fd.Name())
				return "", errors.Wrap(werr, "Failed to write downloaded chunk")
			}
			downloaded += int64(nr)
			if prog != nil {
				elapsed := time.Since(start).Seconds()
				var speed float64
				if elapsed > 0 {
					speed = float64(downloaded) / elapsed
				}
				prog.SetBytes(downloaded, total, speed)
			}
		}
		if rerr == io.EOF {
			break
		}
		if rerr != nil {
			os.Remove(fd.Name())
			if isTimeout(rerr) {
				return "", core.NewTypedError("Download of "+rawurl+" timed out: "+rerr.Error(), core.ErrTimeout)
			}
			return "", core.NewTypedError("Download of "+rawurl+" was interrupted: "+rerr.Error(), core.ErrDownload)
		}
	}

	log.Debugf("Downloaded %d bytes from '%s' to '%s'", downloaded, rawurl, fd.Name())
	return fd.Name(), nil
}

// artifactExtension extracts the file extension from a download URL, so the
// temporary file keeps an extension the OS can execute
func artifactExtension(rawurl string) string {
	parsed, err := url.Parse(rawurl)
	if err != nil {
		return ""
	}
	return path.Ext(parsed.Path)
}

func isTimeout(err error) bool {
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}
	return errors.Is(err, context.DeadlineExceeded)
}
