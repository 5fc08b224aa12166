package verify

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/provisor/provisor/internal/core"
	"github.com/provisor/provisor/internal/util"
)

// filesystemSearch fuzzily matches the app's display name against the top
// level directory names of the configured install roots. Matching ignores
// case, spaces, dashes and underscores.
func (e *Engine) filesystemSearch(app core.ApplicationDefinition) (core.VerificationResult, bool) {
	needle := util.NormalizeName(app.Name)
	if needle == "" {
		return core.VerificationResult{}, false
	}

	for _, root := range e.roots {
		entries, err := os.ReadDir(root)
		if err != nil {
			continue
		}
		for _, entry := range entries {
			if entry.IsDir() == false {
				continue
			}
			if strings.Contains(util.NormalizeName(entry.Name()), needle) {
				return core.VerificationResult{InstallPath: filepath.Join(root, entry.Name())}, true
			}
		}
	}
	return core.VerificationResult{}, false
}
