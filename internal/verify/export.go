package verify

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/provisor/provisor/internal/core"

	"github.com/tidwall/gjson"
)

// wingetExport asks winget for a JSON export of every installed package and
// looks for the app's identifier in it. Catches packages the plain listing
// misses, for example ones installed under another source.
func (e *Engine) wingetExport(app core.ApplicationDefinition) (core.VerificationResult, bool) {
	if app.WingetID == "" {
		return core.VerificationResult{}, false
	}

	manifest := filepath.Join(os.TempDir(), "provisor-export.json")
	defer os.Remove(manifest)

	_, err := e.runner.Run(e.cmdTimeout, "winget", "export", "-o", manifest, "--accept-source-agreements")
	if err != nil {
		// winget export exits non-zero when some packages have no available
		// source, but still writes the manifest
		if core.IsErrorType(err, core.ErrNonZeroExit) == false {
			return core.VerificationResult{}, false
		}
	}

	content, err := os.ReadFile(manifest)
	if err != nil {
		return core.VerificationResult{}, false
	}

	matched := false
	version := ""
	gjson.GetBytes(content, "Sources").ForEach(func(_, source gjson.Result) bool {
		source.Get("Packages").ForEach(func(_, pkg gjson.Result) bool {
			if strings.EqualFold(pkg.Get("PackageIdentifier").String(), app.WingetID) {
				matched = true
				version = pkg.Get("Version").String()
				return false
			}
			return true
		})
		return matched == false
	})

	if matched == false {
		return core.VerificationResult{}, false
	}
	return core.VerificationResult{Version: version}, true
}
