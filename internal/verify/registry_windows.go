//go:build windows

package verify

import (
	"strings"

	"github.com/provisor/provisor/internal/core"
	"github.com/provisor/provisor/internal/util"

	"golang.org/x/sys/windows/registry"
)

type uninstallKey struct {
	root registry.Key
	path string
}

var uninstallKeys = []uninstallKey{
	{registry.LOCAL_MACHINE, `SOFTWARE\Microsoft\Windows\CurrentVersion\Uninstall`},
	{registry.LOCAL_MACHINE, `SOFTWARE\WOW6432Node\Microsoft\Windows\CurrentVersion\Uninstall`},
	{registry.CURRENT_USER, `SOFTWARE\Microsoft\Windows\CurrentVersion\Uninstall`},
}

// registryScan enumerates the known uninstall key locations and matches the
// entries' display names against the app's display name
func (e *Engine) registryScan(app core.ApplicationDefinition) (core.VerificationResult, bool) {
	needle := util.NormalizeName(app.Name)

	for _, location := range uninstallKeys {
		key, err := registry.OpenKey(location.root, location.path, registry.ENUMERATE_SUB_KEYS|registry.READ)
		if err != nil {
			continue
		}
		subkeys, err := key.ReadSubKeyNames(-1)
		key.Close()
		if err != nil {
			continue
		}

		for _, name := range subkeys {
			entry, err := registry.OpenKey(location.root, location.path+`\`+name, registry.QUERY_VALUE)
			if err != nil {
				continue
			}
			displayName, _, derr := entry.GetStringValue("DisplayName")
			if derr != nil || strings.Contains(util.NormalizeName(displayName), needle) == false {
				entry.Close()
				continue
			}
			result := core.VerificationResult{}
			if installPath, _, lerr := entry.GetStringValue("InstallLocation"); lerr == nil {
				result.InstallPath = installPath
			}
			if version, _, verr := entry.GetStringValue("DisplayVersion"); verr == nil {
				result.Version = version
			}
			entry.Close()
			return result, true
		}
	}
	return core.VerificationResult{}, false
}
