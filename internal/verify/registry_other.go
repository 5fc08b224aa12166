//go:build !windows

package verify

import (
	"github.com/provisor/provisor/internal/core"
)

// registryScan is a no-op on platforms without an uninstall registry
func (e *Engine) registryScan(app core.ApplicationDefinition) (core.VerificationResult, bool) {
	return core.VerificationResult{}, false
}
