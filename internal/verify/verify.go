package verify

import (
	"strings"
	"time"

	"github.com/provisor/provisor/internal/core"
	"github.com/provisor/provisor/internal/util"

	"github.com/Masterminds/semver"
)

var log = util.GetLogger("verify")

// evidence is one independent check that can confirm an installation
type evidence struct {
	source string
	check  func(app core.ApplicationDefinition) (core.VerificationResult, bool)
}

// Engine confirms whether applications are actually installed, using several
// fallback evidence sources. Implements core.Verifier.
type Engine struct {
	catalog    core.Catalog
	runner     core.CommandRunner
	roots      []string
	cmdTimeout time.Duration
}

// CreateEngine returns a verification engine that searches the provided
// filesystem roots as its last evidence source
func CreateEngine(catalog core.Catalog, runner core.CommandRunner, roots []string, cmdTimeout time.Duration) *Engine {
	return &Engine{catalog: catalog, runner: runner, roots: roots, cmdTimeout: cmdTimeout}
}

// Verify checks the evidence sources in order and returns the first positive
// match. When a hinted method is supplied, its evidence source is checked
// first, out of its natural order. A negative outcome is a valid result, not
// an error.
func (e *Engine) Verify(id string, hintedMethod string) core.VerificationResult {
	app, err := e.catalog.GetApplication(id)
	if err != nil {
		return core.VerificationResult{AppID: id, Message: "Unknown application " + id}
	}

	sources := e.orderedSources(hintedMethod)
	for _, ev := range sources {
		result, matched := ev.check(app)
		if matched {
			result.AppID = id
			result.Installed = true
			result.Source = ev.source
			log.Debugf("Verified '%s' via %s", app.Name, ev.source)
			return result
		}
	}

	return core.VerificationResult{AppID: id, Message: "no verification source matched"}
}

// orderedSources returns the evidence sources in their natural order, with
// the hinted method's source moved to the front when a hint is supplied
func (e *Engine) orderedSources(hintedMethod string) []evidence {
	natural := []evidence{
		{source: core.EvidenceWingetList, check: e.wingetList},
		{source: core.EvidenceChocoList, check: e.chocoList},
		{source: core.EvidenceWingetExport, check: e.wingetExport},
		{source: core.EvidenceRegistry, check: e.registryScan},
		{source: core.EvidenceFilesystem, check: e.filesystemSearch},
	}

	hinted := ""
	switch hintedMethod {
	case core.MethodWinget:
		hinted = core.EvidenceWingetList
	case core.MethodChoco:
		hinted = core.EvidenceChocoList
	case core.MethodDirectDownload:
		hinted = core.EvidenceFilesystem
	}
	if hinted == "" {
		return natural
	}

	ordered := []evidence{}
	for _, ev := range natural {
		if ev.source == hinted {
			ordered = append([]evidence{ev}, ordered...)
		} else {
			ordered = append(ordered, ev)
		}
	}
	return ordered
}

// wingetList checks the winget installed-package listing for the app's
// winget identifier
func (e *Engine) wingetList(app core.ApplicationDefinition) (core.VerificationResult, bool) {
	if app.WingetID == "" {
		return core.VerificationResult{}, false
	}
	out, err := e.runner.Run(e.cmdTimeout, "winget", "list", "--id", app.WingetID, "--exact", "--accept-source-agreements")
	if err != nil {
		return core.VerificationResult{}, false
	}

	line, matched := matchingLine(out, app.WingetID)
	if matched == false {
		return core.VerificationResult{}, false
	}
	return core.VerificationResult{Version: versionToken(line, app.WingetID)}, true
}

// chocoList checks the chocolatey local listing; with --limit-output every
// installed package is printed as "id|version"
func (e *Engine) chocoList(app core.ApplicationDefinition) (core.VerificationResult, bool) {
	if app.ChocoID == "" {
		return core.VerificationResult{}, false
	}
	out, err := e.runner.Run(e.cmdTimeout, "choco", "list", "--local-only", "--limit-output", app.ChocoID)
	if err != nil {
		return core.VerificationResult{}, false
	}

	for _, line := range strings.Split(out, "\n") {
		parts := strings.SplitN(strings.TrimSpace(line), "|", 2)
		if strings.EqualFold(parts[0], app.ChocoID) {
			result := core.VerificationResult{}
			if len(parts) == 2 {
				result.Version = parts[1]
			}
			return result, true
		}
	}
	return core.VerificationResult{}, false
}

// matchingLine returns the first output line containing the identifier,
// matched case-insensitively
func matchingLine(output string, identifier string) (string, bool) {
	for _, line := range strings.Split(output, "\n") {
		if strings.Contains(strings.ToLower(line), strings.ToLower(identifier)) {
			return line, true
		}
	}
	return "", false
}

// versionToken extracts a best-effort version from a listing line: the first
// whitespace separated token, other than the identifier itself, that parses
// as a version
func versionToken(line string, identifier string) string {
	for _, token := range strings.Fields(line) {
		if strings.EqualFold(token, identifier) {
			continue
		}
		if _, err := semver.NewVersion(token); err == nil {
			return token
		}
	}
	return ""
}
