package verify

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/provisor/provisor/internal/core"
	"github.com/provisor/provisor/internal/mock"

	"github.com/golang/mock/gomock"
)

// fakeRunner returns scripted output per command name and records call order
type fakeRunner struct {
	access  sync.Mutex
	calls   []string
	outputs map[string]string
	errs    map[string]error
}

func (r *fakeRunner) Run(timeout time.Duration, name string, arg ...string) (string, error) {
	r.access.Lock()
	r.calls = append(r.calls, name)
	r.access.Unlock()
	if err, found := r.errs[name]; found {
		return "", err
	}
	return r.outputs[name], nil
}

func verifyCatalog(ctrl *gomock.Controller, app core.ApplicationDefinition) *mock.MockCatalog {
	catalog := mock.NewMockCatalog(ctrl)
	catalog.EXPECT().GetApplication(app.ID).Return(app, nil).AnyTimes()
	catalog.EXPECT().GetApplication(gomock.Not(app.ID)).DoAndReturn(func(id string) (core.ApplicationDefinition, error) {
		return core.ApplicationDefinition{}, core.NewTypedError("Could not find application "+id, core.ErrUnknownApplication)
	}).AnyTimes()
	return catalog
}

func verifyApp() core.ApplicationDefinition {
	return core.ApplicationDefinition{
		ID:       "demo",
		Name:     "Demo App",
		Category: "utility",
		WingetID: "Demo.Demo",
		ChocoID:  "demo",
	}
}

func TestVerifyUnknownApplication(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	engine := CreateEngine(verifyCatalog(ctrl, verifyApp()), &fakeRunner{}, nil, time.Second)
	result := engine.Verify("ghost", "")
	if result.Installed {
		t.Error("An unknown application should not verify as installed")
	}
	if strings.Contains(result.Message, "Unknown application") == false {
		t.Errorf("The result should mention the unknown application, instead of '%s'", result.Message)
	}
}

func TestVerifyWingetListMatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	runner := &fakeRunner{outputs: map[string]string{
		"winget": "Name      Id         Version\n---------------------------------\nDemo App  Demo.Demo  1.2.3\n",
	}}
	engine := CreateEngine(verifyCatalog(ctrl, verifyApp()), runner, nil, time.Second)

	result := engine.Verify("demo", "")
	if result.Installed == false {
		t.Fatalf("The application should verify as installed, instead: '%s'", result.Message)
	}
	if result.Source != core.EvidenceWingetList {
		t.Errorf("The match should come from '%s', instead of '%s'", core.EvidenceWingetList, result.Source)
	}
	if result.Version != "1.2.3" {
		t.Errorf("The version should be extracted from the listing, expected '1.2.3' instead of '%s'", result.Version)
	}
}

func TestVerifyChocoHintIsCheckedFirst(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	runner := &fakeRunner{outputs: map[string]string{
		"winget": "Demo App  Demo.Demo  1.2.3\n",
		"choco":  "someotherpkg|0.1.0\nDemo|2.0.0\n",
	}}
	engine := CreateEngine(verifyCatalog(ctrl, verifyApp()), runner, nil, time.Second)

	result := engine.Verify("demo", core.MethodChoco)
	if result.Installed == false {
		t.Fatalf("The application should verify as installed, instead: '%s'", result.Message)
	}
	if result.Source != core.EvidenceChocoList {
		t.Errorf("The hinted source should win, expected '%s' instead of '%s'", core.EvidenceChocoList, result.Source)
	}
	if result.Version != "2.0.0" {
		t.Errorf("The version should come from the choco listing, expected '2.0.0' instead of '%s'", result.Version)
	}
	if len(runner.calls) != 1 || runner.calls[0] != "choco" {
		t.Errorf("Only the hinted source should have run, instead of %v", runner.calls)
	}
}

func TestVerifyFilesystemFallback(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	app := core.ApplicationDefinition{ID: "demo", Name: "Demo App", Category: "utility", DownloadURL: "https://example.com/demo.exe"}
	root := t.TempDir()
	installDir := filepath.Join(root, "Demo-App 2.1")
	if err := os.Mkdir(installDir, 0755); err != nil {
		t.Fatalf("Could not prepare the install root: %s", err.Error())
	}

	engine := CreateEngine(verifyCatalog(ctrl, app), &fakeRunner{}, []string{root}, time.Second)
	result := engine.Verify("demo", core.MethodDirectDownload)
	if result.Installed == false {
		t.Fatalf("The application should verify via the filesystem, instead: '%s'", result.Message)
	}
	if result.Source != core.EvidenceFilesystem {
		t.Errorf("The match should come from '%s', instead of '%s'", core.EvidenceFilesystem, result.Source)
	}
	if result.InstallPath != installDir {
		t.Errorf("The install path should be '%s', instead of '%s'", installDir, result.InstallPath)
	}
}

func TestVerifyNoSourceMatched(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	runner := &fakeRunner{errs: map[string]error{
		"winget": core.NewTypedError("winget is not available", core.ErrToolUnavailable),
		"choco":  core.NewTypedError("choco is not available", core.ErrToolUnavailable),
	}}
	engine := CreateEngine(verifyCatalog(ctrl, verifyApp()), runner, []string{t.TempDir()}, time.Second)

	result := engine.Verify("demo", "")
	if result.Installed {
		t.Error("The application should not verify as installed")
	}
	if result.Message != "no verification source matched" {
		t.Errorf("The result should carry the no-match message, instead of '%s'", result.Message)
	}
}

func TestVersionToken(t *testing.T) {
	scenarios := []struct {
		line       string
		identifier string
		expected   string
	}{
		{"Demo App  Demo.Demo  1.2.3  winget", "Demo.Demo", "1.2.3"},
		{"Demo App  Demo.Demo", "Demo.Demo", ""},
		{"demo.demo 7.0", "Demo.Demo", "7.0"},
	}
	for _, scenario := range scenarios {
		version := versionToken(scenario.line, scenario.identifier)
		if version != scenario.expected {
			t.Errorf("Expected version '%s' from line '%s', instead of '%s'", scenario.expected, scenario.line, version)
		}
	}
}

func TestChocoListCaseInsensitive(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	runner := &fakeRunner{
		outputs: map[string]string{"choco": "DEMO|3.1.4\n"},
		errs:    map[string]error{"winget": core.NewTypedError("winget is not available", core.ErrToolUnavailable)},
	}
	engine := CreateEngine(verifyCatalog(ctrl, verifyApp()), runner, nil, time.Second)

	result := engine.Verify("demo", "")
	if result.Installed == false || result.Source != core.EvidenceChocoList {
		t.Fatalf("The choco id should match case-insensitively, instead: '%s' via '%s'", result.Message, result.Source)
	}
	if result.Version != "3.1.4" {
		t.Errorf("Expected version '3.1.4', instead of '%s'", result.Version)
	}
}
