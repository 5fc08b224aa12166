package install

import (
	"strings"
	"testing"
	"time"

	"github.com/provisor/provisor/internal/core"
	"github.com/provisor/provisor/internal/estimate"
	"github.com/provisor/provisor/internal/mock"

	"github.com/emirpasic/gods/maps/linkedhashmap"
	"github.com/golang/mock/gomock"
	"github.com/pkg/errors"
)

func batchCatalog(ctrl *gomock.Controller, ids ...string) *mock.MockCatalog {
	catalog := mock.NewMockCatalog(ctrl)
	catalog.EXPECT().GetApplication(gomock.Any()).DoAndReturn(func(id string) (core.ApplicationDefinition, error) {
		for _, known := range ids {
			if known == id {
				return core.ApplicationDefinition{ID: id, Name: id, Category: "utility", ChocoID: id}, nil
			}
		}
		return core.ApplicationDefinition{}, core.NewTypedError("Could not find application "+id, core.ErrUnknownApplication)
	}).AnyTimes()
	return catalog
}

func batchOrchestrator(catalog core.Catalog, mounter core.ImageMounter, strategies []Strategy) *Orchestrator {
	estimator := estimate.CreateEstimator(map[string]time.Duration{core.MethodChoco: time.Second})
	return CreateOrchestrator(catalog, estimator, testPolicy(), strategies, mounter, newCaptureSink())
}

func resultFor(t *testing.T, results *linkedhashmap.Map, id string) core.InstallResult {
	value, found := results.Get(id)
	if found == false {
		t.Fatalf("The batch should contain a result for '%s'", id)
	}
	return value.(core.InstallResult)
}

func TestInstallAllSequentialOrderAndDeduplication(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	catalog := batchCatalog(ctrl, "alpha", "beta", "gamma")
	choco := &fakeStrategy{method: core.MethodChoco, available: true}
	orchestrator := batchOrchestrator(catalog, nil, []Strategy{choco})

	results := orchestrator.InstallAll([]string{"alpha", "beta", "alpha", "gamma"}, false, 1)
	if results.Size() != 3 {
		t.Fatalf("Duplicate ids should collapse to one result each, expected 3 instead of %d", results.Size())
	}

	keys := []string{}
	it := results.Iterator()
	for it.Next() {
		keys = append(keys, it.Key().(string))
	}
	expected := []string{"alpha", "beta", "gamma"}
	for i, id := range expected {
		if keys[i] != id {
			t.Errorf("Results should keep the request order, expected '%s' at %d instead of '%s'", id, i, keys[i])
		}
		if resultFor(t, results, id).Success == false {
			t.Errorf("The install of '%s' should have succeeded", id)
		}
	}
}

func TestInstallAllParallel(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ids := []string{"one", "two", "three", "four", "five"}
	catalog := batchCatalog(ctrl, ids...)
	choco := &fakeStrategy{method: core.MethodChoco, available: true}
	orchestrator := batchOrchestrator(catalog, nil, []Strategy{choco})

	results := orchestrator.InstallAll(ids, true, 3)
	if results.Size() != len(ids) {
		t.Fatalf("Expected %d results, instead of %d", len(ids), results.Size())
	}
	for _, id := range ids {
		result := resultFor(t, results, id)
		if result.Success == false {
			t.Errorf("The install of '%s' should have succeeded, instead: %s", id, result.Error)
		}
	}

	stored := orchestrator.LastResults()
	if stored.Size() != len(ids) {
		t.Errorf("LastResults should return the batch results, expected %d instead of %d", len(ids), stored.Size())
	}
}

func TestInstallAllContinuesPastFailures(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	catalog := batchCatalog(ctrl, "good", "bad")
	choco := &fakeStrategy{method: core.MethodChoco, available: true, fail: func(int) error {
		return core.NewTypedError("choco exited with code 1", core.ErrNonZeroExit)
	}}
	orchestrator := batchOrchestrator(catalog, nil, []Strategy{choco})

	results := orchestrator.InstallAll([]string{"bad", "good", "missing"}, false, 1)
	if results.Size() != 3 {
		t.Fatalf("Every requested id should get a result, expected 3 instead of %d", results.Size())
	}
	if resultFor(t, results, "bad").Success {
		t.Error("A failing install should report failure")
	}
	missing := resultFor(t, results, "missing")
	if missing.Success || strings.Contains(missing.Error, "Unknown application") == false {
		t.Errorf("An unknown id should fail with an unknown application error, instead: '%s'", missing.Error)
	}
}

func TestInstallAllMountsAndCommitsImage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	catalog := batchCatalog(ctrl, "alpha")
	session := mock.NewMockImageSession(ctrl)
	session.EXPECT().Path().Return("/mnt/image").AnyTimes()
	session.EXPECT().Close(true).Return(nil).Times(1)
	mounter := mock.NewMockImageMounter(ctrl)
	mounter.EXPECT().Mount().Return(session, nil).Times(1)

	choco := &fakeStrategy{method: core.MethodChoco, available: true}
	orchestrator := batchOrchestrator(catalog, mounter, []Strategy{choco})

	results := orchestrator.InstallAll([]string{"alpha"}, false, 1)
	if resultFor(t, results, "alpha").Success == false {
		t.Error("The install should have succeeded with the image mounted")
	}
}

func TestInstallAllMountFailureFailsBatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	catalog := batchCatalog(ctrl, "alpha", "beta")
	mounter := mock.NewMockImageMounter(ctrl)
	mounter.EXPECT().Mount().Return(nil, errors.New("dism exited with code 2")).Times(1)

	choco := &fakeStrategy{method: core.MethodChoco, available: true}
	orchestrator := batchOrchestrator(catalog, mounter, []Strategy{choco})

	results := orchestrator.InstallAll([]string{"alpha", "beta"}, false, 1)
	if results.Size() != 2 {
		t.Fatalf("A mount failure should still produce one result per id, expected 2 instead of %d", results.Size())
	}
	for _, id := range []string{"alpha", "beta"} {
		result := resultFor(t, results, id)
		if result.Success || strings.Contains(result.Error, "Could not mount target image") == false {
			t.Errorf("The result for '%s' should report the mount failure, instead: '%s'", id, result.Error)
		}
	}
	if choco.probes != 0 {
		t.Error("No install should run when the image cannot be mounted")
	}
}

func TestInstallAllParallelSurvivesPanickingWorker(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	catalog := mock.NewMockCatalog(ctrl)
	catalog.EXPECT().GetApplication(gomock.Any()).DoAndReturn(func(id string) (core.ApplicationDefinition, error) {
		if id == "broken" {
			panic("catalog backing store gone")
		}
		return core.ApplicationDefinition{ID: id, Name: id, Category: "utility", ChocoID: id}, nil
	}).AnyTimes()

	choco := &fakeStrategy{method: core.MethodChoco, available: true}
	orchestrator := batchOrchestrator(catalog, nil, []Strategy{choco})

	ids := []string{"one", "broken", "two", "three", "four"}
	results := orchestrator.InstallAll(ids, true, 3)
	if results.Size() != len(ids) {
		t.Fatalf("A panicking worker should not lose result slots, expected %d instead of %d", len(ids), results.Size())
	}

	keys := []string{}
	it := results.Iterator()
	for it.Next() {
		keys = append(keys, it.Key().(string))
	}
	for i, id := range ids {
		if keys[i] != id {
			t.Errorf("Results should keep the request order, expected '%s' at %d instead of '%s'", id, i, keys[i])
		}
	}

	broken := resultFor(t, results, "broken")
	if broken.Success || strings.Contains(broken.Error, "Internal fault") == false {
		t.Errorf("The panicking worker's slot should report an internal fault, instead: '%s'", broken.Error)
	}
	for _, id := range []string{"one", "two", "three", "four"} {
		if resultFor(t, results, id).Success == false {
			t.Errorf("The other workers should finish their installs, but '%s' failed", id)
		}
	}
}

func TestInstallAllSurvivesInternalFault(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	catalog := mock.NewMockCatalog(ctrl)
	catalog.EXPECT().GetApplication(gomock.Any()).DoAndReturn(func(id string) (core.ApplicationDefinition, error) {
		if id == "broken" {
			panic("catalog backing store gone")
		}
		return core.ApplicationDefinition{ID: id, Name: id, Category: "utility", ChocoID: id}, nil
	}).AnyTimes()

	choco := &fakeStrategy{method: core.MethodChoco, available: true}
	orchestrator := batchOrchestrator(catalog, nil, []Strategy{choco})

	results := orchestrator.InstallAll([]string{"broken", "fine"}, false, 1)
	broken := resultFor(t, results, "broken")
	if broken.Success || strings.Contains(broken.Error, "Internal fault") == false {
		t.Errorf("A panicking install should produce an internal fault result, instead: '%s'", broken.Error)
	}
	if resultFor(t, results, "fine").Success == false {
		t.Error("The batch should continue past an internal fault")
	}
}
