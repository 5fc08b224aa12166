package install

import (
	"sync"

	"github.com/provisor/provisor/internal/core"
	"github.com/provisor/provisor/internal/util"

	"github.com/emirpasic/gods/maps/linkedhashmap"
	"github.com/icholy/killable"
)

// InstallAll installs a batch of applications, either sequentially or over a
// bounded worker pool. The offline image is mounted once before the first
// install and committed and released once after the batch concludes, on every
// exit path. The returned map holds exactly one result per requested id, in
// resolved install order.
func (o *Orchestrator) InstallAll(ids []string, parallel bool, maxWorkers int) *linkedhashmap.Map {
	ordered := o.resolveOrder(ids)
	results := linkedhashmap.New()

	k := killable.New()
	o.setKillable(k)
	defer o.clearKillable(k)

	if o.mounter != nil {
		session, err := o.mounter.Mount()
		if err != nil {
			log.Errorf("Could not mount target image: %s", err.Error())
			for _, id := range ordered {
				results.Put(id, core.InstallResult{AppID: id, Method: core.MethodNone, Error: "Could not mount target image: " + err.Error()})
			}
			o.storeResults(results)
			return results
		}
		defer func() {
			cerr := session.Close(true)
			if cerr != nil {
				log.Errorf("Failed to release target image: %s", cerr.Error())
			}
		}()
		log.Infof("Target image mounted at '%s'", session.Path())
	}

	if parallel && maxWorkers > 1 {
		o.installParallel(ordered, maxWorkers, results, k.Dying())
	} else {
		for _, id := range ordered {
			results.Put(id, o.installSafe(id, k.Dying()))
		}
	}

	o.storeResults(results)
	return results
}

// installParallel dispatches the ordered ids over a bounded worker pool. No
// worker ever needs another worker's result, so the only shared state is the
// results map and the estimator table, both of which are lock protected.
func (o *Orchestrator) installParallel(ids []string, maxWorkers int, results *linkedhashmap.Map, dying <-chan struct{}) {
	// reserve the slots up front so the map keeps the resolved order even
	// though workers finish out of order
	for _, id := range ids {
		results.Put(id, core.InstallResult{AppID: id, Method: core.MethodNone, Error: "Install did not run"})
	}

	workers := maxWorkers
	if workers > len(ids) {
		workers = len(ids)
	}
	log.Infof("Installing %d application(s) using %d worker(s)", len(ids), workers)

	jobs := make(chan string)
	var access sync.Mutex
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for id := range jobs {
				result := o.installSafe(id, dying)
				access.Lock()
				results.Put(id, result)
				access.Unlock()
			}
		}()
	}

	for _, id := range ids {
		jobs <- id
	}
	close(jobs)
	wg.Wait()
}

// installSafe converts an unexpected fault inside one install into a failed
// result for that app, so it never aborts the batch or the other workers
func (o *Orchestrator) installSafe(id string, dying <-chan struct{}) (result core.InstallResult) {
	defer func() {
		if r := recover(); r != nil {
			log.Errorf("Install of '%s' panicked: %v", id, r)
			result = core.InstallResult{AppID: id, Method: core.MethodNone, Error: "Internal fault during install"}
		}
	}()
	return o.install(id, dying)
}

// resolveOrder computes the install order for a batch, deduplicating ids
// while keeping their first occurrence. Dependency resolution is deliberately
// a passthrough: catalog applications are independent of each other. The step
// is kept so ordering can be introduced without changing the batch API.
func (o *Orchestrator) resolveOrder(ids []string) []string {
	ordered := []string{}
	for _, id := range ids {
		if found, _ := util.StringInSlice(id, ordered); found {
			continue
		}
		ordered = append(ordered, id)
	}
	return ordered
}

func (o *Orchestrator) storeResults(results *linkedhashmap.Map) {
	o.access.Lock()
	o.lastResults = results
	o.access.Unlock()
}
