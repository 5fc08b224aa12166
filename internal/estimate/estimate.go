package estimate

import (
	"sync"
	"time"

	"github.com/provisor/provisor/internal/util"
)

var log = util.GetLogger("estimate")

// FallbackEstimate is returned for pairs that have no samples and no seed
const FallbackEstimate = 60 * time.Second

type key struct {
	method   string
	category string
}

// record holds the running statistics for one (method, category) pair. The
// average is kept as float seconds so it stays equal to the arithmetic mean
// of all recorded samples, regardless of update order.
type record struct {
	averageSec float64
	count      int
	min        time.Duration
	max        time.Duration
}

// Estimator maintains adaptive per (method, category) install time estimates
// from observed history. It is safe for use from multiple install workers.
type Estimator struct {
	access sync.Mutex
	table  map[key]*record
	seeds  map[string]time.Duration
}

// CreateEstimator returns an estimator seeded with the provided per-method
// default durations. The seed table is explicit construction input, there are
// no implicit package level defaults.
func CreateEstimator(seeds map[string]time.Duration) *Estimator {
	if seeds == nil {
		seeds = map[string]time.Duration{}
	}
	return &Estimator{table: map[key]*record{}, seeds: seeds}
}

// Estimate returns the expected install duration for the provided method and
// category: the recorded average when samples exist, the method seed when the
// pair is unseen, or the fixed fallback otherwise
func (e *Estimator) Estimate(method string, category string) time.Duration {
	e.access.Lock()
	defer e.access.Unlock()

	if rec, found := e.table[key{method: method, category: category}]; found {
		return time.Duration(rec.averageSec * float64(time.Second))
	}
	if seed, found := e.seeds[method]; found {
		return seed
	}
	return FallbackEstimate
}

// Record updates the estimate for the provided method and category with an
// observed duration. Only successful completions should be recorded.
func (e *Estimator) Record(method string, category string, observed time.Duration) {
	e.access.Lock()
	defer e.access.Unlock()

	k := key{method: method, category: category}
	rec, found := e.table[k]
	if found == false {
		rec = &record{min: observed, max: observed}
		e.table[k] = rec
	}

	if observed < rec.min {
		rec.min = observed
	}
	if observed > rec.max {
		rec.max = observed
	}
	rec.averageSec = (rec.averageSec*float64(rec.count) + observed.Seconds()) / float64(rec.count+1)
	rec.count++

	log.Debugf("Recorded %s install for category '%s': %s (avg %.1fs over %d samples)", method, category, observed, rec.averageSec, rec.count)
}

// Samples returns the number of recorded samples for a (method, category)
// pair
func (e *Estimator) Samples(method string, category string) int {
	e.access.Lock()
	defer e.access.Unlock()

	if rec, found := e.table[key{method: method, category: category}]; found {
		return rec.count
	}
	return 0
}
