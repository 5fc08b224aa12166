package estimate

import (
	"math"
	"testing"
	"time"

	"github.com/provisor/provisor/internal/core"
)

func TestEstimateFallbacks(t *testing.T) {
	estimator := CreateEstimator(map[string]time.Duration{
		core.MethodWinget: 45 * time.Second,
	})

	if est := estimator.Estimate(core.MethodWinget, "Gaming"); est != 45*time.Second {
		t.Errorf("An unseen pair should fall back to the method seed, instead of %s", est)
	}
	if est := estimator.Estimate(core.MethodChoco, "Gaming"); est != FallbackEstimate {
		t.Errorf("A pair without samples or seed should return the fixed fallback, instead of %s", est)
	}
}

func TestRecordRunningAverage(t *testing.T) {
	samples := []time.Duration{10 * time.Second, 20 * time.Second, 40 * time.Second, 5 * time.Second}

	// the running average has to equal the arithmetic mean regardless of the
	// order the samples are recorded in
	orders := [][]int{{0, 1, 2, 3}, {3, 2, 1, 0}, {2, 0, 3, 1}}
	var mean float64
	for _, s := range samples {
		mean += s.Seconds()
	}
	mean = mean / float64(len(samples))

	for _, order := range orders {
		estimator := CreateEstimator(nil)
		for _, i := range order {
			estimator.Record(core.MethodWinget, "Development", samples[i])
		}

		avg := estimator.Estimate(core.MethodWinget, "Development").Seconds()
		if math.Abs(avg-mean) > 0.001 {
			t.Errorf("Average after recording in order %v should be %.3fs, instead of %.3fs", order, mean, avg)
		}
		if estimator.Samples(core.MethodWinget, "Development") != len(samples) {
			t.Errorf("Sample count should be %d, instead of %d", len(samples), estimator.Samples(core.MethodWinget, "Development"))
		}
	}
}

func TestRecordMinMax(t *testing.T) {
	estimator := CreateEstimator(nil)
	estimator.Record(core.MethodChoco, "Development", 30*time.Second)
	estimator.Record(core.MethodChoco, "Development", 10*time.Second)
	estimator.Record(core.MethodChoco, "Development", 50*time.Second)

	rec := estimator.table[key{method: core.MethodChoco, category: "Development"}]
	if rec.min != 10*time.Second {
		t.Errorf("Min should be 10s, instead of %s", rec.min)
	}
	if rec.max != 50*time.Second {
		t.Errorf("Max should be 50s, instead of %s", rec.max)
	}
	if rec.count != 3 {
		t.Errorf("Count should be 3, instead of %d", rec.count)
	}
}

func TestRecordKeepsPairsSeparate(t *testing.T) {
	estimator := CreateEstimator(nil)
	estimator.Record(core.MethodWinget, "Gaming", 100*time.Second)
	estimator.Record(core.MethodWinget, "Development", 10*time.Second)

	if est := estimator.Estimate(core.MethodWinget, "Gaming"); est != 100*time.Second {
		t.Errorf("The Gaming estimate should be 100s, instead of %s", est)
	}
	if est := estimator.Estimate(core.MethodWinget, "Development"); est != 10*time.Second {
		t.Errorf("The Development estimate should be 10s, instead of %s", est)
	}
}
