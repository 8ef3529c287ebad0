package dp

import (
	"fmt"
	"runtime"
	"sync"

	"github.com/zyr17/artifact-scheduler/internal/data"
)

// workerCount bounds the goroutines used by expectedDfCost's reduction.
// Grounded on the mutex-guarded lazy-state discipline in the teacher's
// localxlsx.Writer, generalized here to a bounded worker pool since the
// reduction is embarrassingly parallel across artifacts.
func workerCount() int {
	n := runtime.GOMAXPROCS(0)
	if n < 1 {
		n = 1
	}
	return n
}

// expectedDfCost is the expectation, over every possible drop and every
// possible roll completion of its subs, of CalcArtifact's expected cost
// given a hypothetical gain. It is the quantity FindGain inverts.
//
// The outer sum runs over every enumerated artifact (weighted by its drop
// probability) and, for each, every W^|subs| roll assignment for its
// placeholder subs (weighted uniformly, since rolls are uniform in the
// model). Work is split across a bounded pool of goroutines, each
// accumulating into its own bucket; buckets are summed back in index
// order so the result does not depend on goroutine scheduling.
func expectedDfCost(scores map[data.AffixKind]float64, scoreBar, gain float64, set *data.SetKind) (float64, error) {
	artifacts := data.GetAllArtifactsWithProbs(set)

	workers := workerCount()
	if workers > len(artifacts) {
		workers = len(artifacts)
	}
	if workers < 1 {
		workers = 1
	}

	buckets := make([]float64, len(artifacts))
	errs := make([]error, len(artifacts))

	type job struct{ idx int }
	jobs := make(chan job, len(artifacts))
	for i := range artifacts {
		jobs <- job{idx: i}
	}
	close(jobs)

	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for j := range jobs {
				cost, err := artifactExpectedCost(artifacts[j.idx].Artifact, artifacts[j.idx].Prob, scores, scoreBar, gain)
				if err != nil {
					errs[j.idx] = err
					continue
				}
				buckets[j.idx] = cost
			}
		}()
	}
	wg.Wait()

	total := 0.0
	for i := range buckets {
		if errs[i] != nil {
			return 0, errs[i]
		}
		total += buckets[i]
	}
	return total, nil
}

// artifactExpectedCost sums ExpectedCost over every roll completion of a's
// placeholder subs, weighted uniformly, then scales by the artifact's own
// drop probability.
func artifactExpectedCost(a data.Artifact, prob float64, scores map[data.AffixKind]float64, scoreBar, gain float64) (float64, error) {
	combos := intPow(data.W, len(a.Subs))
	total := 0.0
	art := a.Clone()
	for c := 0; c < combos; c++ {
		rem := c
		for i := range art.Subs {
			art.Subs[i].Roll = data.UpdateMin + rem%data.W
			rem /= data.W
		}
		res, err := CalcArtifact(art, scores, scoreBar, gain)
		if err != nil {
			return 0, err
		}
		total += res.ExpectedCost
	}
	return prob * total / float64(combos), nil
}

// FindGain inverts expectedDfCost: it finds the gain value g such that the
// self-consistent expected cost of the overall drop-and-upgrade process
// under g equals targetCost, via bisection over
// [-SuccessDogfoodCost, maxGain]. set restricts the inversion to drops from
// a single set, matching get_all_artifacts_with_probs(set)'s set? parameter;
// nil inverts over every set. The relationship between gain and expected
// cost is not guaranteed monotonic in general (see DESIGN.md); bisection is
// applied as specified without detecting or correcting for that
// possibility.
func FindGain(scores map[data.AffixKind]float64, scoreBar, targetCost float64, maxGain float64, iterations int, tol float64, set *data.SetKind) (float64, error) {
	if iterations <= 0 {
		return 0, &data.ShapeError{Msg: "find_gain: iterations must be positive"}
	}

	lo, hi := -SuccessDogfoodCost, maxGain
	mid := lo
	for i := 0; i < iterations; i++ {
		mid = (lo + hi) / 2
		midCost, err := expectedDfCost(scores, scoreBar, mid, set)
		if err != nil {
			return 0, err
		}
		if midCost < targetCost {
			lo = mid
		} else {
			hi = mid
		}
		if hi-lo < tol {
			break
		}
	}
	return (lo + hi) / 2, nil
}

// GainReport is a single FindGain search's input/output pair, useful for
// batch export (see internal/report).
type GainReport struct {
	ScoreBar   float64
	TargetCost float64
	Gain       float64
}

func (g GainReport) String() string {
	return fmt.Sprintf("score_bar=%.4f target_cost=%.4f -> gain=%.4f", g.ScoreBar, g.TargetCost, g.Gain)
}
