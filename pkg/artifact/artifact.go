// Package artifact is the public facade over the artifact probability
// model and upgrade-decision DP: drop sampling, enumeration, the calc
// entry points, and the gain inverter, re-exported as a single stable
// surface for external callers.
package artifact

import (
	"github.com/zyr17/artifact-scheduler/internal/data"
	"github.com/zyr17/artifact-scheduler/internal/dp"
)

type (
	SetKind      = data.SetKind
	AffixKind    = data.AffixKind
	SubAffix     = data.SubAffix
	Artifact     = data.Artifact
	ArtifactProb = data.ArtifactProb
	Result       = dp.Result
	GainReport   = dp.GainReport
	RNG          = data.RNG
)

const (
	Flower  = data.Flower
	Plume   = data.Plume
	Sands   = data.Sands
	Goblet  = data.Goblet
	Circlet = data.Circlet
)

// NewRNG creates a deterministically seeded RNG, useful for reproducible
// batch runs and tests.
func NewRNG(seed int64) *RNG { return data.NewRNG(seed) }

// ParseSetKind looks up a SetKind by its canonical name.
func ParseSetKind(name string) (SetKind, error) { return data.ParseSetKind(name) }

// RandomOneArtifact draws a fresh level-0 artifact under the probability
// model. See data.RandomOneArtifact for the parameter semantics.
func RandomOneArtifact(rng *RNG, set *SetKind, main *AffixKind, initial *int, seedSubs []SubAffix) (Artifact, error) {
	return data.RandomOneArtifact(rng, set, main, initial, seedSubs)
}

// GetDrop returns the artifact corresponding to a uniform draw u in [0,1).
func GetDrop(u float64) Artifact { return data.GetDrop(u) }

// RandomDrop draws a fresh artifact from the process-wide RNG.
func RandomDrop() Artifact { return data.RandomDrop() }

// GetAllArtifactsWithProbs enumerates every distinct level-0 artifact and
// its drop probability, optionally restricted to one set.
func GetAllArtifactsWithProbs(set *SetKind) []ArtifactProb {
	return data.GetAllArtifactsWithProbs(set)
}

// ArtifactAppearRate computes a single artifact's drop probability
// without enumerating the whole table.
func ArtifactAppearRate(a Artifact) (float64, error) { return data.ArtifactAppearRate(a) }

// Format renders a to its canonical text form.
func Format(a Artifact) string { return data.Format(a) }

// Parse reads an artifact back from its text form.
func Parse(s string) (Artifact, error) { return data.Parse(s) }

// CalcVector runs the backward-induction DP directly on a 4-slot roll
// vector and score vector.
func CalcVector(weight [4]int, score [4]float64, upgradeTime int, scoreBar, gain float64) (Result, error) {
	return dp.CalcVector(weight, score, upgradeTime, scoreBar, gain)
}

// CalcArtifact runs the DP for art against a scoring map, dispatching to
// the 3-sub wrapper when art has only 3 subs.
func CalcArtifact(art Artifact, scores map[AffixKind]float64, scoreBar, gain float64) (Result, error) {
	return dp.CalcArtifact(art, scores, scoreBar, gain)
}

// FindGain inverts the drop-weighted expected cost to the gain value that
// realizes targetCost, via bisection over [-SuccessDogfoodCost, maxGain].
// set restricts the inversion to drops from a single set; nil covers every
// set.
func FindGain(scores map[AffixKind]float64, scoreBar, targetCost, maxGain float64, iterations int, tol float64, set *SetKind) (float64, error) {
	return dp.FindGain(scores, scoreBar, targetCost, maxGain, iterations, tol, set)
}

// RandomGainInput is a randomly generated fuzz case for FindGain.
type RandomGainInput = dp.RandomGainInput

// GenerateRandomGainInput draws a fuzz-testing input for FindGain.
func GenerateRandomGainInput(rng *RNG) RandomGainInput {
	return dp.GenerateRandomGainInput(rng)
}
