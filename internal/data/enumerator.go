package data

import (
	"sort"
	"sync"
)

// ArtifactProb pairs an artifact with its probability of being the initial
// (level-0) drop.
type ArtifactProb struct {
	Artifact Artifact
	Prob     float64
}

// subOrder is one ordered tuple of sub affixes together with the
// order-sensitive probability of drawing them in that order.
type subOrder struct {
	Subs []AffixKind
	Prob float64
}

// GenerateAllPossibleSubOrders enumerates every ordered k-tuple of distinct
// rollable affixes not equal to main, each tagged with the probability of
// drawing exactly that sequence (product of SubDistribution conditionals).
func GenerateAllPossibleSubOrders(k int, main AffixKind) []subOrder {
	return generateSubOrders(k, main, nil, 1)
}

func generateSubOrders(k int, main AffixKind, current []AffixKind, currentProb float64) []subOrder {
	if k == 0 {
		cp := make([]AffixKind, len(current))
		copy(cp, current)
		return []subOrder{{Subs: cp, Prob: currentProb}}
	}
	dist := SubDistribution(main, current)
	sum := WeightedSum(dist)
	var res []subOrder
	for _, e := range dist {
		next := make([]AffixKind, len(current)+1)
		copy(next, current)
		next[len(current)] = e.Key
		res = append(res, generateSubOrders(k-1, main, next, currentProb*float64(e.Weight)/float64(sum))...)
	}
	return res
}

func compareAffixSlices(a, b []AffixKind) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	default:
		return 0
	}
}

// canonicalizeSubOrders sorts each tuple's affixes ascending, sorts the list
// of (tuple, prob) pairs lexicographically by tuple, then coalesces
// adjacent equal tuples by summing probabilities. This turns order-sensitive
// path probabilities into order-invariant set probabilities; skipping it
// produces incorrect totals (see DESIGN.md).
func canonicalizeSubOrders(orders []subOrder) []subOrder {
	for i := range orders {
		sort.Slice(orders[i].Subs, func(a, b int) bool { return orders[i].Subs[a] < orders[i].Subs[b] })
	}
	sort.Slice(orders, func(i, j int) bool {
		return compareAffixSlices(orders[i].Subs, orders[j].Subs) < 0
	})
	out := make([]subOrder, 0, len(orders))
	for _, o := range orders {
		if len(out) > 0 && compareAffixSlices(out[len(out)-1].Subs, o.Subs) == 0 {
			out[len(out)-1].Prob += o.Prob
			continue
		}
		out = append(out, o)
	}
	return out
}

// ArtifactAppearRate returns the unconditional probability of drawing this
// exact level-0 artifact, ignoring roll values. Defined only for level-0
// artifacts with 3 or 4 subs.
func ArtifactAppearRate(a Artifact) (float64, error) {
	if a.Level != 0 || (len(a.Subs) != 3 && len(a.Subs) != 4) {
		return 0, &ShapeError{Msg: "artifact_appear_rate: level must be 0 and sub count 3 or 4"}
	}
	rate := 1.0 / float64(len(Sets))

	initW, err := WeightOf(len(a.Subs), InitialAffixNumWeight)
	if err != nil {
		return 0, err
	}
	rate *= float64(initW) / float64(WeightedSum(InitialAffixNumWeight))

	mainDist, err := MainDistribution(a.Set)
	if err != nil {
		return 0, err
	}
	mainW, err := WeightOf(a.Main, mainDist)
	if err != nil {
		return 0, err
	}
	rate *= float64(mainW) / float64(WeightedSum(mainDist))

	chosen := make([]AffixKind, 0, len(a.Subs))
	for _, s := range a.Subs {
		dist := SubDistribution(a.Main, chosen)
		w, err := WeightOf(s.Affix, dist)
		if err != nil {
			return 0, err
		}
		rate *= float64(w) / float64(WeightedSum(dist))
		chosen = append(chosen, s.Affix)
	}
	return rate, nil
}

// cdfEntry is one artifact plus its cumulative probability mass up to and
// including it, within whichever list it lives in.
type cdfEntry struct {
	Artifact Artifact
	Cum      float64
}

var (
	enumOnce    sync.Once
	enumAll     []cdfEntry
	enumBySet   map[SetKind][]cdfEntry
)

func ensureEnumerator() {
	enumOnce.Do(buildEnumerator)
}

func buildEnumerator() {
	type flatEntry struct {
		Artifact Artifact
		Prob     float64
	}
	var flat []flatEntry

	initialSum := WeightedSum(InitialAffixNumWeight)

	for _, set := range Sets {
		mainDist := MainWeight[set]
		mainSum := WeightedSum(mainDist)
		for _, me := range mainDist {
			main := me.Key
			for _, ie := range InitialAffixNumWeight {
				initial := ie.Key
				orders := GenerateAllPossibleSubOrders(initial, main)
				coalesced := canonicalizeSubOrders(orders)
				for _, c := range coalesced {
					subs := make([]SubAffix, len(c.Subs))
					for i, aff := range c.Subs {
						subs[i] = SubAffix{Affix: aff, Roll: UpdateMin}
					}
					art := Artifact{Set: set, Main: main, Subs: subs, Level: 0}
					prob := (1.0 / float64(len(Sets))) *
						(float64(me.Weight) / float64(mainSum)) *
						(float64(ie.Weight) / float64(initialSum)) *
						c.Prob
					flat = append(flat, flatEntry{Artifact: art, Prob: prob})
				}
			}
		}
	}

	bySet := make(map[SetKind][]cdfEntry, len(Sets))
	all := make([]cdfEntry, 0, len(flat))
	setRunning := make(map[SetKind]float64, len(Sets))
	running := 0.0
	for _, f := range flat {
		running += f.Prob
		all = append(all, cdfEntry{Artifact: f.Artifact, Cum: running})

		setProb := f.Prob * float64(len(Sets))
		setRunning[f.Artifact.Set] += setProb
		bySet[f.Artifact.Set] = append(bySet[f.Artifact.Set], cdfEntry{
			Artifact: f.Artifact,
			Cum:      setRunning[f.Artifact.Set],
		})
	}

	enumAll = all
	enumBySet = bySet
}

// GetAllArtifactsWithProbs returns the non-accumulated artifact/probability
// list: the aggregate distribution if set is nil, otherwise the
// distribution conditional on that set.
func GetAllArtifactsWithProbs(set *SetKind) []ArtifactProb {
	ensureEnumerator()
	var entries []cdfEntry
	if set == nil {
		entries = enumAll
	} else {
		entries = enumBySet[*set]
	}
	out := make([]ArtifactProb, len(entries))
	prev := 0.0
	for i, e := range entries {
		out[i] = ArtifactProb{Artifact: e.Artifact, Prob: e.Cum - prev}
		prev = e.Cum
	}
	return out
}
