package data

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetAllArtifactsWithProbsSumsToOne(t *testing.T) {
	all := GetAllArtifactsWithProbs(nil)
	require.NotEmpty(t, all)
	total := 0.0
	for _, ap := range all {
		total += ap.Prob
	}
	require.InDelta(t, 1.0, total, 1e-9)
}

func TestGetAllArtifactsWithProbsPerSetSumsToOne(t *testing.T) {
	for _, set := range Sets {
		s := set
		perSet := GetAllArtifactsWithProbs(&s)
		require.NotEmptyf(t, perSet, "set %s produced no artifacts", set)
		total := 0.0
		for _, ap := range perSet {
			total += ap.Prob
		}
		require.InDeltaf(t, 1.0, total, 1e-9, "set %s total prob", set)
	}
}

func TestArtifactAppearRateMatchesOrderedConstructionFormula(t *testing.T) {
	orders := GenerateAllPossibleSubOrders(3, HP)
	require.NotEmpty(t, orders)
	order := orders[0]

	subs := make([]SubAffix, len(order.Subs))
	for i, aff := range order.Subs {
		subs[i] = SubAffix{Affix: aff, Roll: UpdateMin}
	}
	art := Artifact{Set: Flower, Main: HP, Subs: subs, Level: 0}

	got, err := ArtifactAppearRate(art)
	require.NoError(t, err)

	mainDist, err := MainDistribution(Flower)
	require.NoError(t, err)
	mainW, err := WeightOf(HP, mainDist)
	require.NoError(t, err)
	initW, err := WeightOf(3, InitialAffixNumWeight)
	require.NoError(t, err)

	want := (1.0 / float64(len(Sets))) *
		(float64(mainW) / float64(WeightedSum(mainDist))) *
		(float64(initW) / float64(WeightedSum(InitialAffixNumWeight))) *
		order.Prob

	require.InDelta(t, want, got, 1e-12)
}

func TestArtifactAppearRateRejectsWrongShape(t *testing.T) {
	a := Artifact{Set: Flower, Main: HP, Subs: []SubAffix{{Affix: ATK, Roll: 7}}, Level: 1}
	_, err := ArtifactAppearRate(a)
	if _, ok := err.(*ShapeError); !ok {
		t.Fatalf("expected *ShapeError, got %T: %v", err, err)
	}
}

func TestGenerateAllPossibleSubOrdersProbabilitiesSumToOne(t *testing.T) {
	orders := GenerateAllPossibleSubOrders(4, HP)
	total := 0.0
	for _, o := range orders {
		total += o.Prob
	}
	require.InDelta(t, 1.0, total, 1e-9)
}

func TestCanonicalizeSubOrdersCoalescesPermutations(t *testing.T) {
	orders := GenerateAllPossibleSubOrders(2, HP)
	coalesced := canonicalizeSubOrders(orders)
	// every pair of distinct affixes should appear exactly once after
	// coalescing, regardless of how many orderings produced it.
	seen := map[string]bool{}
	for _, c := range coalesced {
		key := ""
		for _, a := range c.Subs {
			key += a.String() + ","
		}
		if seen[key] {
			t.Fatalf("duplicate canonical tuple %s after coalesce", key)
		}
		seen[key] = true
	}
}
