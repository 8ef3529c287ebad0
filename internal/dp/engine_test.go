package dp

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/zyr17/artifact-scheduler/internal/data"
)

func subs4() []data.SubAffix {
	return []data.SubAffix{
		{Affix: data.HP, Roll: 10},
		{Affix: data.ATK, Roll: 10},
		{Affix: data.DEF, Roll: 10},
		{Affix: data.EM, Roll: 10},
	}
}

func TestCalcTerminalNoUpgradeBeneficial(t *testing.T) {
	art := data.Artifact{Set: data.Sands, Main: data.HPP, Subs: subs4(), Level: 0}
	scores := map[data.AffixKind]float64{
		data.HP: 0, data.ATK: 0, data.DEF: 0, data.HPP: 0, data.ATKP: 0,
		data.DEFP: 0, data.EM: 0, data.ER: 0, data.CR: 1, data.CD: 1,
	}
	res, err := CalcArtifact(art, scores, 10, 1000)
	require.NoError(t, err)

	require.False(t, res.Upgrade)
	require.InDelta(t, DogfoodLoss[0], res.ExpectedGain, 1e-9)
	require.InDelta(t, -DogfoodLoss[0], res.ExpectedCost, 1e-9)
	require.InDelta(t, 0, res.SuccessProb, 1e-9)
	require.InDelta(t, 0, res.ExpectedExcess, 1e-9)
}

func TestCalcGuaranteedSuccess(t *testing.T) {
	art := data.Artifact{Set: data.Sands, Main: data.HPP, Subs: subs4(), Level: 0}
	scores := map[data.AffixKind]float64{data.HP: 1, data.ATK: 1, data.DEF: 1, data.EM: 1}
	res, err := CalcArtifact(art, scores, 0, 1_000_000)
	require.NoError(t, err)

	require.True(t, res.Upgrade)
	require.InDelta(t, 1_000_000, res.ExpectedGain, 1e-6)
	require.InDelta(t, SuccessDogfoodCost, res.ExpectedCost, 1e-6)
	require.InDelta(t, 1.0, res.SuccessProb, 1e-9)
	require.GreaterOrEqual(t, res.ExpectedExcess, -1e-9)
}

func TestCalcVectorIsDeterministic(t *testing.T) {
	weight := [4]int{10, 10, 10, 10}
	score := [4]float64{1, 1, 1, 1}
	r1, err1 := CalcVector(weight, score, N, 10, 500)
	r2, err2 := CalcVector(weight, score, N, 10, 500)
	require.NoError(t, err1)
	require.NoError(t, err2)
	require.Equal(t, r1, r2)
}

func TestCalcVectorRejectsBadUpgradeTime(t *testing.T) {
	weight := [4]int{10, 10, 10, 10}
	score := [4]float64{1, 1, 1, 1}
	_, err := CalcVector(weight, score, N+1, 10, 500)
	require.Error(t, err)
	require.IsType(t, &data.ShapeError{}, err)
}

func TestCalcThreeSubWrapperMatchesWeightedAverage(t *testing.T) {
	art := data.Artifact{
		Set:  data.Sands,
		Main: data.HPP,
		Subs: []data.SubAffix{
			{Affix: data.HP, Roll: 8},
			{Affix: data.ATK, Roll: 9},
			{Affix: data.DEF, Roll: 7},
		},
		Level: 0,
	}
	scores := map[data.AffixKind]float64{data.HP: 1, data.ATK: 1, data.DEF: 1, data.ATKP: 0, data.DEFP: 0, data.EM: 1, data.ER: 0.5, data.CR: 2, data.CD: 2}
	const scoreBar, gain = 20.0, 50000.0

	got, err := CalcArtifact(art, scores, scoreBar, gain)
	require.NoError(t, err)

	existing := []data.AffixKind{data.HP, data.ATK, data.DEF}
	subDist := data.SubDistribution(art.Main, existing)
	weightSum := float64(data.WeightedSum(subDist) * data.W)

	var wantGain, wantCost, wantSuccess float64
	augmented := art.Clone()
	augmented.Level = 1
	augmented.Subs = append(augmented.Subs, data.SubAffix{})
	for _, e := range subDist {
		for roll := data.UpdateMin; roll <= data.UpdateMax; roll++ {
			augmented.Subs[3] = data.SubAffix{Affix: e.Key, Roll: roll}
			res, err := CalcArtifact(augmented, scores, scoreBar, gain)
			require.NoError(t, err)
			w := float64(e.Weight)
			wantGain += res.ExpectedGain * w
			wantCost += res.ExpectedCost * w
			wantSuccess += res.SuccessProb * w
		}
	}
	wantGain /= weightSum
	wantCost /= weightSum
	wantSuccess /= weightSum

	if wantGain > DogfoodLoss[0] {
		require.True(t, got.Upgrade)
		require.InDelta(t, wantGain, got.ExpectedGain, 1e-9)
		require.InDelta(t, wantCost, got.ExpectedCost, 1e-9)
		require.InDelta(t, wantSuccess, got.SuccessProb, 1e-9)
	} else {
		require.False(t, got.Upgrade)
	}
}

func TestCalcArtifactRejectsMissingScore(t *testing.T) {
	art := data.Artifact{Set: data.Sands, Main: data.HPP, Subs: subs4(), Level: N}
	scores := map[data.AffixKind]float64{data.CR: 1}
	_, err := CalcArtifact(art, scores, 0, 1)
	require.Error(t, err)
	require.IsType(t, &data.LookupError{}, err)
}
