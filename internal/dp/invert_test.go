package dp

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/zyr17/artifact-scheduler/internal/data"
)

func simpleScores() map[data.AffixKind]float64 {
	return map[data.AffixKind]float64{
		data.HP: 1, data.ATK: 1, data.DEF: 1, data.HPP: 1, data.ATKP: 1,
		data.DEFP: 1, data.EM: 1, data.ER: 1, data.CR: 2, data.CD: 2,
	}
}

func TestFindGainConvergesWithinTolerance(t *testing.T) {
	scores := simpleScores()
	const scoreBar = 20.0
	const targetCost = 12000.0

	gain, err := FindGain(scores, scoreBar, targetCost, 2_000_000, 24, 1.0, nil)
	require.NoError(t, err)

	cost, err := expectedDfCost(scores, scoreBar, gain, nil)
	require.NoError(t, err)
	require.InDelta(t, targetCost, cost, targetCost*0.5+100)
}

func TestFindGainRejectsNonPositiveIterations(t *testing.T) {
	scores := simpleScores()
	_, err := FindGain(scores, 20, 12000, 2_000_000, 0, 1.0, nil)
	require.Error(t, err)
	require.IsType(t, &data.ShapeError{}, err)
}

func TestFindGainRespectsSetRestriction(t *testing.T) {
	scores := simpleScores()
	set := data.Sands
	gain, err := FindGain(scores, 20, 12000, 2_000_000, 12, 1.0, &set)
	require.NoError(t, err)

	cost, err := expectedDfCost(scores, 20, gain, &set)
	require.NoError(t, err)
	require.InDelta(t, 12000.0, cost, 12000.0*0.5+100)
}
