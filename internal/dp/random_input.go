package dp

import "github.com/zyr17/artifact-scheduler/internal/data"

// RandomGainInput is a randomly generated fuzz case for FindGain: a
// scoring map over every rollable affix and a score bar, both drawn the
// way the original tool's batch fuzzer drew them so regression runs stay
// comparable across ports.
type RandomGainInput struct {
	Scores   map[data.AffixKind]float64
	ScoreBar float64
	DfCost   float64
}

// flatToPercentPair mirrors the original's convention that flat stats
// (hp, atk, def) are scored relative to their percent counterpart, scaled
// down since a flat roll is numerically much larger than a percent roll.
var flatToPercentPair = map[data.AffixKind]data.AffixKind{
	data.HP:  data.HPP,
	data.ATK: data.ATKP,
	data.DEF: data.DEFP,
}

// GenerateRandomGainInput draws a random scoring map over the 10 rollable
// sub affixes and a score bar in [0, 60]. Each of the 7 percent-like
// affixes gets an independent coin flip: half the time its weight is
// zeroed, otherwise it draws a fresh uniform weight, so both which
// affixes are zeroed and how many varies run to run. Drawn weights are
// normalized by the largest one, then flat stats are derived from their
// percent counterpart. The score bar is drawn from a normal distribution
// re-rolled until it lands in range, and dfCost defaults to a random
// value in [10000, 14000).
func GenerateRandomGainInput(rng *data.RNG) RandomGainInput {
	percentLike := []data.AffixKind{data.HPP, data.ATKP, data.DEFP, data.EM, data.ER, data.CR, data.CD}

	weights := make(map[data.AffixKind]float64, len(percentLike))
	maxW := 0.0
	for _, aff := range percentLike {
		w := 0.0
		if rng.Float64() >= 0.5 {
			w = rng.Float64()
		}
		weights[aff] = w
		if w > maxW {
			maxW = w
		}
	}
	scores := make(map[data.AffixKind]float64, 10)
	for _, aff := range percentLike {
		w := weights[aff]
		if maxW > 0 {
			w /= maxW
		}
		scores[aff] = w
	}
	for flat, pct := range flatToPercentPair {
		scores[flat] = scores[pct] * rng.Float64() * 0.5
	}

	scoreBar := rng.Normal(30, 15)
	for scoreBar < 0 || scoreBar > 60 {
		scoreBar = rng.Normal(30, 15)
	}

	dfCost := float64(rng.Intn(4000) + 10000)

	return RandomGainInput{Scores: scores, ScoreBar: scoreBar, DfCost: dfCost}
}
