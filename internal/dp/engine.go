package dp

import (
	"fmt"

	"github.com/zyr17/artifact-scheduler/internal/data"
)

type stateRecord struct {
	eGain      float64
	eCost      float64
	successP   float64
	excessCond float64 // E[excess | success] for this state, already conditional
}

// CalcVector is the low-level backward-induction DP: given the current
// per-slot roll vector, the per-slot score weights, the number of
// remaining upgrade steps, a score bar, and a hypothetical final utility
// gain, returns the optimal stop/continue decision and its expectations.
func CalcVector(weight [4]int, score [4]float64, upgradeTime int, scoreBar, gain float64) (Result, error) {
	if upgradeTime < 0 || upgradeTime > N {
		return Result{}, &data.ShapeError{Msg: fmt.Sprintf("calc: upgrade_time %d out of [0,%d]", upgradeTime, N)}
	}
	ensureUST()

	scaledBar := scoreBar * scoreMultiplier
	var scaledScore [4]float64
	maxIncrease := 0.0
	for i := 0; i < 4; i++ {
		scaledScore[i] = score[i] * scoreMultiplier
		scaledBar -= float64(weight[i]) * scaledScore[i]
		if scaledScore[i] > maxIncrease {
			maxIncrease = scaledScore[i]
		}
	}
	maxIncrease *= data.UpdateMax

	currentUpgrade := N - upgradeTime

	dpMap := make([]map[int]stateRecord, upgradeTime+1)
	for i := range dpMap {
		dpMap[i] = make(map[int]stateRecord)
	}

	for i := upgradeTime; i >= 0; i-- {
		currentBar := scaledBar - maxIncrease*float64(upgradeTime-i) - eps
		for _, entry := range ustTable[i] {
			code := entry.Code
			v := decodeVector(code)
			statusScore := 0.0
			for j := 0; j < 4; j++ {
				statusScore += float64(v[j]) * scaledScore[j]
			}

			if i == upgradeTime {
				if statusScore < currentBar {
					continue
				}
				dpMap[i][code] = stateRecord{
					eGain:      gain,
					eCost:      SuccessDogfoodCost,
					successP:   1,
					excessCond: statusScore - scaledBar,
				}
				continue
			}

			var eGain, eCost, successP, excessAccum float64
			for slot := 0; slot < 4; slot++ {
				base := intPow(Base, slot)
				for roll := data.UpdateMin; roll <= data.UpdateMax; roll++ {
					newCode := code + roll*base
					if next, ok := dpMap[i+1][newCode]; ok {
						eGain += next.eGain
						eCost += next.eCost
						successP += next.successP
						excessAccum += next.successP * next.excessCond
					} else {
						eGain += DogfoodLoss[currentUpgrade+i+1]
						eCost -= DogfoodLoss[currentUpgrade+i+1]
					}
				}
			}
			const routeNumber = float64(data.AffixNum * data.W)
			eGain /= routeNumber
			eCost /= routeNumber
			successP /= routeNumber
			excessCond := 0.0
			if successP > 0 {
				excessCond = excessAccum / (routeNumber * successP)
			}

			if eGain > DogfoodLoss[currentUpgrade+i] {
				dpMap[i][code] = stateRecord{
					eGain:      eGain,
					eCost:      eCost,
					successP:   successP,
					excessCond: excessCond,
				}
			}
		}
	}

	if rec, ok := dpMap[0][0]; ok {
		return Result{
			Upgrade:        true,
			ExpectedGain:   rec.eGain,
			ExpectedCost:   rec.eCost,
			SuccessProb:    rec.successP,
			ExpectedExcess: rec.excessCond / scoreMultiplier,
		}, nil
	}
	loss := DogfoodLoss[currentUpgrade]
	return Result{
		Upgrade:        false,
		ExpectedGain:   loss,
		ExpectedCost:   -loss,
		SuccessProb:    0,
		ExpectedExcess: 0,
	}, nil
}

// selectSubVectors builds the (weight, score) vectors CalcVector needs
// from a 4-sub artifact and a scoring map, failing with a LookupError if
// any sub affix is missing from scores.
func selectSubVectors(art data.Artifact, scores map[data.AffixKind]float64) ([4]int, [4]float64, error) {
	var weight [4]int
	var score [4]float64
	if len(art.Subs) != data.AffixNum {
		return weight, score, &data.ShapeError{Msg: fmt.Sprintf("calc: expected %d subs, got %d", data.AffixNum, len(art.Subs))}
	}
	for i, s := range art.Subs {
		w, ok := scores[s.Affix]
		if !ok {
			return weight, score, &data.LookupError{Msg: fmt.Sprintf("calc: scoring map has no weight for affix %s", s.Affix)}
		}
		weight[i] = s.Roll
		score[i] = w
	}
	return weight, score, nil
}

// CalcArtifact is the recommended entry point: it runs CalcVector for a
// 4-sub artifact, or the one-step completion average described in the
// spec's 3-sub wrapper for a 3-sub, level-0 artifact.
func CalcArtifact(art data.Artifact, scores map[data.AffixKind]float64, scoreBar, gain float64) (Result, error) {
	if len(art.Subs) == 3 {
		return calc3Sub(art, scores, scoreBar, gain)
	}
	weight, score, err := selectSubVectors(art, scores)
	if err != nil {
		return Result{}, err
	}
	return CalcVector(weight, score, N-art.Level, scoreBar, gain)
}

func calc3Sub(art data.Artifact, scores map[data.AffixKind]float64, scoreBar, gain float64) (Result, error) {
	if art.Level != 0 {
		return Result{}, &data.ShapeError{Msg: "calc: 3-sub artifact must be level 0"}
	}

	existing := make([]data.AffixKind, len(art.Subs))
	for i, s := range art.Subs {
		existing[i] = s.Affix
	}
	subDist := data.SubDistribution(art.Main, existing)
	subWeightSum := float64(data.WeightedSum(subDist) * data.W)
	if subWeightSum == 0 {
		return Result{}, &data.ShapeError{Msg: "calc: no valid fourth sub for this main"}
	}

	var eGain, eCost, successP, excessAccum float64
	augmented := art.Clone()
	augmented.Level = 1
	augmented.Subs = append(augmented.Subs, data.SubAffix{})

	for _, e := range subDist {
		for roll := data.UpdateMin; roll <= data.UpdateMax; roll++ {
			augmented.Subs[len(augmented.Subs)-1] = data.SubAffix{Affix: e.Key, Roll: roll}
			res, err := CalcArtifact(augmented, scores, scoreBar, gain)
			if err != nil {
				return Result{}, err
			}
			w := float64(e.Weight)
			eGain += res.ExpectedGain * w
			eCost += res.ExpectedCost * w
			successP += res.SuccessProb * w
			excessAccum += res.SuccessProb * res.ExpectedExcess * w
		}
	}

	eGain /= subWeightSum
	eCost /= subWeightSum
	successP /= subWeightSum
	excessCond := 0.0
	if successP > 0 {
		excessCond = excessAccum / subWeightSum / successP
	}

	if eGain > DogfoodLoss[0] {
		return Result{Upgrade: true, ExpectedGain: eGain, ExpectedCost: eCost, SuccessProb: successP, ExpectedExcess: excessCond}, nil
	}
	loss := DogfoodLoss[0]
	return Result{Upgrade: false, ExpectedGain: loss, ExpectedCost: -loss, SuccessProb: 0, ExpectedExcess: 0}, nil
}
