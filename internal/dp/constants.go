// Package dp implements the upgrade-decision dynamic program: the UST,
// the backward-induction DP engine (calc), and the gain inverter
// (find_gain) that drives the DP's self-consistency.
package dp

import "github.com/zyr17/artifact-scheduler/internal/data"

// N mirrors data.N: the number of upgrade steps a fully-leveled artifact
// has undergone.
const N = data.N

// Base is the radix used to pack a 4-slot increment vector into one code.
const Base = data.Base

// eps guards the score-bar comparison against floating point noise at the
// terminal DP step.
const eps = 1e-8

// scoreMultiplier is a dimensionless scale hook retained from the
// original; 1 means scores are used as given.
const scoreMultiplier = 1.0

// DogfoodCost[i] is the consumable cost of the (i+1)-th upgrade step.
var DogfoodCost = [N]float64{16300, 28425, 42425, 66150, 117175}

// SuccessDogfoodCost is the total cost of fully upgrading an artifact.
var SuccessDogfoodCost = sumDogfoodCost()

func sumDogfoodCost() float64 {
	total := 0.0
	for _, c := range DogfoodCost {
		total += c
	}
	return total
}

// FeedDogfood is the fixed amount returned by feeding an artifact as
// dogfood instead of upgrading it.
const FeedDogfood = 3780.0

// DogfoodLoss[i] is the opportunity cost, in feed-value terms, of having
// already spent i upgrades' worth of dogfood instead of feeding the
// artifact outright: FeedDogfood - floor(sum(DogfoodCost[:i])/5).
var DogfoodLoss = buildDogfoodLoss()

func buildDogfoodLoss() [N + 1]float64 {
	var loss [N + 1]float64
	spent := 0.0
	for i := 0; i <= N; i++ {
		loss[i] = FeedDogfood - float64(int(spent)/5)
		if i < N {
			spent += DogfoodCost[i]
		}
	}
	return loss
}
