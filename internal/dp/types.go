package dp

// Result is the DP's decision for an artifact at its current state:
// whether to continue upgrading, the expected utility of the optimal
// policy, the expected consumable cost, the probability of ending above
// the score bar, and the expected excess score above the bar conditional
// on success.
type Result struct {
	Upgrade        bool
	ExpectedGain   float64
	ExpectedCost   float64
	SuccessProb    float64
	ExpectedExcess float64
}
