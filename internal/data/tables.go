package data

// InitialAffixNumWeight is the weight table for how many sub-affixes a
// freshly dropped artifact starts with. Source:
// https://genshin-impact.fandom.com/wiki/Artifacts/Distribution
var InitialAffixNumWeight = []WeightedEntry[int]{
	{Key: 3, Weight: 4},
	{Key: 4, Weight: 1},
}

// SubProbWeight is the weight table for which affix is chosen for a new
// sub slot, restricted to the 10 rollable affixes. A sub is never chosen
// equal to the artifact's main, nor equal to another sub already on the
// artifact — see SubDistribution.
var SubProbWeight = []WeightedEntry[AffixKind]{
	{Key: HP, Weight: 6},
	{Key: ATK, Weight: 6},
	{Key: DEF, Weight: 6},
	{Key: HPP, Weight: 4},
	{Key: ATKP, Weight: 4},
	{Key: DEFP, Weight: 4},
	{Key: EM, Weight: 4},
	{Key: ER, Weight: 4},
	{Key: CR, Weight: 3},
	{Key: CD, Weight: 3},
}

// MainWeight is the weight table for which main affix is chosen per set.
var MainWeight = map[SetKind][]WeightedEntry[AffixKind]{
	Flower: {
		{Key: HP, Weight: 1},
	},
	Plume: {
		{Key: ATK, Weight: 1},
	},
	Sands: {
		{Key: HPP, Weight: 2668},
		{Key: ATKP, Weight: 2666},
		{Key: DEFP, Weight: 2666},
		{Key: EM, Weight: 1000},
		{Key: ER, Weight: 1000},
	},
	Goblet: {
		{Key: HPP, Weight: 19175},
		{Key: ATKP, Weight: 19175},
		{Key: DEFP, Weight: 19150},
		{Key: EM, Weight: 2500},
		{Key: PyroDB, Weight: 5000},
		{Key: HydroDB, Weight: 5000},
		{Key: ElectroDB, Weight: 5000},
		{Key: AnemoDB, Weight: 5000},
		{Key: CryoDB, Weight: 5000},
		{Key: GeoDB, Weight: 5000},
		{Key: PhysicalDB, Weight: 5000},
		{Key: DendroDB, Weight: 5000},
	},
	Circlet: {
		{Key: HPP, Weight: 22},
		{Key: ATKP, Weight: 22},
		{Key: DEFP, Weight: 22},
		{Key: EM, Weight: 4},
		{Key: CR, Weight: 10},
		{Key: CD, Weight: 10},
		{Key: HB, Weight: 10},
	},
}

// MainDistribution returns MainWeight[set]'s entries, in stable declaration
// order, failing with a LookupError if set is not a recognized key (it
// always is, since SetKind is a closed enum, but the lookup keeps the
// signature consistent with the other PM accessors).
func MainDistribution(set SetKind) ([]WeightedEntry[AffixKind], error) {
	table, ok := MainWeight[set]
	if !ok {
		return nil, &LookupError{Msg: "main distribution: unknown set"}
	}
	return table, nil
}

// SubDistribution returns the subset of SubProbWeight whose affix is
// neither main nor already present in chosen.
func SubDistribution(main AffixKind, chosen []AffixKind) []WeightedEntry[AffixKind] {
	out := make([]WeightedEntry[AffixKind], 0, len(SubProbWeight))
	for _, e := range SubProbWeight {
		if e.Key == main {
			continue
		}
		if containsAffix(chosen, e.Key) {
			continue
		}
		out = append(out, e)
	}
	return out
}

func containsAffix(subs []AffixKind, a AffixKind) bool {
	for _, s := range subs {
		if s == a {
			return true
		}
	}
	return false
}

// RandomSet draws a set uniformly among the 5 sets (not weighted, unlike
// every other draw in the model).
func RandomSet(rng *RNG) SetKind {
	return Sets[rng.Intn(len(Sets))]
}
