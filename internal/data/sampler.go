package data

// RandomOneArtifact constructs a level-0 artifact whose unspecified fields
// are drawn from the probability model. set, main, and initial are
// optional (nil means "draw it"); seedSubs pre-specifies a prefix of the
// sub slots (affix and roll both fixed) and must be no longer than
// initial. Fails with a LookupError on a structurally invalid combination
// (e.g. set=flower with main=atk) or a RangeError on an out-of-range
// seeded roll.
func RandomOneArtifact(rng *RNG, set *SetKind, main *AffixKind, initial *int, seedSubs []SubAffix) (Artifact, error) {
	var chosenSet SetKind
	if set == nil {
		chosenSet = RandomSet(rng)
	} else {
		chosenSet = *set
	}

	mainDist, err := MainDistribution(chosenSet)
	if err != nil {
		return Artifact{}, err
	}

	var chosenMain AffixKind
	if main == nil {
		draw, err := WeightedRand(mainDist, rng.Intn(WeightedSum(mainDist)))
		if err != nil {
			return Artifact{}, err
		}
		chosenMain = draw
	} else {
		if _, err := WeightOf(*main, mainDist); err != nil {
			return Artifact{}, err
		}
		chosenMain = *main
	}

	var chosenInitial int
	if initial == nil {
		draw, err := WeightedRand(InitialAffixNumWeight, rng.Intn(WeightedSum(InitialAffixNumWeight)))
		if err != nil {
			return Artifact{}, err
		}
		chosenInitial = draw
	} else {
		if _, err := WeightOf(*initial, InitialAffixNumWeight); err != nil {
			return Artifact{}, err
		}
		chosenInitial = *initial
	}

	if len(seedSubs) > chosenInitial {
		return Artifact{}, &ShapeError{Msg: "random_one_artifact: more seeded subs than initial"}
	}

	subs := make([]SubAffix, chosenInitial)
	chosen := make([]AffixKind, 0, chosenInitial)
	for i := 0; i < chosenInitial; i++ {
		dist := SubDistribution(chosenMain, chosen)
		if i < len(seedSubs) {
			aff := seedSubs[i].Affix
			if _, err := WeightOf(aff, dist); err != nil {
				return Artifact{}, err
			}
			roll := seedSubs[i].Roll
			if roll < UpdateMin || roll > UpdateMax {
				return Artifact{}, &RangeError{Msg: "random_one_artifact: seeded roll out of range"}
			}
			subs[i] = SubAffix{Affix: aff, Roll: roll}
			chosen = append(chosen, aff)
		} else {
			aff, err := WeightedRand(dist, rng.Intn(WeightedSum(dist)))
			if err != nil {
				return Artifact{}, err
			}
			roll := rng.Intn(W) + UpdateMin
			subs[i] = SubAffix{Affix: aff, Roll: roll}
			chosen = append(chosen, aff)
		}
	}

	return Artifact{Set: chosenSet, Main: chosenMain, Subs: subs, Level: 0}, nil
}

// GetDrop returns the artifact corresponding to a uniform draw u in
// [0, 1), using the enumerator's CDF for the discrete structure and a
// base-W digit expansion of the residual for each sub's roll.
func GetDrop(u float64) Artifact {
	ensureEnumerator()
	n := len(enumAll)

	if u <= enumAll[0].Cum {
		return enumAll[0].Artifact.Clone()
	}
	if u > enumAll[n-1].Cum {
		return enumAll[n-1].Artifact.Clone()
	}

	left, right := 0, n-1
	for left+1 < right {
		p := (left + right) / 2
		if enumAll[p].Cum < u {
			left = p
		} else {
			right = p
		}
	}

	art := enumAll[right].Artifact.Clone()
	rescaled := (u - enumAll[left].Cum) / (enumAll[right].Cum - enumAll[left].Cum)
	for i := range art.Subs {
		rescaled *= float64(W)
		d := int(rescaled)
		if d >= W {
			d = W - 1
		}
		rescaled -= float64(d)
		art.Subs[i].Roll = d + UpdateMin
	}
	return art
}

// RandomDrop draws a fresh uniform value from Default and returns GetDrop
// of it.
func RandomDrop() Artifact {
	return GetDrop(Default.Float64())
}
