// Package data implements the probability model, enumerator, and sampler
// for artifact drops: the DATA half of the upgrade-decision system.
package data

// AffixNum is the number of sub-attribute slots an artifact carries once
// fully rolled.
const AffixNum = 4

// N is the number of upgrade steps applied to a fully-leveled artifact.
const N = 5

// Base is the radix used to pack a 4-slot increment vector into a single
// integer code. Must exceed any individual slot's maximum accumulated
// value, N*UpdateMax = 50.
const Base = 64

// UpdateMin and UpdateMax bound the roll added to a sub-attribute on each
// upgrade step.
const (
	UpdateMin = 7
	UpdateMax = 10
)

// W is the number of distinct roll values a single upgrade step can produce.
const W = UpdateMax - UpdateMin + 1
