package data

import "fmt"

// SetKind is one of the five equippable artifact set slots.
type SetKind int

const (
	Flower SetKind = iota
	Plume
	Sands
	Goblet
	Circlet
)

// Sets lists every SetKind in stable, canonical order.
var Sets = []SetKind{Flower, Plume, Sands, Goblet, Circlet}

var setNames = map[SetKind]string{
	Flower:  "flower",
	Plume:   "plume",
	Sands:   "sands",
	Goblet:  "goblet",
	Circlet: "circlet",
}

var setByName = func() map[string]SetKind {
	m := make(map[string]SetKind, len(setNames))
	for k, v := range setNames {
		m[v] = k
	}
	return m
}()

func (s SetKind) String() string {
	if n, ok := setNames[s]; ok {
		return n
	}
	return fmt.Sprintf("SetKind(%d)", int(s))
}

// ParseSetKind looks up a SetKind by its canonical name, failing with a
// ParseError if the name is not in the table.
func ParseSetKind(name string) (SetKind, error) {
	if s, ok := setByName[name]; ok {
		return s, nil
	}
	return 0, &ParseError{Msg: fmt.Sprintf("unknown set name %q", name)}
}

// AffixKind is one of the 19 closed-set attribute kinds: 10 rollable
// sub-affixes plus 9 main-only affixes (healing bonus and the damage
// bonuses never appear as subs).
type AffixKind int

const (
	HP AffixKind = iota
	ATK
	DEF
	HPP
	ATKP
	DEFP
	EM
	ER
	CR
	CD
	HB
	PyroDB
	HydroDB
	ElectroDB
	AnemoDB
	CryoDB
	GeoDB
	PhysicalDB
	DendroDB
)

var affixNames = map[AffixKind]string{
	HP:         "hp",
	ATK:        "atk",
	DEF:        "def",
	HPP:        "hpp",
	ATKP:       "atkp",
	DEFP:       "defp",
	EM:         "em",
	ER:         "er",
	CR:         "cr",
	CD:         "cd",
	HB:         "hb",
	PyroDB:     "pyroDB",
	HydroDB:    "hydroDB",
	ElectroDB:  "electroDB",
	AnemoDB:    "anemoDB",
	CryoDB:     "cryoDB",
	GeoDB:      "geoDB",
	PhysicalDB: "physicalDB",
	DendroDB:   "dendroDB",
}

var affixByName = func() map[string]AffixKind {
	m := make(map[string]AffixKind, len(affixNames))
	for k, v := range affixNames {
		m[v] = k
	}
	return m
}()

func (a AffixKind) String() string {
	if n, ok := affixNames[a]; ok {
		return n
	}
	return fmt.Sprintf("AffixKind(%d)", int(a))
}

// ParseAffixKind looks up an AffixKind by its canonical name, failing with
// a ParseError if the name is not in the table.
func ParseAffixKind(name string) (AffixKind, error) {
	if a, ok := affixByName[name]; ok {
		return a, nil
	}
	return 0, &ParseError{Msg: fmt.Sprintf("unknown affix name %q", name)}
}

// SubAffix is one rolled sub-attribute: an affix kind and its accumulated
// weight.
type SubAffix struct {
	Affix AffixKind
	Roll  int
}

// Artifact is a drop: a set, a main affix, 3 or 4 distinct sub affixes
// (none equal to main), and an upgrade level in [0, N].
type Artifact struct {
	Set   SetKind
	Main  AffixKind
	Subs  []SubAffix
	Level int
}

// Clone returns a deep copy; Artifacts are otherwise passed by value but
// Subs is a slice and callers that mutate it must clone first.
func (a Artifact) Clone() Artifact {
	subs := make([]SubAffix, len(a.Subs))
	copy(subs, a.Subs)
	a.Subs = subs
	return a
}
