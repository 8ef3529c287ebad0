package data

import (
	"fmt"
	"strconv"
	"strings"
)

// Format renders an artifact as its lossless text form:
// "SET <set>|LV <level>|MAIN <affix>|SUB <rolls>", rolls being
// "|"-separated "<roll>,<affix>" entries, roll right-aligned in 2 columns
// and affix left-aligned in 4. A 4th empty "|" terminates the sub list
// when the artifact has fewer than AffixNum subs.
func Format(a Artifact) string {
	var subsStr strings.Builder
	for i, s := range a.Subs {
		if i > 0 {
			subsStr.WriteByte('|')
		}
		fmt.Fprintf(&subsStr, "%2d,%-4s", s.Roll, s.Affix.String())
	}
	if len(a.Subs) < AffixNum {
		subsStr.WriteByte('|')
	}
	return fmt.Sprintf("SET %-7s|LV %d|MAIN %-10s|SUB %s", a.Set.String(), a.Level, a.Main.String(), subsStr.String())
}

// Parse inverts Format. Parsing tolerates arbitrary whitespace (every "|"
// is normalized to a space and the result re-tokenized) but rejects any
// token whose affix or set name is not in the canonical tables.
func Parse(s string) (Artifact, error) {
	normalized := strings.ReplaceAll(s, "|", " ")
	fields := strings.Fields(normalized)
	if len(fields) < 7 {
		return Artifact{}, &ParseError{Msg: "artifact text: missing section header"}
	}
	if fields[0] != "SET" {
		return Artifact{}, &ParseError{Msg: "artifact text: expected SET header"}
	}
	set, err := ParseSetKind(fields[1])
	if err != nil {
		return Artifact{}, err
	}
	if fields[2] != "LV" {
		return Artifact{}, &ParseError{Msg: "artifact text: expected LV header"}
	}
	level, err := strconv.Atoi(fields[3])
	if err != nil {
		return Artifact{}, &ParseError{Msg: "artifact text: invalid level: " + err.Error()}
	}
	if fields[4] != "MAIN" {
		return Artifact{}, &ParseError{Msg: "artifact text: expected MAIN header"}
	}
	main, err := ParseAffixKind(fields[5])
	if err != nil {
		return Artifact{}, err
	}
	if fields[6] != "SUB" {
		return Artifact{}, &ParseError{Msg: "artifact text: expected SUB header"}
	}

	subs := make([]SubAffix, 0, AffixNum)
	for _, tok := range fields[7:] {
		parts := strings.SplitN(tok, ",", 2)
		if len(parts) != 2 {
			return Artifact{}, &ParseError{Msg: fmt.Sprintf("artifact text: malformed sub token %q", tok)}
		}
		roll, err := strconv.Atoi(strings.TrimSpace(parts[0]))
		if err != nil {
			return Artifact{}, &ParseError{Msg: "artifact text: invalid roll: " + err.Error()}
		}
		if roll < UpdateMin || roll > UpdateMax {
			return Artifact{}, &RangeError{Msg: fmt.Sprintf("artifact text: roll %d out of range", roll)}
		}
		aff, err := ParseAffixKind(strings.TrimSpace(parts[1]))
		if err != nil {
			return Artifact{}, err
		}
		subs = append(subs, SubAffix{Affix: aff, Roll: roll})
	}

	return Artifact{Set: set, Main: main, Subs: subs, Level: level}, nil
}
