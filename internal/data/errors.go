package data

// ShapeError reports a value with the wrong structural shape: wrong sub
// count, wrong level for the entry point used, a weight vector whose size
// doesn't match AffixNum.
type ShapeError struct{ Msg string }

func (e *ShapeError) Error() string { return "shape error: " + e.Msg }

// RangeError reports a roll value outside [UpdateMin, UpdateMax].
type RangeError struct{ Msg string }

func (e *RangeError) Error() string { return "range error: " + e.Msg }

// LookupError reports a caller-supplied affix or set not valid in the
// probability model for the chosen context (main not valid for set, sub
// equal to main, weight lookup on an absent key).
type LookupError struct{ Msg string }

func (e *LookupError) Error() string { return "lookup error: " + e.Msg }

// ParseError reports a text form missing a section header or referencing
// an unknown canonical name.
type ParseError struct{ Msg string }

func (e *ParseError) Error() string { return "parse error: " + e.Msg }
