// Package notation converts between shess.BitBoard and the two text
// formats players and tooling actually use: FEN for a whole position,
// SAN for a single move in context (§6).
package notation

import "errors"

// ErrParseFailure means the input text was not well-formed notation at
// all (wrong field count, unparseable square, bad character).
var ErrParseFailure = errors.New("notation: parse failure")

// ErrNoSuchMove means the text parsed as a candidate move, but no legal
// move in the position matches it.
var ErrNoSuchMove = errors.New("notation: no such move")

// ErrAmbiguousMove means the text under-specifies which of several legal
// moves is meant (SAN disambiguation that doesn't narrow to one move).
var ErrAmbiguousMove = errors.New("notation: ambiguous move")
