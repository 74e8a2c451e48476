// Package structure parses consensus secondary-structure annotations and
// answers per-column pairing queries over them.
//
// A structure annotation (typically the SS_cons line of a Stockholm
// alignment) is written in dot-bracket notation: matched bracket characters
// mark paired columns, everything else is unpaired. Four bracket types are
// recognized, each balanced independently, so annotations of different types
// may interleave positions. Pairs form only within one type - true
// pseudoknots (crossings between types) are not resolved.
//
// # Usage
//
//	pairs, err := structure.Parse("<<..<<..>>..>>")
//	if err != nil {
//	    // position of the offending bracket is in the error
//	}
//
// For repeated per-column lookups, build a [Cache] instead of scanning the
// pair slice.
package structure

import (
	"fmt"
	"sort"
	"strings"
)

// ErrorKind classifies a structure parse failure.
type ErrorKind int

const (
	// UnmatchedOpen indicates an opening bracket with no matching close.
	UnmatchedOpen ErrorKind = iota
	// UnmatchedClose indicates a closing bracket with no matching open.
	UnmatchedClose
	// BracketMismatch is reserved for cross-type pseudoknot validation.
	// No current code path returns it.
	BracketMismatch
)

// ParseError reports an invalid dot-bracket string. Pos is the 0-indexed
// column of the offending bracket: for UnmatchedOpen the first opening
// bracket left on its stack, for UnmatchedClose the close that found its
// stack empty.
type ParseError struct {
	Kind ErrorKind
	Pos  int
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	switch e.Kind {
	case UnmatchedOpen:
		return fmt.Sprintf("unmatched opening bracket at position %d", e.Pos)
	case UnmatchedClose:
		return fmt.Sprintf("unmatched closing bracket at position %d", e.Pos)
	default:
		return fmt.Sprintf("bracket type mismatch at position %d", e.Pos)
	}
}

// BasePair is a single base pair in a parsed structure.
// Positions are 0-indexed columns with Left < Right.
type BasePair struct {
	Left  int // 5' position (opening bracket)
	Right int // 3' position (closing bracket)
	Helix int // helix identifier, assigned by contiguity
}

const (
	openBrackets  = "<([{"
	closeBrackets = ">)]}"
)

// IsOpenBracket reports whether c opens one of the recognized bracket types.
func IsOpenBracket(c byte) bool { return strings.IndexByte(openBrackets, c) >= 0 }

// IsCloseBracket reports whether c closes one of the recognized bracket types.
func IsCloseBracket(c byte) bool { return strings.IndexByte(closeBrackets, c) >= 0 }

// MatchingClose returns the closing bracket for an opening bracket,
// or 0 if c is not an opening bracket.
func MatchingClose(c byte) byte {
	if i := strings.IndexByte(openBrackets, c); i >= 0 {
		return closeBrackets[i]
	}
	return 0
}

// MatchingOpen returns the opening bracket for a closing bracket,
// or 0 if c is not a closing bracket.
func MatchingOpen(c byte) byte {
	if i := strings.IndexByte(closeBrackets, c); i >= 0 {
		return openBrackets[i]
	}
	return 0
}

// Parse parses a dot-bracket string into base pairs sorted by left position.
// Each of the four bracket types matches against its own stack, so different
// types may interleave without being treated as a crossing. Characters that
// are not brackets are ignored. Returns a *ParseError on unbalanced input.
func Parse(ss string) ([]BasePair, error) {
	var pairs []BasePair
	var stacks [4][]int

	for pos := 0; pos < len(ss); pos++ {
		ch := ss[pos]
		if t := strings.IndexByte(openBrackets, ch); t >= 0 {
			stacks[t] = append(stacks[t], pos)
			continue
		}
		t := strings.IndexByte(closeBrackets, ch)
		if t < 0 {
			continue
		}
		stack := stacks[t]
		if len(stack) == 0 {
			return nil, &ParseError{Kind: UnmatchedClose, Pos: pos}
		}
		left := stack[len(stack)-1]
		stacks[t] = stack[:len(stack)-1]
		pairs = append(pairs, BasePair{Left: left, Right: pos})
	}

	for _, stack := range stacks {
		if len(stack) > 0 {
			return nil, &ParseError{Kind: UnmatchedOpen, Pos: stack[0]}
		}
	}

	sort.Slice(pairs, func(i, j int) bool { return pairs[i].Left < pairs[j].Left })
	assignHelices(pairs)
	return pairs, nil
}

// assignHelices numbers maximal runs of immediately nested, contiguous
// pairs. A pair extends the previous helix iff its left position is one
// greater and its right position one smaller than its predecessor's.
func assignHelices(pairs []BasePair) {
	if len(pairs) == 0 {
		return
	}
	helix := 0
	pairs[0].Helix = helix
	for i := 1; i < len(pairs); i++ {
		prev, curr := pairs[i-1], pairs[i]
		adjacent := curr.Left == prev.Left+1 && curr.Right+1 == prev.Right
		if !adjacent {
			helix++
		}
		pairs[i].Helix = helix
	}
}

// FindPair returns the partner column of col in pairs, or -1 if unpaired.
// Linear scan; use [Cache.Pair] for repeated queries.
func FindPair(pairs []BasePair, col int) int {
	for _, p := range pairs {
		if p.Left == col {
			return p.Right
		}
		if p.Right == col {
			return p.Left
		}
	}
	return -1
}

// CountHelices returns the number of distinct helices in pairs.
func CountHelices(pairs []BasePair) int {
	max := -1
	for _, p := range pairs {
		if p.Helix > max {
			max = p.Helix
		}
	}
	return max + 1
}

// IsValid reports whether ss parses without error.
func IsValid(ss string) bool {
	_, err := Parse(ss)
	return err == nil
}
