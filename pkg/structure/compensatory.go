package structure

// Change classifies how a query sequence differs from a reference at a
// paired column. The classification is total: every (column, query) input
// maps to exactly one value.
type Change int

const (
	// Unchanged means both positions match the reference.
	Unchanged Change = iota
	// SingleCompatible means one base changed and the pair is still valid.
	SingleCompatible
	// DoubleCompatible means both bases changed and the pair is still valid
	// (a compensatory mutation).
	DoubleCompatible
	// SingleIncompatible means one base changed and the pair is broken.
	SingleIncompatible
	// DoubleIncompatible means both bases changed and the pair is broken.
	DoubleIncompatible
	// InvolvesGap means the query has a gap at either position.
	// Gapped positions are never scored as compatible or incompatible.
	InvolvesGap
	// Unpaired means the column is not part of a base pair.
	Unpaired
)

// String returns a short human-readable name for the change class.
func (c Change) String() string {
	switch c {
	case Unchanged:
		return "unchanged"
	case SingleCompatible:
		return "single-compatible"
	case DoubleCompatible:
		return "double-compatible"
	case SingleIncompatible:
		return "single-incompatible"
	case DoubleIncompatible:
		return "double-incompatible"
	case InvolvesGap:
		return "gap"
	default:
		return "unpaired"
	}
}

// IsValidPair reports whether two bases can form a Watson-Crick or wobble
// pair. Case-insensitive; accepts both RNA (U) and DNA (T) alphabets.
func IsValidPair(a, b byte) bool {
	x := upper(a)
	y := upper(b)
	switch {
	case x == 'A' && (y == 'U' || y == 'T'),
		(x == 'U' || x == 'T') && y == 'A',
		x == 'G' && y == 'C',
		x == 'C' && y == 'G',
		x == 'G' && (y == 'U' || y == 'T'),
		(x == 'U' || x == 'T') && y == 'G':
		return true
	}
	return false
}

func upper(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - ('a' - 'A')
	}
	return c
}

// GapSet is a membership set over gap glyphs.
type GapSet map[byte]bool

// NewGapSet builds a GapSet from the given glyphs.
func NewGapSet(glyphs ...byte) GapSet {
	s := make(GapSet, len(glyphs))
	for _, g := range glyphs {
		s[g] = true
	}
	return s
}

// DefaultGaps returns the conventional alignment gap set.
func DefaultGaps() GapSet {
	return NewGapSet('.', '-', '_', '~', ':')
}

// AnalyzeCompensatory classifies the mutation at col in query relative to
// ref, given the pairing in cache. It never fails: an unpaired column, or a
// column or partner out of range in either sequence, degrades to Unpaired.
func AnalyzeCompensatory(ref, query []byte, col int, cache *Cache, gaps GapSet) Change {
	paired, ok := cache.Pair(col)
	if !ok {
		return Unpaired
	}
	if col >= len(ref) || col >= len(query) || paired >= len(ref) || paired >= len(query) {
		return Unpaired
	}

	refLeft, refRight := ref[col], ref[paired]
	qLeft, qRight := query[col], query[paired]

	if gaps[qLeft] || gaps[qRight] {
		return InvolvesGap
	}

	leftChanged := upper(refLeft) != upper(qLeft)
	rightChanged := upper(refRight) != upper(qRight)
	stillValid := IsValidPair(qLeft, qRight)

	switch {
	case !leftChanged && !rightChanged:
		return Unchanged
	case leftChanged && rightChanged && stillValid:
		return DoubleCompatible
	case leftChanged && rightChanged:
		return DoubleIncompatible
	case stillValid:
		return SingleCompatible
	default:
		return SingleIncompatible
	}
}
