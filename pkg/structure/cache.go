package structure

// Cache memoizes the parse of one structure string and answers pair and
// helix lookups in O(1). The editor holds a single Cache in its application
// state and calls Update once per potential structural edit; rendering then
// performs one Pair lookup per visible cell without reparsing.
//
// The zero value is an empty, usable cache. Cache is not safe for
// concurrent use; it is designed for single-owner access.
type Cache struct {
	cached string
	pairs  []BasePair
	// pairLookup[c] is the partner of column c, -1 if unpaired.
	pairLookup []int
	// helixLookup[c] is the helix of column c, -1 if unpaired.
	helixLookup []int
}

// NewCache returns an empty cache.
func NewCache() *Cache {
	return &Cache{}
}

// Update reparses and rebuilds the lookup tables for structure.
// It is a no-op when structure equals the cached string, making it cheap to
// call on every potential edit. On a parse error the previous cache state is
// left untouched, so callers can surface the error and keep rendering the
// last valid structure.
func (c *Cache) Update(structure string) error {
	if structure == c.cached {
		return nil
	}

	pairs, err := Parse(structure)
	if err != nil {
		return err
	}

	c.pairs = pairs
	c.cached = structure
	c.pairLookup = make([]int, len(structure))
	c.helixLookup = make([]int, len(structure))
	for i := range c.pairLookup {
		c.pairLookup[i] = -1
		c.helixLookup[i] = -1
	}
	for _, p := range pairs {
		c.pairLookup[p.Left] = p.Right
		c.pairLookup[p.Right] = p.Left
		c.helixLookup[p.Left] = p.Helix
		c.helixLookup[p.Right] = p.Helix
	}
	return nil
}

// Pair returns the partner column of col and true, or 0 and false when col
// is unpaired or out of range.
func (c *Cache) Pair(col int) (int, bool) {
	if col < 0 || col >= len(c.pairLookup) || c.pairLookup[col] < 0 {
		return 0, false
	}
	return c.pairLookup[col], true
}

// Helix returns the helix ID of col and true, or 0 and false when col is
// unpaired or out of range.
func (c *Cache) Helix(col int) (int, bool) {
	if col < 0 || col >= len(c.helixLookup) || c.helixLookup[col] < 0 {
		return 0, false
	}
	return c.helixLookup[col], true
}

// IsPaired reports whether col participates in a base pair.
func (c *Cache) IsPaired(col int) bool {
	_, ok := c.Pair(col)
	return ok
}

// Pairs returns the parsed base pairs, sorted by left position.
// The returned slice is owned by the cache and must not be modified.
func (c *Cache) Pairs() []BasePair {
	return c.pairs
}

// NumHelices returns the number of distinct helices in the cached structure.
func (c *Cache) NumHelices() int {
	return CountHelices(c.pairs)
}

// IsValidFor reports whether the cache was built from exactly this
// structure string. Callers can use it to skip even the Update call.
func (c *Cache) IsValidFor(structure string) bool {
	return c.cached == structure
}

// Clear resets the cache to its empty state.
func (c *Cache) Clear() {
	c.cached = ""
	c.pairs = nil
	c.pairLookup = nil
	c.helixLookup = nil
}
