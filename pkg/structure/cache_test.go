package structure

import "testing"

func TestCacheUpdate(t *testing.T) {
	c := NewCache()
	if err := c.Update("<<<>>>"); err != nil {
		t.Fatal(err)
	}

	wantPairs := map[int]int{0: 5, 1: 4, 2: 3, 3: 2, 4: 1, 5: 0}
	for col, want := range wantPairs {
		got, ok := c.Pair(col)
		if !ok || got != want {
			t.Errorf("Pair(%d) = %d,%v, want %d,true", col, got, ok, want)
		}
		if !c.IsPaired(col) {
			t.Errorf("IsPaired(%d) = false", col)
		}
	}
}

func TestCacheSymmetry(t *testing.T) {
	c := NewCache()
	if err := c.Update("<<..<<..>>..>>.((.))"); err != nil {
		t.Fatal(err)
	}
	for col := 0; col < 20; col++ {
		partner, ok := c.Pair(col)
		if !ok {
			continue
		}
		back, ok := c.Pair(partner)
		if !ok || back != col {
			t.Errorf("Pair(Pair(%d)) = %d,%v, want %d,true", col, back, ok, col)
		}
		h1, _ := c.Helix(col)
		h2, _ := c.Helix(partner)
		if h1 != h2 {
			t.Errorf("Helix(%d)=%d != Helix(%d)=%d", col, h1, partner, h2)
		}
	}
}

func TestCacheHelixLookup(t *testing.T) {
	c := NewCache()
	if err := c.Update("<<..<<..>>..>>"); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		col    int
		helix  int
		paired bool
	}{
		{0, 0, true},
		{1, 0, true},
		{12, 0, true},
		{13, 0, true},
		{4, 1, true},
		{5, 1, true},
		{8, 1, true},
		{9, 1, true},
		{2, 0, false},
		{10, 0, false},
	}
	for _, tt := range tests {
		h, ok := c.Helix(tt.col)
		if ok != tt.paired {
			t.Errorf("Helix(%d) ok = %v, want %v", tt.col, ok, tt.paired)
			continue
		}
		if ok && h != tt.helix {
			t.Errorf("Helix(%d) = %d, want %d", tt.col, h, tt.helix)
		}
	}
	if c.NumHelices() != 2 {
		t.Errorf("NumHelices = %d, want 2", c.NumHelices())
	}
}

func TestCacheNoopOnSameStructure(t *testing.T) {
	c := NewCache()
	if err := c.Update("<<>>"); err != nil {
		t.Fatal(err)
	}
	before := c.Pairs()
	if err := c.Update("<<>>"); err != nil {
		t.Fatal(err)
	}
	// Same backing slice: the second update must not reparse.
	after := c.Pairs()
	if len(before) != len(after) || &before[0] != &after[0] {
		t.Error("Update reparsed an identical structure")
	}
}

func TestCachePreservedOnParseError(t *testing.T) {
	c := NewCache()
	if err := c.Update("<<>>"); err != nil {
		t.Fatal(err)
	}
	if err := c.Update("<<<>>"); err == nil {
		t.Fatal("expected parse error")
	}
	// Previous valid state must survive the failed update.
	if !c.IsValidFor("<<>>") {
		t.Error("cache no longer valid for previous structure")
	}
	if p, ok := c.Pair(0); !ok || p != 3 {
		t.Errorf("Pair(0) = %d,%v after failed update, want 3,true", p, ok)
	}
}

func TestCacheOutOfRange(t *testing.T) {
	c := NewCache()
	if err := c.Update("<>"); err != nil {
		t.Fatal(err)
	}
	if _, ok := c.Pair(-1); ok {
		t.Error("Pair(-1) should be unpaired")
	}
	if _, ok := c.Pair(99); ok {
		t.Error("Pair(99) should be unpaired")
	}
	if _, ok := c.Helix(99); ok {
		t.Error("Helix(99) should be unpaired")
	}
}

func TestCacheClear(t *testing.T) {
	c := NewCache()
	if err := c.Update("<<>>"); err != nil {
		t.Fatal(err)
	}
	c.Clear()
	if c.IsValidFor("<<>>") {
		t.Error("cleared cache still claims validity")
	}
	if c.IsPaired(0) {
		t.Error("cleared cache still answers pair lookups")
	}
	if len(c.Pairs()) != 0 {
		t.Error("cleared cache retains pairs")
	}
	// An empty cache is valid for the empty structure.
	if !c.IsValidFor("") {
		t.Error("empty cache should be valid for empty structure")
	}
}
