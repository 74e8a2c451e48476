package cli

import (
	"testing"

	"github.com/stholm/stholm/pkg/stockholm"
)

func testAlignment(t *testing.T, seqs ...string) *stockholm.Alignment {
	t.Helper()
	a := stockholm.NewAlignment()
	for i, s := range seqs {
		a.Sequences = append(a.Sequences, stockholm.NewSequence(string(rune('a'+i)), s))
	}
	return a
}

func TestReorder(t *testing.T) {
	a := testAlignment(t, "AAAA", "CCCC", "GGGG")
	a.FileAnnotations = append(a.FileAnnotations, stockholm.FileAnnotation{Tag: "AC", Value: "X"})

	out := reorder(a, []int{2, 0, 1})

	wantIDs := []string{"c", "a", "b"}
	for i, want := range wantIDs {
		if out.Sequences[i].ID != want {
			t.Errorf("sequence %d = %q, want %q", i, out.Sequences[i].ID, want)
		}
	}
	if len(out.FileAnnotations) != 1 {
		t.Error("reorder should carry file annotations over")
	}
	if a.Sequences[0].ID != "a" {
		t.Error("reorder must not mutate the input alignment")
	}
}

func TestReorderEmpty(t *testing.T) {
	a := testAlignment(t)
	out := reorder(a, nil)
	if out.NumSequences() != 0 {
		t.Errorf("sequences = %d, want 0", out.NumSequences())
	}
}
