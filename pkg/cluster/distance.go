package cluster

import "github.com/stholm/stholm/pkg/structure"

// HammingDistance counts position-wise mismatches between two aligned
// sequences. Comparison is case-insensitive. A gap aligned to a gap counts
// as a match; a gap aligned to a residue, or two differing residues, counts
// as one mismatch. The result is an unnormalized count, not a proportion,
// which biases UPGMA toward raw column-count effects on alignments with
// uneven gap density. That is inherited behavior, kept deliberately.
func HammingDistance(seq1, seq2 []byte, gaps structure.GapSet) int {
	n := len(seq1)
	if len(seq2) < n {
		n = len(seq2)
	}
	count := 0
	for i := 0; i < n; i++ {
		a, b := seq1[i], seq2[i]
		if gaps[a] && gaps[b] {
			continue
		}
		if !equalFold(a, b) {
			count++
		}
	}
	return count
}

func equalFold(a, b byte) bool {
	if a >= 'a' && a <= 'z' {
		a -= 'a' - 'A'
	}
	if b >= 'a' && b <= 'z' {
		b -= 'a' - 'A'
	}
	return a == b
}

// DistanceMatrix computes the condensed upper-triangular distance matrix
// for all sequence pairs, in (0,1),(0,2),...,(0,n-1),(1,2),... order as
// required by [Linkage].
func DistanceMatrix(seqs [][]byte, gaps structure.GapSet) []float64 {
	n := len(seqs)
	dists := make([]float64, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			dists = append(dists, float64(HammingDistance(seqs[i], seqs[j], gaps)))
		}
	}
	return dists
}
