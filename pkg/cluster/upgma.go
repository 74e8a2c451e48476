package cluster

// Step records one agglomeration: clusters Cluster1 and Cluster2 merge at
// the given average Dissimilarity into a new cluster of Size leaves.
// Cluster ids 0..n-1 are original leaves; step i creates cluster n+i.
type Step struct {
	Cluster1      int
	Cluster2      int
	Dissimilarity float64
	Size          int
}

// Dendrogram is the merge tree produced by [Linkage]: n-1 steps for n
// items, in creation order. The root is always n + len(Steps) - 1.
type Dendrogram struct {
	Steps []Step
}

// Linkage performs UPGMA (average-linkage) agglomerative clustering over a
// condensed distance matrix for n items, as produced by [DistanceMatrix].
// At every round the two active clusters at minimal average distance merge;
// distances to the merged cluster are the leaf-count-weighted average of
// the distances to its parts.
//
// Callers must ensure len(condensed) == n*(n-1)/2. n < 2 yields an empty
// dendrogram.
func Linkage(condensed []float64, n int) Dendrogram {
	if n < 2 {
		return Dendrogram{}
	}

	// Working distance matrix over active clusters, indexed by a dense
	// position that shrinks as clusters merge.
	dist := make([][]float64, n)
	for i := range dist {
		dist[i] = make([]float64, n)
	}
	k := 0
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			dist[i][j] = condensed[k]
			dist[j][i] = condensed[k]
			k++
		}
	}

	active := make([]int, n) // position -> cluster id
	sizes := make([]int, n)  // position -> leaf count
	for i := 0; i < n; i++ {
		active[i] = i
		sizes[i] = 1
	}

	steps := make([]Step, 0, n-1)
	for len(active) > 1 {
		// Find the closest pair of active clusters.
		bi, bj := 0, 1
		best := dist[0][1]
		for i := 0; i < len(active); i++ {
			for j := i + 1; j < len(active); j++ {
				if dist[i][j] < best {
					best = dist[i][j]
					bi, bj = i, j
				}
			}
		}

		c1, c2 := active[bi], active[bj]
		if c1 > c2 {
			c1, c2 = c2, c1
		}
		mergedSize := sizes[bi] + sizes[bj]
		steps = append(steps, Step{
			Cluster1:      c1,
			Cluster2:      c2,
			Dissimilarity: best,
			Size:          mergedSize,
		})

		// Replace position bi with the merged cluster: unweighted average
		// of member distances, i.e. weighted by leaf counts.
		wi := float64(sizes[bi])
		wj := float64(sizes[bj])
		for m := 0; m < len(active); m++ {
			if m == bi || m == bj {
				continue
			}
			d := (wi*dist[bi][m] + wj*dist[bj][m]) / (wi + wj)
			dist[bi][m] = d
			dist[m][bi] = d
		}
		active[bi] = n + len(steps) - 1
		sizes[bi] = mergedSize

		// Drop position bj by swapping in the last position.
		last := len(active) - 1
		if bj != last {
			active[bj] = active[last]
			sizes[bj] = sizes[last]
			for m := 0; m < len(active); m++ {
				dist[bj][m] = dist[last][m]
				dist[m][bj] = dist[m][last]
			}
			dist[bj][bj] = 0
		}
		active = active[:last]
		sizes = sizes[:last]
	}

	return Dendrogram{Steps: steps}
}

// Root returns the id of the root cluster for n leaves,
// or -1 for an empty dendrogram.
func (d Dendrogram) Root(n int) int {
	if len(d.Steps) == 0 {
		return -1
	}
	return n + len(d.Steps) - 1
}

// Order extracts the leaf order by depth-first pre-order traversal from the
// root, visiting Cluster1 before Cluster2. Sequences merged earliest in the
// dendrogram come out adjacent, which is what makes similar sequences
// cluster visually. Returns the identity order when the dendrogram is empty.
func (d Dendrogram) Order(n int) []int {
	order := make([]int, 0, n)
	if len(d.Steps) == 0 {
		for i := 0; i < n; i++ {
			order = append(order, i)
		}
		return order
	}

	var walk func(cluster int)
	walk = func(cluster int) {
		if cluster < n {
			order = append(order, cluster)
			return
		}
		step := d.Steps[cluster-n]
		walk(step.Cluster1)
		walk(step.Cluster2)
	}
	walk(d.Root(n))
	return order
}
