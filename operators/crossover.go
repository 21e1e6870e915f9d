package operators

import "math/rand"

// unset marks a child slot that has not received a gene yet. Genes are 1..N.
const unset = 0

// Cross applies the crossover selected by method to p1 and p2 and returns two
// children. Unknown methods fall back to PMX.
//
// Contract: p1 and p2 are permutations of 1..N of equal length. Neither is
// modified. A nil rng uses the default seed.
func Cross(method Crossover, p1, p2 []int, rng *rand.Rand) ([]int, []int) {
	rng = orDefault(rng)
	switch method {
	case PMX:
		return PartiallyMapped(p1, p2, rng)
	case OX:
		return Order(p1, p2, rng)
	case CX:
		return Cycle(p1, p2, rng)
	case SegmentRecombination:
		return Segment(p1, p2, rng)
	case OrderBased:
		return OrderBasedCross(p1, p2, rng)
	case EdgeRecombination:
		return Edge(p1, p2, rng)
	default:
		return PartiallyMapped(p1, p2, rng)
	}
}

// PartiallyMapped is PMX. Two cut points a ≤ b are drawn; child1 inherits
// p1[a..b] and child2 inherits p2[a..b]. Genes of the other parent's segment
// that are not yet placed follow the mapping chain between the parents to a
// free slot, and every remaining slot takes the other parent's gene.
func PartiallyMapped(p1, p2 []int, rng *rand.Rand) ([]int, []int) {
	n := len(p1)
	if n == 0 {
		return []int{}, []int{}
	}
	a, b := cutPoints(n, rng)

	return pmxChild(p1, p2, a, b), pmxChild(p2, p1, a, b)
}

// pmxChild builds one PMX child that keeps donor[a..b] in place.
func pmxChild(donor, other []int, a, b int) []int {
	n := len(donor)
	child := make([]int, n)
	placed := make([]bool, n+1)
	for i := a; i <= b; i++ {
		child[i] = donor[i]
		placed[donor[i]] = true
	}

	otherPos := positions(other)
	var i, pos int
	for i = a; i <= b; i++ {
		v := other[i]
		if placed[v] {
			continue
		}
		// Follow donor[pos] → its position in other until we leave the segment.
		pos = i
		for pos >= a && pos <= b {
			pos = otherPos[donor[pos]]
		}
		child[pos] = v
		placed[v] = true
	}

	for i = 0; i < n; i++ {
		if child[i] == unset {
			child[i] = other[i]
		}
	}

	return child
}

// Order is OX. child1 keeps p1[a..b]; the remaining slots, starting right
// after the segment and wrapping around, receive p2's genes in their cyclic
// order from b+1, skipping genes already present. child2 mirrors this.
func Order(p1, p2 []int, rng *rand.Rand) ([]int, []int) {
	n := len(p1)
	if n == 0 {
		return []int{}, []int{}
	}
	a, b := cutPoints(n, rng)

	return oxChild(p1, p2, a, b), oxChild(p2, p1, a, b)
}

func oxChild(donor, other []int, a, b int) []int {
	n := len(donor)
	child := make([]int, n)
	used := make([]bool, n+1)
	for i := a; i <= b; i++ {
		child[i] = donor[i]
		used[donor[i]] = true
	}

	slot := (b + 1) % n
	for k := 0; k < n; k++ {
		v := other[(b+1+k)%n]
		if used[v] {
			continue
		}
		child[slot] = v
		used[v] = true
		slot = (slot + 1) % n
	}

	return child
}

// Cycle is CX. Positions are partitioned into cycles by following
// i → position in p1 of p2[i]. Even-numbered cycles copy p1 into child1 and
// p2 into child2; odd-numbered cycles swap the donors. CX draws no random
// numbers; rng is accepted for a uniform signature.
func Cycle(p1, p2 []int, _ *rand.Rand) ([]int, []int) {
	n := len(p1)
	c1, c2 := make([]int, n), make([]int, n)
	pos1 := positions(p1)
	visited := make([]bool, n)

	var cycle int
	for start := 0; start < n; start++ {
		if visited[start] {
			continue
		}
		for j := start; !visited[j]; j = pos1[p2[j]] {
			visited[j] = true
			if cycle%2 == 0 {
				c1[j], c2[j] = p1[j], p2[j]
			} else {
				c1[j], c2[j] = p2[j], p1[j]
			}
		}
		cycle++
	}

	return c1, c2
}

// Segment splits positions into thirds [0,n/3), [n/3,2n/3), [2n/3,n).
// child1 takes the outer thirds from p1 and the middle third from p2;
// child2 the reverse. Each child is then repaired: missing genes, in
// ascending order, replace the first occurrence of each duplicated gene.
// Segment draws no random numbers.
func Segment(p1, p2 []int, _ *rand.Rand) ([]int, []int) {
	n := len(p1)
	lo, hi := n/3, 2*n/3

	return segmentChild(p1, p2, lo, hi), segmentChild(p2, p1, lo, hi)
}

func segmentChild(outer, middle []int, lo, hi int) []int {
	n := len(outer)
	child := make([]int, n)
	copy(child, outer)
	copy(child[lo:hi], middle[lo:hi])
	repairPermutation(child)

	return child
}

// repairPermutation turns a slice of genes in 1..N with duplicates into a
// permutation. Scanning left to right, each extra copy of a gene is replaced
// by the smallest gene not yet present.
func repairPermutation(child []int) {
	n := len(child)
	count := make([]int, n+1)
	for _, v := range child {
		count[v]++
	}

	missing := 1
	nextMissing := func() int {
		for count[missing] > 0 {
			missing++
		}
		return missing
	}

	for i, v := range child {
		if count[v] <= 1 {
			continue
		}
		m := nextMissing()
		count[v]--
		count[m]++
		child[i] = m
	}
}

// OrderBasedCross is OBX. Each position is selected with probability 1/2
// (at least one always is). child1 keeps p1's genes at the selected
// positions and fills the rest with p2's genes in p2's order, skipping used
// ones; child2 does the same with the parents exchanged.
func OrderBasedCross(p1, p2 []int, rng *rand.Rand) ([]int, []int) {
	n := len(p1)
	if n == 0 {
		return []int{}, []int{}
	}
	mask := make([]bool, n)
	var picked bool
	for i := range mask {
		if rng.Intn(2) == 0 {
			mask[i] = true
			picked = true
		}
	}
	if !picked {
		mask[rng.Intn(n)] = true
	}

	return obxChild(p1, p2, mask), obxChild(p2, p1, mask)
}

func obxChild(keep, fill []int, mask []bool) []int {
	n := len(keep)
	child := make([]int, n)
	used := make([]bool, n+1)
	for i, sel := range mask {
		if sel {
			child[i] = keep[i]
			used[keep[i]] = true
		}
	}

	j := 0
	for i := range child {
		if mask[i] {
			continue
		}
		for used[fill[j]] {
			j++
		}
		child[i] = fill[j]
		used[fill[j]] = true
	}

	return child
}

// Edge is ERX. An adjacency table holds, per gene, its cyclic neighbors in
// both parents. child1 starts at a random gene of p1, child2 at a random
// gene of p2. Each step moves to the unused neighbor with the fewest unused
// neighbors of its own, ties going to the earlier entry in the table; a gene
// with no unused neighbors continues at a random unused gene.
func Edge(p1, p2 []int, rng *rand.Rand) ([]int, []int) {
	n := len(p1)
	if n == 0 {
		return []int{}, []int{}
	}
	adj := edgeTable(p1, p2)

	return erxChild(adj, p1[rng.Intn(n)], rng), erxChild(adj, p2[rng.Intn(n)], rng)
}

// edgeTable returns adj where adj[v] lists v's distinct neighbors, first
// from p1 (left, right) then from p2 (left, right).
func edgeTable(p1, p2 []int) [][]int {
	n := len(p1)
	adj := make([][]int, n+1)
	add := func(v, u int) {
		if u == v {
			return
		}
		for _, w := range adj[v] {
			if w == u {
				return
			}
		}
		adj[v] = append(adj[v], u)
	}
	for _, p := range [][]int{p1, p2} {
		for i, v := range p {
			add(v, p[(i-1+n)%n])
			add(v, p[(i+1)%n])
		}
	}

	return adj
}

func erxChild(adj [][]int, start int, rng *rand.Rand) []int {
	n := len(adj) - 1
	child := make([]int, 0, n)
	used := make([]bool, n+1)

	degree := func(v int) int {
		var d int
		for _, u := range adj[v] {
			if !used[u] {
				d++
			}
		}
		return d
	}

	cur := start
	for {
		child = append(child, cur)
		used[cur] = true
		if len(child) == n {
			return child
		}

		next, best := unset, n+1
		for _, u := range adj[cur] {
			if used[u] {
				continue
			}
			if d := degree(u); d < best {
				next, best = u, d
			}
		}
		if next == unset {
			remaining := make([]int, 0, n-len(child))
			for v := 1; v <= n; v++ {
				if !used[v] {
					remaining = append(remaining, v)
				}
			}
			next = remaining[rng.Intn(len(remaining))]
		}
		cur = next
	}
}
