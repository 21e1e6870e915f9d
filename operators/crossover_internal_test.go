package operators

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Classic textbook parents with the segment fixed at positions 3..5.
var (
	textbookP1 = []int{1, 2, 3, 4, 5, 6, 7, 8}
	textbookP2 = []int{3, 7, 5, 1, 6, 8, 2, 4}
)

func TestPMXChild_FollowsMappingChain(t *testing.T) {
	// 1 maps via 4 to slot 7; 8 maps via 6 and 5 to slot 2.
	assert.Equal(t, []int{3, 7, 8, 4, 5, 6, 2, 1}, pmxChild(textbookP1, textbookP2, 3, 5))
}

func TestOXChild_WrapsAfterSegment(t *testing.T) {
	assert.Equal(t, []int{7, 1, 8, 4, 5, 6, 2, 3}, oxChild(textbookP1, textbookP2, 3, 5))
}

func TestOXChild_FullSegmentCopiesDonor(t *testing.T) {
	assert.Equal(t, textbookP1, oxChild(textbookP1, textbookP2, 0, 7))
}

func TestEdgeTable_MergesParentNeighbors(t *testing.T) {
	adj := edgeTable([]int{1, 2, 3, 4}, []int{1, 3, 2, 4})
	assert.Equal(t, []int{4, 2, 3}, adj[1])
	assert.Equal(t, []int{1, 3, 4}, adj[2])
}

func TestERXChild_FollowsSharedEdges(t *testing.T) {
	// Identical parents: every gene has two neighbors and the greedy walk
	// from 1 reproduces the cycle in one direction.
	p := []int{1, 2, 3, 4, 5}
	child := erxChild(edgeTable(p, p), 1, NewRand(1))
	assert.Len(t, child, 5)
	for i := 1; i < len(child); i++ {
		d := child[i] - child[i-1]
		assert.Contains(t, []int{1, -1, 4, -4}, d, "child %v broke a parent edge", child)
	}
}

func TestRepairPermutation(t *testing.T) {
	c := []int{2, 2, 2, 1}
	repairPermutation(c)
	assert.Equal(t, []int{3, 4, 2, 1}, c)
}
