package operators

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingSource counts the draws made through a rand.Rand.
type countingSource struct {
	rand.Source
	draws int
}

func (s *countingSource) Int63() int64 {
	s.draws++
	return s.Source.Int63()
}

func TestScrambleBetween_DrawsForEveryPosition(t *testing.T) {
	cases := []struct{ a, b int }{{0, 0}, {2, 3}, {1, 6}, {0, 9}}
	for _, tc := range cases {
		src := &countingSource{Source: rand.NewSource(4)}
		perm := Identity(10)
		scrambleBetween(perm, tc.a, tc.b, rand.New(src))

		// One swap per position of [a..b], the last one included.
		assert.GreaterOrEqual(t, src.draws, tc.b-tc.a+1, "range [%d..%d]", tc.a, tc.b)
		require.NoError(t, ValidatePermutation(perm))
		for i, v := range perm {
			if i < tc.a || i > tc.b {
				assert.Equal(t, i+1, v, "position %d outside [%d..%d] moved", i, tc.a, tc.b)
			}
		}
	}
}
