package operators_test

import (
	"testing"

	"github.com/katalvlaran/lvroute/operators"
)

const benchN = 200

func BenchmarkCross(b *testing.B) {
	rng := operators.NewRand(1)
	p1 := operators.RandomPermutation(benchN, rng)
	p2 := operators.RandomPermutation(benchN, rng)
	for _, m := range allCrossovers {
		b.Run(m.String(), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				operators.Cross(m, p1, p2, rng)
			}
		})
	}
}

func BenchmarkMutate(b *testing.B) {
	rng := operators.NewRand(1)
	p := operators.RandomPermutation(benchN, rng)
	for _, m := range allMutations {
		b.Run(m.String(), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				operators.Mutate(m, p, rng)
			}
		})
	}
}
