package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/iimkit/iim/matrix"
)

// benchOperator builds a strictly diagonally dominant n×n Dense so LU
// never hits a zero pivot during benchmarking.
func benchOperator(n int) *matrix.Dense {
	rng := rand.New(rand.NewSource(1)) // fixed seed for stable inputs
	rows := make([][]float64, n)
	for i := 0; i < n; i++ {
		rows[i] = make([]float64, n)
		for j := 0; j < n; j++ {
			rows[i][j] = rng.Float64() / float64(n)
		}
		rows[i][i] += 1.0 // dominance margin
	}
	m, err := matrix.NewDenseFromRows(rows)
	if err != nil {
		panic(err)
	}

	return m
}

// BenchmarkMul measures the dense multiplication kernel at model scale.
func BenchmarkMul(b *testing.B) {
	m := benchOperator(64)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := matrix.Mul(m, m); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkInverse measures the resolvent-construction hot path.
func BenchmarkInverse(b *testing.B) {
	m := benchOperator(64)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := matrix.Inverse(m); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkMatVec measures perturbation propagation through a fixed operator.
func BenchmarkMatVec(b *testing.B) {
	m := benchOperator(128)
	x := make([]float64, 128)
	x[3] = 0.6 // sparse perturbation, as in practice
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := matrix.MatVec(m, x); err != nil {
			b.Fatal(err)
		}
	}
}
