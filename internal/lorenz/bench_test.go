package lorenz

import "testing"

var sinkState State

func BenchmarkDerivative(b *testing.B) {
	p := DefaultParams()
	s := State{X: 1, Y: 1, Z: 1}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sinkState = Derivative(s, p)
	}
}

func BenchmarkStep(b *testing.B) {
	p := DefaultParams()
	s := State{X: 0, Y: 1, Z: 0}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s = Step(s, p, 0.01)
	}
	sinkState = s
}
