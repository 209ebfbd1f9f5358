package mathx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRound(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		v    float64
		n    int
		want float64
	}{
		{name: "two decimals", v: 123.456, n: 2, want: 123.46},
		{name: "one decimal", v: 87.349, n: 1, want: 87.3},
		{name: "zero decimals", v: 2.5, n: 0, want: 3},
		{name: "negative value", v: -1.005, n: 1, want: -1},
		{name: "negative places keeps value", v: 1.23456, n: -1, want: 1.23456},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.InDelta(t, tt.want, Round(tt.v, tt.n), 1e-9)
		})
	}
}

func TestClamp(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 60.0, Clamp(42, 60, 99))
	assert.Equal(t, 99.0, Clamp(120, 60, 99))
	assert.Equal(t, 75.5, Clamp(75.5, 60, 99))
}
