package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tphakala/go-spline/internal/geom"
)

func TestSearch(t *testing.T) {
	points := []geom.Point{{X: 0}, {X: 1}, {X: 2.5}, {X: 4}, {X: 10}}

	tests := []struct {
		name      string
		key       float64
		wantIndex int
		wantExact bool
	}{
		{"before first", -1, -1, false},
		{"first", 0, 0, true},
		{"inside first interval", 0.5, 0, false},
		{"interior exact", 2.5, 2, true},
		{"inside middle interval", 3, 2, false},
		{"last", 10, 4, true},
		{"after last", 11, 4, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			index, exact := Search(points, tt.key)
			assert.Equal(t, tt.wantIndex, index)
			assert.Equal(t, tt.wantExact, exact)
		})
	}
}

func TestSearch_Empty(t *testing.T) {
	index, exact := Search(nil, 1)
	assert.Equal(t, -1, index)
	assert.False(t, exact)
}

// TestSearch_EveryPoint verifies every abscissa is found exactly and every
// midpoint lands in its interval.
func TestSearch_EveryPoint(t *testing.T) {
	points := make([]geom.Point, 101)
	for i := range points {
		points[i] = geom.Pt(float64(i)*0.75, 0)
	}

	for i, p := range points {
		index, exact := Search(points, p.X)
		assert.True(t, exact, "x=%g", p.X)
		assert.Equal(t, i, index)

		index, exact = Search(points, p.X+0.3)
		assert.False(t, exact, "x=%g", p.X+0.3)
		assert.Equal(t, i, index)
	}
}
