package sppoint

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustNew(t *testing.T, data []float64, index int) *Point {
	t.Helper()
	p, err := New(data, index)
	require.NoError(t, err)
	return p
}

func Test_New(t *testing.T) {
	tests := []struct {
		name  string
		data  []float64
		index int
		wants error
	}{
		{"one_dim", []float64{1}, 0, nil},
		{"three_dim", []float64{1, -2, 3.5}, 7, nil},
		{"nil_data", nil, 0, ErrInvalidDimension},
		{"empty_data", []float64{}, 1, ErrInvalidDimension},
		{"negative_index", []float64{1}, -1, ErrInvalidIndex},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := New(tt.data, tt.index)
			if tt.wants != nil {
				assert.Equal(t, tt.wants, errors.Cause(err))
				assert.Nil(t, p)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, len(tt.data), p.Dim())
			assert.Equal(t, tt.index, p.Index())
			for i, c := range tt.data {
				assert.Equal(t, c, p.Coord(i))
			}
		})
	}
}

func Test_New_OwnsCoordinates(t *testing.T) {
	data := []float64{1, 2}
	p := mustNew(t, data, 0)
	data[0] = 100
	assert.Equal(t, 1.0, p.Coord(0))
}

func Test_Point_Copy(t *testing.T) {
	p := mustNew(t, []float64{1, 2, 3}, 4)
	c := p.Copy()
	assert.NotSame(t, p, c)
	assert.Equal(t, p.Dim(), c.Dim())
	assert.Equal(t, p.Index(), c.Index())
	d, err := L2SquaredDistance(p, c)
	require.NoError(t, err)
	assert.Zero(t, d)

	c.coords[0] = 10
	assert.Equal(t, 1.0, p.Coord(0), "copy must not share coordinates")
}

func Test_Point_Coord_OutOfRange(t *testing.T) {
	p := mustNew(t, []float64{1, 2}, 0)
	assert.Panics(t, func() { p.Coord(2) })
	assert.Panics(t, func() { p.Coord(-1) })
}

func Test_L2SquaredDistance(t *testing.T) {
	tests := []struct {
		name  string
		p, q  []float64
		wants float64
	}{
		{"same", []float64{1, 2}, []float64{1, 2}, 0},
		{"one_dim", []float64{-1}, []float64{2}, 9},
		{"two_dim", []float64{0, 0}, []float64{3, 4}, 25},
		{"three_dim", []float64{1, 2, 3}, []float64{4, 6, 3}, 25},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, q := mustNew(t, tt.p, 0), mustNew(t, tt.q, 1)
			d, err := L2SquaredDistance(p, q)
			require.NoError(t, err)
			assert.Equal(t, tt.wants, d)
			back, err := L2SquaredDistance(q, p)
			require.NoError(t, err)
			assert.Equal(t, d, back, "distance is symmetric")
		})
	}
	t.Run("mismatch", func(t *testing.T) {
		_, err := L2SquaredDistance(mustNew(t, []float64{1}, 0), mustNew(t, []float64{1, 2}, 1))
		assert.Equal(t, ErrDimensionMismatch, errors.Cause(err))
		assert.ErrorContains(t, err, "1 != 2")
	})
}

func Test_KNearest(t *testing.T) {
	query := mustNew(t, []float64{0, 0}, 0)
	points := []*Point{
		mustNew(t, []float64{3, 0}, 1),  // 9
		mustNew(t, []float64{1, 1}, 2),  // 2
		mustNew(t, []float64{0, -3}, 3), // 9
		mustNew(t, []float64{-1, 1}, 4), // 2
		mustNew(t, []float64{0, 1}, 5),  // 1
	}
	indexes := func(ps []*Point) []int {
		var r []int
		for _, p := range ps {
			r = append(r, p.Index())
		}
		return r
	}
	tests := []struct {
		k     int
		wants []int
	}{
		{1, []int{5}},
		{3, []int{5, 2, 4}},
		{5, []int{5, 2, 4, 1, 3}},
		{10, []int{5, 2, 4, 1, 3}},
	}
	for _, tt := range tests {
		got, err := KNearest(query, points, tt.k)
		require.NoError(t, err)
		assert.Equal(t, tt.wants, indexes(got), "k=%d", tt.k)
	}

	t.Run("ties_by_index", func(t *testing.T) {
		swapped := []*Point{points[3], points[1]}
		got, err := KNearest(query, swapped, 2)
		require.NoError(t, err)
		assert.Equal(t, []int{2, 4}, indexes(got))
	})
	t.Run("empty", func(t *testing.T) {
		got, err := KNearest(query, nil, 3)
		require.NoError(t, err)
		assert.Empty(t, got)
	})
	t.Run("invalid_k", func(t *testing.T) {
		for _, k := range []int{0, -1} {
			_, err := KNearest(query, points, k)
			assert.Equal(t, ErrInvalidK, err)
		}
	})
	t.Run("mismatch", func(t *testing.T) {
		_, err := KNearest(query, append(points[:1:1], mustNew(t, []float64{1}, 9)), 1)
		assert.Equal(t, ErrDimensionMismatch, errors.Cause(err))
		assert.ErrorContains(t, err, "point 9")
	})
	t.Run("input_unchanged", func(t *testing.T) {
		assert.Equal(t, []int{1, 2, 3, 4, 5}, indexes(points))
	})
}
