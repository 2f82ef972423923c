// Package sppoint provides a fixed-dimension point with an identity index
// and the squared Euclidean (L2) distance between points.
package sppoint

import (
	"cmp"
	"slices"
	"strconv"

	"github.com/pkg/errors"
)

var (
	ErrInvalidDimension  = errors.New("point dimension must be positive")
	ErrInvalidIndex      = errors.New("point index must be non-negative")
	ErrDimensionMismatch = errors.New("points have different dimensions")
	ErrInvalidK          = errors.New("k must be positive")
)

// Point is a coordinate vector with an index. The coordinates are owned by
// the point: New and Copy never share them with the caller.
type Point struct {
	coords []float64
	index  int
}

// New creates a point with a copy of data as its coordinates; the dimension
// is len(data).
func New(data []float64, index int) (*Point, error) {
	if len(data) == 0 {
		return nil, ErrInvalidDimension
	}
	if index < 0 {
		return nil, errors.Wrap(ErrInvalidIndex, "index "+strconv.Itoa(index))
	}
	return &Point{coords: slices.Clone(data), index: index}, nil
}

// Copy returns an independent point with the same coordinates and index.
func (p *Point) Copy() *Point {
	return &Point{coords: slices.Clone(p.coords), index: p.index}
}

// Dim returns the number of coordinates.
func (p *Point) Dim() int { return len(p.coords) }

// Index returns the identity index given at creation.
func (p *Point) Index() int { return p.index }

// Coord returns the coordinate on the given axis. Panics if the axis is not
// in [0, Dim()).
func (p *Point) Coord(axis int) float64 { return p.coords[axis] }

// L2SquaredDistance returns (p_1-q_1)^2 + ... + (p_dim-q_dim)^2.
func L2SquaredDistance(p, q *Point) (float64, error) {
	if len(p.coords) != len(q.coords) {
		return 0, errors.Wrap(ErrDimensionMismatch,
			strconv.Itoa(len(p.coords))+" != "+strconv.Itoa(len(q.coords)))
	}
	var distance float64
	for i, c := range p.coords {
		d := c - q.coords[i]
		distance += d * d
	}
	return distance, nil
}

// KNearest returns up to k points closest to query, nearest first. Points
// at the same distance are ordered by index.
func KNearest(query *Point, points []*Point, k int) ([]*Point, error) {
	if k <= 0 {
		return nil, ErrInvalidK
	}
	type candidate struct {
		point    *Point
		distance float64
	}
	candidates := make([]candidate, 0, len(points))
	for _, p := range points {
		d, err := L2SquaredDistance(query, p)
		if err != nil {
			return nil, errors.WithMessage(err, "point "+strconv.Itoa(p.index))
		}
		candidates = append(candidates, candidate{p, d})
	}
	slices.SortStableFunc(candidates, func(a, b candidate) int {
		return cmp.Or(cmp.Compare(a.distance, b.distance), cmp.Compare(a.point.index, b.point.index))
	})
	result := make([]*Point, 0, min(k, len(candidates)))
	for _, c := range candidates[:min(k, len(candidates))] {
		result = append(result, c.point)
	}
	return result, nil
}
