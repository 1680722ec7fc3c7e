package xterm256

import "errors"

var (
	// ErrDistanceUnavailable is returned when no perceptual distance
	// function is available to compute colour distances.
	ErrDistanceUnavailable = errors.New("colour distance capability unavailable")

	// ErrEmptyPalette is returned when an operation requires at least one
	// candidate colour.
	ErrEmptyPalette = errors.New("palette contains no colours")
)

// DistanceFunc measures the perceptual distance between two colours. It must
// be symmetric and non-negative for distinct colours.
type DistanceFunc func(a, b *Color) float64

// CIEDE2000 is the default perceptual distance: Delta-E 2000 over CIE-Lab.
func CIEDE2000(a, b *Color) float64 {
	return a.Colorful().DistanceCIEDE2000(b.Colorful())
}

// Matrix holds pairwise perceptual distances for a set of colours. Both
// directions of each pair are stored, so Distance(a, b) == Distance(b, a).
// The diagonal is absent. A Matrix is immutable after construction and safe
// for concurrent readers.
type Matrix struct {
	dist map[*Color]map[*Color]float64
}

// BuildMatrix computes the pairwise distance matrix for the given colours
// using dist. Each unordered pair is measured exactly once and stored in
// both directions. A nil dist fails before any computation with
// ErrDistanceUnavailable. Duplicate colours in the input are the caller's
// responsibility to remove.
func BuildMatrix(colors []*Color, dist DistanceFunc) (*Matrix, error) {
	if dist == nil {
		return nil, ErrDistanceUnavailable
	}
	if len(colors) == 0 {
		return nil, ErrEmptyPalette
	}

	m := &Matrix{dist: make(map[*Color]map[*Color]float64, len(colors))}
	for _, c := range colors {
		m.dist[c] = make(map[*Color]float64, len(colors)-1)
	}

	for i, a := range colors {
		for _, b := range colors[i+1:] {
			d := dist(a, b)
			m.dist[a][b] = d
			m.dist[b][a] = d
		}
	}

	return m, nil
}

// Distance returns the stored distance between a and b. The second return
// is false when the pair is not part of the matrix, including when a == b.
func (m *Matrix) Distance(a, b *Color) (float64, bool) {
	d, ok := m.dist[a][b]
	return d, ok
}

// Len returns the number of colours the matrix was built over.
func (m *Matrix) Len() int { return len(m.dist) }
