package xterm256

import (
	"fmt"
	"math"
)

// differentiatedConfig collects the optional knobs for FindDifferentiated.
type differentiatedConfig struct {
	matrix  *Matrix
	dist    DistanceFunc
	minDist float64
}

// DifferentiatedOption configures FindDifferentiated.
type DifferentiatedOption func(*differentiatedConfig)

// WithMatrix supplies a precomputed distance matrix, avoiding the O(k²)
// distance computation. The matrix must cover every colour in the palette.
func WithMatrix(m *Matrix) DifferentiatedOption {
	return func(cfg *differentiatedConfig) { cfg.matrix = m }
}

// WithDistanceFunc overrides the distance function used when no matrix is
// supplied. The default is CIEDE2000.
func WithDistanceFunc(dist DistanceFunc) DifferentiatedOption {
	return func(cfg *differentiatedConfig) { cfg.dist = dist }
}

// WithMinDistance requires every selected colour to keep at least the given
// distance from every other member of the subset. An infeasible threshold
// shrinks the result rather than failing.
func WithMinDistance(min float64) DifferentiatedOption {
	return func(cfg *differentiatedConfig) { cfg.minDist = min }
}

// FindDifferentiated selects up to n colours from the palette that are
// mutually as distinguishable as possible under the perceptual distance.
//
// The selection is a greedy farthest-point heuristic: the globally
// farthest-apart pair seeds the subset, then each round adds the candidate
// with the highest mean distance to the current members. Ties are broken by
// palette iteration order, so the result is deterministic for a fixed input
// order. When a minimum distance is set and no candidate satisfies it, the
// growth phase stops early and the result is smaller than n; this is
// documented behaviour, not an error.
//
// The returned slice has set semantics: membership only, no meaningful order.
func FindDifferentiated(colors []*Color, n int, opts ...DifferentiatedOption) ([]*Color, error) {
	cfg := differentiatedConfig{
		dist:    CIEDE2000,
		minDist: math.Inf(-1),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	if n < 0 {
		return nil, fmt.Errorf("subset size must be non-negative, got %d", n)
	}
	if len(colors) == 0 {
		if n == 0 {
			return nil, nil
		}
		return nil, fmt.Errorf("cannot select %d colours: %w", n, ErrEmptyPalette)
	}
	if n == 0 {
		return nil, nil
	}

	matrix := cfg.matrix
	if matrix == nil {
		var err error
		matrix, err = BuildMatrix(colors, cfg.dist)
		if err != nil {
			return nil, err
		}
	}

	subset := make([]*Color, 0, n)
	inSubset := make(map[*Color]bool, n)
	add := func(c *Color) {
		subset = append(subset, c)
		inSubset[c] = true
	}

	// Seed with the globally farthest-apart pair. On ties the first pair in
	// iteration order wins.
	var seedA, seedB *Color
	maxDist := 0.0
	for i, a := range colors {
		for _, b := range colors[i+1:] {
			if d, ok := matrix.Distance(a, b); ok && d > maxDist {
				maxDist = d
				seedA, seedB = a, b
			}
		}
	}
	if seedA != nil {
		add(seedA)
		if len(subset) < n {
			add(seedB)
		}
	}

	// Grow greedily: each round admits the eligible candidate with the
	// highest mean distance to the current members. A candidate closer than
	// minDist to any member is ineligible for the round. When no candidate
	// is eligible the phase terminates, yielding fewer than n colours.
	for len(subset) < n {
		best := (*Color)(nil)
		bestAvg := math.Inf(-1)

		for _, v := range colors {
			if inSubset[v] {
				continue
			}

			sum := 0.0
			belowMin := false
			for _, member := range subset {
				d, ok := matrix.Distance(v, member)
				if !ok {
					return nil, fmt.Errorf("matrix does not cover pair (%s, %s)", v.Name(), member.Name())
				}
				if d < cfg.minDist {
					belowMin = true
					break
				}
				sum += d
			}
			if belowMin {
				continue
			}

			// A candidate facing an empty subset has mean 0; this admits the
			// first colour of a single-entry or zero-distance palette.
			avg := 0.0
			if len(subset) > 0 {
				avg = sum / float64(len(subset))
			}
			if avg > bestAvg {
				bestAvg = avg
				best = v
			}
		}

		if best == nil {
			break
		}
		add(best)
	}

	return subset, nil
}
