package systems

import "math"

// Link is an edge of the proximity graph between particles I < J.
type Link struct {
	I, J    int
	Dist    float32
	Opacity float32 // 1 - Dist/threshold, in (0, 1]
}

// LinkFinder enumerates the proximity graph of a particle set.
type LinkFinder interface {
	// Find appends every pair closer than threshold to dst, ordered by I then J.
	Find(dst []Link, ps []Particle, threshold float32) []Link
}

// NewLinkFinder returns the finder for an index kind: "grid", "parallel",
// or brute force for anything else.
func NewLinkFinder(index string) LinkFinder {
	switch index {
	case "grid":
		return NewGridIndex()
	case "parallel":
		return NewParallelBruteForce()
	}
	return BruteForce{}
}

// BruteForce checks all N(N-1)/2 pairs.
type BruteForce struct{}

// Find implements LinkFinder.
func (BruteForce) Find(dst []Link, ps []Particle, threshold float32) []Link {
	return Links(dst, ps, threshold)
}

// Links appends every unordered pair of ps closer than threshold to dst.
// Each pair is visited once: i over all particles, j over indices above i.
func Links(dst []Link, ps []Particle, threshold float32) []Link {
	if threshold <= 0 {
		return dst
	}
	for i := 0; i < len(ps); i++ {
		a := &ps[i]
		for j := i + 1; j < len(ps); j++ {
			if l, ok := linkBetween(a, &ps[j], threshold); ok {
				l.I, l.J = i, j
				dst = append(dst, l)
			}
		}
	}
	return dst
}

// linkBetween tests one pair against the threshold.
func linkBetween(a, b *Particle, threshold float32) (Link, bool) {
	d := Distance(a, b)
	if d >= float64(threshold) {
		return Link{}, false
	}
	return Link{
		Dist:    float32(d),
		Opacity: float32(1 - d/float64(threshold)),
	}, true
}

// Distance returns the Euclidean distance between two particles.
func Distance(a, b *Particle) float64 {
	dx := float64(a.X) - float64(b.X)
	dy := float64(a.Y) - float64(b.Y)
	return math.Sqrt(dx*dx + dy*dy)
}
