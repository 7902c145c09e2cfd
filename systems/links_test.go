package systems

import (
	"math"
	"testing"
)

func TestLinksThreshold(t *testing.T) {
	tests := []struct {
		name        string
		ps          []Particle
		threshold   float32
		wantLinks   int
		wantOpacity float64
	}{
		{"within threshold", []Particle{{X: 0, Y: 0}, {X: 100, Y: 0}}, 150, 1, 1 - 100.0/150.0},
		{"beyond threshold", []Particle{{X: 0, Y: 0}, {X: 200, Y: 0}}, 150, 0, 0},
		{"exactly threshold", []Particle{{X: 0, Y: 0}, {X: 150, Y: 0}}, 150, 0, 0},
		{"diagonal", []Particle{{X: 0, Y: 0}, {X: 30, Y: 40}}, 100, 1, 0.5},
		{"coincident", []Particle{{X: 5, Y: 5}, {X: 5, Y: 5}}, 150, 1, 1},
		{"zero threshold", []Particle{{X: 0, Y: 0}, {X: 0, Y: 0}}, 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			links := Links(nil, tt.ps, tt.threshold)
			if len(links) != tt.wantLinks {
				t.Fatalf("got %d links, want %d", len(links), tt.wantLinks)
			}
			if tt.wantLinks == 0 {
				return
			}
			l := links[0]
			if l.I != 0 || l.J != 1 {
				t.Errorf("link = (%d, %d), want (0, 1)", l.I, l.J)
			}
			if math.Abs(float64(l.Opacity)-tt.wantOpacity) > 1e-5 {
				t.Errorf("opacity = %v, want %v", l.Opacity, tt.wantOpacity)
			}
		})
	}
}

func TestLinksDegenerateFields(t *testing.T) {
	if got := Links(nil, nil, 150); len(got) != 0 {
		t.Errorf("empty field produced %d links", len(got))
	}
	if got := Links(nil, []Particle{{X: 1, Y: 1}}, 150); len(got) != 0 {
		t.Errorf("single particle produced %d links", len(got))
	}
}

func TestLinksEachPairOnce(t *testing.T) {
	// Five particles within threshold of each other: C(5,2) = 10 pairs
	ps := []Particle{{X: 0}, {X: 1}, {X: 2}, {X: 3}, {X: 4}}
	links := Links(nil, ps, 150)
	if len(links) != 10 {
		t.Fatalf("got %d links, want 10", len(links))
	}

	seen := make(map[[2]int]bool)
	for _, l := range links {
		if l.I >= l.J {
			t.Errorf("link (%d, %d) is not ordered", l.I, l.J)
		}
		key := [2]int{l.I, l.J}
		if seen[key] {
			t.Errorf("pair (%d, %d) visited twice", l.I, l.J)
		}
		seen[key] = true
	}
}

func TestLinksIffCloser(t *testing.T) {
	f := newTestField(9)
	f.Init(500, 400, 80)
	ps := f.Particles()
	const threshold = 90

	linked := make(map[[2]int]Link)
	for _, l := range Links(nil, ps, threshold) {
		linked[[2]int{l.I, l.J}] = l
	}

	for i := range ps {
		for j := i + 1; j < len(ps); j++ {
			d := Distance(&ps[i], &ps[j])
			l, ok := linked[[2]int{i, j}]
			if ok != (d < threshold) {
				t.Fatalf("pair (%d, %d) at distance %v: linked = %v", i, j, d, ok)
			}
			if ok && math.Abs(float64(l.Opacity)-(1-d/threshold)) > 1e-5 {
				t.Errorf("pair (%d, %d) opacity %v, want %v", i, j, l.Opacity, 1-d/threshold)
			}
		}
	}
}

func TestLinksAppendsToDst(t *testing.T) {
	ps := []Particle{{X: 0}, {X: 10}}
	dst := []Link{{I: 7, J: 8}}
	dst = Links(dst, ps, 150)
	if len(dst) != 2 || dst[0].I != 7 {
		t.Errorf("Links did not append to dst: %+v", dst)
	}
}

func TestNewLinkFinder(t *testing.T) {
	if _, ok := NewLinkFinder("grid").(*GridIndex); !ok {
		t.Error("grid index kind should return *GridIndex")
	}
	if _, ok := NewLinkFinder("parallel").(*ParallelBruteForce); !ok {
		t.Error("parallel index kind should return *ParallelBruteForce")
	}
	if _, ok := NewLinkFinder("brute").(BruteForce); !ok {
		t.Error("brute index kind should return BruteForce")
	}
	if _, ok := NewLinkFinder("").(BruteForce); !ok {
		t.Error("empty index kind should default to BruteForce")
	}
}
