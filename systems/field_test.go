package systems

import (
	"math/rand"
	"testing"
)

func newTestField(seed int64) *Field {
	return NewField(rand.New(rand.NewSource(seed)), DefaultFieldParams())
}

func TestFieldInitCountAndBounds(t *testing.T) {
	tests := []struct {
		name          string
		width, height float32
		n             int
	}{
		{"empty", 800, 600, 0},
		{"single", 800, 600, 1},
		{"default", 1280, 720, 100},
		{"small surface", 400, 300, 50},
		{"zero area", 0, 0, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newTestField(1)
			f.Init(tt.width, tt.height, tt.n)

			if f.Len() != tt.n {
				t.Fatalf("Len() = %d, want %d", f.Len(), tt.n)
			}
			params := f.Params()
			for i, p := range f.Particles() {
				if p.X < 0 || p.X > tt.width || p.Y < 0 || p.Y > tt.height {
					t.Errorf("particle %d at (%v, %v) outside %vx%v", i, p.X, p.Y, tt.width, tt.height)
				}
				if p.VX < -params.MaxSpeed || p.VX >= params.MaxSpeed ||
					p.VY < -params.MaxSpeed || p.VY >= params.MaxSpeed {
					t.Errorf("particle %d velocity (%v, %v) outside range", i, p.VX, p.VY)
				}
				if p.Radius < params.RadiusMin || p.Radius >= params.RadiusMax {
					t.Errorf("particle %d radius %v outside [%v, %v)", i, p.Radius, params.RadiusMin, params.RadiusMax)
				}
				if p.Alpha < params.AlphaMin || p.Alpha >= params.AlphaMax {
					t.Errorf("particle %d alpha %v outside [%v, %v)", i, p.Alpha, params.AlphaMin, params.AlphaMax)
				}
			}
		})
	}
}

func TestFieldInitNegativeCount(t *testing.T) {
	f := newTestField(1)
	f.Init(100, 100, -5)
	if f.Len() != 0 {
		t.Errorf("Len() = %d, want 0 for negative count", f.Len())
	}
}

func TestFieldInitReplacesParticles(t *testing.T) {
	f := newTestField(7)
	f.Init(800, 600, 50)
	before := append([]Particle(nil), f.Particles()...)

	f.Init(800, 600, 50)
	after := f.Particles()

	if len(after) != 50 {
		t.Fatalf("Len() = %d after reinit, want 50", len(after))
	}
	same := 0
	for i := range after {
		if after[i] == before[i] {
			same++
		}
	}
	if same == len(after) {
		t.Error("reinitialization kept the previous particles")
	}
}

func TestFieldInitReproducible(t *testing.T) {
	a := newTestField(42)
	b := newTestField(42)
	a.Init(640, 480, 20)
	b.Init(640, 480, 20)

	for i := range a.Particles() {
		if a.Particles()[i] != b.Particles()[i] {
			t.Fatalf("particle %d differs between equal seeds", i)
		}
	}
}

func TestFieldResizeShrinksBounds(t *testing.T) {
	f := newTestField(3)
	f.Init(800, 600, 50)
	f.Init(400, 300, 50)

	if w, h := f.Bounds(); w != 400 || h != 300 {
		t.Errorf("Bounds() = (%v, %v), want (400, 300)", w, h)
	}
	if f.Len() != 50 {
		t.Fatalf("Len() = %d, want 50", f.Len())
	}
	for i, p := range f.Particles() {
		if p.X < 0 || p.X > 400 || p.Y < 0 || p.Y > 300 {
			t.Errorf("particle %d at (%v, %v) outside 400x300", i, p.X, p.Y)
		}
	}
}
