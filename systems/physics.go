package systems

// Step advances p by one frame and reflects its velocity at the surface edges.
// Position is not clamped; the reversed velocity carries it back on the next step.
func Step(p *Particle, width, height float32) {
	p.X += p.VX
	p.Y += p.VY

	if p.X < 0 || p.X > width {
		p.VX = -p.VX
	}
	if p.Y < 0 || p.Y > height {
		p.VY = -p.VY
	}
}

// StepAll advances every particle within the field bounds.
func (f *Field) StepAll() {
	for i := range f.particles {
		Step(&f.particles[i], f.width, f.height)
	}
}
