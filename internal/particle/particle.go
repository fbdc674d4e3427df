// Package particle simulates the confetti that falls after a win.
package particle

import "image/color"

// Shape is the outline a particle is drawn with.
type Shape int

const (
	Circle Shape = iota
	Square
	Triangle

	shapeCount = 3
)

func (s Shape) String() string {
	switch s {
	case Circle:
		return "circle"
	case Square:
		return "square"
	case Triangle:
		return "triangle"
	default:
		return "unknown"
	}
}

// Particle is one live confetti piece. Speeds are per reference tick.
type Particle struct {
	X, Y          float64
	Size          float64
	Color         color.RGBA
	Speed         float64
	Rotation      float64
	RotationSpeed float64
	Shape         Shape
}

// Snapshot is the render-only view of a particle.
type Snapshot struct {
	X, Y     float64
	Size     float64
	Color    color.RGBA
	Rotation float64
	Shape    Shape
}

func (p *Particle) snapshot() Snapshot {
	return Snapshot{
		X:        p.X,
		Y:        p.Y,
		Size:     p.Size,
		Color:    p.Color,
		Rotation: p.Rotation,
		Shape:    p.Shape,
	}
}

// DefaultPalette mirrors the wheel's segment colours.
var DefaultPalette = []color.RGBA{
	{R: 230, G: 57, B: 70, A: 255},
	{R: 42, G: 157, B: 143, A: 255},
	{R: 244, G: 211, B: 94, A: 255},
	{R: 69, G: 123, B: 157, A: 255},
	{R: 214, G: 74, B: 205, A: 255},
	{R: 72, G: 202, B: 228, A: 255},
}
