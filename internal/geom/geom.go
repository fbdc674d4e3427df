// Package geom converts wheel and confetti state into screen-space points.
//
// Screen angles are in degrees, measured counter-clockwise from the top of
// the wheel, which is where the pointer sits.
package geom

import "math"

// Point is a screen position.
type Point struct {
	X, Y float64
}

// PointAt returns the point at angle theta and distance r from (cx, cy).
func PointAt(cx, cy, theta, r float64) Point {
	rad := theta * math.Pi / 180
	return Point{
		X: cx - r*math.Sin(rad),
		Y: cy - r*math.Cos(rad),
	}
}

// SegmentCenter is the screen angle of the middle of segment i when the
// wheel is rotated by angle. Segment 0 is centred under the pointer at
// angle 0, matching spin.WinningIndex.
func SegmentCenter(i, n int, angle float64) float64 {
	if n < 1 {
		return angle
	}
	return float64(i)*360/float64(n) + angle
}

// SegmentFan returns the centre followed by steps+1 rim points covering
// segment i of n. Consecutive rim points with the centre form the triangles
// of the slice.
func SegmentFan(cx, cy, r float64, i, n int, angle float64, steps int) []Point {
	if n < 1 {
		return nil
	}
	if steps < 1 {
		steps = 1
	}
	width := 360 / float64(n)
	start := SegmentCenter(i, n, angle) - width/2
	pts := make([]Point, 0, steps+2)
	pts = append(pts, Point{X: cx, Y: cy})
	for s := 0; s <= steps; s++ {
		pts = append(pts, PointAt(cx, cy, start+width*float64(s)/float64(steps), r))
	}
	return pts
}

// FanIndices triangulates a fan of rim points around vertex 0.
func FanIndices(rimPoints int) []uint16 {
	if rimPoints < 2 {
		return nil
	}
	idx := make([]uint16, 0, (rimPoints-1)*3)
	for k := 1; k < rimPoints; k++ {
		idx = append(idx, 0, uint16(k), uint16(k+1))
	}
	return idx
}

// Polygon returns the corners of a regular polygon with the given number of
// sides, circumradius r and rotation in degrees.
func Polygon(cx, cy, r float64, sides int, rotation float64) []Point {
	if sides < 3 {
		return nil
	}
	pts := make([]Point, sides)
	for k := range pts {
		pts[k] = PointAt(cx, cy, rotation+float64(k)*360/float64(sides), r)
	}
	return pts
}

// Rect is an axis-aligned screen rectangle.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether (x, y) lies inside r, edges included.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x <= r.X+r.W && y >= r.Y && y <= r.Y+r.H
}
