package geometry

import "math"

// Velocity is a displacement applied once per simulation tick.
type Velocity struct {
	DX, DY float64
}

// VelocityFromAngle builds a velocity from a heading in degrees and a speed.
// The angle is measured clockwise from "up" (screen y grows downward), so
// 0 is straight up, 90 is right and 300 is up-and-to-the-left.
func VelocityFromAngle(angle, speed float64) Velocity {
	rad := (angle - 90) * math.Pi / 180
	return Velocity{
		DX: speed * math.Cos(rad),
		DY: speed * math.Sin(rad),
	}
}

// ApplyToPoint returns p moved by one tick of this velocity.
func (v Velocity) ApplyToPoint(p Point) Point {
	return Point{X: p.X + v.DX, Y: p.Y + v.DY}
}

// Speed returns the magnitude of the velocity.
func (v Velocity) Speed() float64 {
	return math.Sqrt(v.DX*v.DX + v.DY*v.DY)
}

// FlipX returns the velocity with its horizontal component negated.
func (v Velocity) FlipX() Velocity {
	return Velocity{DX: -v.DX, DY: v.DY}
}

// FlipY returns the velocity with its vertical component negated.
func (v Velocity) FlipY() Velocity {
	return Velocity{DX: v.DX, DY: -v.DY}
}
