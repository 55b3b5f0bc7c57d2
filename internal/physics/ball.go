package physics

import (
	"github.com/vovakirdan/tui-arkanoid/internal/core"
	"github.com/vovakirdan/tui-arkanoid/internal/geometry"
)

// Ball is a moving body: a circle that advances by its velocity each tick
// and bounces off the first collidable its path crosses.
//
// The collision test uses the center's path only; the radius is cosmetic.
type Ball struct {
	center   geometry.Point
	radius   float64
	color    core.Color
	velocity geometry.Velocity
	env      *Environment
	removed  bool
}

// NewBall creates a stationary ball moving through env.
// A nil env means free flight.
func NewBall(center geometry.Point, radius float64, color core.Color, env *Environment) *Ball {
	return &Ball{
		center: center,
		radius: radius,
		color:  color,
		env:    env,
	}
}

// Center returns the current center.
func (b *Ball) Center() geometry.Point { return b.center }

// Radius returns the display radius.
func (b *Ball) Radius() float64 { return b.radius }

// Color returns the current color tag.
func (b *Ball) Color() core.Color { return b.color }

// SetColor changes the color tag. Blocks recolor balls that strike them.
func (b *Ball) SetColor(c core.Color) { b.color = c }

// Velocity returns the per-tick displacement.
func (b *Ball) Velocity() geometry.Velocity { return b.velocity }

// SetVelocity replaces the per-tick displacement.
func (b *Ball) SetVelocity(v geometry.Velocity) { b.velocity = v }

// Removed reports whether the ball has left play.
func (b *Ball) Removed() bool { return b.removed }

// MarkRemoved takes the ball out of play. Removal is terminal.
func (b *Ball) MarkRemoved() { b.removed = true }

// Advance moves the ball one tick.
//
// Without a strike the center moves to center+velocity. With one, the center
// moves to the midpoint between itself and the strike point, then the struck
// object decides the new velocity. At most one collision is resolved per tick.
func (b *Ball) Advance() {
	if b.removed {
		return
	}

	end := b.velocity.ApplyToPoint(b.center)
	if b.env == nil {
		b.center = end
		return
	}

	trajectory := geometry.NewLine(b.center, end)
	info, ok := b.env.ClosestCollision(trajectory)
	if !ok {
		b.center = end
		return
	}

	b.center = geometry.NewLine(b.center, info.Point).Middle()
	b.velocity = info.Object.Hit(b, info.Point, b.velocity)
}

// TimePassed advances the ball; it makes Ball a Sprite.
func (b *Ball) TimePassed() {
	b.Advance()
}
