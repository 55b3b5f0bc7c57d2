// Package physics is the collision core: the environment of collidable
// objects, the ball that moves through it, the block and paddle hit
// policies, hit notification, and the sprite registry that drives a tick.
//
// Everything here runs on the simulation goroutine; nothing is safe for
// concurrent use.
package physics

import "github.com/vovakirdan/tui-arkanoid/internal/geometry"

// Collidable is anything a ball can strike.
type Collidable interface {
	// CollisionRectangle returns the current collision shape.
	CollisionRectangle() geometry.Rectangle
	// Hit notifies the object that hitter struck it at p with velocity v
	// and returns the velocity the ball should continue with.
	Hit(hitter *Ball, p geometry.Point, v geometry.Velocity) geometry.Velocity
}

// CollisionInfo describes the nearest strike along a trajectory.
type CollisionInfo struct {
	Point  geometry.Point
	Object Collidable
}

// Environment is the ordered set of collidables a ball moves through.
// Registration order decides ties between equally distant strikes.
type Environment struct {
	collidables []Collidable
}

// NewEnvironment creates an empty environment.
func NewEnvironment() *Environment {
	return &Environment{}
}

// AddCollidable registers c after every existing collidable.
func (e *Environment) AddCollidable(c Collidable) {
	e.collidables = append(e.collidables, c)
}

// RemoveCollidable unregisters the first occurrence of c.
// It reports whether c was found.
func (e *Environment) RemoveCollidable(c Collidable) bool {
	for i, existing := range e.collidables {
		if existing == c {
			e.collidables = append(e.collidables[:i:i], e.collidables[i+1:]...)
			return true
		}
	}
	return false
}

// Collidables returns a copy of the registered collidables in order.
func (e *Environment) Collidables() []Collidable {
	out := make([]Collidable, len(e.collidables))
	copy(out, e.collidables)
	return out
}

// Len returns the number of registered collidables.
func (e *Environment) Len() int {
	return len(e.collidables)
}

// ClosestCollision finds the strike nearest to trajectory.Start().
// For each collidable the closest boundary point is taken; the nearest of
// those wins, with exact ties going to the earliest registered collidable.
// The query does not modify the environment.
func (e *Environment) ClosestCollision(trajectory geometry.Line) (CollisionInfo, bool) {
	var (
		best     CollisionInfo
		bestDist float64
		found    bool
	)

	origin := trajectory.Start()
	for _, c := range e.collidables {
		p, ok := trajectory.ClosestIntersectionToStart(c.CollisionRectangle())
		if !ok {
			continue
		}
		d := origin.Distance(p)
		if !found || d < bestDist {
			best = CollisionInfo{Point: p, Object: c}
			bestDist = d
			found = true
		}
	}

	return best, found
}
