package physics

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/vovakirdan/tui-arkanoid/internal/core"
	"github.com/vovakirdan/tui-arkanoid/internal/geometry"
)

// Paddle zone headings, left to right. Zone 3 reflects instead.
const (
	ZoneAngle1 = 300.0
	ZoneAngle2 = 330.0
	ZoneAngle4 = 30.0
	ZoneAngle5 = 60.0
)

// paddleZones is the number of equal-width deflection zones.
const paddleZones = 5

// PaddleTrack bounds horizontal paddle motion. Moving past MaxX wraps the
// paddle to MinX and vice versa.
type PaddleTrack struct {
	MinX float64
	MaxX float64
	Step float64
}

// Paddle is the player-controlled collidable. It deflects the ball at an
// angle depending on which fifth of its width was struck.
type Paddle struct {
	rect   geometry.Rectangle
	color  core.Color
	track  PaddleTrack
	steer  int
	logger *log.Logger
}

// NewPaddle creates a paddle occupying rect and moving along track.
func NewPaddle(rect geometry.Rectangle, color core.Color, track PaddleTrack) *Paddle {
	return &Paddle{
		rect:   rect,
		color:  color,
		track:  track,
		logger: log.New(io.Discard),
	}
}

// SetLogger sets the logger that receives contact events.
func (p *Paddle) SetLogger(l *log.Logger) {
	if l != nil {
		p.logger = l
	}
}

// CollisionRectangle returns the paddle's current shape.
func (p *Paddle) CollisionRectangle() geometry.Rectangle { return p.rect }

// Color returns the paddle's color tag.
func (p *Paddle) Color() core.Color { return p.color }

// Deflect applies the zone policy to a strike at point with velocity v.
// It returns the new velocity and the strike point as adjusted by the policy
// (lifted above or below the paddle, or pushed off its sides).
func (p *Paddle) Deflect(point geometry.Point, v geometry.Velocity) (geometry.Velocity, geometry.Point) {
	hitX := point.X
	zoneWidth := p.rect.Width() / paddleZones
	seg0 := p.rect.Left()
	seg1 := seg0 + zoneWidth*1
	seg2 := seg0 + zoneWidth*2
	seg3 := seg0 + zoneWidth*3
	seg4 := seg0 + zoneWidth*4
	seg5 := seg0 + zoneWidth*5

	speed := v.Speed()

	switch {
	case hitX >= seg0 && hitX <= seg1:
		v = geometry.VelocityFromAngle(ZoneAngle1, speed)
	case hitX >= seg1 && hitX <= seg2:
		v = geometry.VelocityFromAngle(ZoneAngle2, speed)
	case hitX >= seg2 && hitX <= seg3:
		v = v.FlipY()
		point.Y = p.rect.Top() - 1
	case hitX >= seg3 && hitX <= seg4:
		v = geometry.VelocityFromAngle(ZoneAngle4, speed)
	case hitX >= seg4 && hitX <= seg5:
		v = geometry.VelocityFromAngle(ZoneAngle5, speed)
		point.Y = p.rect.Bottom() + 1
	case hitX > seg5:
		point.X = seg5 + 1
		if v.DX > 0 {
			v = v.FlipX()
		}
	case hitX < seg0:
		point.X = seg0 - 1
		if v.DX < 0 {
			v = v.FlipX()
		}
	}

	return v, point
}

// Hit deflects the ball. The adjusted strike point is only logged; the ball
// has already settled at the midpoint of its path by the time Hit runs.
func (p *Paddle) Hit(_ *Ball, point geometry.Point, v geometry.Velocity) geometry.Velocity {
	nv, contact := p.Deflect(point, v)
	p.logger.Debug("paddle contact",
		"strike_x", point.X, "strike_y", point.Y,
		"contact_x", contact.X, "contact_y", contact.Y,
		"dx", nv.DX, "dy", nv.DY)
	return nv
}

// Steer records the movement intent for the next tick:
// negative moves left, positive moves right, zero holds.
func (p *Paddle) Steer(direction int) {
	switch {
	case direction < 0:
		p.steer = -1
	case direction > 0:
		p.steer = 1
	default:
		p.steer = 0
	}
}

// Move shifts the paddle horizontally by dx, wrapping at the track ends.
func (p *Paddle) Move(dx float64) {
	newX := p.rect.Left() + dx
	switch {
	case newX > p.track.MaxX:
		newX = p.track.MinX
	case newX < p.track.MinX:
		newX = p.track.MaxX
	}
	p.rect = p.rect.MoveTo(geometry.Pt(newX, p.rect.Top()))
}

// TimePassed applies the recorded steering intent, one step per tick.
func (p *Paddle) TimePassed() {
	if p.steer != 0 {
		p.Move(float64(p.steer) * p.track.Step)
	}
}
