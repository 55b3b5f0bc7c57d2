package physics

import (
	"github.com/vovakirdan/tui-arkanoid/internal/core"
	"github.com/vovakirdan/tui-arkanoid/internal/geometry"
)

// Color roles in the block policy.
const (
	// ScoringColor blocks notify on every mismatched strike, even before recoloring.
	ScoringColor = core.ColorWhite
	// KillZoneColor marks invisible removal regions.
	KillZoneColor = core.ColorPink
)

// IsNeutral reports whether blocks of color c leave a ball's color alone.
func IsNeutral(c core.Color) bool {
	return c == core.ColorGray || c == core.ColorDarkGray
}

// Block is a static rectangular obstacle. Borders, level bricks and kill
// zones are all blocks; their color decides how they react to a strike.
type Block struct {
	rect  geometry.Rectangle
	color core.Color
	hits  listenerList
}

// NewBlock creates a block. Subscribe listeners before play starts.
func NewBlock(rect geometry.Rectangle, color core.Color) *Block {
	return &Block{rect: rect, color: color}
}

// NewKillZone creates an invisible block that removes balls through
// whatever listener is subscribed to it (normally a ball remover).
func NewKillZone(rect geometry.Rectangle) *Block {
	return NewBlock(rect, KillZoneColor)
}

// CollisionRectangle returns the block's shape.
func (b *Block) CollisionRectangle() geometry.Rectangle { return b.rect }

// Color returns the block's color tag.
func (b *Block) Color() core.Color { return b.color }

// Visible reports whether the block should be drawn.
func (b *Block) Visible() bool { return b.color != KillZoneColor }

// AddHitListener subscribes l to strikes on this block.
func (b *Block) AddHitListener(l HitListener) { b.hits.add(l) }

// RemoveHitListener unsubscribes the first occurrence of l.
func (b *Block) RemoveHitListener(l HitListener) { b.hits.remove(l) }

// Listeners returns the number of subscribed listeners.
func (b *Block) Listeners() int { return b.hits.len() }

// Reflect returns v bounced off the block at p. dy flips when p is on or
// beyond the top or bottom edge, dx flips when p is on or beyond the left or
// right edge; a corner flips both.
func (b *Block) Reflect(p geometry.Point, v geometry.Velocity) geometry.Velocity {
	if p.Y >= b.rect.Bottom() || p.Y <= b.rect.Top() {
		v = v.FlipY()
	}
	if p.X >= b.rect.Right() || p.X <= b.rect.Left() {
		v = v.FlipX()
	}
	return v
}

// Hit reflects the ball and applies the color rules:
//   - a ball already in the block's color just bounces;
//   - a scoring-color block notifies listeners;
//   - a non-neutral block recolors the ball and then notifies listeners.
//
// A scoring-color block therefore notifies twice per mismatched strike.
func (b *Block) Hit(hitter *Ball, p geometry.Point, v geometry.Velocity) geometry.Velocity {
	reflected := b.Reflect(p, v)

	if hitter.Color() == b.color {
		return reflected
	}

	if b.color == ScoringColor {
		b.hits.notify(b, hitter)
	}
	if !IsNeutral(b.color) {
		hitter.SetColor(b.color)
		b.hits.notify(b, hitter)
	}

	return reflected
}

// TimePassed does nothing; blocks are static sprites.
func (b *Block) TimePassed() {}
