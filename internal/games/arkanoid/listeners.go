package arkanoid

import (
	"github.com/charmbracelet/log"
	"github.com/vovakirdan/tui-arkanoid/internal/physics"
)

// BlockRemover takes struck blocks out of play and counts them down.
type BlockRemover struct {
	sprites   *physics.SpriteCollection
	env       *physics.Environment
	remaining *Counter
	logger    *log.Logger
}

// NewBlockRemover creates a remover that updates sprites, env and remaining.
func NewBlockRemover(sprites *physics.SpriteCollection, env *physics.Environment, remaining *Counter, logger *log.Logger) *BlockRemover {
	return &BlockRemover{sprites: sprites, env: env, remaining: remaining, logger: logger}
}

// HitEvent removes the block from the world, unsubscribes from it and
// decrements the remaining-blocks counter.
func (r *BlockRemover) HitEvent(beingHit *physics.Block, hitter *physics.Ball) {
	r.sprites.Remove(beingHit)
	r.env.RemoveCollidable(beingHit)
	beingHit.RemoveHitListener(r)
	r.remaining.Decrease(1)

	rect := beingHit.CollisionRectangle()
	r.logger.Debug("block removed",
		"x", rect.Left(), "y", rect.Top(),
		"color", beingHit.Color(), "ball_color", hitter.Color(),
		"remaining", r.remaining.Value())
}

// BallRemover takes balls that strike a kill zone out of play.
type BallRemover struct {
	sprites   *physics.SpriteCollection
	remaining *Counter
	logger    *log.Logger
}

// NewBallRemover creates a remover that updates sprites and remaining.
func NewBallRemover(sprites *physics.SpriteCollection, remaining *Counter, logger *log.Logger) *BallRemover {
	return &BallRemover{sprites: sprites, remaining: remaining, logger: logger}
}

// HitEvent marks the ball removed, drops it from the sprite registry and
// decrements the remaining-balls counter. Repeat events for a removed
// ball are ignored.
func (r *BallRemover) HitEvent(_ *physics.Block, hitter *physics.Ball) {
	if hitter.Removed() {
		return
	}
	hitter.MarkRemoved()
	r.sprites.Remove(hitter)
	r.remaining.Decrease(1)

	c := hitter.Center()
	r.logger.Debug("ball removed", "x", c.X, "y", c.Y, "remaining", r.remaining.Value())
}

// ScoreTrackingListener adds a fixed number of points per hit event.
type ScoreTrackingListener struct {
	score  *Counter
	points int
}

// NewScoreTrackingListener creates a listener adding points to score per event.
func NewScoreTrackingListener(score *Counter, points int) *ScoreTrackingListener {
	return &ScoreTrackingListener{score: score, points: points}
}

// HitEvent adds the configured points.
func (s *ScoreTrackingListener) HitEvent(_ *physics.Block, _ *physics.Ball) {
	s.score.Increase(s.points)
}
