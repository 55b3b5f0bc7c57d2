package arkanoid

import (
	"math"

	"github.com/vovakirdan/tui-arkanoid/internal/physics"
)

// Snapshot contains the observable game state for determinism checks.
// Uses primitive types only for stable serialization.
type Snapshot struct {
	Tick            uint64
	LevelIndex      int
	State           string
	Score           int
	BallsRemaining  int
	BlocksRemaining int
	BallSpeed       float64

	// Paddle upper-left corner
	PaddleX float64
	PaddleY float64

	// Each ball is 5 floats: X, Y, DX, DY, Color
	BallData []float64

	// Upper-left corners of blocks still in play, in registration order
	BlockData []float64
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	ballData := make([]float64, 0, len(g.balls)*5)
	for _, ball := range g.balls {
		if ball.Removed() {
			continue
		}
		c := ball.Center()
		v := ball.Velocity()
		ballData = append(ballData, c.X, c.Y, v.DX, v.DY, float64(ball.Color()))
	}

	var blockData []float64
	for _, s := range g.sprites.Snapshot() {
		if b, ok := s.(*physics.Block); ok {
			ul := b.CollisionRectangle().UpperLeft()
			blockData = append(blockData, ul.X, ul.Y)
		}
	}

	paddle := g.paddle.CollisionRectangle().UpperLeft()

	return Snapshot{
		Tick:            uint64(g.tickCount), //#nosec G115 -- tick count is always positive
		LevelIndex:      g.levelIndex,
		State:           g.state,
		Score:           g.score.Value(),
		BallsRemaining:  g.remainingBalls.Value(),
		BlocksRemaining: g.remainingBlocks.Value(),
		BallSpeed:       g.ballSpeed,
		PaddleX:         paddle.X,
		PaddleY:         paddle.Y,
		BallData:        ballData,
		BlockData:       blockData,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.LevelIndex)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score)           //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BallsRemaining)  //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BlocksRemaining) //#nosec G115 -- hash computation
	h = h*31 + math.Float64bits(snap.BallSpeed)
	h = h*31 + math.Float64bits(snap.PaddleX)
	h = h*31 + math.Float64bits(snap.PaddleY)

	for _, r := range snap.State {
		h = h*31 + uint64(r) //#nosec G115 -- hash computation
	}

	for _, v := range snap.BallData {
		h = h*31 + math.Float64bits(v)
	}

	for _, v := range snap.BlockData {
		h = h*31 + math.Float64bits(v)
	}

	return h
}
