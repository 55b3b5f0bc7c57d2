package arkanoid

import (
	"github.com/vovakirdan/tui-arkanoid/internal/core"
	"github.com/vovakirdan/tui-arkanoid/internal/geometry"
	"github.com/vovakirdan/tui-arkanoid/internal/physics"
)

// labeledZone is a kill zone drawn with a caption.
type labeledZone struct {
	block *physics.Block
	label string
}

// buildArena populates the sprite registry and environment for a fresh round.
// Registration order matters for collision tie-breaks and tick order:
// borders, level blocks, balls, kill zones, paddle.
func (g *Game) buildArena(ballSpeed float64) {
	g.env = physics.NewEnvironment()
	g.sprites = physics.NewSpriteCollection()
	g.remainingBlocks = NewCounter(0)
	g.remainingBalls = NewCounter(0)
	g.score = NewCounter(0)
	g.zones = nil

	blockRemover := NewBlockRemover(g.sprites, g.env, g.remainingBlocks, g.logger)
	ballRemover := NewBallRemover(g.sprites, g.remainingBalls, g.logger)
	scorer := NewScoreTrackingListener(g.score, g.cfg.Blocks.PointsPerHit)

	g.addBorders()

	// Level blocks
	cellW, cellH := g.cfg.Blocks.Width, g.cfg.Blocks.Height
	for row, cells := range g.level.Cells {
		for col, cell := range cells {
			if cell.Kind == CellEmpty {
				continue
			}
			rect := geometry.MustRectangle(
				geometry.Pt(g.cfg.Blocks.OriginX+float64(col)*cellW, g.cfg.Blocks.OriginY+float64(row)*cellH),
				cellW, cellH)

			switch cell.Kind {
			case CellBreakable:
				b := g.addBlock(rect, cell.Color)
				b.AddHitListener(blockRemover)
				b.AddHitListener(scorer)
				g.remainingBlocks.Increase(1)
			case CellWall:
				g.addBlock(rect, cell.Color)
			case CellKill:
				kz := physics.NewKillZone(rect)
				g.sprites.Add(kz)
				g.env.AddCollidable(kz)
				kz.AddHitListener(ballRemover)
			}
		}
	}

	// Balls, launched straight down
	ballColor, _ := core.ParseColor(g.cfg.Ball.Color)
	g.balls = make([]*physics.Ball, 0, len(g.cfg.Ball.Spawns))
	for _, spawn := range g.cfg.Ball.Spawns {
		ball := physics.NewBall(geometry.Pt(spawn.X, spawn.Y), g.cfg.Ball.Radius, ballColor, g.env)
		ball.SetVelocity(geometry.Velocity{DX: 0, DY: ballSpeed})
		g.sprites.Add(ball)
		g.balls = append(g.balls, ball)
		g.remainingBalls.Increase(1)
	}

	// Kill zones
	for _, kzc := range g.cfg.KillZones {
		kz := physics.NewKillZone(geometry.MustRectangle(geometry.Pt(kzc.X, kzc.Y), kzc.Width, kzc.Height))
		g.sprites.Add(kz)
		g.env.AddCollidable(kz)
		kz.AddHitListener(ballRemover)
		if kzc.Label != "" {
			g.zones = append(g.zones, labeledZone{block: kz, label: kzc.Label})
		}
	}

	// Paddle
	pc := g.cfg.Paddle
	paddleColor, _ := core.ParseColor(pc.Color)
	wall := g.cfg.World.BorderThickness
	g.paddle = physics.NewPaddle(
		geometry.MustRectangle(geometry.Pt(pc.X, pc.Y), pc.Width, pc.Height),
		paddleColor,
		physics.PaddleTrack{
			MinX: wall,
			MaxX: g.cfg.World.Width - wall - pc.Width,
			Step: pc.Step,
		})
	g.paddle.SetLogger(g.logger)
	g.sprites.Add(g.paddle)
	g.env.AddCollidable(g.paddle)
}

// addBorders lays out the walls: a thick gray top band, side walls, bottom
// corners and strip, two off-screen guards that catch escaping balls, and
// a white ceiling that scores when struck.
func (g *Game) addBorders() {
	w := g.cfg.World.Width
	h := g.cfg.World.Height
	t := g.cfg.World.BorderThickness
	guard := g.cfg.World.GuardThickness

	walls := []struct {
		x, y, w, h float64
		color      core.Color
	}{
		{0, 0, w, 2 * t, core.ColorGray},
		{0, t, t, h - 2*t, core.ColorGray},
		{w - t, t, t, h - 2*t, core.ColorGray},
		{0, h - t, t, t, core.ColorGray},
		{w - t, h - t, t, t, core.ColorGray},
		{t, h - t, w - 2*t, t, core.ColorGray},
		{w, t, guard, h, core.ColorGray},
		{-guard, t, guard, h, core.ColorGray},
		{0, 0, w, t, core.ColorWhite},
	}

	for _, wall := range walls {
		g.addBlock(geometry.MustRectangle(geometry.Pt(wall.x, wall.y), wall.w, wall.h), wall.color)
	}
}

// addBlock registers a block as both sprite and collidable.
func (g *Game) addBlock(rect geometry.Rectangle, color core.Color) *physics.Block {
	b := physics.NewBlock(rect, color)
	g.sprites.Add(b)
	g.env.AddCollidable(b)
	return b
}
