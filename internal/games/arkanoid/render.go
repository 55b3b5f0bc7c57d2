package arkanoid

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-arkanoid/internal/core"
	"github.com/vovakirdan/tui-arkanoid/internal/geometry"
	"github.com/vovakirdan/tui-arkanoid/internal/physics"
)

// Visual elements
const (
	BlockChar  = '█'
	WallChar   = '▓'
	PaddleChar = '▀'
	BallChar   = '●'
	HUDRows    = 1
)

// viewport maps world coordinates onto screen cells below the HUD.
type viewport struct {
	sx, sy float64
	top    int
}

func (g *Game) viewport(dst *core.Screen) viewport {
	return viewport{
		sx:  float64(dst.Width()) / g.cfg.World.Width,
		sy:  float64(dst.Height()-HUDRows) / g.cfg.World.Height,
		top: HUDRows,
	}
}

// cellRect converts a world rectangle to the cells it covers.
// Anything non-empty in the world covers at least one cell.
func (v viewport) cellRect(r geometry.Rectangle) core.Rect {
	x0 := int(math.Floor(r.Left() * v.sx))
	y0 := int(math.Floor(r.Top() * v.sy))
	x1 := max(int(math.Ceil(r.Right()*v.sx)), x0+1)
	y1 := max(int(math.Ceil(r.Bottom()*v.sy)), y0+1)
	return core.NewRect(x0, y0+v.top, x1-x0, y1-y0)
}

// cell converts a world point to a screen cell.
func (v viewport) cell(p geometry.Point) (int, int) {
	return int(math.Floor(p.X * v.sx)), int(math.Floor(p.Y*v.sy)) + v.top
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	// Check for screen too small
	if g.screenTooSmall {
		msg := "Window too small"
		hint := fmt.Sprintf("Need %dx%d", g.minScreenW, g.minScreenH)
		dst.DrawTextCentered(dst.Height()/2-1, msg)
		dst.DrawTextCentered(dst.Height()/2+1, hint)
		return
	}

	vp := g.viewport(dst)

	// Sprites in registration order, so later ones draw on top
	for _, s := range g.sprites.Snapshot() {
		switch sp := s.(type) {
		case *physics.Block:
			g.renderBlock(dst, vp, sp)
		case *physics.Paddle:
			dst.DrawRect(vp.cellRect(sp.CollisionRectangle()), PaddleChar, sp.Color())
		case *physics.Ball:
			x, y := vp.cell(sp.Center())
			dst.SetColored(x, y, BallChar, sp.Color())
		}
	}

	g.renderZones(dst, vp)
	g.renderHUD(dst)
	g.renderOverlay(dst)
}

// renderBlock draws a visible block. Neutral blocks use the wall glyph.
func (g *Game) renderBlock(dst *core.Screen, vp viewport, b *physics.Block) {
	if !b.Visible() {
		return
	}
	glyph := BlockChar
	if physics.IsNeutral(b.Color()) {
		glyph = WallChar
	}
	dst.DrawRect(vp.cellRect(b.CollisionRectangle()), glyph, b.Color())
}

// renderZones draws captioned kill zones as black panels with white text.
func (g *Game) renderZones(dst *core.Screen, vp viewport) {
	for _, z := range g.zones {
		r := vp.cellRect(z.block.CollisionRectangle())
		dst.DrawRect(r, ' ', core.ColorBlack)

		label := []rune(z.label)
		if len(label) > r.W {
			label = label[:r.W]
		}
		x := r.X + (r.W-len(label))/2
		y := r.Y + (r.H-1)/2
		dst.DrawTextColored(x, y, string(label), core.ColorWhite)
	}
}

// renderHUD draws the score, remaining balls and blocks, and the level name.
func (g *Game) renderHUD(dst *core.Screen) {
	// Score on left
	dst.DrawText(1, 0, fmt.Sprintf("Score: %d", g.score.Value()))

	// Balls and blocks in center
	dst.DrawTextCentered(0, fmt.Sprintf("Balls: %d  Blocks: %d",
		g.remainingBalls.Value(), g.remainingBlocks.Value()))

	// Level on right
	levelText := fmt.Sprintf("Level: %s", g.level.Name)
	dst.DrawText(dst.Width()-len([]rune(levelText))-1, 0, levelText)
}

// renderOverlay draws game state messages.
func (g *Game) renderOverlay(dst *core.Screen) {
	switch g.state {
	case StatePaused:
		g.drawCenteredBox(dst, "PAUSED", "Press P to resume")

	case StateGameOver:
		subtitle := fmt.Sprintf("Score: %d  |  Press R to restart", g.score.Value())
		g.drawCenteredBox(dst, "GAME OVER", subtitle)

	case StateWin:
		subtitle := fmt.Sprintf("Final Score: %d  |  Press R to restart", g.score.Value())
		g.drawCenteredBox(dst, "YOU WIN!", subtitle)
	}
}

// drawCenteredBox draws a centered message box.
func (g *Game) drawCenteredBox(dst *core.Screen, title, subtitle string) {
	boxW := max(len(title), len(subtitle)) + 4
	boxH := 5
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box)

	dst.DrawText(box.X+(boxW-len(title))/2, box.Y+1, title)
	dst.DrawText(box.X+(boxW-len(subtitle))/2, box.Y+3, subtitle)
}
