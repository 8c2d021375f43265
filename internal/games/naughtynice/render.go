package naughtynice

import (
	"fmt"
	"math"

	"github.com/vovakirdan/naughty-nice/internal/anim"
	"github.com/vovakirdan/naughty-nice/internal/character"
	"github.com/vovakirdan/naughty-nice/internal/core"
	"github.com/vovakirdan/naughty-nice/internal/world"
)

const hudHeight = 2

var familyGlyphs = map[anim.Family]rune{
	anim.FamilyForward:   '▲',
	anim.FamilyBack:      '▼',
	anim.FamilyLeft:      '◀',
	anim.FamilyRight:     '▶',
	anim.FamilyCelebrate: '★',
	anim.FamilyDie:       '✖',
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.player == nil {
		return
	}

	g.renderHUD(dst)

	field := core.NewRect(0, hudHeight, dst.Width(), dst.Height()-hudHeight)
	if field.W < 4 || field.H < 4 {
		dst.DrawTextCentered(dst.Height()/2, "Window too small", core.ColorBrightRed)
		return
	}
	dst.DrawBox(field)

	for _, p := range g.world.Presents() {
		x, y := g.project(field, p.Position)
		if p.Kind == world.Naughty {
			dst.SetColored(x, y, '☠', core.ColorRed)
		} else {
			dst.SetColored(x, y, '♦', core.ColorBrightGreen)
		}
	}

	x, y := g.project(field, g.player.Position)
	dst.SetColored(x, y, g.playerGlyph(), g.playerColor())

	switch {
	case g.lost():
		g.renderOverlay(dst, "Game Over", "Press R to restart")
	case g.won():
		g.renderOverlay(dst, "You Win!", fmt.Sprintf("Presents: %d  -  Press R to play again", g.player.Inventory.Presents()))
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" Naughty And Nice  Presents: %d/%d  Health: %d  Left: %d  Frame: %d",
		g.player.Inventory.Presents(), g.cfg.Rules.WinThreshold,
		g.player.Status.Health(), g.world.Remaining(world.Nice), g.player.Frame)
	dst.DrawTextColored(0, 0, hud, core.ColorWhite)

	for x := range dst.Width() {
		dst.SetColored(x, 1, '─', core.ColorGray)
	}
	if g.lastEvent != "" {
		dst.DrawTextColored(2, 1, " "+g.lastEvent+" ", core.ColorYellow)
	}
}

func (g *Game) renderOverlay(dst *core.Screen, title, subtitle string) {
	mid := hudHeight + (dst.Height()-hudHeight)/2
	dst.DrawTextCentered(mid-1, title, core.ColorBrightYellow)
	dst.DrawTextCentered(mid+1, subtitle, core.ColorWhite)
}

// project maps a world position into the cells inside the field border. The
// world is y-up while screen rows grow downwards.
func (g *Game) project(field core.Rect, p core.Vec2) (int, int) {
	a := g.cfg.Arena
	innerW := field.W - 2
	innerH := field.H - 2

	fx := (p.X - a.Left) / a.Width()
	fy := (a.Top - p.Y) / a.Height()

	x := field.X + 1 + int(math.Round(fx*float64(innerW-1)))
	y := field.Y + 1 + int(math.Round(fy*float64(innerH-1)))
	return core.Clamp(x, field.X+1, field.Right()-2), core.Clamp(y, field.Y+1, field.Bottom()-2)
}

func (g *Game) playerGlyph() rune {
	family, ok := g.player.Frames.FamilyOf(g.player.Frame)
	if !ok {
		return '@'
	}
	return familyGlyphs[family]
}

func (g *Game) playerColor() core.Color {
	switch g.player.Status.State() {
	case character.Celebrating:
		return core.ColorMagenta
	case character.Dead:
		return core.ColorGray
	default:
		return core.ColorBrightYellow
	}
}
