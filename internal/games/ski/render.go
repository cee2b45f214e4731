package ski

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-ski/internal/core"
)

// Visual characters for rendering
const (
	TreeCanopy   = '▲'
	TreeTrunk    = '┃'
	RockChar     = '◉'
	StumpChar    = 'Π'
	MushroomChar = '♣'
	BoostChar    = '»'
	AmmoChar     = '▣'
	MoundChar    = '◠'
	TextureChar  = '·'
	SnowballChar = 'o'
	YetiChar     = '█'
)

// playerScreenY places the player in the upper third of the screen so most
// of the viewport shows the slope ahead.
func playerScreenY(h int) int {
	return h / 3
}

// worldToScreen maps world coordinates to screen cells with the camera
// locked on the player.
func (g *Game) worldToScreen(w core.Vec2) (int, int) {
	sx := g.runtime.ScreenW/2 + int(math.Round((w.X-g.player.Pos.X)/CellW))
	sy := playerScreenY(g.runtime.ScreenH) + int(math.Round((w.Y-g.player.Pos.Y)/CellH))
	return sx, sy
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	for _, e := range g.store.Cosmetics() {
		x, y := g.worldToScreen(e.Pos)
		dst.SetColored(x, y, TextureChar, core.ColorGray)
	}

	for _, e := range g.store.Entities() {
		g.drawEntity(dst, e)
	}

	for _, s := range g.projectiles {
		x, y := g.worldToScreen(s.Pos)
		dst.SetColored(x, y, SnowballChar, core.ColorBrightWhite)
	}

	if g.yeti != nil {
		g.drawYeti(dst)
	}

	g.drawPlayer(dst)
	g.drawHUD(dst)

	if g.paused {
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
	if g.gameOver {
		switch g.player.State {
		case StateEaten:
			g.drawCenteredMessage(dst, "EATEN", fmt.Sprintf("Distance: %dm  |  Press R to restart", g.score))
		default:
			g.drawCenteredMessage(dst, "CRASHED", fmt.Sprintf("Distance: %dm  |  Press R to restart", g.score))
		}
	}
}

// drawEntity renders a single slope entity.
func (g *Game) drawEntity(dst *core.Screen, e Entity) {
	x, y := g.worldToScreen(e.Pos)

	switch e.Kind {
	case KindTree:
		dst.SetColored(x, y-1, TreeCanopy, core.ColorGreen)
		dst.SetColored(x, y, TreeTrunk, core.ColorYellow)
	case KindRock:
		dst.SetColored(x, y, RockChar, core.ColorGray)
	case KindStump:
		dst.SetColored(x, y, StumpChar, core.ColorYellow)
	case KindMushroom:
		dst.SetColored(x, y, MushroomChar, core.ColorBrightMagenta)
	case KindBoostPad:
		dst.SetColored(x, y, BoostChar, core.ColorBrightCyan)
		dst.SetColored(x+1, y, BoostChar, core.ColorBrightCyan)
	case KindAmmo:
		dst.SetColored(x, y, AmmoChar, core.ColorBrightYellow)
	case KindMound:
		dst.SetColored(x, y, MoundChar, core.ColorWhite)
	}
}

// drawPlayer renders the skier. The glyph follows the heading; the jump arc
// lifts the sprite a row at its apex.
func (g *Game) drawPlayer(dst *core.Screen) {
	x := g.runtime.ScreenW / 2
	y := playerScreenY(g.runtime.ScreenH)

	if g.player.State == StateJumping && g.player.JumpHeight > 2 {
		y--
	}

	var glyph rune
	switch {
	case g.player.State == StateCrashed:
		glyph = '✶'
	case g.player.State == StateEaten:
		return // The yeti sprite covers the player
	case g.player.State == StateJumping:
		glyph = '◆'
	case g.player.Direction < -1.5:
		glyph = '◀'
	case g.player.Direction < -0.5:
		glyph = '◣'
	case g.player.Direction > 1.5:
		glyph = '▶'
	case g.player.Direction > 0.5:
		glyph = '◢'
	default:
		glyph = '▼'
	}

	color := core.ColorBrightWhite
	if g.player.Powered() {
		// Flashes while the power-up runs out.
		if (g.tick/10)%2 == 0 {
			color = core.ColorBrightMagenta
		} else {
			color = core.ColorBrightYellow
		}
	}
	dst.SetColored(x, y, glyph, color)
}

// drawYeti renders the pursuer, colored by mode so the telegraph reads at a
// glance.
func (g *Game) drawYeti(dst *core.Screen) {
	x, y := g.worldToScreen(g.yeti.Pos)

	color := core.ColorWhite
	switch g.yeti.Mode {
	case ModePreLunge:
		color = core.ColorBrightYellow
	case ModeLunge:
		color = core.ColorBrightRed
	case ModeRetreat:
		color = core.ColorBlue
	}

	dst.SetColored(x, y-1, YetiChar, color)
	dst.SetColored(x+1, y-1, YetiChar, color)
	dst.SetColored(x, y, YetiChar, color)
	dst.SetColored(x+1, y, YetiChar, color)
}

// drawHUD draws the top status line.
func (g *Game) drawHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" %dm  spd %.1f  ammo %d", g.score, g.player.Speed, g.player.Ammo)
	if g.player.Powered() {
		hud += fmt.Sprintf("  power %ds", g.player.PowerTicks/core.Max(1, g.runtime.TickRate))
	}
	dst.DrawText(1, 0, hud)

	if g.yeti != nil && !g.gameOver {
		warn := " YETI! "
		color := core.ColorBrightRed
		if (g.tick/15)%2 == 0 {
			color = core.ColorRed
		}
		dst.DrawTextColored(dst.Width()-len(warn)-1, 0, warn, color)
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}
