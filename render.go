package main

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/g-brrzzn/IsoSurvivor/sim"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"
)

var (
	backgroundColor = color.RGBA{R: 0x14, G: 0x12, B: 0x1c, A: 0xff}
	shadowColor     = color.RGBA{A: 0x60}
	healthBack      = color.RGBA{R: 0x40, A: 0xff}
)

var agentColors = map[string]color.Color{
	"enemy1": colornames.Indianred,
	"bat":    colornames.Mediumpurple,
	"golem":  colornames.Sienna,
}

func tileColor(asset string) color.Color {
	switch {
	case strings.Contains(asset, "water_"):
		return colornames.Steelblue
	case strings.Contains(asset, "wall"):
		return colornames.Slategray
	default:
		return colornames.Darkolivegreen
	}
}

// toScreen turns a projected world position into a screen position relative
// to the camera.
func (g *Game) toScreen(sx, sy float64) (float32, float32) {
	return float32(sx - g.camX + baseWidth/2), float32(sy - g.camY + baseHeight/2)
}

func (g *Game) drawWorld(screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	proj := g.sim.Projection()
	hw, hh := float32(proj.TileWidth/2), float32(proj.TileHeight/2)

	for _, t := range g.sim.Map().Tiles {
		if t.Cell.Z != 0 {
			continue
		}
		sx, sy := proj.WorldToScreen(t.Cell.Vec())
		x, y := g.toScreen(sx, sy)
		if x < -hw || y < -hh || x > baseWidth+hw || y > baseHeight+hh {
			continue
		}
		drawDiamond(screen, x, y, hw, hh, tileColor(t.Asset))
	}

	for _, sp := range g.sim.DrawList() {
		x, y := g.toScreen(sp.SX, sp.SY)
		switch sp.Kind {
		case sim.SpriteTile:
			drawBlock(screen, x, y, hw, hh, float32(proj.HeightFactor), tileColor(sp.Name))
		case sim.SpritePlayer:
			drawUnit(screen, x, y, 9, colornames.Gold, sp.Health)
		case sim.SpriteAgent:
			c, ok := agentColors[sp.Name]
			if !ok {
				c = colornames.Crimson
			}
			r := float32(7)
			if sp.Name == "golem" {
				r = 12
			}
			drawUnit(screen, x, y, r, c, sp.Health)
		case sim.SpriteProjectile:
			c := color.Color(colornames.Lightcyan)
			if sp.Name == "bomb" {
				c = colornames.Orangered
			}
			vector.FillCircle(screen, x, y-6, 3, c, true)
		case sim.SpritePickup:
			vector.FillCircle(screen, x, y-3, gemRadius(sp.Name), colornames.Mediumspringgreen, true)
		}
	}
}

func gemRadius(name string) float32 {
	switch name {
	case "gem_50":
		return 5
	case "gem_10":
		return 4
	default:
		return 3
	}
}

func drawDiamond(screen *ebiten.Image, x, y, hw, hh float32, c color.Color) {
	vector.StrokeLine(screen, x, y-hh, x+hw, y, 1, c, true)
	vector.StrokeLine(screen, x+hw, y, x, y+hh, 1, c, true)
	vector.StrokeLine(screen, x, y+hh, x-hw, y, 1, c, true)
	vector.StrokeLine(screen, x-hw, y, x, y-hh, 1, c, true)
}

// drawBlock draws a raised tile as a column down to the floor with its top
// face outlined. (x, y) is the projected top.
func drawBlock(screen *ebiten.Image, x, y, hw, hh, height float32, c color.Color) {
	vector.FillRect(screen, x-hw/2, y, hw, height, c, false)
	vector.StrokeRect(screen, x-hw/2, y, hw, height, 1, colornames.Black, false)
	drawDiamond(screen, x, y, hw/2, hh/2, colornames.Lightgray)
}

func drawUnit(screen *ebiten.Image, x, y, r float32, c color.Color, health float64) {
	vector.FillCircle(screen, x, y, r*0.8, shadowColor, true)
	vector.FillCircle(screen, x, y-r, r, c, true)
	if health < 1 {
		w := r * 2
		vector.FillRect(screen, x-r, y-2*r-6, w, 3, healthBack, false)
		vector.FillRect(screen, x-r, y-2*r-6, w*float32(max(health, 0)), 3, colornames.Limegreen, false)
	}
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	st := g.sim.Stats()
	hud := fmt.Sprintf("FPS: %.1f  %s  t=%.0fs  wave %d\nlife %d  level %d  xp %d  kills %d\nagents %d  paths %d  no-path %d",
		ebiten.ActualFPS(), g.sim.Map().Name, st.Time, st.Wave,
		st.PlayerLife, st.PlayerLevel, st.PlayerXP, st.Kills,
		st.Agents, st.PathsPlanned, st.PathsFailed)
	ebitenutil.DebugPrintAt(screen, hud, 8, 8)

	if g.messageTTL > 0 {
		ebitenutil.DebugPrintAt(screen, g.message, 8, baseHeight-24)
	}
	if st.GameOver {
		ebitenutil.DebugPrintAt(screen, "You died. Press R to restart.", baseWidth/2-90, baseHeight/2)
	}
}
