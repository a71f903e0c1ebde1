package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/ebitenui/ebitenui"
	"github.com/g-brrzzn/IsoSurvivor/common"
	"github.com/g-brrzzn/IsoSurvivor/prefabs"
	"github.com/g-brrzzn/IsoSurvivor/sim"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.design/x/clipboard"
)

const (
	baseWidth  = 1280
	baseHeight = 720

	cameraFollow  = 0.15
	stickDeadzone = 0.2
	messageFrames = 120
)

type Game struct {
	sim   *sim.Sim
	debug bool
	speed float64

	paused  bool
	quit    bool
	pauseUI *ebitenui.UI

	watcher      *prefabs.Watcher
	hasClipboard bool

	camX, camY float64
	frames     int
	message    string
	messageTTL int
}

func NewGame(cfg sim.Config, speed float64) (*Game, error) {
	s, err := sim.New(cfg)
	if err != nil {
		return nil, err
	}
	if speed <= 0 {
		speed = 1
	}
	g := &Game{sim: s, debug: cfg.Debug, speed: speed}
	g.pauseUI = NewPauseUI(g)
	g.centerCamera()

	if err := clipboard.Init(); err != nil {
		log.Printf("clipboard: %v", err)
	} else {
		g.hasClipboard = true
	}

	if cfg.Debug {
		g.watcher = watchPrefabs()
	}
	return g, nil
}

// watchPrefabs watches the on-disk prefab directories when the game runs
// from the repository root.
func watchPrefabs() *prefabs.Watcher {
	var dirs []string
	for _, dir := range []string{"prefabs", filepath.Join("prefabs", "scripts")} {
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			dirs = append(dirs, dir)
		}
	}
	if len(dirs) == 0 {
		return nil
	}
	w, err := prefabs.NewWatcher(dirs...)
	if err != nil {
		log.Printf("prefabs: watch: %v", err)
		return nil
	}
	log.Printf("prefabs: watching %v", dirs)
	return w
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}

func (g *Game) Update() error {
	g.frames++
	if g.messageTTL > 0 {
		g.messageTTL--
	}
	if g.quit {
		return ebiten.Termination
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.paused = !g.paused
	}
	if g.paused {
		g.pauseUI.Update()
		return nil
	}

	g.pollReload()
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.copyStats()
	}
	if g.sim.Stats().GameOver {
		if inpututil.IsKeyJustPressed(ebiten.KeyR) {
			g.restart()
		}
		return nil
	}

	g.sim.SetInput(readMove())
	g.sim.Step(g.speed / float64(ebiten.TPS()))
	g.followCamera()
	return nil
}

// readMove maps screen-relative keys and the left stick onto world axes.
// Screen up is world (-1, -1) in the isometric projection.
func readMove() (float64, float64) {
	sx, sy := 0.0, 0.0
	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		sx -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		sx += 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		sy -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		sy += 1
	}

	if gamepads := ebiten.GamepadIDs(); len(gamepads) > 0 {
		id := gamepads[0]
		lx := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
		ly := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical)
		if lx*lx+ly*ly > stickDeadzone*stickDeadzone {
			sx, sy = lx, ly
		}
	}
	return sx + sy, sy - sx
}

func (g *Game) pollReload() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case path, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			if err := g.sim.ReloadSpecs(); err != nil {
				log.Printf("prefabs: reload %s: %v", path, err)
				g.flash("reload failed: " + err.Error())
				continue
			}
			log.Printf("prefabs: reloaded after %s changed", path)
			g.flash("reloaded " + filepath.Base(path))
		case err, ok := <-g.watcher.Errors:
			if !ok {
				g.watcher = nil
				return
			}
			log.Printf("prefabs: watch: %v", err)
		default:
			return
		}
	}
}

func (g *Game) copyStats() {
	if !g.hasClipboard {
		g.flash("clipboard unavailable")
		return
	}
	clipboard.Write(clipboard.FmtText, []byte(g.statsText()))
	g.flash("stats copied")
}

func (g *Game) statsText() string {
	st := g.sim.Stats()
	return fmt.Sprintf("map=%s t=%.1fs tick=%d wave=%d agents=%d projectiles=%d gems=%d spawned=%d kills=%d paths=%d nopath=%d explosions=%d hits=%d life=%d xp=%d level=%d",
		g.sim.Map().Name, st.Time, st.Tick, st.Wave, st.Agents, st.Projectiles, st.Pickups, st.Spawned,
		st.Kills, st.PathsPlanned, st.PathsFailed, st.Explosions, st.PlayerHits, st.PlayerLife, st.PlayerXP, st.PlayerLevel)
}

func (g *Game) restart() {
	if err := g.sim.Restart(); err != nil {
		log.Printf("game: restart: %v", err)
		g.flash("restart failed")
		return
	}
	g.paused = false
	g.centerCamera()
}

func (g *Game) flash(msg string) {
	g.message = msg
	g.messageTTL = messageFrames
}

func (g *Game) playerScreen() (float64, float64) {
	return g.sim.Projection().WorldToScreen(g.sim.PlayerPosition())
}

func (g *Game) centerCamera() {
	g.camX, g.camY = g.playerScreen()
}

func (g *Game) followCamera() {
	px, py := g.playerScreen()
	g.camX = common.Lerp(g.camX, px, cameraFollow)
	g.camY = common.Lerp(g.camY, py, cameraFollow)
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.drawWorld(screen)
	g.drawHUD(screen)
	if g.paused {
		g.pauseUI.Draw(screen)
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return baseWidth, baseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
