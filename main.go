package main

import (
	"flag"
	"log"

	"github.com/g-brrzzn/IsoSurvivor/sim"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	debug := flag.Bool("debug", false, "enable debug mode (logging and prefab hot reload)")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	levelName := flag.String("level", sim.DefaultLevel, "level name in levels/ or path to a level file")
	generate := flag.Bool("generate", false, "play on a generated arena instead of -level")
	size := flag.Int("size", 40, "generated arena width and height")
	seed := flag.Int64("seed", 1, "random seed")
	speed := flag.Float64("speed", 1, "simulation speed multiplier")
	flag.Parse()

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(baseWidth, baseHeight)
	ebiten.SetWindowTitle("IsoSurvivor")

	game, err := NewGame(sim.Config{
		Level:    *levelName,
		Generate: *generate,
		Width:    *size,
		Height:   *size,
		Seed:     *seed,
		Debug:    *debug,
	}, *speed)
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
