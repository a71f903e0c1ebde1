package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"os"
	"time"

	"github.com/g-brrzzn/IsoSurvivor/sim"
)

func main() {
	levelName := flag.String("level", sim.DefaultLevel, "level name in levels/ or path to a level file")
	generate := flag.Bool("generate", false, "use a generated arena instead of -level")
	size := flag.Int("size", 40, "generated arena width and height")
	seed := flag.Int64("seed", 1, "random seed")
	ticks := flag.Int("ticks", 3600, "ticks to simulate")
	rate := flag.Float64("rate", 60, "ticks per simulated second")
	every := flag.Int("every", 600, "print a report every n ticks (0 disables)")
	idle := flag.Bool("idle", false, "leave the player standing instead of circling")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	s, err := sim.New(sim.Config{
		Level:    *levelName,
		Generate: *generate,
		Width:    *size,
		Height:   *size,
		Seed:     *seed,
		Debug:    *debug,
	})
	if err != nil {
		log.Fatal(err)
	}

	dt := 1 / *rate
	start := time.Now()
	for i := 1; i <= *ticks; i++ {
		if !*idle {
			// Circle slowly so agents keep replanning.
			a := float64(i) * dt * 0.5
			s.SetInput(math.Cos(a), math.Sin(a))
		}
		s.Step(dt)
		if *every > 0 && i%*every == 0 {
			report(s)
		}
		if s.Stats().GameOver {
			fmt.Printf("player died at tick %d\n", i)
			break
		}
	}
	elapsed := time.Since(start)

	report(s)
	st := s.Stats()
	fmt.Printf("simulated %d ticks in %s (%.0f ticks/s)\n", st.Tick, elapsed.Round(time.Millisecond), float64(st.Tick)/elapsed.Seconds())
	if st.GameOver {
		os.Exit(1)
	}
}

func report(s *sim.Sim) {
	st := s.Stats()
	fmt.Printf("t=%6.1fs tick=%6d map=%s wave=%d agents=%d projectiles=%d gems=%d spawned=%d kills=%d paths=%d nopath=%d explosions=%d life=%d xp=%d lvl=%d\n",
		st.Time, st.Tick, s.Map().Name, st.Wave, st.Agents, st.Projectiles, st.Pickups, st.Spawned,
		st.Kills, st.PathsPlanned, st.PathsFailed, st.Explosions, st.PlayerLife, st.PlayerXP, st.PlayerLevel)
}
