//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"sort"
	"strings"

	"luminary/internal/app"
	"luminary/internal/core"
	_ "luminary/internal/sims/cyclic"
	_ "luminary/internal/sims/hanabi"
	"luminary/internal/sims/installation"
	_ "luminary/internal/sims/turing"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	sim, err := build(cfg)
	if err != nil {
		log.Fatal(err)
	}

	game := app.New(sim, cfg.Scale, cfg.HUDWidth, cfg.Seed)
	size := sim.Size()

	ebiten.SetWindowTitle("luminary: " + sim.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(size.W*cfg.Scale+cfg.HUDWidth, size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}

// build constructs the selected sim. The installation is built directly so a
// bad geometry is reported instead of replaced by the default.
func build(cfg *app.Config) (core.Sim, error) {
	opts := cfg.Options()
	if cfg.Sim == "installation" {
		return installation.New(installation.FromMap(opts))
	}
	factory, ok := core.Sims()[cfg.Sim]
	if !ok {
		names := make([]string, 0, len(core.Sims()))
		for name := range core.Sims() {
			names = append(names, name)
		}
		sort.Strings(names)
		log.Fatalf("unknown sim %q (have %s)", cfg.Sim, strings.Join(names, ", "))
	}
	return factory(opts), nil
}
