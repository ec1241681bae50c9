package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"

	"github.com/gdamore/tcell/v2"

	"luminary/internal/app"
	"luminary/internal/core"
	_ "luminary/internal/sims/cyclic"
	_ "luminary/internal/sims/hanabi"
	"luminary/internal/sims/installation"
	_ "luminary/internal/sims/turing"
	"luminary/internal/term"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	var sim core.Sim
	if cfg.Sim == "installation" {
		w, err := installation.New(installation.FromMap(cfg.Options()))
		if err != nil {
			log.Fatalf("installation: %v", err)
		}
		sim = w
	} else {
		factory, ok := core.Sims()[cfg.Sim]
		if !ok {
			log.Fatalf("unknown sim %q", cfg.Sim)
		}
		sim = factory(cfg.Options())
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("creating screen: %v", err)
	}
	if err = screen.Init(); err != nil {
		log.Fatalf("initializing screen: %v", err)
	}
	defer screen.Fini()
	screen.Clear()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := term.New(screen, sim, cfg.TPS, cfg.Seed).Run(ctx); err != nil && ctx.Err() == nil {
		screen.Fini()
		log.Fatal(err)
	}
}
