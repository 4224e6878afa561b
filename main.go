package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"pipet/internal/catch"
	"pipet/internal/config"
	"pipet/internal/garden"
	"pipet/internal/pet"
	"pipet/internal/store"
	"pipet/internal/ui"
)

func main() {
	configPath := flag.String("config", "", "path to a config file (optional)")
	statsOnly := flag.Bool("stats", false, "print a stats snapshot and exit")
	playCatch := flag.Bool("catch", false, "play the catch-the-food minigame")
	tendGarden := flag.Bool("garden", false, "tend the garden")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}

	dbPath, err := cfg.ResolveDBPath()
	if err != nil {
		fmt.Fprintf(os.Stderr, "resolve data path: %v\n", err)
		os.Exit(1)
	}

	db, err := store.Open(dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open store: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("close store: %v", err)
		}
	}()

	switch {
	case *statsOnly:
		runStats(&cfg, db)
	case *playCatch:
		runCatch(&cfg, db)
	case *tendGarden:
		runGarden(&cfg, db)
	default:
		runGame(&cfg, db)
	}
}

func runGame(cfg *config.Config, db *store.Store) {
	program := tea.NewProgram(ui.NewModel(cfg, db))
	if _, err := program.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Alas, there's been an error: %v\n", err)
		os.Exit(1)
	}
}

func runStats(cfg *config.Config, db *store.Store) {
	gateway := pet.NewGateway(db, &cfg.Simulation)
	p, _ := gateway.Load(cfg.PetName, pet.TimeNow().Local().Hour())
	program := tea.NewProgram(ui.NewStatsModel(p))
	if _, err := program.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Alas, there's been an error: %v\n", err)
		os.Exit(1)
	}
}

func runCatch(cfg *config.Config, db *store.Store) {
	gateway := pet.NewGateway(db, &cfg.Simulation)
	p, _ := gateway.Load(cfg.PetName, pet.TimeNow().Local().Hour())
	catch.Run(p, gateway)
}

func runGarden(cfg *config.Config, db *store.Store) {
	gateway := pet.NewGateway(db, &cfg.Simulation)
	p, _ := gateway.Load(cfg.PetName, pet.TimeNow().Local().Hour())
	garden.Run(p, gateway, db)
}
