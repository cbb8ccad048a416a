package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	log "github.com/sirupsen/logrus"

	"viruswar/internal/config"
	"viruswar/internal/selfplay"
)

func main() {
	cfgPath := flag.String("config", "", "config file (default: $XDG_CONFIG_HOME/viruswar/config.json)")
	games := flag.Int("games", 0, "number of games to play (overrides config)")
	workers := flag.Int("workers", 0, "games played at the same time (overrides config)")
	depth := flag.Int("depth", 0, "search depth (overrides config)")
	opening := flag.Int("opening", -1, "random opening plies (overrides config)")
	maxPlies := flag.Int("maxplies", 0, "plies before a game is drawn (overrides config)")
	flag.Parse()

	var (
		cfg *config.Config
		err error
	)
	if *cfgPath != "" {
		cfg, err = config.LoadFile(*cfgPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	sp := &cfg.SelfPlay
	if *games > 0 {
		sp.Games = *games
	}
	if *workers > 0 {
		sp.Workers = *workers
	}
	if *depth > 0 {
		sp.Depth = *depth
	}
	if *opening >= 0 {
		sp.OpeningPlies = *opening
	}
	if *maxPlies > 0 {
		sp.MaxPlies = *maxPlies
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}
	log.SetLevel(cfg.Level())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	sum, err := selfplay.Run(ctx, selfplay.Options{
		Games:        sp.Games,
		Workers:      sp.Workers,
		Depth:        sp.Depth,
		OpeningPlies: sp.OpeningPlies,
		MaxPlies:     sp.MaxPlies,
	})
	if err != nil {
		log.Fatalf("selfplay: %v", err)
	}

	for i, rec := range sum.Records {
		result := "Draw"
		if rec.Decided {
			result = rec.Winner.String() + " wins"
		}
		fmt.Printf("Game %d [%s]: %s after %d plies, %d nodes\n", i+1, rec.ID, result, rec.Plies, rec.Nodes)
	}
	fmt.Printf("\n=== Final Score ===\n")
	fmt.Printf("Blue: %d\n", sum.BlueWins)
	fmt.Printf("Red: %d\n", sum.RedWins)
	fmt.Printf("Draws: %d\n", sum.Draws)
	fmt.Printf("Distinct final positions: %d/%d\n", sum.Distinct, len(sum.Records))
	fmt.Printf("Time: %v\n", sum.Elapsed)
}
