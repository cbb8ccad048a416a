package main

import (
	"flag"
	"fmt"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"

	"viruswar/internal/config"
	"viruswar/internal/display"
	"viruswar/internal/engine"
	"viruswar/internal/viruswar"
)

func main() {
	cfgPath := flag.String("config", "", "config file (default: $XDG_CONFIG_HOME/viruswar/config.json)")
	depth := flag.Int("depth", -1, "search depth in plies (overrides config)")
	position := flag.String("position", "", "start from an encoded position instead of the initial one")
	moves := flag.String("moves", "", `moves to replay before searching, e.g. "1 1;2 2"`)
	logLevel := flag.String("log-level", "", "log level (overrides config)")
	tui := flag.Bool("tui", false, "show the board in the terminal view")
	flag.Parse()

	cfg, err := loadConfig(*cfgPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if *depth >= 0 {
		cfg.Depth = *depth
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}
	log.SetLevel(cfg.Level())

	game := viruswar.NewGame()
	if *position != "" {
		game, err = viruswar.DecodeGame(*position)
		if err != nil {
			log.Fatalf("position: %v", err)
		}
	}
	if err := replay(game, *moves); err != nil {
		log.Fatalf("moves: %v", err)
	}

	res := engine.NewEngine().Search(game, engine.SearchConfig{Depth: cfg.Depth})

	if *tui {
		if err := display.Show(game, res); err != nil {
			log.Fatalf("terminal: %v", err)
		}
		return
	}

	fmt.Println(game)
	if res.BestMove == viruswar.NoMove {
		fmt.Printf("%v has no legal move. Score: %d\n", game.Player, res.Score)
		return
	}
	fmt.Printf("Best move for %v: %v. Score: %d (depth %d, %d nodes, %v)\n",
		game.Player, res.BestMove, res.Score, res.Depth, res.Nodes, res.TimeUsed)
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFile(path)
	}
	return config.Load()
}

// replay 依次走 "row col;row col" 格式的着法，每一步都做合法性检查
func replay(game *viruswar.Game, moves string) error {
	for _, part := range strings.Split(moves, ";") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		pos, err := parsePos(part)
		if err != nil {
			return err
		}
		if err := game.Play(pos); err != nil {
			return err
		}
		log.WithFields(log.Fields{"move": pos.String(), "player": game.Player.String()}).Debug("replayed")
	}
	return nil
}

func parsePos(s string) (viruswar.BoardPos, error) {
	fields := strings.Fields(strings.ReplaceAll(s, ",", " "))
	if len(fields) != 2 {
		return viruswar.NoMove, fmt.Errorf("bad move %q: want \"row col\"", s)
	}
	row, err := strconv.Atoi(fields[0])
	if err != nil {
		return viruswar.NoMove, fmt.Errorf("bad row in %q: %w", s, err)
	}
	col, err := strconv.Atoi(fields[1])
	if err != nil {
		return viruswar.NoMove, fmt.Errorf("bad column in %q: %w", s, err)
	}
	return viruswar.BoardPos{Row: row, Col: col}, nil
}
