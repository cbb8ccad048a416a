package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"lukechampine.com/frand"

	"viruswar/internal/engine"
	"viruswar/internal/viruswar"
)

// TestCase 一个随机局面及其走法生成/评估结果，给其它实现做对照
type TestCase struct {
	Position   string              `json:"position"`
	Player     string              `json:"player"`
	TurnsLeft  int                 `json:"turns_left"`
	LegalMoves []viruswar.BoardPos `json:"legal_moves"`
	Mobility   [2]int              `json:"mobility"` // [Blue, Red]
	Eval       int                 `json:"eval"`
}

func main() {
	numGames := flag.Int("games", 10, "number of random games")
	maxMoves := flag.Int("maxmoves", 200, "plies per game")
	out := flag.String("out", "move_gen_test_data.json", "output file")
	flag.Parse()

	var testCases []TestCase
	for g := 0; g < *numGames; g++ {
		game := viruswar.NewGame()
		for moveCount := 0; moveCount < *maxMoves; moveCount++ {
			legalMoves := game.LegalMoves()

			testCases = append(testCases, TestCase{
				Position:   game.Encode(),
				Player:     game.Player.String(),
				TurnsLeft:  game.TurnsLeft,
				LegalMoves: legalMoves,
				Mobility: [2]int{
					game.Board.Mobility(viruswar.Blue),
					game.Board.Mobility(viruswar.Red),
				},
				Eval: engine.Evaluate(game),
			})

			if len(legalMoves) == 0 {
				break
			}
			// 随机选一步
			game.Apply(legalMoves[frand.Intn(len(legalMoves))])
		}
	}

	file, err := json.MarshalIndent(testCases, "", "  ")
	if err != nil {
		log.Fatalf("marshal: %v", err)
	}
	if err := os.WriteFile(*out, file, 0644); err != nil {
		log.Fatalf("write %s: %v", *out, err)
	}
	fmt.Printf("Generated %d test cases from %d random games to %s\n", len(testCases), *numGames, *out)
}
