package main

import (
	"fmt"

	"viruswar/internal/engine"
	"viruswar/internal/viruswar"
)

func main() {
	g := viruswar.NewGame()
	fmt.Println("FEN:", g.Encode())
	fmt.Println("Blue legal moves:", g.Board.LegalMovesFor(viruswar.Blue))
	fmt.Println("Red legal moves:", g.Board.LegalMovesFor(viruswar.Red))
	fmt.Println("Evaluate:", engine.Evaluate(g))
}
