// Package display draws a viruswar game into a tcell screen.
package display

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"viruswar/internal/engine"
	"viruswar/internal/viruswar"
)

// Styles per display state. Blue is drawn in cyan, Red in red, all bold.
var stateStyles = map[viruswar.DisplayState]tcell.Style{
	viruswar.ShowEmpty:    tcell.StyleDefault.Bold(true),
	viruswar.ShowBlueUnit: tcell.StyleDefault.Bold(true).Foreground(tcell.ColorTeal),
	viruswar.ShowRedUnit:  tcell.StyleDefault.Bold(true).Foreground(tcell.ColorMaroon),
	viruswar.ShowBlueWall: tcell.StyleDefault.Bold(true).Foreground(tcell.ColorTeal),
	viruswar.ShowRedWall:  tcell.StyleDefault.Bold(true).Foreground(tcell.ColorMaroon),
}

func playerStyle(p viruswar.Player) tcell.Style {
	if p == viruswar.Blue {
		return stateStyles[viruswar.ShowBlueUnit]
	}
	return stateStyles[viruswar.ShowRedUnit]
}

// Draw renders the grid at the top left corner, two columns per cell for a
// square look, followed by the status line.
func Draw(screen tcell.Screen, g *viruswar.Game) {
	for row := 0; row < viruswar.Size; row++ {
		for col := 0; col < viruswar.Size; col++ {
			cell := g.Board[row][col]
			style := stateStyles[cell.Display()]
			glyph := []rune(cell.String())[0]
			screen.SetContent(col*2, row, glyph, nil, style)
			screen.SetContent(col*2+1, row, ' ', nil, tcell.StyleDefault)
		}
	}

	y := viruswar.Size + 1
	x := drawText(screen, 0, y, tcell.StyleDefault, "It is the ")
	x = drawText(screen, x, y, playerStyle(g.Player), g.Player.String())
	drawText(screen, x, y, tcell.StyleDefault, fmt.Sprintf(" player's turn. %d turns are left.", g.TurnsLeft))
}

// DrawResult writes the search outcome below the status line.
func DrawResult(screen tcell.Screen, res engine.SearchResult) {
	y := viruswar.Size + 2
	if res.BestMove == viruswar.NoMove {
		drawText(screen, 0, y, tcell.StyleDefault, fmt.Sprintf("No legal move, score %d", res.Score))
		return
	}
	drawText(screen, 0, y, tcell.StyleDefault,
		fmt.Sprintf("Best move: %v, score %d (depth %d, %d nodes)", res.BestMove, res.Score, res.Depth, res.Nodes))
}

// Show opens the terminal, draws the game and the result, and blocks until a
// key is pressed.
func Show(g *viruswar.Game, res engine.SearchResult) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	redraw := func() {
		screen.Clear()
		Draw(screen, g)
		DrawResult(screen, res)
		drawText(screen, 0, viruswar.Size+4, tcell.StyleDefault.Dim(true), "press any key to quit")
		screen.Show()
	}
	redraw()

	for {
		switch screen.PollEvent().(type) {
		case *tcell.EventResize:
			screen.Sync()
			redraw()
		case *tcell.EventKey:
			return nil
		case nil:
			return nil
		}
	}
}

func drawText(screen tcell.Screen, x, y int, style tcell.Style, s string) int {
	for _, r := range s {
		screen.SetContent(x, y, r, nil, style)
		x++
	}
	return x
}
