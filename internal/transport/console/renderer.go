package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

const (
	columnHeader = "     A   B   C"
	rowSeparator = "   +---+---+---+"
)

// Renderer writes the game to a terminal.
type Renderer struct {
	out io.Writer
}

func NewRenderer(out io.Writer) *Renderer {
	return &Renderer{out: out}
}

// FormatBoard - the ASCII grid, one line per row, columns A-C and rows 1-3.
func FormatBoard(board *entity.Board) string {
	var sb strings.Builder

	sb.WriteString(columnHeader + "\n")
	sb.WriteString(rowSeparator + "\n")

	for y := range entity.BoardSize {
		fmt.Fprintf(&sb, " %d |", y+1)
		for x := range entity.BoardSize {
			fmt.Fprintf(&sb, " %s |", symbol(board.Get(entity.NewCoordinate(x, y))))
		}
		sb.WriteString("\n")
		sb.WriteString(rowSeparator + "\n")
	}

	return sb.String()
}

func symbol(cell entity.Cell) string {
	if side, ok := cell.Side(); ok {
		return side.String()
	}

	return " "
}

func (that *Renderer) ShowBoard(board *entity.Board) {
	that.print(FormatBoard(board))
}

func (that *Renderer) AnnounceGame(game *entity.Game) {
	that.print(fmt.Sprintf("Game %s\n\n", game.ID))
}

// AnnounceMove - reports a move chosen by an automated player.
func (that *Renderer) AnnounceMove(side entity.Side, coordinate entity.Coordinate) {
	that.print(fmt.Sprintf("\n%s chooses %s\n\n", side, coordinate))
}

// AnnounceResult - the outcome followed by the final board.
func (that *Renderer) AnnounceResult(game *entity.Game) {
	that.print("\n" + ResultMessage(game) + "\n\n")
	that.ShowBoard(game.Board)
}

func ResultMessage(game *entity.Game) string {
	if game.Winner != "" {
		return fmt.Sprintf("%s wins!", game.Winner)
	}

	return "The game ended in a draw!"
}

func (that *Renderer) print(text string) {
	// terminal write failures are not recoverable here
	_, _ = io.WriteString(that.out, text)
}
