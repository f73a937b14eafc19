package console

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

// HumanPlayer reads moves like "B2" from a line-oriented input.
type HumanPlayer struct {
	scanner  *bufio.Scanner
	renderer *Renderer
}

func NewHumanPlayer(in io.Reader, out io.Writer) *HumanPlayer {
	return &HumanPlayer{
		scanner:  bufio.NewScanner(in),
		renderer: NewRenderer(out),
	}
}

// SelectMove - shows the board and prompts until a legal coordinate is entered.
func (that *HumanPlayer) SelectMove(board *entity.Board, side entity.Side) (entity.Coordinate, error) {
	for {
		that.renderer.ShowBoard(board)
		that.renderer.print(fmt.Sprintf("\nEnter %s move:\n", side))

		if !that.scanner.Scan() {
			if err := that.scanner.Err(); err != nil {
				return entity.Coordinate{}, fmt.Errorf("%w: %w", apperror.ErrInputClosed, err)
			}
			return entity.Coordinate{}, apperror.ErrInputClosed
		}

		coordinate, err := entity.ParseCoordinate(strings.TrimSpace(that.scanner.Text()))
		if err != nil {
			that.renderer.print(err.Error() + "\n")
			continue
		}

		if !board.IsLegal(coordinate) {
			that.renderer.print((&entity.IllegalMoveError{Coordinate: coordinate}).Error() + "\n")
			continue
		}

		return coordinate, nil
	}
}
