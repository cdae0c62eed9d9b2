package console

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"
	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

const (
	colorX     = "#E06C75"
	colorO     = "#61AFEF"
	colorError = "#E5C07B"
)

// Renderer draws the board and game messages to a terminal.
type Renderer struct {
	out *termenv.Output
}

// NewRenderer writes to w. Colors are used only when color is set and w supports them.
func NewRenderer(w io.Writer, color bool) *Renderer {
	opts := []termenv.OutputOption{}
	if !color {
		opts = append(opts, termenv.WithProfile(termenv.Ascii))
	}

	return &Renderer{out: termenv.NewOutput(w, opts...)}
}

func (that *Renderer) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(that.out, format, args...)
}

func (that *Renderer) RenderBanner() {
	that.printf("╔════════════════════════════════╗\n")
	that.printf("║      Welcome to Tic Tac Toe!   ║\n")
	that.printf("╚════════════════════════════════╝\n")
	that.printf("\nGame started! Player %s goes first.\n", that.mark(entity.PlayerX))
	that.printf("Enter moves as: row column (e.g., '1 2' for middle-right)\n")
}

func (that *Renderer) RenderBoard(board entity.Board) {
	var sb strings.Builder

	header := "   "
	for col := 0; col < entity.BoardSize; col++ {
		header += fmt.Sprintf(" %d  ", col)
	}
	sb.WriteString("\n" + strings.TrimRight(header, " ") + "\n")

	for row, cells := range board.Rows() {
		fmt.Fprintf(&sb, "%d  ", row)
		for col, cell := range cells {
			sb.WriteString(" " + that.cell(cell) + " ")
			if col < entity.BoardSize-1 {
				sb.WriteString("│")
			}
		}
		sb.WriteString("\n")

		if row < entity.BoardSize-1 {
			sb.WriteString("   " + strings.Repeat("───┼", entity.BoardSize-1) + "───\n")
		}
	}
	sb.WriteString("\n")

	that.printf("%s", sb.String())
}

func (that *Renderer) RenderRejection(_ entity.Player, err error) {
	var message string

	switch {
	case errors.Is(err, apperror.ErrMalformedInput):
		message = "Invalid input. Please enter two numbers separated by a space."
	case errors.Is(err, apperror.ErrOutOfRange):
		message = fmt.Sprintf("Coordinates out of range. Use 0-%d for both row and column.", entity.BoardSize-1)
	case errors.Is(err, apperror.ErrCellOccupied):
		message = "That cell is already occupied. Choose another."
	default:
		message = err.Error()
	}

	that.printf("%s\n", that.out.String(message).Foreground(that.out.Color(colorError)))
}

func (that *Renderer) RenderOutcome(state entity.GameState) {
	outcome, err := state.Outcome()
	if err != nil {
		outcome = err.Error()
	}

	that.printf("%s\n", that.out.String(outcome).Bold())
}

func (that *Renderer) RenderScoreboard(scoreboard entity.Scoreboard) {
	that.printf("Scoreboard after %d games: X %d, O %d, draws %d\n",
		scoreboard.Total(), scoreboard.XWins, scoreboard.OWins, scoreboard.Draws)
}

func (that *Renderer) RenderFarewell() {
	that.printf("\nThanks for playing!\n")
}

func (that *Renderer) cell(r rune) string {
	switch r {
	case 'X':
		return that.mark(entity.PlayerX).String()
	case 'O':
		return that.mark(entity.PlayerO).String()
	default:
		return string(r)
	}
}

func (that *Renderer) mark(player entity.Player) termenv.Style {
	color := colorX
	if player == entity.PlayerO {
		color = colorO
	}

	return that.out.String(player.String()).Foreground(that.out.Color(color)).Bold()
}
