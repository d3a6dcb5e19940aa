package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
	"github.com/rocketscienceinc/tictactoe-console/internal/tictactoe"
)

const (
	promptFormat     = "Next move (row,col) for %s: "
	parseFailureText = "Could not parse move"
	invalidMoveText  = "Invalid move"

	// longer lines are cut and rejected as unparsable
	maxLineLength = 1024
)

// Console reads moves from a line-oriented reader and prints the game to a writer.
// It is both the tictactoe.MoveSource and the tictactoe.Renderer of a console game.
type Console struct {
	reader *bufio.Reader
	out    io.Writer

	// first write failure, reported by Err
	err error
}

var (
	_ tictactoe.MoveSource = (*Console)(nil)
	_ tictactoe.Renderer   = (*Console)(nil)
)

func New(in io.Reader, out io.Writer) *Console {
	return &Console{
		reader: bufio.NewReader(in),
		out:    out,
	}
}

// NextMove - prompts the player and parses the next input line.
// A parse failure is returned as *apperror.ParseError; end of input as io.EOF.
func (that *Console) NextMove(player entity.Mark) (entity.Move, error) {
	if _, err := fmt.Fprintf(that.out, promptFormat, player); err != nil {
		return entity.Move{}, fmt.Errorf("failed to write prompt: %w", err)
	}

	line, truncated, err := that.readLine()
	if errors.Is(err, io.EOF) {
		// keep the board output on its own line
		that.println("")

		return entity.Move{}, io.EOF
	}

	if err != nil {
		return entity.Move{}, fmt.Errorf("failed to read move: %w", err)
	}

	if truncated {
		return entity.Move{}, &apperror.ParseError{Input: line}
	}

	return tictactoe.ParseMoveInput(line)
}

// readLine - returns the next input line without its line ending. A line over
// maxLineLength is consumed whole, only its head is returned.
func (that *Console) readLine() (string, bool, error) {
	var line []byte
	truncated := false

	for {
		chunk, isPrefix, err := that.reader.ReadLine()
		if err != nil {
			return "", false, err
		}

		if room := maxLineLength - len(line); len(chunk) > room {
			chunk = chunk[:room]
			truncated = true
		}
		line = append(line, chunk...)

		if !isPrefix {
			return strings.TrimRight(string(line), "\r"), truncated, nil
		}
	}
}

// Board - prints three lines of cells joined by "|".
func (that *Console) Board(board entity.Board) {
	for _, row := range board.Rows() {
		that.println(row)
	}
}

func (that *Console) Rejected(_ entity.Mark, err error) {
	if errors.Is(err, apperror.ErrUnparsableMove) {
		that.println(parseFailureText)
		return
	}

	that.println(invalidMoveText)
}

// Result - prints the winning mark or "No winner".
func (that *Console) Result(result entity.Result) {
	that.println(result.Announcement())
}

// Err - returns the first error met while writing to the output.
func (that *Console) Err() error {
	return that.err
}

func (that *Console) println(line string) {
	if that.err != nil {
		return
	}

	if _, err := fmt.Fprintln(that.out, line); err != nil {
		that.err = fmt.Errorf("failed to write to console: %w", err)
	}
}
