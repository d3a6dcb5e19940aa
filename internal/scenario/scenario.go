// Package scenario replays recorded games against a tic-tac-toe engine and
// compares the outcome with the expected one.
//
// A scenario table holds one game per line:
//
//	winner,num_valid_moves,method=row,col;row,col;...
//
// winner is X, O, T (tie) or I (incomplete); method is a line tag such as
// "r0", "c2", "d1", or "-". Blank lines and lines starting with '#' are skipped.
package scenario

import (
	"bufio"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

var (
	ErrMalformedScenario = errors.New("malformed scenario")
	ErrUnknownTier       = errors.New("unknown tier")
)

//go:embed scenarios.txt
var builtin string

// Tier selects how much of the engine a scenario run exercises.
type Tier int

const (
	// Base runs row wins, ties and incomplete games with legal moves only.
	Base Tier = iota
	// Moderate adds column and diagonal wins.
	Moderate
	// Complete adds games containing invalid moves.
	Complete
)

func (that Tier) String() string {
	switch that {
	case Base:
		return "base"
	case Moderate:
		return "moderate"
	case Complete:
		return "complete"
	default:
		return "tier(" + strconv.Itoa(int(that)) + ")"
	}
}

// ParseTier - accepts a tier name or its number (1-3).
func ParseTier(s string) (Tier, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "base", "1":
		return Base, nil
	case "moderate", "2":
		return Moderate, nil
	case "complete", "3":
		return Complete, nil
	default:
		return Base, fmt.Errorf("%w: %q", ErrUnknownTier, s)
	}
}

// Expectation is the recorded outcome of a scenario.
type Expectation struct {
	Outcome    entity.Outcome
	Winner     entity.Mark
	Method     entity.Method
	ValidMoves int
}

func (that Expectation) String() string {
	switch that.Outcome {
	case entity.Winner:
		return fmt.Sprintf("winner %s by %s after %d moves", that.Winner, that.Method, that.ValidMoves)
	case entity.Tie:
		return fmt.Sprintf("tie after %d moves", that.ValidMoves)
	default:
		return fmt.Sprintf("incomplete at %d moves", that.ValidMoves)
	}
}

// Matches - reports whether a game result is the expected one.
func (that Expectation) Matches(result entity.Result) bool {
	if result.Outcome != that.Outcome || result.Moves != that.ValidMoves {
		return false
	}

	if that.Outcome == entity.Winner {
		return result.Winner == that.Winner && result.Method == that.Method
	}

	return true
}

type Scenario struct {
	// Line is the 1-based line of the scenario in its table.
	Line     int
	Expected Expectation
	Moves    []entity.Move
}

// HasInvalidMoves - reports whether some of the recorded moves must be rejected.
func (that Scenario) HasInvalidMoves() bool {
	return that.Expected.ValidMoves != len(that.Moves)
}

// Builtin - returns the scenarios shipped with the binary.
func Builtin() ([]Scenario, error) {
	return Parse(strings.NewReader(builtin))
}

// Parse - reads a scenario table.
func Parse(r io.Reader) ([]Scenario, error) {
	var scenarios []Scenario

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++

		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		sc, err := parseLine(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}

		sc.Line = lineNo
		scenarios = append(scenarios, sc)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read scenarios: %w", err)
	}

	return scenarios, nil
}

func parseLine(line string) (Scenario, error) {
	head, body, ok := strings.Cut(line, "=")
	if !ok || strings.Contains(body, "=") {
		return Scenario{}, fmt.Errorf("%w: want exactly one '=' in %q", ErrMalformedScenario, line)
	}

	expected, err := parseExpectation(head)
	if err != nil {
		return Scenario{}, err
	}

	moves, err := parseMoves(body)
	if err != nil {
		return Scenario{}, err
	}

	if expected.ValidMoves > len(moves) {
		return Scenario{}, fmt.Errorf("%w: %d valid moves expected from %d moves",
			ErrMalformedScenario, expected.ValidMoves, len(moves))
	}

	return Scenario{Expected: expected, Moves: moves}, nil
}

func parseExpectation(head string) (Expectation, error) {
	fields := strings.Split(head, ",")
	if len(fields) != 3 {
		return Expectation{}, fmt.Errorf("%w: want winner,moves,method in %q", ErrMalformedScenario, head)
	}

	validMoves, err := strconv.Atoi(strings.TrimSpace(fields[1]))
	if err != nil || validMoves < 0 || validMoves > entity.BoardSize*entity.BoardSize {
		return Expectation{}, fmt.Errorf("%w: bad move count %q", ErrMalformedScenario, fields[1])
	}

	method, err := entity.ParseMethod(strings.TrimSpace(fields[2]))
	if err != nil {
		return Expectation{}, fmt.Errorf("%w: %w", ErrMalformedScenario, err)
	}

	expected := Expectation{ValidMoves: validMoves, Method: method}

	switch winner := strings.TrimSpace(fields[0]); winner {
	case "T":
		expected.Outcome = entity.Tie
	case "I":
		expected.Outcome = entity.Incomplete
	default:
		mark, ok := entity.ParseMark(winner)
		if !ok {
			return Expectation{}, fmt.Errorf("%w: unknown winner %q", ErrMalformedScenario, winner)
		}
		expected.Outcome = entity.Winner
		expected.Winner = mark
	}

	if (expected.Outcome == entity.Winner) == method.IsZero() {
		return Expectation{}, fmt.Errorf("%w: method %s does not fit winner %q", ErrMalformedScenario, method, fields[0])
	}

	return expected, nil
}

func parseMoves(body string) ([]entity.Move, error) {
	parts := strings.Split(body, ";")
	moves := make([]entity.Move, 0, len(parts))

	for _, part := range parts {
		rowText, colText, ok := strings.Cut(part, ",")
		if !ok {
			return nil, fmt.Errorf("%w: bad move %q", ErrMalformedScenario, part)
		}

		row, err := strconv.Atoi(strings.TrimSpace(rowText))
		if err != nil {
			return nil, fmt.Errorf("%w: bad row in %q", ErrMalformedScenario, part)
		}

		col, err := strconv.Atoi(strings.TrimSpace(colText))
		if err != nil {
			return nil, fmt.Errorf("%w: bad column in %q", ErrMalformedScenario, part)
		}

		moves = append(moves, entity.Move{Row: row, Col: col})
	}

	return moves, nil
}

// Filter - keeps the scenarios a tier is graded on.
func Filter(scenarios []Scenario, tier Tier) []Scenario {
	selected := make([]Scenario, 0, len(scenarios))

	for _, sc := range scenarios {
		direction := sc.Expected.Method.Direction
		if tier == Base && (direction == entity.ColumnLine || direction == entity.DiagonalLine) {
			continue
		}

		if tier < Complete && sc.HasInvalidMoves() {
			continue
		}

		selected = append(selected, sc)
	}

	return selected
}
