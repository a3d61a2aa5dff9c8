// Package board implements the reversi rules: move legality and disc flipping.
// Every function is pure; boards are values and are never modified in place.
package board

import (
	"github.com/mcoot/reversigame/internal/model"
)

// FlipRun returns the opponent discs that placing color at pos would flip
// along dir, nearest first. It returns nil if the direction has no run: the
// adjacent cell must be the opponent's, and the scan must reach one of the
// mover's discs before an empty cell or the board edge.
func FlipRun(b model.Board, pos model.Position, color model.Color, dir model.Direction) []model.Position {
	own := color.Cell()
	opp := color.Opponent().Cell()

	cur := pos.Step(dir)
	if !cur.Valid() || b.At(cur) != opp {
		return nil
	}

	var run []model.Position
	for cur.Valid() {
		switch b.At(cur) {
		case own:
			return run
		case model.Empty:
			return nil
		}
		run = append(run, cur)
		cur = cur.Step(dir)
	}
	return nil
}

// hasFlipRun is FlipRun without the allocation
func hasFlipRun(b model.Board, pos model.Position, color model.Color, dir model.Direction) bool {
	own := color.Cell()
	opp := color.Opponent().Cell()

	cur := pos.Step(dir)
	if !cur.Valid() || b.At(cur) != opp {
		return false
	}
	for ; cur.Valid(); cur = cur.Step(dir) {
		switch b.At(cur) {
		case own:
			return true
		case model.Empty:
			return false
		}
	}
	return false
}

// IsLegalMove reports whether color may place a disc at pos
func IsLegalMove(b model.Board, pos model.Position, color model.Color) bool {
	if !pos.Valid() || !color.Valid() || b.At(pos) != model.Empty {
		return false
	}
	for _, dir := range model.Directions {
		if hasFlipRun(b, pos, color, dir) {
			return true
		}
	}
	return false
}

// Flips returns every disc flipped by the move, grouped by direction in
// model.Directions order
func Flips(b model.Board, pos model.Position, color model.Color) []model.Position {
	if !pos.Valid() || !color.Valid() || b.At(pos) != model.Empty {
		return nil
	}
	var flips []model.Position
	for _, dir := range model.Directions {
		flips = append(flips, FlipRun(b, pos, color, dir)...)
	}
	return flips
}

// ApplyMove places color at pos and flips every run it closes.
// The caller's board is not modified; the result is a new board.
func ApplyMove(b model.Board, pos model.Position, color model.Color) (model.Board, error) {
	if !IsLegalMove(b, pos, color) {
		return b, model.ErrIllegalMove
	}

	next := b
	next[pos.Row][pos.Col] = color.Cell()
	for _, p := range Flips(b, pos, color) {
		next[p.Row][p.Col] = color.Cell()
	}
	return next, nil
}

// LegalMoves lists every legal move for color in row-major order
func LegalMoves(b model.Board, color model.Color) []model.Position {
	var moves []model.Position
	for row := 0; row < model.BoardSize; row++ {
		for col := 0; col < model.BoardSize; col++ {
			pos := model.Position{Row: row, Col: col}
			if IsLegalMove(b, pos, color) {
				moves = append(moves, pos)
			}
		}
	}
	return moves
}

// HasLegalMove reports whether color has at least one legal move
func HasLegalMove(b model.Board, color model.Color) bool {
	for row := 0; row < model.BoardSize; row++ {
		for col := 0; col < model.BoardSize; col++ {
			if IsLegalMove(b, model.Position{Row: row, Col: col}, color) {
				return true
			}
		}
	}
	return false
}
