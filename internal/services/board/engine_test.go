package board

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/reversigame/internal/model"
)

type EngineSuite struct {
	suite.Suite
	initial model.Board
}

func TestEngineSuite(t *testing.T) {
	suite.Run(t, new(EngineSuite))
}

func (s *EngineSuite) SetupTest() {
	s.initial = model.InitialBoard()
}

// parseBoard builds a board from 8 rows of '.', 'D' (dark) and 'L' (light)
func (s *EngineSuite) parseBoard(rows ...string) model.Board {
	s.Require().Len(rows, model.BoardSize)
	var b model.Board
	for r, line := range rows {
		s.Require().Len(line, model.BoardSize)
		for c, ch := range line {
			switch ch {
			case 'D':
				b[r][c] = model.Dark
			case 'L':
				b[r][c] = model.Light
			}
		}
	}
	return b
}

func pos(row, col int) model.Position {
	return model.Position{Row: row, Col: col}
}

// LegalMoves tests

func (s *EngineSuite) TestLegalMovesInitialDark() {
	moves := LegalMoves(s.initial, model.ColorDark)
	s.Equal([]model.Position{pos(2, 3), pos(3, 2), pos(4, 5), pos(5, 4)}, moves)
}

func (s *EngineSuite) TestLegalMovesInitialLight() {
	moves := LegalMoves(s.initial, model.ColorLight)
	s.Equal([]model.Position{pos(2, 4), pos(3, 5), pos(4, 2), pos(5, 3)}, moves)
}

func (s *EngineSuite) TestLegalMovesEmptyBoard() {
	s.Empty(LegalMoves(model.Board{}, model.ColorDark))
	s.False(HasLegalMove(model.Board{}, model.ColorDark))
}

func (s *EngineSuite) TestHasLegalMoveMatchesLegalMoves() {
	s.True(HasLegalMove(s.initial, model.ColorDark))
	s.True(HasLegalMove(s.initial, model.ColorLight))
}

// IsLegalMove tests

func (s *EngineSuite) TestIsLegalMoveOccupied() {
	s.False(IsLegalMove(s.initial, pos(3, 3), model.ColorDark))
	s.False(IsLegalMove(s.initial, pos(3, 4), model.ColorDark))
}

func (s *EngineSuite) TestIsLegalMoveOutOfBounds() {
	s.False(IsLegalMove(s.initial, pos(-1, 0), model.ColorDark))
	s.False(IsLegalMove(s.initial, pos(0, 8), model.ColorDark))
}

func (s *EngineSuite) TestIsLegalMoveInvalidColor() {
	s.False(IsLegalMove(s.initial, pos(2, 3), model.ColorNone))
	s.False(IsLegalMove(s.initial, pos(2, 3), model.Color(7)))
}

func (s *EngineSuite) TestIsLegalMoveNoAdjacentOpponent() {
	s.False(IsLegalMove(s.initial, pos(0, 0), model.ColorDark))
	s.False(IsLegalMove(s.initial, pos(2, 2), model.ColorDark))
}

func (s *EngineSuite) TestIsLegalMoveRunReachesEdge() {
	b := s.parseBoard(
		".LLLLLLL",
		"........",
		"........",
		"........",
		"........",
		"........",
		"........",
		"........",
	)
	s.False(IsLegalMove(b, pos(0, 0), model.ColorDark))
}

func (s *EngineSuite) TestIsLegalMoveEmptyBreaksRun() {
	b := s.parseBoard(
		".L.D....",
		"........",
		"........",
		"........",
		"........",
		"........",
		"........",
		"........",
	)
	s.False(IsLegalMove(b, pos(0, 0), model.ColorDark))
}

func (s *EngineSuite) TestIsLegalMoveLongestRun() {
	b := s.parseBoard(
		"DLLLLLL.",
		"........",
		"........",
		"........",
		"........",
		"........",
		"........",
		"........",
	)
	s.True(IsLegalMove(b, pos(0, 7), model.ColorDark))
	s.Len(FlipRun(b, pos(0, 7), model.ColorDark, model.Direction{DRow: 0, DCol: -1}), 6)
}

// ApplyMove tests

func (s *EngineSuite) TestApplyMoveOpening() {
	next, err := ApplyMove(s.initial, pos(2, 3), model.ColorDark)
	s.Require().NoError(err)

	s.Equal(model.Dark, next.At(pos(2, 3)))
	s.Equal(model.Dark, next.At(pos(3, 3)))
	s.Equal(1, next.Count(model.Light))
	s.Equal(model.Light, next.At(pos(4, 4)))
	s.Equal(4, next.Count(model.Dark))
}

func (s *EngineSuite) TestApplyMoveDoesNotMutateInput() {
	before := s.initial
	_, err := ApplyMove(s.initial, pos(2, 3), model.ColorDark)
	s.Require().NoError(err)

	s.Equal(before, s.initial)
	s.Equal(model.Light, s.initial.At(pos(3, 3)))
}

func (s *EngineSuite) TestApplyMoveIllegal() {
	next, err := ApplyMove(s.initial, pos(0, 0), model.ColorDark)
	s.ErrorIs(err, model.ErrIllegalMove)
	s.Equal(s.initial, next)
}

func (s *EngineSuite) TestApplyMoveFlipsSeveralDirections() {
	b := s.parseBoard(
		"D.D.D...",
		".LLL....",
		"DL.LD...",
		".LLL....",
		"D.D.D...",
		"........",
		"........",
		"........",
	)
	next, err := ApplyMove(b, pos(2, 2), model.ColorDark)
	s.Require().NoError(err)

	s.Equal(0, next.Count(model.Light))
	s.Equal(b.Discs()+1, next.Discs())
}

func (s *EngineSuite) TestApplyMoveOnlyFlipsClosedRuns() {
	b := s.parseBoard(
		"........",
		"........",
		"..LLD...",
		"..L.....",
		"..L.....",
		"........",
		"........",
		"........",
	)
	next, err := ApplyMove(b, pos(2, 1), model.ColorDark)
	s.Require().NoError(err)

	s.Equal(model.Dark, next.At(pos(2, 2)))
	s.Equal(model.Dark, next.At(pos(2, 3)))
	// discs below are not on a run closed by a dark disc
	s.Equal(model.Light, next.At(pos(3, 2)))
	s.Equal(model.Light, next.At(pos(4, 2)))
}

// Flips tests

func (s *EngineSuite) TestFlipsIllegalIsEmpty() {
	s.Empty(Flips(s.initial, pos(0, 0), model.ColorDark))
	s.Empty(Flips(s.initial, pos(3, 3), model.ColorDark))
}

func (s *EngineSuite) TestFlipsOpening() {
	s.Equal([]model.Position{pos(3, 3)}, Flips(s.initial, pos(2, 3), model.ColorDark))
}

// Disc conservation over a full game

func (s *EngineSuite) TestPlayoutConservesDiscs() {
	b := s.initial
	color := model.ColorDark
	passes := 0

	for passes < 2 {
		moves := LegalMoves(b, color)
		if len(moves) == 0 {
			passes++
			color = color.Opponent()
			continue
		}
		passes = 0

		// alternate between first and last move to vary the game
		move := moves[0]
		if b.Discs()%2 == 1 {
			move = moves[len(moves)-1]
		}

		flips := Flips(b, move, color)
		s.Require().NotEmpty(flips)

		next, err := ApplyMove(b, move, color)
		s.Require().NoError(err)

		s.Equal(b.Discs()+1, next.Discs())
		s.Equal(b.Count(color.Cell())+1+len(flips), next.Count(color.Cell()))
		s.Equal(b.Count(color.Opponent().Cell())-len(flips), next.Count(color.Opponent().Cell()))

		b = next
		color = color.Opponent()
	}

	s.False(HasLegalMove(b, model.ColorDark))
	s.False(HasLegalMove(b, model.ColorLight))
}
