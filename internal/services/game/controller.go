package game

import (
	"fmt"
	"log/slog"

	"github.com/mcoot/reversigame/internal/model"
	"github.com/mcoot/reversigame/internal/services/board"
)

// Controller resolves moves against caller-supplied boards.
// It holds no game state, so a single Controller serves any number of
// concurrent requests.
type Controller struct {
	logger *slog.Logger
}

// NewController creates a new GameController
func NewController(logger *slog.Logger) *Controller {
	return &Controller{
		logger: logger,
	}
}

// CheckMoveLegality reports whether color may play at pos
func (c *Controller) CheckMoveLegality(b model.Board, pos model.Position, color model.Color) bool {
	return board.IsLegalMove(b, pos, color)
}

// LegalMoves lists the legal moves for color in row-major order
func (c *Controller) LegalMoves(b model.Board, color model.Color) []model.Position {
	return board.LegalMoves(b, color)
}

// ResolveMove plays a move and reports who moves next.
// It does not apply passes: HasValidMove tells the caller whether NextColor
// can actually move.
func (c *Controller) ResolveMove(b model.Board, pos model.Position, color model.Color) (*model.MoveOutcome, error) {
	if !color.Valid() {
		return nil, model.ErrInvalidColor
	}
	if !pos.Valid() {
		return nil, model.ErrInvalidPosition
	}
	if !board.IsLegalMove(b, pos, color) {
		c.logger.Debug("illegal move rejected",
			slog.Int("row", pos.Row),
			slog.Int("col", pos.Col),
			slog.String("color", color.String()),
		)
		return nil, fmt.Errorf("%s at (%d,%d): %w", color, pos.Row, pos.Col, model.ErrIllegalMove)
	}

	next, err := board.ApplyMove(b, pos, color)
	if err != nil {
		return nil, err
	}

	nextColor := color.Opponent()
	return &model.MoveOutcome{
		Board:        next,
		NextColor:    nextColor,
		HasValidMove: board.HasLegalMove(next, nextColor),
	}, nil
}

// Status reports disc counts and whether the game is over.
// The game is over when neither side has a legal move; the side with more
// discs wins and an equal count is a draw (Winner is ColorNone).
func (c *Controller) Status(b model.Board) model.GameStatus {
	status := model.GameStatus{
		DarkCount:    b.Count(model.Dark),
		LightCount:   b.Count(model.Light),
		DarkCanMove:  board.HasLegalMove(b, model.ColorDark),
		LightCanMove: board.HasLegalMove(b, model.ColorLight),
	}
	status.Terminal = !status.DarkCanMove && !status.LightCanMove

	if status.Terminal {
		switch {
		case status.DarkCount > status.LightCount:
			status.Winner = model.ColorDark
		case status.LightCount > status.DarkCount:
			status.Winner = model.ColorLight
		}
	}
	return status
}
