package handler

import (
	"net/http"

	"github.com/mcoot/reversigame/internal/api/request"
	"github.com/mcoot/reversigame/internal/api/response"
	"github.com/mcoot/reversigame/internal/model"
	"github.com/mcoot/reversigame/internal/services/game"
)

// MoveHandler handles the stateless rules endpoints. The client owns the
// board; every request carries the full position.
type MoveHandler struct {
	gameController *game.Controller
}

// NewMoveHandler creates a new move handler
func NewMoveHandler(gameController *game.Controller) *MoveHandler {
	return &MoveHandler{gameController: gameController}
}

// Check handles POST /api/v1/moves/check
func (h *MoveHandler) Check(w http.ResponseWriter, r *http.Request) {
	var req request.MoveRequest
	if err := decode(w, r, &req); err != nil {
		WriteError(w, err)
		return
	}

	b, color, err := parsePosition(req.Board, req.Color)
	if err != nil {
		WriteError(w, err)
		return
	}

	legal := h.gameController.CheckMoveLegality(b, model.Position{Row: req.Row, Col: req.Col}, color)
	response.JSON(w, http.StatusOK, response.Legality{Legal: legal})
}

// Play handles POST /api/v1/moves
func (h *MoveHandler) Play(w http.ResponseWriter, r *http.Request) {
	var req request.MoveRequest
	if err := decode(w, r, &req); err != nil {
		WriteError(w, err)
		return
	}

	b, color, err := parsePosition(req.Board, req.Color)
	if err != nil {
		WriteError(w, err)
		return
	}

	outcome, err := h.gameController.ResolveMove(b, model.Position{Row: req.Row, Col: req.Col}, color)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.MoveOutcomeFromModel(outcome))
}

// Legal handles POST /api/v1/moves/legal
func (h *MoveHandler) Legal(w http.ResponseWriter, r *http.Request) {
	var req request.LegalMovesRequest
	if err := decode(w, r, &req); err != nil {
		WriteError(w, err)
		return
	}

	b, color, err := parsePosition(req.Board, req.Color)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.LegalMovesFromModel(h.gameController.LegalMoves(b, color)))
}

// Status handles POST /api/v1/games/status
func (h *MoveHandler) Status(w http.ResponseWriter, r *http.Request) {
	var req request.StatusRequest
	if err := decode(w, r, &req); err != nil {
		WriteError(w, err)
		return
	}

	b, err := model.BoardFromGrid(req.Board)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.GameStatusFromModel(h.gameController.Status(b)))
}

func parsePosition(grid [][]int, rawColor int) (model.Board, model.Color, error) {
	b, err := model.BoardFromGrid(grid)
	if err != nil {
		return model.Board{}, model.ColorNone, err
	}
	color, err := model.ParseColor(rawColor)
	if err != nil {
		return model.Board{}, model.ColorNone, err
	}
	return b, color, nil
}
