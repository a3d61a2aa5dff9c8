package response

import (
	"time"

	"github.com/mcoot/reversigame/internal/model"
)

// Health reports service and datastore liveness
type Health struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}

// Legality is the response to a move check
type Legality struct {
	Legal bool `json:"legal"`
}

// MoveOutcome is the response after playing a move
type MoveOutcome struct {
	Board        [][]int `json:"board"`
	NextColor    int     `json:"next_color"`
	HasValidMove bool    `json:"has_valid_move"`
}

// MoveOutcomeFromModel converts model.MoveOutcome
func MoveOutcomeFromModel(o *model.MoveOutcome) MoveOutcome {
	return MoveOutcome{
		Board:        o.Board.Grid(),
		NextColor:    int(o.NextColor),
		HasValidMove: o.HasValidMove,
	}
}

// LegalMoves lists positions as [row, col] pairs in row-major order
type LegalMoves struct {
	Moves [][2]int `json:"moves"`
}

// LegalMovesFromModel converts a position list
func LegalMovesFromModel(positions []model.Position) LegalMoves {
	moves := make([][2]int, len(positions))
	for i, p := range positions {
		moves[i] = [2]int{p.Row, p.Col}
	}
	return LegalMoves{Moves: moves}
}

// GameStatus summarises a position
type GameStatus struct {
	DarkCount    int  `json:"dark_count"`
	LightCount   int  `json:"light_count"`
	DarkCanMove  bool `json:"dark_can_move"`
	LightCanMove bool `json:"light_can_move"`
	Terminal     bool `json:"terminal"`
	// Winner is 0 unless the game is over with a majority
	Winner int `json:"winner"`
}

// GameStatusFromModel converts model.GameStatus
func GameStatusFromModel(s model.GameStatus) GameStatus {
	return GameStatus{
		DarkCount:    s.DarkCount,
		LightCount:   s.LightCount,
		DarkCanMove:  s.DarkCanMove,
		LightCanMove: s.LightCanMove,
		Terminal:     s.Terminal,
		Winner:       int(s.Winner),
	}
}

// Registered is the response after registering a player
type Registered struct {
	Username string `json:"username"`
	IsAdmin  bool   `json:"is_admin"`
}

// Report is the response after reporting a player
type Report struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}

// ReportFromModel converts model.ReportResult
func ReportFromModel(r *model.ReportResult) Report {
	return Report{Status: string(r.Status), Count: r.Count}
}

// Player is a player record without its password
type Player struct {
	Username       string    `json:"username"`
	Rating         int       `json:"rating"`
	SuspicionCount int       `json:"suspicion_count"`
	IsAdmin        bool      `json:"is_admin"`
	Banned         bool      `json:"banned"`
	BanReason      string    `json:"ban_reason,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

// PlayerFromModel converts model.PlayerRecord
func PlayerFromModel(p *model.PlayerRecord, banned bool) Player {
	return Player{
		Username:       p.Username,
		Rating:         p.Rating,
		SuspicionCount: p.SuspicionCount,
		IsAdmin:        p.IsAdmin,
		Banned:         banned,
		BanReason:      p.BanReason,
		CreatedAt:      p.CreatedAt,
	}
}

// Banned is the response after an administrative ban
type Banned struct {
	Target string `json:"target"`
	Banned bool   `json:"banned"`
}
