package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
	w      io.Writer
}

// NewOutput creates a new Output formatter writing to w
func NewOutput(format string, w io.Writer) *Output {
	return &Output{format: format, w: w}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(o.w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case HealthResult:
		o.printHealthResult(v)
	case Registered:
		o.printRegistered(v)
	case ReportResult:
		o.printReportResult(v)
	case PlayerInfo:
		o.printPlayerInfo(v)
	case BanResult:
		o.printBanResult(v)
	case LocalGame:
		o.printLocalGame(v)
	case GameView:
		o.printLocalGame(v.Game)
		o.printGameStatus(v.Status)
	case PlayResult:
		o.printPlayResult(v)
	case LegalMoves:
		o.printLegalMoves(v)
	case Legality:
		o.printLegality(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// HealthResult response type
type HealthResult struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}

// Registered response type
type Registered struct {
	Username string `json:"username"`
	IsAdmin  bool   `json:"is_admin"`
}

// ReportResult response type
type ReportResult struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}

// PlayerInfo response type
type PlayerInfo struct {
	Username       string    `json:"username"`
	Rating         int       `json:"rating"`
	SuspicionCount int       `json:"suspicion_count"`
	IsAdmin        bool      `json:"is_admin"`
	Banned         bool      `json:"banned"`
	BanReason      string    `json:"ban_reason,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

// BanResult response type
type BanResult struct {
	Target string `json:"target"`
	Banned bool   `json:"banned"`
}

// MoveOutcome response type
type MoveOutcome struct {
	Board        [][]int `json:"board"`
	NextColor    int     `json:"next_color"`
	HasValidMove bool    `json:"has_valid_move"`
}

// LegalMoves response type
type LegalMoves struct {
	Moves [][2]int `json:"moves"`
}

// Legality response type
type Legality struct {
	Legal bool `json:"legal"`
}

// GameStatus response type
type GameStatus struct {
	DarkCount    int  `json:"dark_count"`
	LightCount   int  `json:"light_count"`
	DarkCanMove  bool `json:"dark_can_move"`
	LightCanMove bool `json:"light_can_move"`
	Terminal     bool `json:"terminal"`
	Winner       int  `json:"winner"`
}

// GameView is the local game with its status
type GameView struct {
	Game   LocalGame  `json:"game"`
	Status GameStatus `json:"status"`
}

// PlayResult describes the game after a move
type PlayResult struct {
	Game LocalGame `json:"game"`
	// Passed is the colour that had to pass, if any
	Passed int `json:"passed,omitempty"`
	// Status is set once the game is over
	Status *GameStatus `json:"status,omitempty"`
}

func colorName(c int) string {
	switch c {
	case 1:
		return "dark"
	case 2:
		return "light"
	default:
		return "none"
	}
}

func (o *Output) printHealthResult(h HealthResult) {
	fmt.Fprintf(o.w, "Status: %s\n", h.Status)
	fmt.Fprintf(o.w, "Database: %s\n", h.Database)
}

func (o *Output) printRegistered(r Registered) {
	fmt.Fprintf(o.w, "Registered: %s\n", r.Username)
	if r.IsAdmin {
		fmt.Fprintln(o.w, "Administrator: yes")
	}
}

func (o *Output) printReportResult(r ReportResult) {
	fmt.Fprintf(o.w, "Status: %s\n", r.Status)
	fmt.Fprintf(o.w, "Reports: %d\n", r.Count)
}

func (o *Output) printPlayerInfo(p PlayerInfo) {
	fmt.Fprintf(o.w, "Player: %s\n", p.Username)
	fmt.Fprintf(o.w, "Rating: %d\n", p.Rating)
	fmt.Fprintf(o.w, "Reports: %d\n", p.SuspicionCount)
	if p.IsAdmin {
		fmt.Fprintln(o.w, "Administrator: yes")
	}
	if p.Banned {
		fmt.Fprintln(o.w, "Banned: yes")
		if p.BanReason != "" {
			fmt.Fprintf(o.w, "Ban reason: %s\n", p.BanReason)
		}
	}
	if !p.CreatedAt.IsZero() {
		fmt.Fprintf(o.w, "Registered at: %s\n", p.CreatedAt.Format(time.RFC3339))
	}
}

func (o *Output) printBanResult(b BanResult) {
	fmt.Fprintf(o.w, "Banned: %s\n", b.Target)
}

func (o *Output) printLocalGame(g LocalGame) {
	o.printBoard(g.Board)
	fmt.Fprintf(o.w, "To move: %s\n", colorName(g.Turn))
}

func (o *Output) printGameStatus(s GameStatus) {
	fmt.Fprintf(o.w, "Dark: %d  Light: %d\n", s.DarkCount, s.LightCount)
	if !s.Terminal {
		return
	}
	if s.Winner == 0 {
		fmt.Fprintln(o.w, "Game over: draw")
	} else {
		fmt.Fprintf(o.w, "Game over: %s wins\n", colorName(s.Winner))
	}
}

func (o *Output) printPlayResult(p PlayResult) {
	if p.Passed != 0 {
		fmt.Fprintf(o.w, "%s has no legal move and passes\n", colorName(p.Passed))
	}
	if p.Status != nil {
		o.printBoard(p.Game.Board)
		o.printGameStatus(*p.Status)
		return
	}
	o.printLocalGame(p.Game)
}

func (o *Output) printLegalMoves(m LegalMoves) {
	if len(m.Moves) == 0 {
		fmt.Fprintln(o.w, "No legal moves")
		return
	}
	cells := make([]string, len(m.Moves))
	for i, mv := range m.Moves {
		cells[i] = fmt.Sprintf("(%d,%d)", mv[0], mv[1])
	}
	fmt.Fprintf(o.w, "Legal moves: %s\n", strings.Join(cells, " "))
}

func (o *Output) printLegality(l Legality) {
	if l.Legal {
		fmt.Fprintln(o.w, "Legal")
	} else {
		fmt.Fprintln(o.w, "Not legal")
	}
}

// printBoard draws dark discs as X and light discs as O
func (o *Output) printBoard(cells [][]int) {
	if len(cells) == 0 {
		return
	}

	size := len(cells)

	fmt.Fprint(o.w, "    ")
	for col := 0; col < size; col++ {
		fmt.Fprintf(o.w, " %d ", col)
	}
	fmt.Fprintln(o.w)

	border := "   +" + strings.Repeat("---", size) + "+"
	fmt.Fprintln(o.w, border)

	for row := 0; row < size; row++ {
		fmt.Fprintf(o.w, " %d |", row)
		for _, cell := range cells[row] {
			switch cell {
			case 1:
				fmt.Fprint(o.w, " X ")
			case 2:
				fmt.Fprint(o.w, " O ")
			default:
				fmt.Fprint(o.w, " . ")
			}
		}
		fmt.Fprintln(o.w, "|")
	}

	fmt.Fprintln(o.w, border)
}
