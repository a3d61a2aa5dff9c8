package request

// Board positions and colours travel as plain integers: cells and colours
// use 0 = empty, 1 = dark, 2 = light, and the board is 8 rows of 8 cells.

// MoveRequest is the request body for checking or playing a move
type MoveRequest struct {
	Board [][]int `json:"board"`
	Row   int     `json:"row"`
	Col   int     `json:"col"`
	Color int     `json:"color"`
}

// LegalMovesRequest is the request body for listing legal moves
type LegalMovesRequest struct {
	Board [][]int `json:"board"`
	Color int     `json:"color"`
}

// StatusRequest is the request body for summarising a position
type StatusRequest struct {
	Board [][]int `json:"board"`
}

// RegisterRequest is the request body for registering a player
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// ReportRequest is the request body for reporting suspicious play
type ReportRequest struct {
	Username string `json:"username"`
	Reason   string `json:"reason,omitempty"`
}

// BanRequest is the request body for an administrative ban
type BanRequest struct {
	AdminPassword string `json:"admin_password"`
	Target        string `json:"target"`
}
