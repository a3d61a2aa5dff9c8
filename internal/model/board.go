package model

// BoardSize is the dimension of the square board
const BoardSize = 8

// Cell is the content of a single board square
type Cell uint8

const (
	Empty Cell = 0
	Dark  Cell = 1
	Light Cell = 2
)

// Position identifies a cell on the board
type Position struct {
	Row int // 0-indexed from top
	Col int // 0-indexed from left
}

// Valid returns true if the position is within bounds
func (p Position) Valid() bool {
	return p.Row >= 0 && p.Row < BoardSize && p.Col >= 0 && p.Col < BoardSize
}

// Step returns the position one cell away in the given direction
func (p Position) Step(d Direction) Position {
	return Position{Row: p.Row + d.DRow, Col: p.Col + d.DCol}
}

// Direction is a unit offset towards one of the eight neighbours
type Direction struct {
	DRow int
	DCol int
}

// Directions lists the eight compass offsets
var Directions = [8]Direction{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Board is an 8x8 grid stored row-major.
// It is a value type: assigning or passing a Board copies every cell.
type Board [BoardSize][BoardSize]Cell

// InitialBoard returns the standard starting position
func InitialBoard() Board {
	var b Board
	b[3][3], b[4][4] = Light, Light
	b[3][4], b[4][3] = Dark, Dark
	return b
}

// At returns the cell at the given position, or Empty if out of range
func (b Board) At(pos Position) Cell {
	if !pos.Valid() {
		return Empty
	}
	return b[pos.Row][pos.Col]
}

// With returns a copy of the board with one cell replaced
func (b Board) With(pos Position, c Cell) Board {
	if pos.Valid() {
		b[pos.Row][pos.Col] = c
	}
	return b
}

// Count returns the number of cells holding c
func (b Board) Count(c Cell) int {
	n := 0
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if b[row][col] == c {
				n++
			}
		}
	}
	return n
}

// Discs returns the number of non-empty cells
func (b Board) Discs() int {
	return BoardSize*BoardSize - b.Count(Empty)
}

// Grid converts the board to its wire form: rows of 0/1/2
func (b Board) Grid() [][]int {
	grid := make([][]int, BoardSize)
	for row := 0; row < BoardSize; row++ {
		grid[row] = make([]int, BoardSize)
		for col := 0; col < BoardSize; col++ {
			grid[row][col] = int(b[row][col])
		}
	}
	return grid
}

// BoardFromGrid parses the wire form of a board.
// The grid must be exactly 8 rows of 8 values, each 0, 1 or 2.
func BoardFromGrid(grid [][]int) (Board, error) {
	var b Board
	if len(grid) != BoardSize {
		return b, ErrInvalidBoard
	}
	for row, cells := range grid {
		if len(cells) != BoardSize {
			return b, ErrInvalidBoard
		}
		for col, v := range cells {
			if v < int(Empty) || v > int(Light) {
				return b, ErrInvalidBoard
			}
			b[row][col] = Cell(v)
		}
	}
	return b, nil
}

// MoveOutcome is the result of resolving a legal move
type MoveOutcome struct {
	Board        Board
	NextColor    Color
	HasValidMove bool // whether NextColor can move on Board
}

// GameStatus summarises a position
type GameStatus struct {
	DarkCount    int
	LightCount   int
	DarkCanMove  bool
	LightCanMove bool
	Terminal     bool  // neither side can move
	Winner       Color // zero value when not terminal or drawn
}
