package chess

// Square is a (row, column) pair on the board, each in [0,7].
// Row 0 is rank 8, row 7 is rank 1; column 0 is file a.
type Square struct {
	Row int
	Col int
}

// NoSquare is returned when a square lookup finds nothing.
var NoSquare = Square{Row: -1, Col: -1}

// Sq creates a square from row and column indices.
func Sq(row, col int) Square {
	return Square{Row: row, Col: col}
}

// Valid reports whether the square lies on the board.
func (s Square) Valid() bool {
	return s.Row >= 0 && s.Row < BoardSize && s.Col >= 0 && s.Col < BoardSize
}

// File returns the file letter of the square ('a'-'h').
func (s Square) File() byte {
	return byte(FileBase + s.Col)
}

// Rank returns the rank digit of the square ('1'-'8').
func (s Square) Rank() byte {
	return byte(RankBase + (BoardSize - 1 - s.Row))
}

// String returns the algebraic name of the square, e.g. "e4".
func (s Square) String() string {
	if !s.Valid() {
		return "-"
	}
	return string([]byte{s.File(), s.Rank()})
}

// SquareFromAlgebraic converts file and rank characters ('a'-'h', '1'-'8')
// to a square. The second result is false for anything off the board.
func SquareFromAlgebraic(file, rank byte) (Square, bool) {
	if file < 'a' || file > 'h' || rank < '1' || rank > '8' {
		return NoSquare, false
	}
	return Square{Row: BoardSize - 1 - int(rank-RankBase), Col: int(file - FileBase)}, true
}

// Move is an origin/destination pair. Promotion is implied: a pawn that
// reaches its far row always becomes a queen.
type Move struct {
	From Square
	To   Square
}

// NoMove is the sentinel returned when no move is available.
var NoMove = Move{From: NoSquare, To: NoSquare}

// IsNone reports whether m is the NoMove sentinel.
func (m Move) IsNone() bool {
	return m == NoMove
}

// String returns the move in long algebraic form, e.g. "e2e4".
func (m Move) String() string {
	if m.IsNone() {
		return "--"
	}
	return m.From.String() + m.To.String()
}

// Board is the 8x8 occupancy grid. Pieces are stored by value so a plain
// copy of the struct is a fully independent board.
type Board struct {
	Squares [BoardSize][BoardSize]Piece
}

// NewBoard creates a new empty board.
func NewBoard() *Board {
	return &Board{}
}

// NewInitialBoard creates a board holding the standard starting position.
func NewInitialBoard() *Board {
	b := NewBoard()
	b.SetupInitialPosition()
	return b
}

// SetupInitialPosition sets up the standard chess starting position.
func (b *Board) SetupInitialPosition() {
	b.Clear()

	backRank := []Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for col := 0; col < BoardSize; col++ {
		b.Squares[BlackHomeRow][col] = B(backRank[col])
		b.Squares[BlackPawnRow][col] = B(Pawn)
		b.Squares[WhitePawnRow][col] = W(Pawn)
		b.Squares[WhiteHomeRow][col] = W(backRank[col])
	}
}

// Clear removes every piece from the board.
func (b *Board) Clear() {
	b.Squares = [BoardSize][BoardSize]Piece{}
}

// Get returns the piece at the given square, or Empty if the square is off
// the board.
func (b *Board) Get(sq Square) Piece {
	if !sq.Valid() {
		return Empty
	}
	return b.Squares[sq.Row][sq.Col]
}

// Set places a piece at the given square. Off-board squares are ignored.
func (b *Board) Set(sq Square, piece Piece) {
	if sq.Valid() {
		b.Squares[sq.Row][sq.Col] = piece
	}
}

// Relocate moves whatever stands on from to to, capturing any occupant.
// It applies no rules and no promotion.
func (b *Board) Relocate(from, to Square) {
	piece := b.Get(from)
	b.Set(from, Empty)
	b.Set(to, piece)
}

// Clone creates a deep copy of the board.
func (b *Board) Clone() *Board {
	newBoard := &Board{}
	*newBoard = *b
	return newBoard
}

// Each calls fn for every occupied square in row-major order.
func (b *Board) Each(fn func(sq Square, p Piece)) {
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if p := b.Squares[row][col]; !p.IsEmpty() {
				fn(Square{Row: row, Col: col}, p)
			}
		}
	}
}

// SwapColours returns a copy of the board with every piece's colour
// inverted and the position mirrored top to bottom.
func (b *Board) SwapColours() *Board {
	out := NewBoard()
	b.Each(func(sq Square, p Piece) {
		out.Set(Square{Row: BoardSize - 1 - sq.Row, Col: sq.Col}, Piece{Kind: p.Kind, Colour: p.Colour.Opposite()})
	})
	return out
}
