package board

// CastlingRights tracks the four independent castling permissions: White
// king-side (K), White queen-side (Q), Black king-side (k), Black
// queen-side (q). A bit can only be cleared across a move, never set.
type CastlingRights uint8

const (
	CastleWK CastlingRights = 1 << iota // K
	CastleWQ                            // Q
	CastleBK                            // k
	CastleBQ                            // q

	NoCastling  CastlingRights = 0
	AllCastling CastlingRights = CastleWK | CastleWQ | CastleBK | CastleBQ
)

// String returns the FEN castling-availability field: a hyphen when no
// rights remain, otherwise the subset of "KQkq" present, in that fixed
// order regardless of how the rights were constructed (ParseFEN accepts
// any ordering of the glyphs; emitters always use this canonical one).
func (cr CastlingRights) String() string {
	if cr == NoCastling {
		return "-"
	}
	s := make([]byte, 0, 4)
	if cr&CastleWK != 0 {
		s = append(s, 'K')
	}
	if cr&CastleWQ != 0 {
		s = append(s, 'Q')
	}
	if cr&CastleBK != 0 {
		s = append(s, 'k')
	}
	if cr&CastleBQ != 0 {
		s = append(s, 'q')
	}
	return string(s)
}

// Board is a complete chess position: a 64-slot mailbox plus side to
// move, castling rights, en-passant target, and the two move clocks.
// Board is a value type — ApplyMove never mutates its receiver, it
// returns a fresh Board.
type Board struct {
	Squares        [64]Piece
	SideToMove     Color
	Castling       CastlingRights
	EnPassant      Square // NoSquare when not set
	HalfmoveClock  int
	FullmoveNumber int
}

// NewBoard returns an empty board: no pieces, White to move, no
// castling rights, no en-passant target. FullmoveNumber starts at 1 —
// the empty board is a constructor convenience, not itself a
// well-formed game, but well-formed games always start at move 1.
func NewBoard() Board {
	b := Board{EnPassant: NoSquare, FullmoveNumber: 1}
	for i := range b.Squares {
		b.Squares[i] = NoPiece
	}
	return b
}

// StartingPosition returns the canonical chess starting position.
func StartingPosition() Board {
	b, err := ParseFEN(StartFEN)
	if err != nil {
		panic("board: starting FEN failed to parse: " + err.Error())
	}
	return b
}

// PieceAt returns the piece on sq, or NoPiece if empty.
func (b *Board) PieceAt(sq Square) Piece {
	return b.Squares[sq]
}

// IsEmpty reports whether sq holds no piece.
func (b *Board) IsEmpty(sq Square) bool {
	return b.Squares[sq] == NoPiece
}

// KingSquare returns the square holding c's king, or NoSquare if c has
// no king on the board (only possible on a degenerate test position).
func (b *Board) KingSquare(c Color) Square {
	want := NewPiece(King, c)
	for sq := A1; sq <= H8; sq++ {
		if b.Squares[sq] == want {
			return sq
		}
	}
	return NoSquare
}
