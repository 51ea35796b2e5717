package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseFENStartingPosition(t *testing.T) {
	b, err := ParseFEN(StartFEN)
	assert.NoError(t, err)
	assert.Equal(t, White, b.SideToMove)
	assert.Equal(t, AllCastling, b.Castling)
	assert.Equal(t, NoSquare, b.EnPassant)
	assert.Equal(t, 0, b.HalfmoveClock)
	assert.Equal(t, 1, b.FullmoveNumber)
	assert.Equal(t, WhiteRook, b.PieceAt(A1))
	assert.Equal(t, BlackKing, b.PieceAt(E8))
	assert.Equal(t, NoPiece, b.PieceAt(E4))
}

func TestFENRoundTrip(t *testing.T) {
	fens := []string{
		StartFEN,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		"8/8/8/8/k2Pp2R/8/8/4K3 b - d3 0 1",
		// spec.md §8 scenarios 2 and 3 use a literal "0" fullmove field.
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 0",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 0",
	}
	for _, fen := range fens {
		b, err := ParseFEN(fen)
		assert.NoError(t, err)
		assert.Equal(t, fen, b.ToFEN())
	}
}

func TestParseFENRejectsMalformedFields(t *testing.T) {
	cases := map[string]string{
		"too few fields":        "8/8/8/8/8/8/8/8 w",
		"missing clock fields":  "8/8/8/8/8/8/8/8 w KQkq -",
		"too many fields":       "8/8/8/8/8/8/8/8 w KQkq - 0 1 extra",
		"bad rank count":        "8/8/8/8/8/8/8 w KQkq - 0 1",
		"bad rank width":        "9/8/8/8/8/8/8/8 w KQkq - 0 1",
		"bad piece glyph":       "xxxxxxxx/8/8/8/8/8/8/8 w KQkq - 0 1",
		"bad side to move":      "8/8/8/8/8/8/8/8 x KQkq - 0 1",
		"bad castling glyph":    "8/8/8/8/8/8/8/8 w XYZW - 0 1",
		"bad en passant square": "8/8/8/8/8/8/8/8 w KQkq z9 0 1",
		"non-numeric halfmove":  "8/8/8/8/8/8/8/8 w KQkq - x 1",
		"non-numeric fullmove":  "8/8/8/8/8/8/8/8 w KQkq - 0 x",
	}
	for name, fen := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ParseFEN(fen)
			assert.Error(t, err)
			var fenErr *FenParseError
			assert.ErrorAs(t, err, &fenErr)
		})
	}
}

// TestParseFENAcceptsZeroFullmove parses spec.md §8 scenario 2, whose
// FEN string uses "0" as the fullmove field.
func TestParseFENAcceptsZeroFullmove(t *testing.T) {
	b, err := ParseFEN("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 0")
	assert.NoError(t, err)
	assert.Equal(t, 0, b.FullmoveNumber)
}

func TestParseSquareRejectsInvalidText(t *testing.T) {
	_, err := ParseSquare("z9")
	assert.Error(t, err)
	var sqErr *SquareParseError
	assert.ErrorAs(t, err, &sqErr)
}

func TestPieceFromCharRejectsUnknownGlyph(t *testing.T) {
	_, err := PieceFromChar('x')
	assert.Error(t, err)
	var pErr *PieceParseError
	assert.ErrorAs(t, err, &pErr)
}
