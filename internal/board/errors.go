package board

import "fmt"

// FenParseError reports a FEN string rejected by ParseFEN, tagged with
// which of the six space-separated fields failed.
type FenParseError struct {
	Field  string // e.g. "placement", "color", "castling", "en-passant", "halfmove", "fullmove", "field-count"
	Detail string
}

func (e *FenParseError) Error() string {
	return fmt.Sprintf("fen: invalid %s field: %s", e.Field, e.Detail)
}

// SquareParseError reports algebraic square text not of the form [a-h][1-8].
type SquareParseError struct {
	Text string
}

func (e *SquareParseError) Error() string {
	return fmt.Sprintf("square: invalid algebraic square %q", e.Text)
}

// MoveParseError reports UCI move text that is not 4 or 5 characters,
// whose squares are not valid algebraic squares, whose 5th character is
// not one of qrbn, or that names no legal move in the position.
type MoveParseError struct {
	Text string
}

func (e *MoveParseError) Error() string {
	return fmt.Sprintf("move: invalid UCI move text %q", e.Text)
}

// PieceParseError reports an unrecognized FEN piece glyph.
type PieceParseError struct {
	Char byte
}

func (e *PieceParseError) Error() string {
	return fmt.Sprintf("piece: invalid FEN glyph %q", string(e.Char))
}
