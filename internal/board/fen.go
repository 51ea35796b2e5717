package board

import (
	"strconv"
	"strings"
)

// StartFEN is the FEN string for the starting position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// ParseFEN parses a FEN string into a Board. Every rejected field is
// reported as a *FenParseError tagged with the field name.
func ParseFEN(fen string) (Board, error) {
	parts := strings.Fields(fen)
	if len(parts) != 6 {
		return Board{}, &FenParseError{Field: "field-count", Detail: fen}
	}

	b := NewBoard()

	if err := parsePiecePlacement(&b, parts[0]); err != nil {
		return Board{}, err
	}

	switch parts[1] {
	case "w":
		b.SideToMove = White
	case "b":
		b.SideToMove = Black
	default:
		return Board{}, &FenParseError{Field: "color", Detail: parts[1]}
	}

	if err := parseCastlingRights(&b, parts[2]); err != nil {
		return Board{}, err
	}

	if parts[3] != "-" {
		sq, err := ParseSquare(parts[3])
		if err != nil {
			return Board{}, &FenParseError{Field: "en-passant", Detail: parts[3]}
		}
		b.EnPassant = sq
	}

	hmc, err := strconv.Atoi(parts[4])
	if err != nil || hmc < 0 {
		return Board{}, &FenParseError{Field: "halfmove", Detail: parts[4]}
	}
	b.HalfmoveClock = hmc

	// Fullmove is documented in spec.md §3 as a positive integer, but
	// two of the seeded perft fixtures in spec.md §8 use "0" as a
	// from-scratch marker rather than a real game's move count,
	// so only non-numeric text is rejected here, not the value 0.
	fmn, err := strconv.Atoi(parts[5])
	if err != nil {
		return Board{}, &FenParseError{Field: "fullmove", Detail: parts[5]}
	}
	b.FullmoveNumber = fmn

	return b, nil
}

func parsePiecePlacement(b *Board, placement string) error {
	ranks := strings.Split(placement, "/")
	if len(ranks) != 8 {
		return &FenParseError{Field: "placement", Detail: placement}
	}

	for i, rankStr := range ranks {
		rank := 7 - i
		file := 0

		for _, c := range rankStr {
			if file > 7 {
				return &FenParseError{Field: "placement", Detail: placement}
			}
			if c >= '1' && c <= '8' {
				file += int(c - '0')
				continue
			}
			piece, err := PieceFromChar(byte(c))
			if err != nil {
				return &FenParseError{Field: "placement", Detail: placement}
			}
			b.Squares[NewSquare(file, rank)] = piece
			file++
		}

		if file != 8 {
			return &FenParseError{Field: "placement", Detail: placement}
		}
	}

	return nil
}

func parseCastlingRights(b *Board, castling string) error {
	if castling == "-" {
		b.Castling = NoCastling
		return nil
	}

	for _, c := range castling {
		switch c {
		case 'K':
			b.Castling |= CastleWK
		case 'Q':
			b.Castling |= CastleWQ
		case 'k':
			b.Castling |= CastleBK
		case 'q':
			b.Castling |= CastleBQ
		default:
			return &FenParseError{Field: "castling", Detail: castling}
		}
	}

	return nil
}

// ToFEN returns the FEN text of the board.
func (b Board) ToFEN() string {
	var sb strings.Builder

	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			piece := b.Squares[NewSquare(file, rank)]
			if piece == NoPiece {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteString(piece.String())
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}

	sb.WriteByte(' ')
	if b.SideToMove == White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}

	sb.WriteByte(' ')
	sb.WriteString(b.Castling.String())

	sb.WriteByte(' ')
	sb.WriteString(b.EnPassant.String())

	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(b.HalfmoveClock))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(b.FullmoveNumber))

	return sb.String()
}
