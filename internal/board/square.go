// Package board implements chess position representation using a
// 64-slot mailbox, FEN encoding, and legal move generation.
package board

import "fmt"

// Square represents a square on the chess board (0-63).
// Uses Little-Endian Rank-File Mapping: A1=0, H1=7, A8=56, H8=63.
type Square uint8

// Square constants for all 64 squares.
const (
	A1 Square = iota
	B1
	C1
	D1
	E1
	F1
	G1
	H1
	A2
	B2
	C2
	D2
	E2
	F2
	G2
	H2
	A3
	B3
	C3
	D3
	E3
	F3
	G3
	H3
	A4
	B4
	C4
	D4
	E4
	F4
	G4
	H4
	A5
	B5
	C5
	D5
	E5
	F5
	G5
	H5
	A6
	B6
	C6
	D6
	E6
	F6
	G6
	H6
	A7
	B7
	C7
	D7
	E7
	F7
	G7
	H7
	A8
	B8
	C8
	D8
	E8
	F8
	G8
	H8
	NoSquare Square = 64
)

// File returns the file (column) of the square (0-7, where 0=a, 7=h).
func (sq Square) File() int {
	return int(sq) & 7
}

// Rank returns the rank (row) of the square (0-7, where 0=1, 7=8).
func (sq Square) Rank() int {
	return int(sq) >> 3
}

// String returns the algebraic notation for the square (e.g., "e4").
func (sq Square) String() string {
	if sq >= NoSquare {
		return "-"
	}
	return fmt.Sprintf("%c%c", 'a'+sq.File(), '1'+sq.Rank())
}

// NewSquare creates a square from file and rank (0-indexed).
func NewSquare(file, rank int) Square {
	return Square(rank*8 + file)
}

// ParseSquare parses algebraic notation (e.g., "e4") into a Square.
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 {
		return NoSquare, &SquareParseError{Text: s}
	}

	file := int(s[0] - 'a')
	rank := int(s[1] - '1')

	if file < 0 || file > 7 || rank < 0 || rank > 7 {
		return NoSquare, &SquareParseError{Text: s}
	}

	return NewSquare(file, rank), nil
}

// IsValid returns true if the square is a valid board square (0-63).
func (sq Square) IsValid() bool {
	return sq < NoSquare
}

// Direction is one of the 8 sliding unit directions or 8 knight jumps.
// Sliding directions accept dist in [1,7] in Neighbor; knight directions
// only make sense at dist 1.
type Direction int

const (
	North Direction = iota
	NorthEast
	East
	SouthEast
	South
	SouthWest
	West
	NorthWest

	KnightNNE
	KnightENE
	KnightESE
	KnightSSE
	KnightSSW
	KnightWSW
	KnightWNW
	KnightNNW
)

// dirDelta holds the (dFile, dRank) unit step for each Direction.
var dirDelta = [...][2]int{
	North:     {0, 1},
	NorthEast: {1, 1},
	East:      {1, 0},
	SouthEast: {1, -1},
	South:     {0, -1},
	SouthWest: {-1, -1},
	West:      {-1, 0},
	NorthWest: {-1, 1},

	KnightNNE: {1, 2},
	KnightENE: {2, 1},
	KnightESE: {2, -1},
	KnightSSE: {1, -2},
	KnightSSW: {-1, -2},
	KnightWSW: {-2, -1},
	KnightWNW: {-2, 1},
	KnightNNW: {-1, 2},
}

// SlidingDirections are the 8 unit directions used by queens and (at
// dist 1) kings.
var SlidingDirections = [8]Direction{North, NorthEast, East, SouthEast, South, SouthWest, West, NorthWest}

// OrthogonalDirections are the 4 rook-type unit directions. Kept as its
// own array rather than a slice of SlidingDirections: that array is
// ordered clockwise (N, NE, E, SE, S, SW, W, NW), so its first or last
// four entries mix two orthogonal with two diagonal directions instead
// of cleanly splitting the two families.
var OrthogonalDirections = [4]Direction{North, East, South, West}

// DiagonalDirections are the 4 bishop-type unit directions.
var DiagonalDirections = [4]Direction{NorthEast, SouthEast, SouthWest, NorthWest}

// KnightDirections are the 8 knight jump directions, valid at dist 1 only.
var KnightDirections = [8]Direction{KnightNNE, KnightENE, KnightESE, KnightSSE, KnightSSW, KnightWSW, KnightWNW, KnightNNW}

// Neighbor returns the square reached by stepping dist units of dir from
// sq, and whether that square lies on the board. Rank and file are
// bounds-checked independently so wraparound around file edges can never
// be missed (the knight offsets in particular must never wrap).
func (sq Square) Neighbor(dir Direction, dist int) (Square, bool) {
	d := dirDelta[dir]
	file := sq.File() + d[0]*dist
	rank := sq.Rank() + d[1]*dist
	if file < 0 || file > 7 || rank < 0 || rank > 7 {
		return 0, false
	}
	return NewSquare(file, rank), true
}
