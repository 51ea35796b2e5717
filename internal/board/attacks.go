package board

// IsSquareAttacked reports whether sq is attacked by any piece of
// byColor in b. It scans outward from sq along each ray / jump rather
// than precomputing attack sets per origin square — the mailbox
// equivalent of the teacher's bitboard attacker lookups, adapted to
// answer "who attacks this square" instead of "where can this piece
// move", which is what both check detection and castling-safety
// checks need.
func IsSquareAttacked(b *Board, sq Square, byColor Color) bool {
	return pawnAttacksSquare(b, sq, byColor) ||
		knightAttacksSquare(b, sq, byColor) ||
		kingAttacksSquare(b, sq, byColor) ||
		slidingAttacksSquare(b, sq, byColor, Rook, Queen, OrthogonalDirections[:]) ||
		slidingAttacksSquare(b, sq, byColor, Bishop, Queen, DiagonalDirections[:])
}

// pawnAttacksSquare checks the two squares diagonally behind sq (from
// byColor's perspective of moving toward sq) for an enemy pawn.
func pawnAttacksSquare(b *Board, sq Square, byColor Color) bool {
	rank := sq.Rank()
	var sourceRank int
	if byColor == White {
		sourceRank = rank - 1
	} else {
		sourceRank = rank + 1
	}
	if sourceRank < 0 || sourceRank > 7 {
		return false
	}
	pawn := NewPiece(Pawn, byColor)
	for _, df := range []int{-1, 1} {
		file := sq.File() + df
		if file < 0 || file > 7 {
			continue
		}
		if b.Squares[NewSquare(file, sourceRank)] == pawn {
			return true
		}
	}
	return false
}

func knightAttacksSquare(b *Board, sq Square, byColor Color) bool {
	knight := NewPiece(Knight, byColor)
	for _, dir := range KnightDirections {
		if from, ok := sq.Neighbor(dir, 1); ok && b.Squares[from] == knight {
			return true
		}
	}
	return false
}

func kingAttacksSquare(b *Board, sq Square, byColor Color) bool {
	king := NewPiece(King, byColor)
	for _, dir := range SlidingDirections {
		if from, ok := sq.Neighbor(dir, 1); ok && b.Squares[from] == king {
			return true
		}
	}
	return false
}

// slidingAttacksSquare walks each of dirs outward from sq until it hits
// the board edge or an occupied square, reporting an attacker if that
// square holds a byColor piece of either primaryKind or secondaryKind
// (Rook or Queen for rook-type rays, Bishop or Queen for bishop-type).
func slidingAttacksSquare(b *Board, sq Square, byColor Color, primaryKind, secondaryKind PieceKind, dirs []Direction) bool {
	for _, dir := range dirs {
		for dist := 1; ; dist++ {
			at, ok := sq.Neighbor(dir, dist)
			if !ok {
				break
			}
			occupant := b.Squares[at]
			if occupant == NoPiece {
				continue
			}
			if occupant.Color() == byColor && (occupant.Kind() == primaryKind || occupant.Kind() == secondaryKind) {
				return true
			}
			break
		}
	}
	return false
}

// InCheck reports whether c's king is currently attacked.
func InCheck(b *Board, c Color) bool {
	ksq := b.KingSquare(c)
	if ksq == NoSquare {
		return false
	}
	return IsSquareAttacked(b, ksq, c.Flip())
}
