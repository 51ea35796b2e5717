package board

// ApplyMove returns the board reached by playing m on b. It never
// mutates b — b is taken by value and a fresh Board is returned,
// generalizing the teacher's in-place MakeMove/UnmakeMove pair to a
// value-semantics API with no undo bookkeeping to get wrong.
//
// ApplyMove assumes m is pseudo-legal for b; it does not itself check
// for leaving the mover's own king in check (that is LegalMoves' job).
func ApplyMove(b Board, m Move) Board {
	us := b.SideToMove
	them := us.Flip()
	from, to, kind := m.From(), m.To(), m.Kind()
	piece := b.Squares[from]

	next := b
	next.SideToMove = them
	next.EnPassant = NoSquare

	if us == Black {
		next.FullmoveNumber++
	}

	if piece.Kind() == Pawn || m.IsCapture() {
		next.HalfmoveClock = 0
	} else {
		next.HalfmoveClock = b.HalfmoveClock + 1
	}

	switch kind {
	case EnPassantCapture:
		capturedSq := NewSquare(to.File(), from.Rank())
		next.Squares[capturedSq] = NoPiece
		next.Squares[from] = NoPiece
		next.Squares[to] = piece

	case KingCastle, QueenCastle:
		next.Squares[from] = NoPiece
		next.Squares[to] = piece
		rookFrom, rookTo := castleRookSquares(us, kind)
		next.Squares[rookTo] = next.Squares[rookFrom]
		next.Squares[rookFrom] = NoPiece

	case DoublePawnPush:
		next.Squares[from] = NoPiece
		next.Squares[to] = piece
		// The skipped-over square is always recorded, regardless of
		// whether an enemy pawn can actually capture onto it.
		next.EnPassant = NewSquare(from.File(), (from.Rank()+to.Rank())/2)

	default:
		next.Squares[from] = NoPiece
		if kind.IsPromotion() {
			next.Squares[to] = NewPiece(kind.PromotedKind(), us)
		} else {
			next.Squares[to] = piece
		}
	}

	next.Castling = updateCastlingRights(b.Castling, piece, from, to)

	return next
}

// ApplyMoveFromUCI parses UCI move text against b and applies it,
// folding ParseUCIMove + ApplyMove into the single call a line-oriented
// driver actually needs per incoming "position ... moves ..." token.
func ApplyMoveFromUCI(b Board, s string) (Board, error) {
	m, err := ParseUCIMove(b, s)
	if err != nil {
		return b, err
	}
	return ApplyMove(b, m), nil
}

// castleRookSquares returns the rook's origin and destination for the
// given castling side and color.
func castleRookSquares(c Color, kind MoveKind) (from, to Square) {
	rank := 0
	if c == Black {
		rank = 7
	}
	if kind == KingCastle {
		return NewSquare(7, rank), NewSquare(5, rank)
	}
	return NewSquare(0, rank), NewSquare(3, rank)
}

// updateCastlingRights decays rights touched by this move: a king move
// clears both of its own side's bits; a rook move or rook capture
// clears the single bit for that corner.
func updateCastlingRights(cr CastlingRights, moved Piece, from, to Square) CastlingRights {
	switch {
	case moved.Kind() == King:
		if moved.Color() == White {
			cr &^= CastleWK | CastleWQ
		} else {
			cr &^= CastleBK | CastleBQ
		}
	}

	cr = clearRookCorner(cr, from)
	cr = clearRookCorner(cr, to)

	return cr
}

// clearRookCorner clears the castling bit associated with sq if sq is
// one of the four rook home squares — covers both the rook moving away
// and the rook being captured in place.
func clearRookCorner(cr CastlingRights, sq Square) CastlingRights {
	switch sq {
	case H1:
		return cr &^ CastleWK
	case A1:
		return cr &^ CastleWQ
	case H8:
		return cr &^ CastleBK
	case A8:
		return cr &^ CastleBQ
	}
	return cr
}
