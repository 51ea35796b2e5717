package board

// PseudoLegalMoves generates every pseudo-legal move for the side to
// move: moves that obey each piece's movement rules but may leave the
// mover's own king in check. LegalMoves filters this set down.
func PseudoLegalMoves(b *Board) []Move {
	var ml MoveList
	us := b.SideToMove

	for sq := A1; sq <= H8; sq++ {
		piece := b.Squares[sq]
		if piece == NoPiece || piece.Color() != us {
			continue
		}
		switch piece.Kind() {
		case Pawn:
			generatePawnMoves(b, sq, us, &ml)
		case Knight:
			generateJumpMoves(b, sq, us, KnightDirections[:], &ml)
		case King:
			generateJumpMoves(b, sq, us, SlidingDirections[:], &ml)
		case Rook:
			generateSlidingMoves(b, sq, us, OrthogonalDirections[:], &ml)
		case Bishop:
			generateSlidingMoves(b, sq, us, DiagonalDirections[:], &ml)
		case Queen:
			generateSlidingMoves(b, sq, us, SlidingDirections[:], &ml)
		}
	}

	generateCastlingMoves(b, us, &ml)

	return ml.Slice()
}

// LegalMoves filters PseudoLegalMoves down to moves that do not leave
// the mover's own king in check after ApplyMove — the mailbox
// equivalent of the teacher's make-then-test-then-unmake filter,
// restated for value semantics: apply, test, discard the copy.
func LegalMoves(b Board) []Move {
	pseudo := PseudoLegalMoves(&b)
	us := b.SideToMove
	legal := make([]Move, 0, len(pseudo))
	for _, m := range pseudo {
		next := ApplyMove(b, m)
		if InCheck(&next, us) {
			continue
		}
		legal = append(legal, m)
	}
	return legal
}

func generateJumpMoves(b *Board, from Square, us Color, dirs []Direction, ml *MoveList) {
	for _, dir := range dirs {
		to, ok := from.Neighbor(dir, 1)
		if !ok {
			continue
		}
		target := b.Squares[to]
		if target == NoPiece {
			ml.Add(NewQuiet(from, to))
		} else if target.Color() != us {
			ml.Add(NewCapture(from, to))
		}
	}
}

func generateSlidingMoves(b *Board, from Square, us Color, dirs []Direction, ml *MoveList) {
	for _, dir := range dirs {
		for dist := 1; ; dist++ {
			to, ok := from.Neighbor(dir, dist)
			if !ok {
				break
			}
			target := b.Squares[to]
			if target == NoPiece {
				ml.Add(NewQuiet(from, to))
				continue
			}
			if target.Color() != us {
				ml.Add(NewCapture(from, to))
			}
			break
		}
	}
}

var promotionKinds = [4]PieceKind{Queen, Rook, Bishop, Knight}

func generatePawnMoves(b *Board, from Square, us Color, ml *MoveList) {
	forward := North
	startRank, promoRank := 1, 7
	if us == Black {
		forward = South
		startRank, promoRank = 6, 0
	}

	// Single and double pushes.
	if one, ok := from.Neighbor(forward, 1); ok && b.Squares[one] == NoPiece {
		addPawnAdvance(ml, from, one, promoRank)
		if from.Rank() == startRank {
			if two, ok2 := from.Neighbor(forward, 2); ok2 && b.Squares[two] == NoPiece {
				ml.Add(NewDoublePawnPush(from, two))
			}
		}
	}

	// Captures, including en passant.
	for _, diag := range pawnCaptureDirs(us) {
		to, ok := from.Neighbor(diag, 1)
		if !ok {
			continue
		}
		target := b.Squares[to]
		if target != NoPiece && target.Color() != us {
			addPawnCapture(ml, from, to, promoRank)
		} else if to == b.EnPassant && b.EnPassant != NoSquare {
			ml.Add(NewEnPassantCapture(from, to))
		}
	}
}

func pawnCaptureDirs(us Color) [2]Direction {
	if us == White {
		return [2]Direction{NorthWest, NorthEast}
	}
	return [2]Direction{SouthWest, SouthEast}
}

func addPawnAdvance(ml *MoveList, from, to Square, promoRank int) {
	if to.Rank() == promoRank {
		for _, pk := range promotionKinds {
			ml.Add(NewPromotion(from, to, pk))
		}
		return
	}
	ml.Add(NewQuiet(from, to))
}

func addPawnCapture(ml *MoveList, from, to Square, promoRank int) {
	if to.Rank() == promoRank {
		for _, pk := range promotionKinds {
			ml.Add(NewCapturePromotion(from, to, pk))
		}
		return
	}
	ml.Add(NewCapture(from, to))
}

// generateCastlingMoves adds any castling move whose rook path is
// empty and whose king does not start, pass through, or end in check.
func generateCastlingMoves(b *Board, us Color, ml *MoveList) {
	rank := 0
	if us == Black {
		rank = 7
	}
	kingSq := NewSquare(4, rank)
	if b.Squares[kingSq] != NewPiece(King, us) {
		return
	}
	them := us.Flip()
	if InCheck(b, us) {
		return
	}

	kingSideRight, queenSideRight := CastleWK, CastleWQ
	if us == Black {
		kingSideRight, queenSideRight = CastleBK, CastleBQ
	}

	if b.Castling&kingSideRight != 0 {
		fSq, gSq := NewSquare(5, rank), NewSquare(6, rank)
		if b.Squares[fSq] == NoPiece && b.Squares[gSq] == NoPiece &&
			!IsSquareAttacked(b, fSq, them) && !IsSquareAttacked(b, gSq, them) {
			ml.Add(NewCastle(kingSq, gSq, true))
		}
	}

	if b.Castling&queenSideRight != 0 {
		dSq, cSq, bSq := NewSquare(3, rank), NewSquare(2, rank), NewSquare(1, rank)
		if b.Squares[dSq] == NoPiece && b.Squares[cSq] == NoPiece && b.Squares[bSq] == NoPiece &&
			!IsSquareAttacked(b, dSq, them) && !IsSquareAttacked(b, cSq, them) {
			ml.Add(NewCastle(kingSq, cSq, false))
		}
	}
}
