package board

// Zobrist hash keys for position hashing, used by the perft memoization
// cache to key transposition-equivalent positions. Generated with a
// fixed-seed PRNG so hashes are stable across runs and builds.
var (
	zobristPiece      [2][6][64]uint64 // [Color][PieceKind][Square]
	zobristEnPassant  [8]uint64        // one per file
	zobristCastling   [16]uint64       // all castling-rights combinations
	zobristSideToMove uint64           // XORed in when Black is to move
)

func init() {
	initZobrist()
}

// prng is a small xorshift64* generator, used only to seed the fixed
// Zobrist tables deterministically; it is not used anywhere else.
type prng struct {
	state uint64
}

func newPRNG(seed uint64) *prng {
	return &prng{state: seed}
}

func (p *prng) next() uint64 {
	p.state ^= p.state >> 12
	p.state ^= p.state << 25
	p.state ^= p.state >> 27
	return p.state * 0x2545F4914F6CDD1D
}

func initZobrist() {
	rng := newPRNG(0xC001D00D5EA50BAD)

	// Squares outer, piece-kind inner: the Board mailbox is square-major,
	// so this walks squares in the same A1-to-H8 order Hash does.
	for sq := A1; sq <= H8; sq++ {
		for c := White; c <= Black; c++ {
			for pk := King; pk <= Pawn; pk++ {
				zobristPiece[c][pk][sq] = rng.next()
			}
		}
	}

	for i := 0; i < 16; i++ {
		zobristCastling[i] = rng.next()
	}

	for file := 0; file < 8; file++ {
		zobristEnPassant[file] = rng.next()
	}

	zobristSideToMove = rng.next()
}

// Hash computes the Zobrist hash of b from scratch. Perft's
// memoization cache uses this (combined with search depth) as its key.
func (b Board) Hash() uint64 {
	var hash uint64

	for sq := A1; sq <= H8; sq++ {
		piece := b.Squares[sq]
		if piece == NoPiece {
			continue
		}
		hash ^= zobristPiece[piece.Color()][piece.Kind()][sq]
	}

	if b.SideToMove == Black {
		hash ^= zobristSideToMove
	}

	hash ^= zobristCastling[b.Castling]

	if b.EnPassant != NoSquare {
		hash ^= zobristEnPassant[b.EnPassant.File()]
	}

	return hash
}
