package board

// MoveKind tags a Move with one of the 14 cases a legal chess move can
// take. Capture-ness and promotion-ness are directly derivable from the
// kind rather than requiring a board lookup.
type MoveKind uint8

const (
	Quiet MoveKind = iota
	DoublePawnPush
	KingCastle
	QueenCastle
	SimpleCapture
	EnPassantCapture
	KnightPromotion
	BishopPromotion
	RookPromotion
	QueenPromotion
	KnightCapturePromotion
	BishopCapturePromotion
	RookCapturePromotion
	QueenCapturePromotion
)

var moveKindNames = [...]string{
	Quiet: "Quiet", DoublePawnPush: "DoublePawnPush",
	KingCastle: "KingCastle", QueenCastle: "QueenCastle",
	SimpleCapture: "SimpleCapture", EnPassantCapture: "EnPassantCapture",
	KnightPromotion: "KnightPromotion", BishopPromotion: "BishopPromotion",
	RookPromotion: "RookPromotion", QueenPromotion: "QueenPromotion",
	KnightCapturePromotion: "KnightCapturePromotion", BishopCapturePromotion: "BishopCapturePromotion",
	RookCapturePromotion: "RookCapturePromotion", QueenCapturePromotion: "QueenCapturePromotion",
}

func (k MoveKind) String() string {
	if int(k) < len(moveKindNames) {
		return moveKindNames[k]
	}
	return "Invalid"
}

// IsCapture reports whether kind is one of the 6 capture-bearing kinds.
func (k MoveKind) IsCapture() bool {
	switch k {
	case SimpleCapture, EnPassantCapture,
		KnightCapturePromotion, BishopCapturePromotion, RookCapturePromotion, QueenCapturePromotion:
		return true
	}
	return false
}

// IsPromotion reports whether kind is one of the 8 promotion-bearing kinds.
func (k MoveKind) IsPromotion() bool {
	switch k {
	case KnightPromotion, BishopPromotion, RookPromotion, QueenPromotion,
		KnightCapturePromotion, BishopCapturePromotion, RookCapturePromotion, QueenCapturePromotion:
		return true
	}
	return false
}

// PromotedKind returns the piece kind a promotion move places on its
// destination square. Only meaningful when IsPromotion() is true.
func (k MoveKind) PromotedKind() PieceKind {
	switch k {
	case KnightPromotion, KnightCapturePromotion:
		return Knight
	case BishopPromotion, BishopCapturePromotion:
		return Bishop
	case RookPromotion, RookCapturePromotion:
		return Rook
	case QueenPromotion, QueenCapturePromotion:
		return Queen
	}
	return NoPieceKind
}

// quietPromotionKind is the inverse of PromotedKind restricted to non-capture
// promotions; used when packing a quiet-promotion move from a target kind.
func quietPromotionKind(pk PieceKind) MoveKind {
	switch pk {
	case Knight:
		return KnightPromotion
	case Bishop:
		return BishopPromotion
	case Rook:
		return RookPromotion
	case Queen:
		return QueenPromotion
	}
	return Quiet
}

func capturePromotionKind(pk PieceKind) MoveKind {
	switch pk {
	case Knight:
		return KnightCapturePromotion
	case Bishop:
		return BishopCapturePromotion
	case Rook:
		return RookCapturePromotion
	case Queen:
		return QueenCapturePromotion
	}
	return SimpleCapture
}

// Move packs (from, to, kind) into 16 bits: 6 bits from, 6 bits to, 4
// bits kind — a target-language optimization of the (from, to, kind)
// triple, generalizing the teacher's from/to/flag packing to carry the
// full MoveKind instead of a separate flag-plus-promotion-index pair.
type Move uint16

// NoMove represents an invalid or null move.
const NoMove Move = 0xFFFF

func packMove(from, to Square, kind MoveKind) Move {
	return Move(from) | Move(to)<<6 | Move(kind)<<12
}

// NewQuiet creates a non-capturing, non-special move.
func NewQuiet(from, to Square) Move { return packMove(from, to, Quiet) }

// NewDoublePawnPush creates a two-square pawn push.
func NewDoublePawnPush(from, to Square) Move { return packMove(from, to, DoublePawnPush) }

// NewCastle creates a king-side or queen-side castling move.
func NewCastle(from, to Square, kingSide bool) Move {
	if kingSide {
		return packMove(from, to, KingCastle)
	}
	return packMove(from, to, QueenCastle)
}

// NewCapture creates a simple (non-en-passant, non-promotion) capture.
func NewCapture(from, to Square) Move { return packMove(from, to, SimpleCapture) }

// NewEnPassantCapture creates an en passant capture move.
func NewEnPassantCapture(from, to Square) Move { return packMove(from, to, EnPassantCapture) }

// NewPromotion creates a non-capturing promotion to the given piece kind.
func NewPromotion(from, to Square, promoted PieceKind) Move {
	return packMove(from, to, quietPromotionKind(promoted))
}

// NewCapturePromotion creates a capturing promotion to the given piece kind.
func NewCapturePromotion(from, to Square, promoted PieceKind) Move {
	return packMove(from, to, capturePromotionKind(promoted))
}

// From returns the origin square.
func (m Move) From() Square { return Square(m & 0x3F) }

// To returns the destination square.
func (m Move) To() Square { return Square((m >> 6) & 0x3F) }

// Kind returns the move's tagged kind.
func (m Move) Kind() MoveKind { return MoveKind((m >> 12) & 0xF) }

// IsCapture reports whether this move is one of the 6 capture-bearing kinds.
func (m Move) IsCapture() bool { return m.Kind().IsCapture() }

// IsPromotion reports whether this move is one of the 8 promotion-bearing kinds.
func (m Move) IsPromotion() bool { return m.Kind().IsPromotion() }

// String returns the UCI text of the move (e.g. "e2e4", "e7e8q").
func (m Move) String() string {
	if m == NoMove {
		return "0000"
	}
	s := m.From().String() + m.To().String()
	if m.IsPromotion() {
		s += promotionLetter(m.Kind().PromotedKind())
	}
	return s
}

// UCI is an alias for String kept for callers that want to name the
// UCI wire format explicitly rather than relying on fmt.Stringer.
func (m Move) UCI() string { return m.String() }

// ParseUCIMove parses 4- or 5-character UCI move text ("e2e4", "e7e8q")
// against b and returns the one legal move it names. UCI text alone
// carries no MoveKind — "e1g1" could be a king step or a castle — so
// this matches against LegalMoves(b) rather than packing bits directly,
// the same way a driver must disambiguate promotions, captures, en
// passant, and castling from bare origin/destination squares.
func ParseUCIMove(b Board, s string) (Move, error) {
	if len(s) != 4 && len(s) != 5 {
		return NoMove, &MoveParseError{Text: s}
	}
	from, err := ParseSquare(s[0:2])
	if err != nil {
		return NoMove, &MoveParseError{Text: s}
	}
	to, err := ParseSquare(s[2:4])
	if err != nil {
		return NoMove, &MoveParseError{Text: s}
	}
	wantPromo := NoPieceKind
	if len(s) == 5 {
		switch s[4] {
		case 'q':
			wantPromo = Queen
		case 'r':
			wantPromo = Rook
		case 'b':
			wantPromo = Bishop
		case 'n':
			wantPromo = Knight
		default:
			return NoMove, &MoveParseError{Text: s}
		}
	}

	for _, m := range LegalMoves(b) {
		if m.From() != from || m.To() != to {
			continue
		}
		if m.IsPromotion() {
			if m.Kind().PromotedKind() == wantPromo {
				return m, nil
			}
			continue
		}
		if wantPromo == NoPieceKind {
			return m, nil
		}
	}
	return NoMove, &MoveParseError{Text: s}
}

func promotionLetter(pk PieceKind) string {
	switch pk {
	case Knight:
		return "n"
	case Bishop:
		return "b"
	case Rook:
		return "r"
	case Queen:
		return "q"
	}
	return ""
}

// MoveList is a fixed-size list of moves, bounded well above the chess
// maximum of roughly 218 legal moves from any position, sized to avoid
// per-generation allocation.
type MoveList struct {
	moves [256]Move
	count int
}

// Add appends a move to the list.
func (ml *MoveList) Add(m Move) {
	ml.moves[ml.count] = m
	ml.count++
}

// Len returns the number of moves in the list.
func (ml *MoveList) Len() int { return ml.count }

// Get returns the move at index i.
func (ml *MoveList) Get(i int) Move { return ml.moves[i] }

// Slice returns the moves collected so far as a slice.
func (ml *MoveList) Slice() []Move { return ml.moves[:ml.count] }
