package corechess

import "sync"

// Zobrist hash keys. Generated once from a fixed seed with a xorshift64*
// generator so that the keys (and therefore every Hash value) are identical
// across every process run, never reseeded from process entropy. Grounded
// on hailam-chessplay's Polyglot key generator (internal/board/polyglot.go),
// adapted with a different seed so these are not mistaken for Polyglot's own
// published book keys (spec §4.3; see DESIGN.md for why the literal sample
// hashes in spec §8 cannot be reproduced without the original generator).
const zobristSeed uint64 = 0x9E3779B97F4A7C15

type zobristPRNG struct{ state uint64 }

func newZobristPRNG(seed uint64) *zobristPRNG { return &zobristPRNG{state: seed} }

func (p *zobristPRNG) next() uint64 {
	s := p.state
	s ^= s >> 12
	s ^= s << 25
	s ^= s >> 27
	p.state = s
	return s * 0x2545F4914F6CDD1D
}

var (
	zobristPieceKeys    [12][64]uint64
	zobristCastlingKeys [16]uint64
	zobristEPFileKeys   [8]uint64
	zobristSideKey      uint64

	zobristOnce sync.Once
)

// InitZobristKeys builds the Zobrist key tables. Idempotent; every hashing
// entry point calls it automatically on first use.
func InitZobristKeys() {
	zobristOnce.Do(initZobristKeys)
}

func ensureZobristInit() {
	zobristOnce.Do(initZobristKeys)
}

func initZobristKeys() {
	rng := newZobristPRNG(zobristSeed)
	for p := 0; p < 12; p++ {
		for sq := 0; sq < 64; sq++ {
			zobristPieceKeys[p][sq] = rng.next()
		}
	}
	for i := range zobristCastlingKeys {
		zobristCastlingKeys[i] = rng.next()
	}
	for i := range zobristEPFileKeys {
		zobristEPFileKeys[i] = rng.next()
	}
	zobristSideKey = rng.next()
}

// pieceKey returns the Zobrist key for piece p standing on sq.
func pieceKey(p Piece, sq Square) uint64 {
	ensureZobristInit()
	return zobristPieceKeys[p][sq]
}

// castlingKey returns the Zobrist key contribution for a CastlingRights
// presence index (0..15, one bit per castling side, see castling.go).
func castlingKey(index int) uint64 {
	ensureZobristInit()
	return zobristCastlingKeys[index]
}

// epFileKey returns the Zobrist key contribution for an en passant target
// square's file. Only the file matters: the rank is implied by side to
// move.
func epFileKey(f File) uint64 {
	ensureZobristInit()
	return zobristEPFileKeys[f]
}

// sideKey returns the Zobrist key contribution XORed in whenever it is
// Black to move.
func sideKey() uint64 {
	ensureZobristInit()
	return zobristSideKey
}

// Hash is a Zobrist hash of a position: a fixed-width summary such that two
// positions differing in piece placement, castling rights, en passant
// target, or side to move almost certainly hash differently, and such that
// it can be updated incrementally in O(1) per move rather than recomputed
// from scratch (spec §4.3).
type Hash uint64

// computeHash recomputes a position's hash from scratch; used only to seed
// a freshly parsed position and, in tests, as an oracle against the
// incremental update path.
func computeHash(b *Board) Hash {
	var h uint64
	for sq := Square(0); sq < 64; sq++ {
		if p := b.PieceOn(sq); p != NoPiece {
			h ^= pieceKey(p, sq)
		}
	}
	h ^= castlingKey(int(b.CastlingRights.presenceIndex()))
	if b.EPSquare != NoSquare {
		h ^= epFileKey(b.EPSquare.File())
	}
	if b.SideToMove == Black {
		h ^= sideKey()
	}
	return Hash(h)
}
