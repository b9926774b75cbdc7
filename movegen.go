package corechess

import "sync"

// betweenBB[a][b] is the set of squares strictly between a and b along a
// shared rank, file, or diagonal (exclusive of both endpoints), or the
// empty set if a and b are not aligned. Built once by initBetweenTables.
var betweenBB [64][64]Bitboard

var movegenTablesOnce sync.Once

func ensureMovegenTablesInit() {
	movegenTablesOnce.Do(initBetweenTables)
}

// stepSquare returns the square reached by moving one step from sq in
// direction d (one of the eight ray directions, as a rank/file delta
// encoded the way bitboard shifts are), and whether that step stays on the
// board without wrapping a file.
func stepSquare(sq Square, d int) (Square, bool) {
	f, r := sq.File(), sq.Rank()
	switch d {
	case 8:
		if r == Rank8 {
			return 0, false
		}
		return sq + 8, true
	case -8:
		if r == Rank1 {
			return 0, false
		}
		return sq - 8, true
	case 1:
		if f == FileH {
			return 0, false
		}
		return sq + 1, true
	case -1:
		if f == FileA {
			return 0, false
		}
		return sq - 1, true
	case 9:
		if f == FileH || r == Rank8 {
			return 0, false
		}
		return sq + 9, true
	case 7:
		if f == FileA || r == Rank8 {
			return 0, false
		}
		return sq + 7, true
	case -7:
		if f == FileH || r == Rank1 {
			return 0, false
		}
		return sq - 7, true
	case -9:
		if f == FileA || r == Rank1 {
			return 0, false
		}
		return sq - 9, true
	}
	return 0, false
}

func initBetweenTables() {
	dirs := [8]int{8, -8, 1, -1, 9, 7, -7, -9}
	for sq := Square(0); sq < 64; sq++ {
		for _, d := range dirs {
			var acc Bitboard
			cur := sq
			for {
				next, ok := stepSquare(cur, d)
				if !ok {
					break
				}
				betweenBB[sq][next] = acc
				acc = acc.Set(next)
				cur = next
			}
		}
	}
}

// computeCheckData returns the checkmask (spec glossary: squares a
// non-king piece may move to in order to resolve a check, all-ones when
// not in check) and whether the side to move is in double check.
func computeCheckData(b *Board, us Color, kingSq Square, occAll Bitboard) (Bitboard, bool) {
	them := us.Opposite()
	var checkmask Bitboard
	checkers := 0

	if knightCheckers := KnightAttacks(kingSq) & b.Pieces(Knight, them); knightCheckers != 0 {
		checkmask |= knightCheckers
		checkers += knightCheckers.Count()
		if checkers >= 2 {
			return checkmask, true
		}
	}
	if pawnCheckers := PawnAttacks(kingSq, us) & b.Pieces(Pawn, them); pawnCheckers != 0 {
		checkmask |= pawnCheckers
		checkers += pawnCheckers.Count()
		if checkers >= 2 {
			return checkmask, true
		}
	}
	diagAttackers := BishopAttacks(kingSq, occAll) & (b.Pieces(Bishop, them) | b.Pieces(Queen, them))
	for diagAttackers != 0 {
		sq := PopLSB(&diagAttackers)
		checkmask |= betweenBB[kingSq][sq] | SquareBB(sq)
		checkers++
		if checkers >= 2 {
			return checkmask, true
		}
	}
	orthoAttackers := RookAttacks(kingSq, occAll) & (b.Pieces(Rook, them) | b.Pieces(Queen, them))
	for orthoAttackers != 0 {
		sq := PopLSB(&orthoAttackers)
		checkmask |= betweenBB[kingSq][sq] | SquareBB(sq)
		checkers++
		if checkers >= 2 {
			return checkmask, true
		}
	}
	if checkers == 0 {
		return AllSquares, false
	}
	return checkmask, false
}

// computePinMasks returns pin_hv (orthogonal pins) and pin_d (diagonal
// pins): for each, the full ray from king through the pinning attacker,
// restricted to rays that contain exactly one of our own pieces.
func computePinMasks(b *Board, us Color, kingSq Square, occUs, occThem Bitboard) (pinHV, pinD Bitboard) {
	them := us.Opposite()

	orthoPinners := RookAttacks(kingSq, occThem) & (b.Pieces(Rook, them) | b.Pieces(Queen, them))
	for orthoPinners != 0 {
		sq := PopLSB(&orthoPinners)
		ray := betweenBB[kingSq][sq] | SquareBB(sq)
		if (ray & occUs).Count() == 1 {
			pinHV |= ray
		}
	}

	diagPinners := BishopAttacks(kingSq, occThem) & (b.Pieces(Bishop, them) | b.Pieces(Queen, them))
	for diagPinners != 0 {
		sq := PopLSB(&diagPinners)
		ray := betweenBB[kingSq][sq] | SquareBB(sq)
		if (ray & occUs).Count() == 1 {
			pinD |= ray
		}
	}
	return pinHV, pinD
}

// computeSeen returns every square attacked by them, with the side-to-move
// king removed from occupancy first so that a slider's ray isn't falsely
// blocked by the very king whose destination squares are being filtered.
func computeSeen(b *Board, us Color, kingSq Square) Bitboard {
	them := us.Opposite()
	occNoKing := b.Occupied() &^ SquareBB(kingSq)

	pawnsThem := b.Pieces(Pawn, them)
	seen := PawnLeftAttacks(pawnsThem, them) | PawnRightAttacks(pawnsThem, them)

	for kn := b.Pieces(Knight, them); kn != 0; {
		seen |= KnightAttacks(PopLSB(&kn))
	}
	for bi := b.Pieces(Bishop, them) | b.Pieces(Queen, them); bi != 0; {
		seen |= BishopAttacks(PopLSB(&bi), occNoKing)
	}
	for ro := b.Pieces(Rook, them) | b.Pieces(Queen, them); ro != 0; {
		seen |= RookAttacks(PopLSB(&ro), occNoKing)
	}
	seen |= KingAttacks(b.KingSquare(them))
	return seen
}

// movableSquares returns the destination filter for mode, before
// intersecting with the checkmask.
func movableSquares(mode GenMode, occUs, occThem, occAll Bitboard) Bitboard {
	switch mode {
	case GenCaptures:
		return occThem
	case GenQuiets:
		return ^occAll
	default:
		return ^occUs
	}
}

// GenerateMoves appends every legal move for the side to move satisfying
// pieces and mode to list (spec §4.5). It never clears list first; callers
// that want a fresh list should pass a zero-valued one.
func GenerateMoves(b *Board, pieces PieceSet, mode GenMode, list *MoveList) {
	ensureMovegenTablesInit()

	us := b.SideToMove
	kingSq := b.KingSquare(us)
	occUs := b.OccupiedBy(us)
	occThem := b.OccupiedBy(us.Opposite())
	occAll := occUs | occThem

	checkmask, doubleCheck := computeCheckData(b, us, kingSq, occAll)
	pinHV, pinD := computePinMasks(b, us, kingSq, occUs, occThem)
	seen := computeSeen(b, us, kingSq)

	if pieces.Has(King) {
		kingMovable := movableSquares(mode, occUs, occThem, occAll)
		for dests := KingAttacks(kingSq) & kingMovable &^ seen; dests != 0; {
			to := PopLSB(&dests)
			list.Push(NewMove(kingSq, to, Normal))
		}
		if mode != GenCaptures && checkmask == AllSquares {
			generateCastling(b, us, kingSq, occAll, seen, pinHV, list)
		}
	}

	if doubleCheck {
		return
	}

	movable := movableSquares(mode, occUs, occThem, occAll) & checkmask

	if pieces.Has(Pawn) {
		generatePawnMoves(b, us, occAll, occThem, checkmask, pinHV, pinD, kingSq, mode, list)
	}
	if pieces.Has(Knight) {
		generateKnightMoves(b, us, movable, pinHV, pinD, list)
	}
	if pieces.Has(Bishop) {
		generateSliderMoves(b, us, Bishop, movable, occAll, pinHV, pinD, list)
	}
	if pieces.Has(Rook) {
		generateSliderMoves(b, us, Rook, movable, occAll, pinHV, pinD, list)
	}
	if pieces.Has(Queen) {
		generateSliderMoves(b, us, Queen, movable, occAll, pinHV, pinD, list)
	}
}

// generateCastling emits castling moves for every right still held, as
// CASTLING(from=king_sq, to=rook_from) (spec §4.5, §3's castling
// convention). Called only when the side to move is not in check.
func generateCastling(b *Board, us Color, kingSq Square, occAll, seen, pinHV Bitboard, list *MoveList) {
	for _, side := range [2]CastlingSide{KingSide, QueenSide} {
		if !b.CastlingRights.Has(us, side) {
			continue
		}
		rookFile := b.CastlingRights.RookFile(us, side)
		rookFrom := squareAt(rookFile, kingSq.Rank())
		if pinHV.Test(rookFrom) {
			continue
		}

		kingDest, rookDest := castleDestSquares(us, side)
		occExcl := occAll &^ SquareBB(kingSq) &^ SquareBB(rookFrom)

		kingTravel := betweenBB[kingSq][kingDest] | SquareBB(kingDest)
		if kingTravel&occExcl != 0 || kingTravel&seen != 0 {
			continue
		}
		if betweenBB[kingSq][rookFrom]&occExcl != 0 {
			continue
		}
		if SquareBB(rookDest)&occExcl != 0 {
			continue
		}

		list.Push(NewMove(kingSq, rookFrom, Castling))
	}
}

func pawnCaptureTargets(from Square, us Color) (left, right Square) {
	left, right = NoSquare, NoSquare
	fwd := 8
	if us == Black {
		fwd = -8
	}
	if from.File() > FileA {
		left = from + Square(fwd-1)
	}
	if from.File() < FileH {
		right = from + Square(fwd+1)
	}
	return left, right
}

func singlePushTarget(from Square, us Color) Square {
	if us == White {
		if from.Rank() == Rank8 {
			return NoSquare
		}
		return from + 8
	}
	if from.Rank() == Rank1 {
		return NoSquare
	}
	return from - 8
}

func emitPawnMove(list *MoveList, from, to Square, isPromotion bool) {
	if !isPromotion {
		list.Push(NewMove(from, to, Normal))
		return
	}
	list.Push(NewPromotionMove(from, to, PromoQueen))
	list.Push(NewPromotionMove(from, to, PromoRook))
	list.Push(NewPromotionMove(from, to, PromoBishop))
	list.Push(NewPromotionMove(from, to, PromoKnight))
}

// generatePawnMoves emits pawn captures, pushes, and en passant. Mode
// gating for the non-promotion single push and the double push follows
// the §8 invariant that ALL is the disjoint union of CAPTURE and QUIET:
// a promoting push counts as a capture-bucket move (it is tactically
// equivalent to a capture for move-ordering purposes), a non-promoting
// push counts as a quiet-bucket move. This disambiguates a point spec §4.5
// leaves silent (only the diagonal-capture and double-push bullets state
// an explicit mode restriction).
func generatePawnMoves(b *Board, us Color, occAll, occThem, checkmask, pinHV, pinD Bitboard, kingSq Square, mode GenMode, list *MoveList) {
	promoRank, pushStartRank := Rank8, Rank2
	if us == Black {
		promoRank, pushStartRank = Rank1, Rank7
	}

	for pawns := b.Pieces(Pawn, us); pawns != 0; {
		from := PopLSB(&pawns)
		pinnedHV := pinHV.Test(from)
		pinnedD := pinD.Test(from)

		if mode != GenQuiets && !pinnedHV {
			left, right := pawnCaptureTargets(from, us)
			for _, to := range [2]Square{left, right} {
				if to == NoSquare || !occThem.Test(to) || !checkmask.Test(to) {
					continue
				}
				if pinnedD && !pinD.Test(to) {
					continue
				}
				emitPawnMove(list, from, to, to.Rank() == promoRank)
			}
		}

		if pinnedD {
			continue
		}
		single := singlePushTarget(from, us)
		if single == NoSquare || occAll.Test(single) {
			continue
		}
		isPromo := single.Rank() == promoRank
		singleAllowedByMode := (isPromo && mode != GenQuiets) || (!isPromo && mode != GenCaptures)
		if singleAllowedByMode && checkmask.Test(single) && !(pinnedHV && !pinHV.Test(single)) {
			emitPawnMove(list, from, single, isPromo)
		}
		if mode == GenCaptures || from.Rank() != pushStartRank {
			continue
		}
		double := singlePushTarget(single, us)
		if double != NoSquare && !occAll.Test(double) && checkmask.Test(double) &&
			!(pinnedHV && !pinHV.Test(double)) {
			list.Push(NewMove(from, double, Normal))
		}
	}

	generateEnPassant(b, us, occAll, checkmask, pinHV, pinD, kingSq, mode, list)
}

// generateEnPassant implements spec §4.5's en passant bullet, including
// the exclusion of orthogonally-pinned capturers, the pin-ray restriction
// on diagonally-pinned capturers and the horizontal discovered-check
// simulation.
func generateEnPassant(b *Board, us Color, occAll, checkmask, pinHV, pinD Bitboard, kingSq Square, mode GenMode, list *MoveList) {
	if mode == GenQuiets {
		return
	}
	ep := b.EPSquare
	if ep == NoSquare {
		return
	}
	them := us.Opposite()
	capturedSq := ep ^ 8
	if !checkmask.Test(ep) && !checkmask.Test(capturedSq) {
		return
	}

	candidates := PawnAttacks(ep, them) & b.Pieces(Pawn, us)
	for candidates != 0 {
		from := PopLSB(&candidates)
		if pinHV.Test(from) {
			continue
		}
		if pinD.Test(from) && !pinD.Test(ep) {
			continue
		}
		if kingSq.Rank() == capturedSq.Rank() {
			occAfter := occAll &^ SquareBB(from) &^ SquareBB(capturedSq)
			if RookAttacks(kingSq, occAfter)&(b.Pieces(Rook, them)|b.Pieces(Queen, them)) != 0 {
				continue
			}
		}
		list.Push(NewMove(from, ep, EnPassant))
	}
}

func generateKnightMoves(b *Board, us Color, movable, pinHV, pinD Bitboard, list *MoveList) {
	pinned := pinHV | pinD
	for kn := b.Pieces(Knight, us) &^ pinned; kn != 0; {
		from := PopLSB(&kn)
		for dests := KnightAttacks(from) & movable; dests != 0; {
			list.Push(NewMove(from, PopLSB(&dests), Normal))
		}
	}
}

// generateSliderMoves emits bishop, rook, or queen moves, applying the
// pin restrictions spec §4.5 describes for each piece type.
func generateSliderMoves(b *Board, us Color, pt PieceType, movable, occAll, pinHV, pinD Bitboard, list *MoveList) {
	for pieces := b.Pieces(pt, us); pieces != 0; {
		from := PopLSB(&pieces)
		var attacks Bitboard
		switch pt {
		case Bishop:
			if pinHV.Test(from) {
				continue
			}
			attacks = BishopAttacks(from, occAll) & movable
			if pinD.Test(from) {
				attacks &= pinD
			}
		case Rook:
			if pinD.Test(from) {
				continue
			}
			attacks = RookAttacks(from, occAll) & movable
			if pinHV.Test(from) {
				attacks &= pinHV
			}
		case Queen:
			switch {
			case pinD.Test(from):
				attacks = BishopAttacks(from, occAll) & movable & pinD
			case pinHV.Test(from):
				attacks = RookAttacks(from, occAll) & movable & pinHV
			default:
				attacks = QueenAttacks(from, occAll) & movable
			}
		}
		for dests := attacks; dests != 0; {
			list.Push(NewMove(from, PopLSB(&dests), Normal))
		}
	}
}
