//
// RookAndRoll - UCI chess engine in GO
//
// MIT License
//
// Copyright (c) 2022-2026 George Ibbotson
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

package movegen

import (
	"github.com/georgib0y/rookandroll/internal/movelist"
	"github.com/georgib0y/rookandroll/internal/position"
	. "github.com/georgib0y/rookandroll/internal/types"
)

// The per piece generators are parameterised by a pinned bitboard of
// own pieces which must not move and a target bitboard restricting
// the destination set. For the normal generators pinned is empty and
// target is the full board; the evasion generator restricts both.

func knightMovesFn(p *position.Position) func(Square) Bitboard {
	return GetKnightMoves
}

func kingMovesFn() func(Square) Bitboard {
	return GetKingMoves
}

func rookMovesFn(p *position.Position) func(Square) Bitboard {
	occ := p.OccAll()
	return func(sq Square) Bitboard { return GetRookAttacks(occ, sq) }
}

func bishopMovesFn(p *position.Position) func(Square) Bitboard {
	occ := p.OccAll()
	return func(sq Square) Bitboard { return GetBishopAttacks(occ, sq) }
}

func queenMovesFn(p *position.Position) func(Square) Bitboard {
	occ := p.OccAll()
	return func(sq Square) Bitboard { return GetQueenAttacks(occ, sq) }
}

func genPieceQuiet(p *position.Position, ml movelist.MoveList, base Piece,
	moves func(Square) Bitboard, pinned Bitboard, target Bitboard) {
	piece := MakePiece(p.Ctm(), base)
	pieces := p.PiecesBb(piece) &^ pinned
	free := ^p.OccAll() & target

	for pieces != BbZero {
		from := pieces.PopLsb()
		quiet := moves(from) & free
		for quiet != BbZero {
			ml.AddMove(NewMove(from, quiet.PopLsb(), piece, 0, Quiet))
		}
	}
}

func genPieceAttacks(p *position.Position, ml movelist.MoveList, base Piece,
	moves func(Square) Bitboard, pinned Bitboard, target Bitboard) {
	us := p.Ctm()
	piece := MakePiece(us, base)
	pieces := p.PiecesBb(piece) &^ pinned
	opp := p.Occ(us.Flip()) & target

	for pieces != BbZero {
		from := pieces.PopLsb()
		attacks := moves(from) & opp
		for attacks != BbZero {
			to := attacks.PopLsb()
			xpiece := p.PieceOfColorOn(to, us.Flip())
			ml.AddMove(NewMove(from, to, piece, xpiece, Cap))
		}
	}
}

func genPawnQuiet(p *position.Position, ml movelist.MoveList, pinned Bitboard, target Bitboard) {
	if p.Ctm() == White {
		genWPawnQuiet(p, ml, pinned, target)
	} else {
		genBPawnQuiet(p, ml, pinned, target)
	}
}

func genPawnAttacks(p *position.Position, ml movelist.MoveList, pinned Bitboard, target Bitboard) {
	if p.Ctm() == White {
		genWPawnAttacks(p, ml, pinned, target)
	} else {
		genBPawnAttacks(p, ml, pinned, target)
	}
}

// Pawn generation is split by side because the shift direction
// differs. The pawn bitboard is shifted towards the destination set
// and the from square recovered by the backwards shift.

func genWPawnQuiet(p *position.Position, ml movelist.MoveList, pinned Bitboard, target Bitboard) {
	pawns := p.PiecesBb(WhitePawn) &^ pinned
	empty := ^p.OccAll()

	push1 := (pawns << 8) & empty
	dbl := ((push1 & Rank3_Bb) << 8) & empty & target
	push1 &= target

	promo := push1 & Rank8_Bb
	push1 &^= Rank8_Bb

	for push1 != BbZero {
		to := push1.PopLsb()
		ml.AddMove(NewMove(to-8, to, WhitePawn, 0, Quiet))
	}
	for dbl != BbZero {
		to := dbl.PopLsb()
		ml.AddMove(NewMove(to-16, to, WhitePawn, 0, Double))
	}
	for promo != BbZero {
		to := promo.PopLsb()
		addPromos(ml, to-8, to, WhitePawn, White)
	}
}

func genBPawnQuiet(p *position.Position, ml movelist.MoveList, pinned Bitboard, target Bitboard) {
	pawns := p.PiecesBb(BlackPawn) &^ pinned
	empty := ^p.OccAll()

	push1 := (pawns >> 8) & empty
	dbl := ((push1 & Rank6_Bb) >> 8) & empty & target
	push1 &= target

	promo := push1 & Rank1_Bb
	push1 &^= Rank1_Bb

	for push1 != BbZero {
		to := push1.PopLsb()
		ml.AddMove(NewMove(to+8, to, BlackPawn, 0, Quiet))
	}
	for dbl != BbZero {
		to := dbl.PopLsb()
		ml.AddMove(NewMove(to+16, to, BlackPawn, 0, Double))
	}
	for promo != BbZero {
		to := promo.PopLsb()
		addPromos(ml, to+8, to, BlackPawn, Black)
	}
}

// addPromos adds the four promotion variants for a quiet push to
// the promotion rank
func addPromos(ml movelist.MoveList, from, to Square, piece Piece, c Color) {
	ml.AddMove(NewMove(from, to, piece, MakePiece(c, Queen), Promo))
	ml.AddMove(NewMove(from, to, piece, MakePiece(c, Rook), Promo))
	ml.AddMove(NewMove(from, to, piece, MakePiece(c, Bishop), Promo))
	ml.AddMove(NewMove(from, to, piece, MakePiece(c, Knight), Promo))
}

// addPromoCaps adds the four promotion capture variants
func addPromoCaps(ml movelist.MoveList, from, to Square, piece, xpiece Piece) {
	ml.AddMove(NewMove(from, to, piece, xpiece, QPromoCap))
	ml.AddMove(NewMove(from, to, piece, xpiece, RPromoCap))
	ml.AddMove(NewMove(from, to, piece, xpiece, BPromoCap))
	ml.AddMove(NewMove(from, to, piece, xpiece, NPromoCap))
}

func genWPawnAttacks(p *position.Position, ml movelist.MoveList, pinned Bitboard, target Bitboard) {
	pawns := p.PiecesBb(WhitePawn) &^ pinned
	opp := p.Occ(Black) & target

	west := ((pawns &^ FileA_Bb) << 7) & opp
	east := ((pawns &^ FileH_Bb) << 9) & opp

	for _, c := range [2]struct {
		caps Bitboard
		back Square
	}{{west, 7}, {east, 9}} {
		caps := c.caps
		promoCaps := caps & Rank8_Bb
		caps &^= Rank8_Bb
		for caps != BbZero {
			to := caps.PopLsb()
			xpiece := p.PieceOfColorOn(to, Black)
			ml.AddMove(NewMove(to-c.back, to, WhitePawn, xpiece, Cap))
		}
		for promoCaps != BbZero {
			to := promoCaps.PopLsb()
			xpiece := p.PieceOfColorOn(to, Black)
			addPromoCaps(ml, to-c.back, to, WhitePawn, xpiece)
		}
	}

	// en passant - the captured pawn sits one rank behind the target
	// square. In evasions it is only available if the captured pawn
	// is the checker or the en passant square blocks the check.
	ep := p.EpSquare()
	if ep != SqNone && (target.Has(ep-8) || target.Has(ep)) {
		capturers := GetPawnAttacks(Black, ep) & pawns
		for capturers != BbZero {
			from := capturers.PopLsb()
			ml.AddMove(NewMove(from, ep, WhitePawn, BlackPawn, Ep))
		}
	}
}

func genBPawnAttacks(p *position.Position, ml movelist.MoveList, pinned Bitboard, target Bitboard) {
	pawns := p.PiecesBb(BlackPawn) &^ pinned
	opp := p.Occ(White) & target

	west := ((pawns &^ FileA_Bb) >> 9) & opp
	east := ((pawns &^ FileH_Bb) >> 7) & opp

	for _, c := range [2]struct {
		caps Bitboard
		back Square
	}{{west, 9}, {east, 7}} {
		caps := c.caps
		promoCaps := caps & Rank1_Bb
		caps &^= Rank1_Bb
		for caps != BbZero {
			to := caps.PopLsb()
			xpiece := p.PieceOfColorOn(to, White)
			ml.AddMove(NewMove(to+c.back, to, BlackPawn, xpiece, Cap))
		}
		for promoCaps != BbZero {
			to := promoCaps.PopLsb()
			xpiece := p.PieceOfColorOn(to, White)
			addPromoCaps(ml, to+c.back, to, BlackPawn, xpiece)
		}
	}

	ep := p.EpSquare()
	if ep != SqNone && (target.Has(ep+8) || target.Has(ep)) {
		capturers := GetPawnAttacks(White, ep) & pawns
		for capturers != BbZero {
			from := capturers.PopLsb()
			ml.AddMove(NewMove(from, ep, BlackPawn, WhitePawn, Ep))
		}
	}
}

// castle masks for the squares between king and rook which have to
// be empty. King side: f1/g1, queen side: b1/c1/d1 (shifted for
// black).
const (
	wKingSideMask  Bitboard = 0x60
	wQueenSideMask Bitboard = 0xE
)

func genCastle(p *position.Position, ml movelist.MoveList) {
	us := p.Ctm()
	occ := p.OccAll()
	cr := p.CastleRights()
	king := MakePiece(us, King)

	if us == White {
		if cr.Has(position.CastleWKS) && occ&wKingSideMask == BbZero {
			ml.AddMove(NewMove(SqE1, SqG1, king, 0, WKingSide))
		}
		if cr.Has(position.CastleWQS) && occ&wQueenSideMask == BbZero {
			ml.AddMove(NewMove(SqE1, SqC1, king, 0, WQueenSide))
		}
	} else {
		if cr.Has(position.CastleBKS) && occ&(wKingSideMask<<56) == BbZero {
			ml.AddMove(NewMove(SqE8, SqG8, king, 0, BKingSide))
		}
		if cr.Has(position.CastleBQS) && occ&(wQueenSideMask<<56) == BbZero {
			ml.AddMove(NewMove(SqE8, SqC8, king, 0, BQueenSide))
		}
	}
}

// genKingEvasions generates the king moves of a side in check. The
// destination squares are tested against the opponent's attacks on
// the board with the king removed from the occupancy so that slider
// attacks see through the king.
func genKingEvasions(p *position.Position, ml movelist.MoveList) {
	us := p.Ctm()
	them := us.Flip()
	king := MakePiece(us, King)
	from := p.KingSq(us)

	occWithoutKing := p.OccAll() &^ from.Bb()

	quiet := GetKingMoves(from) &^ p.OccAll()
	for quiet != BbZero {
		to := quiet.PopLsb()
		if attackersWithOcc(p, to, them, occWithoutKing) != BbZero {
			continue
		}
		ml.AddMove(NewMove(from, to, king, 0, Quiet))
	}

	attacks := GetKingMoves(from) & p.Occ(them)
	for attacks != BbZero {
		to := attacks.PopLsb()
		if attackersWithOcc(p, to, them, occWithoutKing) != BbZero {
			continue
		}
		xpiece := p.PieceOfColorOn(to, them)
		ml.AddMove(NewMove(from, to, king, xpiece, Cap))
	}
}
