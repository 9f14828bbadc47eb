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

// Package movegen contains the move generation of the engine. It
// generates pseudo legal moves for quiet positions and legal evasion
// moves when the side to move is in check, writing into the move
// list buffers of the movelist package.
//
// Consumers of the pseudo legal generator are responsible for the
// final legality filter: any move whose execution leaves the own
// king in check must be rejected via MovedIntoCheck on the child
// position, and IsLegalMove pre-empts fifty-move/repetition draws
// and castle pass-through attacks.
package movegen

import (
	"github.com/georgib0y/rookandroll/internal/movelist"
	"github.com/georgib0y/rookandroll/internal/position"
	. "github.com/georgib0y/rookandroll/internal/types"
)

// GenerateMoves generates moves for the side to move into ml.
// If inCheck is true only legal evasion moves are generated,
// otherwise all pseudo legal moves.
func GenerateMoves(p *position.Position, ml movelist.MoveList, inCheck bool) {
	if inCheck {
		GenerateCheckMoves(p, ml)
	} else {
		GenerateAllMoves(p, ml)
	}
}

// GenerateAllMoves generates all pseudo legal moves for the side to
// move. The side to move must not be in check.
func GenerateAllMoves(p *position.Position, ml movelist.MoveList) {
	genPawnAttacks(p, ml, BbZero, BbAll)
	genPieceAttacks(p, ml, Knight, knightMovesFn(p), BbZero, BbAll)
	genPieceAttacks(p, ml, Rook, rookMovesFn(p), BbZero, BbAll)
	genPieceAttacks(p, ml, Bishop, bishopMovesFn(p), BbZero, BbAll)
	genPieceAttacks(p, ml, Queen, queenMovesFn(p), BbZero, BbAll)
	genPieceAttacks(p, ml, King, kingMovesFn(), BbZero, BbAll)
	genPawnQuiet(p, ml, BbZero, BbAll)
	genPieceQuiet(p, ml, Knight, knightMovesFn(p), BbZero, BbAll)
	genPieceQuiet(p, ml, Rook, rookMovesFn(p), BbZero, BbAll)
	genPieceQuiet(p, ml, Bishop, bishopMovesFn(p), BbZero, BbAll)
	genPieceQuiet(p, ml, Queen, queenMovesFn(p), BbZero, BbAll)
	genPieceQuiet(p, ml, King, kingMovesFn(), BbZero, BbAll)
	genCastle(p, ml)
}

// GenerateAttacks generates all pseudo legal capturing moves
// (including en passant and promotion captures) for the side to
// move. Used by the quiescence search.
func GenerateAttacks(p *position.Position, ml movelist.MoveList) {
	genPawnAttacks(p, ml, BbZero, BbAll)
	genPieceAttacks(p, ml, Knight, knightMovesFn(p), BbZero, BbAll)
	genPieceAttacks(p, ml, Rook, rookMovesFn(p), BbZero, BbAll)
	genPieceAttacks(p, ml, Bishop, bishopMovesFn(p), BbZero, BbAll)
	genPieceAttacks(p, ml, Queen, queenMovesFn(p), BbZero, BbAll)
	genPieceAttacks(p, ml, King, kingMovesFn(), BbZero, BbAll)
}

// GenerateCheckMoves generates legal evasion moves for a side to
// move which is in check.
func GenerateCheckMoves(p *position.Position, ml movelist.MoveList) {
	us := p.Ctm()
	them := us.Flip()
	ksq := p.KingSq(us)

	genKingEvasions(p, ml)

	attackers := AttackersTo(p, ksq, them)
	// double check - only king moves are legal
	if attackers.PopCount() >= 2 {
		return
	}

	pinned := pinnedPieces(p, ksq)

	// capture the attacker with a non pinned piece
	genPawnAttacks(p, ml, pinned, attackers)
	genPieceAttacks(p, ml, Knight, knightMovesFn(p), pinned, attackers)
	genPieceAttacks(p, ml, Rook, rookMovesFn(p), pinned, attackers)
	genPieceAttacks(p, ml, Bishop, bishopMovesFn(p), pinned, attackers)
	genPieceAttacks(p, ml, Queen, queenMovesFn(p), pinned, attackers)

	// if the attacker is a slider the check can be blocked on the
	// open ray between king and attacker
	asq := attackers.Lsb()
	attacker := p.PieceOfColorOn(asq, them)
	if attacker.BaseOf() == Rook || attacker.BaseOf() == Bishop || attacker.BaseOf() == Queen {
		between := Intermediate(ksq, asq)
		if between != BbZero {
			genPawnQuiet(p, ml, pinned, between)
			genPieceQuiet(p, ml, Knight, knightMovesFn(p), pinned, between)
			genPieceQuiet(p, ml, Rook, rookMovesFn(p), pinned, between)
			genPieceQuiet(p, ml, Bishop, bishopMovesFn(p), pinned, between)
			genPieceQuiet(p, ml, Queen, queenMovesFn(p), pinned, between)
			// en passant onto an empty square of the ray blocks as well
			genPawnAttacks(p, ml, pinned, between)
		}
	}
}

// AttackersTo returns a bitboard of all pieces of the given color
// attacking the square with the current board occupancy
func AttackersTo(p *position.Position, sq Square, c Color) Bitboard {
	return attackersWithOcc(p, sq, c, p.OccAll())
}

// AllAttackersTo returns a bitboard of the pieces of both colors
// attacking the square
func AllAttackersTo(p *position.Position, sq Square) Bitboard {
	return AttackersTo(p, sq, White) | AttackersTo(p, sq, Black)
}

// SlidingAttackersTo returns the sliding pieces of both colors which
// attack the square with the given (possibly reduced) occupancy.
// Used by the static exchange evaluation to reveal xray attacks
// after removing pieces from the occupancy.
func SlidingAttackersTo(p *position.Position, sq Square, occ Bitboard) Bitboard {
	attacks := BbZero
	rq := p.Pieces(Rook, White) | p.Pieces(Queen, White) |
		p.Pieces(Rook, Black) | p.Pieces(Queen, Black)
	bq := p.Pieces(Bishop, White) | p.Pieces(Queen, White) |
		p.Pieces(Bishop, Black) | p.Pieces(Queen, Black)
	attacks |= GetRookAttacks(occ, sq) & rq
	attacks |= GetBishopAttacks(occ, sq) & bq
	return attacks & occ
}

// SquareAttacked checks if the given square is attacked by a piece
// of the given color
func SquareAttacked(p *position.Position, sq Square, c Color) bool {
	return AttackersTo(p, sq, c) != BbZero
}

// InCheck returns true if the side to move is in check
func InCheck(p *position.Position) bool {
	return SquareAttacked(p, p.KingSq(p.Ctm()), p.Ctm().Flip())
}

// MovedIntoCheck is evaluated on the position AFTER the move was
// applied. It returns true iff the move left the mover's own king
// attacked. The superray pre-filter makes the common case constant
// time - only moves which could possibly have exposed the king pay
// for the full attack test. For en passant captures the vacated
// square of the captured pawn is part of the ray test as well.
func MovedIntoCheck(newPos *position.Position, m Move) bool {
	mover := newPos.Ctm().Flip()
	ksq := newPos.KingSq(mover)

	vacated := m.From().Bb()
	if m.MoveType() == Ep {
		if mover == White {
			vacated |= (m.To() - 8).Bb()
		} else {
			vacated |= (m.To() + 8).Bb()
		}
	}
	if GetSuperRay(ksq)&vacated == BbZero {
		return false
	}
	return SquareAttacked(newPos, ksq, newPos.Ctm())
}

// IsLegalMove is the final legality gate invoked on the child
// position produced by CopyMake. It rejects moves into a position
// where a draw by the fifty-move rule or three fold repetition
// pre-empts and castle moves whose passed-through squares are
// attacked (the generator has already checked emptiness).
func IsLegalMove(newPos *position.Position, m Move, prevMoves *position.PrevMoves) bool {
	if newPos.Halfmove() > 100 || prevMoves.Count(newPos.Hash()) == 2 {
		return false
	}
	switch m.MoveType() {
	case WKingSide:
		return !SquareAttacked(newPos, SqF1, Black) && !SquareAttacked(newPos, SqG1, Black)
	case WQueenSide:
		return !SquareAttacked(newPos, SqD1, Black) && !SquareAttacked(newPos, SqC1, Black)
	case BKingSide:
		return !SquareAttacked(newPos, SqF8, White) && !SquareAttacked(newPos, SqG8, White)
	case BQueenSide:
		return !SquareAttacked(newPos, SqD8, White) && !SquareAttacked(newPos, SqC8, White)
	}
	return true
}

// ////////////////////
// Private
// ////////////////////

func attackersWithOcc(p *position.Position, sq Square, c Color, occ Bitboard) Bitboard {
	attacks := GetPawnAttacks(c.Flip(), sq) & p.Pieces(Pawn, c)
	attacks |= GetKnightMoves(sq) & p.Pieces(Knight, c)
	attacks |= GetKingMoves(sq) & p.Pieces(King, c)
	rq := p.Pieces(Rook, c) | p.Pieces(Queen, c)
	attacks |= GetRookAttacks(occ, sq) & rq
	bq := p.Pieces(Bishop, c) | p.Pieces(Queen, c)
	attacks |= GetBishopAttacks(occ, sq) & bq
	return attacks
}

// pinnedPieces returns the own pieces which are pinned against the
// king on ksq, computed on demand as bitboards: rays from the king
// through a single own blocker onto an opposing slider (xray).
func pinnedPieces(p *position.Position, ksq Square) Bitboard {
	us := p.Ctm()
	them := us.Flip()
	own := p.Occ(us)
	occ := p.OccAll()

	rq := p.Pieces(Rook, them) | p.Pieces(Queen, them)
	bq := p.Pieces(Bishop, them) | p.Pieces(Queen, them)

	pinners := (GetRookXrayAttacks(occ, own, ksq) & rq) |
		(GetBishopXrayAttacks(occ, own, ksq) & bq)

	pinned := BbZero
	for pinners != BbZero {
		psq := pinners.PopLsb()
		pinned |= Intermediate(ksq, psq) & own
	}
	return pinned
}
