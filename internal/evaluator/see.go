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

package evaluator

import (
	"github.com/georgib0y/rookandroll/internal/movegen"
	"github.com/georgib0y/rookandroll/internal/position"
	. "github.com/georgib0y/rookandroll/internal/types"
)

// See computes the static exchange evaluation of a capturing move:
// the expected material swing on the target square assuming both
// sides keep capturing with their least valuable attacker while it
// is profitable.
// https://www.chessprogramming.org/SEE_-_The_Swap_Algorithm
func See(p *position.Position, m Move) Value {
	to := m.To()
	from := m.From()
	us := p.Ctm()

	// maximum number of pieces which could capture on one square
	var gain [32]Value
	depth := 0

	movedPiece := m.Piece()
	occ := p.OccAll()
	attackers := movegen.AllAttackersTo(p, to)

	// only non knights can reveal xray attacks when removed
	mayXray := occ &^ (p.Pieces(Knight, White) | p.Pieces(Knight, Black))

	gain[0] = m.XPiece().ValueOf()

	fromBb := from.Bb()
	side := us
	for fromBb != BbZero {
		depth++
		side = side.Flip()

		// speculative gain if the capturing piece gets captured itself
		gain[depth] = movedPiece.ValueOf() - gain[depth-1]

		// neither continuation can improve the final score
		if maxValue(-gain[depth-1], gain[depth]) < 0 {
			break
		}

		// remove the attacker and reveal hidden sliders behind it
		attackers &^= fromBb
		occ &^= fromBb
		if fromBb&mayXray != BbZero {
			attackers |= movegen.SlidingAttackersTo(p, to, occ)
		}

		fromBb = leastValuableAttacker(p, attackers, side)
		if fromBb == BbZero {
			break
		}
		movedPiece = p.PieceOn(fromBb.Lsb())
	}

	for depth--; depth > 0; depth-- {
		gain[depth-1] = -maxValue(-gain[depth-1], gain[depth])
	}

	return gain[0]
}

// leastValuableAttacker returns a single square bitboard of the least
// valuable attacker of the given side within the attackers set, or
// BbZero if the side has no attacker left
func leastValuableAttacker(p *position.Position, attackers Bitboard, side Color) Bitboard {
	for _, base := range [6]Piece{Pawn, Knight, Bishop, Rook, Queen, King} {
		pieces := attackers & p.Pieces(base, side)
		if pieces != BbZero {
			return pieces & -pieces
		}
	}
	return BbZero
}

func maxValue(a, b Value) Value {
	if a > b {
		return a
	}
	return b
}
