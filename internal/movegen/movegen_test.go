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
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/georgib0y/rookandroll/internal/movelist"
	"github.com/georgib0y/rookandroll/internal/position"
	. "github.com/georgib0y/rookandroll/internal/types"
)

// legalMoves generates and fully filters the legal moves of a
// position the way the search does
func legalMoves(p *position.Position) []Move {
	ml := &movelist.StackMoveList{}
	GenerateMoves(p, ml, InCheck(p))
	var legal []Move
	pm := position.NewPrevMoves()
	for m := ml.Next(); m != NullMove; m = ml.Next() {
		child := p.CopyMake(m)
		if !IsLegalMove(child, m, pm) || MovedIntoCheck(child, m) {
			continue
		}
		legal = append(legal, m)
	}
	return legal
}

func TestStartPositionMoves(t *testing.T) {
	p := position.NewPosition()
	assert.Equal(t, 20, len(legalMoves(p)))
}

func TestKiwipeteMoves(t *testing.T) {
	p := position.NewPosition("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq -")
	assert.Equal(t, 48, len(legalMoves(p)))
}

func TestInCheck(t *testing.T) {
	assert.False(t, InCheck(position.NewPosition()))
	// scholar style check
	p := position.NewPosition("rnbqkbnr/ppppp1pp/8/5p1Q/8/4P3/PPPP1PPP/RNB1KBNR b KQkq - 0 1")
	assert.True(t, InCheck(p))
}

func TestSquareAttacked(t *testing.T) {
	p := position.NewPosition()
	assert.True(t, SquareAttacked(p, SqF3, White))  // Ng1 and e2/g2 pawns
	assert.True(t, SquareAttacked(p, SqE3, White))  // d2/f2 pawns
	assert.False(t, SquareAttacked(p, SqE4, White))
	assert.True(t, SquareAttacked(p, SqF6, Black))
	assert.False(t, SquareAttacked(p, SqE5, White))
}

func TestAttackersTo(t *testing.T) {
	p := position.NewPosition("1k1r4/1pp4p/p7/4p3/8/P5P1/1PP4P/2K1R3 w - -")
	// only the white rook on e1 attacks the pawn on e5
	assert.Equal(t, SqE1.Bb(), AllAttackersTo(p, SqE5))

	p2 := position.NewPosition("1k1r3q/1ppn3p/p4b2/4p3/8/P2N2P1/1PP1R1BP/2K1Q3 w - -")
	attackers := AttackersTo(p2, SqE5, Black)
	assert.True(t, attackers.Has(SqD7)) // knight
	assert.True(t, attackers.Has(SqF6)) // bishop
	assert.False(t, attackers.Has(SqH8)) // queen is blocked by the bishop
}

func TestDoubleCheckOnlyKingMoves(t *testing.T) {
	// knight f6 and rook e1 both give check to the king on e8
	p := position.NewPosition("4k3/8/5N2/8/8/8/8/4R1K1 b - - 0 1")
	assert.True(t, InCheck(p))
	for _, m := range legalMoves(p) {
		assert.Equal(t, BlackKing, m.Piece(), m.String())
	}
}

func TestEvasionsSingleCheck(t *testing.T) {
	// rook e1 checks the king on e8: the bishop blocks on e7,
	// capture is not possible, king steps aside
	p := position.NewPosition("3rkb2/8/8/8/8/8/8/4R1K1 b - - 0 1")
	assert.True(t, InCheck(p))
	moves := legalMoves(p)

	var blocks, kingMoves int
	for _, m := range moves {
		if m.Piece() == BlackKing {
			kingMoves++
		} else {
			blocks++
			// every block must land between king and rook
			assert.True(t, Intermediate(SqE8, SqE1).Has(m.To()), m.String())
		}
	}
	assert.Greater(t, blocks, 0)
	assert.Greater(t, kingMoves, 0)
}

func TestEvasionKingMayNotStayOnRay(t *testing.T) {
	// king must not step backwards along the checking ray
	p := position.NewPosition("4k3/8/8/8/8/8/8/4R1K1 b - - 0 1")
	for _, m := range legalMoves(p) {
		assert.NotEqual(t, SqE7, m.To(), m.String())
	}
}

func TestPinnedPieceMayNotMove(t *testing.T) {
	// knight d7 is pinned by the rook d1 against the king d8
	p := position.NewPosition("3k4/3n4/8/8/8/8/8/3RK3 b - - 0 1")
	for _, m := range legalMoves(p) {
		assert.NotEqual(t, BlackKnight, m.Piece(), m.String())
	}
}

func TestCastleThroughCheckRejected(t *testing.T) {
	// rook f8 attacks f1 - white may not castle king side but may
	// castle queen side
	p := position.NewPosition("4kr2/8/8/8/8/8/8/R3K2R w KQ - 0 1")
	var hasKingSide, hasQueenSide bool
	for _, m := range legalMoves(p) {
		switch m.MoveType() {
		case WKingSide:
			hasKingSide = true
		case WQueenSide:
			hasQueenSide = true
		}
	}
	assert.False(t, hasKingSide)
	assert.True(t, hasQueenSide)
}

func TestCastleBlockedNotGenerated(t *testing.T) {
	p := position.NewPosition("4k3/8/8/8/8/8/8/R2QK2R w KQ - 0 1")
	for _, m := range legalMoves(p) {
		assert.NotEqual(t, WQueenSide, m.MoveType(), m.String())
	}
}

func TestEnPassantDiscoveredCheckRejected(t *testing.T) {
	// capturing en passant would remove both pawns from the fifth
	// rank and expose the king to the rook - the classic perft trap
	p := position.NewPosition("8/8/8/KPp4r/8/8/8/7k w - c6 0 1")
	for _, m := range legalMoves(p) {
		assert.NotEqual(t, Ep, m.MoveType(), m.String())
	}
}

func TestEnPassantDiscoveredDiagonalRejected(t *testing.T) {
	// the captured pawn shields the king from the bishop on a8 -
	// only the vacated captured square lies on the king's ray
	p := position.NewPosition("4k3/b7/8/2pP4/8/8/8/6K1 w - c6 0 1")
	for _, m := range legalMoves(p) {
		assert.NotEqual(t, Ep, m.MoveType(), m.String())
	}
}

func TestThreeFoldRejectedByLegalGate(t *testing.T) {
	p := position.NewPosition()
	m := NewMove(SqG1, SqF3, WhiteKnight, 0, Quiet)
	child := p.CopyMake(m)

	pm := position.NewPrevMoves()
	assert.True(t, IsLegalMove(child, m, pm))

	// the child position occurred twice before - reaching it a third
	// time is rejected
	pm.Add(child.Hash())
	pm.Add(child.Hash())
	assert.False(t, IsLegalMove(child, m, pm))
}

func TestFiftyMoveRejectedByLegalGate(t *testing.T) {
	p := position.NewPosition("4k3/8/8/8/8/8/8/4K2R w - - 100 1")
	m := NewMove(SqH1, SqH2, WhiteRook, 0, Quiet)
	child := p.CopyMake(m)
	assert.False(t, IsLegalMove(child, m, position.NewPrevMoves()))
}

func TestMoveFromUci(t *testing.T) {
	p := position.NewPosition()
	m := MoveFromUci(p, "e2e4")
	assert.NotEqual(t, NullMove, m)
	assert.Equal(t, Double, m.MoveType())
	assert.Equal(t, NullMove, MoveFromUci(p, "e2e5"))
	assert.Equal(t, NullMove, MoveFromUci(p, "xyz"))

	promoPos := position.NewPosition("4k3/P7/8/8/8/8/8/4K3 w - - 0 1")
	promo := MoveFromUci(promoPos, "a7a8q")
	assert.Equal(t, Promo, promo.MoveType())
	assert.Equal(t, WhiteQueen, promo.XPiece())
}
