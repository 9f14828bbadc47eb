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

package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMoveEncoding(t *testing.T) {
	m := NewMove(SqE2, SqE4, WhitePawn, 0, Double)
	assert.Equal(t, SqE2, m.From())
	assert.Equal(t, SqE4, m.To())
	assert.Equal(t, WhitePawn, m.Piece())
	assert.Equal(t, Double, m.MoveType())
	assert.Equal(t, "e2e4", m.StringUci())

	cap := NewMove(SqD3, SqE5, WhiteKnight, BlackPawn, Cap)
	assert.Equal(t, BlackPawn, cap.XPiece())
	assert.Equal(t, "d3e5", cap.StringUci())
}

func TestMoveNull(t *testing.T) {
	assert.Equal(t, Move(0), NullMove)
	assert.Equal(t, "0000", NullMove.StringUci())
}

func TestMovePromoStrings(t *testing.T) {
	promo := NewMove(SqE7, SqE8, WhitePawn, WhiteQueen, Promo)
	assert.Equal(t, "e7e8q", promo.StringUci())

	promoN := NewMove(SqA2, SqA1, BlackPawn, BlackKnight, Promo)
	assert.Equal(t, "a2a1n", promoN.StringUci())

	promoCap := NewMove(SqE7, SqD8, WhitePawn, BlackRook, QPromoCap)
	assert.Equal(t, "e7d8q", promoCap.StringUci())
}

func TestMoveTypePredicates(t *testing.T) {
	assert.True(t, Cap.IsCap())
	assert.True(t, Ep.IsCap())
	assert.True(t, QPromoCap.IsCap())
	assert.False(t, Quiet.IsCap())
	assert.False(t, Promo.IsCap())

	assert.True(t, Promo.IsPromo())
	assert.True(t, NPromoCap.IsPromo())
	assert.False(t, Cap.IsPromo())

	assert.True(t, WKingSide.IsCastle())
	assert.True(t, BQueenSide.IsCastle())
	assert.False(t, Double.IsCastle())
}

func TestPromoCapPiece(t *testing.T) {
	assert.Equal(t, WhiteQueen, QPromoCap.PromoCapPiece(White))
	assert.Equal(t, BlackKnight, NPromoCap.PromoCapPiece(Black))
	assert.Equal(t, WhiteRook, RPromoCap.PromoCapPiece(White))
	assert.Equal(t, BlackBishop, BPromoCap.PromoCapPiece(Black))
}

func TestKingQueenSide(t *testing.T) {
	assert.Equal(t, WKingSide, KingSide(White))
	assert.Equal(t, BKingSide, KingSide(Black))
	assert.Equal(t, WQueenSide, QueenSide(White))
	assert.Equal(t, BQueenSide, QueenSide(Black))
}
