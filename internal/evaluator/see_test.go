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
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/georgib0y/rookandroll/internal/position"
	. "github.com/georgib0y/rookandroll/internal/types"
)

func TestSeeWinningCapture(t *testing.T) {
	// rook takes the pawn on e5, the rook is defended enough - wins
	// exactly a pawn
	p := position.NewPosition("1k1r4/1pp4p/p7/4p3/8/P5P1/1PP4P/2K1R3 w - -")
	m := NewMove(SqE1, SqE5, WhiteRook, BlackPawn, Cap)
	assert.Equal(t, Value(100), See(p, m))
}

func TestSeeLosingCapture(t *testing.T) {
	// knight takes the pawn on e5 but the exchange loses material
	p := position.NewPosition("1k1r3q/1ppn3p/p4b2/4p3/8/P2N2P1/1PP1R1BP/2K1Q3 w - -")
	m := NewMove(SqD3, SqE5, WhiteKnight, BlackPawn, Cap)
	assert.Equal(t, Value(-225), See(p, m))
}

func TestSeeUndefendedCapture(t *testing.T) {
	p := position.NewPosition("4k3/8/8/3p4/8/8/8/3RK3 w - - 0 1")
	m := NewMove(SqD1, SqD5, WhiteRook, BlackPawn, Cap)
	assert.Equal(t, Value(100), See(p, m))
}

func TestSeeDefendedByPawn(t *testing.T) {
	// queen takes a pawn defended by a pawn - loses the queen for
	// a pawn
	p := position.NewPosition("4k3/4p3/3p4/8/8/8/3Q4/4K3 w - - 0 1")
	m := NewMove(SqD2, SqD6, WhiteQueen, BlackPawn, Cap)
	assert.Equal(t, Value(100-1000), See(p, m))
}

func TestSeeSimpleRecapture(t *testing.T) {
	p := position.NewPosition("3rk3/8/8/3p4/8/8/8/3RK3 w - - 0 1")
	m := NewMove(SqD1, SqD5, WhiteRook, BlackPawn, Cap)
	// RxP, RxR - white wins a pawn but loses the rook
	assert.Equal(t, Value(100-500), See(p, m))
}

func TestSeeXrayRecapture(t *testing.T) {
	// the front rook captures, the back rook recaptures through the
	// vacated square (xray)
	p := position.NewPosition("3rk3/8/8/3p4/8/8/3R4/3RK3 w - - 0 1")
	m := NewMove(SqD2, SqD5, WhiteRook, BlackPawn, Cap)
	// RxP, RxR, RxR - white wins a pawn and trades a rook
	assert.Equal(t, Value(100), See(p, m))
}
