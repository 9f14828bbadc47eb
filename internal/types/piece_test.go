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

func TestPieceCodes(t *testing.T) {
	assert.Equal(t, White, WhiteRook.ColorOf())
	assert.Equal(t, Black, BlackRook.ColorOf())
	assert.Equal(t, Knight, BlackKnight.BaseOf())
	assert.Equal(t, WhiteQueen, MakePiece(White, Queen))
	assert.Equal(t, BlackQueen, MakePiece(Black, Queen))
}

func TestPieceValues(t *testing.T) {
	assert.Equal(t, Value(100), WhitePawn.ValueOf())
	assert.Equal(t, Value(325), BlackKnight.ValueOf())
	assert.Equal(t, Value(325), WhiteBishop.ValueOf())
	assert.Equal(t, Value(500), BlackRook.ValueOf())
	assert.Equal(t, Value(1000), WhiteQueen.ValueOf())
	assert.Equal(t, Value(20000), BlackKing.ValueOf())
	assert.Equal(t, Value(0), PieceNone.ValueOf())
}

func TestPieceFromChar(t *testing.T) {
	assert.Equal(t, WhitePawn, PieceFromChar("P"))
	assert.Equal(t, BlackQueen, PieceFromChar("q"))
	assert.Equal(t, PieceNone, PieceFromChar("x"))
	assert.Equal(t, PieceNone, PieceFromChar(""))
}

func TestMaterialSigns(t *testing.T) {
	assert.Equal(t, Value(100), MaterialValue(WhitePawn))
	assert.Equal(t, Value(-100), MaterialValue(BlackPawn))
	assert.Equal(t, Value(1000), MaterialValue(WhiteQueen))
	assert.Equal(t, Value(-1000), MaterialValue(BlackQueen))
}

func TestPosValueMirror(t *testing.T) {
	// the positional value of a black piece is the negated value of
	// the white piece on the vertically mirrored square
	for pc := WhitePawn; pc < PieceNone; pc += 2 {
		for sq := SqA1; sq < SqNone; sq++ {
			mirror := sq ^ 56
			assert.Equal(t, PosMidValue(pc, sq), -PosMidValue(pc+1, mirror),
				"piece %s sq %s", pc.String(), sq.String())
			assert.Equal(t, PosEndValue(pc, sq), -PosEndValue(pc+1, mirror))
		}
	}
}

func TestValueString(t *testing.T) {
	assert.Equal(t, "cp 23", Value(23).String())
	assert.Equal(t, "cp -150", Value(-150).String())
	assert.Equal(t, "mate 1", (Mated - 1).String())
	assert.Equal(t, "mate 2", (Mated - 3).String())
	assert.Equal(t, "mate -1", (Checkmate + 2).String())
}
