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

package position

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFenRoundTrip(t *testing.T) {
	fens := []string{
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0",
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0",
		"rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0",
		"4k3/8/8/8/8/8/8/4K3 b - - 42",
	}
	for _, fen := range fens {
		p, err := NewPositionFen(fen)
		assert.NoError(t, err, fen)
		assert.Equal(t, fen, p.StringFen(), fen)
	}
}

func TestFenFullMoveIgnored(t *testing.T) {
	p1, err1 := NewPositionFen("4k3/8/8/8/8/8/8/4K3 w - - 0 1")
	p2, err2 := NewPositionFen("4k3/8/8/8/8/8/8/4K3 w - - 0 33")
	assert.NoError(t, err1)
	assert.NoError(t, err2)
	assert.Equal(t, p1.Hash(), p2.Hash())
}

func TestInvalidFens(t *testing.T) {
	invalid := []string{
		"",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP",              // missing rank
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNX w",   // bad piece
		"9/8/8/8/8/8/8/8 w - - 0 1",                       // bad digit
		"8/8/8/8/8/8/8/8 w - - 0 1",                       // no kings
		"4k3/8/8/8/8/8/8/4K3 x - - 0 1",                   // bad color
		"4k3/8/8/8/8/8/8/4K3 w KQxq - 0 1",                // bad castle rights
		"4k3/8/8/8/8/8/8/4K3 w - e5 0 1",                  // bad ep square
		"4k3/8/8/8/8/8/8/4K3 w - - x 1",                   // bad halfmove
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RRNBQKBNR w",  // too many files
	}
	for _, fen := range invalid {
		_, err := NewPositionFen(fen)
		assert.Error(t, err, fen)
	}
}
