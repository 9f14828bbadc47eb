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

	"github.com/georgib0y/rookandroll/internal/position"
)

// published perft values: https://www.chessprogramming.org/Perft_Results

func perftFen(t *testing.T, fen string, depth int, expected uint64) {
	t.Helper()
	p, err := position.NewPositionFen(fen)
	assert.NoError(t, err)
	assert.Equal(t, expected, PerftNodes(p, depth), "fen %s depth %d", fen, depth)
}

func TestPerftInitialPosition(t *testing.T) {
	expected := []uint64{20, 400, 8_902, 197_281, 4_865_609}
	for d, e := range expected {
		perftFen(t, position.StartFen, d+1, e)
	}
}

func TestPerftInitialPositionDeep(t *testing.T) {
	if testing.Short() {
		t.Skip("perft depth 6 in short mode")
	}
	perftFen(t, position.StartFen, 6, 119_060_324)
}

func TestPerftKiwipete(t *testing.T) {
	fen := "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq -"
	expected := []uint64{48, 2_039, 97_862, 4_085_603}
	for d, e := range expected {
		perftFen(t, fen, d+1, e)
	}
}

func TestPerftPosition3(t *testing.T) {
	fen := "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - -"
	expected := []uint64{14, 191, 2_812, 43_238, 674_624, 11_030_083}
	for d, e := range expected {
		perftFen(t, fen, d+1, e)
	}
}

func TestPerftPosition4(t *testing.T) {
	fen := "r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1"
	expected := []uint64{6, 264, 9_467, 422_333}
	for d, e := range expected {
		perftFen(t, fen, d+1, e)
	}
}

func TestPerftPosition5(t *testing.T) {
	// talkchess position - catches castle and promotion bugs
	fen := "rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8"
	expected := []uint64{44, 1_486, 62_379, 2_103_487}
	for d, e := range expected {
		perftFen(t, fen, d+1, e)
	}
}
