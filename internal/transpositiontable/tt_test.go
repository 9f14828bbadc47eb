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

package transpositiontable

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/georgib0y/rookandroll/internal/position"
	. "github.com/georgib0y/rookandroll/internal/types"
)

func TestInsertAndGetScorePV(t *testing.T) {
	tt := NewTtTable(10)
	hash := position.Key(0xABCDEF)
	m := NewMove(SqE2, SqE4, WhitePawn, 0, Double)

	tt.Insert(hash, PVScore(42), m, 5, 0)

	// PV entries are usable regardless of the window
	score, ok := tt.GetScore(hash, 5, 0, -100, 100)
	assert.True(t, ok)
	assert.Equal(t, Value(42), score)

	// not usable for a deeper draft
	_, ok = tt.GetScore(hash, 6, 0, -100, 100)
	assert.False(t, ok)

	// shallower draft requests are fine
	score, ok = tt.GetScore(hash, 3, 0, -100, 100)
	assert.True(t, ok)
	assert.Equal(t, Value(42), score)

	assert.Equal(t, m, tt.GetBest(hash))
	assert.Equal(t, m, tt.GetPv(hash))
}

func TestGetScoreBounds(t *testing.T) {
	tt := NewTtTable(10)
	hash := position.Key(123456)

	// alpha entry: usable only when score <= alpha, returns alpha
	tt.Insert(hash, AlphaScore(10), NullMove, 4, 0)
	score, ok := tt.GetScore(hash, 4, 0, 20, 100)
	assert.True(t, ok)
	assert.Equal(t, Value(20), score)
	_, ok = tt.GetScore(hash, 4, 0, 5, 100)
	assert.False(t, ok)

	// beta entry: usable only when score >= beta, returns beta
	tt.Clear()
	tt.Insert(hash, BetaScore(50), NullMove, 4, 0)
	score, ok = tt.GetScore(hash, 4, 0, 0, 30)
	assert.True(t, ok)
	assert.Equal(t, Value(30), score)
	_, ok = tt.GetScore(hash, 4, 0, 0, 80)
	assert.False(t, ok)
}

func TestGetScoreMiss(t *testing.T) {
	tt := NewTtTable(10)
	tt.Insert(position.Key(1), PVScore(1), NullMove, 1, 0)
	// same bucket, different hash must miss
	other := position.Key(1 + (1 << 10))
	_, ok := tt.GetScore(other, 0, 0, -10, 10)
	assert.False(t, ok)
	assert.Equal(t, NullMove, tt.GetBest(other))
}

func TestPvPreservingReplacement(t *testing.T) {
	tt := NewTtTable(10)
	hash := position.Key(777)
	pvMove := NewMove(SqE2, SqE4, WhitePawn, 0, Double)
	otherMove := NewMove(SqD2, SqD4, WhitePawn, 0, Double)

	tt.Insert(hash, PVScore(10), pvMove, 5, 0)
	// a bound entry for the same slot must not demote the PV entry
	tt.Insert(hash, AlphaScore(-5), otherMove, 8, 0)
	assert.Equal(t, pvMove, tt.GetPv(hash))
	score, ok := tt.GetScore(hash, 5, 0, -100, 100)
	assert.True(t, ok)
	assert.Equal(t, Value(10), score)

	// an incoming PV entry always replaces
	tt.Insert(hash, PVScore(99), otherMove, 2, 0)
	assert.Equal(t, otherMove, tt.GetPv(hash))
}

func TestGetPvOnlyForPvEntries(t *testing.T) {
	tt := NewTtTable(10)
	hash := position.Key(31415)
	m := NewMove(SqG1, SqF3, WhiteKnight, 0, Quiet)
	tt.Insert(hash, BetaScore(5), m, 3, 0)
	assert.Equal(t, m, tt.GetBest(hash))
	assert.Equal(t, NullMove, tt.GetPv(hash))
}

func TestMateScoreAdjustment(t *testing.T) {
	tt := NewTtTable(10)
	hash := position.Key(5555)

	// mate found 3 plies below a node at ply 4
	mate := Mated - 7
	tt.Insert(hash, PVScore(mate), NullMove, 2, 4)

	// retrieving at the same ply returns the same score
	score, ok := tt.GetScore(hash, 2, 4, MinScore, MaxScore)
	assert.True(t, ok)
	assert.Equal(t, mate, score)

	// retrieving at a different ply shifts the mate distance
	score, ok = tt.GetScore(hash, 2, 6, MinScore, MaxScore)
	assert.True(t, ok)
	assert.Equal(t, mate-2, score)
}

func TestClear(t *testing.T) {
	tt := NewTtTable(10)
	hash := position.Key(99)
	tt.Insert(hash, PVScore(1), NullMove, 1, 0)
	assert.Equal(t, 1, tt.Len())
	tt.Clear()
	assert.Equal(t, 0, tt.Len())
	_, ok := tt.GetScore(hash, 0, 0, -10, 10)
	assert.False(t, ok)
}

func TestSharedTableBehavesLikeSingle(t *testing.T) {
	tt := NewSharedTtTable(10)
	hash := position.Key(0xFEED)
	m := NewMove(SqE2, SqE4, WhitePawn, 0, Double)
	tt.Insert(hash, PVScore(33), m, 4, 0)
	score, ok := tt.GetScore(hash, 4, 0, -100, 100)
	assert.True(t, ok)
	assert.Equal(t, Value(33), score)
	assert.Equal(t, m, tt.GetBest(hash))
	tt.Clear()
	_, ok = tt.GetScore(hash, 4, 0, -100, 100)
	assert.False(t, ok)
}

func TestSharedTableConcurrentAccess(t *testing.T) {
	tt := NewSharedTtTable(8)
	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(seed int) {
			defer wg.Done()
			for i := 0; i < 10_000; i++ {
				hash := position.Key(seed*100_000 + i)
				tt.Insert(hash, PVScore(Value(i)), NullMove, 1, 0)
				if score, ok := tt.GetScore(hash, 1, 0, MinScore, MaxScore); ok {
					// a hit must return a score some writer stored
					if score < 0 || score >= 10_000 {
						t.Errorf("torn read: %d", score)
						return
					}
				}
			}
		}(g)
	}
	wg.Wait()
}
