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

package search

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/georgib0y/rookandroll/internal/movegen"
	"github.com/georgib0y/rookandroll/internal/position"
	. "github.com/georgib0y/rookandroll/internal/types"
)

func searchPosition(t *testing.T, fen string, sl *Limits) Result {
	t.Helper()
	p, err := position.NewPositionFen(fen)
	assert.NoError(t, err)
	s := NewSearch()
	s.StartSearch(*p, *sl)
	s.WaitWhileSearching()
	return s.LastResult()
}

func TestSearchFindsMateInOne(t *testing.T) {
	sl := NewLimits()
	sl.Depth = 3
	sl.MoveTime = 10 * time.Second
	result := searchPosition(t, "k7/8/1K6/8/8/8/8/7R w - - 0 1", sl)
	assert.Equal(t, "h1h8", result.BestMove.StringUci())
	assert.Equal(t, Mated-1, result.BestValue)
}

func TestSearchFindsMateInTwo(t *testing.T) {
	// KQ vs K: 1.Kg6 Kg8 (forced) 2.Qb8# - no mate in one exists
	sl := NewLimits()
	sl.Depth = 4
	sl.MoveTime = 30 * time.Second
	result := searchPosition(t, "7k/8/5K2/8/8/8/8/1Q6 w - - 0 1", sl)
	assert.True(t, result.BestValue.IsCheckMateValue())
	assert.Equal(t, Mated-3, result.BestValue)
}

func TestSearchOnMatedPosition(t *testing.T) {
	// black is check mated - no legal moves
	sl := NewLimits()
	sl.Depth = 2
	sl.MoveTime = 10 * time.Second
	result := searchPosition(t, "R6k/6pp/8/8/8/8/8/6K1 b - - 0 1", sl)
	assert.Equal(t, NullMove, result.BestMove)
	assert.Equal(t, Checkmate, result.BestValue)
}

func TestSearchOnStalematePosition(t *testing.T) {
	sl := NewLimits()
	sl.Depth = 2
	sl.MoveTime = 10 * time.Second
	result := searchPosition(t, "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1", sl)
	assert.Equal(t, NullMove, result.BestMove)
	assert.Equal(t, Stalemate, result.BestValue)
}

func TestSearchTakesHangingQueen(t *testing.T) {
	sl := NewLimits()
	sl.Depth = 4
	sl.MoveTime = 30 * time.Second
	result := searchPosition(t, "4k3/8/8/3q4/4P3/8/8/4K3 w - - 0 1", sl)
	assert.Equal(t, "e4d5", result.BestMove.StringUci())
}

func TestSearchEmitsInfoPerDepth(t *testing.T) {
	collector := &infoCollector{}
	p := position.NewPosition()
	s := NewSearch()
	s.SetInfoSender(collector)

	sl := NewLimits()
	sl.Depth = 4
	sl.MoveTime = 30 * time.Second
	s.StartSearch(*p, *sl)
	s.WaitWhileSearching()

	assert.Equal(t, 4, len(collector.infos))
	assert.NotEqual(t, NullMove, collector.best)
	for _, line := range collector.infos {
		assert.Contains(t, line, "depth ")
		assert.Contains(t, line, "score cp ")
		assert.Contains(t, line, "nps ")
		assert.Contains(t, line, "pv ")
	}
}

type infoCollector struct {
	infos []string
	best  Move
}

func (c *infoCollector) SendInfoLine(line string) { c.infos = append(c.infos, line) }
func (c *infoCollector) SendResult(best Move)     { c.best = best }

func TestSearchRespectsTimeBudget(t *testing.T) {
	sl := NewLimits()
	sl.MoveTime = 150 * time.Millisecond

	p := position.NewPosition()
	s := NewSearch()
	start := time.Now()
	s.StartSearch(*p, *sl)
	s.WaitWhileSearching()
	elapsed := time.Since(start)

	// cooperative abort latency is bounded
	assert.Less(t, elapsed, 2*time.Second)
	assert.NotEqual(t, NullMove, s.LastResult().BestMove)
}

func TestStopSearch(t *testing.T) {
	sl := NewLimits()
	sl.Infinite = true

	p := position.NewPosition()
	s := NewSearch()
	s.StartSearch(*p, *sl)
	time.Sleep(200 * time.Millisecond)
	s.StopSearch()
	assert.False(t, s.IsSearching())
	assert.NotEqual(t, NullMove, s.LastResult().BestMove)
}

func TestLazySmpFindsSameMateScore(t *testing.T) {
	sl := NewLimits()
	sl.Depth = 3
	sl.MoveTime = 30 * time.Second
	sl.Threads = 4
	result := searchPosition(t, "k7/8/1K6/8/8/8/8/7R w - - 0 1", sl)
	assert.Equal(t, "h1h8", result.BestMove.StringUci())
	assert.Equal(t, Mated-1, result.BestValue)
}

func TestThreeFoldAvoidedWhenWinning(t *testing.T) {
	// a queen up, the search must not walk into a position counted
	// twice before (three fold would be a draw)
	p := position.NewPosition("3k4/8/8/8/8/8/4Q3/4K3 w - - 0 1")
	s := NewSearch()

	// pretend the position after Qe2-e5 occurred twice already
	child := p.CopyMake(NewMove(SqE2, SqE5, WhiteQueen, 0, Quiet))
	s.PrevMoves().Add(child.Hash())
	s.PrevMoves().Add(child.Hash())

	sl := NewLimits()
	sl.Depth = 3
	sl.MoveTime = 30 * time.Second
	s.StartSearch(*p, *sl)
	s.WaitWhileSearching()

	assert.NotEqual(t, "e2e5", s.LastResult().BestMove.StringUci())
}

func TestSearcherRootDirectly(t *testing.T) {
	p := position.NewPosition()
	tt := newTestTable()
	searcher := NewSearcher(tt, position.NewPrevMoves(), newAbort(), time.Now(), time.Minute)

	score, best := searcher.RootPvs(p, MinScore, MaxScore, 3)
	assert.NotEqual(t, NullMove, best)
	assert.False(t, searcher.Aborted())
	assert.False(t, score.IsCheckMateValue())
	assert.Greater(t, searcher.Nodes(), uint64(0))

	// the root move must be one of the legal moves
	found := false
	for _, m := range legalRootMoves(p) {
		if m == best {
			found = true
		}
	}
	assert.True(t, found)
}

func legalRootMoves(p *position.Position) []Move {
	ml := movegenAll(p)
	var legal []Move
	pm := position.NewPrevMoves()
	for _, m := range ml {
		child := p.CopyMake(m)
		if movegen.IsLegalMove(child, m, pm) && !movegen.MovedIntoCheck(child, m) {
			legal = append(legal, m)
		}
	}
	return legal
}
