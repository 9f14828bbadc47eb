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
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/georgib0y/rookandroll/internal/config"
	"github.com/georgib0y/rookandroll/internal/movegen"
	"github.com/georgib0y/rookandroll/internal/position"
	"github.com/georgib0y/rookandroll/internal/transpositiontable"
	. "github.com/georgib0y/rookandroll/internal/types"
)

// lazySmp runs the iterative deepening loop with numThreads
// searchers sharing one transposition table. At each depth the
// helpers search the same root with a full window - their only
// purpose is to populate the shared table so the main thread's next
// depth benefits from deeper cached lines. The main thread's
// completed result is authoritative; helper interleaving makes the
// parallel search non-deterministic.
func (s *Search) lazySmp(p *position.Position, sl *Limits, numThreads int) Result {
	start := time.Now()
	timeLimit := sl.timeBudget(int(p.Ctm()))

	maxDepth := MaxDepth
	if sl.Depth > 0 && sl.Depth < MaxDepth {
		maxDepth = sl.Depth
	}

	if s.sharedTt == nil {
		s.sharedTt = transpositiontable.NewSharedTtTable(config.Settings.Search.SharedTtSizeBits)
	}

	mainSearcher := NewSearcher(s.sharedTt, s.prevMoves, s.abort, start, timeLimit)

	result := Result{BestMove: NullMove, BestValue: MinScore}
	var helperNodes atomic.Uint64

	for depth := 1; depth <= maxDepth; depth++ {
		if time.Since(start) > timeLimit {
			break
		}

		g := new(errgroup.Group)
		for i := 0; i < numThreads-1; i++ {
			g.Go(func() error {
				// helpers work on their own copy of the game
				// history and their own heuristics
				helper := NewSearcher(s.sharedTt, s.prevMoves.Clone(), s.abort, start, timeLimit)
				helper.RootPvs(p, MinScore, MaxScore, depth)
				helperNodes.Add(helper.Nodes())
				return nil
			})
		}

		score, best := mainSearcher.RootPvs(p, MinScore, MaxScore, depth)
		_ = g.Wait()
		result.Nodes += mainSearcher.Nodes()

		if mainSearcher.Aborted() {
			break
		}

		if best == NullMove {
			result.BestValue = Stalemate
			if movegen.InCheck(p) {
				result.BestValue = Checkmate
			}
			result.Depth = depth
			break
		}

		result.BestMove = best
		result.BestValue = score
		result.Depth = depth
		result.Pv = collectPv(s.sharedTt, p, depth)
		s.sendDepthInfo(&result, mainSearcher.Nodes(), time.Since(start))
	}

	result.Nodes += helperNodes.Load()
	result.SearchTime = time.Since(start)
	return result
}
