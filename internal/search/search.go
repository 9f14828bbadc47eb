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

// Package search implements the search of the engine: a principal
// variation searcher with quiescence (searcher.go), the iterative
// deepening driver and an optional lazy SMP wrapper sharing a
// transposition table between several searcher threads.
package search

import (
	"context"
	"fmt"
	"time"

	"github.com/op/go-logging"
	"golang.org/x/sync/semaphore"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/georgib0y/rookandroll/internal/config"
	myLogging "github.com/georgib0y/rookandroll/internal/logging"
	"github.com/georgib0y/rookandroll/internal/movegen"
	"github.com/georgib0y/rookandroll/internal/position"
	"github.com/georgib0y/rookandroll/internal/transpositiontable"
	. "github.com/georgib0y/rookandroll/internal/types"
	"github.com/georgib0y/rookandroll/internal/util"
)

var out = message.NewPrinter(language.English)

// InfoSender is implemented by the protocol front end to receive
// search progress and the final result. When no sender is set the
// search logs the lines instead.
type InfoSender interface {
	// SendInfoLine sends one "info ..." line per completed depth
	SendInfoLine(line string)
	// SendResult sends the final best move
	SendResult(best Move)
}

// Search represents a search session. It owns the transposition
// table and the previous move table which both persist across
// searches within a game.
//
// Create a new instance with NewSearch().
type Search struct {
	log  *logging.Logger
	slog *logging.Logger

	infoSender InfoSender

	tt        transpositiontable.Table
	sharedTt  *transpositiontable.SharedTtTable
	prevMoves *position.PrevMoves

	abort      *util.Bool
	isRunning  *semaphore.Weighted
	initDone   *semaphore.Weighted
	hasResult  bool
	lastResult Result
}

// NewSearch creates a new search session with fresh tables
func NewSearch() *Search {
	config.Setup()
	return &Search{
		log:       myLogging.GetLog(),
		slog:      myLogging.GetSearchLog(),
		tt:        transpositiontable.NewTtTable(config.Settings.Search.TtSizeBits),
		prevMoves: position.NewPrevMoves(),
		abort:     util.NewBool(false),
		isRunning: semaphore.NewWeighted(1),
		initDone:  semaphore.NewWeighted(1),
	}
}

// SetInfoSender sets the protocol callback for search output
func (s *Search) SetInfoSender(is InfoSender) {
	s.infoSender = is
}

// PrevMoves returns the game history table of this session. The
// protocol front end feeds it when replaying game moves.
func (s *Search) PrevMoves() *position.PrevMoves {
	return s.prevMoves
}

// NewGame resets all state kept between searches (transposition
// table, game history)
func (s *Search) NewGame() {
	s.StopSearch()
	s.tt.Clear()
	if s.sharedTt != nil {
		s.sharedTt.Clear()
	}
	s.prevMoves = position.NewPrevMoves()
}

// StartSearch starts the search on the given position with the
// given limits in a separate goroutine. Search can be stopped with
// StopSearch(), status can be checked with IsSearching().
// This takes a copy of the position and the limits.
func (s *Search) StartSearch(p position.Position, sl Limits) {
	_ = s.initDone.Acquire(context.TODO(), 1)
	go s.run(&p, &sl)
	// wait until the search is running before returning
	_ = s.initDone.Acquire(context.TODO(), 1)
	s.initDone.Release(1)
}

// StopSearch stops a running search as quickly as possible. The
// search stops gracefully and a result will be sent. Blocks until
// the search has stopped.
func (s *Search) StopSearch() {
	s.abort.Store(true)
	s.WaitWhileSearching()
}

// IsSearching checks if a search is currently running
func (s *Search) IsSearching() bool {
	if !s.isRunning.TryAcquire(1) {
		return true
	}
	s.isRunning.Release(1)
	return false
}

// WaitWhileSearching blocks until a running search has stopped
func (s *Search) WaitWhileSearching() {
	_ = s.isRunning.Acquire(context.TODO(), 1)
	s.isRunning.Release(1)
}

// LastResult returns a copy of the last search result
func (s *Search) LastResult() Result {
	return s.lastResult
}

// HasResult returns true when a search has completed before
func (s *Search) HasResult() bool {
	return s.hasResult
}

// run is called by StartSearch() in a separate goroutine
func (s *Search) run(p *position.Position, sl *Limits) {
	if !s.isRunning.TryAcquire(1) {
		s.log.Error("Search already running")
		s.initDone.Release(1)
		return
	}
	defer s.isRunning.Release(1)

	s.abort.Store(false)

	threads := sl.Threads
	if threads <= 0 {
		threads = config.Settings.Search.Threads
	}

	s.log.Infof("Searching: %s", p.StringFen())
	s.initDone.Release(1)

	var result Result
	if threads >= 2 {
		result = s.lazySmp(p, sl, threads)
	} else {
		result = s.iterativeDeepening(p, sl)
	}

	s.lastResult = result
	s.hasResult = true

	s.log.Info(out.Sprintf("Search finished after %d ms with %d nodes (%d nps)",
		result.SearchTime.Milliseconds(), result.Nodes,
		util.Nps(result.Nodes, result.SearchTime+time.Millisecond)))
	s.log.Infof("Search result: %s", result.String())
	if s.infoSender != nil {
		s.infoSender.SendResult(result.BestMove)
	}
}

// iterativeDeepening runs the single threaded driver: search depth
// by depth under the time budget, discarding any depth which was
// aborted mid-search and returning the deepest completed result.
func (s *Search) iterativeDeepening(p *position.Position, sl *Limits) Result {
	start := time.Now()
	timeLimit := sl.timeBudget(int(p.Ctm()))

	maxDepth := MaxDepth
	if sl.Depth > 0 && sl.Depth < MaxDepth {
		maxDepth = sl.Depth
	}

	searcher := NewSearcher(s.tt, s.prevMoves, s.abort, start, timeLimit)

	result := Result{BestMove: NullMove, BestValue: MinScore}

	for depth := 1; depth <= maxDepth; depth++ {
		if time.Since(start) > timeLimit {
			break
		}

		score, best := searcher.RootPvs(p, MinScore, MaxScore, depth)
		result.Nodes += searcher.Nodes()

		if searcher.Aborted() {
			// no partial results from an aborted depth
			break
		}

		if best == NullMove {
			// no legal move - mate or stalemate
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
		result.Pv = collectPv(s.tt, p, depth)
		s.sendDepthInfo(&result, searcher.Nodes(), time.Since(start))
	}

	result.SearchTime = time.Since(start)
	return result
}

// collectPv walks the chain of PV entries in the transposition
// table from the root position
func collectPv(tt transpositiontable.Table, p *position.Position, depth int) []Move {
	pv := make([]Move, 0, depth)
	pos := p
	for i := 0; i < depth; i++ {
		m := tt.GetPv(pos.Hash())
		if m == NullMove {
			break
		}
		pv = append(pv, m)
		pos = pos.CopyMake(m)
	}
	return pv
}

// sendDepthInfo emits one info line for a completed depth
func (s *Search) sendDepthInfo(r *Result, nodes uint64, elapsed time.Duration) {
	line := fmt.Sprintf("info depth %d score %s nodes %d nps %d time %d pv %s",
		r.Depth, r.BestValue.String(), nodes,
		util.Nps(nodes, elapsed+time.Millisecond), elapsed.Milliseconds(),
		PvString(r.Pv))
	if s.infoSender != nil {
		s.infoSender.SendInfoLine(line)
	} else {
		s.slog.Info(line)
	}
}
