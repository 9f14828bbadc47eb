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
	"math"
	"time"

	"github.com/georgib0y/rookandroll/internal/evaluator"
	"github.com/georgib0y/rookandroll/internal/history"
	"github.com/georgib0y/rookandroll/internal/movegen"
	"github.com/georgib0y/rookandroll/internal/movelist"
	"github.com/georgib0y/rookandroll/internal/position"
	"github.com/georgib0y/rookandroll/internal/transpositiontable"
	. "github.com/georgib0y/rookandroll/internal/types"
	"github.com/georgib0y/rookandroll/internal/util"
)

const (
	// qSearchMaxPly bounds the quiescence search depth
	qSearchMaxPly = 50

	// abortPollMask - the abort flag and the clock are polled every
	// 4096 nodes
	abortPollMask = 0xFFF

	// move ordering scores
	pvMoveScore  Value = math.MaxInt32
	ttMoveScore  Value = math.MaxInt32 - 1
	killerOffset Value = 10_000
	capScoreMul  Value = 10_000
	deltaMargin  Value = 200
)

// Searcher runs a principal variation search with quiescence on a
// single thread. Killer moves, the history table, the previous move
// table and the principal variation buffers are owned exclusively by
// the searcher; only the transposition table and the abort flag may
// be shared with other searchers.
type Searcher struct {
	tt        transpositiontable.Table
	km        *history.KillerMoves
	hh        *history.HistoryTable
	prevMoves *position.PrevMoves
	abort     *util.Bool

	aborted   bool
	start     time.Time
	timeLimit time.Duration

	rootDepth int
	ply       int
	nodes     uint64

	// principal variation per ply: pv[ply] holds the best line
	// found at this ply so far. The in-check quiescence extension
	// can push a few plies past MaxDepth, hence the margin.
	pv [MaxDepth + 4][]Move
}

// NewSearcher creates a searcher on the given transposition table
// and previous move table. The abort flag may be shared between
// several searchers, the previous move table may not.
func NewSearcher(tt transpositiontable.Table, prevMoves *position.PrevMoves,
	abort *util.Bool, start time.Time, timeLimit time.Duration) *Searcher {
	return &Searcher{
		tt:        tt,
		km:        history.NewKillerMoves(),
		hh:        history.NewHistoryTable(),
		prevMoves: prevMoves,
		abort:     abort,
		start:     start,
		timeLimit: timeLimit,
	}
}

// Nodes returns the number of nodes visited by the last RootPvs call
func (s *Searcher) Nodes() uint64 {
	return s.nodes
}

// Aborted returns true when the last search ran out of time or was
// stopped. Results of an aborted search must be discarded.
func (s *Searcher) Aborted() bool {
	return s.aborted
}

// Pv returns the principal variation collected at the root
func (s *Searcher) Pv() []Move {
	return s.pv[0]
}

// RootPvs searches the position to the given depth with the given
// window and returns the best score and move. NullMove is returned
// when the position has no legal move (mate or stalemate).
func (s *Searcher) RootPvs(p *position.Position, alpha, beta Value, depth int) (Value, Move) {
	s.initSearch(depth)

	ml := movelist.NewScoredMoveList(s.moveScorer(p, depth))
	movegen.GenerateMoves(p, ml, movegen.InCheck(p))

	bestMove := NullMove
	bestScore := MinScore
	ttScore := transpositiontable.AlphaScore(alpha)

	for m := ml.Next(); m != NullMove; m = ml.Next() {
		score, legal := s.tryMove(p, m, alpha, beta, depth)
		if !legal {
			continue
		}

		if score > alpha {
			alpha = score
			bestScore = score
			bestMove = m
			ttScore = transpositiontable.PVScore(alpha)
			s.savePv(m)
		}

		if score >= beta {
			s.storeTT(p.Hash(), transpositiontable.BetaScore(beta), m)
			return beta, m
		}
	}

	s.storeTT(p.Hash(), ttScore, bestMove)
	return bestScore, bestMove
}

// pvs is the interior principal variation search. Moves are searched
// with the full window until one raises alpha, every later move with
// a null window to prove it worse than alpha; a fail inside the
// window triggers a full window re-search.
func (s *Searcher) pvs(p *position.Position, alpha, beta Value, depth int) Value {
	if s.hasAborted() {
		return MinScore
	}

	s.nodes++
	s.pv[s.ply] = s.pv[s.ply][:0]

	if depth == 0 {
		qScore := s.qSearch(p, alpha, beta)
		s.storeTT(p.Hash(), transpositiontable.PVScore(qScore), NullMove)
		return qScore
	}

	if score, ok := s.tt.GetScore(p.Hash(), s.draft(), s.ply, alpha, beta); ok {
		return score
	}

	inCheck := movegen.InCheck(p)

	ml := movelist.NewScoredMoveList(s.moveScorer(p, depth))
	movegen.GenerateMoves(p, ml, inCheck)

	bestMove := NullMove
	ttScore := transpositiontable.AlphaScore(alpha)
	foundPv := false
	hasMoved := false

	for m := ml.Next(); m != NullMove; m = ml.Next() {
		var score Value
		if !foundPv {
			sc, legal := s.tryMove(p, m, alpha, beta, depth)
			if !legal {
				continue
			}
			hasMoved = true
			score = sc
		} else {
			sc, legal := s.tryMove(p, m, alpha, alpha+1, depth)
			if !legal {
				continue
			}
			if sc > alpha && sc < beta {
				// the move is legal at this point, re-search with
				// the full window for an accurate score
				sc, _ = s.tryMove(p, m, alpha, beta, depth)
			}
			score = sc
		}

		if score >= beta {
			s.storeTT(p.Hash(), transpositiontable.BetaScore(beta), m)
			if m.MoveType() == Quiet {
				s.km.Add(m, depth)
				s.hh.Add(p.Ctm(), m.From(), m.To(), depth)
			}
			return beta
		}

		if score > alpha {
			alpha = score
			bestMove = m
			ttScore = transpositiontable.PVScore(alpha)
			foundPv = true
			s.savePv(m)
		}
	}

	if !hasMoved {
		// no legal move - mate or stalemate. Shallower mates score
		// better than deeper ones.
		if inCheck {
			alpha = Checkmate + Value(s.ply)
		} else {
			alpha = Stalemate
		}
		ttScore = transpositiontable.PVScore(alpha)
	}

	s.storeTT(p.Hash(), ttScore, bestMove)
	return alpha
}

// tryMove applies the move via CopyMake and recurses. Returns
// legal=false when the move must be skipped (draw claim, castle
// through check or own king left in check).
func (s *Searcher) tryMove(p *position.Position, m Move, alpha, beta Value, depth int) (score Value, legal bool) {
	child := p.CopyMake(m)

	if !movegen.IsLegalMove(child, m, s.prevMoves) || movegen.MovedIntoCheck(child, m) {
		return 0, false
	}

	s.pushPly()
	s.prevMoves.Add(child.Hash())

	score = -s.pvs(child, -beta, -alpha, depth-1)

	s.popPly()
	s.prevMoves.Remove(child.Hash())

	return score, true
}

// qSearch extends the search over captures only to avoid the
// horizon effect. While in check close to the horizon it delegates
// back to the full search so all evasions are considered.
func (s *Searcher) qSearch(p *position.Position, alpha, beta Value) Value {
	if s.draft() > -2 && movegen.InCheck(p) {
		return s.pvs(p, alpha, beta, 1)
	}

	s.nodes++

	stand := evaluator.Evaluate(p)

	if s.ply > qSearchMaxPly {
		return stand
	}
	if stand >= beta {
		return beta
	}
	if stand > alpha {
		alpha = stand
	}

	ml := movelist.NewQMoveList(s.qMoveScorer(p))
	movegen.GenerateAttacks(p, ml)

	for m := ml.Next(); m != NullMove; m = ml.Next() {
		// a capturable king means an illegal move slipped through
		// further up - score it as mated so the line is refuted
		if m.XPiece().BaseOf() == King {
			return Mated - Value(s.ply)
		}

		child := p.CopyMake(m)
		if movegen.MovedIntoCheck(child, m) {
			continue
		}
		if s.deltaPrune(p, m, alpha, stand) {
			continue
		}

		s.pushPly()
		score := -s.qSearch(child, -beta, -alpha)
		s.popPly()

		if score >= beta {
			return beta
		}
		if score > alpha {
			alpha = score
		}
	}

	return alpha
}

// deltaPrune skips a capture which cannot lift the standing pat
// score above alpha even with a generous margin. Disabled for
// promotions and in late endgames where such margins mislead.
func (s *Searcher) deltaPrune(p *position.Position, m Move, alpha, stand Value) bool {
	if m.MoveType().IsPromo() {
		return false
	}
	officers := p.OccAll() &^ (p.PiecesBb(WhitePawn) | p.PiecesBb(BlackPawn))
	if officers.PopCount() < 5 {
		return false
	}
	return stand+m.XPiece().ValueOf()+deltaMargin < alpha
}

// moveScorer returns the insertion time scoring function for the
// scored move list:
//   PV move, then TT best move, then captures by SEE, then killer
//   moves, then quiets by history count.
func (s *Searcher) moveScorer(p *position.Position, depth int) func(m Move) Value {
	pvMove := s.tt.GetPv(p.Hash())
	ttMove := s.tt.GetBest(p.Hash())
	return func(m Move) Value {
		switch {
		case m == pvMove:
			return pvMoveScore
		case m == ttMove:
			return ttMoveScore
		case m.MoveType().IsCap():
			return evaluator.See(p, m) * capScoreMul
		}
		k1, k2 := s.km.Get(depth)
		switch m {
		case k1:
			return killerOffset + 1
		case k2:
			return killerOffset
		}
		return s.hh.Get(p.Ctm(), m.From(), m.To())
	}
}

// qMoveScorer scores captures for the quiescence search and drops
// captures with a negative static exchange - they cannot improve
// on the standing pat once losing material.
func (s *Searcher) qMoveScorer(p *position.Position) func(m Move) (Value, bool) {
	return func(m Move) (Value, bool) {
		see := evaluator.See(p, m)
		if see < 0 {
			return 0, false
		}
		return see, true
	}
}

// ////////////////////
// Private helpers
// ////////////////////

func (s *Searcher) initSearch(depth int) {
	s.ply = 0
	s.rootDepth = depth
	s.nodes = 0
	s.aborted = false
	s.pv[0] = s.pv[0][:0]
}

func (s *Searcher) draft() int {
	return s.rootDepth - s.ply
}

func (s *Searcher) pushPly() {
	s.ply++
}

func (s *Searcher) popPly() {
	s.ply--
}

// hasAborted polls the shared abort flag and the clock every 4096
// nodes. Once aborted the searcher unwinds returning sentinel
// scores which the driver discards.
func (s *Searcher) hasAborted() bool {
	if s.aborted {
		return true
	}
	if s.nodes&abortPollMask == 0 {
		if s.abort.Load() || time.Since(s.start) > s.timeLimit {
			s.abort.Store(true)
			s.aborted = true
		}
	}
	return s.aborted
}

// storeTT stores a search result unless the search was aborted
func (s *Searcher) storeTT(hash position.Key, score transpositiontable.EntryScore, best Move) {
	if s.aborted {
		return
	}
	s.tt.Insert(hash, score, best, s.draft(), s.ply)
}

// savePv records the move as the new head of the principal
// variation at the current ply followed by the child's variation
func (s *Searcher) savePv(m Move) {
	ply := s.ply
	s.pv[ply] = append(s.pv[ply][:0], m)
	s.pv[ply] = append(s.pv[ply], s.pv[ply+1]...)
}
