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

// Package evaluator contains the static evaluation of chess
// positions and the static exchange evaluation (SEE) used for move
// ordering and quiescence pruning.
//
// The evaluation itself is cheap: the position maintains its
// material and piece square values incrementally, evaluation only
// blends the mid and end game values by the game phase and flips
// the sign for the side to move.
package evaluator

import (
	"github.com/georgib0y/rookandroll/internal/position"
	. "github.com/georgib0y/rookandroll/internal/types"
)

// Evaluate returns the static value of the position relative to the
// side to move (positive is good for the side to move)
func Evaluate(p *position.Position) Value {
	phase := Value(p.GamePhase())
	blended := (p.MgValue()*phase + p.EgValue()*(Value(GamePhaseMax)-phase)) / GamePhaseMax
	return blended * p.Ctm().Sign()
}
