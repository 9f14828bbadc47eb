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

func TestEvaluateStartPositionIsBalanced(t *testing.T) {
	p := position.NewPosition()
	assert.Equal(t, Value(0), Evaluate(p))
}

func TestEvaluateSideToMoveRelative(t *testing.T) {
	// same material balance - the score flips sign with the side
	// to move
	w := position.NewPosition("4k3/8/8/8/8/8/8/Q3K3 w - - 0 1")
	b := position.NewPosition("4k3/8/8/8/8/8/8/Q3K3 b - - 0 1")
	assert.Greater(t, Evaluate(w), Value(0))
	assert.Less(t, Evaluate(b), Value(0))
	assert.Equal(t, Evaluate(w), -Evaluate(b))
}

func TestEvaluateMaterialDominates(t *testing.T) {
	// a queen up is worth more than any positional bonus
	p := position.NewPosition("4k3/8/8/8/8/8/8/Q3K3 w - - 0 1")
	assert.Greater(t, Evaluate(p), Value(800))
}

func TestEvaluateBlendsGamePhase(t *testing.T) {
	// with only kings the game phase is 0 - the end game table
	// rewards the centralised king
	center := position.NewPosition("4k3/8/8/4K3/8/8/8/8 w - - 0 1")
	corner := position.NewPosition("4k3/8/8/8/8/8/8/K7 w - - 0 1")
	assert.Equal(t, 0, center.GamePhase())
	assert.Greater(t, Evaluate(center), Evaluate(corner))
}
