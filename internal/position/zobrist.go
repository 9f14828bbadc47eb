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
	. "github.com/georgib0y/rookandroll/internal/types"
)

// zobristKeys holds the 781 random keys for zobrist hashing:
// 12x64 piece-square, 1 side to move, 4 castle rights,
// 8 en passant files.
type zobristKeys struct {
	pieces       [PieceLength][SqLength]Key
	ctm          Key
	castleRights [4]Key
	epFile       [8]Key
}

var zobrist = createZobristKeys()

// fixed seed so that hashes are deterministic across runs
const zobristSeed uint64 = 1070372

// createZobristKeys fills the key set from the deterministic PRNG
func createZobristKeys() *zobristKeys {
	z := &zobristKeys{}
	rng := newPrnG(zobristSeed)
	for pc := WhitePawn; pc < PieceNone; pc++ {
		for sq := SqA1; sq < SqNone; sq++ {
			z.pieces[pc][sq] = Key(rng.rand64())
		}
	}
	z.ctm = Key(rng.rand64())
	for i := 0; i < 4; i++ {
		z.castleRights[i] = Key(rng.rand64())
	}
	for i := 0; i < 8; i++ {
		z.epFile[i] = Key(rng.rand64())
	}
	return z
}

// castleRightKey returns the zobrist key of a single castle right bit
func castleRightKey(right CastleRights) Key {
	switch right {
	case CastleWKS:
		return zobrist.castleRights[3]
	case CastleWQS:
		return zobrist.castleRights[2]
	case CastleBKS:
		return zobrist.castleRights[1]
	case CastleBQS:
		return zobrist.castleRights[0]
	}
	return 0
}

// prnG is a xorshift64star pseudo random number generator.
// This generator is based on original code written and dedicated
// to the public domain by Sebastiano Vigna (2014).
// For further analysis see
//   <http://vigna.di.unimi.it/ftp/papers/xorshift.pdf>
type prnG struct {
	s uint64
}

// newPrnG creates a new instance of the pseudo random generator
func newPrnG(seed uint64) *prnG {
	return &prnG{s: seed}
}

func (r *prnG) rand64() uint64 {
	r.s ^= r.s >> 12
	r.s ^= r.s << 25
	r.s ^= r.s >> 27
	return r.s * 2685821657736338717
}
