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

package types

import (
	"fmt"
	"math/bits"
	"strings"
)

// Bitboard is a 64 bit unsigned int with 1 bit for each square on
// the board. Bit i set means square i is a member of the set.
type Bitboard uint64

// Various constant bitboards
const (
	BbZero Bitboard = 0
	BbAll  Bitboard = ^BbZero
	BbOne  Bitboard = 1

	FileA_Bb Bitboard = 0x0101010101010101
	FileB_Bb Bitboard = FileA_Bb << 1
	FileC_Bb Bitboard = FileA_Bb << 2
	FileD_Bb Bitboard = FileA_Bb << 3
	FileE_Bb Bitboard = FileA_Bb << 4
	FileF_Bb Bitboard = FileA_Bb << 5
	FileG_Bb Bitboard = FileA_Bb << 6
	FileH_Bb Bitboard = FileA_Bb << 7

	Rank1_Bb Bitboard = 0xFF
	Rank2_Bb Bitboard = Rank1_Bb << (8 * 1)
	Rank3_Bb Bitboard = Rank1_Bb << (8 * 2)
	Rank4_Bb Bitboard = Rank1_Bb << (8 * 3)
	Rank5_Bb Bitboard = Rank1_Bb << (8 * 4)
	Rank6_Bb Bitboard = Rank1_Bb << (8 * 5)
	Rank7_Bb Bitboard = Rank1_Bb << (8 * 6)
	Rank8_Bb Bitboard = Rank1_Bb << (8 * 7)
)

// Orientation is a set of constants for the eight ray directions
// from a square
type Orientation uint8

// Orientation constants. Opposite(o) == o+4 mod 8.
const (
	UL Orientation = 0
	U  Orientation = 1
	UR Orientation = 2
	R  Orientation = 3
	DR Orientation = 4
	D  Orientation = 5
	DL Orientation = 6
	L  Orientation = 7
)

// Opposite returns the opposing ray direction
func (o Orientation) Opposite() Orientation {
	return (o + 4) & 7
}

// PushSquare sets the corresponding bit of the bitboard for the square
func (b *Bitboard) PushSquare(s Square) {
	*b |= sqBb[s]
}

// PopSquare removes the corresponding bit of the bitboard for the square
func (b *Bitboard) PopSquare(s Square) {
	*b &^= sqBb[s]
}

// Has tests if a square (bit) is set
func (b Bitboard) Has(s Square) bool {
	return b&sqBb[s] != 0
}

// Lsb returns the least significant bit of the bitboard as a Square.
// If the bitboard is empty SqNone will be returned.
func (b Bitboard) Lsb() Square {
	return Square(bits.TrailingZeros64(uint64(b)))
}

// PopLsb returns the Lsb square and removes it from the bitboard.
// The given bitboard is changed directly.
func (b *Bitboard) PopLsb() Square {
	if *b == BbZero {
		return SqNone
	}
	lsb := b.Lsb()
	*b &= *b - 1
	return lsb
}

// PopCount returns the number of one bits ("population count") in b.
func (b Bitboard) PopCount() int {
	return bits.OnesCount64(uint64(b))
}

// StringBoard returns a string representation of the Bitboard
// as a board of 8x8 squares
func (b Bitboard) StringBoard() string {
	var os strings.Builder
	os.WriteString("+---+---+---+---+---+---+---+---+\n")
	for r := Rank1; r <= Rank8; r++ {
		for f := FileA; f <= FileH; f++ {
			if b.Has(SquareOf(f, Rank8-r)) {
				os.WriteString("| X ")
			} else {
				os.WriteString("|   ")
			}
		}
		os.WriteString("|\n+---+---+---+---+---+---+---+---+\n")
	}
	return os.String()
}

// String returns a string representation of the 64 bits
func (b Bitboard) String() string {
	return fmt.Sprintf("%-0.64b", uint64(b))
}

// GetRay returns a Bitboard of squares outgoing from the
// square in the direction of the orientation
func GetRay(o Orientation, sq Square) Bitboard {
	return rays[o][sq]
}

// GetSuperRay returns the union of all eight rays from the square.
// A move can only have exposed the king on sq if its from square
// lies within this set.
func GetSuperRay(sq Square) Bitboard {
	return superRays[sq]
}

// Intermediate returns a Bitboard of the squares between the two
// given squares (exclusive of both). Empty if the squares are not
// on a common rank, file or diagonal.
func Intermediate(sq1 Square, sq2 Square) Bitboard {
	return intermediate[sq1][sq2]
}

// GetPawnAttacks returns a Bitboard of possible attacks of a pawn
// of the given color on the given square
func GetPawnAttacks(c Color, sq Square) Bitboard {
	return pawnAttacks[c][sq]
}

// GetKnightMoves returns a Bitboard of possible moves of a knight
func GetKnightMoves(sq Square) Bitboard {
	return knightMoves[sq]
}

// GetKingMoves returns a Bitboard of possible moves of a king
func GetKingMoves(sq Square) Bitboard {
	return kingMoves[sq]
}

// ////////////////////
// Pre-computed tables
// ////////////////////

var (
	// square to bitboard array - has a 65th zero entry so that
	// SqNone maps to the empty bitboard
	sqBb [SqLength + 1]Bitboard

	fileBb [8]Bitboard
	rankBb [8]Bitboard

	// rays per orientation and square
	rays [8][SqLength]Bitboard

	// union of all rays per square
	superRays [SqLength]Bitboard

	// squares between two squares (exclusive)
	intermediate [SqLength][SqLength]Bitboard

	// non sliding piece attacks
	pawnAttacks [2][SqLength]Bitboard
	knightMoves [SqLength]Bitboard
	kingMoves   [SqLength]Bitboard
)

// file/rank deltas per orientation: UL, U, UR, R, DR, D, DL, L
var orientationDeltas = [8][2]int{
	{-1, 1}, {0, 1}, {1, 1}, {1, 0}, {1, -1}, {0, -1}, {-1, -1}, {-1, 0}}

// Pre-computes the various bitboards to avoid runtime calculation
func initBb() {
	for sq := SqA1; sq < SqNone; sq++ {
		sqBb[sq] = BbOne << sq
	}
	sqBb[SqNone] = BbZero

	for i := Rank1; i <= Rank8; i++ {
		rankBb[i] = Rank1_Bb << (8 * i)
	}
	for i := FileA; i <= FileH; i++ {
		fileBb[i] = FileA_Bb << i
	}

	raysPreCompute()
	intermediatePreCompute()
	nonSliderAttacksPreCompute()
}

func raysPreCompute() {
	for sq := SqA1; sq < SqNone; sq++ {
		for o := UL; o <= L; o++ {
			f := int(sq.FileOf()) + orientationDeltas[o][0]
			r := int(sq.RankOf()) + orientationDeltas[o][1]
			for f >= 0 && f <= 7 && r >= 0 && r <= 7 {
				rays[o][sq] |= sqBb[SquareOf(File(f), Rank(r))]
				f += orientationDeltas[o][0]
				r += orientationDeltas[o][1]
			}
		}
		for o := UL; o <= L; o++ {
			superRays[sq] |= rays[o][sq]
		}
	}
}

func intermediatePreCompute() {
	for from := SqA1; from < SqNone; from++ {
		for to := SqA1; to < SqNone; to++ {
			toBb := sqBb[to]
			for o := UL; o <= L; o++ {
				if rays[o][from]&toBb != BbZero {
					intermediate[from][to] =
						rays[o][from] &^ rays[o][to] &^ toBb
				}
			}
		}
	}
}

func nonSliderAttacksPreCompute() {
	knightDeltas := [8][2]int{
		{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}

	for sq := SqA1; sq < SqNone; sq++ {
		f := int(sq.FileOf())
		r := int(sq.RankOf())

		// knight
		for _, d := range knightDeltas {
			nf, nr := f+d[0], r+d[1]
			if nf >= 0 && nf <= 7 && nr >= 0 && nr <= 7 {
				knightMoves[sq] |= sqBb[SquareOf(File(nf), Rank(nr))]
			}
		}

		// king - one step in every orientation
		for _, d := range orientationDeltas {
			nf, nr := f+d[0], r+d[1]
			if nf >= 0 && nf <= 7 && nr >= 0 && nr <= 7 {
				kingMoves[sq] |= sqBb[SquareOf(File(nf), Rank(nr))]
			}
		}

		// pawns - white attacks up, black attacks down
		if r < 7 {
			if f > 0 {
				pawnAttacks[White][sq] |= sqBb[SquareOf(File(f-1), Rank(r+1))]
			}
			if f < 7 {
				pawnAttacks[White][sq] |= sqBb[SquareOf(File(f+1), Rank(r+1))]
			}
		}
		if r > 0 {
			if f > 0 {
				pawnAttacks[Black][sq] |= sqBb[SquareOf(File(f-1), Rank(r-1))]
			}
			if f < 7 {
				pawnAttacks[Black][sq] |= sqBb[SquareOf(File(f+1), Rank(r-1))]
			}
		}
	}
}
