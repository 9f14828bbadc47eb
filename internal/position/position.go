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

// Package position represents the data structures and functions for
// a chess position. It uses piece bitboards, occupancy bitboards,
// zobrist keys for transposition tables and incrementally maintained
// material and positional value counters.
//
// Positions are immutable during search: applying a move produces a
// new position via CopyMake, there is no unmake.
//
// Create a new instance with NewPosition(...) with no arguments to
// get the chess start position.
package position

import (
	"fmt"
	"strings"

	"github.com/op/go-logging"

	"github.com/georgib0y/rookandroll/internal/assert"
	myLogging "github.com/georgib0y/rookandroll/internal/logging"
	. "github.com/georgib0y/rookandroll/internal/types"
)

var log *logging.Logger

// StartFen is a string with the fen position for a standard chess game
const StartFen string = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Key is used for zobrist keys in chess positions.
// Zobrist keys need all 64 bits for distribution.
type Key uint64

// CastleRights encodes the castling state in 4 bits
type CastleRights uint8

// Castle right bits
const (
	CastleWKS CastleRights = 0b1000
	CastleWQS CastleRights = 0b0100
	CastleBKS CastleRights = 0b0010
	CastleBQS CastleRights = 0b0001
	CastleAll CastleRights = 0b1111
)

// Has checks if the state has the bit for the castle right set
func (cr CastleRights) Has(rhs CastleRights) bool {
	return cr&rhs != 0
}

// String returns a fen compatible representation (e.g. "KQkq")
func (cr CastleRights) String() string {
	if cr == 0 {
		return "-"
	}
	var os strings.Builder
	if cr.Has(CastleWKS) {
		os.WriteString("K")
	}
	if cr.Has(CastleWQS) {
		os.WriteString("Q")
	}
	if cr.Has(CastleBKS) {
		os.WriteString("k")
	}
	if cr.Has(CastleBQS) {
		os.WriteString("q")
	}
	return os.String()
}

// Occupancy indexes for the occ bitboards
const (
	occWhite = 0
	occBlack = 1
	occAll   = 2
)

// Position represents a chess position as the exclusive owner of the
// game state at a search node.
//
// Needs to be created with NewPosition() or NewPositionFen(fen)
type Position struct {
	// bitboards per piece code
	pieces [PieceLength]Bitboard
	// occupancy: white, black, all
	occ [3]Bitboard
	// side to move
	ctm Color
	// castle rights
	castleState CastleRights
	// en passant target square or SqNone
	ep Square
	// plies since the last pawn move or capture
	halfmove int
	// zobrist key - updated incrementally
	hash Key
	// material + piece square values (white positive) - updated
	// incrementally, mid and end game variants
	mgValue Value
	egValue Value
}

// NewPosition creates a new position.
// When called without an argument the position will have the start
// position. When a fen string is given it will create the position
// based on this fen. Additional fens/strings are ignored.
func NewPosition(fen ...string) *Position {
	if len(fen) == 0 {
		p, _ := NewPositionFen(StartFen)
		return p
	}
	p, _ := NewPositionFen(fen[0])
	return p
}

// NewPositionFen creates a new position with the given fen string.
// It returns nil and an error if the fen was invalid.
func NewPositionFen(fen string) (*Position, error) {
	if log == nil {
		log = myLogging.GetLog()
	}
	p := &Position{}
	if e := p.setupBoard(fen); e != nil {
		log.Errorf("fen not valid, position can't be created: %s", e)
		return nil, e
	}
	return p, nil
}

// //////////////////////////////////////////////////////
// Getters
// //////////////////////////////////////////////////////

// Hash returns the current zobrist key for this position
func (p *Position) Hash() Key {
	return p.hash
}

// Ctm returns the color of the side to move
func (p *Position) Ctm() Color {
	return p.ctm
}

// PiecesBb returns the bitboard of the given piece code
func (p *Position) PiecesBb(pc Piece) Bitboard {
	return p.pieces[pc]
}

// Pieces returns the bitboard of the base piece of the given color
func (p *Position) Pieces(base Piece, c Color) Bitboard {
	return p.pieces[MakePiece(c, base)]
}

// OccAll returns a bitboard of all pieces currently on the board
func (p *Position) OccAll() Bitboard {
	return p.occ[occAll]
}

// Occ returns a bitboard of all pieces of color c
func (p *Position) Occ(c Color) Bitboard {
	return p.occ[c]
}

// KingSq returns the current square of the king of color c
func (p *Position) KingSq(c Color) Square {
	return p.pieces[MakePiece(c, King)].Lsb()
}

// EpSquare returns the en passant target square or SqNone if not set
func (p *Position) EpSquare() Square {
	return p.ep
}

// CastleRights returns the castle rights state of the position
func (p *Position) CastleRights() CastleRights {
	return p.castleState
}

// Halfmove returns the positions half move clock
func (p *Position) Halfmove() int {
	return p.halfmove
}

// MgValue returns the incrementally maintained mid game
// material+positional value (white positive)
func (p *Position) MgValue() Value {
	return p.mgValue
}

// EgValue returns the incrementally maintained end game
// material+positional value (white positive)
func (p *Position) EgValue() Value {
	return p.egValue
}

// GamePhase returns the current game phase of the position between
// GamePhaseMax (opening) and 0 (no officers left)
func (p *Position) GamePhase() int {
	phase := 0
	for pc := WhiteKnight; pc <= BlackQueen; pc++ {
		phase += p.pieces[pc].PopCount() * GamePhaseValue(pc)
	}
	if phase > GamePhaseMax {
		phase = GamePhaseMax
	}
	return phase
}

// PieceOn returns the piece on the given square or PieceNone
func (p *Position) PieceOn(sq Square) Piece {
	bb := sq.Bb()
	if p.occ[occAll]&bb == 0 {
		return PieceNone
	}
	for pc := WhitePawn; pc < PieceNone; pc++ {
		if p.pieces[pc]&bb != 0 {
			return pc
		}
	}
	return PieceNone
}

// PieceOfColorOn returns the piece of the given color on the given
// square or PieceNone. Faster than PieceOn when the color is known.
func (p *Position) PieceOfColorOn(sq Square, c Color) Piece {
	bb := sq.Bb()
	if p.occ[c]&bb == 0 {
		return PieceNone
	}
	for pc := MakePiece(c, Pawn); pc < PieceNone; pc += 2 {
		if p.pieces[pc]&bb != 0 {
			return pc
		}
	}
	return PieceNone
}

// //////////////////////////////////////////////////////
// Setup and validation
// //////////////////////////////////////////////////////

// putPiece places a piece on an empty square and updates all
// incremental state. Only used during position setup.
func (p *Position) putPiece(piece Piece, sq Square) {
	if assert.DEBUG {
		assert.Assert(!p.occ[occAll].Has(sq), "putPiece: square %s occupied", sq.String())
	}
	p.pieces[piece].PushSquare(sq)
	p.occ[piece.ColorOf()].PushSquare(sq)
	p.occ[occAll].PushSquare(sq)
	p.hash ^= zobrist.pieces[piece][sq]
	p.addPieceValue(piece, sq)
}

// RecomputeHash calculates the zobrist key of the position from
// scratch. The incrementally maintained key must always equal this.
func (p *Position) RecomputeHash() Key {
	var hash Key
	for pc := WhitePawn; pc < PieceNone; pc++ {
		bb := p.pieces[pc]
		for bb != 0 {
			hash ^= zobrist.pieces[pc][bb.PopLsb()]
		}
	}
	if p.ctm == Black {
		hash ^= zobrist.ctm
	}
	for i := 0; i < 4; i++ {
		if p.castleState&(1<<i) != 0 {
			hash ^= zobrist.castleRights[i]
		}
	}
	if p.ep != SqNone {
		hash ^= zobrist.epFile[p.ep.FileOf()]
	}
	return hash
}

// RecomputeValues calculates the mid and end game material+positional
// values of the position from scratch. The incrementally maintained
// values must always equal this.
func (p *Position) RecomputeValues() (mg Value, eg Value) {
	for pc := WhitePawn; pc < PieceNone; pc++ {
		bb := p.pieces[pc]
		for bb != 0 {
			sq := bb.PopLsb()
			mg += MaterialValue(pc) + PosMidValue(pc, sq)
			eg += MaterialValue(pc) + PosEndValue(pc, sq)
		}
	}
	return mg, eg
}

// //////////////////////////////////////////////////////
// String
// //////////////////////////////////////////////////////

// String returns a string representing the position instance.
// This includes the fen, a board matrix and the value counters.
func (p *Position) String() string {
	var os strings.Builder
	os.WriteString(p.StringFen())
	os.WriteString("\n")
	os.WriteString(p.StringBoard())
	os.WriteString(fmt.Sprintf("Next Player : %s\n", p.ctm.String()))
	os.WriteString(fmt.Sprintf("Value mg/eg : %d/%d\n", p.mgValue, p.egValue))
	os.WriteString(fmt.Sprintf("Hash        : %d\n", p.hash))
	return os.String()
}

// StringBoard returns a visual matrix of the board and pieces
func (p *Position) StringBoard() string {
	var os strings.Builder
	os.WriteString("+---+---+---+---+---+---+---+---+\n")
	for r := Rank1; r <= Rank8; r++ {
		for f := FileA; f <= FileH; f++ {
			os.WriteString("| ")
			os.WriteString(p.PieceOn(SquareOf(f, Rank8-r)).String())
			os.WriteString(" ")
		}
		os.WriteString("|\n+---+---+---+---+---+---+---+---+\n")
	}
	return os.String()
}
