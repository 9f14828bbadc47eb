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
	"github.com/georgib0y/rookandroll/internal/assert"
	. "github.com/georgib0y/rookandroll/internal/types"
)

// CopyMake clones the position and applies the move to the clone.
// The receiver is never mutated.
//
// The move must have been produced by the move generator for this
// position - CopyMake does not validate it. Legality of the
// resulting position (king left in check, draw claims) is the
// concern of the caller.
func (p *Position) CopyMake(m Move) *Position {
	n := *p

	from, to := m.From(), m.To()
	piece, xpiece := m.Piece(), m.XPiece()

	// the mover's from/to transition is shared by all move types,
	// the move type switch below only patches the additional effects
	fromTo := from.Bb() | to.Bb()
	n.pieces[piece] ^= fromTo
	n.occ[n.ctm] ^= fromTo
	n.occ[occAll] ^= fromTo
	n.hash ^= zobrist.pieces[piece][from] ^ zobrist.pieces[piece][to]
	if n.ep != SqNone {
		n.hash ^= zobrist.epFile[n.ep.FileOf()]
	}
	n.movePieceValue(piece, from, to)
	n.updateCastleRights(piece, from, to)
	n.ep = SqNone
	n.halfmove++

	switch m.MoveType() {
	case Quiet:
		if piece <= BlackPawn {
			n.halfmove = 0
		}
	case Double:
		n.applyDouble(to)
	case Cap:
		n.applyCap(xpiece, to)
	case WKingSide:
		n.applyCastle(White, SqH1, SqF1)
	case BKingSide:
		n.applyCastle(Black, SqH8, SqF8)
	case WQueenSide:
		n.applyCastle(White, SqA1, SqD1)
	case BQueenSide:
		n.applyCastle(Black, SqA8, SqD8)
	case Promo:
		n.applyPromo(piece, xpiece, to)
	case NPromoCap, RPromoCap, BPromoCap, QPromoCap:
		n.applyPromoCap(m.MoveType(), piece, xpiece, to)
	case Ep:
		n.applyEp(to)
	}

	n.ctm = n.ctm.Flip()
	n.hash ^= zobrist.ctm

	if assert.DEBUG {
		assert.Assert(n.hash == n.RecomputeHash(),
			"CopyMake: hash mismatch after %s on %s", m.String(), p.StringFen())
		mg, eg := n.RecomputeValues()
		assert.Assert(n.mgValue == mg && n.egValue == eg,
			"CopyMake: value mismatch after %s on %s", m.String(), p.StringFen())
	}

	return &n
}

// updateCastleRights clears a castle right if the mover is the
// relevant king or the move touches one of the four original rook
// squares, toggling the corresponding zobrist term for each
// cleared bit.
func (n *Position) updateCastleRights(piece Piece, from, to Square) {
	if n.castleState == 0 {
		return
	}
	if (piece == WhiteKing || from == SqH1 || to == SqH1) && n.castleState.Has(CastleWKS) {
		n.castleState &^= CastleWKS
		n.hash ^= castleRightKey(CastleWKS)
	}
	if (piece == WhiteKing || from == SqA1 || to == SqA1) && n.castleState.Has(CastleWQS) {
		n.castleState &^= CastleWQS
		n.hash ^= castleRightKey(CastleWQS)
	}
	if (piece == BlackKing || from == SqH8 || to == SqH8) && n.castleState.Has(CastleBKS) {
		n.castleState &^= CastleBKS
		n.hash ^= castleRightKey(CastleBKS)
	}
	if (piece == BlackKing || from == SqA8 || to == SqA8) && n.castleState.Has(CastleBQS) {
		n.castleState &^= CastleBQS
		n.hash ^= castleRightKey(CastleBQS)
	}
}

func (n *Position) applyDouble(to Square) {
	if n.ctm == White {
		n.ep = to - 8
	} else {
		n.ep = to + 8
	}
	n.hash ^= zobrist.epFile[n.ep.FileOf()]
	n.halfmove = 0
}

func (n *Position) applyCap(xpiece Piece, to Square) {
	toBb := to.Bb()
	n.pieces[xpiece] ^= toBb
	n.occ[n.ctm.Flip()] ^= toBb
	n.occ[occAll] ^= toBb
	n.removePieceValue(xpiece, to)
	n.hash ^= zobrist.pieces[xpiece][to]
	n.halfmove = 0
}

func (n *Position) applyCastle(c Color, rookFrom, rookTo Square) {
	rook := MakePiece(c, Rook)
	fromTo := rookFrom.Bb() | rookTo.Bb()
	n.pieces[rook] ^= fromTo
	n.occ[c] ^= fromTo
	n.occ[occAll] ^= fromTo
	n.movePieceValue(rook, rookFrom, rookTo)
	n.hash ^= zobrist.pieces[rook][rookFrom] ^ zobrist.pieces[rook][rookTo]
}

func (n *Position) applyPromo(piece, xpiece Piece, to Square) {
	// the shared step moved the pawn to the promotion square,
	// replace it with the promoted piece (carried in xpiece)
	toBb := to.Bb()
	n.pieces[piece] ^= toBb
	n.pieces[xpiece] ^= toBb
	n.hash ^= zobrist.pieces[piece][to] ^ zobrist.pieces[xpiece][to]
	n.removePieceValue(piece, to)
	n.addPieceValue(xpiece, to)
	n.halfmove = 0
}

func (n *Position) applyPromoCap(mt MoveType, piece, xpiece Piece, to Square) {
	promoted := mt.PromoCapPiece(n.ctm)
	toBb := to.Bb()

	// promote the pawn
	n.pieces[piece] ^= toBb
	n.pieces[promoted] ^= toBb
	n.hash ^= zobrist.pieces[piece][to] ^ zobrist.pieces[promoted][to]
	n.removePieceValue(piece, to)
	n.addPieceValue(promoted, to)

	// remove the captured piece
	n.pieces[xpiece] ^= toBb
	n.occ[n.ctm.Flip()] ^= toBb
	n.occ[occAll] ^= toBb
	n.removePieceValue(xpiece, to)
	n.hash ^= zobrist.pieces[xpiece][to]

	n.halfmove = 0
}

func (n *Position) applyEp(to Square) {
	var capSq Square
	if n.ctm == White {
		capSq = to - 8
	} else {
		capSq = to + 8
	}
	victim := MakePiece(n.ctm.Flip(), Pawn)
	capBb := capSq.Bb()
	n.pieces[victim] ^= capBb
	n.occ[n.ctm.Flip()] ^= capBb
	n.occ[occAll] ^= capBb
	n.removePieceValue(victim, capSq)
	n.hash ^= zobrist.pieces[victim][capSq]
	n.halfmove = 0
}

// addPieceValue adds material and positional value of the piece on
// the square to the incremental counters
func (n *Position) addPieceValue(piece Piece, sq Square) {
	n.mgValue += MaterialValue(piece) + PosMidValue(piece, sq)
	n.egValue += MaterialValue(piece) + PosEndValue(piece, sq)
}

// removePieceValue removes material and positional value of the piece
// on the square from the incremental counters
func (n *Position) removePieceValue(piece Piece, sq Square) {
	n.mgValue -= MaterialValue(piece) + PosMidValue(piece, sq)
	n.egValue -= MaterialValue(piece) + PosEndValue(piece, sq)
}

// movePieceValue adjusts the positional value for a from-to shift
// (material is unchanged)
func (n *Position) movePieceValue(piece Piece, from, to Square) {
	n.mgValue += PosMidValue(piece, to) - PosMidValue(piece, from)
	n.egValue += PosEndValue(piece, to) - PosEndValue(piece, from)
}
