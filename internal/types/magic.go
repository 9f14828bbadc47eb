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

// Fixed shift magic bitboards for the sliding piece attacks.
// The magic multipliers are pre-generated constants (known good
// numbers found offline); masks and attack tables are filled once
// at startup by enumerating all blocker subsets of each mask.
// https://www.chessprogramming.org/Magic_Bitboards

// RookBits and BishopBits are the fixed index widths of the
// magic attack tables
const (
	RookBits   = 12
	BishopBits = 9
)

// GetRookAttacks returns a bitboard of all squares attacked by a rook
// on sq with the given board occupancy
func GetRookAttacks(occ Bitboard, sq Square) Bitboard {
	idx := ((occ & rookMasks[sq]) * rookMagics[sq]) >> (64 - RookBits)
	return rookAttacks[sq][idx]
}

// GetBishopAttacks returns a bitboard of all squares attacked by a
// bishop on sq with the given board occupancy
func GetBishopAttacks(occ Bitboard, sq Square) Bitboard {
	idx := ((occ & bishopMasks[sq]) * bishopMagics[sq]) >> (64 - BishopBits)
	return bishopAttacks[sq][idx]
}

// GetQueenAttacks returns a bitboard of all squares attacked by a
// queen on sq with the given board occupancy
func GetQueenAttacks(occ Bitboard, sq Square) Bitboard {
	return GetRookAttacks(occ, sq) | GetBishopAttacks(occ, sq)
}

// GetRookXrayAttacks returns the squares a rook on sq would attack
// after the own blockers on its first attack rays are removed.
// Used to find pinned pieces.
func GetRookXrayAttacks(occ Bitboard, own Bitboard, sq Square) Bitboard {
	attacks := GetRookAttacks(occ, sq)
	blockers := own & attacks
	return attacks ^ GetRookAttacks(occ^blockers, sq)
}

// GetBishopXrayAttacks returns the squares a bishop on sq would attack
// after the own blockers on its first attack rays are removed.
// Used to find pinned pieces.
func GetBishopXrayAttacks(occ Bitboard, own Bitboard, sq Square) Bitboard {
	attacks := GetBishopAttacks(occ, sq)
	blockers := own & attacks
	return attacks ^ GetBishopAttacks(occ^blockers, sq)
}

// ////////////////////
// Private
// ////////////////////

var (
	rookMasks   [SqLength]Bitboard
	bishopMasks [SqLength]Bitboard

	rookAttacks   [SqLength][1 << RookBits]Bitboard
	bishopAttacks [SqLength][1 << BishopBits]Bitboard
)

var rookDirections = [4]Orientation{U, R, D, L}
var bishopDirections = [4]Orientation{UL, UR, DR, DL}

func initMagics() {
	for sq := SqA1; sq < SqNone; sq++ {
		// board edges are not part of the relevant occupancy unless
		// the square itself is on that edge
		edges := ((Rank1_Bb | Rank8_Bb) &^ sq.RankOf().Bb()) |
			((FileA_Bb | FileH_Bb) &^ sq.FileOf().Bb())

		rookMasks[sq] = slidingAttack(&rookDirections, sq, BbZero) &^ edges
		bishopMasks[sq] = slidingAttack(&bishopDirections, sq, BbZero) &^ edges

		// Carry-Rippler trick to enumerate all subsets of the mask
		// https://www.chessprogramming.org/Traversing_Subsets_of_a_Set
		occ := BbZero
		for {
			idx := (occ * rookMagics[sq]) >> (64 - RookBits)
			rookAttacks[sq][idx] = slidingAttack(&rookDirections, sq, occ)
			occ = (occ - rookMasks[sq]) & rookMasks[sq]
			if occ == BbZero {
				break
			}
		}

		occ = BbZero
		for {
			idx := (occ * bishopMagics[sq]) >> (64 - BishopBits)
			bishopAttacks[sq][idx] = slidingAttack(&bishopDirections, sq, occ)
			occ = (occ - bishopMasks[sq]) & bishopMasks[sq]
			if occ == BbZero {
				break
			}
		}
	}
}

// slidingAttack calculates sliding attacks along the given directions
// for the given square and board occupancy by walking the board.
// Only used for pre-computing, too slow for move generation.
func slidingAttack(directions *[4]Orientation, sq Square, occ Bitboard) Bitboard {
	attack := BbZero
	for _, o := range directions {
		f := int(sq.FileOf()) + orientationDeltas[o][0]
		r := int(sq.RankOf()) + orientationDeltas[o][1]
		for f >= 0 && f <= 7 && r >= 0 && r <= 7 {
			s := SquareOf(File(f), Rank(r))
			attack |= sqBb[s]
			if occ.Has(s) {
				break
			}
			f += orientationDeltas[o][0]
			r += orientationDeltas[o][1]
		}
	}
	return attack
}

// pre-generated magic multipliers for the fixed shift scheme
var rookMagics = [SqLength]Bitboard{
	0x40800022400A1080, 0x420401001E800, 0x100402000110005, 0x4288002010500008,
	0x60400200040001C0, 0x50001000208C400, 0x1008240803000840, 0x2000044018A2201,
	0x70401040042000, 0x2882030131020803, 0x4A00100850800, 0x205400400400840,
	0x3012000401100620, 0x80104200008404, 0x148325380100, 0x8000120222408100,
	0x8484821011400400, 0x8204044020203000, 0x88020300A0010004, 0x4120200102024280,
	0x100200092408044C, 0x80208014010000C0, 0x1000820820040, 0x10600A000401100,
	0x4824080013020, 0x8010200008844040, 0x41000424044040, 0x1C08008012400220,
	0x2200200041200, 0x1040049088460400, 0x218C4800412A0, 0x2009A008004080,
	0x80010200A40808, 0x2010004801200092, 0x220B02004040005, 0xC00080080801000,
	0x3002110400080044, 0x40002021110C2, 0x2010081042009104, 0x460802000480104,
	0x5441020100202800, 0x800810221160400, 0x1084200E0008, 0x10281003010002,
	0x2204004081000800, 0x1803204140100400, 0x840B002110024, 0x201805082220001,
	0x7324118001006208, 0x1012402001830004, 0x100E000806002020, 0xA0201408020200,
	0x110100802110018, 0x30001800080, 0x2280005200911080, 0x101024220108008,
	0x2000800100402011, 0x11020080400A, 0x200200044184111A, 0x68900A0004121036,
	0x600900100380083, 0x8001000400020481, 0x60068802491402, 0x8000010038804402,
}

// pre-generated magic multipliers for the fixed shift scheme
var bishopMagics = [SqLength]Bitboard{
	0x2140004101030008, 0xA30208100100420, 0x102028202000101, 0x141104008002500,
	0x6008142001A8002A, 0x81402400A8300, 0x20904410420020, 0x8048108804202010,
	0x8001480520440080, 0x108920168001080, 0x10821401002208, 0x9004100D000,
	0x80A00444804C6010, 0x8004020200240001, 0x10000882002A0A48, 0x2000100220681412,
	0x2240800700410, 0x38080020401082, 0x12C0920100410100, 0x220100404288000,
	0x24009A00850000, 0x2422000040100180, 0x322C010022820040, 0x89040C010040,
	0x400602001022230, 0x401008000128006C, 0x421004420080, 0xA420202008008020,
	0x1010120104000, 0x8881480000882C0, 0x860112C112104108, 0x10A1082042000420,
	0x100248104100684, 0x214188200A00640, 0x4881008210820, 0x2000280800020A00,
	0x40008201610104, 0x2004093020001220, 0x81004501000800C, 0x234841900C081016,
	0x704009221000402, 0x4540380010000214, 0x2030082000040, 0x8050808104093,
	0x101188107464808, 0x5041020802400802, 0x4010B44808850040, 0x10100040088000E0,
	0x84C010108010, 0x800488140100, 0x1000028020218440, 0x5010048A06220000,
	0x8001040812041000, 0x1840026008109400, 0x1046002206001882, 0x20204400D84000,
	0x1270C20060804000, 0x2000021113042200, 0x40002412282008A, 0xC000000041100,
	0x1000200060005104, 0x1840042164280880, 0x964AD0002100AA00, 0x2190900041002410,
}
