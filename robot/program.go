// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package robot

import (
	"fmt"
	"iter"
	"strings"

	"github.com/ezrec/cargobot/internal"
)

const (
	BAND_COUNT = 4 // Number of bands in a program.
	BAND_SLOTS = 8 // Instruction slots per band.

	// BAND_MASK is the mask of the packed bits in a band.
	BAND_MASK = Band(1)<<(BAND_SLOTS*CODE_BITS) - 1
)

// Pointer addresses an instruction slot.
type Pointer struct {
	Band int
	Slot int
}

func (ip Pointer) String() string {
	return fmt.Sprintf("%d:%d", ip.Band+1, ip.Slot)
}

// Band is a packed subroutine of BAND_SLOTS codes, slot 0 in the low bits.
type Band uint64

// Code returns the code at slot. Slots outside of the band hold no
// instruction.
func (band Band) Code(slot int) Code {
	if slot < 0 || slot >= BAND_SLOTS {
		return 0
	}

	return Code((band >> (slot * CODE_BITS)) & CODE_MASK)
}

// With returns the band with slot replaced by code.
func (band Band) With(slot int, code Code) Band {
	if slot < 0 || slot >= BAND_SLOTS {
		return band
	}

	shift := slot * CODE_BITS
	band &^= CODE_MASK << shift
	return band | (Band(code&CODE_MASK) << shift)
}

// Len returns the number of instructions before the end of the band.
func (band Band) Len() (count int) {
	for ; count < BAND_SLOTS; count++ {
		if _, ok := band.Code(count).Decode(); !ok {
			break
		}
	}

	return
}

// String returns the reachable instructions of the band as tokens.
func (band Band) String() string {
	var sb strings.Builder
	for slot := range band.Len() {
		sb.WriteString(band.Code(slot).String())
	}

	return sb.String()
}

// Program is the instruction store.
type Program struct {
	Band [BAND_COUNT]Band
}

// Fetch returns the instruction at ip. ok is false at the end of a band.
func (prog *Program) Fetch(ip Pointer) (ins Instruction, ok bool) {
	if ip.Band < 0 || ip.Band >= BAND_COUNT {
		return
	}

	return prog.Band[ip.Band].Code(ip.Slot).Decode()
}

// codes iterates over the slots of a single band.
func (prog *Program) codes(band int) iter.Seq2[Pointer, Code] {
	return func(yield func(ip Pointer, code Code) bool) {
		for slot := range BAND_SLOTS {
			if !yield(Pointer{Band: band, Slot: slot}, prog.Band[band].Code(slot)) {
				return
			}
		}
	}
}

// Codes iterates over every slot of the program, band by band.
func (prog *Program) Codes() iter.Seq2[Pointer, Code] {
	seqs := make([]iter.Seq2[Pointer, Code], BAND_COUNT)
	for n := range seqs {
		seqs[n] = prog.codes(n)
	}

	return internal.IterSeq2Concat(seqs...)
}

// Listing iterates over the instructions of the program, band by band,
// stopping each band at its end.
func (prog *Program) Listing() iter.Seq2[Pointer, Instruction] {
	return func(yield func(ip Pointer, ins Instruction) bool) {
		ended := -1
		for ip, code := range prog.Codes() {
			if ip.Band == ended {
				continue
			}
			ins, ok := code.Decode()
			if !ok {
				ended = ip.Band
				continue
			}
			if !yield(ip, ins) {
				return
			}
		}
	}
}

// String returns the program in its comma separated text form.
// Trailing empty bands are omitted.
func (prog *Program) String() string {
	var bands [BAND_COUNT]strings.Builder
	last := 0
	for ip, ins := range prog.Listing() {
		bands[ip.Band].WriteString(ins.String())
		last = ip.Band
	}

	texts := make([]string, last+1)
	for n := range texts {
		texts[n] = bands[n].String()
	}

	return strings.Join(texts, ",")
}

// condMap maps condition characters to conditions.
var condMap = map[rune]Condition{
	'q': COND_ALWAYS,
	'b': COND_BLUE,
	'g': COND_GREEN,
	'r': COND_RED,
	'y': COND_YELLOW,
	'a': COND_ANY,
	'n': COND_NONE,
}

// opMap maps opcode characters to opcodes.
var opMap = map[rune]Opcode{
	'>': OP_RIGHT,
	'<': OP_LEFT,
	'_': OP_NOP,
	'.': OP_ACTUATE,
	'd': OP_ACTUATE,
	'1': OP_CALL1,
	'2': OP_CALL2,
	'3': OP_CALL3,
	'4': OP_CALL4,
}

// parseBand parses the tokens of a single band.
func parseBand(text string) (band Band, offset int, err error) {
	runes := []rune(text)
	if len(runes)%2 != 0 {
		offset = len(runes) - 1
		err = ErrInstructionPartial
		return
	}

	if len(runes)/2 > BAND_SLOTS {
		offset = BAND_SLOTS * 2
		err = ErrBandOverflow
		return
	}

	for slot := range len(runes) / 2 {
		offset = slot * 2
		cond, ok := condMap[runes[offset]]
		if !ok {
			err = ErrConditionUnknown
			return
		}
		op, ok := opMap[runes[offset+1]]
		if !ok {
			offset++
			err = ErrOpcodeUnknown
			return
		}
		band = band.With(slot, MakeCode(cond, op))
	}

	return band, 0, nil
}

// ParseProgram parses the comma separated band text of a program.
// Each band is a sequence of condition and opcode character pairs.
func ParseProgram(text string) (prog Program, err error) {
	sections := strings.Split(text, ",")
	if len(sections) > BAND_COUNT {
		err = ErrSyntax{Section: BAND_COUNT, Text: sections[BAND_COUNT], Err: ErrBandCount}
		return
	}

	var bands [BAND_COUNT]Band
	for n, section := range sections {
		section = strings.TrimSpace(section)
		band, offset, perr := parseBand(section)
		if perr != nil {
			err = ErrSyntax{Section: n, Offset: offset, Text: section, Err: perr}
			return
		}
		bands[n] = band
	}

	prog.Band = bands
	return
}
