// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package robot

import (
	"fmt"
)

// Condition is the guard of an instruction.
type Condition int

//go:generate go tool stringer -linecomment -type=Condition
const (
	COND_NOP    = Condition(0) // _
	COND_ALWAYS = Condition(1) // q
	COND_BLUE   = Condition(2) // b
	COND_GREEN  = Condition(3) // g
	COND_RED    = Condition(4) // r
	COND_YELLOW = Condition(5) // y
	COND_ANY    = Condition(6) // a
	COND_NONE   = Condition(7) // n
)

// Pass returns true if an instruction guarded by cond executes while the
// crane holds box.
func (cond Condition) Pass(box Box) bool {
	switch cond {
	case COND_ALWAYS:
		return true
	case COND_ANY:
		return box != BOX_EMPTY
	case COND_NONE:
		return box == BOX_EMPTY
	case COND_BLUE:
		return box == BOX_BLUE
	case COND_GREEN:
		return box == BOX_GREEN
	case COND_RED:
		return box == BOX_RED
	case COND_YELLOW:
		return box == BOX_YELLOW
	}

	return false
}

// Opcode is the action of an instruction.
type Opcode int

//go:generate go tool stringer -linecomment -type=Opcode
const (
	OP_NOP     = Opcode(0) // _
	OP_RIGHT   = Opcode(1) // >
	OP_LEFT    = Opcode(2) // <
	OP_ACTUATE = Opcode(3) // .
	OP_CALL1   = Opcode(4) // 1
	OP_CALL2   = Opcode(5) // 2
	OP_CALL3   = Opcode(6) // 3
	OP_CALL4   = Opcode(7) // 4
)

// Target returns the band called by a call opcode.
func (op Opcode) Target() (band int, ok bool) {
	if op < OP_CALL1 || op > OP_CALL4 {
		return
	}

	return int(op - OP_CALL1), true
}

const (
	CODE_BITS = 6    // Bits per packed instruction.
	CODE_MASK = 0x3f // Mask of a packed instruction.

	cond_shift = 3
	field_mask = 0x7
)

// Code is a packed instruction.
// Bits 0..2 hold the opcode, bits 3..5 hold the condition.
type Code uint8

// Instruction is a decoded instruction.
type Instruction struct {
	Cond Condition
	Op   Opcode
}

// MakeCode packs a condition and opcode.
func MakeCode(cond Condition, op Opcode) Code {
	return Code(((uint8(cond) & field_mask) << cond_shift) | (uint8(op) & field_mask))
}

// Cond returns the condition field of the code.
func (code Code) Cond() Condition {
	return Condition((code >> cond_shift) & field_mask)
}

// Op returns the opcode field of the code.
func (code Code) Op() Opcode {
	return Opcode(code & field_mask)
}

// Decode unpacks the code. ok is false when the code holds no instruction,
// which marks the end of its band. A guarded OP_NOP is an instruction that
// returns from the band when its guard passes.
func (code Code) Decode() (ins Instruction, ok bool) {
	cond := code.Cond()
	if cond == COND_NOP {
		return
	}

	return Instruction{Cond: cond, Op: code.Op()}, true
}

// String returns the two character token of the code, or the empty string
// if it holds no instruction.
func (code Code) String() string {
	ins, ok := code.Decode()
	if !ok {
		return ""
	}

	return ins.String()
}

// Pass returns true if the instruction executes while the crane holds box.
func (ins Instruction) Pass(box Box) bool {
	return ins.Cond.Pass(box)
}

// Code packs the instruction.
func (ins Instruction) Code() Code {
	return MakeCode(ins.Cond, ins.Op)
}

// String returns the two character token of the instruction.
func (ins Instruction) String() string {
	return fmt.Sprintf("%v%v", ins.Cond, ins.Op)
}
