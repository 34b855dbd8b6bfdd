// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package robot

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCode_Zero(t *testing.T) {
	assert := assert.New(t)

	ins, ok := Code(0).Decode()
	assert.False(ok)
	assert.Equal(Instruction{}, ins)
	assert.Equal("", Code(0).String())
}

func TestCode_Partial(t *testing.T) {
	assert := assert.New(t)

	// Without a condition there is no instruction.
	_, ok := MakeCode(COND_NOP, OP_RIGHT).Decode()
	assert.False(ok)

	// A condition without an opcode is a guarded return.
	for cond := COND_ALWAYS; cond <= COND_NONE; cond++ {
		ins, ok := MakeCode(cond, OP_NOP).Decode()
		assert.True(ok, "%v", cond)
		assert.Equal(Instruction{Cond: cond, Op: OP_NOP}, ins)
	}
}

func TestCode_Fields(t *testing.T) {
	assert := assert.New(t)

	for cond := COND_ALWAYS; cond <= COND_NONE; cond++ {
		for op := OP_RIGHT; op <= OP_CALL4; op++ {
			code := MakeCode(cond, op)
			assert.Less(int(code), 1<<CODE_BITS)
			assert.Equal(cond, code.Cond())
			assert.Equal(op, code.Op())

			ins, ok := code.Decode()
			assert.True(ok)
			assert.Equal(Instruction{Cond: cond, Op: op}, ins)
			assert.Equal(code, ins.Code())
		}
	}

	assert.Equal(Code(0b001_011), MakeCode(COND_ALWAYS, OP_ACTUATE))
	assert.Equal(Code(0b111_100), MakeCode(COND_NONE, OP_CALL1))
}

func TestCode_String(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		code Code
		text string
	}){
		{MakeCode(COND_ALWAYS, OP_ACTUATE), "q."},
		{MakeCode(COND_BLUE, OP_RIGHT), "b>"},
		{MakeCode(COND_GREEN, OP_LEFT), "g<"},
		{MakeCode(COND_RED, OP_CALL2), "r2"},
		{MakeCode(COND_YELLOW, OP_CALL3), "y3"},
		{MakeCode(COND_ANY, OP_CALL4), "a4"},
		{MakeCode(COND_NONE, OP_CALL1), "n1"},
		{MakeCode(COND_RED, OP_NOP), "r_"},
		{MakeCode(COND_NOP, OP_LEFT), ""},
	}

	for _, entry := range table {
		assert.Equal(entry.text, entry.code.String())
	}
}

func TestCondition_Pass(t *testing.T) {
	assert := assert.New(t)

	boxes := []Box{BOX_EMPTY, BOX_BLUE, BOX_GREEN, BOX_RED, BOX_YELLOW}

	table := [](struct {
		cond Condition
		pass []bool // indexed as boxes
	}){
		{COND_NOP, []bool{false, false, false, false, false}},
		{COND_ALWAYS, []bool{true, true, true, true, true}},
		{COND_BLUE, []bool{false, true, false, false, false}},
		{COND_GREEN, []bool{false, false, true, false, false}},
		{COND_RED, []bool{false, false, false, true, false}},
		{COND_YELLOW, []bool{false, false, false, false, true}},
		{COND_ANY, []bool{false, true, true, true, true}},
		{COND_NONE, []bool{true, false, false, false, false}},
	}

	for _, entry := range table {
		for n, box := range boxes {
			assert.Equal(entry.pass[n], entry.cond.Pass(box), "%v %v", entry.cond, box)
		}
	}
}

func TestOpcode_Target(t *testing.T) {
	assert := assert.New(t)

	for n, op := range []Opcode{OP_CALL1, OP_CALL2, OP_CALL3, OP_CALL4} {
		band, ok := op.Target()
		assert.True(ok)
		assert.Equal(n, band)
	}

	for _, op := range []Opcode{OP_NOP, OP_RIGHT, OP_LEFT, OP_ACTUATE} {
		_, ok := op.Target()
		assert.False(ok)
	}
}
