// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package robot

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

// scanTop is the reference linear scan from the top of the stack.
func scanTop(s Stack) (slot int, ok bool) {
	for slot = STACK_SLOTS - 1; slot >= 0; slot-- {
		if s.Box(slot) != BOX_EMPTY {
			return slot, true
		}
	}
	return -1, false
}

func TestStack_Top(t *testing.T) {
	assert := assert.New(t)

	var s Stack
	slot, ok := s.Top()
	assert.False(ok)
	assert.Equal(-1, slot)
	assert.Equal(0, s.Height())

	// Every stack of up to STACK_SLOTS boxes, in every color.
	var walk func(s Stack, height int)
	walk = func(s Stack, height int) {
		want, wantOk := scanTop(s)
		got, gotOk := s.Top()
		assert.Equal(wantOk, gotOk, "%v", s)
		assert.Equal(want, got, "%v", s)
		assert.Equal(height, s.Height(), "%v", s)

		if height == STACK_SLOTS {
			return
		}
		for box := BOX_BLUE; box <= BOX_YELLOW; box++ {
			next := s
			assert.True(next.Put(box))
			walk(next, height+1)
		}
	}
	walk(0, 0)
}

func TestStack_Full(t *testing.T) {
	assert := assert.New(t)

	s, _, err := ParseStack("yyyyyy")
	assert.NoError(err)

	slot, ok := s.Top()
	assert.True(ok)
	assert.Equal(STACK_SLOTS-1, slot)

	before := s
	assert.False(s.Put(BOX_RED))
	assert.Equal(before, s)
}

func TestStack_Take(t *testing.T) {
	assert := assert.New(t)

	s, _, err := ParseStack("rgb")
	assert.NoError(err)

	assert.Equal(BOX_BLUE, s.Take())
	assert.Equal(BOX_GREEN, s.Take())
	assert.Equal("r", s.String())
	assert.Equal(BOX_RED, s.Take())
	assert.Equal(Stack(0), s)

	// Degenerate take from an empty stack.
	assert.Equal(BOX_EMPTY, s.Take())
	assert.Equal(Stack(0), s)
}

func TestParseStack(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		text   string
		stack  Stack
		err    error
		offset int
	}){
		{"", 0, nil, 0},
		{"n", 0, nil, 0},
		{"y", Stack(BOX_YELLOW), nil, 0},
		{"bg", Stack(BOX_BLUE) | Stack(BOX_GREEN)<<3, nil, 0},
		{"rnn", Stack(BOX_RED), nil, 0},
		{"ny", 0, ErrBoxFloating, 1},
		{"bx", 0, ErrBoxUnknown, 1},
		{"bbbbbbb", 0, ErrStackOverflow, STACK_SLOTS},
	}

	for _, entry := range table {
		s, offset, err := ParseStack(entry.text)
		if entry.err != nil {
			assert.ErrorIs(err, entry.err, entry.text)
			assert.Equal(entry.offset, offset, entry.text)
			continue
		}
		assert.NoError(err, entry.text)
		assert.Equal(entry.stack, s, entry.text)
	}
}

func TestParseBoard(t *testing.T) {
	assert := assert.New(t)

	board, err := ParseBoard("y,n,gr, ,bbbbbb", 5)
	assert.NoError(err)
	assert.Equal(5, len(board))
	assert.Equal("y,n,gr,n,bbbbbb", board.Encode())

	again, err := ParseBoard(board.Encode(), 5)
	assert.NoError(err)
	assert.True(board.Equal(again))

	clone := board.Clone()
	clone[0].Take()
	assert.False(board.Equal(clone))
	assert.Equal(BOX_YELLOW, board[0].Box(0))
}

func TestParseBoard_Errors(t *testing.T) {
	assert := assert.New(t)

	_, err := ParseBoard("y", 0)
	assert.ErrorIs(err, ErrWidthInvalid)

	_, err = ParseBoard("y,n", 3)
	assert.ErrorIs(err, ErrBoardWidth)

	_, err = ParseBoard("y,n,n,n", 3)
	assert.ErrorIs(err, ErrBoardWidth)

	board, err := ParseBoard("y,bbbbbbb", 2)
	assert.ErrorIs(err, ErrStackOverflow)
	assert.Nil(board)

	var syntax ErrSyntax
	assert.True(errors.As(err, &syntax))
	assert.Equal(1, syntax.Section)

	_, err = ParseBoard("y,q", 2)
	assert.ErrorIs(err, ErrBoxUnknown)
}

func TestBoard_String(t *testing.T) {
	assert := assert.New(t)

	board, err := ParseBoard("y,n,rg", 3)
	assert.NoError(err)

	expected := "" +
		"| | | |\n" +
		"| | | |\n" +
		"| | | |\n" +
		"| | | |\n" +
		"| | |g|\n" +
		"|y| |r|\n"
	assert.Equal(expected, board.String())
}
