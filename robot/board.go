// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package robot

import (
	"math/bits"
	"slices"
	"strings"
)

// Box is the color of a box. The zero value is an empty slot.
type Box int

//go:generate go tool stringer -linecomment -type=Box
const (
	BOX_EMPTY  = Box(0) // n
	BOX_BLUE   = Box(1) // b
	BOX_GREEN  = Box(2) // g
	BOX_RED    = Box(3) // r
	BOX_YELLOW = Box(4) // y
)

// glyph returns the box as drawn on the board grid.
func (box Box) glyph() string {
	if box == BOX_EMPTY {
		return " "
	}

	return box.String()
}

const (
	STACK_SLOTS = 6   // Box slots per stack.
	BOX_BITS    = 3   // Bits per packed box.
	BOX_MASK    = 0x7 // Mask of a packed box.
)

// Stack is a packed column of boxes, slot 0 at the bottom in the low bits.
type Stack uint32

// Box returns the box at slot.
func (s Stack) Box(slot int) Box {
	if slot < 0 || slot >= STACK_SLOTS {
		return BOX_EMPTY
	}

	return Box((s >> (slot * BOX_BITS)) & BOX_MASK)
}

// Top returns the highest occupied slot. ok is false for an empty stack.
//
// The slot is derived from the bit length of the packed word. Every box code
// is non-zero and fits its slot, so the highest set bit always lies within the
// top box's slot.
func (s Stack) Top() (slot int, ok bool) {
	n := bits.Len32(uint32(s))
	if n == 0 {
		return -1, false
	}

	return (n+BOX_BITS-1)/BOX_BITS - 1, true
}

// Height returns the number of boxes in the stack.
func (s Stack) Height() int {
	slot, _ := s.Top()
	return slot + 1
}

// Take removes and returns the top box. An empty stack yields BOX_EMPTY.
func (s *Stack) Take() (box Box) {
	slot, ok := s.Top()
	if !ok {
		return BOX_EMPTY
	}

	box = s.Box(slot)
	*s &^= BOX_MASK << (slot * BOX_BITS)
	return
}

// Put places box on top of the stack. The stack is left unchanged and ok
// is false if it is already full.
func (s *Stack) Put(box Box) (ok bool) {
	slot := s.Height()
	if slot >= STACK_SLOTS {
		return false
	}

	*s |= Stack(box&BOX_MASK) << (slot * BOX_BITS)
	return true
}

// String returns the boxes of the stack bottom-up, or "n" if it is empty.
func (s Stack) String() string {
	height := s.Height()
	if height == 0 {
		return BOX_EMPTY.String()
	}

	var sb strings.Builder
	for slot := range height {
		sb.WriteString(s.Box(slot).String())
	}

	return sb.String()
}

// boxMap maps box characters to boxes.
var boxMap = map[rune]Box{
	'n': BOX_EMPTY,
	'b': BOX_BLUE,
	'g': BOX_GREEN,
	'r': BOX_RED,
	'y': BOX_YELLOW,
}

// ParseStack parses the bottom-up box text of a single stack.
// Empty slots may only trail the boxes.
func ParseStack(text string) (s Stack, offset int, err error) {
	runes := []rune(text)
	if len(runes) > STACK_SLOTS {
		return 0, STACK_SLOTS, ErrStackOverflow
	}

	empty := false
	for slot, r := range runes {
		box, ok := boxMap[r]
		if !ok {
			return 0, slot, ErrBoxUnknown
		}
		if box == BOX_EMPTY {
			empty = true
			continue
		}
		if empty {
			return 0, slot, ErrBoxFloating
		}
		s |= Stack(box) << (slot * BOX_BITS)
	}

	return s, 0, nil
}

// Board is a fixed width row of stacks.
type Board []Stack

// ParseBoard parses the comma separated stack text of a board of width
// stacks.
func ParseBoard(text string, width int) (board Board, err error) {
	if width < 1 {
		err = ErrWidthInvalid
		return
	}

	sections := strings.Split(text, ",")
	if len(sections) != width {
		err = ErrSyntax{Section: len(sections), Text: text, Err: ErrBoardWidth}
		return
	}

	stacks := make(Board, width)
	for n, section := range sections {
		section = strings.TrimSpace(section)
		s, offset, serr := ParseStack(section)
		if serr != nil {
			err = ErrSyntax{Section: n, Offset: offset, Text: section, Err: serr}
			return
		}
		stacks[n] = s
	}

	board = stacks
	return
}

// Equal returns true if both boards hold the same boxes in the same places.
func (board Board) Equal(other Board) bool {
	return slices.Equal(board, other)
}

// Clone returns a copy of the board.
func (board Board) Clone() Board {
	return slices.Clone(board)
}

// Encode returns the board in its comma separated text form.
func (board Board) Encode() string {
	stacks := make([]string, len(board))
	for n, s := range board {
		stacks[n] = s.String()
	}

	return strings.Join(stacks, ",")
}

// String draws the board as a grid, top slot first.
func (board Board) String() string {
	var sb strings.Builder
	for slot := STACK_SLOTS - 1; slot >= 0; slot-- {
		for _, s := range board {
			sb.WriteString("|")
			sb.WriteString(s.Box(slot).glyph())
		}
		sb.WriteString("|\n")
	}

	return sb.String()
}
