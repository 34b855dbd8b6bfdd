// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package robot

import (
	"errors"

	"github.com/ezrec/cargobot/translate"
)

var f = translate.From

var (
	// Program encoding errors
	ErrConditionUnknown   = errors.New(f("condition unknown"))
	ErrOpcodeUnknown      = errors.New(f("opcode unknown"))
	ErrInstructionPartial = errors.New(f("instruction partial"))
	ErrBandOverflow       = errors.New(f("band overflow"))
	ErrBandCount          = errors.New(f("too many bands"))

	// Board encoding errors
	ErrBoxUnknown     = errors.New(f("box unknown"))
	ErrBoxFloating    = errors.New(f("box floating above empty slot"))
	ErrStackOverflow  = errors.New(f("stack overflow"))
	ErrBoardWidth     = errors.New(f("board width mismatch"))
	ErrWidthInvalid   = errors.New(f("width invalid"))
	ErrGoalInvalid    = errors.New(f("goal invalid"))
	ErrProgramInvalid = errors.New(f("program invalid"))
	ErrBoardInvalid   = errors.New(f("board invalid"))
)

// ErrSyntax locates an encoding error within its text.
type ErrSyntax struct {
	Section int    // Band or stack index.
	Offset  int    // Character offset within the section.
	Text    string // The section text.
	Err     error
}

func (err ErrSyntax) Error() string {
	return f("section %d '%v' offset %d %v", err.Section, err.Text, err.Offset, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}
