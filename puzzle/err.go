// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package puzzle

import (
	"errors"

	"github.com/ezrec/cargobot/translate"
)

var f = translate.From

var (
	ErrFormatUnknown = errors.New(f("puzzle format unknown"))
	ErrBoardMissing  = errors.New(f("board missing"))
	ErrGoalMissing   = errors.New(f("goal missing"))
)

// ErrLoad locates a puzzle loading error.
type ErrLoad struct {
	Path string
	Err  error
}

func (err *ErrLoad) Error() string {
	return f("%v: %v", err.Path, err.Err)
}

func (err *ErrLoad) Unwrap() error {
	return err.Err
}

// ErrFieldType reports a puzzle field of the wrong type.
type ErrFieldType string

func (ef ErrFieldType) Error() string {
	return f("field %v has the wrong type", string(ef))
}
