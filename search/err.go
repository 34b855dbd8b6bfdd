// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package search

import (
	"errors"

	"github.com/ezrec/cargobot/translate"
)

var f = translate.From

var (
	ErrNoSolution   = errors.New(f("no solution"))
	ErrBandInvalid  = errors.New(f("band invalid"))
	ErrSlotsInvalid = errors.New(f("slots invalid"))
	ErrWorker       = errors.New(f("search worker failed"))
)
