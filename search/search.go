// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package search finds band encodings that solve a puzzle by brute force.
package search

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"math/bits"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/ezrec/cargobot/emulator"
	"github.com/ezrec/cargobot/robot"
)

const (
	PROGRESS_INTERVAL = 1_000_000 // Candidates between progress reports.
	CHUNK_SIZE        = 4096      // Candidates per parallel work unit.
)

// Searcher enumerates every encoding of one band, in increasing numeric
// order, and reports the first that finishes the puzzle.
type Searcher struct {
	Verbose bool // Set to log search progress.

	Band    int // Band to enumerate.
	Slots   int // Slots of the band to enumerate; all slots if zero.
	Fuel    int // Round budget per candidate; see emulator.DEFAULT_FUEL.
	Workers int // Parallel workers; sequential if less than two.
}

// slots returns the effective number of enumerated slots.
func (s *Searcher) slots() int {
	if s.Slots == 0 {
		return robot.BAND_SLOTS
	}

	return s.Slots
}

// Space returns the number of candidates.
func (s *Searcher) Space() uint64 {
	return uint64(1) << (s.slots() * robot.CODE_BITS)
}

// Search finds the lowest encoding of the band that finishes the puzzle.
//
// The robot's other bands and boards are fixed. On success the solving band
// is installed in the robot and the robot is reset. On failure the robot's
// band is restored. Step tracing of the robot is off during the search.
func (s *Searcher) Search(rb *robot.Robot) (band robot.Band, err error) {
	if s.Band < 0 || s.Band >= robot.BAND_COUNT {
		err = ErrBandInvalid
		return
	}

	if slots := s.slots(); slots < 1 || slots > robot.BAND_SLOTS {
		err = ErrSlotsInvalid
		return
	}

	saved := rb.Program.Band[s.Band]

	verbose := rb.Verbose
	rb.Verbose = false
	defer func() { rb.Verbose = verbose }()

	var ok bool
	if s.Workers < 2 {
		band, ok = s.scan(s.emulator(rb), 0, s.Space())
	} else {
		band, ok, err = s.parallel(rb)
	}

	if !ok {
		rb.SetBand(s.Band, saved)
		rb.Reset()
		if err == nil {
			err = ErrNoSolution
		}
		return
	}

	rb.SetBand(s.Band, band)
	rb.Reset()

	if s.Verbose {
		log.Printf("search: solution %#x: %v", uint64(band), rb.Program.String())
	}

	return
}

// emulator wraps a robot for candidate runs.
func (s *Searcher) emulator(rb *robot.Robot) *emulator.Emulator {
	emu := emulator.NewEmulator(rb)
	emu.Fuel = s.Fuel

	return emu
}

// scan runs the candidates in [lo, hi) on a single emulator.
func (s *Searcher) scan(emu *emulator.Emulator, lo, hi uint64) (band robot.Band, ok bool) {
	for candidate := lo; candidate < hi; candidate++ {
		if s.Verbose && candidate%PROGRESS_INTERVAL == 0 {
			log.Printf("search: %d candidates, %d slots", candidate, (bits.Len64(candidate)+robot.CODE_BITS-1)/robot.CODE_BITS)
		}

		emu.Robot.SetBand(s.Band, robot.Band(candidate))
		if emu.Restart().Outcome == emulator.OUTCOME_FINISHED {
			return robot.Band(candidate), true
		}
	}

	return
}

// parallel shards the candidates into chunks, handed out in increasing
// order to workers that each own a robot clone. The lowest solving candidate
// of all workers wins, so the result matches the sequential scan. A failing
// worker stops the others, and its error is returned.
func (s *Searcher) parallel(rb *robot.Robot) (band robot.Band, ok bool, err error) {
	space := s.Space()
	chunks := (space + CHUNK_SIZE - 1) / CHUNK_SIZE

	shared := &shard{chunks: chunks, space: space}
	shared.best.Store(math.MaxUint64)

	group, ctx := errgroup.WithContext(context.Background())
	for range s.Workers {
		emu := s.emulator(rb.Clone())
		group.Go(func() error {
			return s.work(ctx, emu, shared)
		})
	}

	err = group.Wait()
	if err != nil {
		return
	}

	if found := shared.best.Load(); found != math.MaxUint64 {
		return robot.Band(found), true, nil
	}

	return
}

// shard is the dispatch state shared by parallel workers.
type shard struct {
	chunks uint64
	space  uint64
	next   atomic.Uint64
	best   atomic.Uint64
}

// work scans chunks until they run out, the context is cancelled, or no
// remaining chunk can beat the best candidate.
func (s *Searcher) work(ctx context.Context, emu *emulator.Emulator, shared *shard) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Join(ErrWorker, fmt.Errorf("%v", r))
		}
	}()

	for {
		err = ctx.Err()
		if err != nil {
			return
		}

		chunk := shared.next.Add(1) - 1
		if chunk >= shared.chunks {
			return
		}

		lo := chunk * CHUNK_SIZE
		if lo >= shared.best.Load() {
			return
		}

		hi := min(lo+CHUNK_SIZE, shared.space)
		found, hit := s.scan(emu, lo, hi)
		if !hit {
			continue
		}

		for {
			prior := shared.best.Load()
			if uint64(found) >= prior || shared.best.CompareAndSwap(prior, uint64(found)) {
				break
			}
		}
	}
}
