// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"iter"
	"log"

	"github.com/ezrec/cargobot/robot"
	"github.com/ezrec/cargobot/translate"
)

var f = translate.From

const (
	DEFAULT_FUEL = 100 // Default round budget of a run.
)

// Outcome is the terminal classification of a run.
type Outcome int

//go:generate go tool stringer -linecomment -type=Outcome
const (
	OUTCOME_CRASHED  = Outcome(0) // crashed
	OUTCOME_FINISHED = Outcome(1) // finished
	OUTCOME_LIMITED  = Outcome(2) // limited
)

// Result of a run.
type Result struct {
	Outcome Outcome
	Rounds  int // Steps taken, including the terminal step.
}

func (res Result) String() string {
	return f("%v after %d rounds", res.Outcome, res.Rounds)
}

// Emulator state. Robot + round budget.
type Emulator struct {
	Verbose      bool // If set, enables verbose logging.
	*robot.Robot      // Reference to the robot simulation.

	Fuel int // Round budget; DEFAULT_FUEL if not positive.
}

// NewEmulator creates a new emulator around a robot.
func NewEmulator(rb *robot.Robot) (emu *Emulator) {
	emu = &Emulator{
		Robot: rb,
		Fuel:  DEFAULT_FUEL,
	}

	return
}

// fuel returns the effective round budget.
func (emu *Emulator) fuel() int {
	if emu.Fuel <= 0 {
		return DEFAULT_FUEL
	}

	return emu.Fuel
}

// Steps steps the robot, yielding the round number and state of each step.
// Iteration ends after a terminal state, or when the fuel runs out.
func (emu *Emulator) Steps() iter.Seq2[int, robot.State] {
	return func(yield func(round int, state robot.State) bool) {
		if emu.Verbose {
			emu.Robot.Verbose = true
		}

		fuel := emu.fuel()
		for round := 1; round <= fuel; round++ {
			state := emu.Robot.Step()
			if !yield(round, state) || state != robot.STATE_NORMAL {
				return
			}
		}
	}
}

// Run steps the robot from its current state until it crashes, finishes,
// or exhausts the fuel.
func (emu *Emulator) Run() (result Result) {
	result.Outcome = OUTCOME_LIMITED

	for round, state := range emu.Steps() {
		result.Rounds = round
		switch state {
		case robot.STATE_CRASHED:
			result.Outcome = OUTCOME_CRASHED
		case robot.STATE_FINISHED:
			result.Outcome = OUTCOME_FINISHED
		}
	}

	if emu.Verbose {
		log.Printf("emulator: %v", result)
	}

	return
}

// Restart resets the robot and runs it.
func (emu *Emulator) Restart() Result {
	emu.Robot.Reset()
	return emu.Run()
}
