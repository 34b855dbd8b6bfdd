// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package robot

import (
	"errors"
	"fmt"
	"log"
	"strings"
)

// State classifies the machine after a step.
type State int

//go:generate go tool stringer -linecomment -type=State
const (
	STATE_NORMAL   = State(0) // normal
	STATE_CRASHED  = State(1) // crashed
	STATE_FINISHED = State(2) // finished
)

// Fault is the reason a run crashed.
type Fault int

//go:generate go tool stringer -linecomment -type=Fault
const (
	FAULT_NONE     = Fault(0) // none
	FAULT_RETURN   = Fault(1) // return
	FAULT_EDGE     = Fault(2) // edge
	FAULT_OVERFLOW = Fault(3) // overflow
)

// Robot is the simulation context of the crane, its program and its board.
type Robot struct {
	Verbose bool // Set to enable verbose logging.

	Program Program // Instruction store.
	Initial Board   // Board at the start of a run.
	Goal    Board   // Board that finishes a run.

	Board Board     // Current board.
	Crane Box       // Box held by the crane.
	Ip    Pointer   // Next instruction to fetch.
	Stack CallStack // Return pointers of pending calls.
	Dp    int       // Stack under the crane.
	Fault Fault     // Cause of the last crash.

	Ticks int // Steps since reset.
}

// NewRobot creates a robot from program, board and goal text for a board of
// width stacks. The robot is reset and ready to step.
func NewRobot(program, board, goal string, width int) (robot *Robot, err error) {
	prog, err := ParseProgram(program)
	if err != nil {
		err = errors.Join(ErrProgramInvalid, err)
		return
	}

	initial, err := ParseBoard(board, width)
	if err != nil {
		err = errors.Join(ErrBoardInvalid, err)
		return
	}

	final, err := ParseBoard(goal, width)
	if err != nil {
		err = errors.Join(ErrGoalInvalid, err)
		return
	}

	robot = &Robot{
		Program: prog,
		Initial: initial,
		Goal:    final,
		Board:   make(Board, width),
	}

	robot.Reset()

	return
}

// Clone returns an independent robot sharing the immutable boards.
func (robot *Robot) Clone() *Robot {
	clone := &Robot{
		Verbose: robot.Verbose,
		Program: robot.Program,
		Initial: robot.Initial,
		Goal:    robot.Goal,
		Board:   robot.Board.Clone(),
		Crane:   robot.Crane,
		Ip:      robot.Ip,
		Dp:      robot.Dp,
		Fault:   robot.Fault,
		Ticks:   robot.Ticks,
	}
	clone.Stack.Data = append(clone.Stack.Data, robot.Stack.Data...)

	return clone
}

// Width returns the number of stacks on the board.
func (robot *Robot) Width() int {
	return len(robot.Board)
}

// SetBand replaces the instructions of a band.
func (robot *Robot) SetBand(band int, code Band) {
	robot.Program.Band[band] = code & BAND_MASK
}

// Reset the run state.
// - Restores the initial board.
// - Empties the crane and the call stack.
// - Moves the crane over the first stack, and the IP to the first slot.
func (robot *Robot) Reset() {
	if robot.Verbose {
		log.Printf("robot: reset")
	}

	copy(robot.Board, robot.Initial)
	robot.Crane = BOX_EMPTY
	robot.Ip = Pointer{}
	robot.Stack.Reset()
	robot.Dp = 0
	robot.Fault = FAULT_NONE
	robot.Ticks = 0
}

// OnBoard returns true if the crane is over a stack.
func (robot *Robot) OnBoard() bool {
	return robot.Dp >= 0 && robot.Dp < len(robot.Board)
}

// Classify compares the board against the goal. A board matching the goal
// finishes the run, whatever else happened in the step.
func (robot *Robot) Classify() State {
	switch {
	case robot.Board.Equal(robot.Goal):
		return STATE_FINISHED
	case robot.Fault != FAULT_NONE:
		return STATE_CRASHED
	case !robot.OnBoard():
		return STATE_CRASHED
	}

	return STATE_NORMAL
}

// Step executes a single instruction and classifies the result.
func (robot *Robot) Step() (state State) {
	ins, ok := robot.Program.Fetch(robot.Ip)

	if robot.Verbose {
		log.Printf("robot: %v: %v crane=%v dp=%d", robot.Ip, ins, robot.Crane, robot.Dp)
	}

	robot.Ticks++

	switch {
	case !ok:
		robot.ret()
	case !ins.Pass(robot.Crane):
		robot.Ip.Slot++
	default:
		robot.execute(ins)
	}

	if robot.Fault == FAULT_NONE && !robot.OnBoard() {
		robot.Fault = FAULT_EDGE
	}

	state = robot.Classify()

	if robot.Verbose && state != STATE_NORMAL {
		log.Printf("robot: %v (fault %v)", state, robot.Fault)
	}

	return
}

// ret resumes the caller at the end of a band.
func (robot *Robot) ret() {
	ip, ok := robot.Stack.Pop()
	if !ok {
		robot.Fault = FAULT_RETURN
		return
	}

	robot.Ip = ip
}

// execute performs the action of an instruction whose guard passed.
func (robot *Robot) execute(ins Instruction) {
	switch ins.Op {
	case OP_NOP:
		robot.ret()
	case OP_RIGHT:
		robot.Ip.Slot++
		robot.Dp++
	case OP_LEFT:
		robot.Ip.Slot++
		robot.Dp--
	case OP_ACTUATE:
		robot.Ip.Slot++
		robot.actuate()
	case OP_CALL1, OP_CALL2, OP_CALL3, OP_CALL4:
		band, _ := ins.Op.Target()
		robot.Stack.Push(Pointer{Band: robot.Ip.Band, Slot: robot.Ip.Slot + 1})
		robot.Ip = Pointer{Band: band}
	}
}

// actuate picks up the top box when the crane is empty, and drops the held
// box otherwise.
func (robot *Robot) actuate() {
	if !robot.OnBoard() {
		robot.Fault = FAULT_EDGE
		return
	}

	s := &robot.Board[robot.Dp]
	if robot.Crane == BOX_EMPTY {
		robot.Crane = s.Take()
		return
	}

	if !s.Put(robot.Crane) {
		robot.Fault = FAULT_OVERFLOW
		return
	}

	robot.Crane = BOX_EMPTY
}

// CraneString draws the crane above its stack, aligned with Board.String().
func (robot *Robot) CraneString() string {
	if !robot.OnBoard() {
		return ""
	}

	return strings.Repeat("  ", robot.Dp) + " " + robot.Crane.glyph()
}

// String returns the current machine state as a string.
func (robot *Robot) String() (text string) {
	regs := []string{"ip", "dp", "crane", "stack", "fault", "ticks", "program"}
	for _, reg := range regs {
		var strval string
		switch reg {
		case "ip":
			strval = robot.Ip.String()
		case "dp":
			strval = fmt.Sprintf("%d", robot.Dp)
		case "crane":
			strval = robot.Crane.String()
		case "stack":
			if ip, ok := robot.Stack.Peek(); ok {
				strval = fmt.Sprintf("%v (depth %d)", ip, robot.Stack.Depth())
			} else {
				strval = "-:-"
			}
		case "fault":
			strval = robot.Fault.String()
		case "ticks":
			strval = fmt.Sprintf("%d", robot.Ticks)
		case "program":
			strval = robot.Program.String()
		}
		text += fmt.Sprintf("% 7s: %v\n", reg, strval)
	}

	text += robot.Board.String()

	return
}
