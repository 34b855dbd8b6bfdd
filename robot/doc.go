// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package robot implements the crane and conveyor machine of the cargobot
// puzzle system.
//
// A program is four bands of up to eight instructions. Each instruction is a
// 6-bit code: a 3-bit condition guarding a 3-bit opcode. The condition is
// tested against the box held by the crane, and the opcode moves the crane,
// picks or drops a box, or calls another band. Running off the end of a band
// returns to the caller.
//
// The board is a row of stacks, each packed into a 32-bit word of six 3-bit
// box slots. A run finishes as soon as the board matches the goal board.
package robot
