// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package puzzle loads puzzle definitions from Starlark or TOML files.
package puzzle

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/cargobot/emulator"
	"github.com/ezrec/cargobot/robot"
	"github.com/ezrec/cargobot/search"
)

// Puzzle is a program with the board it starts from and the board it must
// reach.
type Puzzle struct {
	Name    string `toml:"name"`
	Program string `toml:"program"` // Comma separated bands.
	Board   string `toml:"board"`   // Comma separated initial stacks.
	Goal    string `toml:"goal"`    // Comma separated goal stacks.
	Width   int    `toml:"width"`   // Stacks; defaults to the board's.
	Fuel    int    `toml:"fuel"`    // Round budget per run.
	Band    int    `toml:"band"`    // Band enumerated by a search.
	Slots   int    `toml:"slots"`   // Slots enumerated by a search.
}

// Predefined puzzle constants
var sysDefine = map[string]int{
	"BAND_COUNT":   robot.BAND_COUNT,
	"BAND_SLOTS":   robot.BAND_SLOTS,
	"STACK_SLOTS":  robot.STACK_SLOTS,
	"DEFAULT_FUEL": emulator.DEFAULT_FUEL,
}

// Normalize checks the required fields and applies defaults.
func (p *Puzzle) Normalize() (err error) {
	if len(p.Board) == 0 {
		return ErrBoardMissing
	}
	if len(p.Goal) == 0 {
		return ErrGoalMissing
	}

	if p.Width == 0 {
		p.Width = strings.Count(p.Board, ",") + 1
	}
	if p.Fuel == 0 {
		p.Fuel = emulator.DEFAULT_FUEL
	}
	if p.Slots == 0 {
		p.Slots = robot.BAND_SLOTS
	}

	return
}

// Robot creates the puzzle's robot.
func (p *Puzzle) Robot() (*robot.Robot, error) {
	return robot.NewRobot(p.Program, p.Board, p.Goal, p.Width)
}

// Emulator creates an emulator for the puzzle, with its fuel budget.
func (p *Puzzle) Emulator() (emu *emulator.Emulator, err error) {
	rb, err := p.Robot()
	if err != nil {
		return
	}

	emu = emulator.NewEmulator(rb)
	emu.Fuel = p.Fuel

	return
}

// Searcher creates a searcher for the puzzle's band.
func (p *Puzzle) Searcher() *search.Searcher {
	return &search.Searcher{
		Band:  p.Band,
		Slots: p.Slots,
		Fuel:  p.Fuel,
	}
}

// Load reads a puzzle file. The format is chosen by the file extension,
// '.star' for Starlark and '.toml' for TOML.
func Load(path string) (p *Puzzle, err error) {
	defer func() {
		if err != nil {
			err = &ErrLoad{Path: path, Err: err}
		}
	}()

	data, err := os.ReadFile(path)
	if err != nil {
		return
	}

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))

	switch filepath.Ext(path) {
	case ".star":
		p, err = LoadStarlark(path, data)
	case ".toml":
		p, err = LoadToml(data)
	default:
		err = ErrFormatUnknown
		return
	}

	if err == nil && len(p.Name) == 0 {
		p.Name = name
	}

	return
}

// LoadToml decodes a TOML puzzle.
func LoadToml(data []byte) (p *Puzzle, err error) {
	puz := &Puzzle{}

	_, err = toml.NewDecoder(bytes.NewReader(data)).Decode(puz)
	if err != nil {
		return
	}

	err = puz.Normalize()
	if err != nil {
		return
	}

	p = puz
	return
}

// LoadStarlark executes a Starlark puzzle script. The puzzle is read from
// the script's globals 'name', 'program', 'board', 'goal', 'width', 'fuel',
// 'band' and 'slots'. The robot's limits are predeclared.
func LoadStarlark(filename string, src any) (p *Puzzle, err error) {
	thread := starlark.Thread{Name: filename}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for key, value := range sysDefine {
		pred[key] = starlark.MakeInt(value)
	}

	globals, err := starlark.ExecFileOptions(&opts, &thread, filename, src, pred)
	if err != nil {
		return
	}

	puz := &Puzzle{}
	strs := map[string]*string{
		"name":    &puz.Name,
		"program": &puz.Program,
		"board":   &puz.Board,
		"goal":    &puz.Goal,
	}
	ints := map[string]*int{
		"width": &puz.Width,
		"fuel":  &puz.Fuel,
		"band":  &puz.Band,
		"slots": &puz.Slots,
	}

	var errs []error
	for key, ptr := range strs {
		value, ok := globals[key]
		if !ok {
			continue
		}
		str, ok := starlark.AsString(value)
		if !ok {
			errs = append(errs, ErrFieldType(key))
			continue
		}
		*ptr = str
	}
	for key, ptr := range ints {
		value, ok := globals[key]
		if !ok {
			continue
		}
		var n int
		if err := starlark.AsInt(value, &n); err != nil {
			errs = append(errs, errors.Join(ErrFieldType(key), err))
			continue
		}
		*ptr = n
	}

	err = errors.Join(errs...)
	if err != nil {
		return
	}

	err = puz.Normalize()
	if err != nil {
		return
	}

	p = puz
	return
}
