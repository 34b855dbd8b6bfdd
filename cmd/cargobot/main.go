// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"time"

	"github.com/ezrec/cargobot/emulator"
	"github.com/ezrec/cargobot/puzzle"
	"github.com/ezrec/cargobot/robot"
)

// logProgram logs the program one instruction per line.
func logProgram(prog *robot.Program) {
	for ip, ins := range prog.Listing() {
		log.Printf("%v: %v", ip, ins)
	}
}

func main() {
	var file string
	var search bool
	var workers int
	var verbose bool

	p := &puzzle.Puzzle{}

	flag.StringVar(&file, "f", "", ".star or .toml puzzle file")
	flag.StringVar(&p.Program, "p", "", "Program bands, comma separated")
	flag.StringVar(&p.Board, "b", "", "Initial board stacks, comma separated")
	flag.StringVar(&p.Goal, "g", "", "Goal board stacks, comma separated")
	flag.IntVar(&p.Width, "w", 0, "Board width (default: stacks in the board)")
	flag.IntVar(&p.Fuel, "n", emulator.DEFAULT_FUEL, "Round budget per run")
	flag.BoolVar(&search, "s", false, "Search for a band that solves the puzzle")
	flag.IntVar(&p.Band, "band", 0, "Band to search (0-3)")
	flag.IntVar(&p.Slots, "slots", 0, "Band slots to search (default: all)")
	flag.IntVar(&workers, "j", runtime.NumCPU(), "Search workers")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	if len(file) != 0 {
		var err error
		p, err = puzzle.Load(file)
		if err != nil {
			log.Fatal(err)
		}
	} else {
		p.Name = "cargobot"
		err := p.Normalize()
		if err != nil {
			log.Fatalf("%v: %v", os.Args[0], err)
		}
	}

	emu, err := p.Emulator()
	if err != nil {
		log.Fatal(err)
	}
	emu.Verbose = verbose

	if verbose {
		logProgram(&emu.Robot.Program)
	}

	start := time.Now()

	if search {
		s := p.Searcher()
		s.Workers = workers
		s.Verbose = verbose

		band, err := s.Search(emu.Robot)
		if err != nil {
			log.Fatalf("%v: band %d: %v", p.Name, p.Band+1, err)
		}
		fmt.Printf("band %d: %v (%#x) found in %v\n", p.Band+1, band, uint64(band), time.Since(start))
		fmt.Printf("program: %v\n", emu.Robot.Program.String())
		if verbose {
			logProgram(&emu.Robot.Program)
		}

		start = time.Now()
	}

	result := emu.Run()
	took := time.Since(start)

	fmt.Println(emu.CraneString())
	fmt.Print(emu.Board.String())
	fmt.Printf("%v", result)
	if result.Outcome == emulator.OUTCOME_CRASHED {
		fmt.Printf(" (%v)", emu.Fault)
	}
	fmt.Printf(", simulation took %v\n", took)

	if result.Outcome != emulator.OUTCOME_FINISHED {
		os.Exit(1)
	}
}
