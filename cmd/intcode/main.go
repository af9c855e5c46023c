// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"errors"
	"flag"
	"iter"
	"log"
	"os"

	"github.com/ezrec/intcode/cpu"
	"github.com/ezrec/intcode/emulator"
	"github.com/ezrec/intcode/internal"
	"github.com/ezrec/intcode/io"
)

func main() {
	opts, run, err := parseOptions(os.Args[0], os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		log.Fatalf("%v: %v", os.Args[0], err)
	}

	emu := emulator.NewEmulator(nil)
	emu.Verbose = opts.Verbose

	switch {
	case len(opts.Compile) != 0:
		prog, err := compile(&opts)
		if err != nil {
			log.Fatalf("%v: %v", opts.Compile, err)
		}
		if opts.Listing {
			prog.Listing(os.Stderr)
		}
		if opts.Save {
			image := opts.ImagePath()
			err = save(image, prog.Binary())
			if err != nil {
				log.Fatalf("%v: %v", image, err)
			}
			log.Printf("Program %v compiled to file %v", opts.Compile, image)
			return
		}
		emu.Program = prog
	case len(run) != 0:
		words, err := load(run)
		if err != nil {
			log.Fatalf("%v: %v", run, err)
		}
		emu.Load(words)
	default:
		log.Fatalf("%v: one of -c or -r is required", os.Args[0])
	}

	input, closeInput, err := openInput(&opts)
	if err != nil {
		log.Fatalf("%v: %v", opts.Input, err)
	}
	defer closeInput()

	output, closeOutput, err := openOutput(&opts)
	if err != nil {
		log.Fatalf("%v: %v", opts.Output, err)
	}
	defer closeOutput()

	emu.Reset()
	emu.Attach(input, output)

	err = emu.Run()
	if err != nil {
		log.Fatal(err)
	}

	if opts.Verbose {
		log.Printf("%v ticks", emu.Ticks())
	}
}

// compile assembles the source file.
func compile(opts *Options) (prog *cpu.Program, err error) {
	inf, err := os.Open(opts.Compile)
	if err != nil {
		return
	}
	defer inf.Close()

	asm := &cpu.Assembler{Verbose: opts.Verbose}
	for name, value := range opts.Define {
		asm.Predefine(name, value)
	}

	prog, err = asm.Parse(inf)

	return
}

// save writes an image file.
func save(path string, words []int64) (err error) {
	ouf, err := os.Create(path)
	if err != nil {
		return
	}

	err = cpu.Encode(ouf, words)
	if err != nil {
		ouf.Close()
		return
	}

	err = ouf.Close()

	return
}

// load reads an image file.
func load(path string) (words []int64, err error) {
	inf, err := os.Open(path)
	if err != nil {
		return
	}
	defer inf.Close()

	words, err = cpu.Decode(inf)

	return
}

// openInput opens the input channel, with any preloaded values first.
func openInput(opts *Options) (input io.Input, done func(), err error) {
	done = func() {}

	var values iter.Seq2[int64, error]
	if opts.Input == "-" {
		console := io.NewConsole()
		input = console
		values = console.Values()
	} else {
		var inf *os.File
		inf, err = os.Open(opts.Input)
		if err != nil {
			return
		}
		done = func() { inf.Close() }
		tape := &io.Tape{Input: inf}
		input = tape
		values = tape.Values()
	}

	if len(opts.Preload) == 0 {
		return
	}

	feed := io.NewFeed(internal.IterSeq2Concat(io.Values(opts.Preload...), values))
	input = feed
	prior := done
	done = func() {
		feed.Close()
		prior()
	}

	return
}

// openOutput opens the output channel.
func openOutput(opts *Options) (output io.Output, done func(), err error) {
	done = func() {}

	if opts.Output == "-" {
		output = &io.Tape{Output: os.Stdout}
		return
	}

	ouf, err := os.Create(opts.Output)
	if err != nil {
		return
	}
	done = func() { ouf.Close() }
	output = &io.Tape{Output: ouf}

	return
}
