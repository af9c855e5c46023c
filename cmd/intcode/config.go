package main

import (
	"errors"
	"flag"
	"fmt"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/ezrec/intcode/cpu"
	"github.com/ezrec/intcode/translate"
)

// Options controls a single invocation of the tool.
type Options struct {
	Compile string            `toml:"compile"` // Source file to compile.
	Image   string            `toml:"image"`   // Compiled image to write (with Compile) or run.
	Save    bool              `toml:"save"`    // Save the image, do not execute.
	Listing bool              `toml:"listing"` // Print the program listing.
	Input   string            `toml:"input"`   // Input file, or "-" for the console.
	Output  string            `toml:"output"`  // Output file, or "-" for the console.
	Preload []int64           `toml:"preload"` // Input values supplied before Input.
	Verbose bool              `toml:"verbose"` // Trace execution.
	Define  map[string]string `toml:"define"`  // Assembler predefines.
}

// DefaultOptions returns the options used without configuration.
func DefaultOptions() Options {
	return Options{
		Input:  "-",
		Output: "-",
	}
}

// LoadOptions decodes a TOML options file over opts.
func LoadOptions(path string, opts *Options) (err error) {
	_, err = toml.DecodeFile(path, opts)
	return
}

// parseOptions parses the command line arguments. With -config, the file
// supplies the options and any flags set on the command line override it.
func parseOptions(name string, args []string) (opts Options, run string, err error) {
	opts = DefaultOptions()

	var config string
	defines := defineValue{}
	var preload preloadValue

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.StringVar(&config, "config", "", "TOML options file")
	fs.StringVar(&opts.Compile, "c", opts.Compile, "source file to compile")
	fs.StringVar(&opts.Image, "w", opts.Image, "image file to write (default: <source>.INT)")
	fs.StringVar(&run, "r", "", "image file to run")
	fs.BoolVar(&opts.Save, "s", opts.Save, "Save compiled image, do not execute")
	fs.BoolVar(&opts.Listing, "l", opts.Listing, "Print program listing")
	fs.StringVar(&opts.Input, "i", opts.Input, "Input values")
	fs.StringVar(&opts.Output, "o", opts.Output, "Output values")
	fs.BoolVar(&opts.Verbose, "v", opts.Verbose, "Verbose mode")
	fs.Var(defines, "D", "Assembler predefine NAME=VALUE")
	fs.Var(&preload, "p", "Comma separated input values, read before -i")

	err = fs.Parse(args)
	if err != nil {
		return
	}

	if fs.NArg() != 0 {
		err = errors.New(translate.From("unknown arguments: %v", fs.Args()))
		return
	}

	if len(config) != 0 {
		file := DefaultOptions()
		err = LoadOptions(config, &file)
		if err != nil {
			err = fmt.Errorf("%v: %w", config, err)
			return
		}
		fs.Visit(func(fl *flag.Flag) {
			file.override(fl.Name, &opts)
		})
		opts = file
	}

	if opts.Define == nil {
		opts.Define = map[string]string{}
	}
	for name, value := range defines {
		opts.Define[name] = value
	}
	opts.Preload = append(opts.Preload, preload...)

	return
}

// override copies the option set by the named flag from cli.
func (opts *Options) override(name string, cli *Options) {
	switch name {
	case "c":
		opts.Compile = cli.Compile
	case "w":
		opts.Image = cli.Image
	case "s":
		opts.Save = cli.Save
	case "l":
		opts.Listing = cli.Listing
	case "i":
		opts.Input = cli.Input
	case "o":
		opts.Output = cli.Output
	case "v":
		opts.Verbose = cli.Verbose
	}
}

// ImagePath returns the image file to write for a compile.
func (opts *Options) ImagePath() string {
	if len(opts.Image) != 0 {
		return opts.Image
	}

	return opts.Compile + ".INT"
}

// defineValue collects NAME=VALUE assembler predefines.
type defineValue map[string]string

var _ flag.Value = defineValue(nil)

func (dv defineValue) String() string {
	var defs []string
	for name, value := range dv {
		defs = append(defs, name+"="+value)
	}
	return strings.Join(defs, ",")
}

func (dv defineValue) Set(text string) (err error) {
	name, value, ok := strings.Cut(text, "=")
	if !ok {
		value = "1"
	}
	dv[name] = value
	return
}

// preloadValue collects comma separated input values.
type preloadValue []int64

var _ flag.Value = (*preloadValue)(nil)

func (pv *preloadValue) String() string {
	var texts []string
	for _, value := range *pv {
		texts = append(texts, strconv.FormatInt(value, 10))
	}
	return strings.Join(texts, ",")
}

func (pv *preloadValue) Set(text string) (err error) {
	for field := range strings.SplitSeq(text, ",") {
		var value int64
		value, err = cpu.ParseWord(strings.TrimSpace(field))
		if err != nil {
			return
		}
		*pv = append(*pv, value)
	}
	return
}
