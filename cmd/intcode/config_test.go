package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadOptions(t *testing.T) {
	assert := assert.New(t)

	path := filepath.Join(t.TempDir(), "intcode.toml")
	err := os.WriteFile(path, []byte(`
compile = "count.asm"
listing = true
preload = [3, -1]

[define]
LIMIT = "10"
`), 0o644)
	assert.NoError(err)

	opts := DefaultOptions()
	assert.NoError(LoadOptions(path, &opts))

	assert.Equal("count.asm", opts.Compile)
	assert.True(opts.Listing)
	assert.False(opts.Save)
	assert.Equal("-", opts.Input)
	assert.Equal("-", opts.Output)
	assert.Equal([]int64{3, -1}, opts.Preload)
	assert.Equal(map[string]string{"LIMIT": "10"}, opts.Define)
	assert.Equal("count.asm.INT", opts.ImagePath())

	opts.Image = "count.int"
	assert.Equal("count.int", opts.ImagePath())
}

func TestLoadOptions_Invalid(t *testing.T) {
	assert := assert.New(t)

	path := filepath.Join(t.TempDir(), "bad.toml")
	assert.NoError(os.WriteFile(path, []byte("compile = [1"), 0o644))

	opts := DefaultOptions()
	assert.Error(LoadOptions(path, &opts))

	assert.Error(LoadOptions(filepath.Join(t.TempDir(), "missing.toml"), &opts))
}

func TestDefineValue(t *testing.T) {
	assert := assert.New(t)

	dv := defineValue{}
	assert.NoError(dv.Set("A=1"))
	assert.NoError(dv.Set("B"))
	assert.NoError(dv.Set("C=x=y"))

	assert.Equal(defineValue{"A": "1", "B": "1", "C": "x=y"}, dv)
}

func TestPreloadValue(t *testing.T) {
	assert := assert.New(t)

	var pv preloadValue
	assert.NoError(pv.Set("1, -2,0x10"))
	assert.NoError(pv.Set("4"))
	assert.Equal(preloadValue{1, -2, 16, 4}, pv)
	assert.Equal("1,-2,16,4", pv.String())

	assert.Error(pv.Set("five"))
}

func TestCompile(t *testing.T) {
	assert := assert.New(t)

	dir := t.TempDir()
	source := filepath.Join(dir, "out.asm")
	assert.NoError(os.WriteFile(source, []byte("OUT $(VALUE)\nEND\n"), 0o644))

	opts := DefaultOptions()
	opts.Compile = source
	opts.Define = map[string]string{"VALUE": "12"}

	prog, err := compile(&opts)
	assert.NoError(err)
	assert.Equal([]int64{104, 12, 99}, prog.Binary())

	image := opts.ImagePath()
	assert.NoError(save(image, prog.Binary()))

	words, err := load(image)
	assert.NoError(err)
	assert.Equal(prog.Binary(), words)
}

func TestOpenInput(t *testing.T) {
	assert := assert.New(t)

	path := filepath.Join(t.TempDir(), "input.txt")
	assert.NoError(os.WriteFile(path, []byte("3\n4\n"), 0o644))

	opts := DefaultOptions()
	opts.Input = path
	opts.Preload = []int64{1, 2}

	input, done, err := openInput(&opts)
	assert.NoError(err)
	defer done()

	var values []int64
	for range 4 {
		value, err := input.Receive()
		assert.NoError(err)
		values = append(values, value)
	}
	assert.Equal([]int64{1, 2, 3, 4}, values)

	_, err = input.Receive()
	assert.Error(err)
}

func TestParseOptions(t *testing.T) {
	assert := assert.New(t)

	opts, run, err := parseOptions("intcode", []string{"-c", "a.asm", "-o", "cli.out", "-D", "N=2", "-p", "1,2"})
	assert.NoError(err)
	assert.Equal("", run)
	assert.Equal("a.asm", opts.Compile)
	assert.Equal("-", opts.Input)
	assert.Equal("cli.out", opts.Output)
	assert.Equal(map[string]string{"N": "2"}, opts.Define)
	assert.Equal([]int64{1, 2}, opts.Preload)

	opts, run, err = parseOptions("intcode", []string{"-r", "a.INT"})
	assert.NoError(err)
	assert.Equal("a.INT", run)
	assert.Equal(map[string]string{}, opts.Define)

	_, _, err = parseOptions("intcode", []string{"-c", "a.asm", "extra"})
	assert.Error(err)
}

func TestParseOptions_Config(t *testing.T) {
	assert := assert.New(t)

	path := filepath.Join(t.TempDir(), "cfg.toml")
	err := os.WriteFile(path, []byte(`
compile = "b.asm"
output = "cfg.out"
listing = true
preload = [7]

[define]
N = "1"
M = "3"
`), 0o644)
	assert.NoError(err)

	// Flags given on the command line override the file.
	opts, _, err := parseOptions("intcode", []string{
		"-config", path, "-c", "a.asm", "-o", "cli.out", "-D", "N=2", "-p", "8",
	})
	assert.NoError(err)
	assert.Equal("a.asm", opts.Compile)
	assert.Equal("cli.out", opts.Output)
	assert.Equal("-", opts.Input)
	assert.True(opts.Listing)
	assert.Equal(map[string]string{"N": "2", "M": "3"}, opts.Define)
	assert.Equal([]int64{7, 8}, opts.Preload)

	// Flags not given leave the file values.
	opts, _, err = parseOptions("intcode", []string{"-config", path})
	assert.NoError(err)
	assert.Equal("b.asm", opts.Compile)
	assert.Equal("cfg.out", opts.Output)

	// An explicit false flag overrides a true file value.
	opts, _, err = parseOptions("intcode", []string{"-config", path, "-l=false"})
	assert.NoError(err)
	assert.False(opts.Listing)

	_, _, err = parseOptions("intcode", []string{"-config", filepath.Join(t.TempDir(), "missing.toml")})
	assert.Error(err)
}
