package cpu

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/intcode/io"
)

func FuzzEncoding(f *testing.F) {
	f.Add(int64(0), int64(1), int64(-1))
	f.Add(int64(1101), int64(-9223372036854775808), int64(9223372036854775807))

	f.Fuzz(func(t *testing.T, a, b, c int64) {
		assert := assert.New(t)

		words := []int64{a, b, c}

		var buf bytes.Buffer
		assert.NoError(Encode(&buf, words))

		decoded, err := Decode(&buf)
		assert.NoError(err)
		assert.Equal(words, decoded)
	})
}

func FuzzCpuTick(f *testing.F) {
	f.Add([]byte{1, 0, 0, 0, 99})
	f.Add([]byte{109, 5, 3, 0, 4, 0, 99})
	f.Add([]byte{105, 1, 0xfd})

	f.Fuzz(func(t *testing.T, data []byte) {
		assert := assert.New(t)

		program := make([]int64, len(data))
		for n, b := range data {
			program[n] = int64(int8(b))
		}

		queue := io.NewQueue(1, -1, 2)
		cpu := NewCpu(program)
		cpu.Input = queue
		cpu.Output = queue

		for range 64 {
			pc := cpu.Pc
			ticks := cpu.Ticks

			err := cpu.Tick()
			if err != nil {
				assert.ErrorIs(err, ErrOpcode{})
				assert.Equal(pc, cpu.Pc)
				assert.Equal(ticks, cpu.Ticks)

				var eo ErrOpcode
				assert.True(errors.As(err, &eo))
				assert.Equal(pc, eo.Pc)
				return
			}

			if cpu.Finished() || cpu.Halted() {
				return
			}
			assert.Equal(ticks+1, cpu.Ticks)
		}
	})
}
