package cpu

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncode(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name  string
		words []int64
		text  string
	}){
		{"empty", nil, ""},
		{"one", []int64{99}, "99"},
		{"example", []int64{1101, 1, 1, 0, 4, 0, 99}, "1101,1,1,0,4,0,99"},
		{"negative", []int64{-1, 0, -9223372036854775808}, "-1,0,-9223372036854775808"},
	}

	for _, entry := range table {
		var buf bytes.Buffer
		assert.NoError(Encode(&buf, entry.words), entry.name)
		assert.Equal(entry.text, buf.String(), entry.name)
	}
}

func TestDecode(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name  string
		text  string
		words []int64
		err   error
	}){
		{"empty", "", nil, nil},
		{"blank", " \n", nil, nil},
		{"newline", "1,2,3\n", []int64{1, 2, 3}, nil},
		{"spaces", " 4 , -5 ,6 ", []int64{4, -5, 6}, nil},
		{"bad", "1,x,3", nil, ErrParseNumber("x")},
		{"trailing", "1,2,", nil, ErrParseNumber("")},
		{"hex", "0x10", nil, ErrParseNumber("0x10")},
	}

	for _, entry := range table {
		words, err := Decode(strings.NewReader(entry.text))
		if entry.err != nil {
			assert.ErrorIs(err, entry.err, entry.name)
		} else {
			assert.NoError(err, entry.name)
		}
		assert.Equal(entry.words, words, entry.name)
	}
}
