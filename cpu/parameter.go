package cpu

import (
	"strconv"
	"strings"
)

// Parameter is an instruction parameter: a raw value and its addressing mode.
type Parameter struct {
	Value int64
	Mode  Mode
}

// String returns the parameter in assembler syntax.
func (param Parameter) String() string {
	prefix := ""
	switch param.Mode {
	case MODE_IMMEDIATE:
		prefix = "$"
	case MODE_RELATIVE:
		prefix = "R"
	}

	return prefix + strconv.FormatInt(param.Value, 10)
}

// ParseWord parses a decimal, or 0x prefixed hexadecimal, word.
// Hexadecimal words may use all 64 bits.
func ParseWord(text string) (value int64, err error) {
	digits, negative := strings.CutPrefix(text, "-")

	if hex, ok := strings.CutPrefix(digits, "0x"); ok {
		var u64 uint64
		u64, err = strconv.ParseUint(hex, 16, 64)
		value = int64(u64)
		if negative {
			value = -value
		}
	} else {
		value, err = strconv.ParseInt(text, 10, 64)
	}

	if err != nil {
		err = ErrParseNumber(text)
	}

	return
}

// parseParameter parses a parameter token located at address of the output.
func (asm *Assembler) parseParameter(address int64, token string) (param Parameter, err error) {
	if label, ok := strings.CutPrefix(token, ":"); ok {
		param.Mode = MODE_IMMEDIATE

		if addr, known := asm.Label[label]; known {
			param.Value = addr
			return
		}

		id, pending := asm.unknown[label]
		if !pending {
			id = int64(len(asm.idToLabel))
			asm.unknown[label] = id
			asm.idToLabel = append(asm.idToLabel, reference{Label: label, LineNo: asm.lineNo, Line: asm.line})
		}
		asm.usages = append(asm.usages, address)
		param.Value = id

		return
	}

	if addr, ok := asm.Variable[token]; ok {
		param = Parameter{Value: addr, Mode: MODE_POSITION}
		return
	}

	if len(token) == 0 {
		err = ErrParseParameter(token)
		return
	}

	text := token
	switch prefix := token[0]; {
	case prefix == '$':
		param.Mode = MODE_IMMEDIATE
		text = token[1:]
	case prefix == 'R':
		param.Mode = MODE_RELATIVE
		text = token[1:]
	case prefix >= '0' && prefix <= '9':
		param.Mode = MODE_POSITION
	default:
		err = ErrParseParameter(token)
		return
	}

	param.Value, err = ParseWord(text)

	return
}
