package cpu

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

// Encode writes the words as comma separated decimal text.
func Encode(w io.Writer, words []int64) (err error) {
	bw := bufio.NewWriter(w)

	var buf []byte
	for n, word := range words {
		buf = buf[:0]
		if n > 0 {
			buf = append(buf, ',')
		}
		buf = strconv.AppendInt(buf, word, 10)
		_, err = bw.Write(buf)
		if err != nil {
			return
		}
	}

	err = bw.Flush()

	return
}

// Decode reads comma separated decimal text. Whitespace around the words
// is ignored, and empty text is an empty program.
func Decode(r io.Reader) (words []int64, err error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return
	}

	text := strings.TrimSpace(string(data))
	if len(text) == 0 {
		return
	}

	for field := range strings.SplitSeq(text, ",") {
		field = strings.TrimSpace(field)
		var word int64
		word, err = strconv.ParseInt(field, 10, 64)
		if err != nil {
			err = ErrParseNumber(field)
			words = nil
			return
		}
		words = append(words, word)
	}

	return
}
