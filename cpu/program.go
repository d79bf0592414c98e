package cpu

import (
	"io"
	"os"
	"strconv"
	"strings"
)

// ParseProgram reads a program image: a single line of comma-separated
// decimal words. Surrounding whitespace is tolerated.
func ParseProgram(in io.Reader) (image []int64, err error) {
	data, err := io.ReadAll(in)
	if err != nil {
		return
	}

	text := strings.TrimSpace(string(data))
	if len(text) == 0 {
		return
	}

	for _, field := range strings.Split(text, ",") {
		field = strings.TrimSpace(field)
		var value int64
		value, err = strconv.ParseInt(field, 10, 64)
		if err != nil {
			err = ErrParseNumber(field)
			return
		}
		image = append(image, value)
	}

	return
}

// LoadProgram reads a program image from a file.
func LoadProgram(path string) (image []int64, err error) {
	file, err := os.Open(path)
	if err != nil {
		return
	}
	defer file.Close()

	return ParseProgram(file)
}
