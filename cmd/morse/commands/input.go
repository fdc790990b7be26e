package commands

import (
	"bufio"
	"io"
	"strings"

	"github.com/dongsukag/morse-code/logger"
)

// readLine returns the first line of r without its line ending. ok is false
// when r held no data at all. Read failures count as absent input and are
// only logged at info level.
func readLine(r io.Reader) (line string, ok bool) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && err != io.EOF {
		logger.Infow("Failed to read input", logger.FieldError, err)
		return "", false
	}
	if err == io.EOF && line == "" {
		return "", false
	}
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	return line, true
}
