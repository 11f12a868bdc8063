package utils

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// maxLineSize is the longest line ScanLines accepts.
const maxLineSize = 1 << 20

// ScanLines calls fn with every non-blank line of r and its 1-based line number.
//
// Scanning stops at the first error returned by fn, and that error is returned
// as is so that callers can match it.
func ScanLines(r io.Reader, fn func(lineNo int, line string) error) error {
	s := bufio.NewScanner(r)
	s.Buffer(nil, maxLineSize)
	lineNo := 0
	for s.Scan() {
		lineNo++
		line := strings.TrimSpace(s.Text())
		if line == "" {
			continue
		}
		if err := fn(lineNo, line); err != nil {
			return err
		}
	}
	if err := s.Err(); err != nil {
		return fmt.Errorf("fail to read line %d: %w", lineNo+1, err)
	}
	return nil
}
