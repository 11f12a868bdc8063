package utils

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func TestScanLines(t *testing.T) {
	tcs := []struct {
		name    string
		input   string
		lineNos []int
		lines   []string
	}{
		{
			name:  "Empty",
			input: "",
		},
		{
			name:    "NoTrailingNewline",
			input:   "#1 @ 1,3: 4x4\n#2 @ 3,1: 4x4",
			lineNos: []int{1, 2},
			lines:   []string{"#1 @ 1,3: 4x4", "#2 @ 3,1: 4x4"},
		},
		{
			name:    "BlankLines",
			input:   "\n#1 @ 1,3: 4x4\n   \n\t#3 @ 5,5: 2x2  \r\n\n",
			lineNos: []int{2, 4},
			lines:   []string{"#1 @ 1,3: 4x4", "#3 @ 5,5: 2x2"},
		},
	}
	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			var (
				lineNos []int
				lines   []string
			)
			err := ScanLines(strings.NewReader(tc.input), func(lineNo int, line string) error {
				lineNos = append(lineNos, lineNo)
				lines = append(lines, line)
				return nil
			})
			if err != nil {
				t.Fatal(err)
			}
			if !reflect.DeepEqual(lineNos, tc.lineNos) {
				t.Errorf("Got line numbers %v, want %v", lineNos, tc.lineNos)
			}
			if !reflect.DeepEqual(lines, tc.lines) {
				t.Errorf("Got lines %q, want %q", lines, tc.lines)
			}
		})
	}
}

func TestScanLines_Stop(t *testing.T) {
	stop := errors.New("stop")
	n := 0
	err := ScanLines(strings.NewReader("a\nb\nc\n"), func(int, string) error {
		n++
		if n == 2 {
			return stop
		}
		return nil
	})
	if err != stop {
		t.Errorf("Got error %v, want %v", err, stop)
	}
	if n != 2 {
		t.Errorf("Got %d calls, want 2", n)
	}
}
