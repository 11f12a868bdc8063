package utils

import (
	"errors"
	"reflect"
	"testing"
)

func TestRun(t *testing.T) {
	fail := errors.New("fail")
	var calls []string
	record := func(s string) error {
		calls = append(calls, s)
		if s == "b" {
			return fail
		}
		return nil
	}
	err := Run(
		ToRunnable1(record, "a"),
		ToRunnable1(record, "b"),
		ToRunnable1(record, "c"),
	)
	if err != fail {
		t.Errorf("Got error %v, want %v", err, fail)
	}
	if !reflect.DeepEqual(calls, []string{"a", "b"}) {
		t.Errorf("Got calls %v, want [a b]", calls)
	}
}
