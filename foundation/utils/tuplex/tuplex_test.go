// File: tuplex_test.go
// Title: Heterogeneous Sequence Lookup Tests
// Description: Tests index rules for type and value lookups.
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial test implementation

package tuplex

import (
	"errors"
	"fmt"
	"testing"
	"time"
)

type unitName string

func TestFirstOfType(t *testing.T) {
	values := []any{"unit", "ms", "count", int64(42), 3 * time.Second, int64(7), nil}

	testCases := []struct {
		name  string
		index func() int
		want  int
	}{
		{"first string", func() int { return FirstOfType[string](0, values...) }, 0},
		{"string from 1", func() int { return FirstOfType[string](1, values...) }, 1},
		{"first int64", func() int { return FirstOfType[int64](0, values...) }, 3},
		{"int64 after first", func() int { return FirstOfType[int64](4, values...) }, 5},
		{"duration", func() int { return FirstOfType[time.Duration](0, values...) }, 4},
		{"int is not int64", func() int { return FirstOfType[int](0, values...) }, NotFound},
		{"named type differs", func() int { return FirstOfType[unitName](0, values...) }, NotFound},
		{"stringer interface", func() int { return FirstOfType[fmt.Stringer](0, values...) }, 4},
		{"start past end", func() int { return FirstOfType[string](len(values), values...) }, NotFound},
		{"negative start", func() int { return FirstOfType[string](-1, values...) }, NotFound},
		{"empty", func() int { return FirstOfType[string](0) }, NotFound},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.index(); got != tc.want {
				t.Errorf("index = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestFind(t *testing.T) {
	values := []any{"from", "unix", "to", "moment", "from", int64(1)}

	testCases := []struct {
		name  string
		index int
		want  int
	}{
		{"first match", Find("from", 0, values...), 0},
		{"second match", Find("from", 1, values...), 4},
		{"value present", Find("moment", 0, values...), 3},
		{"value absent", Find("julian", 0, values...), NotFound},
		{"type mismatch", Find(1, 0, values...), NotFound},
		{"typed value", Find(int64(1), 0, values...), 5},
		{"negative start", Find("from", -3, values...), NotFound},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if tc.index != tc.want {
				t.Errorf("index = %d, want %d", tc.index, tc.want)
			}
		})
	}
}

func TestGet(t *testing.T) {
	cause := errors.New("bad input")
	values := []any{"op", "convert", "error", cause}

	err, ok := Get[error](values...)
	if !ok || err != cause {
		t.Errorf("Get[error] = %v, %v", err, ok)
	}

	d, ok := Get[time.Duration](values...)
	if ok || d != 0 {
		t.Errorf("Get[time.Duration] = %v, %v, want zero and false", d, ok)
	}
}

func TestCount(t *testing.T) {
	values := []any{"a", 1, "b", 2.5, "c"}
	if got := Count[string](values...); got != 3 {
		t.Errorf("Count[string] = %d, want 3", got)
	}
	if got := Count[bool](values...); got != 0 {
		t.Errorf("Count[bool] = %d, want 0", got)
	}
}
