// Package nonempty_test contains shared fixtures for the nonempty tests.
//
// Purpose:
//   - Keep list literals out of test bodies (avoid magic numbers).
//   - Provide one assertion helper that compares a List against a slice,
//     so failures print both sides in slice form.

package nonempty_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/nelist/nonempty"
)

// Common bounds used across tests.
const (
	RangeLo = 1
	RangeHi = 5

	// FarIndex is beyond the end of every fixture list.
	FarIndex = 100

	Answer = 42
)

// oneToFive returns the fixture [1 2 3 4 5].
func oneToFive() nonempty.List[int] {
	return nonempty.Range(RangeLo, RangeHi)
}

// requireElems fails the test unless got holds exactly want, in order.
func requireElems[T any](t *testing.T, want []T, got nonempty.List[T], msgAndArgs ...interface{}) {
	t.Helper()
	require.Equal(t, want, got.ToSlice(), msgAndArgs...)
	require.Equal(t, len(want), got.Len(), "Len must match element count")
}

// double is a small int→int mapping used by Map tests.
func double(x int) int { return 2 * x }

// isEven is a small predicate used by filter tests.
func isEven(x int) bool { return x%2 == 0 }

// itoa renders an int, used where a type-changing mapping is needed.
func itoa(x int) string { return strconv.Itoa(x) }
