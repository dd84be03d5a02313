package nonempty_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/nelist/nonempty"
)

// TestAppend keeps the receiver's head as the overall head.
func TestAppend(t *testing.T) {
	requireElems(t, []int{1, 2, 3, 4}, nonempty.New(1, 2).Append(nonempty.New(3, 4)))
	requireElems(t, []int{1, 2}, nonempty.Singleton(1).Append(nonempty.Singleton(2)))
}

// TestAppend_SharedBase appends to two lists derived from one base and
// checks neither result clobbers the other.
func TestAppend_SharedBase(t *testing.T) {
	base := oneToFive().Take(3)
	left := base.Append(nonempty.Singleton(100))
	right := base.Append(nonempty.Singleton(200))

	requireElems(t, []int{1, 2, 3, 100}, left)
	requireElems(t, []int{1, 2, 3, 200}, right)
	requireElems(t, []int{1, 2, 3}, base)
	requireElems(t, []int{1, 2, 3, 4, 5}, oneToFive())
}

// TestConcat flattens in order; the first inner head leads.
func TestConcat(t *testing.T) {
	ls := nonempty.New(
		nonempty.New(1, 2),
		nonempty.Singleton(3),
		nonempty.New(4, 5, 6),
	)
	requireElems(t, []int{1, 2, 3, 4, 5, 6}, nonempty.Concat(ls))
	requireElems(t, []int{9}, nonempty.Concat(nonempty.Singleton(nonempty.Singleton(9))))
}

// TestConcatMap matches Concat(Map(...)).
func TestConcatMap(t *testing.T) {
	dup := func(x int) nonempty.List[int] { return nonempty.Repeat(2, x) }
	l := nonempty.New(1, 2, 3)

	got := nonempty.ConcatMap(l, dup)
	requireElems(t, []int{1, 1, 2, 2, 3, 3}, got)
	assert.True(t, nonempty.Equal(got, nonempty.Concat(nonempty.Map(l, dup))))
}

// TestIntersperse puts sep only between elements.
func TestIntersperse(t *testing.T) {
	requireElems(t, []string{"a", ",", "b", ",", "c"}, nonempty.New("a", "b", "c").Intersperse(","))
	requireElems(t, []string{"a"}, nonempty.Singleton("a").Intersperse(","), "no separator for a singleton")
}

// TestZipUnzip pairs by position and splits back into equal-length lists.
func TestZipUnzip(t *testing.T) {
	pairs := nonempty.New(
		nonempty.Pair[string, int]{First: "a", Second: 1},
		nonempty.Pair[string, int]{First: "b", Second: 2},
		nonempty.Pair[string, int]{First: "c", Second: 3},
	)
	letters, numbers := nonempty.Unzip(pairs)
	requireElems(t, []string{"a", "b", "c"}, letters)
	requireElems(t, []int{1, 2, 3}, numbers)
	assert.Equal(t, letters.Len(), numbers.Len())

	zipped := nonempty.Zip(letters, nonempty.New(1, 2))
	assert.Equal(t, 2, zipped.Len(), "zip truncates to the shorter input")
	assert.Equal(t, nonempty.Pair[string, int]{First: "b", Second: 2}, zipped.Last())
}
