package deck

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sempre escolhe o mesmo índice relativo
type fixedSource struct {
	pick func(n int) int
}

func (f fixedSource) Intn(n int) int { return f.pick(n) }

func sorted(values []string) []string {
	out := append([]string(nil), values...)
	sort.Strings(out)
	return out
}

func TestShuffle_SwapsWithChosenIndex(t *testing.T) {
	zero := fixedSource{pick: func(int) int { return 0 }}
	assert.Equal(t, []string{"B", "C", "A"}, Shuffle(zero, []string{"A", "B", "C"}))

	last := fixedSource{pick: func(n int) int { return n - 1 }}
	assert.Equal(t, []string{"A", "B", "C"}, Shuffle(last, []string{"A", "B", "C"}))
}

func TestShuffle_RequestsShrinkingRanges(t *testing.T) {
	var seen []int
	src := fixedSource{pick: func(n int) int {
		seen = append(seen, n)
		return 0
	}}

	Shuffle(src, []string{"1", "2", "3", "4", "5"})
	assert.Equal(t, []int{5, 4, 3, 2}, seen)
}

func TestShuffle_IsPermutation(t *testing.T) {
	src := rand.New(rand.NewSource(42))
	for i := 0; i < 200; i++ {
		values := append([]string(nil), Ranks...)
		shuffled := Shuffle(src, values)
		require.Len(t, shuffled, len(Ranks))
		assert.Equal(t, sorted(Ranks), sorted(shuffled))
	}
}

func TestShuffle_EmptyAndSingle(t *testing.T) {
	src := fixedSource{pick: func(int) int {
		t.Fatal("no random draw expected")
		return 0
	}}
	assert.Empty(t, Shuffle(src, nil))
	assert.Equal(t, []string{"A"}, Shuffle(src, []string{"A"}))
}

func TestInitialize_DefaultSuits(t *testing.T) {
	d := New(rand.New(rand.NewSource(7)))

	for i := 0; i < 50; i++ {
		cards := d.Initialize(nil)
		require.Len(t, cards, 4)
		for _, suit := range Suits {
			ranks, ok := cards[suit]
			require.True(t, ok, "missing suit %s", suit)
			assert.Len(t, ranks, 13)
			assert.Equal(t, sorted(Ranks), sorted(ranks))
		}
	}
}

func TestInitialize_CustomSuits(t *testing.T) {
	cards := New(nil).Initialize([]string{"Red", "Blue"})

	require.Len(t, cards, 2)
	assert.ElementsMatch(t, Ranks, cards["Red"])
	assert.ElementsMatch(t, Ranks, cards["Blue"])
}

func TestInitialize_DoesNotMutateRanks(t *testing.T) {
	before := append([]string(nil), Ranks...)
	New(rand.New(rand.NewSource(1))).Initialize(nil)
	assert.Equal(t, before, Ranks)
}
