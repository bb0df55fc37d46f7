package hmm

import (
	"testing"

	"github.com/akualab/dhmm/model"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var tokens = []string{"", "a", "bb", "ccc", "dddd"}

func vocab(k int) string { return tokens[k] }

// Cost of a token is its length.
func lenCounter(token string, remaining int) int { return len(token) }

func cost(x []int) int {
	var n int
	for _, k := range x {
		n += len(tokens[k])
	}
	return n
}

func TestGenerateConstrained(t *testing.T) {

	m := makeRandHMM(t, 3, len(tokens), 12)
	for budget := 1; budget <= 12; budget++ {
		x, y, err := m.GenerateConstrained(budget, vocab, lenCounter)
		require.NoError(t, err)
		require.Len(t, y, len(x))
		assert.Equal(t, budget, cost(x))

		// Zero cost tokens are never used.
		assert.NotContains(t, x, 0)
	}
}

func TestGenerateConstrainedZeroBudget(t *testing.T) {

	m := makeRandHMM(t, 3, len(tokens), 12)
	x, y, err := m.GenerateConstrained(0, vocab, lenCounter)
	require.NoError(t, err)
	assert.Empty(t, x)
	assert.Empty(t, y)
}

// No token fits.
func TestGenerateConstrainedNoFit(t *testing.T) {

	a := [][]float64{{1}}
	o := [][]float64{{0, 0, 1, 0, 0}}
	m, err := NewModel(a, o)
	fatalIf(t, err)

	_, _, err = m.GenerateConstrained(1, vocab, lenCounter)
	assert.True(t, errors.Is(err, model.ErrBudget))

	// Budget 4 can be filled with "bb" and "bb".
	x, _, err := m.GenerateConstrained(4, vocab, lenCounter)
	require.NoError(t, err)
	assert.Equal(t, 4, cost(x))
}

func TestGenerateSeeded(t *testing.T) {

	m := makeRandHMM(t, 3, len(tokens), 13)
	for i := 0; i < 20; i++ {
		x, y, err := m.GenerateSeeded(10, 3, vocab, lenCounter)
		require.NoError(t, err)
		require.NotEmpty(t, x)
		assert.Equal(t, 3, x[0])
		assert.Len(t, y, len(x))
		assert.Equal(t, 10, cost(x))
	}

	// Seed uses the whole budget.
	x, _, err := m.GenerateSeeded(3, 3, vocab, lenCounter)
	require.NoError(t, err)
	assert.Equal(t, []int{3}, x)
}

func TestGenerateSeededBadSeed(t *testing.T) {

	m := makeRandHMM(t, 3, len(tokens), 13)

	_, _, err := m.GenerateSeeded(2, 4, vocab, lenCounter)
	assert.True(t, errors.Is(err, model.ErrBudget))

	_, _, err = m.GenerateSeeded(5, 0, vocab, lenCounter)
	assert.True(t, errors.Is(err, model.ErrBudget))

	_, _, err = m.GenerateSeeded(5, len(tokens), vocab, lenCounter)
	assert.True(t, errors.Is(err, model.ErrSymbolRange))
}

func TestStateForSymbol(t *testing.T) {

	a := [][]float64{{0.5, 0.5}, {0.5, 0.5}}
	o := [][]float64{{1, 0, 0.5}, {0, 1, 0.5}}
	m, err := NewModel(a, o, Seed(4))
	fatalIf(t, err)

	for i := 0; i < 20; i++ {
		s, err := m.StateForSymbol(0)
		fatalIf(t, err)
		assert.Equal(t, 0, s)
		s, err = m.StateForSymbol(1)
		fatalIf(t, err)
		assert.Equal(t, 1, s)
	}

	var count [2]int
	for i := 0; i < 2000; i++ {
		s, err := m.StateForSymbol(2)
		fatalIf(t, err)
		count[s]++
	}
	assert.InDelta(t, 1000, count[0], 150)

	_, err = m.StateForSymbol(-1)
	assert.True(t, errors.Is(err, model.ErrSymbolRange))
}

// A symbol that no state emits has no valid state.
func TestStateForSymbolNeverEmitted(t *testing.T) {

	a := [][]float64{{0.5, 0.5}, {0.5, 0.5}}
	o := [][]float64{{1, 0}, {1, 0}}
	m, err := NewModel(a, o)
	fatalIf(t, err)

	_, err = m.StateForSymbol(1)
	assert.True(t, errors.Is(err, model.ErrDistribution))
}
