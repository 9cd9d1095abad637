package bridge

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResultTokens(t *testing.T) {
	t.Parallel()

	r := Result{Level: 3, Strain: NoTrump, Declarer: South, Doubling: Undoubled}
	assert.Equal(t, [5]string{"3", "notrump", "South", "undoubled", "="}, r.Tokens())

	r = Result{Level: 1, Strain: Hearts, Declarer: East, Doubling: Doubled, TrickDiff: -2}
	assert.Equal(t, [5]string{"1", "Hearts", "East", "doubled", "-2"}, r.Tokens())

	r = Result{Level: 7, Strain: Spades, Declarer: West, Doubling: Redoubled, TrickDiff: 1}
	assert.Equal(t, [5]string{"7", "Spades", "West", "redoubled", "+1"}, r.Tokens())

	passedOut := PassedOutResult()
	for _, token := range passedOut.Tokens() {
		assert.Equal(t, "passed_out", token)
	}
}

func TestParseResultRoundTrip(t *testing.T) {
	t.Parallel()

	results := []Result{
		{Level: 1, Strain: Clubs, Declarer: North, Doubling: Undoubled, TrickDiff: 0},
		{Level: 4, Strain: Hearts, Declarer: South, Doubling: Doubled, TrickDiff: 2},
		{Level: 6, Strain: NoTrump, Declarer: West, Doubling: Redoubled, TrickDiff: -13},
		PassedOutResult(),
	}
	for _, r := range results {
		tokens := r.Tokens()
		assert.Equal(t, r, ParseResult(tokens[:]))
	}
}

func TestParseResultTolerance(t *testing.T) {
	t.Parallel()

	// Any malformed slot collapses to passed out.
	malformed := [][]string{
		{"8", "Clubs", "South", "undoubled", "="},
		{"1", "Klubs", "South", "undoubled", "="},
		{"1", "Clubs", "Souf", "undoubled", "="},
		{"1", "Clubs", "South", "doubled?", "="},
		{"1", "Clubs", "South", "undoubled", "0"},
		{"1", "Clubs", "South", "undoubled", "3"},
		{"1", "Clubs", "South", "undoubled", "+6"},
		{"1", "Clubs", "South", "undoubled", "-14"},
		{"1", "Clubs", "South", "undoubled"},
	}
	for _, tokens := range malformed {
		assert.Equal(t, PassedOutResult(), ParseResult(tokens))
	}
}

func TestOutcomeToken(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "=", Result{TrickDiff: 0}.Outcome())
	assert.Equal(t, "+5", Result{TrickDiff: 5}.Outcome())
	assert.Equal(t, "-13", Result{TrickDiff: -13}.Outcome())
}
