package score

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ipvive/bridgerules/bridge"
)

func TestTableScore(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		result bridge.Result
		vuln   bridge.Vulnerability
		ns, ew int // 0 means nil expected on that side
	}{
		{
			name:   "1NT made non-vulnerable",
			result: bridge.Result{Level: 1, Strain: bridge.NoTrump, Declarer: bridge.South},
			vuln:   bridge.VulnerableNone,
			ns:     90,
		},
		{
			name:   "6H made vulnerable",
			result: bridge.Result{Level: 6, Strain: bridge.Hearts, Declarer: bridge.South},
			vuln:   bridge.VulnerableAll,
			ns:     1430,
		},
		{
			name:   "1H doubled down two vulnerable",
			result: bridge.Result{Level: 1, Strain: bridge.Hearts, Declarer: bridge.South, Doubling: bridge.Doubled, TrickDiff: -2},
			vuln:   bridge.VulnerableAll,
			ew:     500,
		},
		{
			name:   "3NT game non-vulnerable",
			result: bridge.Result{Level: 3, Strain: bridge.NoTrump, Declarer: bridge.South},
			vuln:   bridge.VulnerableEW,
			ns:     400,
		},
		{
			name:   "2C partscore with overtrick",
			result: bridge.Result{Level: 2, Strain: bridge.Clubs, Declarer: bridge.East, TrickDiff: 1},
			vuln:   bridge.VulnerableNone,
			ew:     110,
		},
		{
			name:   "4S game vulnerable",
			result: bridge.Result{Level: 4, Strain: bridge.Spades, Declarer: bridge.North},
			vuln:   bridge.VulnerableNS,
			ns:     620,
		},
		{
			name:   "7NT redoubled made vulnerable",
			result: bridge.Result{Level: 7, Strain: bridge.NoTrump, Declarer: bridge.West, Doubling: bridge.Redoubled},
			vuln:   bridge.VulnerableAll,
			ew:     2980,
		},
		{
			name:   "down one undoubled non-vulnerable",
			result: bridge.Result{Level: 3, Strain: bridge.NoTrump, Declarer: bridge.South, TrickDiff: -1},
			vuln:   bridge.VulnerableNone,
			ew:     50,
		},
		{
			name:   "down five doubled non-vulnerable",
			result: bridge.Result{Level: 4, Strain: bridge.Hearts, Declarer: bridge.West, Doubling: bridge.Doubled, TrickDiff: -5},
			vuln:   bridge.VulnerableNone,
			ns:     1100,
		},
		{
			name:   "2S doubled into game",
			result: bridge.Result{Level: 2, Strain: bridge.Spades, Declarer: bridge.North, Doubling: bridge.Doubled},
			vuln:   bridge.VulnerableNone,
			ns:     470,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ns, ew := TableScore(tt.result, tt.vuln)
			if tt.ns != 0 {
				require.NotNil(t, ns)
				assert.Equal(t, tt.ns, *ns)
				assert.Nil(t, ew)
			} else {
				require.NotNil(t, ew)
				assert.Equal(t, tt.ew, *ew)
				assert.Nil(t, ns)
			}
		})
	}
}

func TestTableScorePassedOut(t *testing.T) {
	t.Parallel()

	ns, ew := TableScore(bridge.PassedOutResult(), bridge.VulnerableAll)
	require.NotNil(t, ns)
	require.NotNil(t, ew)
	assert.Zero(t, *ns)
	assert.Zero(t, *ew)
}

func TestSignedTableScore(t *testing.T) {
	t.Parallel()

	made := bridge.Result{Level: 1, Strain: bridge.NoTrump, Declarer: bridge.South}
	assert.Equal(t, 90, SignedTableScore(made, bridge.VulnerableNone))

	down := bridge.Result{Level: 1, Strain: bridge.Hearts, Declarer: bridge.South, Doubling: bridge.Doubled, TrickDiff: -2}
	assert.Equal(t, -500, SignedTableScore(down, bridge.VulnerableAll))

	assert.Zero(t, SignedTableScore(bridge.PassedOutResult(), bridge.VulnerableNone))
}

func TestComparisonScoreIMPs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		diff int
		want int
	}{
		{0, 0},
		{10, 0},
		{250, 6},
		{-20, -1},
		{3990, 23},
		{20, 1},
		{-4999, -23},
		// The top band is unbounded.
		{5000, 24},
		{10580, 24},
		{-10580, -24},
	}
	for _, tt := range tests {
		got, err := ComparisonScore(tt.diff, bridge.IMPs)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "diff %d", tt.diff)
	}
}

func TestComparisonScoreMatchpoints(t *testing.T) {
	t.Parallel()

	got, err := ComparisonScore(420, bridge.Matchpoints)
	require.NoError(t, err)
	assert.Equal(t, 1, got)

	got, err = ComparisonScore(-10, bridge.Matchpoints)
	require.NoError(t, err)
	assert.Equal(t, -1, got)

	got, err = ComparisonScore(0, bridge.Matchpoints)
	require.NoError(t, err)
	assert.Zero(t, got)
}

func TestComparisonScoreTotalPoints(t *testing.T) {
	t.Parallel()

	got, err := ComparisonScore(-730, bridge.TotalPoints)
	require.NoError(t, err)
	assert.Equal(t, -730, got)
}

func TestComparisonScoreUnknownMethod(t *testing.T) {
	t.Parallel()

	_, err := ComparisonScore(100, bridge.Scoring(42))
	assert.ErrorIs(t, err, ErrUnknownScoringMethod)
}

func TestBoardComparisons(t *testing.T) {
	t.Parallel()

	game := bridge.Result{Level: 4, Strain: bridge.Spades, Declarer: bridge.North}
	partscore := bridge.Result{Level: 2, Strain: bridge.Spades, Declarer: bridge.North, TrickDiff: 2}

	// Table one bids the vulnerable game, table two stops low with the
	// same ten tricks: 620 vs 170, a 10 IMP swing.
	comparisons, err := BoardComparisons(
		[]*bridge.Result{&game, &partscore},
		bridge.VulnerableNS,
		bridge.IMPs,
	)
	require.NoError(t, err)
	assert.Equal(t, []int{10, -10}, comparisons)
}

func TestBoardComparisonsSkipsMissingResults(t *testing.T) {
	t.Parallel()

	made := bridge.Result{Level: 3, Strain: bridge.NoTrump, Declarer: bridge.South}
	comparisons, err := BoardComparisons(
		[]*bridge.Result{&made, nil, &made},
		bridge.VulnerableNone,
		bridge.IMPs,
	)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 0, 0}, comparisons)
}
