package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ipvive/bridgerules/bridge"
)

func play(suit bridge.Suit, rank bridge.Rank) bridge.ActionID {
	return bridge.PlayAction(suit, rank).ID()
}

// startPlay runs a minimal auction leaving declarer South in the given
// strain, with West on lead.
func startPlay(t *testing.T, d *Deal, strain bridge.Strain) {
	t.Helper()
	_, err := d.ApplyAll([]bridge.ActionID{
		bid(1, strain),
		call(bridge.Pass),
		call(bridge.Pass),
		call(bridge.Pass),
	})
	require.NoError(t, err)
	require.Equal(t, StagePlay, d.Stage())
}

func TestTrickWinnerFollowsSuit(t *testing.T) {
	t.Parallel()

	d := NewDeal()
	require.NoError(t, d.SetDealer(bridge.South))
	startPlay(t, d, bridge.NoTrump)

	// West leads a low heart, North plays the highest heart of the
	// trick, the others discard.
	_, err := d.ApplyAll([]bridge.ActionID{
		play(bridge.Heart, bridge.Two),
		play(bridge.Heart, bridge.King),
		play(bridge.Spade, bridge.Ace), // discard, does not win at no-trump
		play(bridge.Heart, bridge.Queen),
	})
	require.NoError(t, err)

	next, ok := d.NextToAct()
	require.True(t, ok)
	assert.Equal(t, bridge.North, next)
	assert.Equal(t, 1, d.TricksTaken()[bridge.North])
}

func TestTrumpBeatsLedSuit(t *testing.T) {
	t.Parallel()

	d := NewDeal()
	require.NoError(t, d.SetDealer(bridge.South))
	startPlay(t, d, bridge.Clubs)

	_, err := d.ApplyAll([]bridge.ActionID{
		play(bridge.Heart, bridge.Ace),
		play(bridge.Club, bridge.Two), // North ruffs
		play(bridge.Heart, bridge.King),
		play(bridge.Heart, bridge.Queen),
	})
	require.NoError(t, err)

	next, ok := d.NextToAct()
	require.True(t, ok)
	assert.Equal(t, bridge.North, next)
}

func TestHigherTrumpWinsTrick(t *testing.T) {
	t.Parallel()

	d := NewDeal()
	require.NoError(t, d.SetDealer(bridge.South))
	startPlay(t, d, bridge.Spades)

	_, err := d.ApplyAll([]bridge.ActionID{
		play(bridge.Spade, bridge.Ten),
		play(bridge.Spade, bridge.Two),
		play(bridge.Spade, bridge.Jack),
		play(bridge.Spade, bridge.Ace),
	})
	require.NoError(t, err)

	next, ok := d.NextToAct()
	require.True(t, ok)
	assert.Equal(t, bridge.South, next)
}

func TestTrickWinnerAccessors(t *testing.T) {
	t.Parallel()

	d := NewDeal()
	require.NoError(t, d.SetDealer(bridge.South))
	startPlay(t, d, bridge.NoTrump)

	_, ok := d.TrickSuit()
	assert.False(t, ok)

	require.NoError(t, d.Apply(play(bridge.Diamond, bridge.Nine)))

	suit, ok := d.TrickSuit()
	require.True(t, ok)
	assert.Equal(t, bridge.Diamond, suit)

	winner, ok := d.TrickWinner()
	require.True(t, ok)
	assert.Equal(t, bridge.West, winner)
}

func TestPlayingSameCardTwice(t *testing.T) {
	t.Parallel()

	d := NewDeal()
	require.NoError(t, d.SetDealer(bridge.South))
	startPlay(t, d, bridge.NoTrump)

	require.NoError(t, d.Apply(play(bridge.Club, bridge.Five)))
	err := d.Apply(play(bridge.Club, bridge.Five))
	assert.ErrorIs(t, err, ErrCardAlreadyPlayed)
}

func TestRevokeWithKnownCardOfLedSuit(t *testing.T) {
	t.Parallel()

	d := NewDeal()
	// North is known to hold a club.
	require.NoError(t, d.GiveCard(bridge.North, bridge.Card{Suit: bridge.Club, Rank: bridge.Three}))
	require.NoError(t, d.GiveCard(bridge.North, bridge.Card{Suit: bridge.Heart, Rank: bridge.Two}))
	require.NoError(t, d.SetDealer(bridge.South))
	startPlay(t, d, bridge.NoTrump)

	require.NoError(t, d.Apply(play(bridge.Club, bridge.Two))) // West leads a club
	err := d.Apply(play(bridge.Heart, bridge.Two)) // North discards while holding one
	assert.ErrorIs(t, err, ErrRevoke)
}

func TestRevokeInferredFromEarlierShowOut(t *testing.T) {
	t.Parallel()

	d := NewDeal()
	require.NoError(t, d.SetDealer(bridge.South))
	startPlay(t, d, bridge.Clubs)

	// Trick one: North shows out of clubs, which fixes their club count.
	_, err := d.ApplyAll([]bridge.ActionID{
		play(bridge.Club, bridge.Two),      // West leads
		play(bridge.Diamond, bridge.Two),   // North shows out of clubs
		play(bridge.Club, bridge.Three),    // East
		play(bridge.Club, bridge.Four),     // South wins the trick
	})
	require.NoError(t, err)

	minClubs, maxClubs := d.Bounds(bridge.North, bridge.Club)
	assert.Equal(t, 0, minClubs)
	assert.Equal(t, 0, maxClubs)

	// South on lead. On the next trick North produces a club,
	// contradicting the show-out.
	_, err = d.ApplyAll([]bridge.ActionID{
		play(bridge.Club, bridge.Five),   // South
		play(bridge.Diamond, bridge.Three), // West
		play(bridge.Club, bridge.Six),    // North revokes against own show-out
	})
	assert.ErrorIs(t, err, ErrRevoke)
	assert.Equal(t, StageError, d.Stage())
}

func TestShowOutClampsMaximum(t *testing.T) {
	t.Parallel()

	d := NewDeal()
	require.NoError(t, d.SetDealer(bridge.South))
	startPlay(t, d, bridge.NoTrump)

	minBefore, maxBefore := d.Bounds(bridge.North, bridge.Spade)
	assert.Equal(t, 0, minBefore)
	assert.Equal(t, 13, maxBefore)

	require.NoError(t, d.Apply(play(bridge.Spade, bridge.Two)))
	require.NoError(t, d.Apply(play(bridge.Heart, bridge.Two))) // North discards

	_, maxAfter := d.Bounds(bridge.North, bridge.Spade)
	assert.Equal(t, 0, maxAfter)
}

func TestInferredCardsJoinHand(t *testing.T) {
	t.Parallel()

	d := NewDeal()
	require.NoError(t, d.SetDealer(bridge.South))
	startPlay(t, d, bridge.NoTrump)

	require.NoError(t, d.Apply(play(bridge.Diamond, bridge.Queen)))
	assert.Equal(t, []bridge.Card{{Suit: bridge.Diamond, Rank: bridge.Queen}}, d.Hand(bridge.West))

	minDiamonds, _ := d.Bounds(bridge.West, bridge.Diamond)
	assert.Equal(t, 1, minDiamonds)
}
