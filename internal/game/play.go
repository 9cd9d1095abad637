package game

import "github.com/ipvive/bridgerules/bridge"

// applyPlay handles one card played to the current trick by the seat due
// to act. The card need not be known to belong to the actor beforehand:
// in partial-information play it is inferred into their hand, subject to
// the knowledge bounds (see giveCard).
func (d *Deal) applyPlay(card bridge.Card) {
	if !d.checkStage(StagePlay, "play") {
		return
	}
	seat := d.nextToAct
	if d.played[card.Suit].has(card.Rank) {
		d.setError(ErrCardAlreadyPlayed)
		return
	}
	if d.trick.position != 0 && card.Suit != d.trick.ledSuit {
		// Not following suit. If the actor is known to still hold a
		// card of the led suit this is a revoke; otherwise the
		// show-out tightens their maximum for the led suit.
		led := d.trick.ledSuit
		if d.dealt[seat][led]&^d.played[led] != 0 {
			d.setError(ErrRevoke)
			return
		}
		d.know.clampMax(seat, led)
	}
	if !d.dealt[seat][card.Suit].has(card.Rank) {
		d.giveCard(seat, card)
		if d.stage == StageError {
			return
		}
	}

	d.played[card.Suit].add(card.Rank)
	if d.trick.position == 0 {
		d.trick.ledSuit = card.Suit
	}
	if d.trick.position == 0 || d.strongestSoFar(card) {
		d.trick.winningSeat = seat
		d.trick.winningSuit = card.Suit
		d.trick.winningRank = card.Rank
	}

	if d.trick.position < 3 {
		d.trick.position++
		d.nextToAct = seat.Next()
		return
	}
	d.trick.position = 0
	d.nextToAct = d.trick.winningSeat
	d.tricksTaken[d.trick.winningSeat]++
	if d.totalTricks() == 13 {
		d.stage = StageScoring
		d.finalize()
	}
}

// strongestSoFar reports whether the card beats the running best of the
// current trick: trump beats any non-trump, otherwise only a higher rank
// of the winning suit wins.
func (d *Deal) strongestSoFar(card bridge.Card) bool {
	if trump, ok := d.lastBid.bid.Strain.TrumpSuit(); ok {
		if card.Suit == trump && d.trick.winningSuit != trump {
			return true
		}
	}
	if card.Suit != d.trick.winningSuit {
		return false
	}
	return card.Rank > d.trick.winningRank
}

// TrickSuit returns the suit led to the current trick; ok is false
// before the opening lead of a trick.
func (d *Deal) TrickSuit() (bridge.Suit, bool) {
	if d.stage != StagePlay || d.trick.position == 0 {
		return 0, false
	}
	return d.trick.ledSuit, true
}

// TrickWinner returns the seat currently winning the trick in progress;
// ok is false when no card of the trick has been played.
func (d *Deal) TrickWinner() (bridge.Seat, bool) {
	if d.stage != StagePlay || d.trick.position == 0 {
		return 0, false
	}
	return d.trick.winningSeat, true
}
