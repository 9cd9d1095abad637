package game

import "github.com/ipvive/bridgerules/bridge"

// handKnowledge tracks, per seat and suit, how many cards each seat is
// known to hold at minimum and may hold at maximum. The bounds let the
// engine validate plays and detect revokes even when full hands are
// unknown. Tightening is monotone and one-directional: inference raises
// a minimum, a confirmed show-out clamps a maximum. No fixed-point
// propagation across seats or suits is performed.
type handKnowledge struct {
	min [bridge.NumSeats][bridge.NumSuits]int
	max [bridge.NumSeats][bridge.NumSuits]int
}

func (k *handKnowledge) reset() {
	for seat := range k.min {
		for suit := range k.min[seat] {
			k.min[seat][suit] = 0
			k.max[seat][suit] = bridge.NumRanks
		}
	}
}

// clampMax records that the seat has shown out of the suit: they hold no
// more cards of it than already accounted for.
func (k *handKnowledge) clampMax(seat bridge.Seat, suit bridge.Suit) {
	k.max[seat][suit] = k.min[seat][suit]
}

// raiseMin raises the seat's known minimum for a suit to at least n.
func (k *handKnowledge) raiseMin(seat bridge.Seat, suit bridge.Suit, n int) {
	if n > k.min[seat][suit] {
		k.min[seat][suit] = n
	}
}

// Bounds returns the seat's known (min, max) card count for the suit.
func (d *Deal) Bounds(seat bridge.Seat, suit bridge.Suit) (min, max int) {
	return d.know.min[seat][suit], d.know.max[seat][suit]
}

// giveCard places a card in a seat's hand, either from an explicit deal
// or inferred from a play. It rejects cards dealt elsewhere, cards
// already played, a 14th card, and anything that would push the seat's
// known suit count past its maximum bound (a revoke).
func (d *Deal) giveCard(seat bridge.Seat, card bridge.Card) {
	if d.stage == StageError {
		return
	}
	for s := bridge.Seat(0); s < bridge.NumSeats; s++ {
		if d.dealt[s][card.Suit].has(card.Rank) {
			d.setError(ErrDuplicateCard)
			return
		}
	}
	if d.played[card.Suit].has(card.Rank) {
		d.setError(ErrCardAlreadyPlayed)
		return
	}
	if d.handCount(seat) >= bridge.NumRanks {
		d.setError(ErrHandOverflow)
		return
	}
	if d.dealt[seat][card.Suit].count() >= d.know.min[seat][card.Suit] {
		d.know.min[seat][card.Suit]++
		if d.know.min[seat][card.Suit] > d.know.max[seat][card.Suit] {
			d.setError(ErrRevoke)
			return
		}
	}
	d.dealt[seat][card.Suit].add(card.Rank)
}

func (d *Deal) handCount(seat bridge.Seat) int {
	n := 0
	for suit := range d.dealt[seat] {
		n += d.dealt[seat][suit].count()
	}
	return n
}

// revealFrom merges dealt cards from src into d and raises the known
// minimums to the merged per-suit counts. A negative seat reveals all
// four hands. Used when seeding restricted views with the hands an
// observer is entitled to see.
func (d *Deal) revealFrom(src *Deal, seat int) {
	for s := bridge.Seat(0); s < bridge.NumSeats; s++ {
		if seat >= 0 && s != bridge.Seat(seat) {
			continue
		}
		for suit := bridge.Suit(0); suit < bridge.NumSuits; suit++ {
			d.dealt[s][suit] |= src.dealt[s][suit]
			d.know.raiseMin(s, suit, d.dealt[s][suit].count())
		}
	}
}
