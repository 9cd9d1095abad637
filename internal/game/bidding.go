package game

import (
	"fmt"

	"github.com/ipvive/bridgerules/bridge"
)

// applyBid handles a (level, strain) bid by the seat due to act.
func (d *Deal) applyBid(bid bridge.Bid) {
	if !d.checkStage(StageBidding, "bid") {
		return
	}
	if d.lastBid.set && !bid.Beats(d.lastBid.bid) {
		d.setError(ErrInsufficientBid)
		return
	}
	bidder := d.nextToAct
	d.lastBid = lastBid{set: true, seat: bidder, bid: bid, doubling: bridge.Undoubled}
	// The bidder is first of the partnership to mention the strain
	// unless the partner already has.
	if !d.firstToMention[bidder.Partner()][bid.Strain] {
		d.firstToMention[bidder][bid.Strain] = true
	}
	d.biddingOpen = true
	d.passPosition = 0
	d.nextToAct = bidder.Next()
}

// applyCall handles pass, double and redouble.
func (d *Deal) applyCall(call bridge.Call) {
	if !d.checkStage(StageBidding, "call") {
		return
	}
	caller := d.nextToAct
	switch call {
	case bridge.Pass:
		d.applyPass(caller)
	case bridge.Double:
		if !d.lastBid.set || d.lastBid.doubling != bridge.Undoubled {
			d.setError(fmt.Errorf("%w: double with no undoubled bid standing", ErrWrongStage))
			return
		}
		if d.lastBid.seat.SameSide(caller) {
			d.setError(ErrDoubleOfOwnSide)
			return
		}
		d.lastBid.doubling = bridge.Doubled
		d.passPosition = 0
		d.nextToAct = caller.Next()
	case bridge.Redouble:
		if !d.lastBid.set || d.lastBid.doubling != bridge.Doubled {
			d.setError(fmt.Errorf("%w: redouble with no doubled bid standing", ErrWrongStage))
			return
		}
		if !d.lastBid.seat.SameSide(caller) {
			d.setError(ErrRedoubleOfOtherSide)
			return
		}
		d.lastBid.doubling = bridge.Redoubled
		d.passPosition = 0
		d.nextToAct = caller.Next()
	}
}

func (d *Deal) applyPass(caller bridge.Seat) {
	switch {
	case d.passPosition == 3:
		// Fourth pass with no bid ever made: the deal passes out.
		d.stage = StageScoring
		d.passPosition = 0
		if d.result == nil {
			r := bridge.PassedOutResult()
			d.result = &r
		}
	case d.lastBid.set && d.passPosition == 2:
		// Third consecutive pass after a bid: the auction is over.
		d.stage = StagePlay
		d.passPosition = 0
		d.trick = trickState{}
		declarer := d.lastBid.seat
		if !d.firstToMention[declarer][d.lastBid.bid.Strain] {
			declarer = declarer.Partner()
		}
		d.declarer = declarer
		d.hasDeclarer = true
		d.nextToAct = declarer.Next()
	default:
		d.passPosition++
		d.nextToAct = caller.Next()
	}
}
