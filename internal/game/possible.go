package game

import "github.com/ipvive/bridgerules/bridge"

// PossibleActionIDs enumerates every action id the seat due to act could
// legally take from the current position. During bidding this is every
// sufficient bid plus whichever calls a trial application admits; during
// play it is every unplayed card the actor could legally produce,
// honoring the led suit when the actor's full hand is known. Terminal
// stages have no possible actions.
func (d *Deal) PossibleActionIDs() []bridge.ActionID {
	switch d.stage {
	case StageBidding:
		return d.possibleCallsAndBids()
	case StagePlay:
		return d.possiblePlays()
	default:
		return nil
	}
}

func (d *Deal) possibleCallsAndBids() []bridge.ActionID {
	if !d.biddingOpen {
		// Every bid plus pass; double and redouble need a standing bid.
		ids := make([]bridge.ActionID, 0, 36)
		for id := bridge.ActionID(0); id <= 35; id++ {
			ids = append(ids, id)
		}
		return ids
	}
	var ids []bridge.ActionID
	lastBidID := bridge.BidAction(d.lastBid.bid.Level, d.lastBid.bid.Strain).ID()
	for id := lastBidID + 1; id < 35; id++ {
		ids = append(ids, id)
	}
	for call := bridge.Pass; call < bridge.NumCalls; call++ {
		id := bridge.CallAction(call).ID()
		trial := d.clone()
		trial.applyCall(call)
		if trial.stage != StageError {
			ids = append(ids, id)
		}
	}
	return ids
}

func (d *Deal) possiblePlays() []bridge.ActionID {
	actor := d.nextToAct
	if d.handCount(actor) == bridge.NumRanks {
		// Full hand known: enumerate directly.
		followSuit := -1
		if d.trick.position != 0 {
			led := d.trick.ledSuit
			if d.dealt[actor][led]&^d.played[led] != 0 {
				followSuit = int(led)
			}
		}
		var ids []bridge.ActionID
		for suit := bridge.Suit(0); suit < bridge.NumSuits; suit++ {
			if followSuit >= 0 && suit != bridge.Suit(followSuit) {
				continue
			}
			left := d.dealt[actor][suit] &^ d.played[suit]
			for rank := bridge.Rank(0); rank < bridge.NumRanks; rank++ {
				if left.has(rank) {
					ids = append(ids, bridge.PlayAction(suit, rank).ID())
				}
			}
		}
		return ids
	}
	// Partial knowledge: trial-apply every card.
	var ids []bridge.ActionID
	for suit := bridge.Suit(0); suit < bridge.NumSuits; suit++ {
		for rank := bridge.Rank(0); rank < bridge.NumRanks; rank++ {
			trial := d.clone()
			trial.applyPlay(bridge.Card{Suit: suit, Rank: rank})
			if trial.stage != StageError {
				ids = append(ids, bridge.PlayAction(suit, rank).ID())
			}
		}
	}
	return ids
}
