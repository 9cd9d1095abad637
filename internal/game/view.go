package game

import (
	"fmt"

	"github.com/ipvive/bridgerules/bridge"
)

// View derivation replays a prefix of a deal's action history onto a
// fresh state seeded only with metadata and the hands the observer is
// entitled to see. The source deal is never mutated, so views may be
// derived concurrently with further play on the original.

// TableView is the fully public view: nothing beyond what open play has
// revealed or legally implied (dummy after the opening lead, everything
// at the end of the deal).
func TableView(d *Deal, actionIndex int) (*Deal, error) {
	return replay(d, actionIndex)
}

// KibitzerView sees all four hands at every point of the deal.
func KibitzerView(d *Deal, actionIndex int) (*Deal, error) {
	view, err := replay(d, actionIndex)
	if err != nil {
		return nil, err
	}
	view.revealFrom(d, -1)
	return view, nil
}

// ActorView sees what the seat due to act is entitled to: their own
// hand during bidding and defense. Once play has begun, either member
// of the declaring side sees the declarer's hand instead, the dummy
// being public already.
func ActorView(d *Deal, actionIndex int) (*Deal, error) {
	view, err := replay(d, actionIndex)
	if err != nil {
		return nil, err
	}
	actor, ok := view.NextToAct()
	if !ok {
		view.revealFrom(d, -1)
		return view, nil
	}
	if view.stage == StagePlay && actor.SameSide(view.declarer) {
		view.revealFrom(d, int(view.declarer))
	} else {
		view.revealFrom(d, int(actor))
	}
	return view, nil
}

// replay builds the public-information core of every view: metadata plus
// the first actionIndex actions applied to a fresh, card-free state.
func replay(d *Deal, actionIndex int) (*Deal, error) {
	if actionIndex < 0 || actionIndex > len(d.history) {
		return nil, fmt.Errorf("%w: %d of %d", ErrActionIndexOutOfRange, actionIndex, len(d.history))
	}
	view := NewDeal()
	view.BoardName = d.BoardName
	view.TableName = d.TableName
	view.Players = d.Players
	view.Vulnerability = d.Vulnerability
	view.Scoring = d.Scoring
	view.result = d.Result()
	if dealer, ok := d.Dealer(); ok {
		if err := view.SetDealer(dealer); err != nil {
			return nil, err
		}
	}
	ids := make([]bridge.ActionID, actionIndex)
	for i, entry := range d.history[:actionIndex] {
		ids[i] = entry.Action
	}
	if _, err := view.ApplyAll(ids); err != nil {
		return nil, err
	}
	if view.stage == StageScoring {
		view.revealFrom(d, -1)
	} else if view.dummyIsPublic() {
		view.revealFrom(d, int(view.declarer.Partner()))
	}
	return view, nil
}

// dummyIsPublic reports whether the opening lead has been made, after
// which the dummy's hand is face up for every observer.
func (d *Deal) dummyIsPublic() bool {
	return d.hasDeclarer && (d.trick.position != 0 || d.totalTricks() != 0)
}
