// Package game implements the deal state machine for duplicate contract
// bridge: bidding and play legality, contract and declarer derivation,
// trick taking, revoke detection under partial information, and
// restricted-information view derivation.
package game

import (
	"errors"
	"fmt"

	"github.com/ipvive/bridgerules/bridge"
)

// Stage is the coarse lifecycle phase of a deal. The zero value is the
// uninitialized stage before a dealer has been set.
type Stage int

const (
	StageNone Stage = iota
	StageBidding
	StagePlay
	StageScoring
	StageError
)

func (s Stage) String() string {
	return [...]string{"none", "bidding", "play", "scoring", "error"}[s]
}

// Sticky error values. Each freezes the deal when set; see Deal.Err.
var (
	ErrDuplicateCard              = errors.New("duplicate card")
	ErrCardAlreadyPlayed          = errors.New("card already played")
	ErrHandOverflow               = errors.New("14 cards in hand")
	ErrRevoke                     = errors.New("revoke")
	ErrInsufficientBid            = errors.New("insufficient bid")
	ErrWrongStage                 = errors.New("wrong stage for action")
	ErrDoubleOfOwnSide            = errors.New("double of own side's contract")
	ErrRedoubleOfOtherSide        = errors.New("redouble of other side's contract")
	ErrDealerAlreadySet           = errors.New("dealer already set")
	ErrClaimBeforeBiddingFinished = errors.New("claim before bidding finished")
	ErrClaimResultMismatch        = errors.New("claim/result mismatch")
	ErrActionAfterDealFinished    = errors.New("action after deal finished")
	ErrActionIndexOutOfRange      = errors.New("action index out of range")
)

// HistoryEntry is one attempted action: who acted and the action id.
type HistoryEntry struct {
	Actor  bridge.Seat
	Action bridge.ActionID
}

// Annotation is free text attached to a point in the action history:
// either an explanation of the prior action or kibitzer commentary.
type Annotation struct {
	ActionIndex     int
	Explanation     string
	KibitzerComment string
}

// lastBid tracks the standing bid of the auction and its doubling state.
type lastBid struct {
	set      bool
	seat     bridge.Seat
	bid      bridge.Bid
	doubling bridge.Doubling
}

// trickState tracks progress through the current trick.
type trickState struct {
	position    int // 0..3; 0 means the next play leads
	ledSuit     bridge.Suit
	winningSeat bridge.Seat
	winningSuit bridge.Suit
	winningRank bridge.Rank
}

// rankSet is a bitset of ranks within one suit.
type rankSet uint16

func (rs rankSet) has(r bridge.Rank) bool { return rs&(1<<uint(r)) != 0 }

func (rs *rankSet) add(r bridge.Rank) { *rs |= 1 << uint(r) }

func (rs rankSet) count() int {
	n := 0
	for rs != 0 {
		rs &= rs - 1
		n++
	}
	return n
}

// Deal holds all mutable state for one deal of bridge, from the opening
// call through the last card played. It is mutated only through the
// action-application API and freezes permanently once an error is set.
// A Deal is not safe for concurrent use; independent deals are.
type Deal struct {
	// Metadata owned by the surrounding application.
	BoardName     string
	TableName     string
	Players       [bridge.NumSeats]string
	Vulnerability bridge.Vulnerability
	Scoring       bridge.Scoring

	stage     Stage
	err       error
	dealer    bridge.Seat
	dealerSet bool
	nextToAct bridge.Seat // valid during StageBidding and StagePlay

	dealt  [bridge.NumSeats][bridge.NumSuits]rankSet
	played [bridge.NumSuits]rankSet
	know   handKnowledge

	biddingOpen    bool
	firstToMention [bridge.NumSeats][bridge.NumStrains]bool
	lastBid        lastBid
	passPosition   int

	declarer    bridge.Seat
	hasDeclarer bool
	trick       trickState
	tricksTaken [bridge.NumSeats]int

	result *bridge.Result

	history     []HistoryEntry
	annotations []Annotation
}

// NewDeal returns an uninitialized deal: no dealer, no cards, all hand
// knowledge bounds at their widest (0..13 per seat and suit).
func NewDeal() *Deal {
	d := &Deal{}
	d.know.reset()
	return d
}

// Stage returns the deal's lifecycle phase.
func (d *Deal) Stage() Stage { return d.stage }

// Err returns the sticky error, nil unless the stage is StageError.
func (d *Deal) Err() error { return d.err }

// Finished reports whether the deal has reached its terminal scoring stage.
func (d *Deal) Finished() bool { return d.stage == StageScoring }

// NextToAct returns the seat due to act; ok is false in terminal stages
// and before the dealer is set.
func (d *Deal) NextToAct() (bridge.Seat, bool) {
	if d.stage == StageBidding || d.stage == StagePlay {
		return d.nextToAct, true
	}
	return 0, false
}

// Dealer returns the dealer seat; ok is false before SetDealer.
func (d *Deal) Dealer() (bridge.Seat, bool) {
	return d.dealer, d.dealerSet
}

// SetDealer starts the auction with the given seat to act first.
// Setting a dealer twice is an error.
func (d *Deal) SetDealer(seat bridge.Seat) error {
	if d.stage == StageError {
		return d.err
	}
	if d.dealerSet {
		d.setError(ErrDealerAlreadySet)
		return d.err
	}
	d.dealer = seat
	d.dealerSet = true
	d.nextToAct = seat
	d.stage = StageBidding
	return nil
}

// Contract returns the final contract once bidding has ended with a bid;
// ok is false during bidding and for passed-out deals.
func (d *Deal) Contract() (bid bridge.Bid, declarer bridge.Seat, doubling bridge.Doubling, ok bool) {
	if d.stage != StagePlay && d.stage != StageScoring {
		return bridge.Bid{}, 0, 0, false
	}
	if !d.hasDeclarer {
		return bridge.Bid{}, 0, 0, false
	}
	return d.lastBid.bid, d.declarer, d.lastBid.doubling, true
}

// Result returns the deal's five-slot result summary, nil until the deal
// finishes or a result is set from an exchanged record.
func (d *Deal) Result() *bridge.Result {
	if d.result == nil {
		return nil
	}
	r := *d.result
	return &r
}

// SetResult records an externally agreed result, replacing any prior one.
func (d *Deal) SetResult(r bridge.Result) {
	d.result = &r
}

// TricksTaken returns the per-seat count of tricks won so far.
func (d *Deal) TricksTaken() [bridge.NumSeats]int {
	return d.tricksTaken
}

// Hand returns the cards known to be dealt to the seat, played or not,
// in suit-then-rank order.
func (d *Deal) Hand(seat bridge.Seat) []bridge.Card {
	var cards []bridge.Card
	for suit := bridge.Suit(0); suit < bridge.NumSuits; suit++ {
		for rank := bridge.Rank(0); rank < bridge.NumRanks; rank++ {
			if d.dealt[seat][suit].has(rank) {
				cards = append(cards, bridge.Card{Suit: suit, Rank: rank})
			}
		}
	}
	return cards
}

// History returns a copy of the attempted-action history.
func (d *Deal) History() []HistoryEntry {
	return append([]HistoryEntry(nil), d.history...)
}

// NumActions returns the length of the attempted-action history.
func (d *Deal) NumActions() int { return len(d.history) }

// AddExplanation attaches a rationale for the most recent action.
func (d *Deal) AddExplanation(text string) {
	d.annotations = append(d.annotations, Annotation{ActionIndex: len(d.history), Explanation: text})
}

// AddCommentary attaches free-form kibitzer commentary at the current
// point in the history.
func (d *Deal) AddCommentary(text string) {
	d.annotations = append(d.annotations, Annotation{ActionIndex: len(d.history), KibitzerComment: text})
}

// AddAnnotation records an annotation at an explicit action index, as
// when reattaching annotations from an exchanged record.
func (d *Deal) AddAnnotation(ann Annotation) {
	d.annotations = append(d.annotations, ann)
}

// Annotations returns a copy of the recorded annotations.
func (d *Deal) Annotations() []Annotation {
	return append([]Annotation(nil), d.annotations...)
}

// GiveCard assigns a card to a seat's hand, checking duplicate dealing,
// replay of played cards, hand size and the seat's knowledge bounds.
func (d *Deal) GiveCard(seat bridge.Seat, card bridge.Card) error {
	d.giveCard(seat, card)
	return d.err
}

// Apply validates and applies a single action for the seat currently due
// to act. On a rules violation the deal enters the sticky error state and
// the error is returned.
func (d *Deal) Apply(id bridge.ActionID) error {
	_, err := d.ApplyAll([]bridge.ActionID{id})
	return err
}

// ApplyAll applies a batch of actions sequentially, short-circuiting on
// the first error. It returns how many actions were applied; the action
// that produced an error is recorded in the history but not counted.
func (d *Deal) ApplyAll(ids []bridge.ActionID) (int, error) {
	for i, id := range ids {
		if d.stage == StageError {
			return i, d.err
		}
		if d.stage == StageScoring {
			d.setError(ErrActionAfterDealFinished)
			return i, d.err
		}
		d.history = append(d.history, HistoryEntry{Actor: d.nextToAct, Action: id})
		action, err := bridge.DecodeAction(id)
		if err != nil {
			d.setError(err)
			return i, d.err
		}
		switch action.Kind {
		case bridge.ActionBid:
			d.applyBid(action.Bid)
		case bridge.ActionCall:
			d.applyCall(action.Call)
		case bridge.ActionPlay:
			d.applyPlay(action.Card)
		}
		if d.stage == StageError {
			return i, d.err
		}
	}
	return len(ids), nil
}

// Claim asserts the total number of tricks won by the declaring side,
// ending play. If a result was already established by full play the
// claim must match it exactly.
func (d *Deal) Claim(totalTricks int) error {
	if d.stage == StageError {
		return d.err
	}
	d.acceptClaim(totalTricks)
	return d.err
}

func (d *Deal) acceptClaim(totalTricks int) {
	if !d.hasDeclarer {
		d.setError(ErrClaimBeforeBiddingFinished)
		return
	}
	d.stage = StageScoring
	contracted := int(d.lastBid.bid.Level) + 6
	r := bridge.Result{
		Level:     d.lastBid.bid.Level,
		Strain:    d.lastBid.bid.Strain,
		Declarer:  d.declarer,
		Doubling:  d.lastBid.doubling,
		TrickDiff: totalTricks - contracted,
	}
	if d.result != nil {
		if *d.result != r {
			d.setError(ErrClaimResultMismatch)
		}
		return
	}
	d.result = &r
}

// finalize derives the result from full play once all 13 tricks are in.
func (d *Deal) finalize() {
	total := 0
	for _, seat := range bridge.Seats() {
		if seat.SameSide(d.declarer) {
			total += d.tricksTaken[seat]
		}
	}
	d.acceptClaim(total)
}

func (d *Deal) totalTricks() int {
	total := 0
	for _, n := range d.tricksTaken {
		total += n
	}
	return total
}

func (d *Deal) setError(err error) {
	if d.stage != StageError {
		d.stage = StageError
		d.err = err
	}
}

// checkStage gates an action on the current stage, mirroring the sticky
// error discipline: a mismatch freezes the deal with context.
func (d *Deal) checkStage(want Stage, context string) bool {
	if d.stage == want {
		return true
	}
	d.setError(fmt.Errorf("%w: %s during %s", ErrWrongStage, context, d.stage))
	return false
}

// clone deep-copies the deal for trial application and view replay.
func (d *Deal) clone() *Deal {
	c := *d
	c.history = append([]HistoryEntry(nil), d.history...)
	c.annotations = append([]Annotation(nil), d.annotations...)
	if d.result != nil {
		r := *d.result
		c.result = &r
	}
	return &c
}
