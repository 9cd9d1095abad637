package bridge

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidActionID reports an action id outside the 0..90 range.
var ErrInvalidActionID = errors.New("invalid action id")

// ActionID is the compact integer encoding of an action:
// 0..34 bids (level-major, strain-minor), 35..37 pass/double/redouble,
// 38..90 plays (suit-major, rank-minor).
type ActionID int

const (
	firstBidID  ActionID = 0
	firstCallID ActionID = 35
	firstPlayID ActionID = 38

	// NumActions is the number of distinct action ids (0..90).
	NumActions = 91

	// MaxDealActions bounds the history of one deal: the longest possible
	// auction (35 bids or calls across 9 rounds) plus 52 plays.
	MaxDealActions = 35*9 + 52
)

// ActionKind discriminates the variants of an Action.
type ActionKind int

const (
	ActionBid ActionKind = iota
	ActionCall
	ActionPlay
)

// Action is the structured form of an action id.
type Action struct {
	Kind ActionKind
	Bid  Bid  // valid when Kind == ActionBid
	Call Call // valid when Kind == ActionCall
	Card Card // valid when Kind == ActionPlay
}

// BidAction builds a bid action.
func BidAction(level Level, strain Strain) Action {
	return Action{Kind: ActionBid, Bid: Bid{Level: level, Strain: strain}}
}

// CallAction builds a pass, double or redouble action.
func CallAction(call Call) Action {
	return Action{Kind: ActionCall, Call: call}
}

// PlayAction builds a card-play action.
func PlayAction(suit Suit, rank Rank) Action {
	return Action{Kind: ActionPlay, Card: Card{Suit: suit, Rank: rank}}
}

// ID encodes the action as its compact id.
func (a Action) ID() ActionID {
	switch a.Kind {
	case ActionBid:
		return ActionID(int(a.Bid.Level-MinLevel)*NumStrains + int(a.Bid.Strain))
	case ActionCall:
		return firstCallID + ActionID(a.Call)
	default:
		return firstPlayID + ActionID(a.Card.Index())
	}
}

// DecodeAction maps an action id back to its structured form. Ids outside
// 0..90 fail with ErrInvalidActionID; no legality checking is done.
func DecodeAction(id ActionID) (Action, error) {
	switch {
	case id >= firstBidID && id < firstCallID:
		return BidAction(MinLevel+Level(id/NumStrains), Strain(id%NumStrains)), nil
	case id >= firstCallID && id < firstPlayID:
		return CallAction(Call(id - firstCallID)), nil
	case id >= firstPlayID && id < NumActions:
		card := CardFromIndex(int(id - firstPlayID))
		return PlayAction(card.Suit, card.Rank), nil
	default:
		return Action{}, fmt.Errorf("%w: %d", ErrInvalidActionID, id)
	}
}

// Token returns the action's exchange token: "1_Clubs" for bids, the bare
// call word for calls, "Club_Two" for plays.
func (a Action) Token() string {
	switch a.Kind {
	case ActionBid:
		return a.Bid.String()
	case ActionCall:
		return a.Call.String()
	default:
		return a.Card.Token()
	}
}

func (a Action) String() string {
	return a.Token()
}

// ParseActionToken is the inverse of Token.
func ParseActionToken(token string) (Action, error) {
	if call, err := ParseCall(token); err == nil {
		return CallAction(call), nil
	}
	head, tail, ok := strings.Cut(token, "_")
	if !ok {
		return Action{}, fmt.Errorf("invalid action token %q", token)
	}
	if level, err := ParseLevel(head); err == nil {
		strain, err := ParseStrain(tail)
		if err != nil {
			return Action{}, fmt.Errorf("invalid bid token %q", token)
		}
		return BidAction(level, strain), nil
	}
	suit, err := ParseSuit(head)
	if err != nil {
		return Action{}, fmt.Errorf("invalid action token %q", token)
	}
	rank, err := ParseRank(tail)
	if err != nil {
		return Action{}, fmt.Errorf("invalid play token %q", token)
	}
	return PlayAction(suit, rank), nil
}
