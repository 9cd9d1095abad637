// Package gamerecord serializes finished and in-progress deals to the
// exchanged played-game representation and reconstructs deals from it by
// replaying the recorded action sequence.
package gamerecord

import (
	"encoding/json"
	"fmt"

	"github.com/ipvive/bridgerules/bridge"
	"github.com/ipvive/bridgerules/internal/game"
)

// Record is one table's play of one board: the board conditions, the
// players, every action taken, annotations, and the result summary.
type Record struct {
	Players     map[string]string `json:"players"`
	Board       Board             `json:"board"`
	Actions     []string          `json:"actions"`
	Annotations []Annotation      `json:"annotations,omitempty"`
	Result      Result            `json:"result"`
	TableName   string            `json:"table_name,omitempty"`
}

// Board describes the deal conditions shared by every table that plays it.
type Board struct {
	VulnerableSeats   []string            `json:"vulnerable_seat"`
	BoardSequenceName string              `json:"board_sequence_name"`
	Scoring           string              `json:"scoring"`
	Dealer            string              `json:"dealer"`
	DealtCards        map[string][]string `json:"dealt_cards"`
}

// Annotation is free text attached to a point in the action sequence.
type Annotation struct {
	ActionIndex     int    `json:"action_index"`
	Explanation     string `json:"explanation,omitempty"`
	KibitzerComment string `json:"kibitzer_comment,omitempty"`
}

// Result carries the five-slot summary token, empty when the table has
// no result yet.
type Result struct {
	SummaryToken []string `json:"summary_token,omitempty"`
}

// Marshal encodes the record as JSON.
func (r *Record) Marshal() ([]byte, error) {
	return json.Marshal(r)
}

// Unmarshal decodes a JSON record.
func Unmarshal(data []byte) (*Record, error) {
	var r Record
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("decode game record: %w", err)
	}
	return &r, nil
}

// FromDeal serializes a deal into the exchanged representation.
func FromDeal(d *game.Deal) *Record {
	players := make(map[string]string, bridge.NumSeats)
	dealt := make(map[string][]string, bridge.NumSeats)
	for _, seat := range bridge.Seats() {
		players[seat.String()] = d.Players[seat]
		cards := []string{}
		for _, card := range d.Hand(seat) {
			cards = append(cards, card.Token())
		}
		dealt[seat.String()] = cards
	}

	var vulnerable []string
	for _, seat := range d.Vulnerability.Seats() {
		vulnerable = append(vulnerable, seat.String())
	}

	var dealer string
	if seat, ok := d.Dealer(); ok {
		dealer = seat.String()
	}

	actions := make([]string, 0, d.NumActions())
	for _, entry := range d.History() {
		action, err := bridge.DecodeAction(entry.Action)
		if err != nil {
			// An undecodable id froze the deal; it has no token form.
			continue
		}
		actions = append(actions, action.Token())
	}

	var annotations []Annotation
	for _, ann := range d.Annotations() {
		annotations = append(annotations, Annotation{
			ActionIndex:     ann.ActionIndex,
			Explanation:     ann.Explanation,
			KibitzerComment: ann.KibitzerComment,
		})
	}

	var result Result
	if r := d.Result(); r != nil {
		tokens := r.Tokens()
		result.SummaryToken = tokens[:]
	}

	return &Record{
		Players: players,
		Board: Board{
			VulnerableSeats:   vulnerable,
			BoardSequenceName: d.BoardName,
			Scoring:           d.Scoring.String(),
			Dealer:            dealer,
			DealtCards:        dealt,
		},
		Actions:     actions,
		Annotations: annotations,
		Result:      result,
		TableName:   d.TableName,
	}
}

// ToDeal reconstructs a deal from the exchanged representation: deals
// the recorded hands, then replays the action sequence through the full
// rules engine, reattaching annotations at their recorded indexes. A
// record whose actions violate the rules yields a deal frozen in its
// error state, with the error returned.
func ToDeal(rec *Record) (*game.Deal, error) {
	d := game.NewDeal()
	d.BoardName = rec.Board.BoardSequenceName
	d.TableName = rec.TableName

	for seatToken, name := range rec.Players {
		seat, err := bridge.ParseSeat(seatToken)
		if err != nil {
			return d, err
		}
		d.Players[seat] = name
	}

	var vulnerable []bridge.Seat
	for _, token := range rec.Board.VulnerableSeats {
		seat, err := bridge.ParseSeat(token)
		if err != nil {
			return d, err
		}
		vulnerable = append(vulnerable, seat)
	}
	d.Vulnerability = bridge.VulnerabilityFromSeats(vulnerable)

	if rec.Board.Scoring != "" {
		scoring, err := bridge.ParseScoring(rec.Board.Scoring)
		if err != nil {
			return d, err
		}
		d.Scoring = scoring
	}

	for seatToken, tokens := range rec.Board.DealtCards {
		seat, err := bridge.ParseSeat(seatToken)
		if err != nil {
			return d, err
		}
		for _, token := range tokens {
			card, err := parseCardToken(token)
			if err != nil {
				return d, err
			}
			if err := d.GiveCard(seat, card); err != nil {
				return d, err
			}
		}
	}

	dealer, err := bridge.ParseSeat(rec.Board.Dealer)
	if err != nil {
		return d, err
	}
	if err := d.SetDealer(dealer); err != nil {
		return d, err
	}

	ids := make([]bridge.ActionID, 0, len(rec.Actions))
	for _, token := range rec.Actions {
		action, err := bridge.ParseActionToken(token)
		if err != nil {
			return d, err
		}
		ids = append(ids, action.ID())
	}
	if _, err := d.ApplyAll(ids); err != nil {
		return d, err
	}

	for _, ann := range rec.Annotations {
		d.AddAnnotation(game.Annotation{
			ActionIndex:     ann.ActionIndex,
			Explanation:     ann.Explanation,
			KibitzerComment: ann.KibitzerComment,
		})
	}

	if len(rec.Result.SummaryToken) == 5 {
		d.SetResult(bridge.ParseResult(rec.Result.SummaryToken))
	}
	return d, nil
}

func parseCardToken(token string) (bridge.Card, error) {
	action, err := bridge.ParseActionToken(token)
	if err != nil || action.Kind != bridge.ActionPlay {
		return bridge.Card{}, fmt.Errorf("invalid card token %q", token)
	}
	return action.Card, nil
}
