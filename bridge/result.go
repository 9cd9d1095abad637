package bridge

import (
	"strconv"
)

// passedOutToken fills all five result slots when no contract was reached.
const passedOutToken = "passed_out"

// Result is the five-slot summary of a finished deal: contract level,
// strain, declaring seat, doubling state, and the trick outcome relative
// to the contracted count ("=", "-13".."-1", "+1".."+5").
type Result struct {
	PassedOut bool
	Level     Level
	Strain    Strain
	Declarer  Seat
	Doubling  Doubling
	TrickDiff int
}

// PassedOutResult is the result of a deal where no one bid.
func PassedOutResult() Result {
	return Result{PassedOut: true}
}

// Outcome returns the outcome token for the trick difference.
func (r Result) Outcome() string {
	switch {
	case r.TrickDiff == 0:
		return "="
	case r.TrickDiff > 0:
		return "+" + strconv.Itoa(r.TrickDiff)
	default:
		return strconv.Itoa(r.TrickDiff)
	}
}

// Tokens returns the five-slot summary token.
func (r Result) Tokens() [5]string {
	if r.PassedOut {
		return [5]string{passedOutToken, passedOutToken, passedOutToken, passedOutToken, passedOutToken}
	}
	return [5]string{
		r.Level.String(),
		r.Strain.String(),
		r.Declarer.String(),
		r.Doubling.String(),
		r.Outcome(),
	}
}

// ParseResult rebuilds a Result from a five-slot summary token. Any slot
// that does not parse collapses the whole result to passed out, matching
// how tolerant readers of the exchanged representation behave.
func ParseResult(tokens []string) Result {
	if len(tokens) != 5 {
		return PassedOutResult()
	}
	level, err := ParseLevel(tokens[0])
	if err != nil {
		return PassedOutResult()
	}
	strain, err := ParseStrain(tokens[1])
	if err != nil {
		return PassedOutResult()
	}
	declarer, err := ParseSeat(tokens[2])
	if err != nil {
		return PassedOutResult()
	}
	doubling, err := ParseDoubling(tokens[3])
	if err != nil {
		return PassedOutResult()
	}
	diff, ok := parseOutcome(tokens[4])
	if !ok {
		return PassedOutResult()
	}
	return Result{
		Level:     level,
		Strain:    strain,
		Declarer:  declarer,
		Doubling:  doubling,
		TrickDiff: diff,
	}
}

func parseOutcome(token string) (int, bool) {
	if token == "=" {
		return 0, true
	}
	n, err := strconv.Atoi(token)
	if err != nil || n < -13 || n > 5 || n == 0 {
		return 0, false
	}
	if n > 0 && token[0] != '+' {
		return 0, false
	}
	return n, true
}
