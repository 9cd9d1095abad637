// Package bridge defines the closed vocabulary of duplicate contract
// bridge: seats, suits, ranks, bid levels, strains, calls, doublings,
// vulnerabilities and scoring methods, plus the compact integer action
// codec shared by the deal state machine and its collaborators.
package bridge

import "fmt"

// Seat is one of the four table positions. The cyclic order of play is
// South, West, North, East; partnerships are South-North and East-West.
type Seat int

const (
	South Seat = iota
	West
	North
	East

	NumSeats = 4
)

var seatTokens = [NumSeats]string{"South", "West", "North", "East"}

func (s Seat) String() string {
	if s < 0 || s >= NumSeats {
		return "?"
	}
	return seatTokens[s]
}

// ParseSeat maps a seat token ("South", ...) back to its Seat.
func ParseSeat(token string) (Seat, error) {
	for i, t := range seatTokens {
		if t == token {
			return Seat(i), nil
		}
	}
	return 0, fmt.Errorf("invalid seat %q", token)
}

// Next returns the seat to the left, the next to act in clockwise order.
func (s Seat) Next() Seat {
	return (s + 1) % NumSeats
}

// Partner returns the seat across the table.
func (s Seat) Partner() Seat {
	return (s + 2) % NumSeats
}

// SameSide reports whether two seats belong to the same partnership.
func (s Seat) SameSide(other Seat) bool {
	return (s-other)%2 == 0
}

// Seats lists all seats in order of play starting from South.
func Seats() [NumSeats]Seat {
	return [NumSeats]Seat{South, West, North, East}
}

// Level is a contract level, 1 through 7.
type Level int

const (
	MinLevel Level = 1
	MaxLevel Level = 7

	NumLevels = 7
)

func (l Level) String() string {
	if l < MinLevel || l > MaxLevel {
		return "?"
	}
	return string(rune('0' + l))
}

// ParseLevel maps a level token ("1".."7") back to its Level.
func ParseLevel(token string) (Level, error) {
	if len(token) == 1 && token[0] >= '1' && token[0] <= '7' {
		return Level(token[0] - '0'), nil
	}
	return 0, fmt.Errorf("invalid level %q", token)
}

// Strain is the trump denomination of a bid or contract: one of the four
// suits, or no-trump. Strains order Clubs low to NoTrump high, the order
// used to compare bids at equal level.
type Strain int

const (
	Clubs Strain = iota
	Diamonds
	Hearts
	Spades
	NoTrump

	NumStrains = 5
)

var strainTokens = [NumStrains]string{"Clubs", "Diamonds", "Hearts", "Spades", "notrump"}

func (st Strain) String() string {
	if st < 0 || st >= NumStrains {
		return "?"
	}
	return strainTokens[st]
}

// ParseStrain maps a strain token ("Clubs", ... "notrump") back to its Strain.
func ParseStrain(token string) (Strain, error) {
	for i, t := range strainTokens {
		if t == token {
			return Strain(i), nil
		}
	}
	return 0, fmt.Errorf("invalid strain %q", token)
}

// TrumpSuit returns the suit of a suited strain; ok is false for NoTrump.
func (st Strain) TrumpSuit() (Suit, bool) {
	if st >= Clubs && st <= Spades {
		return Suit(st), true
	}
	return 0, false
}

// IsMajor reports whether the strain scores 30 per trick (Spades, Hearts).
func (st Strain) IsMajor() bool {
	return st == Spades || st == Hearts
}

// Bid is a (level, strain) pair. Bids compare in the combined
// level-then-strain ordering.
type Bid struct {
	Level  Level
	Strain Strain
}

// Beats reports whether b is strictly higher than other.
func (b Bid) Beats(other Bid) bool {
	if b.Level != other.Level {
		return b.Level > other.Level
	}
	return b.Strain > other.Strain
}

func (b Bid) String() string {
	return fmt.Sprintf("%s_%s", b.Level, b.Strain)
}

// Call is one of the three non-bid calls.
type Call int

const (
	Pass Call = iota
	Double
	Redouble

	NumCalls = 3
)

var callTokens = [NumCalls]string{"pass", "double", "redouble"}

func (c Call) String() string {
	if c < 0 || c >= NumCalls {
		return "?"
	}
	return callTokens[c]
}

// ParseCall maps a call token ("pass", "double", "redouble") back to its Call.
func ParseCall(token string) (Call, error) {
	for i, t := range callTokens {
		if t == token {
			return Call(i), nil
		}
	}
	return 0, fmt.Errorf("invalid call %q", token)
}

// Doubling is the doubling state of a contract.
type Doubling int

const (
	Undoubled Doubling = iota
	Doubled
	Redoubled
)

var doublingTokens = [...]string{"undoubled", "doubled", "redoubled"}

func (d Doubling) String() string {
	if d < Undoubled || d > Redoubled {
		return "?"
	}
	return doublingTokens[d]
}

// ParseDoubling maps a doubling token back to its Doubling.
func ParseDoubling(token string) (Doubling, error) {
	for i, t := range doublingTokens {
		if t == token {
			return Doubling(i), nil
		}
	}
	return 0, fmt.Errorf("invalid doubling %q", token)
}

// Vulnerability records which partnerships are vulnerable on a board.
type Vulnerability int

const (
	VulnerableNone Vulnerability = 0
	VulnerableNS   Vulnerability = 1
	VulnerableEW   Vulnerability = 2
	VulnerableAll  Vulnerability = 3
)

// Includes reports whether the given seat's partnership is vulnerable.
func (v Vulnerability) Includes(seat Seat) bool {
	if seat%2 == 0 {
		return v&VulnerableNS != 0
	}
	return v&VulnerableEW != 0
}

// Seats expands the vulnerability into the list of vulnerable seat
// tokens used by the persisted game representation.
func (v Vulnerability) Seats() []Seat {
	var seats []Seat
	if v&VulnerableNS != 0 {
		seats = append(seats, North, South)
	}
	if v&VulnerableEW != 0 {
		seats = append(seats, East, West)
	}
	return seats
}

// VulnerabilityFromSeats builds a Vulnerability from any list of seats;
// one seat of a partnership marks the whole partnership vulnerable.
func VulnerabilityFromSeats(seats []Seat) Vulnerability {
	v := VulnerableNone
	for _, s := range seats {
		if s%2 == 0 {
			v |= VulnerableNS
		} else {
			v |= VulnerableEW
		}
	}
	return v
}

// Scoring is the method used to convert a point differential between two
// tables into a comparison score.
type Scoring int

const (
	Matchpoints Scoring = iota
	IMPs
	TotalPoints
)

var scoringTokens = [...]string{"Matchpoints", "IMPs", "total_points"}

func (sc Scoring) String() string {
	if sc < Matchpoints || sc > TotalPoints {
		return "?"
	}
	return scoringTokens[sc]
}

// ParseScoring maps a scoring token back to its Scoring.
func ParseScoring(token string) (Scoring, error) {
	for i, t := range scoringTokens {
		if t == token {
			return Scoring(i), nil
		}
	}
	return 0, fmt.Errorf("invalid scoring method %q", token)
}
