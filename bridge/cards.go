package bridge

import "fmt"

// Suit represents a card suit, ordered Club low to Spade high.
type Suit int

const (
	Club Suit = iota
	Diamond
	Heart
	Spade

	NumSuits = 4
)

var suitTokens = [NumSuits]string{"Club", "Diamond", "Heart", "Spade"}

func (s Suit) String() string {
	if s < 0 || s >= NumSuits {
		return "?"
	}
	return suitTokens[s]
}

// ParseSuit maps a suit token ("Club", ...) back to its Suit.
func ParseSuit(token string) (Suit, error) {
	for i, t := range suitTokens {
		if t == token {
			return Suit(i), nil
		}
	}
	return 0, fmt.Errorf("invalid suit %q", token)
}

// Strain returns the suited strain corresponding to the suit.
func (s Suit) Strain() Strain {
	return Strain(s)
}

// Rank represents a card rank, Two low through Ace high.
type Rank int

const (
	Two Rank = iota
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace

	NumRanks = 13
)

var rankTokens = [NumRanks]string{
	"Two", "Three", "Four", "Five", "Six", "Seven", "Eight",
	"Nine", "Ten", "Jack", "Queen", "King", "Ace",
}

func (r Rank) String() string {
	if r < 0 || r >= NumRanks {
		return "?"
	}
	return rankTokens[r]
}

// ParseRank maps a rank token ("Two", ...) back to its Rank.
func ParseRank(token string) (Rank, error) {
	for i, t := range rankTokens {
		if t == token {
			return Rank(i), nil
		}
	}
	return 0, fmt.Errorf("invalid rank %q", token)
}

// Card is a (suit, rank) pair, globally unique within a deal.
type Card struct {
	Suit Suit
	Rank Rank
}

// NumCards is the size of the deck.
const NumCards = NumSuits * NumRanks

// Index returns the card's dense index 0..51, suit-major.
func (c Card) Index() int {
	return int(c.Suit)*NumRanks + int(c.Rank)
}

// CardFromIndex is the inverse of Index.
func CardFromIndex(i int) Card {
	return Card{Suit: Suit(i / NumRanks), Rank: Rank(i % NumRanks)}
}

// Token returns the card's token form, e.g. "Club_Two".
func (c Card) Token() string {
	return fmt.Sprintf("%s_%s", c.Suit, c.Rank)
}

func (c Card) String() string {
	return c.Token()
}
