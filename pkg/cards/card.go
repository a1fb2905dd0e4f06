package cards

import "fmt"

type Suit byte

// Suits in priority order, lowest first.
const (
	Clubs Suit = iota
	Diamonds
	Hearts
	Spades
)

const suitCount = 4

type Value byte

const (
	Two Value = iota
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
)

const valueCount = 13

// DeckSize is the number of cards in a full deck.
const DeckSize = suitCount * valueCount

var suitNames = [suitCount]string{"Clubs", "Diamonds", "Hearts", "Spades"}

var valueNames = [valueCount]string{
	"Two", "Three", "Four", "Five", "Six", "Seven", "Eight",
	"Nine", "Ten", "Jack", "Queen", "King", "Ace",
}

func (s Suit) Valid() bool  { return s < suitCount }
func (v Value) Valid() bool { return v < valueCount }

func (s Suit) String() string {
	if !s.Valid() {
		return fmt.Sprintf("suit(%d)", int(s))
	}
	return suitNames[s]
}

func (v Value) String() string {
	if !v.Valid() {
		return fmt.Sprintf("value(%d)", int(v))
	}
	return valueNames[v]
}

// Suits returns all suits in declaration order.
func Suits() []Suit {
	return []Suit{Clubs, Diamonds, Hearts, Spades}
}

// Values returns all values in declaration order, Two through Ace.
func Values() []Value {
	out := make([]Value, 0, valueCount)
	for v := Two; v <= Ace; v++ {
		out = append(out, v)
	}
	return out
}

// Card is a (value, suit) pair with value semantics: copies are independent
// and compare with ==. The zero Card is the Two of Clubs.
type Card struct {
	Value Value
	Suit  Suit
}

func NewCard(v Value, s Suit) Card {
	return Card{Value: v, Suit: s}
}

// Rank identifies the card within a deck: suit + value*4, in [0,51].
// It is not a game-strength ordering.
func (c Card) Rank() int {
	return int(c.Suit) + int(c.Value)*suitCount
}

// Equal reports whether both cards have the same rank.
func (c Card) Equal(o Card) bool {
	return c.Rank() == o.Rank()
}

func (c Card) Valid() bool {
	return c.Suit.Valid() && c.Value.Valid()
}

// Name renders the card as "<Value> of <Suit>", e.g. "Eight of Diamonds".
func (c Card) Name() string {
	return c.Value.String() + " of " + c.Suit.String()
}

func (c Card) String() string { return c.Name() }
