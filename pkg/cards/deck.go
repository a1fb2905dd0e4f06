package cards

import (
	"errors"
	"fmt"
	"strings"
	"sync"
)

var (
	ErrPrecisionOutOfRange = errors.New("precision out of range")
	ErrInvalidDeck         = errors.New("invalid deck")
	ErrInvalidCard         = errors.New("invalid card")
)

// DefaultPrecision is the precision Riffle shuffles with.
const DefaultPrecision = 8

// Deck is an ordered run of all 52 cards, front to back, no rank repeated.
// A Deck is not safe for concurrent mutation.
type Deck struct {
	cards []Card
	rng   Rand
}

type Option func(*Deck)

// WithRand makes the deck draw from r instead of the shared generator.
func WithRand(r Rand) Option {
	return func(d *Deck) {
		if r != nil {
			d.rng = r
		}
	}
}

func newDeck(cards []Card, opts []Option) *Deck {
	d := &Deck{cards: cards, rng: sharedRand()}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

func orderedCards() []Card {
	cards := make([]Card, 0, DeckSize)
	for _, s := range Suits() {
		for _, v := range Values() {
			cards = append(cards, NewCard(v, s))
		}
	}
	return cards
}

// New returns a deck in canonical order: Clubs, Diamonds, Hearts, Spades,
// each Two through Ace.
func New(opts ...Option) *Deck {
	return newDeck(orderedCards(), opts)
}

// NewRandom returns a deck in uniformly random order. Cards are drawn one at
// a time from the remaining ordered set until none are left.
func NewRandom(opts ...Option) *Deck {
	d := newDeck(make([]Card, 0, DeckSize), opts)
	left := orderedCards()
	for len(left) > 0 {
		i := d.source().Intn(len(left))
		d.cards = append(d.cards, left[i])
		left = append(left[:i], left[i+1:]...)
	}
	return d
}

// FromCards builds a deck holding a copy of cards in the given order.
func FromCards(cards []Card, opts ...Option) (*Deck, error) {
	if err := validate(cards); err != nil {
		return nil, err
	}
	return newDeck(append([]Card(nil), cards...), opts), nil
}

func validate(cards []Card) error {
	if len(cards) != DeckSize {
		return fmt.Errorf("%w: %d cards, want %d", ErrInvalidDeck, len(cards), DeckSize)
	}
	var seen [DeckSize]bool
	for i, c := range cards {
		if !c.Valid() {
			return fmt.Errorf("%w: card %d has suit %d value %d", ErrInvalidDeck, i, c.Suit, c.Value)
		}
		if seen[c.Rank()] {
			return fmt.Errorf("%w: duplicate %s at %d", ErrInvalidDeck, c.Name(), i)
		}
		seen[c.Rank()] = true
	}
	return nil
}

var reference = sync.OnceValue(func() [DeckSize]Card {
	var out [DeckSize]Card
	copy(out[:], orderedCards())
	return out
})

// Reference returns a fresh copy of the canonical ordered deck. Mutating the
// copy never affects later calls.
func Reference() *Deck {
	ref := reference()
	return newDeck(ref[:], nil)
}

// Cards returns a copy of the deck's cards, front first.
func (d *Deck) Cards() []Card {
	return append([]Card(nil), d.cards...)
}

func (d *Deck) Len() int { return len(d.cards) }

// At returns the card at position i, 0 being the front. It panics if i is
// out of range.
func (d *Deck) At(i int) Card { return d.cards[i] }

// Clone returns an independent copy sharing d's generator.
func (d *Deck) Clone() *Deck {
	return &Deck{cards: d.Cards(), rng: d.rng}
}

// Equal reports whether both decks hold the same cards in the same positions.
func (d *Deck) Equal(o *Deck) bool {
	if d == nil || o == nil {
		return d == o
	}
	if len(d.cards) != len(o.cards) {
		return false
	}
	for i := range d.cards {
		if !d.cards[i].Equal(o.cards[i]) {
			return false
		}
	}
	return true
}

// Sort restores canonical order by suit, then ascending value. Every card
// drops straight into its slot in a per-suit bin; no comparisons are made.
// A deck that does not hold exactly 52 cards, such as a zero Deck, is left
// as it is.
func (d *Deck) Sort() {
	if len(d.cards) != DeckSize {
		return
	}
	var bins [suitCount][valueCount]Card
	for _, c := range d.cards {
		bins[c.Suit][c.Value] = c
	}
	d.cards = d.cards[:0]
	for s := range bins {
		d.cards = append(d.cards, bins[s][:]...)
	}
}

// Riffle shuffles with DefaultPrecision.
func (d *Deck) Riffle() error {
	return d.RiffleShuffle(DefaultPrecision)
}

// RiffleShuffle simulates a riffle. The deck is cut within precision-1
// cards of its center, then the two halves are interleaved by dropping runs
// of 1 to precision-1 cards from alternating halves. Whatever is left in the
// longer half goes on the bottom.
//
// precision must lie in [1, Len()/2-1]; otherwise an error wrapping
// ErrPrecisionOutOfRange is returned and the deck is left as it was.
func (d *Deck) RiffleShuffle(precision int) error {
	n := len(d.cards)
	maxPrecision := n/2 - 1
	if precision < 1 || precision > maxPrecision {
		return fmt.Errorf("%w: %d not in [1, %d]", ErrPrecisionOutOfRange, precision, maxPrecision)
	}

	r := d.source()
	deviation := r.Intn(precision)
	if coinFlip(r) {
		deviation = -deviation
	}
	split := n/2 + deviation

	right := d.cards[:split]
	left := d.cards[split:]
	out := make([]Card, 0, n)

	fromLeft := coinFlip(r)
	for len(left) > 0 && len(right) > 0 {
		stack := &right
		if fromLeft {
			stack = &left
		}
		run := runLength(r, precision)
		if run > len(*stack) {
			run = len(*stack)
		}
		out = append(out, (*stack)[:run]...)
		*stack = (*stack)[run:]
		fromLeft = !fromLeft
	}
	out = append(out, left...)
	out = append(out, right...)

	d.cards = out
	return nil
}

// runLength draws from [1, precision-1], or 1 when that range is empty.
func runLength(r Rand, precision int) int {
	if precision <= 2 {
		return 1
	}
	return r.Intn(precision-1) + 1
}

// source falls back to the shared generator for a zero Deck.
func (d *Deck) source() Rand {
	if d.rng == nil {
		return sharedRand()
	}
	return d.rng
}

// String lists the deck as card codes, front first.
func (d *Deck) String() string {
	codes := make([]string, len(d.cards))
	for i, c := range d.cards {
		codes[i] = c.Code()
	}
	return strings.Join(codes, " ")
}
