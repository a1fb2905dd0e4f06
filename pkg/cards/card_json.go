package cards

import (
	"encoding/json"
	"fmt"
	"strings"
)

const (
	valueChars = "23456789TJQKA"
	suitChars  = "cdhs"
)

// Code renders the card as a two-character literal: "As", "Th", "2c".
// Invalid cards render as "??".
func (c Card) Code() string {
	if !c.Valid() {
		return "??"
	}
	return string([]byte{valueChars[c.Value], suitChars[c.Suit]})
}

// ParseCard decodes "As", "th", "2C", etc. into a Card.
// Accepts uppercase/lowercase for both value and suit.
// Ten must be 'T'/'t' (not '10').
func ParseCard(s string) (Card, error) {
	s = strings.TrimSpace(s)
	if len(s) != 2 {
		return Card{}, fmt.Errorf("%w: literal %q (want 2 chars like As, Td)", ErrInvalidCard, s)
	}
	vi := strings.IndexByte(valueChars, upper(s[0]))
	if vi < 0 {
		return Card{}, fmt.Errorf("%w: value char %q", ErrInvalidCard, s[0])
	}
	si := strings.IndexByte(suitChars, lower(s[1]))
	if si < 0 {
		return Card{}, fmt.Errorf("%w: suit char %q (use c/d/h/s)", ErrInvalidCard, s[1])
	}
	return Card{Value: Value(vi), Suit: Suit(si)}, nil
}

// MarshalJSON encodes a Card as its two-character literal.
func (c Card) MarshalJSON() ([]byte, error) {
	if !c.Suit.Valid() {
		return nil, fmt.Errorf("%w: suit %d", ErrInvalidCard, c.Suit)
	}
	if !c.Value.Valid() {
		return nil, fmt.Errorf("%w: value %d", ErrInvalidCard, c.Value)
	}
	return json.Marshal(c.Code())
}

func (c *Card) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	parsed, err := ParseCard(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

func upper(ch byte) byte {
	if ch >= 'a' && ch <= 'z' {
		ch -= 'a' - 'A'
	}
	return ch
}

func lower(ch byte) byte {
	if ch >= 'A' && ch <= 'Z' {
		ch += 'a' - 'A'
	}
	return ch
}
