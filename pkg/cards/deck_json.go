package cards

import (
	"encoding/json"
	"fmt"
)

// MarshalJSON encodes the deck as an array of card literals, front first.
// Only *Deck encodes this way; a Deck value has no exported fields and
// encodes as {}.
func (d *Deck) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.cards)
}

// UnmarshalJSON replaces the deck's cards. The payload must be a full,
// duplicate-free deck; on error the receiver is unchanged.
func (d *Deck) UnmarshalJSON(b []byte) error {
	var cards []Card
	if err := json.Unmarshal(b, &cards); err != nil {
		return fmt.Errorf("decode deck: %w", err)
	}
	if err := validate(cards); err != nil {
		return err
	}
	d.cards = cards
	return nil
}
