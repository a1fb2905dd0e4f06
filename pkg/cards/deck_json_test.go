package cards

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeck_JSONRoundTrip(t *testing.T) {
	d := NewRandom(seeded(5))
	b, err := json.Marshal(d)
	require.NoError(t, err)

	var codes []string
	require.NoError(t, json.Unmarshal(b, &codes))
	require.Len(t, codes, DeckSize)
	assert.Equal(t, d.At(0).Code(), codes[0])

	var back Deck
	require.NoError(t, json.Unmarshal(b, &back))
	assert.True(t, back.Equal(d))
	require.NoError(t, back.Riffle())
	requireFullDeck(t, &back)
}

func TestDeck_UnmarshalRejectsBadDeck(t *testing.T) {
	d := New()
	b, err := json.Marshal(d)
	require.NoError(t, err)

	var codes []string
	require.NoError(t, json.Unmarshal(b, &codes))
	codes[1] = codes[0]
	dup, err := json.Marshal(codes)
	require.NoError(t, err)

	target := NewRandom(seeded(9))
	before := target.Clone()
	assert.ErrorIs(t, json.Unmarshal(dup, target), ErrInvalidDeck)
	assert.ErrorIs(t, json.Unmarshal([]byte(`["As","Kd"]`), target), ErrInvalidDeck)
	assert.ErrorIs(t, json.Unmarshal([]byte(`["As","Zz"]`), target), ErrInvalidCard)
	assert.True(t, target.Equal(before))
}

func TestDeck_JSONNeedsPointer(t *testing.T) {
	d := New()
	b, err := json.Marshal(*d)
	require.NoError(t, err)
	assert.JSONEq(t, `{}`, string(b))

	b, err = json.Marshal(struct{ D *Deck }{d})
	require.NoError(t, err)
	var out struct{ D []string }
	require.NoError(t, json.Unmarshal(b, &out))
	assert.Len(t, out.D, DeckSize)
}
