package encoding

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type lineItem struct {
	SKU      string `msgpack:"sku"`
	Quantity int    `msgpack:"qty"`
	Gift     bool   `msgpack:"gift,omitempty"`
}

func newEncoder(t *testing.T, key string) *Encoder {
	t.Helper()
	enc, err := NewEncoder([]byte(key))
	require.NoError(t, err)
	return enc
}

func TestNewEncoderKeyLengths(t *testing.T) {
	for _, key := range []string{"", "short", strings.Repeat("k", 32), strings.Repeat("k", 64)} {
		_, err := NewEncoder([]byte(key))
		assert.NoError(t, err, "key length %d", len(key))
	}
}

func TestSignedRoundTrip(t *testing.T) {
	enc := newEncoder(t, "test-key")
	in := lineItem{SKU: "A-100", Quantity: 3, Gift: true}

	encoded, err := enc.Encode(in, false)
	require.NoError(t, err)
	assert.Contains(t, encoded, ".")

	var out lineItem
	require.NoError(t, enc.Decode(encoded, false, &out))
	assert.Equal(t, in, out)
}

func TestSealedRoundTrip(t *testing.T) {
	enc := newEncoder(t, "test-key")
	in := map[string]any{"user": "u-42"}

	encoded, err := enc.Encode(in, true)
	require.NoError(t, err)
	assert.NotContains(t, encoded, ".")

	var out map[string]any
	require.NoError(t, enc.Decode(encoded, true, &out))
	assert.Equal(t, "u-42", out["user"])
}

func TestSealedIsNonDeterministic(t *testing.T) {
	enc := newEncoder(t, "test-key")
	a, err := enc.Encode("same", true)
	require.NoError(t, err)
	b, err := enc.Encode("same", true)
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestSignedTamperDetected(t *testing.T) {
	enc := newEncoder(t, "test-key")
	encoded, err := enc.Encode(lineItem{SKU: "A-100", Quantity: 1}, false)
	require.NoError(t, err)

	forged, err := enc.Encode(lineItem{SKU: "A-100", Quantity: 99}, false)
	require.NoError(t, err)

	body, _, _ := strings.Cut(forged, ".")
	_, sig, _ := strings.Cut(encoded, ".")

	var out lineItem
	err = enc.Decode(body+"."+sig, false, &out)
	assert.ErrorIs(t, err, ErrSignatureInvalid)
}

func TestWrongKey(t *testing.T) {
	a := newEncoder(t, "key-a")
	b := newEncoder(t, "key-b")

	signed, err := a.Encode("x", false)
	require.NoError(t, err)
	sealed, err := a.Encode("x", true)
	require.NoError(t, err)

	var out string
	assert.ErrorIs(t, b.Decode(signed, false, &out), ErrSignatureInvalid)
	assert.ErrorIs(t, b.Decode(sealed, true, &out), ErrDecryptFailed)
}

func TestDecodeMalformed(t *testing.T) {
	enc := newEncoder(t, "test-key")

	tests := []struct {
		name    string
		input   string
		sealed  bool
		wantErr error
	}{
		{"signed without dot", "abc", false, ErrInvalidFormat},
		{"signed bad base64", "!!!.abc", false, ErrInvalidFormat},
		{"sealed bad base64", "!!!", true, ErrInvalidFormat},
		{"sealed too short", "YWJj", true, ErrDecryptFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out string
			assert.ErrorIs(t, enc.Decode(tt.input, tt.sealed, &out), tt.wantErr)
		})
	}
}
