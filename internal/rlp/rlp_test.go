package rlp_test

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/chapool/go-signer/internal/rlp"
)

func TestEncodeVectors(t *testing.T) {
	loremIpsum := "Lorem ipsum dolor sit amet, consectetur adipisicing elit"

	tests := []struct {
		name string
		item rlp.Item
		want string
	}{
		{"empty string", rlp.String(nil), "80"},
		{"single low byte", rlp.String([]byte{0x0f}), "0f"},
		{"dog", rlp.String([]byte("dog")), "83646f67"},
		{"two bytes", rlp.String([]byte{0x04, 0x00}), "820400"},
		{"long string", rlp.String([]byte(loremIpsum)), "b838" + hex.EncodeToString([]byte(loremIpsum))},
		{"empty list", rlp.List(), "c0"},
		{"cat dog list", rlp.List(rlp.String([]byte("cat")), rlp.String([]byte("dog"))), "c88363617483646f67"},
		{
			"set theoretical representation of three",
			rlp.List(
				rlp.List(),
				rlp.List(rlp.List()),
				rlp.List(rlp.List(), rlp.List(rlp.List())),
			),
			"c7c0c1c0c3c0c1c0",
		},
		{"uint zero", rlp.Uint(0), "80"},
		{"uint 15", rlp.Uint(15), "0f"},
		{"uint 1024", rlp.Uint(1024), "820400"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, hex.EncodeToString(rlp.Encode(tt.item)))
		})
	}
}

func TestEncodeHexPrefix(t *testing.T) {
	assert.Equal(t, "0x83646f67", rlp.EncodeHex(rlp.String([]byte("dog"))))
}

func TestRoundTrip(t *testing.T) {
	// Nested structure, five levels deep, mixing strings and lists
	item := rlp.List(
		rlp.String([]byte("nonce")),
		rlp.List(
			rlp.String(nil),
			rlp.List(
				rlp.String([]byte{0x01}),
				rlp.List(
					rlp.String([]byte("deep")),
					rlp.List(rlp.String(make([]byte, 100))),
				),
			),
		),
		rlp.Uint(1<<40),
	)

	decoded, err := rlp.Decode(rlp.Encode(item))
	require.NoError(t, err)
	assert.True(t, item.Equal(decoded))

	// Re-encoding a decoded stream must be byte-identical
	assert.Equal(t, rlp.Encode(item), rlp.Encode(decoded))
}

func TestDecodeHex(t *testing.T) {
	item, err := rlp.DecodeHex("0xc88363617483646f67")
	require.NoError(t, err)
	require.True(t, item.IsList())
	require.Len(t, item.Items(), 2)
	assert.Equal(t, []byte("cat"), item.Items()[0].Bytes())
	assert.Equal(t, []byte("dog"), item.Items()[1].Bytes())

	// Works without 0x prefix too
	bare, err := rlp.DecodeHex("c88363617483646f67")
	require.NoError(t, err)
	assert.True(t, item.Equal(bare))
}

func TestDecodeEmptyStringIsNil(t *testing.T) {
	item, err := rlp.DecodeHex("0x80")
	require.NoError(t, err)
	assert.Nil(t, item.Bytes())

	// Empty fields inside a list decode the same way, so a decoded field
	// compares equal to the String(nil) it was encoded from.
	list, err := rlp.DecodeHex("0xc58083ff00ff")
	require.NoError(t, err)
	require.Len(t, list.Items(), 2)
	assert.Equal(t, rlp.String(nil).Bytes(), list.Items()[0].Bytes())
}

func TestDecodeMalformed(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty input", ""},
		{"truncated string payload", "83646f"},
		{"truncated list payload", "c883636174"},
		{"trailing bytes", "c0c0"},
		{"non-canonical single byte", "8100"},
		{"long form for short payload", "b801ff"},
		{"length with leading zero", "b90001ff"},
		{"truncated length of length", "b9"},
		{"not hex at all", "0xzz"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := rlp.DecodeHex(tt.input)
			require.Error(t, err)
			assert.ErrorIs(t, err, rlp.ErrMalformed)
		})
	}
}
