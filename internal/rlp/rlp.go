// Package rlp implements the Recursive Length Prefix encoding used for raw
// Ethereum transactions. It is a purely structural codec: items are byte
// strings or ordered lists of items, with no interpretation of content.
package rlp

import (
	"encoding/hex"
	"math/big"
	"strings"

	"github.com/pkg/errors"
)

// ErrMalformed is returned for input that is not a well-formed RLP encoding.
var ErrMalformed = errors.New("malformed RLP input")

const (
	shortStringOffset = 0x80
	longStringOffset  = 0xb7
	shortListOffset   = 0xc0
	longListOffset    = 0xf7

	// maxShortLength is the largest payload length encodable in a single
	// header byte; longer payloads get a length-of-length header.
	maxShortLength = 55
)

// Item is a node in an RLP structure: either a byte string or an ordered
// list of items. The zero value is the empty byte string.
type Item struct {
	str    []byte
	list   []Item
	isList bool
}

// String builds a byte-string item.
func String(b []byte) Item {
	return Item{str: b}
}

// Uint builds a byte-string item holding the minimal big-endian encoding of
// v. Zero encodes as the empty string per the RLP convention for integers.
func Uint(v uint64) Item {
	return Item{str: new(big.Int).SetUint64(v).Bytes()}
}

// List builds a list item from the given children.
func List(items ...Item) Item {
	return Item{list: items, isList: true}
}

// IsList reports whether the item is a list rather than a byte string.
func (i Item) IsList() bool {
	return i.isList
}

// Bytes returns the byte-string content. It is only meaningful when IsList
// is false.
func (i Item) Bytes() []byte {
	return i.str
}

// Items returns the child items of a list.
func (i Item) Items() []Item {
	return i.list
}

// Equal reports deep structural equality of two items.
func (i Item) Equal(other Item) bool {
	if i.isList != other.isList {
		return false
	}
	if !i.isList {
		return string(i.str) == string(other.str)
	}
	if len(i.list) != len(other.list) {
		return false
	}
	for n := range i.list {
		if !i.list[n].Equal(other.list[n]) {
			return false
		}
	}
	return true
}

// Encode serializes an item per the canonical RLP rules: single bytes below
// 0x80 stand for themselves, short payloads get a one-byte length header,
// long payloads get a length-of-length header.
func Encode(item Item) []byte {
	if !item.isList {
		return encodeString(item.str)
	}

	var payload []byte
	for _, child := range item.list {
		payload = append(payload, Encode(child)...)
	}

	return append(encodeHeader(shortListOffset, len(payload)), payload...)
}

// EncodeHex serializes an item and returns it as a 0x-prefixed lowercase hex
// string.
func EncodeHex(item Item) string {
	return "0x" + hex.EncodeToString(Encode(item))
}

func encodeString(b []byte) []byte {
	if len(b) == 1 && b[0] < shortStringOffset {
		return []byte{b[0]}
	}
	return append(encodeHeader(shortStringOffset, len(b)), b...)
}

func encodeHeader(offset byte, length int) []byte {
	if length <= maxShortLength {
		return []byte{offset + byte(length)}
	}

	lengthBytes := new(big.Int).SetInt64(int64(length)).Bytes()
	header := make([]byte, 0, 1+len(lengthBytes))
	header = append(header, offset+maxShortLength+byte(len(lengthBytes)))
	return append(header, lengthBytes...)
}

// Decode parses a single RLP item and fails with ErrMalformed on truncated,
// non-canonical or trailing input.
func Decode(data []byte) (Item, error) {
	item, rest, err := decodeItem(data)
	if err != nil {
		return Item{}, err
	}
	if len(rest) != 0 {
		return Item{}, errors.Wrapf(ErrMalformed, "%d trailing bytes after item", len(rest))
	}
	return item, nil
}

// DecodeHex parses an RLP item from a hex string, with or without the 0x
// prefix.
func DecodeHex(s string) (Item, error) {
	raw, err := hex.DecodeString(strings.TrimPrefix(s, "0x"))
	if err != nil {
		return Item{}, errors.Wrap(ErrMalformed, "input is not valid hex")
	}
	return Decode(raw)
}

//nolint:cyclop // The prefix ranges of the RLP grammar are clearest in one switch
func decodeItem(data []byte) (Item, []byte, error) {
	if len(data) == 0 {
		return Item{}, nil, errors.Wrap(ErrMalformed, "empty input")
	}

	prefix := data[0]
	switch {
	case prefix < shortStringOffset:
		// Single byte below 0x80 encodes itself.
		return Item{str: data[0:1]}, data[1:], nil

	case prefix <= longStringOffset:
		length := int(prefix - shortStringOffset)
		payload, rest, err := takePayload(data[1:], length)
		if err != nil {
			return Item{}, nil, err
		}
		if length == 1 && payload[0] < shortStringOffset {
			return Item{}, nil, errors.Wrap(ErrMalformed, "single byte below 0x80 must encode itself")
		}
		return Item{str: payload}, rest, nil

	case prefix < shortListOffset:
		length, rest, err := takeLongLength(data[1:], int(prefix-longStringOffset))
		if err != nil {
			return Item{}, nil, err
		}
		payload, rest, err := takePayload(rest, length)
		if err != nil {
			return Item{}, nil, err
		}
		return Item{str: payload}, rest, nil

	case prefix <= longListOffset:
		length := int(prefix - shortListOffset)
		payload, rest, err := takePayload(data[1:], length)
		if err != nil {
			return Item{}, nil, err
		}
		item, err := decodeListPayload(payload)
		if err != nil {
			return Item{}, nil, err
		}
		return item, rest, nil

	default:
		length, rest, err := takeLongLength(data[1:], int(prefix-longListOffset))
		if err != nil {
			return Item{}, nil, err
		}
		payload, rest, err := takePayload(rest, length)
		if err != nil {
			return Item{}, nil, err
		}
		item, err := decodeListPayload(payload)
		if err != nil {
			return Item{}, nil, err
		}
		return item, rest, nil
	}
}

func decodeListPayload(payload []byte) (Item, error) {
	// Lists own their payload completely; children are decoded until it is
	// consumed.
	items := []Item{}
	for len(payload) > 0 {
		child, rest, err := decodeItem(payload)
		if err != nil {
			return Item{}, err
		}
		items = append(items, child)
		payload = rest
	}
	return Item{list: items, isList: true}, nil
}

func takePayload(data []byte, length int) ([]byte, []byte, error) {
	if len(data) < length {
		return nil, nil, errors.Wrapf(ErrMalformed, "payload truncated: need %d bytes, have %d", length, len(data))
	}
	if length == 0 {
		// Zero-length strings decode to nil so that a decoded item compares
		// equal to String(nil).
		return nil, data, nil
	}
	return data[:length], data[length:], nil
}

func takeLongLength(data []byte, lengthOfLength int) (int, []byte, error) {
	if len(data) < lengthOfLength {
		return 0, nil, errors.Wrap(ErrMalformed, "length-of-length truncated")
	}
	if data[0] == 0 {
		return 0, nil, errors.Wrap(ErrMalformed, "length has leading zero byte")
	}

	length := 0
	for _, b := range data[:lengthOfLength] {
		if length > (1<<31)/256 {
			return 0, nil, errors.Wrap(ErrMalformed, "length overflows")
		}
		length = length<<8 | int(b)
	}
	if length <= maxShortLength {
		return 0, nil, errors.Wrap(ErrMalformed, "long form used for short payload")
	}
	return length, data[lengthOfLength:], nil
}
