package stego

import (
	"encoding/binary"
	"strings"
)

// MaxPayloadBytes is a sanity ceiling on the decoded length field. A
// stream claiming more than this is treated as noise, not as a payload.
const MaxPayloadBytes = 10000

// delimiter is appended after the payload bytes. It is carried in the
// stream for legacy compatibility but never consulted on decode; the
// length header is authoritative.
const delimiter = 0xFF

// EncodePayload frames a secret text as a bitstream:
// [32-bit big-endian byte length][UTF-8 bytes][delimiter byte], expanded
// to one byte per bit, MSB first. Empty text encodes to an empty stream.
func EncodePayload(text string) []byte {
	if text == "" {
		return nil
	}

	data := []byte(text)
	framed := make([]byte, 0, 4+len(data)+1)
	framed = binary.BigEndian.AppendUint32(framed, uint32(len(data)))
	framed = append(framed, data...)
	framed = append(framed, delimiter)

	bits := make([]byte, 0, len(framed)*8)
	for _, b := range framed {
		for i := 7; i >= 0; i-- {
			bits = append(bits, (b>>i)&1)
		}
	}
	return bits
}

// DecodePayload recovers the secret text from a bitstream produced by
// EncodePayload, possibly followed by trailing garbage. It reads the
// 32-bit length header, then exactly length*8 payload bits; everything
// after is ignored. ErrNoData is returned when the stream is too short or
// the length field is implausible, which is indistinguishable from an
// image that never carried a payload.
//
// Invalid UTF-8 sequences in the recovered bytes are dropped rather than
// failing the whole extraction; a partially damaged stream still yields
// its readable remainder.
func DecodePayload(bits []byte) (string, error) {
	if len(bits) < 32 {
		return "", ErrNoData
	}

	length := 0
	for _, b := range bits[:32] {
		length = length<<1 | int(b)
	}
	if length <= 0 || length > MaxPayloadBytes {
		return "", ErrNoData
	}
	if 32+length*8 > len(bits) {
		return "", ErrNoData
	}

	data := make([]byte, length)
	for i := range data {
		var b byte
		for _, bit := range bits[32+i*8 : 32+i*8+8] {
			b = b<<1 | bit
		}
		data[i] = b
	}
	return strings.ToValidUTF8(string(data), ""), nil
}
