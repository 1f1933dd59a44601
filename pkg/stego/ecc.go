package stego

import (
	"encoding/base64"
	"encoding/binary"
	"errors"

	"github.com/klauspost/reedsolomon"
)

// Reed-Solomon configuration for the optional payload armor.
const (
	eccDataShards   = 4
	eccParityShards = 2
)

// ArmorText wraps a secret in Reed-Solomon parity and base64-encodes the
// result, so the armored payload is still plain text and can travel
// through the normal embedding path. The armor costs roughly 2x in
// payload size but lets UnarmorText detect corruption of the recovered
// bytes.
func ArmorText(secret string) (string, error) {
	enc, err := reedsolomon.New(eccDataShards, eccParityShards)
	if err != nil {
		return "", err
	}

	data := []byte(secret)
	// Length prefix so the shard padding can be stripped on the way out.
	payload := binary.BigEndian.AppendUint32(make([]byte, 0, 4+len(data)), uint32(len(data)))
	payload = append(payload, data...)

	shards, err := enc.Split(payload)
	if err != nil {
		return "", err
	}
	if err := enc.Encode(shards); err != nil {
		return "", err
	}

	var joined []byte
	for _, shard := range shards {
		joined = append(joined, shard...)
	}
	return base64.StdEncoding.EncodeToString(joined), nil
}

// UnarmorText reverses ArmorText: base64-decode, verify the shard set,
// reconstruct if needed, and strip the length prefix.
func UnarmorText(armored string) (string, error) {
	enc, err := reedsolomon.New(eccDataShards, eccParityShards)
	if err != nil {
		return "", err
	}

	joined, err := base64.StdEncoding.DecodeString(armored)
	if err != nil {
		return "", err
	}

	shards, err := enc.Split(joined)
	if err != nil {
		return "", err
	}
	if ok, _ := enc.Verify(shards); !ok {
		if err := enc.Reconstruct(shards); err != nil {
			return "", err
		}
	}

	var payload []byte
	for i := 0; i < eccDataShards; i++ {
		payload = append(payload, shards[i]...)
	}

	if len(payload) < 4 {
		return "", errors.New("recovered data too short")
	}
	length := binary.BigEndian.Uint32(payload[:4])
	if uint32(len(payload)) < 4+length {
		return "", errors.New("recovered data length mismatch")
	}
	return string(payload[4 : 4+length]), nil
}
