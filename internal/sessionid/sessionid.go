// Package sessionid mints sortable session identifiers: a UUIDv7 encoded
// as 26 characters of Crockford base32. IDs generated later sort later,
// which keeps session logs listable in creation order.
package sessionid

import (
	"crypto/rand"
	"fmt"
	"strings"
	"time"
)

// Crockford's base32 alphabet: no i, l, o or u.
const alphabet = "0123456789abcdefghjkmnpqrstvwxyz"

// RandSource supplies the random tail of an ID. A nil source means
// crypto/rand; tests inject a deterministic one.
type RandSource interface {
	Intn(n int) int
}

// New returns a fresh session ID.
func New() string {
	return NewWithSource(nil)
}

// NewWithSource returns a fresh session ID drawing randomness from src.
func NewWithSource(src RandSource) string {
	return encode(newUUIDv7(src))
}

// newUUIDv7 builds a 128-bit UUIDv7: 48 bits of millisecond timestamp,
// then random bits with the version and variant fields stamped in.
func newUUIDv7(src RandSource) [16]byte {
	var u [16]byte

	ms := time.Now().UnixMilli()
	u[0] = byte(ms >> 40)
	u[1] = byte(ms >> 32)
	u[2] = byte(ms >> 24)
	u[3] = byte(ms >> 16)
	u[4] = byte(ms >> 8)
	u[5] = byte(ms)

	if src != nil {
		for i := 6; i < len(u); i++ {
			u[i] = byte(src.Intn(256))
		}
	} else if _, err := rand.Read(u[6:]); err != nil {
		panic("sessionid: " + err.Error())
	}

	u[6] = (u[6] & 0x0f) | 0x70 // version 7
	u[8] = (u[8] & 0x3f) | 0x80 // variant 10

	return u
}

// encode packs 128 bits into 26 base32 characters, five bits per
// character. The 3-bit remainder is right-padded into the final character.
func encode(u [16]byte) string {
	var out [26]byte
	var acc uint32
	bits, n := 0, 0
	for _, b := range u {
		acc = acc<<8 | uint32(b)
		bits += 8
		for bits >= 5 {
			bits -= 5
			out[n] = alphabet[acc>>uint(bits)&0x1f]
			n++
		}
	}
	out[n] = alphabet[acc<<uint(5-bits)&0x1f]
	return string(out[:])
}

// Validate checks that id is a well-formed session ID.
func Validate(id string) error {
	if len(id) != 26 {
		return fmt.Errorf("session ID must be 26 characters, got %d", len(id))
	}
	if id[0] > '7' {
		return fmt.Errorf("session ID first character must be 0-7, got %c", id[0])
	}
	for i := 0; i < len(id); i++ {
		if strings.IndexByte(alphabet, id[i]) < 0 {
			return fmt.Errorf("invalid character %c at position %d", id[i], i)
		}
	}
	return nil
}
