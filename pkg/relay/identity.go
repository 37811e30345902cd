package relay

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// IdentityHexLen is the length of a full operator public key in hex
// characters (a 32-byte schnorr key).
const IdentityHexLen = 64

// Identity is a relay operator's public key as published in its NIP-11
// document: either the full key or an even-length hex prefix of it.
type Identity struct {
	Hex   string `json:"hex" yaml:"hex"`
	Bytes []byte `json:"-" yaml:"-"`
}

// ParseIdentity validates and decodes an operator pubkey string.
// Accepted: hex digits only, even length, between 2 and 64 characters.
// The hex form is normalized to lowercase.
func ParseIdentity(s string) (Identity, error) {
	if len(s) == 0 || len(s) > IdentityHexLen || len(s)%2 != 0 {
		return Identity{}, fmt.Errorf("identity %q: want an even-length hex string of at most %d chars", s, IdentityHexLen)
	}

	b, err := hex.DecodeString(s)
	if err != nil {
		return Identity{}, fmt.Errorf("identity %q: %w", s, err)
	}

	return Identity{Hex: strings.ToLower(s), Bytes: b}, nil
}

// Full reports whether the identity is a complete key rather than a prefix.
func (i Identity) Full() bool {
	return len(i.Hex) == IdentityHexLen
}
