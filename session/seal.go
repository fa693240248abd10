package session

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"fmt"

	"golang.org/x/crypto/nacl/secretbox"
)

const nonceSize = 24

// Seal turns a claim into an opaque cookie-safe token: secretbox over
// the JSON claim with a fresh random nonce, then base64 (url alphabet,
// no padding). Only someone holding the same key can read or alter it.
func Seal(claim Claim, key *Key) (string, error) {
	payload, err := json.Marshal(claim)
	if err != nil {
		return "", fmt.Errorf("session: unable to encode claim, cause %w", err)
	}
	var nonce [nonceSize]byte
	_, err = rand.Read(nonce[:])
	if err != nil {
		return "", fmt.Errorf("session: unable to generate nonce, cause %w", err)
	}
	box := secretbox.Seal(nonce[:], payload, &nonce, (*[32]byte)(key))
	return base64.RawURLEncoding.EncodeToString(box), nil
}

// Unseal reverses Seal. It fails closed: bad encoding, truncation, a
// wrong key or any flipped bit all come back as ErrBadToken, there is
// no partial decode.
func Unseal(token string, key *Key) (Claim, error) {
	raw, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return Claim{}, ErrBadToken
	}
	if len(raw) < nonceSize+secretbox.Overhead {
		return Claim{}, ErrBadToken
	}
	var nonce [nonceSize]byte
	copy(nonce[:], raw[:nonceSize])
	payload, ok := secretbox.Open(nil, raw[nonceSize:], &nonce, (*[32]byte)(key))
	if !ok {
		return Claim{}, ErrBadToken
	}
	var claim Claim
	err = json.Unmarshal(payload, &claim)
	if err != nil {
		return Claim{}, ErrBadToken
	}
	return claim, nil
}
