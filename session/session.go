package session

import (
	"context"
	"errors"

	"github.com/brunori/hallpass/shelf"
)

type (
	Key [32]byte

	// KeyFn fills the caller-owned key with the sealing key material.
	// Callers should Zero the key as soon as they are done with it.
	KeyFn func(context.Context, *Key) error

	// Claim is the only payload ever sealed inside a token: a reference
	// to a user on the shelf.
	Claim struct {
		ID int64 `json:"id"`
	}

	// Verdict is the outcome of validating a token. Identity is nil
	// unless Valid is true.
	Verdict struct {
		Valid    bool
		Identity *shelf.User
	}
)

var (
	ErrBadToken = errors.New("session: token rejected")
)

func (k *Key) Zero() {
	for i := range k {
		k[i] = 0
	}
}
