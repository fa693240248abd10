package session

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"testing"
)

func testKey(t *testing.T) *Key {
	var k Key
	_, err := rand.Read(k[:])
	if err != nil {
		t.Fatal(err)
	}
	return &k
}

func TestSealRoundTrip(t *testing.T) {
	key := testKey(t)
	for _, id := range []int64{1, 42, -1, 1 << 40} {
		token, err := Seal(Claim{ID: id}, key)
		if err != nil {
			t.Fatal(err)
		}
		claim, err := Unseal(token, key)
		if err != nil {
			t.Fatalf("unable to unseal freshly sealed claim %v, cause %v", id, err)
		}
		if claim.ID != id {
			t.Fatalf("expecting claim id %v, got %v", id, claim.ID)
		}
	}
}

func TestSealFreshNonce(t *testing.T) {
	key := testKey(t)
	one, err := Seal(Claim{ID: 1}, key)
	if err != nil {
		t.Fatal(err)
	}
	two, err := Seal(Claim{ID: 1}, key)
	if err != nil {
		t.Fatal(err)
	}
	if one == two {
		t.Fatal("sealing the same claim twice must not produce the same token")
	}
}

func TestUnsealRejectsTampering(t *testing.T) {
	key := testKey(t)
	token, err := Seal(Claim{ID: 1}, key)
	if err != nil {
		t.Fatal(err)
	}
	raw, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		t.Fatal(err)
	}
	for i := range raw {
		bent := make([]byte, len(raw))
		copy(bent, raw)
		bent[i] ^= 0x01
		_, err := Unseal(base64.RawURLEncoding.EncodeToString(bent), key)
		if !errors.Is(err, ErrBadToken) {
			t.Fatalf("flipping byte %v should invalidate the token, got %v", i, err)
		}
	}
}

func TestUnsealRejectsWrongKey(t *testing.T) {
	token, err := Seal(Claim{ID: 1}, testKey(t))
	if err != nil {
		t.Fatal(err)
	}
	_, err = Unseal(token, testKey(t))
	if !errors.Is(err, ErrBadToken) {
		t.Fatalf("expecting ErrBadToken for a foreign key, got %v", err)
	}
}

func TestUnsealRejectsGarbage(t *testing.T) {
	key := testKey(t)
	for _, token := range []string{
		"",
		"not base64 at all!",
		"c2hvcnQ", // valid base64, far too short for nonce+box
		base64.RawURLEncoding.EncodeToString(make([]byte, 10)),
	} {
		_, err := Unseal(token, key)
		if !errors.Is(err, ErrBadToken) {
			t.Fatalf("expecting ErrBadToken for %q, got %v", token, err)
		}
	}
}
