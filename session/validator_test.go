package session_test

import (
	"context"
	"crypto/rand"
	"testing"

	"github.com/brunori/hallpass/internal/testutil"
	"github.com/brunori/hallpass/session"
)

func acquireKeyFn(t *testing.T) (session.KeyFn, *session.Key) {
	var key session.Key
	_, err := rand.Read(key[:])
	if err != nil {
		t.Fatal(err)
	}
	return func(_ context.Context, k *session.Key) error {
		copy((*k)[:], key[:])
		return nil
	}, &key
}

func TestValidateResolvesIdentity(t *testing.T) {
	ctx := context.Background()
	store, cleanup := testutil.AcquireSeededShelf(ctx, t)
	defer cleanup()
	keyfn, key := acquireKeyFn(t)

	john, err := store.FindUserByLogin(ctx, "john")
	if err != nil {
		t.Fatal(err)
	}
	token, err := session.Seal(session.Claim{ID: john.ID}, key)
	if err != nil {
		t.Fatal(err)
	}

	sessions := session.NewValidator(store, keyfn)
	verdict := sessions.Validate(ctx, token)
	if !verdict.Valid {
		t.Fatal("token sealed with the realm key should validate")
	}
	if verdict.Identity == nil || verdict.Identity.Login != "john" {
		t.Fatalf("expecting identity john, got %+v", verdict.Identity)
	}

	// second pass goes through the digest cache and must agree
	verdict = sessions.Validate(ctx, token)
	if !verdict.Valid || verdict.Identity.Login != "john" {
		t.Fatal("cached validation should agree with the first pass")
	}
}

func TestValidateRejectsStaleIdentity(t *testing.T) {
	ctx := context.Background()
	store, cleanup := testutil.AcquireSeededShelf(ctx, t)
	defer cleanup()
	keyfn, key := acquireKeyFn(t)

	// structurally valid token pointing at nobody
	token, err := session.Seal(session.Claim{ID: 9999}, key)
	if err != nil {
		t.Fatal(err)
	}
	verdict := session.NewValidator(store, keyfn).Validate(ctx, token)
	if verdict.Valid {
		t.Fatal("claims referencing an absent user must not validate")
	}
}

func TestValidateRejectsJunk(t *testing.T) {
	ctx := context.Background()
	store, cleanup := testutil.AcquireSeededShelf(ctx, t)
	defer cleanup()
	keyfn, _ := acquireKeyFn(t)
	_, foreignKey := acquireKeyFn(t)

	foreign, err := session.Seal(session.Claim{ID: 1}, foreignKey)
	if err != nil {
		t.Fatal(err)
	}
	sessions := session.NewValidator(store, keyfn)
	for _, token := range []string{"", "garbage", foreign} {
		verdict := sessions.Validate(ctx, token)
		if verdict.Valid {
			t.Fatalf("token %q must not validate", token)
		}
		if verdict.Identity != nil {
			t.Fatalf("invalid verdicts must not carry an identity, got %+v", verdict.Identity)
		}
	}
}
