package session

import (
	"context"
	"encoding/binary"
	"strconv"
	"time"

	"github.com/allegro/bigcache/v3"
	"github.com/brunori/hallpass/shelf"
	"github.com/cespare/xxhash/v2"
)

type (
	// Validator turns an incoming token into a Verdict. It is safe for
	// concurrent use: the shelf is read-only here, the key is immutable
	// and bigcache handles its own locking.
	Validator struct {
		users *shelf.Shelf
		keyfn KeyFn
		seen  *bigcache.BigCache
	}
)

func NewValidator(users *shelf.Shelf, keyfn KeyFn) *Validator {
	cache, _ := bigcache.NewBigCache(bigcache.DefaultConfig(10 * time.Minute))
	return &Validator{
		users: users,
		keyfn: keyfn,
		seen:  cache,
	}
}

// Validate yields {Valid:false} for the empty token, for anything that
// fails to unseal and for claims pointing at a user that is no longer
// on the shelf. Recently unsealed tokens are remembered by digest so
// repeat requests skip the secretbox open, a tampered copy of a cached
// token has a different digest and goes through the full check.
func (v *Validator) Validate(ctx context.Context, token string) Verdict {
	if token == "" {
		return Verdict{}
	}
	id, cached := v.recall(token)
	if !cached {
		var key Key
		err := v.keyfn(ctx, &key)
		if err != nil {
			return Verdict{}
		}
		claim, err := Unseal(token, &key)
		key.Zero()
		if err != nil {
			return Verdict{}
		}
		id = claim.ID
		v.remember(token, id)
	}
	user, err := v.users.FindUserByID(ctx, id)
	if err != nil {
		return Verdict{}
	}
	return Verdict{Valid: true, Identity: &user}
}

func (v *Validator) recall(token string) (int64, bool) {
	buf, err := v.seen.Get(tokenDigest(token))
	if err != nil || len(buf) != 8 {
		return 0, false
	}
	return int64(binary.BigEndian.Uint64(buf)), true
}

func (v *Validator) remember(token string, id int64) {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], uint64(id))
	v.seen.Set(tokenDigest(token), buf[:])
}

func tokenDigest(token string) string {
	return strconv.FormatUint(xxhash.Sum64String(token), 16)
}
