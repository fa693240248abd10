// Package session implements the credential side of hallpass: bcrypt
// password verification, sealing a small identity claim into an opaque
// cookie token, and turning an incoming token back into a user.
//
// The token is NaCl secretbox over the JSON-encoded claim, so whoever
// holds the cookie holds an opaque blob: it cannot be read or altered
// without the 32-byte sealing key, and any bit flipped in transit makes
// the authenticator fail and the whole token worthless.
//
// There is no server-side session table. A token that was issued stays
// cryptographically valid until the key changes, logout only means the
// client stops presenting it. Rotating the key invalidates every
// outstanding session at once, which is the intended recovery lever.
package session
