package session

import (
	"context"
	"encoding/base64"
	"fmt"
	"os"
)

const (
	SealKeyEnvVar = "HALLPASS_SEAL_KEY"
)

// KeyFNFromEnv reads a base64 encoded 32-byte sealing key from the given
// environment variable and wipes the variable afterwards, so the key is
// not visible to the rest of the process via the environment.
func KeyFNFromEnv(varname string, getfn func(string) string, setfn func(string, string) error) (KeyFn, error) {
	if getfn == nil {
		getfn = os.Getenv
	}
	if setfn == nil {
		setfn = os.Setenv
	}
	val := getfn(varname)
	setfn(varname, "")
	var rootKey Key
	buf, err := base64.StdEncoding.DecodeString(val)
	if err != nil {
		return nil, fmt.Errorf("session: cannot decode string to valid key, cause %v", err)
	} else if len(buf) != len(rootKey) {
		return nil, fmt.Errorf("session: decoded key got %v bytes, expecting %v", len(buf), len(rootKey))
	}
	copy(rootKey[:], buf)
	for i := range buf {
		buf[i] = 0
	}
	return func(_ context.Context, k *Key) error {
		copy((*k)[:], rootKey[:])
		return nil
	}, nil
}
