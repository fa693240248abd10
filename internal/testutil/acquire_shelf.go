package testutil

import (
	"context"
	"os"
	"path/filepath"

	"github.com/brunori/hallpass/shelf"
)

type (
	TestLog interface {
		Fatal(...interface{})
		Log(...interface{})
	}
)

func AcquireShelf(ctx context.Context, t TestLog) (*shelf.Shelf, func()) {
	dir, err := os.MkdirTemp("", "hallpass-tests")
	if err != nil {
		t.Fatal(err)
	}
	store, err := shelf.Open(ctx, filepath.Join(dir, "shelf.db"))
	if err != nil {
		t.Fatal(err)
	}
	return store, func() {
		err := store.Close()
		if err != nil {
			t.Log("unable to close shelf", err)
		}
		err = os.RemoveAll(dir)
		if err != nil {
			t.Log("unable to cleanup temp dir", dir)
		}
	}
}

// AcquireSeededShelf returns a shelf preloaded with the demo fixture
// (user john, password "secret", two todos).
func AcquireSeededShelf(ctx context.Context, t TestLog) (*shelf.Shelf, func()) {
	store, cleanup := AcquireShelf(ctx, t)
	err := store.Seed(ctx)
	if err != nil {
		cleanup()
		t.Fatal(err)
	}
	return store, cleanup
}
