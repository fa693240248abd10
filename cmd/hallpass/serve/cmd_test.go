package serve

import (
	"context"
	"testing"
)

func TestOpenShelfWithoutPathServesDemoSeed(t *testing.T) {
	ctx := context.Background()
	store, err := openShelf(ctx, "")
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()
	john, err := store.FindUserByLogin(ctx, "john")
	if err != nil {
		t.Fatal(err)
	}
	todos, err := store.ListTodos(ctx, john.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(todos) == 0 {
		t.Fatal("demo seed should come with todos")
	}
}
