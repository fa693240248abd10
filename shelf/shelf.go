package shelf

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

type (
	// Shelf holds the user roster and the todo list for one hallpass
	// instance. All reads and writes go through database/sql, which is
	// safe for concurrent use, so a single Shelf can back every request
	// of a running server.
	Shelf struct {
		db *sql.DB
	}
)

func Open(ctx context.Context, path string) (*Shelf, error) {
	connstr := fmt.Sprintf("file:%v?_journal=wal&_fk=true&mode=rwc", path)
	conn, err := sql.Open("sqlite3", connstr)
	if err != nil {
		return nil, fmt.Errorf("unable to open shelf at %v, cause %w", path, err)
	}
	err = conn.PingContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("unable to ping shelf at %v, cause %w", path, err)
	}
	s := &Shelf{db: conn}
	err = s.init(ctx)
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("unable to init shelf at %v, cause %w", path, err)
	}
	return s, nil
}

// OpenInMemory returns a shelf that lives only as long as the process,
// useful for the demo seed and for tests.
func OpenInMemory(ctx context.Context) (*Shelf, error) {
	conn, err := sql.Open("sqlite3", "file::memory:?_fk=true")
	if err != nil {
		return nil, fmt.Errorf("unable to open in-memory shelf, cause %w", err)
	}
	// database/sql would otherwise hand each request its own empty
	// in-memory database
	conn.SetMaxOpenConns(1)
	s := &Shelf{db: conn}
	err = s.init(ctx)
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("unable to init in-memory shelf, cause %w", err)
	}
	return s, nil
}

func (s *Shelf) init(ctx context.Context) error {
	for _, cmd := range []string{
		`create table if not exists users(
			user_id integer not null primary key autoincrement,
			login text not null unique,
			login_hash64 integer not null,
			password text not null
		)`,
		`create index if not exists idx_users_login_hash64
			on users(login_hash64)
		`,
		`create table if not exists todos(
			todo_id text not null primary key,
			owner_id integer not null,
			content text not null,
			done integer not null default 0,
			foreign key (owner_id) references users(user_id)
		)`,
	} {
		_, err := s.db.ExecContext(ctx, cmd)
		if err != nil {
			return err
		}
	}
	return nil
}

func (s *Shelf) Close() error {
	return s.db.Close()
}
