package shelf

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/cespare/xxhash/v2"
)

type (
	// User is one entry of the roster. Password holds the bcrypt hash
	// of the user password, the plaintext is never stored.
	User struct {
		ID       int64
		Login    string
		Password string
	}
)

// seedPasswordHash is the bcrypt hash (cost 10) of the string "secret",
// used only by Seed to install the demo user.
const seedPasswordHash = `$2a$10$iqJSHD.BGr0E2IxQwYgJmeP3NvhPrXAeLSaGCj6IR/XU5QtjVu5Tm`

// AddUser inserts a new user and returns its id. The caller is
// responsible for hashing the password beforehand, AddUser refuses
// anything that does not look like a bcrypt hash to avoid plaintext
// ending up on disk by accident.
func (s *Shelf) AddUser(ctx context.Context, login string, passwordHash string) (int64, error) {
	if login == "" {
		return 0, errors.New("shelf: login cannot be empty")
	}
	if len(passwordHash) < 4 || passwordHash[0] != '$' {
		return 0, errors.New("shelf: password must be a bcrypt hash, not plaintext")
	}
	var id int64
	err := s.db.QueryRowContext(ctx, `insert into users (login, login_hash64, password) values (?, ?, ?) returning user_id`,
		login, loginHash(login), passwordHash).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("unable to add user %v to shelf, cause %w", login, err)
	}
	return id, nil
}

// FindUserByLogin performs an exact, case-sensitive lookup.
func (s *Shelf) FindUserByLogin(ctx context.Context, login string) (User, error) {
	var u User
	err := s.db.QueryRowContext(ctx, `select user_id, login, password from users where login_hash64 = ? and login = ?`,
		loginHash(login), login).Scan(&u.ID, &u.Login, &u.Password)
	if errors.Is(err, sql.ErrNoRows) {
		return User{}, UserNotFound{Login: login}
	} else if err != nil {
		return User{}, fmt.Errorf("unable to find user %v, cause %w", login, err)
	}
	return u, nil
}

func (s *Shelf) FindUserByID(ctx context.Context, id int64) (User, error) {
	var u User
	err := s.db.QueryRowContext(ctx, `select user_id, login, password from users where user_id = ?`,
		id).Scan(&u.ID, &u.Login, &u.Password)
	if errors.Is(err, sql.ErrNoRows) {
		return User{}, UserNotFound{ID: id}
	} else if err != nil {
		return User{}, fmt.Errorf("unable to find user #%v, cause %w", id, err)
	}
	return u, nil
}

// Seed installs the demo fixture: the user john (password "secret") and
// a couple of todos. Calling it twice is an error since john already
// exists.
func (s *Shelf) Seed(ctx context.Context) error {
	id, err := s.AddUser(ctx, "john", seedPasswordHash)
	if err != nil {
		return err
	}
	for _, content := range []string{
		"water the plants",
		"rewind the tapes",
	} {
		_, err = s.AddTodo(ctx, id, content)
		if err != nil {
			return err
		}
	}
	return nil
}

func loginHash(login string) int64 {
	return int64(xxhash.Sum64String(login))
}
