// Package session keeps the browser side of authentication: the token
// issued by the board API is stored server-side in Badger and the browser
// only ever holds a signed opaque session ID.
package session

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
)

const keyPrefix = "session:"

// DefaultTTL is how long a session lives without re-authentication.
const DefaultTTL = 7 * 24 * time.Hour

// ErrNotFound is returned when no session exists for an ID.
var ErrNotFound = errors.New("session not found")

// Session is the stored record for one logged-in browser.
type Session struct {
	ID        string    `json:"id"`
	Token     string    `json:"token"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// Store persists sessions in BadgerDB and signs the cookies that
// reference them.
type Store struct {
	db     *badger.DB
	secret []byte
	ttl    time.Duration
}

// NewStore creates a session store over db. secret keys the cookie
// signature and must stay stable across restarts.
func NewStore(db *badger.DB, secret []byte) *Store {
	return &Store{db: db, secret: secret, ttl: DefaultTTL}
}

// Create stores a new session for the given API token and identity and
// returns it with a fresh ID.
func (s *Store) Create(token, name, email string) (*Session, error) {
	sess := &Session{
		ID:        uuid.NewString(),
		Token:     token,
		Name:      name,
		Email:     email,
		CreatedAt: time.Now().UTC(),
	}
	data, err := json.Marshal(sess)
	if err != nil {
		return nil, err
	}
	err = s.db.Update(func(txn *badger.Txn) error {
		entry := badger.NewEntry([]byte(keyPrefix+sess.ID), data).WithTTL(s.ttl)
		return txn.SetEntry(entry)
	})
	if err != nil {
		return nil, err
	}
	return sess, nil
}

// Get retrieves a session by ID. Expired entries surface as ErrNotFound.
func (s *Store) Get(id string) (*Session, error) {
	var sess Session
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(keyPrefix + id))
		if err == badger.ErrKeyNotFound {
			return ErrNotFound
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &sess)
		})
	})
	if err != nil {
		return nil, err
	}
	return &sess, nil
}

// Delete removes a session. Deleting an absent session is not an error.
func (s *Store) Delete(id string) error {
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(keyPrefix + id))
	})
}
