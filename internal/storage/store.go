package storage

import (
	"errors"

	badger "github.com/dgraph-io/badger/v4"
)

// Credential keys persisted on-device. They must stay distinct and
// independently clearable: a guest session is told apart from a registered
// one by which keys are populated.
const (
	KeyAccessToken = "access_token"
	KeyUserData    = "user_data"
	KeyGuestToken  = "guest_token"
	KeyTableToken  = "table_token"
)

var ErrNotFound = errors.New("storage: key not found")

// Store is the persisted credential store, a thin {Get, Set, Remove} wrapper
// over an embedded badger database.
type Store struct {
	db *badger.DB
}

func Open(path string) (*Store, error) {
	opts := badger.DefaultOptions(path)
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}

	return &Store{db: db}, nil
}

func (s *Store) Get(key string) (string, error) {
	var value []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		value, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", err
	}
	return string(value), nil
}

func (s *Store) Set(key, value string) error {
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), []byte(value))
	})
}

// Remove deletes a single key. Removing an absent key is not an error.
func (s *Store) Remove(key string) error {
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(key))
	})
}

func (s *Store) Close() error {
	return s.db.Close()
}
