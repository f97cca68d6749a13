package leveldb

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog"
	"github.com/syndtr/goleveldb/leveldb"
)

// StateStore implements ports.StateStore on a LevelDB directory.
type StateStore struct {
	once sync.Once
	db   *leveldb.DB
}

// Open opens (or creates) the LevelDB database in directory.
func Open(directory string, log zerolog.Logger) (*StateStore, error) {
	db, err := leveldb.OpenFile(directory, nil)
	if err != nil {
		return nil, fmt.Errorf("opening leveldb %s: %w", directory, err)
	}
	log.Info().Str("path", directory).Msg("LevelDB state store opened")
	return &StateStore{db: db}, nil
}

func (s *StateStore) Get(_ context.Context, key string) (string, bool, error) {
	v, err := s.db.Get([]byte(key), nil)
	if err != nil {
		if errors.Is(err, leveldb.ErrNotFound) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("leveldb get %q: %w", key, err)
	}
	return string(v), true, nil
}

func (s *StateStore) Set(_ context.Context, key, value string) error {
	if err := s.db.Put([]byte(key), []byte(value), nil); err != nil {
		return fmt.Errorf("leveldb set %q: %w", key, err)
	}
	return nil
}

func (s *StateStore) Delete(_ context.Context, key string) error {
	if err := s.db.Delete([]byte(key), nil); err != nil {
		return fmt.Errorf("leveldb delete %q: %w", key, err)
	}
	return nil
}

// Ping reads a sentinel key to confirm the database is open.
func (s *StateStore) Ping(context.Context) error {
	_, err := s.db.Has([]byte("ping"), nil)
	return err
}

func (s *StateStore) Name() string { return "leveldb" }

// Close is safe to call more than once.
func (s *StateStore) Close() error {
	var err error
	s.once.Do(func() {
		err = s.db.Close()
	})
	return err
}
