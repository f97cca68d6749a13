package bolt

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	bolt "go.etcd.io/bbolt"
)

var stateBucket = []byte("ledger_state")

// StateStore implements ports.StateStore on a single bbolt bucket.
type StateStore struct {
	db *bolt.DB
}

// Open opens (or creates) the database file at path.
func Open(path string, log zerolog.Logger) (*StateStore, error) {
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("opening bolt db %s: %w", path, err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(stateBucket)
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating state bucket: %w", err)
	}

	log.Info().Str("path", path).Msg("Bolt state store opened")
	return &StateStore{db: db}, nil
}

func (s *StateStore) Get(_ context.Context, key string) (string, bool, error) {
	var (
		value string
		found bool
	)
	err := s.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket(stateBucket).Get([]byte(key))
		if v != nil {
			// v is only valid inside the transaction.
			value, found = string(v), true
		}
		return nil
	})
	if err != nil {
		return "", false, fmt.Errorf("bolt get %q: %w", key, err)
	}
	return value, found, nil
}

func (s *StateStore) Set(_ context.Context, key, value string) error {
	err := s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(stateBucket).Put([]byte(key), []byte(value))
	})
	if err != nil {
		return fmt.Errorf("bolt set %q: %w", key, err)
	}
	return nil
}

func (s *StateStore) Delete(_ context.Context, key string) error {
	err := s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(stateBucket).Delete([]byte(key))
	})
	if err != nil {
		return fmt.Errorf("bolt delete %q: %w", key, err)
	}
	return nil
}

// Ping verifies the database is still open and readable.
func (s *StateStore) Ping(context.Context) error {
	return s.db.View(func(tx *bolt.Tx) error {
		if tx.Bucket(stateBucket) == nil {
			return fmt.Errorf("bucket %s missing", stateBucket)
		}
		return nil
	})
}

func (s *StateStore) Name() string { return "bolt" }

func (s *StateStore) Close() error {
	return s.db.Close()
}
