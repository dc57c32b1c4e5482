package repositories

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/dgraph-io/badger/v4"
)

// maxTxnAttempts bounds the retries of a read-modify-write transaction that
// lost a race against a concurrent writer of the same keys.
const maxTxnAttempts = 5

// BadgerStore keeps the whole bot state in BadgerDB.
//
// Keys:
//
//	participant:{id}              -> participantRecord
//	idx:handle:{handle}           -> participant id
//	service:{channel_id}          -> serviceChannelRecord
//	idx:service:{name}            -> channel id
//	floor:{participant_id}        -> floorRecord
//	activity:{channel_id}:{id}    -> last post, unix nano
type BadgerStore struct {
	db  *badger.DB
	log *slog.Logger
}

func NewBadgerStore(db *badger.DB, log *slog.Logger) *BadgerStore {
	return &BadgerStore{db: db, log: log}
}

// OpenBadgerStore opens (or creates) a BadgerDB directory.
func OpenBadgerStore(path string, log *slog.Logger) (*BadgerStore, error) {
	db, err := badger.Open(badger.DefaultOptions(path).WithLoggingLevel(badger.WARNING))
	if err != nil {
		return nil, fmt.Errorf("badger open %s: %w", path, err)
	}
	return NewBadgerStore(db, log), nil
}

// DB exposes the underlying database to the debug inspector.
func (s *BadgerStore) DB() *badger.DB {
	return s.db
}

func (s *BadgerStore) Close() error {
	return s.db.Close()
}

// update runs fn in a read-write transaction. Badger detects conflicting
// concurrent writes at commit time; the whole function is then replayed.
func (s *BadgerStore) update(fn func(txn *badger.Txn) error) error {
	for attempt := 1; attempt <= maxTxnAttempts; attempt++ {
		err := s.db.Update(fn)
		if !errors.Is(err, badger.ErrConflict) {
			return err
		}
		s.log.Debug("Transaction conflict, retrying", "attempt", attempt)
	}
	return fmt.Errorf("transaction failed after %d attempts: %w", maxTxnAttempts, badger.ErrConflict)
}

// get decodes the value stored at key into v. It reports false when the key is absent.
func get(txn *badger.Txn, key string, v any) (bool, error) {
	item, err := txn.Get([]byte(key))
	if errors.Is(err, badger.ErrKeyNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, item.Value(func(val []byte) error {
		return unmarshal(val, v)
	})
}

func set(txn *badger.Txn, key string, v any) error {
	data, err := marshal(v)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", key, err)
	}
	return txn.Set([]byte(key), data)
}

// getString reads a raw string value, used by the secondary indexes.
func getString(txn *badger.Txn, key string) (string, bool, error) {
	item, err := txn.Get([]byte(key))
	if errors.Is(err, badger.ErrKeyNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	val, err := item.ValueCopy(nil)
	if err != nil {
		return "", false, err
	}
	return string(val), true, nil
}

// scan walks every key starting with prefix, in key order.
func scan(txn *badger.Txn, prefix string, fn func(val []byte) error) error {
	options := badger.DefaultIteratorOptions
	options.Prefix = []byte(prefix)
	it := txn.NewIterator(options)
	defer it.Close()

	for it.Seek(options.Prefix); it.ValidForPrefix(options.Prefix); it.Next() {
		if err := it.Item().Value(fn); err != nil {
			return err
		}
	}
	return nil
}
