// SPDX-License-Identifier: MIT
// Package: lotwheel/internal/favorites
//
// store.go — badger-backed store of saved systems.

// Package favorites persists generated systems by opaque ID.
//
// Records are JSON documents (the cover.Payload export view plus metadata)
// stored in Badger under "<prefix>/<uuid>". The engine never imports this
// package; it consumes the payload contract only.
package favorites

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"

	"github.com/katalvlaran/lotwheel/cover"
)

var (
	// ErrNotFound is returned for IDs with no stored record.
	ErrNotFound = errors.New("favorites: not found")

	// ErrInvalidID is returned for IDs that are not UUID strings.
	ErrInvalidID = errors.New("favorites: invalid id")
)

// Record is one saved system.
type Record struct {
	ID      string        `json:"id"`
	SavedAt time.Time     `json:"saved_at"`
	System  cover.Payload `json:"system"`
}

// Options configures Open.
type Options struct {
	// Path is the Badger directory; ignored when InMemory is set.
	Path     string
	InMemory bool
	// Prefix namespaces keys; empty means "fav".
	Prefix string
	// Logger receives Badger's internal messages; nil silences them.
	Logger *slog.Logger
}

// Store is safe for concurrent use.
type Store struct {
	db     *badger.DB
	prefix string
	now    func() time.Time
}

// Open opens (or creates) the store.
func Open(opts Options) (*Store, error) {
	var bopts badger.Options
	switch {
	case opts.InMemory:
		bopts = badger.DefaultOptions("").WithInMemory(true)
	case opts.Path == "":
		return nil, errors.New("favorites: path is required for a persistent store")
	default:
		if err := os.MkdirAll(opts.Path, 0o750); err != nil {
			return nil, fmt.Errorf("favorites: create %s: %w", opts.Path, err)
		}
		bopts = badger.DefaultOptions(opts.Path)
	}
	if opts.Logger != nil {
		bopts = bopts.WithLogger(&badgerLogger{logger: opts.Logger})
	} else {
		bopts = bopts.WithLogger(nil)
	}

	db, err := badger.Open(bopts)
	if err != nil {
		return nil, fmt.Errorf("favorites: open badger: %w", err)
	}
	prefix := opts.Prefix
	if prefix == "" {
		prefix = "fav"
	}

	return &Store{db: db, prefix: prefix, now: time.Now}, nil
}

// Close releases the database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) key(id string) []byte {
	return []byte(s.prefix + "/" + id)
}

// Save stores sys under a fresh UUID and returns it.
func (s *Store) Save(ctx context.Context, sys cover.System) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	rec := Record{
		ID:      uuid.NewString(),
		SavedAt: s.now().UTC(),
		System:  sys.Payload(),
	}
	data, err := json.Marshal(rec)
	if err != nil {
		return "", fmt.Errorf("favorites: encode: %w", err)
	}
	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(s.key(rec.ID), data)
	})
	if err != nil {
		return "", fmt.Errorf("favorites: save: %w", err)
	}

	return rec.ID, nil
}

// Get loads one record.
func (s *Store) Get(ctx context.Context, id string) (Record, error) {
	if err := ctx.Err(); err != nil {
		return Record{}, err
	}
	if _, err := uuid.Parse(id); err != nil {
		return Record{}, fmt.Errorf("%w: %q", ErrInvalidID, id)
	}

	var data []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(s.key(id))
		if err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return fmt.Errorf("%w: %s", ErrNotFound, id)
			}
			return err
		}
		data, err = item.ValueCopy(nil)
		return err
	})
	if err != nil {
		return Record{}, err
	}

	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return Record{}, fmt.Errorf("favorites: decode %s: %w", id, err)
	}

	return rec, nil
}

// List returns every record, oldest first (ties by ID).
func (s *Store) List(ctx context.Context) ([]Record, error) {
	out := make([]Record, 0)
	err := s.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefix := []byte(s.prefix + "/")
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			if err := ctx.Err(); err != nil {
				return err
			}
			var rec Record
			err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &rec)
			})
			if err != nil {
				return fmt.Errorf("favorites: decode %s: %w", it.Item().Key(), err)
			}
			out = append(out, rec)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slices.SortFunc(out, func(a, b Record) int {
		if c := a.SavedAt.Compare(b.SavedAt); c != 0 {
			return c
		}
		return strings.Compare(a.ID, b.ID)
	})

	return out, nil
}

// Delete removes one record. Missing IDs → ErrNotFound.
func (s *Store) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidID, id)
	}

	return s.db.Update(func(txn *badger.Txn) error {
		if _, err := txn.Get(s.key(id)); err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return fmt.Errorf("%w: %s", ErrNotFound, id)
			}
			return err
		}
		return txn.Delete(s.key(id))
	})
}

// badgerLogger adapts slog.Logger to badger.Logger.
type badgerLogger struct {
	logger *slog.Logger
}

func (l *badgerLogger) Errorf(format string, args ...any) {
	l.logger.Error(fmt.Sprintf(format, args...))
}

func (l *badgerLogger) Warningf(format string, args ...any) {
	l.logger.Warn(fmt.Sprintf(format, args...))
}

func (l *badgerLogger) Infof(format string, args ...any) {
	l.logger.Debug(fmt.Sprintf(format, args...))
}

func (l *badgerLogger) Debugf(format string, args ...any) {
	l.logger.Debug(fmt.Sprintf(format, args...))
}
