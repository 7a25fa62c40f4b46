/*
Package redis provides a Redis-backed docstore.Store.

PURPOSE:
  Keeps the owner's document as a single JSON value under
  "tuition:doc:<owner>". GET/SET only; last writer wins, exactly like the
  SQLite store. Useful when several school workstations share one small
  Redis instance instead of a local file.
*/
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	goredis "github.com/redis/go-redis/v9"

	"github.com/matricula/tuition-engine/docstore"
)

type Store struct {
	client *goredis.Client
	key    string
}

// New connects to addr and scopes the store to the given owner identity.
func New(addr, owner string) (*Store, error) {
	client := goredis.NewClient(&goredis.Options{Addr: addr})
	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to reach redis at %s: %w", addr, err)
	}
	return &Store{client: client, key: "tuition:doc:" + owner}, nil
}

func (s *Store) Close() error {
	return s.client.Close()
}

func (s *Store) Load(ctx context.Context) (docstore.Document, error) {
	payload, err := s.client.Get(ctx, s.key).Result()
	if errors.Is(err, goredis.Nil) {
		return docstore.Document{}, nil
	}
	if err != nil {
		return docstore.Document{}, fmt.Errorf("failed to load document: %w", err)
	}

	var doc docstore.Document
	if err := json.Unmarshal([]byte(payload), &doc); err != nil {
		return docstore.Document{}, fmt.Errorf("corrupt document payload: %w", err)
	}
	return doc, nil
}

func (s *Store) Save(ctx context.Context, doc docstore.Document) error {
	payload, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to encode document: %w", err)
	}
	if err := s.client.Set(ctx, s.key, payload, 0).Err(); err != nil {
		return fmt.Errorf("failed to save document: %w", err)
	}
	return nil
}
