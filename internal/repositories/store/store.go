// Package store implementa o Record Store: registros tipados serializados em JSON
// sob chaves "<prefixo>:<id>" de um backend chave-valor.
//
// As escritas são last-writer-wins. Não há compare-and-swap: dois
// read-modify-write concorrentes sobre a mesma chave podem perder uma atualização.
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"sweaters/internal/models"
)

// Backend é o contrato mínimo do banco chave-valor (SET/GET/KEYS/DEL/EXISTS).
type Backend interface {
	Set(ctx context.Context, key, value string) error
	// Get retorna found=false quando a chave não existe.
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Keys(ctx context.Context, pattern string) ([]string, error)
	Del(ctx context.Context, key string) (int64, error)
	Exists(ctx context.Context, key string) (bool, error)
	Ping(ctx context.Context) error
	Close() error
}

type Store[T any] struct {
	backend Backend
	prefix  string
}

func New[T any](backend Backend, prefix string) *Store[T] {
	return &Store[T]{backend: backend, prefix: prefix}
}

func (s *Store[T]) Key(id string) string {
	return s.prefix + ":" + id
}

func (s *Store[T]) Put(ctx context.Context, id string, record T) error {
	data, err := json.Marshal(record)
	if err != nil {
		return models.Persistence(fmt.Sprintf("encode %s", s.Key(id)), err)
	}
	if err := s.backend.Set(ctx, s.Key(id), string(data)); err != nil {
		return models.Persistence(fmt.Sprintf("set %s", s.Key(id)), err)
	}
	return nil
}

// Get devolve found=false (sem erro) quando o registro não existe.
func (s *Store[T]) Get(ctx context.Context, id string) (T, bool, error) {
	var record T
	value, found, err := s.backend.Get(ctx, s.Key(id))
	if err != nil {
		return record, false, models.Persistence(fmt.Sprintf("get %s", s.Key(id)), err)
	}
	if !found {
		return record, false, nil
	}
	if err := json.Unmarshal([]byte(value), &record); err != nil {
		return record, false, models.Persistence(fmt.Sprintf("decode %s", s.Key(id)), err)
	}
	return record, true, nil
}

// List lê todos os registros do prefixo. A ordem depende do backend.
func (s *Store[T]) List(ctx context.Context) ([]T, error) {
	keys, err := s.backend.Keys(ctx, s.prefix+":*")
	if err != nil {
		return nil, models.Persistence(fmt.Sprintf("keys %s:*", s.prefix), err)
	}

	records := make([]T, 0, len(keys))
	for _, key := range keys {
		id := strings.TrimPrefix(key, s.prefix+":")
		record, found, err := s.Get(ctx, id)
		if err != nil {
			return nil, err
		}
		// removido entre o KEYS e o GET
		if !found {
			continue
		}
		records = append(records, record)
	}
	return records, nil
}

func (s *Store[T]) Delete(ctx context.Context, id string) error {
	key := s.Key(id)
	exists, err := s.backend.Exists(ctx, key)
	if err != nil {
		return models.Persistence(fmt.Sprintf("exists %s", key), err)
	}
	if !exists {
		return models.NewError(models.KindNotFound,
			fmt.Sprintf("cannot delete %s with ID %s as it does not exist", s.prefix, id),
			map[string]string{s.prefix + "_id": id})
	}
	if _, err := s.backend.Del(ctx, key); err != nil {
		return models.Persistence(fmt.Sprintf("del %s", key), err)
	}
	return nil
}
